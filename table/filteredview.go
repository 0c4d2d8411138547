package table

import (
	"fmt"
)

var _ View = new(FilteredView)

type FilteredView struct {
	Source View
	// Offset index of the first row from Source, must be positive.
	RowOffset int
	// Limits the number of rows, only used if > 0.
	RowLimit int
	// If not nil then the view has as many
	// columns as ColumnMapping has elements and
	// every element is a column index into the Source view.
	// If nil then the view has as many columns as the Source view.
	ColumnMapping []int
}

func (view *FilteredView) Title() string {
	return view.Source.Title()
}

func (view *FilteredView) Columns() []string {
	sourceCols := view.Source.Columns()
	if view.ColumnMapping == nil {
		return sourceCols
	}
	mappedCols := make([]string, len(view.ColumnMapping))
	for i, iSource := range view.ColumnMapping {
		mappedCols[i] = sourceCols[iSource]
	}
	return mappedCols
}

func (view *FilteredView) NumCols() int {
	if view.ColumnMapping != nil {
		return len(view.ColumnMapping)
	}
	return len(view.Source.Columns())
}

func (view *FilteredView) NumRows() int {
	n := view.Source.NumRows() - max(view.RowOffset, 0)
	if n < 0 {
		return 0
	}
	if view.RowLimit > 0 && n > view.RowLimit {
		return view.RowLimit
	}
	return n
}

func (view *FilteredView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= view.NumRows() || col >= view.NumCols() {
		return nil
	}
	row += max(view.RowOffset, 0)
	if view.ColumnMapping != nil {
		col = view.ColumnMapping[col]
	}
	return view.Source.Cell(row, col)
}

// LimitRows returns a view of the first limit rows of source.
// A limit <= 0 returns source unchanged.
func LimitRows(source View, limit int) View {
	if limit <= 0 {
		return source
	}
	return &FilteredView{Source: source, RowLimit: limit}
}

// SelectColumns returns a view of the columns of source with the passed
// names in the order of source. Every name must match a column.
func SelectColumns(source View, names ...string) (*FilteredView, error) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	mapping := make([]int, 0, len(names))
	for col, title := range source.Columns() {
		if wanted[title] {
			mapping = append(mapping, col)
			delete(wanted, title)
		}
	}
	for _, name := range names {
		if wanted[name] {
			return nil, fmt.Errorf("column %q not found in %q columns %q", name, source.Title(), source.Columns())
		}
	}
	return &FilteredView{Source: source, ColumnMapping: mapping}, nil
}
