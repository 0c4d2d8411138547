// Package table converts dense cell matrices into column oriented
// views with header inference, row limits, column selection by
// header name and conversion into typed struct slices.
package table

// View is a read-only table with named columns.
type View interface {
	// Title of the table, usually the sheet name.
	Title() string
	// Columns returns the column titles.
	Columns() []string
	// NumRows returns the number of data rows
	// not counting the header row.
	NumRows() int
	// Cell returns the value at the 0-based row and col
	// or nil if the indices are out of bounds.
	Cell(row, col int) any
}

var _ View = new(ValuesView)

// ValuesView is a View that holds its rows
// as slices of values of any type.
type ValuesView struct {
	Tit  string
	Cols []string
	Rows [][]any
}

// NewValuesViewFrom reads and caches all cells
// from the source View as ValuesView.
func NewValuesViewFrom(source View) *ValuesView {
	numCols := len(source.Columns())
	view := &ValuesView{
		Tit:  source.Title(),
		Cols: source.Columns(),
		Rows: make([][]any, source.NumRows()),
	}
	for row := range view.Rows {
		view.Rows[row] = make([]any, numCols)
		for col := range view.Rows[row] {
			view.Rows[row][col] = source.Cell(row, col)
		}
	}
	return view
}

func (view *ValuesView) Title() string     { return view.Tit }
func (view *ValuesView) Columns() []string { return view.Cols }
func (view *ValuesView) NumRows() int      { return len(view.Rows) }

// Cell returns nil for out of bounds indices
// and for cells beyond the length of a shorter row.
func (view *ValuesView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) || col >= len(view.Rows[row]) {
		return nil
	}
	return view.Rows[row][col]
}
