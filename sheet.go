package sheetgrid

import (
	"fmt"
	"sync"
)

// Visibility is the sheet state stored in a workbook.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
	// VeryHidden sheets can only be unhidden programmatically.
	// They are treated exactly like Hidden sheets.
	VeryHidden
)

// IsVisible collapses the visibility to a boolean.
func (v Visibility) IsVisible() bool { return v == Visible }

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case VeryHidden:
		return "veryHidden"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// RowDimension holds the metadata of one row.
type RowDimension struct {
	Hidden bool
}

// ColumnDimension holds the metadata of the inclusive
// 1-based column range Min..Max.
type ColumnDimension struct {
	Min    int
	Max    int
	Hidden bool
}

// Dimension is the inclusive 1-based rectangle containing all cells of a sheet.
type Dimension struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
}

// EmptyDimension contains no cells.
var EmptyDimension = Dimension{MinRow: 1, MinCol: 1, MaxRow: 0, MaxCol: 0}

// Empty reports if the dimension contains no cells.
func (d Dimension) Empty() bool {
	return d.MinRow > d.MaxRow || d.MinCol > d.MaxCol
}

// NumRows returns the number of rows spanned by the dimension.
func (d Dimension) NumRows() int {
	if d.Empty() {
		return 0
	}
	return d.MaxRow - d.MinRow + 1
}

// NumCols returns the number of columns spanned by the dimension.
func (d Dimension) NumCols() int {
	if d.Empty() {
		return 0
	}
	return d.MaxCol - d.MinCol + 1
}

func (d Dimension) String() string {
	if d.Empty() {
		return "empty"
	}
	return fmt.Sprintf("R%dC%d:R%dC%d", d.MinRow, d.MinCol, d.MaxRow, d.MaxCol)
}

// Sheet is one tabular page of a Workbook.
//
// The dimension metadata of a sheet is never modified by filtering.
// The cell store can be substituted temporarily with WithCells.
type Sheet struct {
	Name       string
	Visibility Visibility

	// RowDimensions is keyed by 1-based row index.
	// Rows without an entry are not hidden.
	RowDimensions map[int]RowDimension

	// ColumnDimensions may contain records
	// covering multiple columns each.
	ColumnDimensions []ColumnDimension

	// Dimension is the extent of the cells of the sheet.
	Dimension Dimension

	mu     sync.Mutex // serializes WithCells
	cells  *CellStore
	extent *Dimension // override installed by WithCells
}

// NewSheet returns a Sheet holding cells with
// its Dimension computed from the cell coordinates.
func NewSheet(name string, visibility Visibility, cells *CellStore) *Sheet {
	if cells == nil {
		cells = NewCellStore()
	}
	return &Sheet{
		Name:          name,
		Visibility:    visibility,
		RowDimensions: make(map[int]RowDimension),
		Dimension:     cells.Extent(),
		cells:         cells,
	}
}

// Cells returns the currently installed cell store.
//
// Within a converter called by WithCells this is the
// substituted store, otherwise the original one.
func (s *Sheet) Cells() *CellStore {
	return s.cells
}

// Extent returns the extent override installed by WithCells,
// or the Dimension of the sheet if there is none.
func (s *Sheet) Extent() Dimension {
	if s.extent != nil {
		return *s.extent
	}
	return s.Dimension
}

// SetRowHidden records the hidden state of a 1-based row.
func (s *Sheet) SetRowHidden(row int, hidden bool) {
	if s.RowDimensions == nil {
		s.RowDimensions = make(map[int]RowDimension)
	}
	s.RowDimensions[row] = RowDimension{Hidden: hidden}
}

// SetColumnsHidden appends a column dimension record
// for the inclusive 1-based column range first..last.
func (s *Sheet) SetColumnsHidden(first, last int, hidden bool) {
	s.ColumnDimensions = append(s.ColumnDimensions, ColumnDimension{Min: first, Max: last, Hidden: hidden})
}

func (s *Sheet) String() string {
	return fmt.Sprintf("Sheet %q (%s, %s)", s.Name, s.Visibility, s.Dimension)
}

// Workbook is an ordered sequence of sheets.
// Sheet names are not required to be unique.
type Workbook struct {
	Sheets []*Sheet
}

// NewWorkbook returns a Workbook with the passed sheets.
func NewWorkbook(sheets ...*Sheet) *Workbook {
	return &Workbook{Sheets: sheets}
}
