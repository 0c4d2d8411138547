package sheetgrid

import (
	"fmt"
	"sort"
)

// CellType tags the kind of value a Cell holds.
type CellType int

const (
	CellBlank CellType = iota
	CellString
	CellNumber
	CellBoolean
	CellDate
	CellError
)

// String returns a human-readable name for the CellType.
func (t CellType) String() string {
	switch t {
	case CellBlank:
		return "Blank"
	case CellString:
		return "String"
	case CellNumber:
		return "Number"
	case CellBoolean:
		return "Boolean"
	case CellDate:
		return "Date"
	case CellError:
		return "Error"
	default:
		return fmt.Sprintf("CellType(%d)", int(t))
	}
}

// Cell is a single spreadsheet cell addressed by
// 1-based Row and Col.
type Cell struct {
	Row   int
	Col   int
	Value any // string, float64, bool, time.Time or nil
	Type  CellType
}

// Suppressed reports if the cell is treated as absent
// by the visibility filter: cells without a value
// and error cells never survive filtering.
func (c *Cell) Suppressed() bool {
	return c == nil || c.Value == nil || c.Type == CellError
}

// Coord returns the coordinate of the cell.
func (c *Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// Coord is a 1-based (row, column) cell address.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("R%dC%d", c.Row, c.Col)
}

// CellStore is the sparse mapping from coordinates to cells of one sheet.
//
// A nil *CellStore is a valid empty store for all read methods.
type CellStore struct {
	cells map[Coord]*Cell
}

// NewCellStore returns a store holding the passed cells
// at the coordinates of their Row and Col fields.
func NewCellStore(cells ...*Cell) *CellStore {
	s := &CellStore{cells: make(map[Coord]*Cell, len(cells))}
	for _, cell := range cells {
		s.Set(cell)
	}
	return s
}

// Set stores cell at its own coordinate,
// replacing any cell previously stored there.
func (s *CellStore) Set(cell *Cell) {
	if s.cells == nil {
		s.cells = make(map[Coord]*Cell)
	}
	s.cells[cell.Coord()] = cell
}

// Get returns the cell at row and col or nil.
func (s *CellStore) Get(row, col int) *Cell {
	if s == nil {
		return nil
	}
	return s.cells[Coord{Row: row, Col: col}]
}

// Len returns the number of stored cells.
func (s *CellStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Coords returns the coordinates of all stored cells in row-major order.
func (s *CellStore) Coords() []Coord {
	if s == nil {
		return nil
	}
	coords := make([]Coord, 0, len(s.cells))
	for coord := range s.cells {
		coords = append(coords, coord)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}

// Range calls fn for every stored cell in row-major order
// until fn returns false.
func (s *CellStore) Range(fn func(coord Coord, cell *Cell) bool) {
	for _, coord := range s.Coords() {
		if !fn(coord, s.cells[coord]) {
			return
		}
	}
}

// Extent returns the bounding box of all stored coordinates.
// An empty store returns an empty Dimension.
func (s *CellStore) Extent() Dimension {
	if s.Len() == 0 {
		return EmptyDimension
	}
	dim := Dimension{MinRow: -1}
	for coord := range s.cells {
		if dim.MinRow == -1 {
			dim = Dimension{MinRow: coord.Row, MinCol: coord.Col, MaxRow: coord.Row, MaxCol: coord.Col}
			continue
		}
		dim.MinRow = min(dim.MinRow, coord.Row)
		dim.MinCol = min(dim.MinCol, coord.Col)
		dim.MaxRow = max(dim.MaxRow, coord.Row)
		dim.MaxCol = max(dim.MaxCol, coord.Col)
	}
	return dim
}

// Matrix returns the values of the cells within rows 1..dim.MaxRow
// and columns 1..dim.MaxCol as dense matrix.
// Missing and suppressed cells are nil.
func (s *CellStore) Matrix(dim Dimension) [][]any {
	if dim.Empty() || dim.MaxRow < 1 || dim.MaxCol < 1 {
		return nil
	}
	matrix := make([][]any, dim.MaxRow)
	for r := range matrix {
		matrix[r] = make([]any, dim.MaxCol)
	}
	if s == nil {
		return matrix
	}
	for coord, cell := range s.cells {
		if coord.Row < 1 || coord.Col < 1 || coord.Row > dim.MaxRow || coord.Col > dim.MaxCol {
			continue
		}
		if cell.Suppressed() {
			continue
		}
		matrix[coord.Row-1][coord.Col-1] = cell.Value
	}
	return matrix
}

// hasSuppressed reports if any stored cell would be
// dropped by the empty/error suppression rule.
func (s *CellStore) hasSuppressed() bool {
	if s == nil {
		return false
	}
	for _, cell := range s.cells {
		if cell.Suppressed() {
			return true
		}
	}
	return false
}
