package sheetgrid

// Remapping is the dense renumbering of the surviving
// rows and columns of a sheet extent.
//
// RowMap and ColMap map original 1-based indices to new
// 1-based indices. Indices without a mapping are dropped.
type Remapping struct {
	RowMap  map[int]int
	ColMap  map[int]int
	NumRows int
	NumCols int
}

// NewRemapping numbers the rows dim.MinRow..dim.MaxRow that are neither
// in hiddenRows nor in filter.SkipRows, and the columns dim.MinCol..dim.MaxCol
// that are not in hiddenCols and pass filter.AllowedColumns,
// consecutively starting at 1 in their original order.
func NewRemapping(dim Dimension, hiddenRows, hiddenCols IntSet, filter Filter) *Remapping {
	m := &Remapping{
		RowMap: make(map[int]int),
		ColMap: make(map[int]int),
	}
	if dim.Empty() {
		return m
	}
	for row := dim.MinRow; row <= dim.MaxRow; row++ {
		if hiddenRows.Has(row) || filter.SkipRows.Has(row) {
			continue
		}
		m.NumRows++
		m.RowMap[row] = m.NumRows
	}
	for col := dim.MinCol; col <= dim.MaxCol; col++ {
		if hiddenCols.Has(col) {
			continue
		}
		if filter.AllowedColumns != nil && !filter.AllowedColumns.Has(col) {
			continue
		}
		m.NumCols++
		m.ColMap[col] = m.NumCols
	}
	return m
}

// Apply returns a new store with a renumbered copy of every cell
// of store whose row and column survive and that is not suppressed.
//
// The cells of store are not modified, the returned store
// holds copies with rewritten Row and Col fields.
func (m *Remapping) Apply(store *CellStore) *CellStore {
	result := NewCellStore()
	if store == nil {
		return result
	}
	for coord, cell := range store.cells {
		newRow, ok := m.RowMap[coord.Row]
		if !ok {
			continue
		}
		newCol, ok := m.ColMap[coord.Col]
		if !ok {
			continue
		}
		if cell.Suppressed() {
			continue
		}
		moved := *cell
		moved.Row = newRow
		moved.Col = newCol
		result.Set(&moved)
	}
	return result
}

// Extent returns the renumbered extent of all surviving rows and columns.
func (m *Remapping) Extent() Dimension {
	if m.NumRows == 0 || m.NumCols == 0 {
		return EmptyDimension
	}
	return Dimension{MinRow: 1, MinCol: 1, MaxRow: m.NumRows, MaxCol: m.NumCols}
}

// Remap returns the filtered and renumbered cell store of sheet.
//
// Without hidden rows or columns and without filter restrictions
// the original store is returned if it holds no suppressed cells,
// else a copy without them at unchanged coordinates.
// The sheet itself is never modified.
func Remap(sheet *Sheet, hiddenRows, hiddenCols IntSet, filter Filter) *CellStore {
	store := sheet.Cells()
	if len(hiddenRows) == 0 && len(hiddenCols) == 0 && filter.IsZero() {
		if !store.hasSuppressed() {
			return store
		}
		result := NewCellStore()
		for _, cell := range store.cells {
			if !cell.Suppressed() {
				result.Set(cell)
			}
		}
		return result
	}
	return NewRemapping(sheet.Dimension, hiddenRows, hiddenCols, filter).Apply(store)
}
