package sheetgrid

import (
	"github.com/domonda/go-sheetgrid/table"
)

// Converter extracts the rows of a sheet into a table.
//
// It must read the cells through sheet.Cells and
// the extent through sheet.Extent because both are
// substituted while it is called by WithCells.
//
// The sheet stays locked while the Converter runs.
// Calling WithCells, ConvertVisible or ParseSheet for the
// same sheet from within a Converter deadlocks.
type Converter func(sheet *Sheet) (table.View, error)

// WithCells installs store as cells of the sheet and extent as
// its extent override, calls fn, and restores the original cells
// and extent before returning, also when fn fails or panics.
//
// The error of fn is returned unchanged.
// Calls for the same sheet are serialized.
func (s *Sheet) WithCells(store *CellStore, extent Dimension, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withCellsLocked(store, extent, fn)
}

func (s *Sheet) withCellsLocked(store *CellStore, extent Dimension, fn func() error) error {
	savedCells, savedExtent := s.cells, s.extent
	defer func() {
		s.cells, s.extent = savedCells, savedExtent
	}()

	s.cells, s.extent = store, &extent
	return fn()
}

// ConvertVisible remaps the cells of sheet to the rows and columns
// that are not hidden and pass filter, and calls convert with the
// remapped cells installed.
//
// The installed extent starts at row 1 and column 1 and ends
// with the last row and column holding a remapped cell.
func ConvertVisible(sheet *Sheet, hiddenRows, hiddenCols IntSet, filter Filter, convert Converter) (view table.View, err error) {
	sheet.mu.Lock()
	defer sheet.mu.Unlock()

	// Remap while holding the lock so the original cells are read
	store := Remap(sheet, hiddenRows, hiddenCols, filter)
	extent := store.Extent()
	if !extent.Empty() {
		extent.MinRow, extent.MinCol = 1, 1
	}
	err = sheet.withCellsLocked(store, extent, func() (e error) {
		view, e = convert(sheet)
		return e
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
