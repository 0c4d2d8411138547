package sheetgrid

// HiddenRows returns the 1-based indices of all rows
// of sheet that are marked as hidden.
// An empty set is returned if enabled is false.
func HiddenRows(sheet *Sheet, enabled bool) IntSet {
	rows := make(IntSet)
	if !enabled {
		return rows
	}
	for row, dim := range sheet.RowDimensions {
		if dim.Hidden {
			rows.Add(row)
		}
	}
	return rows
}

// HiddenColumns returns the 1-based indices of all columns
// of sheet covered by a hidden column dimension record.
// An empty set is returned if enabled is false.
func HiddenColumns(sheet *Sheet, enabled bool) IntSet {
	cols := make(IntSet)
	if !enabled {
		return cols
	}
	for _, dim := range sheet.ColumnDimensions {
		if !dim.Hidden {
			continue
		}
		for col := dim.Min; col <= dim.Max; col++ {
			cols.Add(col)
		}
	}
	return cols
}
