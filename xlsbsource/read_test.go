package xlsbsource

import (
	"testing"
	"time"

	"github.com/TsubasaBE/go-xlsb/workbook"
	"github.com/TsubasaBE/go-xlsb/worksheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-sheetgrid"
)

func TestConvertVisibility(t *testing.T) {
	assert.Equal(t, sheetgrid.Visible, convertVisibility(workbook.SheetVisible))
	assert.Equal(t, sheetgrid.Hidden, convertVisibility(workbook.SheetHidden))
	assert.Equal(t, sheetgrid.VeryHidden, convertVisibility(workbook.SheetVeryHidden))
	assert.Equal(t, sheetgrid.Visible, convertVisibility(99), "unknown state")
}

func TestConvertCell(t *testing.T) {
	tests := []struct {
		name      string
		cell      worksheet.Cell
		isDate    bool
		wantValue any
		wantType  sheetgrid.CellType
	}{
		{name: "string", cell: worksheet.Cell{V: "text"}, wantValue: "text", wantType: sheetgrid.CellString},
		{name: "error", cell: worksheet.Cell{V: "#DIV/0!"}, wantValue: "#DIV/0!", wantType: sheetgrid.CellError},
		{name: "error N/A", cell: worksheet.Cell{V: "#N/A"}, wantValue: "#N/A", wantType: sheetgrid.CellError},
		{name: "number", cell: worksheet.Cell{V: 1.5}, wantValue: 1.5, wantType: sheetgrid.CellNumber},
		{name: "bool", cell: worksheet.Cell{V: false}, wantValue: false, wantType: sheetgrid.CellBoolean},
		{name: "negative date serial", cell: worksheet.Cell{V: -1.0}, isDate: true, wantValue: -1.0, wantType: sheetgrid.CellNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := convertCell(tt.cell, tt.isDate, false)
			require.NotNil(t, cell)
			assert.Equal(t, tt.wantValue, cell.Value)
			assert.Equal(t, tt.wantType, cell.Type)
		})
	}
}

func TestConvertCell_Coordinates(t *testing.T) {
	cell := convertCell(worksheet.Cell{R: 0, C: 2, V: "x"}, false, false)
	require.NotNil(t, cell)
	assert.Equal(t, sheetgrid.Coord{Row: 1, Col: 3}, cell.Coord())

	assert.Nil(t, convertCell(worksheet.Cell{R: 1, C: 1}, false, false), "blank")
	assert.Nil(t, convertCell(worksheet.Cell{R: 1, C: 1, V: ""}, false, false), "empty string")
}

func TestConvertCell_Date(t *testing.T) {
	for _, tt := range []struct {
		name     string
		serial   float64
		date1904 bool
	}{
		{name: "1900", serial: 45292},
		{name: "1904", serial: 45292 - 1462, date1904: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cell := convertCell(worksheet.Cell{V: tt.serial}, true, tt.date1904)
			require.NotNil(t, cell)
			require.Equal(t, sheetgrid.CellDate, cell.Type)
			date := cell.Value.(time.Time)
			assert.Equal(t, 2024, date.Year())
			assert.Equal(t, time.January, date.Month())
			assert.Equal(t, 1, date.Day())
		})
	}
}
