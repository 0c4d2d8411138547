// Package xlsbsource loads binary Excel files (.xlsb)
// as sheetgrid.Workbook using github.com/TsubasaBE/go-xlsb.
//
// The binary format parser exposes sheet visibility
// but no hidden row or column flags, so all rows and
// columns of the loaded sheets are visible.
//
// Example usage:
//
//	wb, err := xlsbsource.ReadLocalFile("data.xlsb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	views, err := sheetgrid.ParseAll(wb, sheetgrid.DefaultOptions, sheetgrid.ParseOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, view := range views {
//	    fmt.Printf("Sheet: %s, Rows: %d\n", view.Title(), view.NumRows())
//	}
package xlsbsource

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TsubasaBE/go-xlsb"
	"github.com/TsubasaBE/go-xlsb/workbook"
	"github.com/TsubasaBE/go-xlsb/worksheet"

	"github.com/domonda/go-sheetgrid"
)

// Read reads all sheets of a .xlsb file of size bytes from r.
//
// Parameters:
//   - r: An io.ReaderAt with the binary workbook data
//   - size: The size of the data in bytes
//
// Returns:
//   - wb: A workbook with one sheet per sheet of the file, hidden sheets included
//   - err: Error if the file cannot be opened or a sheet cannot be read
//
// Example:
//
//	data, err := os.ReadFile("report.xlsb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	wb, err := xlsbsource.Read(bytes.NewReader(data), int64(len(data)))
func Read(r io.ReaderAt, size int64) (wb *sheetgrid.Workbook, err error) {
	f, e := xlsb.OpenReader(r, size)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return FromWorkbook(f)
}

// ReadLocalFile reads all sheets of the .xlsb file at filename.
func ReadLocalFile(filename string) (wb *sheetgrid.Workbook, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	return Read(file, info.Size())
}

// FromWorkbook converts all sheets of an opened .xlsb workbook
// in workbook order, including hidden sheets.
func FromWorkbook(f *workbook.Workbook) (*sheetgrid.Workbook, error) {
	wb := sheetgrid.NewWorkbook()
	for i, name := range f.Sheets() {
		ws, err := f.Sheet(i + 1)
		if err != nil {
			return nil, err
		}
		visibility := convertVisibility(f.SheetVisibility(name))
		wb.Sheets = append(wb.Sheets, readSheet(ws, name, visibility, f.Date1904))
	}
	return wb, nil
}

func convertVisibility(v int) sheetgrid.Visibility {
	switch v {
	case workbook.SheetHidden:
		return sheetgrid.Hidden
	case workbook.SheetVeryHidden:
		return sheetgrid.VeryHidden
	}
	return sheetgrid.Visible
}

func readSheet(ws *worksheet.Worksheet, name string, visibility sheetgrid.Visibility, date1904 bool) *sheetgrid.Sheet {
	store := sheetgrid.NewCellStore()
	for row := range ws.Rows(true) {
		for _, c := range row {
			cell := convertCell(c, ws.IsDateCell(c.Style), date1904)
			if cell != nil {
				store.Set(cell)
			}
		}
	}
	sheet := sheetgrid.NewSheet(name, visibility, store)
	if ws.Dimension != nil && !sheet.Dimension.Empty() {
		sheet.Dimension.MinRow = min(sheet.Dimension.MinRow, ws.Dimension.R+1)
		sheet.Dimension.MinCol = min(sheet.Dimension.MinCol, ws.Dimension.C+1)
	}
	return sheet
}

// convertCell returns nil for blank cells.
// Strings equal to a BIFF12 error code are error cells.
func convertCell(c worksheet.Cell, isDate, date1904 bool) *sheetgrid.Cell {
	cell := &sheetgrid.Cell{Row: c.R + 1, Col: c.C + 1, Value: c.V}
	switch v := c.V.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		cell.Type = sheetgrid.CellString
		if errorStrings[v] {
			cell.Type = sheetgrid.CellError
		}
	case bool:
		cell.Type = sheetgrid.CellBoolean
	case float64:
		cell.Type = sheetgrid.CellNumber
		if isDate {
			if t, err := xlsb.ConvertDateEx(v, date1904); err == nil {
				cell.Value, cell.Type = t, sheetgrid.CellDate
			}
		}
	default:
		cell.Value = fmt.Sprint(v)
		cell.Type = sheetgrid.CellString
	}
	return cell
}

var errorStrings = map[string]bool{
	"#NULL!":        true,
	"#DIV/0!":       true,
	"#VALUE!":       true,
	"#REF!":         true,
	"#NAME?":        true,
	"#NUM!":         true,
	"#N/A":          true,
	"#GETTING_DATA": true,
}
