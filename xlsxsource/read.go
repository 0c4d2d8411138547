// Package xlsxsource loads Excel files (.xlsx, .xlsm, .xltm, .xltx)
// as sheetgrid.Workbook with sheet, row and column visibility.
//
// The package uses the excelize library (github.com/xuri/excelize/v2)
// to parse the files.
//
// Key features:
//   - All sheets are loaded in workbook order, including hidden ones
//   - Hidden rows and hidden column ranges are recorded per sheet
//   - Numbers are float64, booleans are bool and cells with a
//     date number format are time.Time
//   - Error cells like #DIV/0! are tagged sheetgrid.CellError
//
// Example usage:
//
//	wb, err := xlsxsource.ReadLocalFile("data.xlsx", xlsxsource.ReadOptions{})
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
package xlsxsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/TsubasaBE/go-xlsb"
	fs "github.com/ungerik/go-fs"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-sheetgrid"
)

// customNumFmtID is the first ID of a custom number format.
const customNumFmtID = 164

// ReadOptions configures how cell values are read.
type ReadOptions struct {
	// FormattedValues returns the cell values as strings formatted
	// with the number format of the cell like Excel displays them.
	// Otherwise numbers are float64, booleans are bool,
	// and date cells are time.Time.
	FormattedValues bool
}

// Read reads all sheets of an Excel file from reader.
//
// Parameters:
//   - reader: An io.Reader containing Excel file data (.xlsx, .xlsm, .xltm, .xltx)
//   - opts: ReadOptions selecting typed or formatted cell values
//
// Returns:
//   - wb: A workbook with one sheet per sheet of the file, hidden sheets included
//   - err: Error if the file cannot be read or parsed
//
// Example:
//
//	file, err := os.Open("report.xlsx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	wb, err := xlsxsource.Read(file, xlsxsource.ReadOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(wb.SheetNames(sheetgrid.DefaultOptions))
func Read(reader io.Reader, opts ReadOptions) (wb *sheetgrid.Workbook, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return FromFile(f, opts)
}

// ReadFile reads all sheets of an Excel file.
// Errors are prefixed with the name of the file.
func ReadFile(file fs.FileReader, opts ReadOptions) (*sheetgrid.Workbook, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, err
	}
	wb, err := Read(bytes.NewReader(data), opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file.Name(), err)
	}
	return wb, nil
}

// ReadLocalFile reads all sheets of the Excel file at filename.
//
// Example:
//
//	wb, err := xlsxsource.ReadLocalFile("/path/to/data.xlsx", xlsxsource.ReadOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	view, err := sheetgrid.Parse(wb, sheetgrid.SheetNamed("Invoices"), sheetgrid.DefaultOptions, sheetgrid.ParseOptions{})
func ReadLocalFile(filename string, opts ReadOptions) (wb *sheetgrid.Workbook, err error) {
	f, e := excelize.OpenFile(filename)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return FromFile(f, opts)
}

// FromFile converts all sheets of an opened excelize.File
// in workbook order, including hidden sheets.
// The file is not closed.
func FromFile(f *excelize.File, opts ReadOptions) (*sheetgrid.Workbook, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}
	r := &sheetReader{
		f:          f,
		opts:       opts,
		date1904:   props.Date1904 != nil && *props.Date1904,
		dateStyles: make(map[int]bool),
	}
	wb := sheetgrid.NewWorkbook()
	for _, name := range f.GetSheetList() {
		r.name = name
		sheet, err := r.readSheet()
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

type sheetReader struct {
	f          *excelize.File
	name       string // current sheet
	opts       ReadOptions
	date1904   bool
	dateStyles map[int]bool // style ID -> has date number format
}

func (r *sheetReader) readSheet() (*sheetgrid.Sheet, error) {
	visible, err := r.f.GetSheetVisible(r.name)
	if err != nil {
		return nil, err
	}
	visibility := sheetgrid.Visible
	if !visible {
		visibility = sheetgrid.Hidden
	}

	rows, err := r.f.GetRows(r.name, excelize.Options{RawCellValue: !r.opts.FormattedValues})
	if err != nil {
		return nil, err
	}
	store := sheetgrid.NewCellStore()
	maxCol := 0
	for row, values := range rows {
		maxCol = max(maxCol, len(values))
		for col, str := range values {
			if str == "" {
				continue
			}
			cell, err := r.readCell(row+1, col+1, str)
			if err != nil {
				return nil, err
			}
			store.Set(cell)
		}
	}

	sheet := sheetgrid.NewSheet(r.name, visibility, store)
	if !sheet.Dimension.Empty() {
		// Like Excel, count rows and columns from A1
		sheet.Dimension.MinRow, sheet.Dimension.MinCol = 1, 1
	}

	for row := 1; row <= len(rows); row++ {
		rowVisible, err := r.f.GetRowVisible(r.name, row)
		if err != nil {
			return nil, err
		}
		if !rowVisible {
			sheet.SetRowHidden(row, true)
		}
	}

	first := 0 // first column of the current hidden run
	for col := 1; col <= maxCol+1; col++ {
		hidden := false
		if col <= maxCol {
			colName, err := excelize.ColumnNumberToName(col)
			if err != nil {
				return nil, err
			}
			colVisible, err := r.f.GetColVisible(r.name, colName)
			if err != nil {
				return nil, err
			}
			hidden = !colVisible
		}
		switch {
		case hidden && first == 0:
			first = col
		case !hidden && first != 0:
			sheet.SetColumnsHidden(first, col-1, true)
			first = 0
		}
	}
	return sheet, nil
}

func (r *sheetReader) readCell(row, col int, str string) (*sheetgrid.Cell, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	cellType, err := r.f.GetCellType(r.name, axis)
	if err != nil {
		return nil, err
	}
	dateFormat := false
	if !r.opts.FormattedValues && (cellType == excelize.CellTypeNumber || cellType == excelize.CellTypeUnset) {
		dateFormat, err = r.hasDateFormat(axis)
		if err != nil {
			return nil, err
		}
	}
	value, valueType := convertValue(cellType, str, r.opts.FormattedValues, dateFormat, r.date1904)
	return &sheetgrid.Cell{Row: row, Col: col, Value: value, Type: valueType}, nil
}

// hasDateFormat reports if the number format of the cell at axis
// shows a date. Built-in time-only formats don't count.
func (r *sheetReader) hasDateFormat(axis string) (bool, error) {
	styleID, err := r.f.GetCellStyle(r.name, axis)
	if err != nil {
		return false, err
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate, nil
	}
	style, err := r.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := xlsb.IsDateFormat(style.NumFmt, "")
	if !isDate && style.CustomNumFmt != nil {
		isDate = xlsb.IsDateFormat(max(style.NumFmt, customNumFmtID), *style.CustomNumFmt)
	}
	r.dateStyles[styleID] = isDate
	return isDate, nil
}

// convertValue returns the typed value of a cell string
// read from a cell of cellType.
// Numbers of cells with a date number format are converted
// from Excel serial dates using the 1904 date system if date1904 is true.
// Values that can't be parsed stay strings.
func convertValue(cellType excelize.CellType, str string, formatted, dateFormat, date1904 bool) (any, sheetgrid.CellType) {
	switch cellType {
	case excelize.CellTypeError:
		return str, sheetgrid.CellError
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return str, sheetgrid.CellString
	}
	if formatted {
		return str, sheetgrid.CellString
	}
	switch cellType {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(str); err == nil {
			return b, sheetgrid.CellBoolean
		}
	case excelize.CellTypeDate:
		if t, err := parseISODate(str); err == nil {
			return t, sheetgrid.CellDate
		}
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		n, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			break
		}
		if dateFormat {
			if t, err := excelize.ExcelDateToTime(n, date1904); err == nil {
				return t, sheetgrid.CellDate
			}
		}
		return n, sheetgrid.CellNumber
	}
	return str, sheetgrid.CellString
}

func parseISODate(str string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO 8601 date %q", str)
}
