package sheetgrid

import (
	"fmt"

	"github.com/domonda/go-sheetgrid/table"
)

// ParseOptions configures the conversion of sheets into tables.
// The zero value parses all columns and rows using
// the first remaining row as header.
type ParseOptions struct {
	// UseCols restricts the parsed columns.
	UseCols UseColumns

	// SkipRows holds 0-based row indices of the sheet
	// that are dropped before the header row is determined.
	SkipRows []int

	// HeaderRow is the 0-based index of the header within the
	// rows that remain after filtering and blank row removal.
	// Use table.NoHeaderRow for sheets without header.
	HeaderRow int

	// NumRows limits the number of data rows if > 0.
	NumRows int

	// KeepBlankRows keeps rows without any value.
	KeepBlankRows bool

	// Converter replaces the default conversion with ConvertSheet.
	Converter Converter
}

// ConvertSheet returns a Converter that turns the currently installed
// cells of a sheet into a table.View with the header at headerRow.
func ConvertSheet(headerRow int, keepBlankRows bool) Converter {
	return func(sheet *Sheet) (table.View, error) {
		matrix := sheet.Cells().Matrix(sheet.Extent())
		return table.NewFrame(sheet.Name, matrix, table.FrameOptions{
			HeaderRow:     headerRow,
			KeepBlankRows: keepBlankRows,
		})
	}
}

func (popts *ParseOptions) converter() Converter {
	if popts.Converter != nil {
		return popts.Converter
	}
	return ConvertSheet(popts.HeaderRow, popts.KeepBlankRows)
}

// filter returns a new Filter for every call
// so no Filter is shared between parse calls.
func (popts *ParseOptions) filter() (Filter, error) {
	usecols, err := popts.UseCols.Indices()
	if err != nil {
		return Filter{}, err
	}
	return NewFilter(usecols, popts.SkipRows), nil
}

// ParseSheet converts the visible cells of sheet into a table.
//
// Rows and columns are considered hidden depending on
// OptionHideRows and OptionHideColumns of opts.
// Errors from the converter are returned unchanged.
func ParseSheet(sheet *Sheet, opts Options, popts ParseOptions) (table.View, error) {
	filter, err := popts.filter()
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
	}
	hiddenRows := HiddenRows(sheet, opts.Has(OptionHideRows))
	hiddenCols := HiddenColumns(sheet, opts.Has(OptionHideColumns))

	view, err := ConvertVisible(sheet, hiddenRows, hiddenCols, filter, popts.converter())
	if err != nil {
		return nil, err
	}
	if names := popts.UseCols.Names(); len(names) > 0 {
		view, err = table.SelectColumns(view, names...)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
	}
	return table.LimitRows(view, popts.NumRows), nil
}

// Parse converts the sheet referenced by ref into a table.
//
// Parameters:
//   - wb: The workbook to read from
//   - ref: The sheet, by name or by index among the selectable sheets
//   - opts: Which hidden sheets, rows and columns to exclude
//   - popts: Header row, column selection, skipped rows and row limit
//
// Returns:
//   - A table.View with the visible cells of the sheet
//   - Error if the sheet can't be selected or converted
//
// Errors:
//   - *SheetNotAccessibleError (ErrSheetNotAccessible) for a missing or excluded sheet name
//   - *IndexOutOfRangeError (ErrIndexOutOfRange) for a sheet or UseCols index out of range
//   - Unknown UseCols names, wrapped with the sheet name
//   - Errors of popts.Converter unchanged
//
// Example:
//
//	view, err := sheetgrid.Parse(wb, sheetgrid.SheetNamed("Invoices"), sheetgrid.DefaultOptions, sheetgrid.ParseOptions{
//	    UseCols: sheetgrid.ColumnNames("Number", "Amount"),
//	    NumRows: 100,
//	})
//	if errors.Is(err, sheetgrid.ErrSheetNotAccessible) {
//	    // the sheet is missing or hidden
//	}
func Parse(wb *Workbook, ref SheetRef, opts Options, popts ParseOptions) (table.View, error) {
	sheet, err := wb.Sheet(ref, opts)
	if err != nil {
		return nil, err
	}
	return ParseSheet(sheet, opts, popts)
}

// ParseSheets converts the sheets referenced by refs in order.
// Either all sheets are converted or an error is returned.
//
// Parameters:
//   - wb: The workbook to read from
//   - refs: The sheets to convert, an empty slice selects none
//   - opts, popts: Applied to every sheet like in Parse
//
// Returns:
//   - One table.View per ref in the order of refs
//   - The first error of any sheet, see Parse
//
// Example:
//
//	views, err := sheetgrid.ParseSheets(wb, []sheetgrid.SheetRef{
//	    sheetgrid.SheetAt(0),
//	    sheetgrid.SheetNamed("Summary"),
//	}, sheetgrid.DefaultOptions, sheetgrid.ParseOptions{})
func ParseSheets(wb *Workbook, refs []SheetRef, opts Options, popts ParseOptions) ([]table.View, error) {
	sheets, err := wb.SelectSheets(refs, opts)
	if err != nil {
		return nil, err
	}
	return parseSheets(sheets, opts, popts)
}

// ParseAll converts all selectable sheets of wb in workbook order.
func ParseAll(wb *Workbook, opts Options, popts ParseOptions) ([]table.View, error) {
	return parseSheets(wb.AllSheets(opts), opts, popts)
}

func parseSheets(sheets []*Sheet, opts Options, popts ParseOptions) ([]table.View, error) {
	views := make([]table.View, len(sheets))
	for i, sheet := range sheets {
		view, err := ParseSheet(sheet, opts, popts)
		if err != nil {
			return nil, err
		}
		views[i] = view
	}
	return views, nil
}

// ToStructSlice converts view into a slice of structs
// using table.DefaultStructFieldNaming if naming is nil.
func ToStructSlice[T any](view table.View, naming *table.StructFieldNaming, requiredCols ...string) ([]T, error) {
	if naming == nil {
		naming = &table.DefaultStructFieldNaming
	}
	return table.ToStructSlice[T](view, naming, requiredCols, nil)
}
