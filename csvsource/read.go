// Package csvsource loads CSV files as single sheet workbooks.
//
// CSV has no visibility metadata, so the sheet is always visible
// and no rows or columns are hidden. Character encoding, newline
// and separator are detected from the data.
//
// Blank lines are dropped by encoding/csv and don't become rows,
// so the following records move up and ParseOptions.SkipRows
// counts non-blank records only.
//
// Example usage:
//
//	data, err := os.ReadFile("invoices.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	wb, format, err := csvsource.Read(data, "invoices", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("separator:", format.Separator)
//	view, err := sheetgrid.Parse(wb, sheetgrid.SheetAt(0), sheetgrid.DefaultOptions, sheetgrid.ParseOptions{})
package csvsource

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-sheetgrid"
)

// Read parses CSV data with detected format into a workbook
// with one visible sheet named sheetName.
// A nil config uses NewDefaultDetectionConfig.
//
// Parameters:
//   - data: The raw CSV bytes in any detectable encoding
//   - sheetName: Name of the single sheet of the returned workbook
//   - config: Format detection settings, may be nil
//
// Returns:
//   - The workbook with one visible sheet
//   - The detected format
//   - Error if the format can't be detected or the records can't be parsed
func Read(data []byte, sheetName string, config *DetectionConfig) (*sheetgrid.Workbook, *Format, error) {
	if config == nil {
		config = NewDefaultDetectionConfig()
	}
	utf8, encoding, err := decode(data, config)
	if err != nil {
		return nil, nil, err
	}
	format, utf8 := detectFormat(utf8, encoding)
	records, err := parseRecords(utf8, format.Separator)
	if err != nil {
		return nil, format, err
	}
	sheet := sheetgrid.NewSheet(sheetName, sheetgrid.Visible, cellStore(records))
	return sheetgrid.NewWorkbook(sheet), format, nil
}

// ReadWithFormat parses CSV data with an explicit format.
func ReadWithFormat(data []byte, sheetName string, format *Format) (*sheetgrid.Workbook, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	utf8, err := decodeWithEncoding(data, format.Encoding)
	if err != nil {
		return nil, err
	}
	if sep := parseSepHeaderLine(firstLine(utf8)); sep != "" {
		if sep != format.Separator {
			return nil, fmt.Errorf("separator %q in header line is different from format separator %q", sep, format.Separator)
		}
		_, utf8, _ = bytes.Cut(utf8, []byte{'\n'})
	}
	records, err := parseRecords(utf8, format.Separator)
	if err != nil {
		return nil, err
	}
	sheet := sheetgrid.NewSheet(sheetName, sheetgrid.Visible, cellStore(records))
	return sheetgrid.NewWorkbook(sheet), nil
}

// ReadFile reads a CSV file using the file name as sheet name.
func ReadFile(file fs.FileReader, config *DetectionConfig) (*sheetgrid.Workbook, *Format, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return Read(data, file.Name(), config)
}

func firstLine(data []byte) []byte {
	line, _, _ := bytes.Cut(data, []byte{'\n'})
	return line
}

func parseRecords(data []byte, separator string) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = rune(separator[0])
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	var records [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// cellStore numbers records and fields starting at 1.
// Empty fields don't get a cell.
func cellStore(records [][]string) *sheetgrid.CellStore {
	store := sheetgrid.NewCellStore()
	for r, record := range records {
		for c, field := range record {
			if field == "" {
				continue
			}
			store.Set(&sheetgrid.Cell{
				Row:   r + 1,
				Col:   c + 1,
				Value: field,
				Type:  sheetgrid.CellString,
			})
		}
	}
	return store
}
