package table

import (
	"fmt"
	"strconv"
	"strings"
)

// NoHeaderRow as FrameOptions.HeaderRow
// numbers the columns "0", "1", "2", ...
const NoHeaderRow = -1

// FrameOptions configures how NewFrame turns a matrix into a View.
type FrameOptions struct {
	// HeaderRow is the 0-based index of the row holding the column
	// titles, counted after blank rows have been removed.
	// Rows before the header row are discarded.
	// Use NoHeaderRow for matrices without header.
	HeaderRow int

	// KeepBlankRows keeps rows without any non-empty value.
	KeepBlankRows bool
}

// NewFrame converts a dense matrix of cell values into a View
// with column titles taken from the header row.
//
// Empty header cells are named "Unnamed: <index>" and duplicate
// titles get the suffixes ".1", ".2" and so on.
// All rows are padded with nil to the widest row of the matrix.
// Use LimitRows to restrict the number of rows of the result.
func NewFrame(title string, matrix [][]any, opts FrameOptions) (*ValuesView, error) {
	rows := matrix
	if !opts.KeepBlankRows {
		rows = RemoveBlankRows(matrix)
	}
	numCols := 0
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}

	view := &ValuesView{Tit: title}
	switch {
	case opts.HeaderRow == NoHeaderRow:
		view.Cols = make([]string, numCols)
		for col := range view.Cols {
			view.Cols[col] = strconv.Itoa(col)
		}
	case opts.HeaderRow < 0:
		return nil, fmt.Errorf("invalid header row %d", opts.HeaderRow)
	case opts.HeaderRow >= len(rows):
		if len(rows) == 0 && opts.HeaderRow == 0 {
			// Empty sheet results in an empty table
			return view, nil
		}
		return nil, fmt.Errorf("header row %d out of range, %q has only %d rows", opts.HeaderRow, title, len(rows))
	default:
		view.Cols = headerTitles(rows[opts.HeaderRow], numCols)
		rows = rows[opts.HeaderRow+1:]
	}

	view.Rows = make([][]any, len(rows))
	for i, row := range rows {
		view.Rows[i] = make([]any, numCols)
		copy(view.Rows[i], row)
	}
	return view, nil
}

func headerTitles(header []any, numCols int) []string {
	titles := make([]string, numCols)
	used := make(map[string]bool, numCols)
	for col := range titles {
		var title string
		if col < len(header) {
			title = strings.TrimSpace(FormatValue(header[col]))
		}
		if title == "" {
			title = "Unnamed: " + strconv.Itoa(col)
		}
		if used[title] {
			base := title
			for n := 1; used[title]; n++ {
				title = base + "." + strconv.Itoa(n)
			}
		}
		used[title] = true
		titles[col] = title
	}
	return titles
}

// RemoveBlankRows returns the rows of matrix
// that contain at least one non-blank value.
func RemoveBlankRows(matrix [][]any) [][]any {
	rows := make([][]any, 0, len(matrix))
	for _, row := range matrix {
		if !IsBlankRow(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// IsBlankRow reports if all values of row are nil or empty strings.
func IsBlankRow(row []any) bool {
	for _, v := range row {
		if !IsBlank(v) {
			return false
		}
	}
	return true
}

// IsBlank reports if v is nil or an empty string.
func IsBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	}
	return false
}
