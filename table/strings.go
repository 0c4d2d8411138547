package table

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// ViewStrings returns the cells of view formatted with FormatValue.
// If addHeaderRow is true, the column titles are returned as first row.
func ViewStrings(view View, addHeaderRow bool) (rows [][]string) {
	numCols := len(view.Columns())
	if addHeaderRow {
		rows = append(rows, append([]string(nil), view.Columns()...))
	}
	for row := 0; row < view.NumRows(); row++ {
		rowStrs := make([]string, numCols)
		for col := range rowStrs {
			rowStrs[col] = FormatValue(view.Cell(row, col))
		}
		rows = append(rows, rowStrs)
	}
	return rows
}

// FormatValue formats a cell value as string.
// Whole floats have no fractional part,
// times use RFC 3339 or only the date if there is no time of day.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// StringColumnWidths returns the column widths of the passed
// table as count of UTF-8 runes.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			if rowCols := len(row); rowCols > numCols {
				numCols = rowCols
			}
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for row := range rows {
		for col := 0; col < numCols && col < len(rows[row]); col++ {
			numRunes := utf8.RuneCountInString(rows[row][col])
			if numRunes > colWidths[col] {
				colWidths[col] = numRunes
			}
		}
	}
	return colWidths
}
