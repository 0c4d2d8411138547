package sheetgrid

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Filter holds the explicit restrictions of one parse call.
//
// A nil AllowedColumns lets all columns pass,
// a nil SkipRows skips no rows.
// A Filter must not be shared between concurrent parse calls.
type Filter struct {
	// AllowedColumns holds 1-based column indices.
	AllowedColumns IntSet
	// SkipRows holds 1-based row indices.
	SkipRows IntSet
}

// IsZero reports if the filter has no restrictions.
func (f Filter) IsZero() bool {
	return f.AllowedColumns == nil && f.SkipRows == nil
}

// NewFilter translates the 0-based column and row indices
// of a caller into a Filter using 1-based indices.
// An empty usecols or skiprows slice means no restriction.
func NewFilter(usecols, skiprows []int) Filter {
	return Filter{
		AllowedColumns: shiftToOneBased(usecols),
		SkipRows:       shiftToOneBased(skiprows),
	}
}

func shiftToOneBased(indices []int) IntSet {
	if len(indices) == 0 {
		return nil
	}
	set := make(IntSet, len(indices))
	for _, i := range indices {
		set.Add(i + 1)
	}
	return set
}

// UseColumns selects the columns to parse, either by
// 0-based indices, by column letters, or by header names.
// The zero value selects all columns.
type UseColumns struct {
	indices []int
	letters string
	names   []string
}

// ColumnIndices selects columns by 0-based index.
func ColumnIndices(indices ...int) UseColumns {
	return UseColumns{indices: indices}
}

// ColumnLetters selects columns by a comma separated list
// of column letters and letter ranges like "A:C,E".
func ColumnLetters(letters string) UseColumns {
	return UseColumns{letters: letters}
}

// ColumnNames selects columns by their header names.
// Names are matched after the header row of the converted
// table is known, so they don't restrict the remapping.
func ColumnNames(names ...string) UseColumns {
	return UseColumns{names: names}
}

// IsZero reports if no columns were selected which means all columns.
func (u UseColumns) IsZero() bool {
	return len(u.indices) == 0 && strings.TrimSpace(u.letters) == "" && len(u.names) == 0
}

// Names returns the header names selected by ColumnNames.
func (u UseColumns) Names() []string {
	return u.names
}

// Indices returns the selected 0-based column indices
// or nil if the selection is not index based.
func (u UseColumns) Indices() ([]int, error) {
	switch {
	case len(u.indices) > 0:
		for _, i := range u.indices {
			if i < 0 {
				return nil, &IndexOutOfRangeError{What: "column", Index: i, Len: -1}
			}
		}
		return u.indices, nil
	case strings.TrimSpace(u.letters) != "":
		return parseColumnLetters(u.letters)
	}
	return nil, nil
}

func (u UseColumns) String() string {
	switch {
	case len(u.indices) > 0:
		return fmt.Sprintf("columns %v", u.indices)
	case strings.TrimSpace(u.letters) != "":
		return fmt.Sprintf("columns %s", u.letters)
	case len(u.names) > 0:
		return fmt.Sprintf("columns %q", u.names)
	}
	return "all columns"
}

// parseColumnLetters converts a list like "A:C,E"
// into the 0-based indices [0 1 2 4].
func parseColumnLetters(letters string) ([]int, error) {
	var indices []int
	for part := range strings.SplitSeq(letters, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		first, last, isRange := strings.Cut(part, ":")
		from, err := excelize.ColumnNameToNumber(strings.TrimSpace(first))
		if err != nil {
			return nil, fmt.Errorf("invalid column letters %q: %w", part, err)
		}
		to := from
		if isRange {
			to, err = excelize.ColumnNameToNumber(strings.TrimSpace(last))
			if err != nil {
				return nil, fmt.Errorf("invalid column letters %q: %w", part, err)
			}
			if to < from {
				return nil, fmt.Errorf("invalid column range %q: last column before first", part)
			}
		}
		for col := from; col <= to; col++ {
			indices = append(indices, col-1)
		}
	}
	return indices, nil
}
