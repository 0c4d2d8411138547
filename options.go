package sheetgrid

import "strings"

// Options is a set of visibility switches passed
// explicitly to every operation that needs them.
type Options int

const (
	// OptionHideSheets excludes sheets that are not visible
	// from sheet names, index lookups and name lookups.
	OptionHideSheets Options = 1 << iota
	// OptionHideRows drops hidden rows.
	OptionHideRows
	// OptionHideColumns drops hidden columns.
	OptionHideColumns

	// DefaultOptions hides sheets, rows and columns.
	DefaultOptions = OptionHideSheets | OptionHideRows | OptionHideColumns
)

func (o Options) Has(option Options) bool {
	return o&option != 0
}

func (o Options) String() string {
	var b strings.Builder
	for _, x := range []struct {
		option Options
		name   string
	}{
		{OptionHideSheets, "HideSheets"},
		{OptionHideRows, "HideRows"},
		{OptionHideColumns, "HideColumns"},
	} {
		if !o.Has(x.option) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString(x.name)
	}
	if b.Len() == 0 {
		return "no Options"
	}
	return b.String()
}
