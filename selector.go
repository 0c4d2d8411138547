package sheetgrid

import (
	"fmt"
	"strconv"
)

// SheetRef references a sheet either by name or by 0-based index.
type SheetRef struct {
	name    string
	index   int
	isIndex bool
}

// SheetNamed references the first sheet with name.
func SheetNamed(name string) SheetRef {
	return SheetRef{name: name}
}

// SheetAt references a sheet by 0-based index.
func SheetAt(index int) SheetRef {
	return SheetRef{index: index, isIndex: true}
}

// IsIndex reports if the reference uses an index.
func (r SheetRef) IsIndex() bool { return r.isIndex }

// Name returns the referenced name or an empty string for index references.
func (r SheetRef) Name() string { return r.name }

// Index returns the referenced index or -1 for name references.
func (r SheetRef) Index() int {
	if !r.isIndex {
		return -1
	}
	return r.index
}

func (r SheetRef) String() string {
	if r.isIndex {
		return "#" + strconv.Itoa(r.index)
	}
	return strconv.Quote(r.name)
}

// selectable returns the sheets that can be selected with opts.
func (wb *Workbook) selectable(opts Options) []*Sheet {
	if !opts.Has(OptionHideSheets) {
		return wb.Sheets
	}
	visible := make([]*Sheet, 0, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		if sheet.Visibility.IsVisible() {
			visible = append(visible, sheet)
		}
	}
	return visible
}

// SheetNames returns the names of the selectable sheets in workbook order.
// With OptionHideSheets only visible sheets are listed.
// Duplicate names are preserved.
func (wb *Workbook) SheetNames(opts Options) []string {
	sheets := wb.selectable(opts)
	names := make([]string, len(sheets))
	for i, sheet := range sheets {
		names[i] = sheet.Name
	}
	return names
}

// AllSheets returns the selectable sheets in workbook order.
func (wb *Workbook) AllSheets(opts Options) []*Sheet {
	sheets := wb.selectable(opts)
	return append([]*Sheet(nil), sheets...)
}

// SheetByName returns the first sheet with name.
//
// With OptionHideSheets any hidden sheet with that name makes the lookup
// fail with a SheetNotAccessibleError with Hidden set,
// even if another sheet with the same name is visible.
// A missing sheet results in a SheetNotAccessibleError without Hidden.
func (wb *Workbook) SheetByName(name string, opts Options) (*Sheet, error) {
	var found *Sheet
	for _, sheet := range wb.Sheets {
		if sheet.Name != name {
			continue
		}
		if opts.Has(OptionHideSheets) && !sheet.Visibility.IsVisible() {
			return nil, &SheetNotAccessibleError{Name: name, Hidden: true}
		}
		if found == nil {
			found = sheet
		}
	}
	if found == nil {
		return nil, &SheetNotAccessibleError{Name: name}
	}
	return found, nil
}

// SheetByIndex returns the sheet at the 0-based index
// of the selectable sheets.
// With OptionHideSheets the index counts only visible sheets.
func (wb *Workbook) SheetByIndex(index int, opts Options) (*Sheet, error) {
	sheets := wb.selectable(opts)
	if index < 0 || index >= len(sheets) {
		return nil, &IndexOutOfRangeError{What: "sheet", Index: index, Len: len(sheets)}
	}
	return sheets[index], nil
}

// Sheet returns the sheet referenced by ref.
func (wb *Workbook) Sheet(ref SheetRef, opts Options) (*Sheet, error) {
	if ref.isIndex {
		return wb.SheetByIndex(ref.index, opts)
	}
	return wb.SheetByName(ref.name, opts)
}

// SelectSheets resolves all refs in order.
// If any ref can't be resolved, no sheets are returned
// and the error names the failing ref.
func (wb *Workbook) SelectSheets(refs []SheetRef, opts Options) ([]*Sheet, error) {
	sheets := make([]*Sheet, 0, len(refs))
	for _, ref := range refs {
		sheet, err := wb.Sheet(ref, opts)
		if err != nil {
			return nil, fmt.Errorf("selecting sheet %s: %w", ref, err)
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}
