package sheetgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrSheetNotAccessible is matched by errors.Is for every
	// requested sheet that either does not exist or is hidden
	// while hidden sheets are excluded by OptionHideSheets.
	ErrSheetNotAccessible = errors.New("sheet not accessible")

	// ErrIndexOutOfRange is matched by errors.Is for sheet
	// or column indices outside of the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// SheetNotAccessibleError reports a sheet requested by name
// that can't be returned.
//
// Hidden is true if the sheet exists but is hidden,
// false if no sheet with that name exists.
// Both cases match ErrSheetNotAccessible.
type SheetNotAccessibleError struct {
	Name   string
	Hidden bool
}

func (e *SheetNotAccessibleError) Error() string {
	if e.Hidden {
		return fmt.Sprintf("sheet %q exists but is hidden, disable OptionHideSheets to access it", e.Name)
	}
	return fmt.Sprintf("sheet %q does not exist", e.Name)
}

func (e *SheetNotAccessibleError) Is(target error) bool {
	return target == ErrSheetNotAccessible
}

// IndexOutOfRangeError reports an index outside of [0, Len).
// Len is -1 if the upper bound is not known.
type IndexOutOfRangeError struct {
	What  string // "sheet" or "column"
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	if e.Len < 0 {
		return fmt.Sprintf("%s index %d out of range", e.What, e.Index)
	}
	return fmt.Sprintf("%s index %d out of range [0..%d)", e.What, e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
