package sheetgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHiddenRows(t *testing.T) {
	sheet := NewSheet("sheet1", Visible, nil)
	sheet.SetRowHidden(2, true)
	sheet.SetRowHidden(3, false)
	sheet.SetRowHidden(7, true)

	assert.Equal(t, []int{2, 7}, HiddenRows(sheet, true).Sorted())

	disabled := HiddenRows(sheet, false)
	assert.NotNil(t, disabled)
	assert.Empty(t, disabled)
}

func TestHiddenColumns(t *testing.T) {
	sheet := NewSheet("sheet1", Visible, nil)
	sheet.SetColumnsHidden(2, 4, true)
	sheet.SetColumnsHidden(5, 5, false)
	sheet.SetColumnsHidden(8, 8, true)

	assert.Equal(t, []int{2, 3, 4, 8}, HiddenColumns(sheet, true).Sorted())

	disabled := HiddenColumns(sheet, false)
	assert.NotNil(t, disabled)
	assert.Empty(t, disabled)
}

func TestHiddenRows_NoDimensions(t *testing.T) {
	sheet := &Sheet{Name: "bare"}
	assert.Empty(t, HiddenRows(sheet, true))
	assert.Empty(t, HiddenColumns(sheet, true))
}
