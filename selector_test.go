package sheetgrid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hiddenSheetsWorkbook has the sheets
// hidden1 (Hidden), hidden2 (Hidden), sheet1, sheet2.
func hiddenSheetsWorkbook() *Workbook {
	return NewWorkbook(
		NewSheet("hidden1", Hidden, nil),
		NewSheet("hidden2", VeryHidden, nil),
		NewSheet("sheet1", Visible, nil),
		NewSheet("sheet2", Visible, nil),
	)
}

func TestWorkbook_SheetNames(t *testing.T) {
	wb := hiddenSheetsWorkbook()
	assert.Equal(t, []string{"sheet1", "sheet2"}, wb.SheetNames(DefaultOptions))
	assert.Equal(t, []string{"hidden1", "hidden2", "sheet1", "sheet2"}, wb.SheetNames(0))
	// Toggling back on the same workbook
	assert.Equal(t, []string{"sheet1", "sheet2"}, wb.SheetNames(OptionHideSheets))
}

func TestWorkbook_SheetByName(t *testing.T) {
	wb := hiddenSheetsWorkbook()

	_, err := wb.SheetByName("hidden1", DefaultOptions)
	require.ErrorIs(t, err, ErrSheetNotAccessible)
	var notAccessible *SheetNotAccessibleError
	require.ErrorAs(t, err, &notAccessible)
	assert.True(t, notAccessible.Hidden)
	assert.Equal(t, "hidden1", notAccessible.Name)

	sheet, err := wb.SheetByName("hidden1", OptionHideRows|OptionHideColumns)
	require.NoError(t, err)
	assert.Same(t, wb.Sheets[0], sheet)

	_, err = wb.SheetByName("hidden1", DefaultOptions)
	require.ErrorIs(t, err, ErrSheetNotAccessible, "hidden again after re-enabling")

	sheet, err = wb.SheetByName("sheet2", DefaultOptions)
	require.NoError(t, err)
	assert.Same(t, wb.Sheets[3], sheet)

	_, err = wb.SheetByName("missing", 0)
	require.ErrorIs(t, err, ErrSheetNotAccessible)
	require.ErrorAs(t, err, &notAccessible)
	assert.False(t, notAccessible.Hidden)
	assert.NotEqual(t,
		(&SheetNotAccessibleError{Name: "x", Hidden: true}).Error(),
		(&SheetNotAccessibleError{Name: "x"}).Error(),
	)
}

func TestWorkbook_SheetByName_Duplicates(t *testing.T) {
	visible := NewSheet("dup", Visible, nil)
	hidden := NewSheet("dup", Hidden, nil)
	wb := NewWorkbook(visible, hidden)

	_, err := wb.SheetByName("dup", DefaultOptions)
	assert.ErrorIs(t, err, ErrSheetNotAccessible)

	sheet, err := wb.SheetByName("dup", 0)
	require.NoError(t, err)
	assert.Same(t, visible, sheet)
}

func TestWorkbook_SheetByIndex(t *testing.T) {
	wb := hiddenSheetsWorkbook()
	tests := []struct {
		name      string
		index     int
		opts      Options
		wantSheet string
		wantErr   error
	}{
		{name: "first visible", index: 0, opts: DefaultOptions, wantSheet: "sheet1"},
		{name: "second visible", index: 1, opts: DefaultOptions, wantSheet: "sheet2"},
		{name: "past visible", index: 2, opts: DefaultOptions, wantErr: ErrIndexOutOfRange},
		{name: "first of all", index: 0, opts: 0, wantSheet: "hidden1"},
		{name: "last of all", index: 3, opts: 0, wantSheet: "sheet2"},
		{name: "past all", index: 4, opts: 0, wantErr: ErrIndexOutOfRange},
		{name: "negative", index: -1, opts: 0, wantErr: ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := wb.SheetByIndex(tt.index, tt.opts)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sheet)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSheet, sheet.Name)
		})
	}
}

func TestWorkbook_SelectSheets(t *testing.T) {
	wb := hiddenSheetsWorkbook()

	sheets, err := wb.SelectSheets([]SheetRef{SheetNamed("sheet2"), SheetAt(0)}, DefaultOptions)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, "sheet2", sheets[0].Name)
	assert.Equal(t, "sheet1", sheets[1].Name)

	sheets, err = wb.SelectSheets([]SheetRef{SheetNamed("sheet1"), SheetNamed("hidden2")}, DefaultOptions)
	require.ErrorIs(t, err, ErrSheetNotAccessible)
	assert.Nil(t, sheets, "no partial result")
	assert.Contains(t, err.Error(), `"hidden2"`)

	_, err = wb.SelectSheets([]SheetRef{SheetAt(0), SheetAt(7)}, DefaultOptions)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.False(t, errors.Is(err, ErrSheetNotAccessible))
}

func TestWorkbook_AllSheets(t *testing.T) {
	wb := hiddenSheetsWorkbook()
	sheets := wb.AllSheets(0)
	require.Len(t, sheets, 4)
	sheets[0] = nil
	assert.NotNil(t, wb.Sheets[0], "returned slice is a copy")
	assert.Len(t, wb.AllSheets(DefaultOptions), 2)
}

func TestSheetRef(t *testing.T) {
	assert.Equal(t, `"Data"`, SheetNamed("Data").String())
	assert.Equal(t, "#2", SheetAt(2).String())
	assert.True(t, SheetAt(0).IsIndex())
	assert.False(t, SheetNamed("x").IsIndex())
	assert.Equal(t, -1, SheetNamed("x").Index())
}

func TestOptions_String(t *testing.T) {
	assert.Equal(t, "HideSheets|HideRows|HideColumns", DefaultOptions.String())
	assert.Equal(t, "HideRows", OptionHideRows.String())
	assert.Equal(t, "no Options", Options(0).String())
}
