package csvsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-sheetgrid"
	"github.com/domonda/go-sheetgrid/table"
)

func TestRead_DetectFormat(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantFormat Format
		wantRows   [][]string
	}{
		{
			name:       "comma",
			data:       "a,b\n1,2\n",
			wantFormat: Format{Encoding: "UTF-8", Separator: ",", Newline: "\n"},
			wantRows:   [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:       "semicolon with decimal commas",
			data:       "a;b;c\r\n1,5;2;3\r\n",
			wantFormat: Format{Encoding: "UTF-8", Separator: ";", Newline: "\r\n"},
			wantRows:   [][]string{{"a", "b", "c"}, {"1,5", "2", "3"}},
		},
		{
			name:       "tab",
			data:       "a\tb\tc\n1\t2\t3\n",
			wantFormat: Format{Encoding: "UTF-8", Separator: "\t", Newline: "\n"},
			wantRows:   [][]string{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			name:       "sep header line",
			data:       "sep=|\na|b,c\n",
			wantFormat: Format{Encoding: "UTF-8", Separator: "|", Newline: "\n"},
			wantRows:   [][]string{{"a", "b,c"}},
		},
		{
			name:       "quoted fields",
			data:       "\"x, y\",z\n",
			wantFormat: Format{Encoding: "UTF-8", Separator: ",", Newline: "\n"},
			wantRows:   [][]string{{"x, y", "z"}},
		},
		{
			name:       "UTF-8 BOM",
			data:       "\xEF\xBB\xBFName,Straße\n",
			wantFormat: Format{Encoding: "UTF-8", Separator: ",", Newline: "\n"},
			wantRows:   [][]string{{"Name", "Straße"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb, format, err := Read([]byte(tt.data), "test", nil)
			require.NoError(t, err)
			assert.NotEmpty(t, format.Encoding)
			assert.Equal(t, tt.wantFormat.Separator, format.Separator)
			assert.Equal(t, tt.wantFormat.Newline, format.Newline)

			require.Len(t, wb.Sheets, 1)
			sheet := wb.Sheets[0]
			assert.Equal(t, "test", sheet.Name)
			assert.Equal(t, sheetgrid.Visible, sheet.Visibility)

			view, err := sheetgrid.ParseSheet(sheet, sheetgrid.DefaultOptions, sheetgrid.ParseOptions{HeaderRow: table.NoHeaderRow})
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, table.ViewStrings(view, false))
		})
	}
}

func TestRead_EmptyFields(t *testing.T) {
	wb, _, err := Read([]byte("a,,c\n,,\nd,e,\n"), "test", nil)
	require.NoError(t, err)

	cells := wb.Sheets[0].Cells()
	assert.Equal(t, 4, cells.Len())
	assert.Nil(t, cells.Get(1, 2))
	assert.Equal(t, "e", cells.Get(3, 2).Value)
	assert.Equal(t, sheetgrid.CellString, cells.Get(3, 2).Type)
	assert.Equal(t, sheetgrid.Dimension{MinRow: 1, MinCol: 1, MaxRow: 3, MaxCol: 3}, wb.Sheets[0].Dimension)
}

func TestReadWithFormat(t *testing.T) {
	format := &Format{Encoding: "UTF-8", Separator: ";", Newline: "\n"}

	wb, err := ReadWithFormat([]byte("sep=;\na;b\n"), "test", format)
	require.NoError(t, err)
	assert.Equal(t, "b", wb.Sheets[0].Cells().Get(1, 2).Value)

	_, err = ReadWithFormat([]byte("sep=,\na,b\n"), "test", format)
	assert.Error(t, err, "separator mismatch")

	_, err = ReadWithFormat([]byte("a;b\n"), "test", &Format{Encoding: "UTF-8", Separator: ";;", Newline: "\n"})
	assert.Error(t, err, "invalid separator")

	_, err = ReadWithFormat([]byte("a;b\n"), "test", nil)
	assert.Error(t, err, "nil format")
}

func TestReadFile(t *testing.T) {
	file := fs.MemFile{FileName: "invoices.csv", FileData: []byte("Number;Amount\nINV-1;100\n")}
	wb, format, err := ReadFile(file, nil)
	require.NoError(t, err)
	assert.Equal(t, ";", format.Separator)
	assert.Equal(t, "invoices.csv", wb.Sheets[0].Name)

	view, err := sheetgrid.Parse(wb, sheetgrid.SheetNamed("invoices.csv"), sheetgrid.DefaultOptions, sheetgrid.ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Number", "Amount"}, view.Columns())
	assert.Equal(t, [][]string{{"INV-1", "100"}}, table.ViewStrings(view, false))
}

func TestFormat_Validate(t *testing.T) {
	tests := []struct {
		name    string
		format  *Format
		wantErr bool
	}{
		{name: "nil", format: nil, wantErr: true},
		{name: "valid", format: &Format{Encoding: "UTF-8", Separator: ",", Newline: "\n"}},
		{name: "valid CRLF", format: &Format{Encoding: "ISO 8859-1", Separator: ";", Newline: "\r\n"}},
		{name: "missing encoding", format: &Format{Separator: ",", Newline: "\n"}, wantErr: true},
		{name: "empty separator", format: &Format{Encoding: "UTF-8", Newline: "\n"}, wantErr: true},
		{name: "invalid newline", format: &Format{Encoding: "UTF-8", Separator: ",", Newline: "\r"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.format.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseSepHeaderLine(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "sep=;", want: ";"},
		{line: "SEP=\t", want: "\t"},
		{line: `"sep=,"`, want: ","},
		{line: "sep=;\r", want: ";"},
		{line: "sep=", want: ""},
		{line: "sep=;;", want: ""},
		{line: "a;b", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSepHeaderLine([]byte(tt.line)))
		})
	}
}

func TestRead_BlankLines(t *testing.T) {
	wb, _, err := Read([]byte("Name,Amount\n\nfirst,1\n\n\nsecond,2\n"), "test", nil)
	require.NoError(t, err)

	cells := wb.Sheets[0].Cells()
	assert.Equal(t, "first", cells.Get(2, 1).Value, "blank line dropped")
	assert.Equal(t, "second", cells.Get(3, 1).Value)
	assert.Equal(t, 3, wb.Sheets[0].Dimension.MaxRow)

	view, err := sheetgrid.ParseSheet(wb.Sheets[0], sheetgrid.DefaultOptions, sheetgrid.ParseOptions{SkipRows: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"second", "2"}}, table.ViewStrings(view, false), "skip rows counts non-blank records")
}
