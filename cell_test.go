package sheetgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_Suppressed(t *testing.T) {
	tests := []struct {
		name string
		cell *Cell
		want bool
	}{
		{name: "nil cell", cell: nil, want: true},
		{name: "nil value", cell: &Cell{Row: 1, Col: 1, Type: CellString}, want: true},
		{name: "error", cell: &Cell{Row: 1, Col: 1, Value: "#DIV/0!", Type: CellError}, want: true},
		{name: "string", cell: &Cell{Row: 1, Col: 1, Value: "x", Type: CellString}, want: false},
		{name: "empty string", cell: &Cell{Row: 1, Col: 1, Value: "", Type: CellString}, want: false},
		{name: "zero number", cell: &Cell{Row: 1, Col: 1, Value: 0.0, Type: CellNumber}, want: false},
		{name: "false", cell: &Cell{Row: 1, Col: 1, Value: false, Type: CellBoolean}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.Suppressed())
		})
	}
}

func TestCellStore(t *testing.T) {
	store := NewCellStore(
		&Cell{Row: 3, Col: 2, Value: "c"},
		&Cell{Row: 1, Col: 4, Value: "b"},
		&Cell{Row: 1, Col: 2, Value: "a"},
	)
	require.Equal(t, 3, store.Len())
	assert.Equal(t, []Coord{{1, 2}, {1, 4}, {3, 2}}, store.Coords())
	assert.Equal(t, "a", store.Get(1, 2).Value)
	assert.Nil(t, store.Get(2, 2))
	assert.Equal(t, Dimension{MinRow: 1, MinCol: 2, MaxRow: 3, MaxCol: 4}, store.Extent())

	var visited []string
	store.Range(func(coord Coord, cell *Cell) bool {
		visited = append(visited, cell.Value.(string))
		return len(visited) < 2
	})
	assert.Equal(t, []string{"a", "b"}, visited)

	store.Set(&Cell{Row: 1, Col: 2, Value: "replaced"})
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, "replaced", store.Get(1, 2).Value)
}

func TestCellStore_Nil(t *testing.T) {
	var store *CellStore
	assert.Equal(t, 0, store.Len())
	assert.Nil(t, store.Get(1, 1))
	assert.Nil(t, store.Coords())
	assert.True(t, store.Extent().Empty())
	assert.False(t, store.hasSuppressed())
}

func TestCellStore_Matrix(t *testing.T) {
	store := NewCellStore(
		&Cell{Row: 1, Col: 1, Value: "A1"},
		&Cell{Row: 2, Col: 3, Value: 2.5},
		&Cell{Row: 2, Col: 1, Value: "#REF!", Type: CellError},
		&Cell{Row: 5, Col: 5, Value: "outside"},
	)
	want := [][]any{
		{"A1", nil, nil},
		{nil, nil, 2.5},
	}
	assert.Equal(t, want, store.Matrix(Dimension{MinRow: 1, MinCol: 1, MaxRow: 2, MaxCol: 3}))
	assert.Nil(t, store.Matrix(EmptyDimension))
}

func TestDimension(t *testing.T) {
	dim := Dimension{MinRow: 2, MinCol: 1, MaxRow: 4, MaxCol: 3}
	assert.False(t, dim.Empty())
	assert.Equal(t, 3, dim.NumRows())
	assert.Equal(t, 3, dim.NumCols())
	assert.Equal(t, "R2C1:R4C3", dim.String())

	assert.True(t, EmptyDimension.Empty())
	assert.Equal(t, 0, EmptyDimension.NumRows())
	assert.Equal(t, 0, EmptyDimension.NumCols())
	assert.Equal(t, "empty", EmptyDimension.String())
}

func TestNewSheet(t *testing.T) {
	sheet := NewSheet("data", Visible, NewCellStore(
		&Cell{Row: 2, Col: 2, Value: "x"},
		&Cell{Row: 4, Col: 3, Value: "y"},
	))
	assert.Equal(t, Dimension{MinRow: 2, MinCol: 2, MaxRow: 4, MaxCol: 3}, sheet.Dimension)
	assert.Equal(t, sheet.Dimension, sheet.Extent())
	assert.Equal(t, 2, sheet.Cells().Len())

	empty := NewSheet("empty", Hidden, nil)
	assert.True(t, empty.Dimension.Empty())
	assert.Equal(t, 0, empty.Cells().Len())
}

func TestVisibility(t *testing.T) {
	assert.True(t, Visible.IsVisible())
	assert.False(t, Hidden.IsVisible())
	assert.False(t, VeryHidden.IsVisible())
	assert.Equal(t, "veryHidden", VeryHidden.String())
}
