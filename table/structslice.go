package table

import (
	"fmt"
	"reflect"
	"slices"
)

// ToStructSlice converts a View to a slice of structs
// mapping the View's columns to the struct fields using
// the passed StructFieldNaming.
//
// requiredCols must be present in the View and as named struct fields
// else an error is returned.
//
// AssignValue with the passed parser is used to assign
// the View's values to the struct fields.
// A nil parser uses NewStringParser.
func ToStructSlice[T any](view View, naming *StructFieldNaming, requiredCols []string, parser Parser) ([]T, error) {
	rowType := reflect.TypeFor[T]()
	if rowType.Kind() != reflect.Struct && (rowType.Kind() != reflect.Pointer || rowType.Elem().Kind() != reflect.Struct) {
		return nil, fmt.Errorf("slice element type %s is not a struct or pointer to struct", rowType)
	}
	if parser == nil {
		parser = NewStringParser()
	}

	viewCols := view.Columns()

	if len(requiredCols) > 0 {
		var v reflect.Value
		if rowType.Kind() == reflect.Pointer {
			v = reflect.New(rowType.Elem()).Elem()
		} else {
			v = reflect.New(rowType).Elem()
		}
		for _, requiredCol := range requiredCols {
			if !slices.Contains(viewCols, requiredCol) {
				return nil, fmt.Errorf("required column %q not found in View columns", requiredCol)
			}
			if !naming.ColumnStructFieldValue(v, requiredCol).IsValid() {
				return nil, fmt.Errorf("required column %q not found as struct field", requiredCol)
			}
		}
	}

	rows := make([]T, view.NumRows())
	for rowIndex := range rows {
		rowStruct := reflect.ValueOf(&rows[rowIndex]).Elem()
		if rowType.Kind() == reflect.Pointer {
			rowStruct.Set(reflect.New(rowType.Elem()))
			rowStruct = rowStruct.Elem()
		}
		for colIndex, colName := range viewCols {
			dst := naming.ColumnStructFieldValue(rowStruct, colName)
			if !dst.IsValid() {
				continue
			}
			err := AssignValue(dst, view.Cell(rowIndex, colIndex), parser)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", rowIndex, colName, err)
			}
		}
	}
	return rows, nil
}
