package table

import (
	"fmt"
	"reflect"
	"strings"
)

// DefaultStructFieldNaming uses the "col" struct tag as column title,
// ignores "-" titled fields, and uses SpacePascalCase for untagged fields.
var DefaultStructFieldNaming = StructFieldNaming{
	Tag:      "col",
	Ignore:   "-",
	Untagged: SpacePascalCase,
}

// StructFieldNaming defines how struct fields
// are mapped to column titles of a View.
//
// nil is a valid value for *StructFieldNaming
// and is equal to the zero value
// which will use all exported struct fields
// with their field name as column title.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column title.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is the title of fields that are never mapped to a column.
	Ignore string
	// Untagged will be called with the struct field name to
	// return a title in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (column string)
}

func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldColumn returns the column title for a struct field.
func (n *StructFieldNaming) StructFieldColumn(structField reflect.StructField) string {
	if n == nil {
		return structField.Name
	}
	if n.Tag != "" {
		if tag, ok := structField.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if tag != "" {
				return tag
			}
		}
	}
	if n.Untagged == nil {
		return structField.Name
	}
	return n.Untagged(structField.Name)
}

// Columns returns the column titles of all exported fields
// of the struct type t, skipping ignored fields.
func (n *StructFieldNaming) Columns(t reflect.Type) []string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	columns := make([]string, 0, t.NumField())
	for _, field := range StructFieldTypes(t) {
		column := n.StructFieldColumn(field)
		if n != nil && n.Ignore != "" && column == n.Ignore {
			continue
		}
		columns = append(columns, column)
	}
	return columns
}

// ColumnStructFieldValue returns the settable field of strct
// mapped to column or an invalid reflect.Value.
func (n *StructFieldNaming) ColumnStructFieldValue(strct reflect.Value, column string) reflect.Value {
	if n != nil && n.Ignore != "" && column == n.Ignore {
		return reflect.Value{}
	}
	fields := StructFieldTypes(strct.Type())
	values := StructFieldValues(strct)
	for i, field := range fields {
		if n.StructFieldColumn(field) == column {
			return values[i]
		}
	}
	return reflect.Value{}
}
