package table

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"
)

var typeOfTime = reflect.TypeFor[time.Time]()

// AssignValue converts src to the type of dst and assigns it.
//
// Strings are passed to an encoding.TextUnmarshaler implementation
// of dst first. Then a direct reflect conversion is tried, followed by
// parsing strings with parser, formatting values as strings,
// and converting whole floats to integers.
// Pointers are allocated and their element is assigned.
//
// A nil parser uses NewStringParser.
// errors.ErrUnsupported is wrapped if no conversion is possible.
func AssignValue(dst reflect.Value, src any, parser Parser) error {
	if !dst.IsValid() {
		return fmt.Errorf("dst value is invalid")
	}
	if !dst.CanSet() {
		return fmt.Errorf("cannot set dst value")
	}
	if parser == nil {
		parser = NewStringParser()
	}
	if src == nil {
		dst.SetZero()
		return nil
	}
	srcVal := reflect.ValueOf(src)
	dstType := dst.Type()

	str, isString := src.(string)
	if isString && dst.CanAddr() && dstType != typeOfTime {
		if u, ok := dst.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u.UnmarshalText([]byte(str))
		}
	}

	if srcVal.Type().ConvertibleTo(dstType) && !lossyConversion(srcVal.Kind(), dstType.Kind()) {
		dst.Set(srcVal.Convert(dstType))
		return nil
	}

	if isString {
		if parser.IsNil(str) {
			dst.SetZero()
			return nil
		}
		return assignString(dst, str, parser)
	}

	switch dstType.Kind() {
	case reflect.String:
		dst.SetString(FormatValue(src))
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch x := src.(type) {
		case float64:
			if x != float64(int64(x)) || dst.OverflowInt(int64(x)) {
				return fmt.Errorf("can't assign %v to %s", x, dstType)
			}
			dst.SetInt(int64(x))
			return nil
		case bool:
			if x {
				dst.SetInt(1)
			} else {
				dst.SetInt(0)
			}
			return nil
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if x, ok := src.(float64); ok {
			if x < 0 || x != float64(uint64(x)) || dst.OverflowUint(uint64(x)) {
				return fmt.Errorf("can't assign %v to %s", x, dstType)
			}
			dst.SetUint(uint64(x))
			return nil
		}

	case reflect.Bool:
		if x, ok := src.(float64); ok {
			dst.SetBool(x != 0)
			return nil
		}

	case reflect.Pointer:
		ptr := reflect.New(dstType.Elem())
		if err := AssignValue(ptr.Elem(), src, parser); err != nil {
			return err
		}
		dst.Set(ptr)
		return nil
	}

	return fmt.Errorf("can't assign %T to %s: %w", src, dstType, errors.ErrUnsupported)
}

func assignString(dst reflect.Value, str string, parser Parser) error {
	dstType := dst.Type()
	if dstType == typeOfTime {
		t, err := parser.ParseTime(str)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(t))
		return nil
	}
	switch dstType.Kind() {
	case reflect.String:
		dst.SetString(str)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := parser.ParseInt(str)
		if err != nil {
			return err
		}
		if dst.OverflowInt(i) {
			return fmt.Errorf("value %d overflows %s", i, dstType)
		}
		dst.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := parser.ParseInt(str)
		if err != nil {
			return err
		}
		if i < 0 || dst.OverflowUint(uint64(i)) {
			return fmt.Errorf("value %d overflows %s", i, dstType)
		}
		dst.SetUint(uint64(i))
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := parser.ParseFloat(str)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
		return nil

	case reflect.Bool:
		b, err := parser.ParseBool(str)
		if err != nil {
			return err
		}
		dst.SetBool(b)
		return nil

	case reflect.Pointer:
		ptr := reflect.New(dstType.Elem())
		if err := AssignValue(ptr.Elem(), str, parser); err != nil {
			return err
		}
		dst.Set(ptr)
		return nil
	}
	return fmt.Errorf("can't assign string %q to %s: %w", str, dstType, errors.ErrUnsupported)
}

// lossyConversion reports the reflect conversions that would either
// produce a rune instead of digits or silently truncate a fraction.
func lossyConversion(src, dst reflect.Kind) bool {
	switch dst {
	case reflect.String:
		return isIntKind(src)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return src == reflect.Float32 || src == reflect.Float64
	}
	return false
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
