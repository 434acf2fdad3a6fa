package h5

import (
	"fmt"
	"reflect"
)

// Float64s flattens v into float64 values. v may be a number of any integer
// or floating point kind, or a slice or array of them nested to any depth
// (row-major order is kept).
func Float64s(v any) ([]float64, error) {
	var out []float64
	if err := appendNumbers(reflect.ValueOf(v), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func appendNumbers(v reflect.Value, out *[]float64) error {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		*out = append(*out, float64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		*out = append(*out, float64(v.Uint()))
	case reflect.Float32, reflect.Float64:
		*out = append(*out, v.Float())
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := appendNumbers(v.Index(i), out); err != nil {
				return err
			}
		}
	case reflect.Interface, reflect.Pointer:
		return appendNumbers(v.Elem(), out)
	case reflect.Invalid:
		return fmt.Errorf("nil value: %w", ErrUnsupportedType)
	default:
		return fmt.Errorf("%s is not numeric: %w", v.Type(), ErrUnsupportedType)
	}
	return nil
}

// StringValues flattens v, a string or a slice or array of strings nested to
// any depth, into a []string.
func StringValues(v any) ([]string, error) {
	var out []string
	if err := appendStrings(reflect.ValueOf(v), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func appendStrings(v reflect.Value, out *[]string) error {
	switch v.Kind() {
	case reflect.String:
		*out = append(*out, v.String())
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := appendStrings(v.Index(i), out); err != nil {
				return err
			}
		}
	case reflect.Interface, reflect.Pointer:
		return appendStrings(v.Elem(), out)
	case reflect.Invalid:
		return fmt.Errorf("nil value: %w", ErrUnsupportedType)
	default:
		return fmt.Errorf("%s is not a string: %w", v.Type(), ErrUnsupportedType)
	}
	return nil
}
