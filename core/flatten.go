package core

import "reflect"

// Flatten normalizes add/delete input: a single Registrable, a flat slice, or
// arbitrarily nested slices of Registrables. Any element that is neither a
// Registrable nor a slice yields a TypeMismatchError before the caller
// mutates anything.
func Flatten(objects ...any) ([]Registrable, error) {
	var out []Registrable
	for _, obj := range objects {
		var err error
		out, err = flattenInto(out, obj)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func flattenInto(out []Registrable, obj any) ([]Registrable, error) {
	if obj == nil {
		return nil, &TypeMismatchError{Value: obj}
	}
	if r, ok := obj.(Registrable); ok {
		return append(out, r), nil
	}
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, &TypeMismatchError{Value: obj}
	}
	for i := 0; i < v.Len(); i++ {
		var err error
		out, err = flattenInto(out, v.Index(i).Interface())
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
