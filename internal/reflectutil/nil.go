package reflectutil

import "reflect"

// IsNull reports whether v encodes as a GraphQL null: it is invalid, or a nil
// pointer, interface, slice, map, chan or func.
func IsNull(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

// Indirect follows pointers and interfaces down to the value they hold.
// It returns the zero Value when a nil is met on the way.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
