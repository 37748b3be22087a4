package reflectutil

import "reflect"

// IsIntegerKind reports whether kind is a signed or unsigned integer.
// Uintptr is excluded, it never maps onto a GraphQL Int.
func IsIntegerKind(kind reflect.Kind) bool {
	return IsSignedKind(kind) || IsUnsignedKind(kind)
}

// IsSignedKind reports whether kind is a signed integer.
func IsSignedKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// IsUnsignedKind reports whether kind is an unsigned integer.
func IsUnsignedKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// IsFloatKind reports whether kind is a floating point number.
func IsFloatKind(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}
