package reflectutil

import (
	"reflect"
	"testing"
)

func TestIsIntegerKind(t *testing.T) {
	tests := []struct {
		name     string
		kind     reflect.Kind
		expected bool
	}{
		{"Int", reflect.Int, true},
		{"Int8", reflect.Int8, true},
		{"Int64", reflect.Int64, true},
		{"Uint", reflect.Uint, true},
		{"Uint64", reflect.Uint64, true},
		{"Uintptr", reflect.Uintptr, false},
		{"Float64", reflect.Float64, false},
		{"Bool", reflect.Bool, false},
		{"String", reflect.String, false},
		{"Complex128", reflect.Complex128, false},
		{"Invalid", reflect.Invalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsIntegerKind(tt.kind); result != tt.expected {
				t.Errorf("IsIntegerKind(%v) = %v, expected %v", tt.kind, result, tt.expected)
			}
		})
	}
}

func TestIsFloatKind(t *testing.T) {
	if !IsFloatKind(reflect.Float32) || !IsFloatKind(reflect.Float64) {
		t.Error("expected float kinds to be reported")
	}
	if IsFloatKind(reflect.Int) {
		t.Error("expected Int not to be a float kind")
	}
}

func TestSignedness(t *testing.T) {
	for _, kind := range []reflect.Kind{reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64} {
		if !IsSignedKind(kind) || IsUnsignedKind(kind) {
			t.Errorf("%v should be signed only", kind)
		}
	}
	for _, kind := range []reflect.Kind{reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64} {
		if IsSignedKind(kind) || !IsUnsignedKind(kind) {
			t.Errorf("%v should be unsigned only", kind)
		}
	}
	if IsUnsignedKind(reflect.Uintptr) {
		t.Error("uintptr never maps onto Int")
	}
}
