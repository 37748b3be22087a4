package weaver

import "errors"

var (
	// ErrUnsupportedValue is returned when a Go value has no GraphQL literal form.
	ErrUnsupportedValue = errors.New("unsupported argument value")
	// ErrUnsupportedMapKey is returned for maps whose keys are not strings.
	ErrUnsupportedMapKey = errors.New("unsupported map key")
	// ErrEmptySelection is returned when an operation or fragment renders no selection.
	ErrEmptySelection = errors.New("empty selection set")
	// ErrInvalidOption is returned for an Option of unknown type.
	ErrInvalidOption = errors.New("invalid operation option")
)
