package weaver

import (
	"fmt"
	"io"
)

// Argument is a key/value pair passed to a field or an object.
type Argument struct {
	Key   string
	Value Value
}

func (a Argument) String() string {
	return a.Key + ": " + Encode(a.Value)
}

// ArgumentOption configures how an argument is added to a node.
type ArgumentOption func(*argumentOptions)

type argumentOptions struct {
	includeNull bool
}

// IncludeIfNull keeps an argument whose value encodes to null. Without it the
// argument is not added at all.
func IncludeIfNull() ArgumentOption {
	return func(o *argumentOptions) {
		o.includeNull = true
	}
}

// appendArgument returns a copy of args with key: value appended. The input
// slice is never written to, so siblings built from the same node do not share
// arguments.
func appendArgument(
	args []Argument,
	key string,
	value any,
	opts []ArgumentOption,
) ([]Argument, error) {
	var options argumentOptions
	for _, opt := range opts {
		opt(&options)
	}

	v, err := ValueOf(value)
	if err != nil {
		err = fmt.Errorf("failed to encode argument `%s`: %w", key, err)
		v = invalidValue{err: err}
	} else if isNull(v) && !options.includeNull {
		return args, nil
	}

	out := make([]Argument, len(args), len(args)+1)
	copy(out, args)
	return append(out, Argument{Key: key, Value: v}), err
}

// writeArguments writes "(k1: v1, k2: v2)" to w, or nothing when args is empty.
func writeArguments(w io.Writer, args []Argument) {
	if len(args) == 0 {
		return
	}
	_, _ = io.WriteString(w, "(")
	for i, arg := range args {
		if i != 0 {
			_, _ = io.WriteString(w, ", ")
		}
		_, _ = io.WriteString(w, arg.Key)
		_, _ = io.WriteString(w, ": ")
		writeValue(w, arg.Value)
	}
	_, _ = io.WriteString(w, ")")
}
