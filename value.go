package weaver

import (
	"bytes"
	"io"
	"sort"
	"strconv"

	"github.com/llehouerou/go-graphql-weaver/ident"
	"github.com/llehouerou/go-graphql-weaver/types"
)

// Value is a GraphQL input value. The set of implementations is closed:
// Boolean, Int, Float, String, Enum, List, Map, NullValue and Var.
type Value interface {
	isValue()
}

type (
	// Boolean encodes as true or false.
	Boolean bool
	// Int encodes as a decimal integer.
	Int int64
	// Float encodes as a decimal number.
	Float float64
	// String encodes wrapped in double quotes. The content is not escaped.
	String string
	// Enum encodes as its upper-cased name without quotes, e.g. TECHNOLOGY.
	Enum string
	// List encodes as [a, b, c].
	List []Value
	// Map encodes as {a: 1, b: 2} with keys sorted.
	Map map[string]Value
	// NullValue encodes as null.
	NullValue struct{}
	// Var references an operation variable, e.g. $id.
	Var string
)

// Null is the GraphQL null value.
var Null = NullValue{}

// invalidValue stands in for a value that could not be converted. It encodes
// as the empty string; the conversion error travels with the owning node.
type invalidValue struct {
	err error
}

func (Boolean) isValue()      {}
func (Int) isValue()          {}
func (Float) isValue()        {}
func (String) isValue()       {}
func (Enum) isValue()         {}
func (List) isValue()         {}
func (Map) isValue()          {}
func (NullValue) isValue()    {}
func (Var) isValue()          {}
func (invalidValue) isValue() {}

// Encode returns the GraphQL literal of v. A nil v encodes as null.
//
// E.g., Map{"b": Int(1), "a": Enum("art")} -> "{a: ART, b: 1}".
func Encode(v Value) string {
	var buf bytes.Buffer
	writeValue(&buf, v)
	return buf.String()
}

func writeValue(w io.Writer, v Value) {
	switch v := v.(type) {
	case nil, NullValue:
		_, _ = io.WriteString(w, types.NullLiteral)
	case Boolean:
		_, _ = io.WriteString(w, strconv.FormatBool(bool(v)))
	case Int:
		_, _ = io.WriteString(w, strconv.FormatInt(int64(v), 10))
	case Float:
		_, _ = io.WriteString(w, strconv.FormatFloat(float64(v), 'g', -1, 64))
	case String:
		_, _ = io.WriteString(w, `"`)
		_, _ = io.WriteString(w, string(v))
		_, _ = io.WriteString(w, `"`)
	case Enum:
		_, _ = io.WriteString(w, ident.Convert(string(v), ident.Uppercase))
	case Var:
		_, _ = io.WriteString(w, types.VariablePrefix)
		_, _ = io.WriteString(w, string(v))
	case List:
		_, _ = io.WriteString(w, "[")
		for i, item := range v {
			if i != 0 {
				_, _ = io.WriteString(w, ", ")
			}
			writeValue(w, item)
		}
		_, _ = io.WriteString(w, "]")
	case Map:
		writeMap(w, v)
	case invalidValue:
	}
}

// writeMap writes the entries of m sorted by key for deterministic output.
func writeMap(w io.Writer, m Map) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	_, _ = io.WriteString(w, "{")
	for i, k := range keys {
		if i != 0 {
			_, _ = io.WriteString(w, ", ")
		}
		_, _ = io.WriteString(w, k)
		_, _ = io.WriteString(w, ": ")
		writeValue(w, m[k])
	}
	_, _ = io.WriteString(w, "}")
}

func isNull(v Value) bool {
	switch v.(type) {
	case nil, NullValue:
		return true
	}
	return false
}
