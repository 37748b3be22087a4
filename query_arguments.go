package weaver

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/llehouerou/go-graphql-weaver/internal/reflectutil"
	"github.com/llehouerou/go-graphql-weaver/internal/tagparser"
	"github.com/llehouerou/go-graphql-weaver/types"
)

// VariableDefinition declares an operation variable, e.g. `$id: ID!`.
type VariableDefinition struct {
	Name string
	Type string
}

func (d VariableDefinition) String() string {
	return types.VariablePrefix + d.Name + ": " + d.Type
}

// writeVariableDefinitions writes "($a: Int!, $b: String)" to w, or nothing
// when defs is empty.
func writeVariableDefinitions(w io.Writer, defs []VariableDefinition) {
	if len(defs) == 0 {
		return
	}
	_, _ = io.WriteString(w, "(")
	for i, def := range defs {
		if i != 0 {
			_, _ = io.WriteString(w, ", ")
		}
		_, _ = io.WriteString(w, def.String())
	}
	_, _ = io.WriteString(w, ")")
}

// argumentFieldInfo holds information about a struct field used for variable definitions.
type argumentFieldInfo struct {
	jsonName  string
	fieldType reflect.Type
	value     reflect.Value
}

// variableDefinitions infers variable definitions from a map or a struct.
//
// E.g., map[string]any{"a": int(123), "b": true} -> "$a: Int!", "$b: Boolean!".
func variableDefinitions(variables any) ([]VariableDefinition, error) {
	if !hasVariables(variables) {
		return nil, nil
	}

	switch v := variables.(type) {
	case map[string]any:
		return definitionsFromMap(v)
	default:
		fields, err := collectStructFieldsForArguments(variables)
		if err != nil {
			return nil, err
		}
		return definitionsFromFields(fields)
	}
}

// hasVariables checks if variables exist and should be used.
// Returns false for nil or empty maps, true otherwise.
func hasVariables(variables any) bool {
	if variables == nil {
		return false
	}
	reflectVal := reflect.ValueOf(variables)
	// If it's not a map, we have variables
	// If it's a map, only return true if it has entries
	return reflectVal.Kind() != reflect.Map || reflectVal.Len() > 0
}

// definitionsFromMap infers variable definitions from a map of variables.
// Keys are sorted alphabetically for deterministic output.
func definitionsFromMap(variables map[string]any) ([]VariableDefinition, error) {
	keys := make([]string, 0, len(variables))
	for k := range variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	defs := make([]VariableDefinition, 0, len(keys))
	for _, k := range keys {
		if variables[k] == nil {
			return nil, fmt.Errorf("%w: variable `%s` is nil, its type cannot be inferred", ErrUnsupportedValue, k)
		}
		typ, err := argumentType(reflect.TypeOf(variables[k]), variables[k])
		if err != nil {
			return nil, fmt.Errorf("failed to infer type of variable `%s`: %w", k, err)
		}
		defs = append(defs, VariableDefinition{Name: k, Type: typ})
	}
	return defs, nil
}

// collectStructFieldsForArguments extracts field information from a struct for use in variable definitions.
// It validates the struct, collects exported fields with json tags, and returns them sorted by json name.
func collectStructFieldsForArguments(variables any) ([]argumentFieldInfo, error) {
	val := reflect.ValueOf(variables)
	typ := reflect.TypeOf(variables)

	// Unwrap pointer if necessary
	if typ.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, nil
		}
		val = val.Elem()
		typ = typ.Elem()
	}

	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: variables must be a struct or a map; got %T", ErrUnsupportedValue, variables)
	}

	var fields []argumentFieldInfo

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)

		if !field.IsExported() {
			continue
		}

		// Fields without a json name are not sent, so they are not declared
		tag := tagparser.ParseRecordTag(field.Tag.Get(types.JSONTag))
		if tag.Skip || tag.Name == "" {
			continue
		}

		fields = append(fields, argumentFieldInfo{
			jsonName:  tag.Name,
			fieldType: field.Type,
			value:     val.Field(i),
		})
	}

	// Sort fields by json name for deterministic output
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].jsonName < fields[j].jsonName
	})

	return fields, nil
}

// definitionsFromFields infers variable definitions from collected field information.
func definitionsFromFields(fields []argumentFieldInfo) ([]VariableDefinition, error) {
	defs := make([]VariableDefinition, 0, len(fields))
	for _, f := range fields {
		typ, err := argumentType(f.fieldType, f.value.Interface())
		if err != nil {
			return nil, fmt.Errorf("failed to infer type of variable `%s`: %w", f.jsonName, err)
		}
		defs = append(defs, VariableDefinition{Name: f.jsonName, Type: typ})
	}
	return defs, nil
}

func argumentType(t reflect.Type, v any) (string, error) {
	var buf bytes.Buffer
	if err := writeArgumentType(&buf, t, v, true); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// writeArgumentType writes a GraphQL type for t to w.
// value indicates whether t is a value (required) type or pointer (optional) type.
// If value is true, then "!" is written at the end of t.
func writeArgumentType(w io.Writer, t reflect.Type, v any, value bool) error {
	if reflectutil.ImplementsGraphQLType(t) {
		value = t.Kind() != reflect.Ptr
		var typeName string
		var ok bool

		// Try to use the actual value first if provided
		if v != nil {
			typeName, ok = reflectutil.GetGraphQLType(reflect.ValueOf(v), t)
		}

		// Fall back to type-based extraction if no value or extraction failed
		if !ok {
			typeName, ok = reflectutil.GetGraphQLTypeFromType(t)
		}

		if ok {
			_, _ = io.WriteString(w, typeName)
			if value {
				_, _ = io.WriteString(w, "!")
			}
			return nil
		}
	}

	if t.Kind() == reflect.Ptr {
		// Pointer is an optional type, so no "!" at the end of the pointer's underlying type.
		return writeArgumentType(w, t.Elem(), nil, false)
	}

	switch {
	case reflectutil.IsIntegerKind(t.Kind()):
		_, _ = io.WriteString(w, "Int")
	case reflectutil.IsFloatKind(t.Kind()):
		_, _ = io.WriteString(w, "Float")
	case t.Kind() == reflect.Bool:
		_, _ = io.WriteString(w, "Boolean")
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		// List. E.g., "[Int!]!".
		_, _ = io.WriteString(w, "[")
		if err := writeArgumentType(w, t.Elem(), nil, true); err != nil {
			return err
		}
		_, _ = io.WriteString(w, "]")
	case t.Kind() == reflect.String && t.Name() == "string":
		_, _ = io.WriteString(w, "String")
	default:
		n := t.Name()
		if n == "" {
			return fmt.Errorf("%w: unnamed type %v has no GraphQL type", ErrUnsupportedValue, t)
		}
		_, _ = io.WriteString(w, n)
	}

	if value {
		// Value is a required type, so add "!" to the end.
		_, _ = io.WriteString(w, "!")
	}
	return nil
}
