package reflectutil

import (
	"encoding"
	"reflect"

	"github.com/llehouerou/go-graphql-weaver/types"
)

var textMarshaler = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// ImplementsGraphQLType reports whether the given type implements the GraphQLType interface.
// This checks if the type provides a custom GraphQL type name via GetGraphQLType().
func ImplementsGraphQLType(t reflect.Type) bool {
	return t != nil && t.Implements(types.GraphqlTypeInterface)
}

// GetGraphQLType extracts the GraphQL type name from a value that implements GraphQLType interface.
// Returns empty string if the value doesn't implement GraphQLType or if extraction fails.
func GetGraphQLType(v reflect.Value, t reflect.Type) (string, bool) {
	if !ImplementsGraphQLType(t) || IsNull(v) {
		return "", false
	}

	graphqlType, ok := v.Interface().(types.GraphQLType)
	if !ok {
		return "", false
	}

	return graphqlType.GetGraphQLType(), true
}

// GetGraphQLTypeFromType extracts the GraphQL type name from a type (not value).
// This creates a zero value or pointer to call GetGraphQLType().
// Useful when you don't have an instance but need the type name.
func GetGraphQLTypeFromType(t reflect.Type) (string, bool) {
	if !ImplementsGraphQLType(t) {
		return "", false
	}

	var zero reflect.Value
	if t.Kind() == reflect.Ptr {
		zero = reflect.New(t.Elem())
	} else {
		zero = reflect.Zero(t)
	}

	graphqlType, ok := zero.Interface().(types.GraphQLType)
	if !ok {
		return "", false
	}

	return graphqlType.GetGraphQLType(), true
}

// GetEnumName returns the enum identifier of a value implementing EnumValuer.
// A nil pointer receiver reports false.
func GetEnumName(v reflect.Value) (string, bool) {
	if IsNull(v) || !v.Type().Implements(types.EnumValuerInterface) {
		return "", false
	}

	enum, ok := v.Interface().(types.EnumValuer)
	if !ok {
		return "", false
	}

	return enum.GetGraphQLEnum(), true
}

// GetText returns the text form of a value implementing encoding.TextMarshaler.
// The boolean reports whether v is a text marshaler at all.
func GetText(v reflect.Value) (string, bool, error) {
	if IsNull(v) || !v.Type().Implements(textMarshaler) {
		return "", false, nil
	}

	marshaler, ok := v.Interface().(encoding.TextMarshaler)
	if !ok {
		return "", false, nil
	}

	text, err := marshaler.MarshalText()
	if err != nil {
		return "", true, err
	}

	return string(text), true, nil
}
