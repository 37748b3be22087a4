package types

import "reflect"

// GraphQL tokens used throughout the writers.
// Centralizing these prevents typos and makes refactoring safer.
const (
	// GraphQLTag is the struct tag name used to name the keys of records
	// encoded as argument values.
	GraphQLTag = "graphql"

	// JSONTag is consulted when a record field carries no GraphQLTag.
	JSONTag = "json"

	// IncludeNullOption is the tag option keeping a nil record field in the
	// encoded object as an explicit null.
	IncludeNullOption = "includeNull"

	// TypenameField is the GraphQL introspection field used for type
	// discrimination in unions and interfaces.
	TypenameField = "__typename"

	// MetaFieldPrefix prefixes every introspection meta field.
	MetaFieldPrefix = "__"

	// FragmentPrefix is the prefix of a named fragment spread.
	FragmentPrefix = "..."

	// FragmentOnPrefix is the full prefix for typed inline fragments
	// (e.g., "... on Droid").
	FragmentOnPrefix = "... on "

	// FragmentKeyword starts a fragment definition.
	FragmentKeyword = "fragment"

	// NullLiteral is the GraphQL null value.
	NullLiteral = "null"

	// VariablePrefix marks a variable reference.
	VariablePrefix = "$"
)

// Cursor connection field names.
const (
	CursorField = "cursor"
	EdgesField  = "edges"
	NodeField   = "node"

	FirstArgument  = "first"
	OffsetArgument = "offset"
	AfterArgument  = "after"
)

// GraphQLType lets a Go type name the GraphQL type used for it in variable
// definitions, e.g. "ID" or "DateTime".
type GraphQLType interface {
	GetGraphQLType() string
}

// EnumValuer marks a value as enum representable: it is encoded as the bare
// upper-cased identifier returned by GetGraphQLEnum.
type EnumValuer interface {
	GetGraphQLEnum() string
}

var (
	GraphqlTypeInterface = reflect.TypeOf((*GraphQLType)(nil)).Elem()
	EnumValuerInterface  = reflect.TypeOf((*EnumValuer)(nil)).Elem()
)
