package weaver

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type postID string

func (postID) GetGraphQLType() string {
	return "ID"
}

type dateTime struct{}

func (*dateTime) GetGraphQLType() string {
	return "DateTime"
}

// TestDefinitionsFromMap tests the definitionsFromMap helper function
func TestDefinitionsFromMap(t *testing.T) {
	t.Run("empty map produces no definition", func(t *testing.T) {
		defs, err := variableDefinitions(map[string]any{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(defs) != 0 {
			t.Errorf("expected no definition, got %v", defs)
		}
	})

	t.Run("multiple entries are sorted alphabetically", func(t *testing.T) {
		defs, err := definitionsFromMap(map[string]any{
			"zebra":  "test",
			"apple":  42,
			"banana": true,
			"cherry": 3.14,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []VariableDefinition{
			{Name: "apple", Type: "Int!"},
			{Name: "banana", Type: "Boolean!"},
			{Name: "cherry", Type: "Float!"},
			{Name: "zebra", Type: "String!"},
		}
		if diff := cmp.Diff(want, defs); diff != "" {
			t.Errorf("definitions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nil value cannot be typed", func(t *testing.T) {
		_, err := definitionsFromMap(map[string]any{"id": nil})
		if !errors.Is(err, ErrUnsupportedValue) {
			t.Errorf("got error %v, want %v", err, ErrUnsupportedValue)
		}
	})
}

func TestCollectStructFieldsForArguments(t *testing.T) {
	t.Run("collects json tagged exported fields sorted by name", func(t *testing.T) {
		type variables struct {
			Title    string `json:"title"`
			ID       postID `json:"id,omitempty"`
			Untagged string
			Skipped  string `json:"-"`
			hidden   string
		}

		fields, err := collectStructFieldsForArguments(&variables{hidden: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var names []string
		for _, f := range fields {
			names = append(names, f.jsonName)
		}
		if diff := cmp.Diff([]string{"id", "title"}, names); diff != "" {
			t.Errorf("field names mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nil pointer has no fields", func(t *testing.T) {
		type variables struct {
			ID int `json:"id"`
		}
		fields, err := collectStructFieldsForArguments((*variables)(nil))
		if err != nil || len(fields) != 0 {
			t.Errorf("got %v, %v; want no field and no error", fields, err)
		}
	})

	t.Run("rejects other kinds", func(t *testing.T) {
		_, err := collectStructFieldsForArguments(42)
		if !errors.Is(err, ErrUnsupportedValue) {
			t.Errorf("got error %v, want %v", err, ErrUnsupportedValue)
		}
	})
}

func TestWriteArgumentType(t *testing.T) {
	var optionalTitle *string
	var optionalDate *dateTime

	tests := []struct {
		name string
		typ  reflect.Type
		v    any
		want string
	}{
		{name: "int", typ: reflect.TypeOf(0), v: 0, want: "Int!"},
		{name: "uint", typ: reflect.TypeOf(uint8(0)), v: uint8(0), want: "Int!"},
		{name: "float", typ: reflect.TypeOf(0.0), v: 0.0, want: "Float!"},
		{name: "bool", typ: reflect.TypeOf(false), v: false, want: "Boolean!"},
		{name: "string", typ: reflect.TypeOf(""), v: "", want: "String!"},
		{name: "pointer is nullable", typ: reflect.TypeOf(optionalTitle), v: optionalTitle, want: "String"},
		{name: "list", typ: reflect.TypeOf([]int{}), v: []int{}, want: "[Int!]!"},
		{name: "list of nullable", typ: reflect.TypeOf([]*string{}), v: []*string{}, want: "[String]!"},
		{name: "graphql type", typ: reflect.TypeOf(postID("")), v: postID("1"), want: "ID!"},
		{name: "nullable graphql type", typ: reflect.TypeOf(optionalDate), v: optionalDate, want: "DateTime"},
		{name: "named type", typ: reflect.TypeOf(birthplace{}), v: birthplace{}, want: "birthplace!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeArgumentType(&buf, tc.typ, tc.v, true); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("\ngot:  %q\nwant: %q\n", got, tc.want)
			}
		})
	}

	var buf bytes.Buffer
	err := writeArgumentType(&buf, reflect.TypeOf(map[string]int{}), nil, true)
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("got error %v, want %v", err, ErrUnsupportedValue)
	}
}

func TestWriteVariableDefinitions(t *testing.T) {
	var buf bytes.Buffer
	writeVariableDefinitions(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("expected nothing, got %q", buf.String())
	}

	writeVariableDefinitions(&buf, []VariableDefinition{
		{Name: "id", Type: "ID!"},
		{Name: "first", Type: "Int"},
	})
	if got, want := buf.String(), "($id: ID!, $first: Int)"; got != want {
		t.Errorf("\ngot:  %q\nwant: %q\n", got, want)
	}
}
