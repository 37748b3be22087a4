// Package manifest loads declarative YAML descriptions of GraphQL operations
// and compiles them into weaver operations.
//
//	operation: query
//	name: GetPost
//	selections:
//	  - object: "newPost: post"
//	    arguments:
//	      - name: id
//	        value: 1
//	    children:
//	      - field: id
//	      - field: title
package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

var (
	// ErrUnknownOperation is returned for an operation keyword other than
	// query, mutation or subscription.
	ErrUnknownOperation = errors.New("unknown operation type")
	// ErrInvalidSelection is returned for a selection that is not exactly one
	// of field, object, inline, fragment, meta or keys.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrUnknownFragment is returned for a spread of a fragment the manifest
	// does not define.
	ErrUnknownFragment = errors.New("unknown fragment")
	// ErrUnknownCaseStyle is returned for a case style ident cannot parse.
	ErrUnknownCaseStyle = errors.New("unknown case style")
	// ErrUnknownPagination is returned for a pagination type other than none or cursor.
	ErrUnknownPagination = errors.New("unknown pagination type")
	// ErrInvalidArgument is returned for an argument setting more than one of
	// value, enum and var.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Manifest describes a single operation and the fragments it spreads.
type Manifest struct {
	Operation  string      `yaml:"operation"`
	Name       string      `yaml:"name"`
	Variables  []Variable  `yaml:"variables"`
	Directives []string    `yaml:"directives"`
	Selections []Selection `yaml:"selections"`
	Fragments  []Fragment  `yaml:"fragments"`
}

// Variable declares an operation variable.
type Variable struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Fragment defines a named fragment.
type Fragment struct {
	Name       string      `yaml:"name"`
	On         string      `yaml:"on"`
	Selections []Selection `yaml:"selections"`
}

// Selection is one node of a selection set. Exactly one of Field, Object,
// Inline, Fragment, Meta and Keys must be set.
//
// Field and Object accept the selector shorthands "alias: name",
// "...fragmentName" and "... on Type".
type Selection struct {
	Field    string   `yaml:"field"`
	Object   string   `yaml:"object"`
	Inline   string   `yaml:"inline"`
	Fragment string   `yaml:"fragment"`
	Meta     string   `yaml:"meta"`
	Keys     []string `yaml:"keys"`

	Exclude []string `yaml:"exclude"`
	Merge   []Merge  `yaml:"merge"`

	Alias      string     `yaml:"alias"`
	SchemaName string     `yaml:"schemaName"`
	CaseStyle  string     `yaml:"caseStyle"`
	Arguments  []Argument `yaml:"arguments"`
	Include    *bool      `yaml:"include"`
	Skip       bool       `yaml:"skip"`

	Slice      *Slice    `yaml:"slice"`
	Pagination string    `yaml:"pagination"`
	PageInfo   *PageInfo `yaml:"pageInfo"`

	Children []Selection `yaml:"children"`
}

// Merge expands a key of a keys selection.
type Merge struct {
	Key      string      `yaml:"key"`
	Children []Selection `yaml:"children"`
}

// Argument is a named argument. Value is any YAML value; Enum and Var build
// enum literals and variable references.
type Argument struct {
	Name        string `yaml:"name"`
	Value       any    `yaml:"value"`
	Enum        string `yaml:"enum"`
	Var         string `yaml:"var"`
	IncludeNull bool   `yaml:"includeNull"`
}

// Slice limits an object to First results, after Offset results or after
// the After cursor.
type Slice struct {
	First  int  `yaml:"first"`
	Offset *int `yaml:"offset"`
	After  any  `yaml:"after"`
}

// PageInfo selects Keys of the page info of a cursor connection. Label is
// used verbatim; otherwise it is derived from Type in Style.
type PageInfo struct {
	Label string   `yaml:"label"`
	Type  string   `yaml:"type"`
	Style string   `yaml:"style"`
	Keys  []string `yaml:"keys"`
}

// Parse decodes a manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalWithOptions(data, &m, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("unable to parse manifest: %w", err)
	}
	return &m, nil
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read manifest: %w", err)
	}
	return Parse(data)
}
