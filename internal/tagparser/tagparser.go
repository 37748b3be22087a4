package tagparser

import (
	"errors"
	"strings"

	"github.com/llehouerou/go-graphql-weaver/types"
)

// ErrArgumentsInSelector is returned when a selector carries an inline
// argument list; arguments must be supplied as typed values.
var ErrArgumentsInSelector = errors.New("selector must not contain arguments")

// RecordTag represents a parsed struct tag of a record used as an argument value.
type RecordTag struct {
	// Name is the key of the field in the encoded object. Empty means the
	// key is derived from the Go field name.
	Name string
	// Skip reports a "-" tag.
	Skip bool
	// IncludeNull keeps a nil field as an explicit null.
	IncludeNull bool
}

// ParseRecordTag parses a `graphql:"name,includeNull"` or `json:"name,omitempty"` value.
// Examples:
//   - "postalCode" -> {Name: "postalCode"}
//   - "state,includeNull" -> {Name: "state", IncludeNull: true}
//   - ",includeNull" -> {IncludeNull: true}
//   - "-" -> {Skip: true}
func ParseRecordTag(tag string) RecordTag {
	tag = strings.TrimSpace(tag)
	if tag == "-" {
		return RecordTag{Skip: true}
	}

	name, options, _ := strings.Cut(tag, ",")
	parsed := RecordTag{Name: strings.TrimSpace(name)}
	for _, option := range strings.Split(options, ",") {
		if strings.TrimSpace(option) == types.IncludeNullOption {
			parsed.IncludeNull = true
		}
	}

	return parsed
}

// Selector represents a parsed field selector such as "newPost: post".
type Selector struct {
	// FieldName is the GraphQL field name (after alias if present).
	FieldName string
	// Alias is the field alias (before the colon), if any.
	Alias string
	// IsFragment indicates whether this is a fragment ("..." or "... on Type").
	IsFragment bool
	// TypeName is the type condition of an inline fragment.
	TypeName string
	// FragmentName is the name of a fragment spread ("...authorFields").
	FragmentName string
}

// ParseSelector parses a selector string.
// Examples:
//   - "name" -> {FieldName: "name"}
//   - "node1: node" -> {FieldName: "node", Alias: "node1"}
//   - "... on Droid" -> {IsFragment: true, TypeName: "Droid"}
//   - "...authorFields" -> {IsFragment: true, FragmentName: "authorFields"}
func ParseSelector(selector string) (Selector, error) {
	selector = strings.TrimSpace(selector)

	var parsed Selector

	if strings.HasPrefix(selector, types.FragmentPrefix) {
		parsed.IsFragment = true
		remaining := strings.TrimSpace(selector[len(types.FragmentPrefix):])
		if strings.HasPrefix(remaining, "on ") {
			parsed.TypeName = strings.TrimSpace(remaining[3:])
		} else {
			parsed.FragmentName = remaining
		}
		return parsed, nil
	}

	if strings.ContainsAny(selector, "()") {
		return parsed, ErrArgumentsInSelector
	}

	if alias, name, ok := strings.Cut(selector, ":"); ok {
		parsed.Alias = strings.TrimSpace(alias)
		parsed.FieldName = strings.TrimSpace(name)
	} else {
		parsed.FieldName = selector
	}

	return parsed, nil
}
