package weaver

import (
	"errors"
	"fmt"
	"strings"
)

// Node is an element of a selection set. The set of implementations is
// closed: Field, Object, InlineFragment, FragmentReference, MetaField,
// ForEachNode and FieldSet.
//
// String renders the node, or the empty string when the node is dropped by
// its directives or removed because its selection is empty.
type Node interface {
	fmt.Stringer
	// Err returns the errors met while building the node and its children.
	Err() error
	isNode()
}

func (Field) isNode()             {}
func (Object) isNode()            {}
func (InlineFragment) isNode()    {}
func (FragmentReference) isNode() {}
func (MetaField) isNode()         {}
func (ForEachNode) isNode()       {}
func (FieldSet) isNode()          {}

// directives holds the include and skip state of a node. The zero value keeps
// the node.
type directives struct {
	excluded bool
	skipped  bool
}

// dropped reports whether the node must be left out of its parent: skip(if:
// true) or include(if: false).
func (d directives) dropped() bool {
	return d.excluded || d.skipped
}

func (d directives) include(include bool) directives {
	d.excluded = !include
	return d
}

func (d directives) skip(skip bool) directives {
	d.skipped = skip
	return d
}

// compose filters children and joins what remains with a single space, in
// declaration order. Dropped and removed children contribute nothing, not even
// their errors. An empty result means the selection produced nothing.
func compose(children []Node) (string, error) {
	var (
		parts []string
		errs  []error
	)

	for _, child := range children {
		var rendered string

		switch c := child.(type) {
		case nil:
			continue
		case Field:
			if c.dropped() {
				continue
			}
			rendered = c.String()
		case Object:
			if c.dropped() || c.removed() {
				continue
			}
			rendered = c.String()
		case InlineFragment:
			if c.dropped() || c.removed() {
				continue
			}
			rendered = c.String()
		case FragmentReference:
			if c.dropped() {
				continue
			}
			rendered = c.String()
		case MetaField:
			rendered = c.String()
		case ForEachNode:
			if c.dropped() {
				continue
			}
			rendered = c.body
		case FieldSet:
			rendered = c.String()
		default:
			panic(fmt.Sprintf("weaver: unsupported node %T", child))
		}

		if err := child.Err(); err != nil {
			errs = append(errs, err)
		}
		if rendered != "" {
			parts = append(parts, rendered)
		}
	}

	return strings.Join(parts, " "), errors.Join(errs...)
}
