package weaver

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/llehouerou/go-graphql-weaver/ident"
)

// Object is a selection with a selection set, e.g. `post(id: 1) { id title }`.
//
// Children are composed when the object is built. An object whose children
// compose to nothing is removed from its parent.
type Object struct {
	name        string
	displayName string
	alias       string
	arguments   []Argument
	body        string
	directives

	slice      *Slice
	pagination PaginationType
	pageInfo   *PageInfoSpec

	err error
}

// NewObject returns an object named name selecting children. The name is
// rendered in camelCase.
func NewObject(name string, children ...Node) Object {
	body, err := compose(children)
	if err != nil {
		err = fmt.Errorf("failed to compose object `%s`: %w", name, err)
	}
	return Object{
		name:        name,
		displayName: ident.Convert(name, ident.CamelCase),
		body:        body,
		err:         err,
	}
}

// removed reports whether the object selects nothing.
func (o Object) removed() bool {
	return o.body == ""
}

// Alias sets the alias the object is returned under.
func (o Object) Alias(alias string) Object {
	o.alias = alias
	return o
}

// Argument appends an argument. value goes through ValueOf; a value encoding
// to null is ignored unless IncludeIfNull is given.
func (o Object) Argument(key string, value any, opts ...ArgumentOption) Object {
	args, err := appendArgument(o.arguments, key, value, opts)
	o.arguments = args
	o.err = errors.Join(o.err, err)
	return o
}

// CaseStyle renders the object name in style.
func (o Object) CaseStyle(style ident.Style) Object {
	o.displayName = ident.Convert(o.name, style)
	return o
}

// SchemaName replaces the object name verbatim, e.g. the name of a root
// field in the schema.
func (o Object) SchemaName(name string) Object {
	o.name = name
	o.displayName = name
	return o
}

// Include keeps the object only if include is true.
func (o Object) Include(include bool) Object {
	o.directives = o.directives.include(include)
	return o
}

// Skip drops the object if skip is true.
func (o Object) Skip(skip bool) Object {
	o.directives = o.directives.skip(skip)
	return o
}

// Slice fetches the first amount results.
func (o Object) Slice(amount int) Object {
	o.slice = &Slice{First: amount}
	return o
}

// SliceOffset fetches amount results starting at offset.
func (o Object) SliceOffset(amount, offset int) Object {
	o.slice = &Slice{First: amount, Offset: &offset}
	return o
}

// SliceAfter fetches amount results after the given cursor.
func (o Object) SliceAfter(amount int, after any) Object {
	v, err := ValueOf(after)
	if err != nil {
		o.err = errors.Join(o.err, fmt.Errorf("failed to encode slice cursor: %w", err))
		v = invalidValue{err: err}
	}
	o.slice = &Slice{First: amount, After: v}
	return o
}

// Pagination sets how a sliced object is expanded. It has no effect on an
// object without a slice.
func (o Object) Pagination(pagination PaginationType) Object {
	o.pagination = pagination
	return o
}

// PageInfo selects keys of the label page info object of a cursor connection.
func (o Object) PageInfo(label string, keys ...string) Object {
	o.pageInfo = &PageInfoSpec{
		Label: label,
		Keys:  append([]string(nil), keys...),
	}
	return o
}

// PageInfoType is PageInfo with the label derived from a type name in style.
//
// E.g., ("PageInfo", ident.CamelCase, "endCursor") -> `pageInfo { endCursor }`.
func (o Object) PageInfoType(typeName string, style ident.Style, keys ...string) Object {
	return o.PageInfo(ident.Convert(typeName, style), keys...)
}

func (o Object) String() string {
	if o.dropped() || o.removed() {
		return ""
	}

	args := o.arguments
	if o.slice != nil {
		args = append(append([]Argument(nil), o.arguments...), o.slice.arguments()...)
	}

	var buf bytes.Buffer
	writeFieldHead(&buf, o.alias, o.displayName, args)

	if o.slice != nil && o.pagination == CursorPagination {
		var connection bytes.Buffer
		writeCursorConnection(&connection, o.body, o.pageInfo)
		writeSelection(&buf, connection.String())
		return buf.String()
	}

	writeSelection(&buf, o.body)
	return buf.String()
}

func (o Object) Err() error {
	return o.err
}
