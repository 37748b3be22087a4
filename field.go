package weaver

import (
	"bytes"
	"errors"

	"github.com/llehouerou/go-graphql-weaver/ident"
)

// Field is a leaf selection, e.g. `newPost: post(id: 1)`.
type Field struct {
	name        string
	displayName string
	alias       string
	arguments   []Argument
	directives
	err error
}

// NewField returns a field whose name is rendered in camelCase.
func NewField(name string) Field {
	return Field{
		name:        name,
		displayName: ident.Convert(name, ident.CamelCase),
	}
}

// Alias sets the alias the field is returned under.
func (f Field) Alias(alias string) Field {
	f.alias = alias
	return f
}

// Argument appends an argument. value goes through ValueOf; a value encoding
// to null is ignored unless IncludeIfNull is given.
func (f Field) Argument(key string, value any, opts ...ArgumentOption) Field {
	args, err := appendArgument(f.arguments, key, value, opts)
	f.arguments = args
	f.err = errors.Join(f.err, err)
	return f
}

// CaseStyle renders the field name in style.
func (f Field) CaseStyle(style ident.Style) Field {
	f.displayName = ident.Convert(f.name, style)
	return f
}

// SchemaName replaces the field name verbatim.
func (f Field) SchemaName(name string) Field {
	f.name = name
	f.displayName = name
	return f
}

// Include keeps the field only if include is true.
func (f Field) Include(include bool) Field {
	f.directives = f.directives.include(include)
	return f
}

// Skip drops the field if skip is true.
func (f Field) Skip(skip bool) Field {
	f.directives = f.directives.skip(skip)
	return f
}

func (f Field) String() string {
	if f.dropped() {
		return ""
	}
	var buf bytes.Buffer
	writeFieldHead(&buf, f.alias, f.displayName, f.arguments)
	return buf.String()
}

func (f Field) Err() error {
	return f.err
}
