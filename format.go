package weaver

import (
	"bytes"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

// Parse parses document into a query document AST. It checks syntax only,
// there is no schema to validate against.
func Parse(document string) (*ast.QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "document", Input: document})
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}

// Pretty reformats document over multiple indented lines.
func Pretty(document string) (string, error) {
	doc, err := Parse(document)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	astFormatter := formatter.NewFormatter(&buf)
	astFormatter.FormatQueryDocument(doc)

	return buf.String(), nil
}

// Pretty builds op and reformats it over multiple indented lines.
func (op Operation) Pretty() (string, error) {
	document, err := op.Build()
	if err != nil {
		return "", err
	}
	return Pretty(document)
}
