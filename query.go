package weaver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// OperationType is the keyword starting an operation.
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// Operation is a GraphQL document: a single operation followed by the
// fragments it spreads.
//
//	op := weaver.NewMutation(
//		weaver.NewObject("updatePost",
//			weaver.NewField("title"),
//		).Argument("id", 1),
//	).Named("UpdatePost")
//
// renders `mutation UpdatePost { updatePost(id: 1) { title } }`.
type Operation struct {
	typ       OperationType
	body      string
	variables []VariableDefinition
	options   []Option
	fragments []Fragment
	err       error
}

// NewOperation returns an operation of type typ selecting children.
func NewOperation(typ OperationType, children ...Node) Operation {
	body, err := compose(children)
	return Operation{typ: typ, body: body, err: err}
}

// NewQuery returns a query selecting children.
func NewQuery(children ...Node) Operation {
	return NewOperation(Query, children...)
}

// NewMutation returns a mutation selecting children.
func NewMutation(children ...Node) Operation {
	return NewOperation(Mutation, children...)
}

// NewSubscription returns a subscription selecting children.
func NewSubscription(children ...Node) Operation {
	return NewOperation(Subscription, children...)
}

// Type returns the operation keyword.
func (op Operation) Type() OperationType {
	return op.typ
}

// Named sets the operation name. It is a shorthand for With(OperationName(name)).
func (op Operation) Named(name string) Operation {
	return op.With(OperationName(name))
}

// With appends options. When several OperationName options are given, the
// last one wins.
func (op Operation) With(opts ...Option) Operation {
	op.options = append(append([]Option(nil), op.options...), opts...)
	return op
}

// Variable declares the variable $name of GraphQL type typ, e.g. ("id", "ID!").
func (op Operation) Variable(name, typ string) Operation {
	op.variables = append(
		append([]VariableDefinition(nil), op.variables...),
		VariableDefinition{Name: name, Type: typ},
	)
	return op
}

// VariablesOf declares one variable per entry of a map[string]any, or per
// json-tagged field of a struct, sorted by name. Types are inferred from the
// Go types: pointers are nullable, GraphQLType overrides the type name.
func (op Operation) VariablesOf(variables any) Operation {
	defs, err := variableDefinitions(variables)
	if err != nil {
		op.err = errors.Join(op.err, fmt.Errorf("failed to declare variables: %w", err))
		return op
	}
	op.variables = append(append([]VariableDefinition(nil), op.variables...), defs...)
	return op
}

// Fragments appends fragment definitions rendered after the operation.
// A fragment whose name is already defined is ignored.
func (op Operation) Fragments(fragments ...Fragment) Operation {
	defined := make([]Fragment, len(op.fragments), len(op.fragments)+len(fragments))
	copy(defined, op.fragments)

	for _, fragment := range fragments {
		if !hasFragment(defined, fragment.spec.Name) {
			defined = append(defined, fragment)
		}
	}
	op.fragments = defined
	return op
}

func hasFragment(fragments []Fragment, name string) bool {
	for _, f := range fragments {
		if f.spec.Name == name {
			return true
		}
	}
	return false
}

// String renders the document. It never fails: invalid argument values
// render as nothing and unknown options are left out. Use Build to surface
// those errors.
func (op Operation) String() string {
	optionsOutput, _ := constructOptions(op.options)
	return op.render(optionsOutput)
}

// Build renders the document, or returns the errors met while building it.
func (op Operation) Build() (string, error) {
	optionsOutput, err := constructOptions(op.options)
	if err != nil {
		return "", err
	}
	if err := op.validate(); err != nil {
		return "", err
	}
	return op.render(optionsOutput), nil
}

func (op Operation) validate() error {
	errs := []error{op.err}
	if op.body == "" {
		errs = append(errs, fmt.Errorf("%w: %s has no selection", ErrEmptySelection, op.typ))
	}
	for _, f := range op.fragments {
		if f.err != nil {
			errs = append(errs, f.err)
		}
		if f.body == "" {
			errs = append(errs, fmt.Errorf("%w: fragment `%s` has no selection", ErrEmptySelection, f.spec.Name))
		}
	}
	return errors.Join(errs...)
}

// render writes `type [name][(vars)] [directives] { body } [fragments]`.
func (op Operation) render(options *constructOptionsOutput) string {
	var buf bytes.Buffer

	_, _ = io.WriteString(&buf, string(op.typ))
	if options.operationName != "" {
		_, _ = io.WriteString(&buf, " ")
		_, _ = io.WriteString(&buf, options.operationName)
	}
	writeVariableDefinitions(&buf, op.variables)
	_, _ = io.WriteString(&buf, options.OperationDirectivesString())
	writeSelection(&buf, op.body)

	for _, f := range op.fragments {
		_, _ = io.WriteString(&buf, " ")
		_, _ = io.WriteString(&buf, f.String())
	}

	return strings.TrimSpace(buf.String())
}

type constructOptionsOutput struct {
	operationName       string
	operationDirectives []string
}

// OperationDirectivesString returns the directives preceded by a space, or
// nothing when there is none.
func (coo constructOptionsOutput) OperationDirectivesString() string {
	operationDirectivesStr := strings.Join(coo.operationDirectives, " ")
	if operationDirectivesStr != "" {
		return " " + operationDirectivesStr
	}
	return ""
}

// constructOptions collects the options. Options of unknown type are skipped
// and reported.
func constructOptions(options []Option) (*constructOptionsOutput, error) {
	output := &constructOptionsOutput{}
	var errs []error

	for _, option := range options {
		switch option.Type() {
		case optionTypeOperationName:
			output.operationName = option.String()
		case OptionTypeOperationDirective:
			output.operationDirectives = append(
				output.operationDirectives,
				option.String(),
			)
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidOption, option.Type()))
		}
	}

	return output, errors.Join(errs...)
}
