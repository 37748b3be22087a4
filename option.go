package weaver

// OptionType represents the logic of graphql query construction
type OptionType string

const (
	optionTypeOperationName      OptionType = "operation_name"
	OptionTypeOperationDirective OptionType = "operation_directive"
)

// Option abstracts an extra render interface for the operation string.
// They are optional parts. By default GraphQL operations can request data without them
type Option interface {
	// Type returns the supported type of the renderer
	// available types: operation_name and operation_directive
	Type() OptionType
	// String returns the query component string
	String() string
}

type operationNameOption struct {
	name string
}

func (ono operationNameOption) Type() OptionType {
	return optionTypeOperationName
}

func (ono operationNameOption) String() string {
	return ono.name
}

// OperationName creates the operation name option
func OperationName(name string) Option {
	return operationNameOption{name}
}

type operationDirectiveOption struct {
	directive string
}

func (odo operationDirectiveOption) Type() OptionType {
	return OptionTypeOperationDirective
}

func (odo operationDirectiveOption) String() string {
	return odo.directive
}

// OperationDirective creates an option rendering directive verbatim after the
// operation name and variables, e.g. "@cached(ttl: 60)".
func OperationDirective(directive string) Option {
	return operationDirectiveOption{directive}
}
