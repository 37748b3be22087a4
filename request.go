package weaver

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

// Request is the JSON payload of a GraphQL request over HTTP.
type Request struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName,omitempty"`
	Variables     any    `json:"variables,omitempty"`
}

// Request builds the payload sending op with variables. Empty variable maps
// are left out.
func (op Operation) Request(variables any) (Request, error) {
	query, err := op.Build()
	if err != nil {
		return Request{}, err
	}

	// Build already validated the options
	optionsOutput, _ := constructOptions(op.options)

	// Normalize empty variable maps to nil
	if !hasVariables(variables) {
		variables = nil
	}

	return Request{
		Query:         query,
		OperationName: optionsOutput.operationName,
		Variables:     variables,
	}, nil
}

// Body encodes the request as JSON.
func (r Request) Body() ([]byte, error) {
	var buf bytes.Buffer
	err := json.NewEncoder(&buf).Encode(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SubscribeMessageType is the type of the message starting an operation over
// the graphql-transport-ws protocol.
const SubscribeMessageType = "subscribe"

// SubscribeMessage starts an operation over the graphql-transport-ws protocol.
type SubscribeMessage struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Payload Request `json:"payload"`
}

// NewSubscribeMessage wraps payload in a subscribe message with a random id.
func NewSubscribeMessage(payload Request) SubscribeMessage {
	return SubscribeMessage{
		ID:      uuid.NewString(),
		Type:    SubscribeMessageType,
		Payload: payload,
	}
}

// Body encodes the message as JSON.
func (m SubscribeMessage) Body() ([]byte, error) {
	var buf bytes.Buffer
	err := json.NewEncoder(&buf).Encode(m)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
