// Package actions describes custom GraphQL operations backed by webhooks and
// computes the custom types each one depends on.
package actions

import "github.com/purush7/graphql-engine/internal/customtypes"

// Kind selects how the handler is invoked.
type Kind string

const (
	Synchronous  Kind = "synchronous"
	Asynchronous Kind = "asynchronous"
)

// OperationType is the root type an action is exposed on.
type OperationType string

const (
	Mutation OperationType = "mutation"
	Query    OperationType = "query"
)

// RootTypeName returns the GraphQL root type name of t, defaulting to Mutation.
func (t OperationType) RootTypeName() string {
	if t == Query {
		return "Query"
	}
	return "Mutation"
}

// Argument is an input parameter of an action. It has the same shape as an
// object field.
type Argument = customtypes.Field

// Definition is an action's signature and handler.
type Definition struct {
	Name       string        `json:"name" yaml:"-"`
	Kind       Kind          `json:"kind,omitempty" yaml:"kind,omitempty"`
	Type       OperationType `json:"type,omitempty" yaml:"type,omitempty"`
	Handler    string        `json:"handler,omitempty" yaml:"handler,omitempty"`
	Arguments  []Argument    `json:"arguments" yaml:"arguments"`
	OutputType string        `json:"output_type" yaml:"output_type"`
}
