// Package events defines what codegen publishes on the event bus.
package events

import "time"

// CodegenStart is emitted before generating code for a set of actions.
type CodegenStart struct {
	Actions []string
}

// CodegenFinish is emitted once a codegen run completes.
type CodegenFinish struct {
	Actions  []string
	Files    int
	Err      error
	Duration time.Duration
}

// ActionResolved is emitted after the dependency closure of an action is
// computed.
type ActionResolved struct {
	Action     string
	Types      []string
	Unresolved []string
	Malformed  []string
}

// FileWritten is emitted for every generated file.
type FileWritten struct {
	Action string
	Path   string
	Bytes  int
}
