// Package runid tags a context with the id of the current CLI run.
package runid

import (
	"context"

	"github.com/google/uuid"
)

// key is the context key for the run ID.
type key struct{}

// NewContext returns a copy of parent carrying a fresh run ID, along with
// the ID.
func NewContext(parent context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(parent, key{}, id), id
}

// FromContext extracts the run ID from ctx.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(key{}).(string)
	return id, ok
}
