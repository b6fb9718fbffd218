// Package noop defines a no-op tracer implementation.
package noop

import (
	"context"

	"github.com/graph-gophers/graphql-editor/errors"
)

// Tracer is a no-op tracer that does nothing.
type Tracer struct{}

func (Tracer) TraceMutation(ctx context.Context, operation string, target string) (context.Context, func(bool)) {
	return ctx, func(bool) {}
}

func (Tracer) TraceParse(ctx context.Context, schemaSize, librariesSize int) (context.Context, func(*errors.ParseError)) {
	return ctx, func(*errors.ParseError) {}
}
