// The tracer package defines how editor operations are traced.
package tracer

import (
	"context"

	"github.com/graph-gophers/graphql-editor/errors"
)

type MutationFinishFunc = func(applied bool)
type ParseFinishFunc = func(*errors.ParseError)

// Tracer observes the graph controller. Every mutation and every load of
// schema text is reported, including the ones that end up as no-ops.
type Tracer interface {
	TraceMutation(ctx context.Context, operation string, target string) (context.Context, MutationFinishFunc)
	TraceParse(ctx context.Context, schemaSize, librariesSize int) (context.Context, ParseFinishFunc)
}
