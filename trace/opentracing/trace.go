package opentracing

import (
	"context"

	"github.com/graph-gophers/graphql-editor/errors"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// Tracer implements the editor Tracer interface and creates OpenTracing spans.
type Tracer struct{}

func (Tracer) TraceMutation(ctx context.Context, operation string, target string) (context.Context, func(bool)) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, "GraphQL editor "+operation)
	span.SetTag("graphql.editor.operation", operation)
	if target != "" {
		span.SetTag("graphql.editor.target", target)
	}

	return spanCtx, func(applied bool) {
		span.SetTag("graphql.editor.applied", applied)
		span.Finish()
	}
}

func (Tracer) TraceParse(ctx context.Context, schemaSize, librariesSize int) (context.Context, func(*errors.ParseError)) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, "Parse Schema")
	span.SetTag("graphql.schema.size", schemaSize)
	span.SetTag("graphql.libraries.size", librariesSize)

	return spanCtx, func(err *errors.ParseError) {
		if err != nil {
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", err.Error())
		}
		span.Finish()
	}
}
