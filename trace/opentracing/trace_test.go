package opentracing_test

import (
	"testing"

	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/trace/opentracing"
	"github.com/graph-gophers/graphql-editor/trace/tracer"
	ot "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterfaceImplementation(t *testing.T) {
	var _ tracer.Tracer = &opentracing.Tracer{}
	var _ tracer.Tracer = opentracing.Tracer{}
}

func TestTracerSpans(t *testing.T) {
	mt := mocktracer.New()
	ot.SetGlobalTracer(mt)
	defer ot.SetGlobalTracer(ot.NoopTracer{})

	c := editor.NewController(editor.Tracer(opentracing.Tracer{}))
	err := c.LoadGraphQLAndLibraries("type Query {", "")
	require.Error(t, err)
	c.AddNode(ast.ObjectTypeDefinition, "Pet")

	spans := mt.FinishedSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "Parse Schema", spans[0].OperationName)
	assert.Equal(t, true, spans[0].Tag("error"))
	assert.Equal(t, "GraphQL editor AddNode", spans[1].OperationName)
	assert.Equal(t, true, spans[1].Tag("graphql.editor.applied"))
}
