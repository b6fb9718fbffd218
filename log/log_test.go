package log_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/log"
	"github.com/stretchr/testify/assert"
)

func ExampleLoggerFunc() {
	logfn := log.LoggerFunc(func(ctx context.Context, err interface{}) {
		// Here you can handle the panic, e.g., log it or send it to an error tracking service.
		fmt.Printf("graphql-editor: panic occurred: %v", err)
	})

	c := editor.NewController(editor.Logger(logfn))
	c.OnGraphChanged(func(schema, libraries string) {
		panic("something went wrong")
	})
	c.LoadGraphQLAndLibraries("type Query", "")

	// Output:
	// graphql-editor: panic occurred: something went wrong
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &log.DefaultLogger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	l.LogPanic(context.Background(), "boom")

	out := buf.String()
	assert.Contains(t, out, "panic occurred")
	assert.Contains(t, out, "panic=boom")
	assert.Contains(t, out, "goroutine")
}
