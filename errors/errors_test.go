package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorf(t *testing.T) {
	cause := io.EOF

	t.Run("wrap error", func(t *testing.T) {
		err := Errorf("boom: %w", cause)
		if !errors.Is(err, cause) {
			t.Fatalf("expected errors.Is to return true")
		}
	})

	t.Run("handles nil", func(t *testing.T) {
		var err *ParseError
		if errors.Is(err, cause) {
			t.Fatalf("expected errors.Is to return false")
		}
	})

	t.Run("handle no arguments", func(t *testing.T) {
		err := Errorf("boom")
		if errors.Is(err, cause) {
			t.Fatalf("expected errors.Is to return false")
		}
	})

	t.Run("handle non-error argument arguments", func(t *testing.T) {
		err := Errorf("boom: %v", "shaka")
		if errors.Is(err, cause) {
			t.Fatalf("expected errors.Is to return false")
		}
	})
}

func TestErrorString(t *testing.T) {
	err := &ParseError{
		Message:   `syntax error: unexpected "}"`,
		Source:    "libraries",
		Locations: []Location{{Line: 3, Column: 7}},
	}
	want := `graphql: libraries: syntax error: unexpected "}" (line 3, column 7)`
	if got := err.Error(); got != want {
		t.Errorf("wrong message:\nwant: %q\ngot : %q", want, got)
	}
}

func TestAs(t *testing.T) {
	perr := Errorf("bad")
	wrapped := fmt.Errorf("loading: %w", perr)

	got, ok := As(wrapped)
	if !ok || got != perr {
		t.Fatalf("expected wrapped ParseError to be found")
	}
	if _, ok := As(io.EOF); ok {
		t.Fatalf("expected io.EOF not to be a ParseError")
	}
}
