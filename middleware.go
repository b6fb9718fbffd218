package editor

import (
	"context"

	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/codec"
	"github.com/graph-gophers/graphql-editor/errors"
)

// Load parses schema and library text into trees.
type Load func(ctx context.Context, schema, libraries string) (tree, library *ast.Tree, err error)

// Middleware can wrap Load to add additional behaviour.
type Middleware func(next Load) Load

func parse(_ context.Context, schema, libraries string) (*ast.Tree, *ast.Tree, error) {
	return codec.Parse(schema, libraries)
}

// ParseErrorsMiddleware lets the caller rewrite parse errors, for example to
// name the file a source came from.
func ParseErrorsMiddleware(parseError func(*errors.ParseError) *errors.ParseError) Middleware {
	return func(next Load) Load {
		return func(ctx context.Context, schema, libraries string) (*ast.Tree, *ast.Tree, error) {
			tree, library, err := next(ctx, schema, libraries)
			if perr, ok := errors.As(err); ok {
				if rewritten := parseError(perr); rewritten != nil {
					return tree, library, rewritten
				}
			}
			return tree, library, err
		}
	}
}

// InspectInputMiddleware can be used to reject input before it is parsed.
// If inspect returns nil, we simply continue by calling next().
func InspectInputMiddleware(inspect func(schema, libraries string) *errors.ParseError) Middleware {
	return func(next Load) Load {
		return func(ctx context.Context, schema, libraries string) (*ast.Tree, *ast.Tree, error) {
			if perr := inspect(schema, libraries); perr != nil {
				return nil, nil, perr
			}
			return next(ctx, schema, libraries)
		}
	}
}
