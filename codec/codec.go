// Package codec converts between schema text and trees.
//
// Parsing is total over valid type system SDL and every parsed construct is
// tagged with a kind from the ast catalog. Serialize is a right inverse of
// Parse for trees built with the editor's mutations: the printed text parses
// back to a tree with the same names, kinds and arguments.
package codec

import (
	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/errors"
	"github.com/graph-gophers/graphql-editor/internal/printer"
	"github.com/graph-gophers/graphql-editor/internal/schema"
)

const (
	SourceSchema    = "schema"
	SourceLibraries = "libraries"
)

// Parse reads the editable schema and the library text. A failure is always a
// *errors.ParseError naming the offending source; no partial tree is returned.
func Parse(source, libraries string) (tree *ast.Tree, library *ast.Tree, err error) {
	lib, perr := schema.Parse(libraries)
	if perr != nil {
		perr.Source = SourceLibraries
		return nil, nil, perr
	}
	doc, perr := schema.Parse(source)
	if perr != nil {
		perr.Source = SourceSchema
		return nil, nil, perr
	}
	if perr := schema.Validate(doc, lib); perr != nil {
		return nil, nil, perr
	}
	return doc.Tree, lib.Tree, nil
}

// Serialize renders t as canonical schema text.
func Serialize(t *ast.Tree) string {
	return printer.Print(t)
}

// Format returns the canonical form of source. Libraries only serve as
// extension targets and are not part of the output.
func Format(source, libraries string) (string, error) {
	tree, _, err := Parse(source, libraries)
	if err != nil {
		return "", err
	}
	return Serialize(tree), nil
}

// ParseError extracts the parse error carried by err, if any.
func ParseError(err error) (*errors.ParseError, bool) {
	return errors.As(err)
}
