package schema

import (
	"fmt"
	"strings"

	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/errors"
	"github.com/graph-gophers/graphql-editor/internal/common"
)

var directiveLocations = map[string]bool{
	"QUERY": true, "MUTATION": true, "SUBSCRIPTION": true, "FIELD": true,
	"FRAGMENT_DEFINITION": true, "FRAGMENT_SPREAD": true, "INLINE_FRAGMENT": true,
	"VARIABLE_DEFINITION": true, "SCHEMA": true, "SCALAR": true, "OBJECT": true,
	"FIELD_DEFINITION": true, "ARGUMENT_DEFINITION": true, "INTERFACE": true,
	"UNION": true, "ENUM": true, "ENUM_VALUE": true, "INPUT_OBJECT": true,
	"INPUT_FIELD_DEFINITION": true,
}

func validateOperation(d *Document, op common.Ident) *errors.ParseError {
	switch name := op.Name; name {
	case "query", "mutation", "subscription":
		if prev, ok := d.opLocs[name]; ok {
			return &errors.ParseError{
				Message:   fmt.Sprintf(`%q type provided more than once`, name),
				Locations: []errors.Location{prev, op.Loc},
			}
		}
	default:
		return &errors.ParseError{
			Message:   fmt.Sprintf(`unexpected %q, expected "query", "mutation" or "subscription"`, name),
			Locations: []errors.Location{op.Loc},
		}
	}
	return nil
}

// Validate checks the rules that span definitions: unique names, reserved
// prefixes and extension targets. Library definitions are visible to the
// schema but not the other way round; the returned error's Source tells which
// document it was found in.
func Validate(schema, library *Document) *errors.ParseError {
	seen := make(map[string]located)
	if err := validateDocument(library, seen, "libraries"); err != nil {
		return err
	}
	if err := validateDocument(schema, seen, "schema"); err != nil {
		return err
	}
	return nil
}

type located struct {
	doc  *Document
	node *ast.Node
}

func (x located) loc() []errors.Location {
	if loc, ok := x.doc.Loc(x.node); ok {
		return []errors.Location{loc}
	}
	return nil
}

func namespace(n *ast.Node) string {
	if n.Kind() == ast.DirectiveDefinition {
		return "@" + n.Name
	}
	return n.Name
}

func validateDocument(d *Document, seen map[string]located, source string) *errors.ParseError {
	if d == nil {
		return nil
	}
	fail := func(err *errors.ParseError) *errors.ParseError {
		err.Source = source
		return err
	}

	for _, n := range d.Tree.Nodes {
		if !n.Kind().IsDefinition() {
			continue
		}
		here := located{d, n}
		if strings.HasPrefix(n.Name, "__") {
			return fail(&errors.ParseError{
				Message:   fmt.Sprintf(`%q must not begin with "__", reserved for introspection types`, n.Name),
				Locations: here.loc(),
			})
		}
		key := namespace(n)
		if prev, ok := seen[key]; ok {
			return fail(&errors.ParseError{
				Message:   fmt.Sprintf(`%q defined more than once`, n.Name),
				Locations: append(prev.loc(), here.loc()...),
			})
		}
		seen[key] = here
	}

	for _, n := range d.Tree.Nodes {
		here := located{d, n}
		if base, ok := ast.Base(n.Kind()); ok {
			target, found := seen[n.Name]
			if !found {
				return fail(&errors.ParseError{
					Message:   fmt.Sprintf(`cannot extend %s %q because it is not defined`, n.Kind().Keyword(), n.Name),
					Locations: here.loc(),
				})
			}
			if target.node.Kind() != base {
				return fail(&errors.ParseError{
					Message:   fmt.Sprintf(`cannot extend %q with "%s": it is defined as "%s"`, n.Name, ast.DisplayName(n.Kind()), ast.DisplayName(target.node.Kind())),
					Locations: append(here.loc(), target.loc()...),
				})
			}
		}
		if err := validateChildren(d, n); err != nil {
			return fail(err)
		}
		if n.Kind() == ast.DirectiveDefinition {
			for _, loc := range n.Locations {
				if !directiveLocations[loc] {
					return fail(&errors.ParseError{
						Message:   fmt.Sprintf(`unknown directive location %q on "@%s"`, loc, n.Name),
						Locations: here.loc(),
					})
				}
			}
		}
	}
	return nil
}

func validateChildren(d *Document, n *ast.Node) *errors.ParseError {
	if err := uniqueNames(d, n, n.Args); err != nil {
		return err
	}
	for _, child := range n.Args {
		if child.Kind() == ast.FieldDefinition {
			if err := uniqueNames(d, child, child.Args); err != nil {
				return err
			}
		}
	}
	return nil
}

func uniqueNames(d *Document, parent *ast.Node, children []*ast.Node) *errors.ParseError {
	seen := make(map[string]*ast.Node, len(children))
	for _, c := range children {
		if prev, ok := seen[c.Name]; ok {
			err := &errors.ParseError{
				Message: fmt.Sprintf(`%s %q of %q defined more than once`, ast.DisplayName(c.Kind()), c.Name, parent.Name),
			}
			for _, x := range []*ast.Node{prev, c} {
				if loc, ok := d.Loc(x); ok {
					err.Locations = append(err.Locations, loc)
				}
			}
			return err
		}
		seen[c.Name] = c
	}
	return nil
}
