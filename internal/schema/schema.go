package schema

import (
	"fmt"
	"text/scanner"

	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/errors"
	"github.com/graph-gophers/graphql-editor/internal/common"
)

// Document is a parsed schema source. Locations are kept on the side so the
// tree itself stays free of source positions.
type Document struct {
	Tree *ast.Tree
	Locs map[*ast.Node]errors.Location

	opLocs map[string]errors.Location
}

// Loc returns the source location of n, if it was parsed from this document.
func (d *Document) Loc(n *ast.Node) (errors.Location, bool) {
	loc, ok := d.Locs[n]
	return loc, ok
}

// Parse reads schema text into a document. Only syntax is checked here; see
// Validate for the rules spanning definitions.
func Parse(source string) (*Document, *errors.ParseError) {
	d := &Document{
		Tree:   &ast.Tree{},
		Locs:   make(map[*ast.Node]errors.Location),
		opLocs: make(map[string]errors.Location),
	}
	l := common.NewLexer(source)
	var err *errors.ParseError
	syntaxErr := l.CatchSyntaxError(func() {
		l.ConsumeWhitespace()
		err = parseDocument(d, l)
	})
	if syntaxErr != nil {
		return nil, syntaxErr
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func parseDocument(d *Document, l *common.Lexer) *errors.ParseError {
	for l.Peek() != scanner.EOF {
		desc := l.Description()
		switch x := l.PeekIdent(); x {
		case "schema":
			l.ConsumeKeyword("schema")
			s := &ast.SchemaDefinition{Description: desc}
			if err := parseSchemaBody(d, l, s, true); err != nil {
				return err
			}
			if d.Tree.Schema != nil {
				return &errors.ParseError{
					Message:   "schema defined more than once",
					Locations: []errors.Location{l.Location()},
				}
			}
			d.Tree.Schema = s
		case "extend":
			if desc != "" {
				l.SyntaxError("extensions cannot have a description")
			}
			l.ConsumeKeyword("extend")
			if err := parseExtension(d, l); err != nil {
				return err
			}
		case "directive":
			l.ConsumeKeyword("directive")
			n := parseDirectiveDef(d, l)
			n.Description = desc
			d.Tree.Nodes = append(d.Tree.Nodes, n)
		default:
			kind, ok := ast.KindForKeyword(x)
			if !ok {
				l.SyntaxError(fmt.Sprintf(`unexpected %q, expecting "schema", "type", "enum", "interface", "union", "input", "scalar", "directive" or "extend"`, tokenText(l, x)))
			}
			l.ConsumeKeyword(x)
			n := parseTypeDef(d, l, kind)
			n.Description = desc
			d.Tree.Nodes = append(d.Tree.Nodes, n)
		}
	}
	return nil
}

func tokenText(l *common.Lexer, ident string) string {
	if ident != "" {
		return ident
	}
	return scanner.TokenString(l.Peek())
}

func parseExtension(d *Document, l *common.Lexer) *errors.ParseError {
	x := l.PeekIdent()
	if x == "schema" {
		l.ConsumeKeyword("schema")
		s := &ast.SchemaDefinition{}
		if err := parseSchemaBody(d, l, s, false); err != nil {
			return err
		}
		d.Tree.SchemaExtensions = append(d.Tree.SchemaExtensions, s)
		return nil
	}
	base, ok := ast.KindForKeyword(x)
	ext, extendable := ast.ResolveExtension(base)
	if !ok || !extendable {
		l.SyntaxError(fmt.Sprintf(`unexpected %q, expecting "schema", "type", "enum", "interface", "union", "input" or "scalar"`, tokenText(l, x)))
	}
	l.ConsumeKeyword(x)
	d.Tree.Nodes = append(d.Tree.Nodes, parseTypeDef(d, l, ext))
	return nil
}

func parseSchemaBody(d *Document, l *common.Lexer, s *ast.SchemaDefinition, requireBody bool) *errors.ParseError {
	s.Directives = common.ParseDirectives(l)
	if l.Peek() != '{' {
		if requireBody {
			l.ConsumeToken('{')
		}
		return nil
	}
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		op := l.ConsumeIdentWithLoc()
		l.ConsumeToken(':')
		typ := l.ConsumeIdent()
		if err := validateOperation(d, op); err != nil {
			return err
		}
		d.opLocs[op.Name] = op.Loc
		s.Operations = append(s.Operations, ast.Operation{Operation: op.Name, Type: typ})
	}
	l.ConsumeToken('}')
	return nil
}

func parseTypeDef(d *Document, l *common.Lexer, kind ast.Kind) *ast.Node {
	ident := l.ConsumeIdentWithLoc()
	n := &ast.Node{
		Name: ident.Name,
		Data: ast.Data{Type: kind},
		Type: ast.Named(ast.DisplayName(kind)),
	}
	d.Locs[n] = ident.Loc

	base := kind
	if b, ok := ast.Base(kind); ok {
		base = b
	}
	switch base {
	case ast.ObjectTypeDefinition, ast.InterfaceTypeDefinition:
		n.Interfaces = parseImplements(l)
		n.Directives = common.ParseDirectives(l)
		if l.Peek() == '{' {
			n.Args = parseFields(d, l)
		}
	case ast.UnionTypeDefinition:
		n.Directives = common.ParseDirectives(l)
		if l.Peek() == '=' {
			n.Members = parseUnionMembers(l)
		}
	case ast.EnumTypeDefinition:
		n.Directives = common.ParseDirectives(l)
		if l.Peek() == '{' {
			n.Args = parseEnumValues(d, l)
		}
	case ast.InputObjectTypeDefinition:
		n.Directives = common.ParseDirectives(l)
		if l.Peek() == '{' {
			n.Args = parseInputFields(d, l)
		}
	case ast.ScalarTypeDefinition:
		n.Directives = common.ParseDirectives(l)
	}
	return n
}

func parseImplements(l *common.Lexer) []string {
	if l.PeekIdent() != "implements" {
		return nil
	}
	l.ConsumeKeyword("implements")
	if l.Peek() == '&' {
		l.ConsumeToken('&')
	}
	names := []string{l.ConsumeIdent()}
	for l.Peek() == '&' {
		l.ConsumeToken('&')
		names = append(names, l.ConsumeIdent())
	}
	return names
}

func parseUnionMembers(l *common.Lexer) []string {
	l.ConsumeToken('=')
	if l.Peek() == '|' {
		l.ConsumeToken('|')
	}
	names := []string{l.ConsumeIdent()}
	for l.Peek() == '|' {
		l.ConsumeToken('|')
		names = append(names, l.ConsumeIdent())
	}
	return names
}

func parseFields(d *Document, l *common.Lexer) []*ast.Node {
	var fields []*ast.Node
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		f := &ast.Node{Data: ast.Data{Type: ast.FieldDefinition}}
		f.Description = l.Description()
		ident := l.ConsumeIdentWithLoc()
		f.Name = ident.Name
		d.Locs[f] = ident.Loc
		f.Args = parseArgumentDefs(d, l)
		l.ConsumeToken(':')
		f.Type = common.ParseType(l)
		f.Directives = common.ParseDirectives(l)
		fields = append(fields, f)
	}
	l.ConsumeToken('}')
	return fields
}

func parseArgumentDefs(d *Document, l *common.Lexer) []*ast.Node {
	if l.Peek() != '(' {
		return nil
	}
	var args []*ast.Node
	l.ConsumeToken('(')
	for l.Peek() != ')' {
		loc := l.Location()
		v := common.ParseInputValue(l)
		d.Locs[v] = loc
		args = append(args, v)
	}
	l.ConsumeToken(')')
	return args
}

func parseInputFields(d *Document, l *common.Lexer) []*ast.Node {
	var values []*ast.Node
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		loc := l.Location()
		v := common.ParseInputValue(l)
		d.Locs[v] = loc
		values = append(values, v)
	}
	l.ConsumeToken('}')
	return values
}

func parseEnumValues(d *Document, l *common.Lexer) []*ast.Node {
	var values []*ast.Node
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		v := &ast.Node{Data: ast.Data{Type: ast.EnumValueDefinition}}
		v.Description = l.Description()
		ident := l.ConsumeIdentWithLoc()
		switch ident.Name {
		case "true", "false", "null":
			l.SyntaxError(fmt.Sprintf("enum value cannot be named %q", ident.Name))
		}
		v.Name = ident.Name
		v.Type = ast.Named(ast.DisplayName(ast.EnumValueDefinition))
		d.Locs[v] = ident.Loc
		v.Directives = common.ParseDirectives(l)
		values = append(values, v)
	}
	l.ConsumeToken('}')
	return values
}

func parseDirectiveDef(d *Document, l *common.Lexer) *ast.Node {
	n := &ast.Node{
		Data: ast.Data{Type: ast.DirectiveDefinition},
		Type: ast.Named(ast.DisplayName(ast.DirectiveDefinition)),
	}
	l.ConsumeToken('@')
	ident := l.ConsumeIdentWithLoc()
	n.Name = ident.Name
	d.Locs[n] = ident.Loc
	n.Args = parseArgumentDefs(d, l)
	if l.PeekIdent() == "repeatable" {
		l.ConsumeKeyword("repeatable")
		n.Repeatable = true
	}
	l.ConsumeKeyword("on")
	if l.Peek() == '|' {
		l.ConsumeToken('|')
	}
	for {
		n.Locations = append(n.Locations, l.ConsumeIdent())
		if l.Peek() != '|' {
			break
		}
		l.ConsumeToken('|')
	}
	return n
}
