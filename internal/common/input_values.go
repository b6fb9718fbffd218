package common

import "github.com/graph-gophers/graphql-editor/ast"

// ParseInputValue parses an argument definition or an input object field.
func ParseInputValue(l *Lexer) *ast.Node {
	p := &ast.Node{Data: ast.Data{Type: ast.InputValueDefinition}}
	p.Description = l.Description()
	p.Name = l.ConsumeIdent()
	l.ConsumeToken(':')
	p.Type = ParseType(l)
	if l.Peek() == '=' {
		l.ConsumeToken('=')
		p.Value = ParseLiteral(l)
	}
	p.Directives = ParseDirectives(l)
	return p
}

// ParseArgumentDefs parses an optional parenthesized list of argument definitions.
func ParseArgumentDefs(l *Lexer) []*ast.Node {
	var args []*ast.Node
	if l.Peek() == '(' {
		l.ConsumeToken('(')
		for l.Peek() != ')' {
			args = append(args, ParseInputValue(l))
		}
		l.ConsumeToken(')')
	}
	return args
}
