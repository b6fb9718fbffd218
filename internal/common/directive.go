package common

import "github.com/graph-gophers/graphql-editor/ast"

// ParseDirectives parses the directive usages following a construct.
func ParseDirectives(l *Lexer) []*ast.Node {
	var directives []*ast.Node
	for l.Peek() == '@' {
		l.ConsumeToken('@')
		d := &ast.Node{Data: ast.Data{Type: ast.Directive}}
		d.Name = l.ConsumeIdent()
		d.Type = ast.Named(ast.DisplayName(ast.Directive))
		if l.Peek() == '(' {
			d.Args = ParseArgumentList(l)
		}
		directives = append(directives, d)
	}
	return directives
}

// ParseArgumentList parses the arguments passed to a directive usage.
func ParseArgumentList(l *Lexer) []*ast.Node {
	var args []*ast.Node
	l.ConsumeToken('(')
	for l.Peek() != ')' {
		name := l.ConsumeIdent()
		l.ConsumeToken(':')
		args = append(args, &ast.Node{
			Name:  name,
			Data:  ast.Data{Type: ast.Argument},
			Value: ParseLiteral(l),
		})
	}
	l.ConsumeToken(')')
	return args
}
