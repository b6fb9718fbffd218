package common

import "github.com/graph-gophers/graphql-editor/ast"

func ParseType(l *Lexer) ast.TypeRef {
	t := parseNullType(l)
	if l.Peek() == '!' {
		l.ConsumeToken('!')
		t.NonNull = true
	}
	return t
}

func parseNullType(l *Lexer) ast.TypeRef {
	if l.Peek() == '[' {
		l.ConsumeToken('[')
		ofType := ParseType(l)
		l.ConsumeToken(']')
		return ast.ListOf(ofType)
	}

	return ast.Named(l.ConsumeIdent())
}
