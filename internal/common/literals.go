package common

import (
	"text/scanner"

	"github.com/graph-gophers/graphql-editor/ast"
)

// ParseLiteral parses a constant value. Variables are rejected: the type
// system only carries constants.
func ParseLiteral(l *Lexer) ast.Value {
	switch l.Peek() {
	case '$':
		l.SyntaxError("variable not allowed")
		panic("unreachable")

	case scanner.String:
		return &ast.StringValue{Value: l.ConsumeString()}

	case scanner.Int, scanner.Float, scanner.Ident:
		typ, text := l.ConsumeLiteral()
		if typ == scanner.Ident && text == "null" {
			return &ast.NullValue{}
		}
		return &ast.PrimitiveValue{Type: typ, Text: text}

	case '-':
		l.ConsumeToken('-')
		if p := l.Peek(); p != scanner.Int && p != scanner.Float {
			l.SyntaxError("invalid value")
		}
		typ, text := l.ConsumeLiteral()
		return &ast.PrimitiveValue{Type: typ, Text: "-" + text}

	case '[':
		l.ConsumeToken('[')
		list := &ast.ListValue{}
		for l.Peek() != ']' {
			list.Values = append(list.Values, ParseLiteral(l))
		}
		l.ConsumeToken(']')
		return list

	case '{':
		l.ConsumeToken('{')
		obj := &ast.ObjectValue{}
		for l.Peek() != '}' {
			name := l.ConsumeIdent()
			l.ConsumeToken(':')
			obj.Fields = append(obj.Fields, &ast.ObjectField{Name: name, Value: ParseLiteral(l)})
		}
		l.ConsumeToken('}')
		return obj

	default:
		l.SyntaxError("invalid value")
		panic("unreachable")
	}
}
