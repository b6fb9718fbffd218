package ast

import (
	"strings"
	"text/scanner"
)

// Value is a constant input value: a default value or the value of a
// directive argument.
//
// http://spec.graphql.org/draft/#sec-Input-Values
type Value interface {
	// String renders the value as canonical SDL.
	String() string
	// Clone returns a deep copy.
	Clone() Value
}

// PrimitiveValue is an Int, Float, String, Boolean or Enum value. Type holds
// the text/scanner token class it was read as.
type PrimitiveValue struct {
	Type rune
	Text string
}

// StringValue is a string value in its decoded form.
type StringValue struct {
	Value string
}

// ListValue is an ordered list of values.
type ListValue struct {
	Values []Value
}

// ObjectValue is an input object literal.
type ObjectValue struct {
	Fields []*ObjectField
}

type ObjectField struct {
	Name  string
	Value Value
}

type NullValue struct{}

func (v *PrimitiveValue) String() string { return v.Text }
func (v *PrimitiveValue) Clone() Value   { c := *v; return &c }

func (v *StringValue) String() string { return QuoteString(v.Value) }
func (v *StringValue) Clone() Value   { c := *v; return &c }

func (v *ListValue) String() string {
	parts := make([]string, len(v.Values))
	for i, e := range v.Values {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v *ListValue) Clone() Value {
	c := &ListValue{Values: make([]Value, len(v.Values))}
	for i, e := range v.Values {
		c.Values[i] = e.Clone()
	}
	return c
}

func (v *ObjectValue) String() string {
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = f.Name + ": " + f.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (v *ObjectValue) Clone() Value {
	c := &ObjectValue{Fields: make([]*ObjectField, len(v.Fields))}
	for i, f := range v.Fields {
		c.Fields[i] = &ObjectField{Name: f.Name, Value: f.Value.Clone()}
	}
	return c
}

func (*NullValue) String() string { return "null" }
func (*NullValue) Clone() Value   { return &NullValue{} }

// IsEnum reports whether the primitive was written as a bare name.
func (v *PrimitiveValue) IsEnum() bool { return v.Type == scanner.Ident }

// QuoteString renders s as a single-line GraphQL string literal.
func QuoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				const hex = "0123456789abcdef"
				b.WriteString(`\u00`)
				b.WriteByte(hex[r>>4])
				b.WriteByte(hex[r&0xf])
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
