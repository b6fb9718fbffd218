// Package printer renders trees as canonical schema text.
package printer

import (
	"strings"

	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/internal/common"
)

const indent = "  "

// Print renders t. Definitions keep their tree order and are separated by a
// blank line; the schema block, when present, comes first.
func Print(t *ast.Tree) string {
	if t == nil {
		return ""
	}
	var blocks []string
	if t.Schema != nil {
		blocks = append(blocks, printSchema(t.Schema, false))
	}
	for _, ext := range t.SchemaExtensions {
		blocks = append(blocks, printSchema(ext, true))
	}
	for _, n := range t.Nodes {
		blocks = append(blocks, printNode(n))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

type printer struct {
	strings.Builder
}

func printSchema(s *ast.SchemaDefinition, extension bool) string {
	var p printer
	if extension {
		p.WriteString("extend ")
	} else {
		p.description(s.Description, "")
	}
	p.WriteString("schema")
	p.directives(s.Directives)
	if len(s.Operations) > 0 || !extension {
		p.WriteString(" {\n")
		for _, op := range s.Operations {
			p.WriteString(indent + op.Operation + ": " + op.Type + "\n")
		}
		p.WriteString("}")
	}
	return p.String()
}

func printNode(n *ast.Node) string {
	var p printer
	kind := n.Kind()
	if kind.IsExtension() {
		p.WriteString("extend ")
	} else {
		p.description(n.Description, "")
	}

	if kind == ast.DirectiveDefinition {
		p.WriteString("directive @" + n.Name)
		p.argumentDefs(n.Args)
		if n.Repeatable {
			p.WriteString(" repeatable")
		}
		p.WriteString(" on " + strings.Join(n.Locations, " | "))
		return p.String()
	}

	p.WriteString(kind.Keyword() + " " + n.Name)
	base := kind
	if b, ok := ast.Base(kind); ok {
		base = b
	}
	switch base {
	case ast.ObjectTypeDefinition, ast.InterfaceTypeDefinition:
		if len(n.Interfaces) > 0 {
			p.WriteString(" implements " + strings.Join(n.Interfaces, " & "))
		}
		p.directives(n.Directives)
		p.body(n.Args, p.field)
	case ast.UnionTypeDefinition:
		p.directives(n.Directives)
		if len(n.Members) > 0 {
			p.WriteString(" = " + strings.Join(n.Members, " | "))
		}
	case ast.EnumTypeDefinition:
		p.directives(n.Directives)
		p.body(n.Args, p.enumValue)
	case ast.InputObjectTypeDefinition:
		p.directives(n.Directives)
		p.body(n.Args, p.inputValue)
	default:
		p.directives(n.Directives)
	}
	return p.String()
}

func (p *printer) body(children []*ast.Node, member func(*ast.Node)) {
	if len(children) == 0 {
		return
	}
	p.WriteString(" {\n")
	for _, c := range children {
		p.description(c.Description, indent)
		p.WriteString(indent)
		member(c)
		p.WriteString("\n")
	}
	p.WriteString("}")
}

func (p *printer) field(f *ast.Node) {
	p.WriteString(f.Name)
	p.argumentDefs(f.Args)
	p.WriteString(": " + f.Type.String())
	p.directives(f.Directives)
}

func (p *printer) enumValue(v *ast.Node) {
	p.WriteString(v.Name)
	p.directives(v.Directives)
}

func (p *printer) inputValue(v *ast.Node) {
	p.WriteString(v.Name + ": " + v.Type.String())
	if v.Value != nil {
		p.WriteString(" = " + v.Value.String())
	}
	p.directives(v.Directives)
}

func (p *printer) argumentDefs(args []*ast.Node) {
	if len(args) == 0 {
		return
	}
	p.WriteString("(")
	for i, a := range args {
		if i > 0 {
			p.WriteString(", ")
		}
		if a.Description != "" {
			p.WriteString(ast.QuoteString(a.Description) + " ")
		}
		p.inputValue(a)
	}
	p.WriteString(")")
}

func (p *printer) directives(directives []*ast.Node) {
	for _, d := range directives {
		p.WriteString(" @" + d.Name)
		if len(d.Args) == 0 {
			continue
		}
		p.WriteString("(")
		for i, a := range d.Args {
			if i > 0 {
				p.WriteString(", ")
			}
			p.WriteString(a.Name + ": ")
			if a.Value != nil {
				p.WriteString(a.Value.String())
			} else {
				p.WriteString("null")
			}
		}
		p.WriteString(")")
	}
}

func (p *printer) description(desc, prefix string) {
	if desc == "" {
		return
	}
	if block, ok := blockString(desc, prefix); ok {
		p.WriteString(block)
		return
	}
	p.WriteString(prefix + ast.QuoteString(desc) + "\n")
}

// blockString renders a multi-line description as a block string, provided
// reading it back yields the same text.
func blockString(desc, prefix string) (string, bool) {
	if !strings.Contains(desc, "\n") || strings.ContainsRune(desc, '\r') {
		return "", false
	}
	lines := strings.Split(desc, "\n")
	var raw, out strings.Builder
	out.WriteString(prefix + `"""` + "\n")
	for _, line := range lines {
		raw.WriteString("\n")
		if line != "" {
			raw.WriteString(prefix + line)
			out.WriteString(prefix + strings.ReplaceAll(line, `"""`, `\"""`))
		}
		out.WriteString("\n")
	}
	raw.WriteString("\n" + prefix)
	if common.BlockStringValue(raw.String()) != desc {
		return "", false
	}
	out.WriteString(prefix + `"""` + "\n")
	return out.String(), true
}
