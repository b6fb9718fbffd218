package codec_test

import (
	"testing"

	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/codec"
	"github.com/graph-gophers/graphql-editor/errors"
	"github.com/graph-gophers/graphql-editor/gqltesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petSchema = `
# Comments are dropped.
extend schema @link(url: "x")

"""
  Multi-line
  description
"""
type Query implements Node & Entity @key(fields: "id") {
  "Find a pet"
  pet(id: ID!, "filter" where: PetFilter = {name: "x", tags: [A, B]}): Pet @deprecated(reason: "no")
  pets: [Pet!]!
}
union SearchResult = | Pet | Owner
enum Color { RED "the green" GREEN @deprecated BLUE }
input PetFilter @oneOf { name: String = "rex", age: Int = -3 }
scalar Date @specifiedBy(url: "https://example.com")
directive @key(fields: String!) repeatable on OBJECT | INTERFACE
extend type Query { me: Owner }
`

const petSchemaCanonical = `extend schema @link(url: "x")

"""
Multi-line
description
"""
type Query implements Node & Entity @key(fields: "id") {
  "Find a pet"
  pet(id: ID!, "filter" where: PetFilter = {name: "x", tags: [A, B]}): Pet @deprecated(reason: "no")
  pets: [Pet!]!
}

union SearchResult = Pet | Owner

enum Color {
  RED
  "the green"
  GREEN @deprecated
  BLUE
}

input PetFilter @oneOf {
  name: String = "rex"
  age: Int = -3
}

scalar Date @specifiedBy(url: "https://example.com")

directive @key(fields: String!) repeatable on OBJECT | INTERFACE

extend type Query {
  me: Owner
}
`

func TestCanonicalForm(t *testing.T) {
	gqltesting.RunTests(t, []*gqltesting.Test{
		{
			Schema:         petSchema,
			ExpectedSchema: petSchemaCanonical,
		},
		{
			Schema: `schema { query: Query mutation: Mutation } type Query type Mutation`,
			ExpectedSchema: "schema {\n  query: Query\n  mutation: Mutation\n}\n\n" +
				"type Query\n\ntype Mutation\n",
		},
		{
			Schema:         "type Foo {}\nextend type Foo",
			ExpectedSchema: "type Foo\n\nextend type Foo\n",
		},
		{
			Schema:         `extend type Lib { x: Int }`,
			Libraries:      `type Lib`,
			ExpectedSchema: "extend type Lib {\n  x: Int\n}\n",
		},
		{
			Schema: `"line one\nline two\n" type T "  lead\nx" scalar S`,
			ExpectedSchema: "\"line one\\nline two\\n\"\ntype T\n\n" +
				"\"\"\"\n  lead\nx\n\"\"\"\nscalar S\n",
		},
		{
			Schema:         `"""keep \""" quotes""" scalar S`,
			ExpectedSchema: "\"keep \\\"\\\"\\\" quotes\"\nscalar S\n",
		},
		{
			Schema:         ``,
			ExpectedSchema: ``,
		},
	})
}

func TestParseErrors(t *testing.T) {
	gqltesting.RunTests(t, []*gqltesting.Test{
		{
			Schema: "type A\ntype A",
			ExpectedError: &errors.ParseError{
				Message:   `"A" defined more than once`,
				Source:    codec.SourceSchema,
				Locations: []errors.Location{{Line: 1, Column: 6}, {Line: 2, Column: 6}},
			},
		},
		{
			Schema:    "type A",
			Libraries: "type A",
			ExpectedError: &errors.ParseError{
				Message: `"A" defined more than once`,
				Source:  codec.SourceSchema,
			},
		},
		{
			Schema: "extend type Missing",
			ExpectedError: &errors.ParseError{
				Message: `cannot extend type "Missing" because it is not defined`,
				Source:  codec.SourceSchema,
			},
		},
		{
			Schema: "interface I\nextend type I",
			ExpectedError: &errors.ParseError{
				Message: `cannot extend "I" with "extend type": it is defined as "interface"`,
				Source:  codec.SourceSchema,
			},
		},
		{
			Schema:    "type Query",
			Libraries: "type Broken {",
			ExpectedError: &errors.ParseError{
				Message: `syntax error: unexpected "", expecting Ident`,
				Source:  codec.SourceLibraries,
			},
		},
		{
			Schema: "schema { foo: Bar }",
			ExpectedError: &errors.ParseError{
				Message: `unexpected "foo", expected "query", "mutation" or "subscription"`,
				Source:  codec.SourceSchema,
			},
		},
		{
			Schema: "type __Secret",
			ExpectedError: &errors.ParseError{
				Message: `"__Secret" must not begin with "__", reserved for introspection types`,
				Source:  codec.SourceSchema,
			},
		},
		{
			Schema: "type T { a: Int a: String }",
			ExpectedError: &errors.ParseError{
				Message: `field "a" of "T" defined more than once`,
				Source:  codec.SourceSchema,
			},
		},
		{
			Schema: "directive @d on NOWHERE",
			ExpectedError: &errors.ParseError{
				Message: `unknown directive location "NOWHERE" on "@d"`,
				Source:  codec.SourceSchema,
			},
		},
		{
			Schema: "query { a }",
			ExpectedError: &errors.ParseError{
				Message: `syntax error: unexpected "query", expecting "schema", "type", "enum", "interface", "union", "input", "scalar", "directive" or "extend"`,
				Source:  codec.SourceSchema,
			},
		},
	})
}

func TestParseKinds(t *testing.T) {
	tree, library, err := codec.Parse(petSchema, "scalar Shared")
	require.NoError(t, err)
	require.Len(t, library.Nodes, 1)
	assert.Equal(t, ast.ScalarTypeDefinition, library.Nodes[0].Kind())

	kinds := map[string]ast.Kind{}
	for _, n := range tree.Nodes {
		require.True(t, n.Kind().Valid())
		kinds[ast.DisplayName(n.Kind())+" "+n.Name] = n.Kind()
		assert.Equal(t, ast.DisplayName(n.Kind()), n.Type.Name)
	}
	assert.Equal(t, map[string]ast.Kind{
		"type Query":         ast.ObjectTypeDefinition,
		"union SearchResult": ast.UnionTypeDefinition,
		"enum Color":         ast.EnumTypeDefinition,
		"input PetFilter":    ast.InputObjectTypeDefinition,
		"scalar Date":        ast.ScalarTypeDefinition,
		"directive key":      ast.DirectiveDefinition,
		"extend type Query":  ast.ObjectTypeExtension,
	}, kinds)

	query := tree.Find("Query", ast.ObjectTypeDefinition)
	require.NotNil(t, query)
	pet := query.Arg("pet")
	require.NotNil(t, pet)
	assert.Equal(t, ast.FieldDefinition, pet.Kind())
	assert.Equal(t, "Pet", pet.Type.String())
	require.Len(t, pet.Args, 2)
	assert.Equal(t, ast.InputValueDefinition, pet.Args[1].Kind())
	assert.Equal(t, "filter", pet.Args[1].Description)
	require.Len(t, pet.Directives, 1)
	assert.Equal(t, ast.Directive, pet.Directives[0].Kind())
	assert.Equal(t, ast.Argument, pet.Directives[0].Args[0].Kind())
	assert.Equal(t, `"no"`, pet.Directives[0].Args[0].Value.String())
}

func TestIdempotentReparse(t *testing.T) {
	sources := []string{
		petSchema,
		`"a\tb" type T { "x\n  y" f("z" a: [[Int!]]! = [[1]]): [T] }`,
		`"""
		    deeply
		  indented
		""" enum E @a(b: {c: null}) { X }`,
	}
	for _, src := range sources {
		first, err := codec.Format(src, "")
		require.NoError(t, err)
		second, err := codec.Format(first, "")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}
