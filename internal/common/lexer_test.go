package common_test

import (
	"testing"

	"github.com/graph-gophers/graphql-editor/internal/common"
)

type consumeTestCase struct {
	description     string
	definition      string
	expected        string // expected description
	failureExpected bool
}

// Note that these tests stop as soon as they parse the description, so the rest of the definition is never read.
var consumeTests = []consumeTestCase{{
	description: "comments are not descriptions",
	definition: `

# Comment line 1
#Comment line 2
,,,,,, # Commas are insignificant
type Hello {
	world: String!
}`,
	expected: "",
}, {
	description: "simple string description",
	definition: `
# Comment line 1
"New style comments"
type Hello {
	world: String!
}`,
	expected: "New style comments",
}, {
	description: "triple quote description",
	definition: `
"""
New style comments
"""
type Hello {
	world: String!
}`,
	expected: "New style comments",
}, {
	description: "block string keeps relative indentation",
	definition: `
	"""
	  indented
	plain

	"""
	type Hello`,
	expected: "  indented\nplain",
}, {
	description: "escaped triple quote in block string",
	definition: `"""say \""" twice"""`,
	expected:   `say """ twice`,
}, {
	description: "escape sequences",
	definition:  `"tab\tquote\"slash\/snow☃"`,
	expected:    "tab\tquote\"slash/snow☃",
}, {
	description:     "unterminated block string",
	definition:      `"""never closed`,
	failureExpected: true,
}, {
	description:     "invalid escape",
	definition:      `"bad \q"`,
	failureExpected: true,
}}

func TestDescription(t *testing.T) {
	for _, test := range consumeTests {
		t.Run(test.description, func(t *testing.T) {
			lex := common.NewLexer(test.definition)

			var desc string
			err := lex.CatchSyntaxError(func() {
				lex.ConsumeWhitespace()
				desc = lex.Description()
			})
			if test.failureExpected {
				if err == nil {
					t.Fatalf("definition should have been invalid; description: %q", desc)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if test.expected != desc {
				t.Errorf("wrong description value:\nwant: %q\ngot : %q", test.expected, desc)
			}
		})
	}
}

func TestSyntaxErrorLocation(t *testing.T) {
	lex := common.NewLexer("type Foo {\n  bar String\n}")
	err := lex.CatchSyntaxError(func() {
		lex.ConsumeWhitespace()
		lex.ConsumeKeyword("type")
		lex.ConsumeIdent()
		lex.ConsumeToken('{')
		lex.ConsumeIdent()
		lex.ConsumeToken(':')
	})
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if len(err.Locations) != 1 || err.Locations[0].Line != 2 || err.Locations[0].Column != 7 {
		t.Errorf("wrong location: %v", err.Locations)
	}
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		description string
		literal     string
		expected    string
	}{
		{"int", "42", "42"},
		{"negative float", "- 1.5", "-1.5"},
		{"enum", "RED", "RED"},
		{"null", "null", "null"},
		{"string", `"a\nb"`, `"a\nb"`},
		{"list", "[1 2,3]", "[1, 2, 3]"},
		{"object", `{a: 1 b: {c: [true]}}`, "{a: 1, b: {c: [true]}}"},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			lex := common.NewLexer(test.literal)
			var got string
			err := lex.CatchSyntaxError(func() {
				lex.ConsumeWhitespace()
				got = common.ParseLiteral(lex).String()
			})
			if err != nil {
				t.Fatal(err)
			}
			if got != test.expected {
				t.Errorf("want %q, got %q", test.expected, got)
			}
		})
	}
}
