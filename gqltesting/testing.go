// Package gqltesting runs schema text through the codec in tests.
package gqltesting

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/codec"
	"github.com/graph-gophers/graphql-editor/errors"
)

// Test is a codec test case to be used with RunTest(s).
type Test struct {
	Schema    string
	Libraries string
	// ExpectedSchema is the canonical text Schema must serialize to. When
	// empty, only the round-trip laws are checked.
	ExpectedSchema string
	ExpectedError  *errors.ParseError
}

// RunTests runs the given codec test cases as subtests.
func RunTests(t *testing.T, tests []*Test) {
	t.Helper()
	if len(tests) == 1 {
		RunTest(t, tests[0])
		return
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i+1), func(t *testing.T) {
			t.Helper()
			RunTest(t, test)
		})
	}
}

// RunTest parses a single case, compares its canonical form and checks that
// reparsing the output is stable.
func RunTest(t *testing.T, test *Test) {
	t.Helper()
	tree, _, err := codec.Parse(test.Schema, test.Libraries)
	if test.ExpectedError != nil || err != nil {
		checkError(t, test.ExpectedError, err)
		return
	}

	got := codec.Serialize(tree)
	if test.ExpectedSchema != "" && got != test.ExpectedSchema {
		t.Log("Did not get expected schema:\n", diff(test.ExpectedSchema, got))
		t.Fatal()
	}

	again, _, err := codec.Parse(got, test.Libraries)
	if err != nil {
		t.Fatalf("canonical output does not parse: %s\n%s", err, got)
	}
	if err := Equivalent(tree, again); err != nil {
		t.Fatalf("reparsed tree differs: %s", err)
	}
	if out := codec.Serialize(again); out != got {
		t.Log("serialization is not stable:\n", diff(got, out))
		t.Fatal()
	}
}

// Equivalent reports how b differs from a in node names, kinds and argument
// sets, recursively. Order of top-level nodes is ignored.
func Equivalent(a, b *ast.Tree) error {
	an, bn := signatures(a.Nodes), signatures(b.Nodes)
	sort.Strings(an)
	sort.Strings(bn)
	if !reflect.DeepEqual(an, bn) {
		return fmt.Errorf("nodes differ:\n  want: %v\n  got:  %v", an, bn)
	}
	return nil
}

func signatures(nodes []*ast.Node) []string {
	sigs := make([]string, len(nodes))
	for i, n := range nodes {
		sigs[i] = signature(n)
	}
	return sigs
}

func signature(n *ast.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%s", n.Kind(), n.Name)
	if n.Type.Name != "" || n.Type.OfType != nil {
		fmt.Fprintf(&b, " %s", n.Type)
	}
	if n.Value != nil {
		fmt.Fprintf(&b, " = %s", n.Value)
	}
	if len(n.Args) > 0 {
		b.WriteString("(" + strings.Join(signatures(n.Args), ", ") + ")")
	}
	if len(n.Directives) > 0 {
		b.WriteString(" @[" + strings.Join(signatures(n.Directives), ", ") + "]")
	}
	return b.String()
}

func checkError(t *testing.T, want *errors.ParseError, got error) {
	t.Helper()
	if want == nil {
		t.Fatalf("unexpected error: %s", got)
	}
	perr, ok := errors.As(got)
	if !ok {
		t.Fatalf("expected error %q, got %v", want.Message, got)
	}
	if perr.Message != want.Message || perr.Source != want.Source {
		t.Log("unexpected error:")
		t.Log("  Got: ", perr.Error())
		t.Log("  Want:", want.Error())
		t.Fatal()
	}
	if want.Locations != nil && !reflect.DeepEqual(perr.Locations, want.Locations) {
		t.Fatalf("unexpected locations: got %v, want %v", perr.Locations, want.Locations)
	}
}

func diff(want, got string) string {
	wl, gl := strings.Split(want, "\n"), strings.Split(got, "\n")
	var b strings.Builder
	for i := 0; i < len(wl) || i < len(gl); i++ {
		var w, g string
		if i < len(wl) {
			w = wl[i]
		}
		if i < len(gl) {
			g = gl[i]
		}
		if w == g {
			b.WriteString("    " + w + "\n")
			continue
		}
		b.WriteString("--- " + w + "\n+++ " + g + "\n")
	}
	return b.String()
}
