package quote

import (
	"strings"
	"testing"

	"github.com/npillmayer/quasi/diag"
	"github.com/npillmayer/quasi/eval"
	"github.com/npillmayer/quasi/runtime"
	"github.com/npillmayer/quasi/stxlang"
	"github.com/npillmayer/quasi/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newContext() *runtime.Context {
	ctx := runtime.NewContext("Test", nil)
	ctx.Scopes = &runtime.Counter{}
	return ctx
}

// construct expands a quotation and evaluates the result with variables
// bound to env.
func construct(t *testing.T, ctx *runtime.Context, quotation string, env map[string]interface{}) tree.Tree {
	t.Helper()
	c, err := ExpandQuotation(ctx, stxlang.MustParse(quotation), 1)
	if err != nil {
		t.Fatalf("%s: expansion failed: %v", quotation, err)
	}
	t.Logf("code = %s", c)
	ip := eval.NewInterpreter(ctx)
	for name, v := range env {
		ip.Globals.Define(name, v)
	}
	v, err := ip.Eval(c)
	if err != nil {
		t.Fatalf("%s: evaluation failed: %v", quotation, err)
	}
	r, ok := v.(tree.Tree)
	if !ok {
		t.Fatalf("%s: expected a tree, have %s", quotation, eval.Format(v))
	}
	return r
}

func seq(trees ...string) eval.Seq {
	s := eval.Seq{}
	for _, t := range trees {
		s = append(s, stxlang.MustParse(t))
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.quote")
	defer teardown()
	//
	tests := []struct {
		quotation string
		env       map[string]interface{}
		expected  string
	}{
		{"`(app f x)", nil, "(app f x)"},
		{"`[a \"s\" 42]", nil, `[a "s" 42]`},
		{"`(app $f [a $x \"s\" 42])",
			map[string]interface{}{"f": stxlang.MustParse("g"), "x": stxlang.MustParse("(h 1)")},
			`(app g [a (h 1) "s" 42])`},
		{"`$x", map[string]interface{}{"x": stxlang.MustParse("(h 1)")}, "(h 1)"},
		{"`(f _)", nil, "(f _)"},
	}
	for _, test := range tests {
		t.Run(test.quotation, func(t *testing.T) {
			r := construct(t, newContext(), test.quotation, test.env)
			if !tree.Equal(r, stxlang.MustParse(test.expected)) {
				t.Errorf("expected %s, have %s", test.expected, r)
			}
		})
	}
}

func TestIdentifiersAreHygienic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.quote")
	defer teardown()
	//
	names := runtime.NewNameTable()
	names.Declare("List.map")
	names.Open("List")
	ctx := newContext()
	ctx.Names = names
	r := construct(t, ctx, "`(app map y)", nil)
	m, ok := tree.AsIdent(tree.Arg(r, 0))
	if !ok {
		t.Fatalf("expected identifier, have %s", tree.Arg(r, 0))
	}
	if !runtime.HasMacroScopes(m.Name) || !strings.Contains(m.Name, "Test") {
		t.Errorf("expected name tagged with a macro scope of module Test, is %s", m.Name)
	}
	if runtime.EraseMacroScopes(m.Name) != "map" {
		t.Errorf("expected erased name to be map, is %s", runtime.EraseMacroScopes(m.Name))
	}
	if len(m.Candidates) != 1 || m.Candidates[0] != "List.map" {
		t.Errorf("expected candidates [List.map], have %v", m.Candidates)
	}
	y, _ := tree.AsIdent(tree.Arg(r, 1))
	if len(y.Candidates) != 0 {
		t.Errorf("expected y not to resolve, have %v", y.Candidates)
	}
}

func TestSingleScopeBinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.quote")
	defer teardown()
	//
	c, err := ExpandTemplate(newContext(), stxlang.MustParse("(f a (g b))"))
	if err != nil {
		t.Fatal(err)
	}
	s := c.String()
	if strings.Count(s, "(currMacroScope)") != 1 || strings.Count(s, "(mainModule)") != 1 {
		t.Errorf("expected exactly one macro scope and module binding: %s", s)
	}
}

func TestEscapedHoles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.quote")
	defer teardown()
	//
	ctx := newContext()
	r := construct(t, ctx, "`(f $$x)", nil)
	if !tree.Equal(r, stxlang.MustParse("(f $x)")) {
		t.Errorf("expected literal hole, have %s", r)
	}
	if h := tree.Arg(r, 0); !tree.IsActiveHole(h) {
		t.Errorf("expected an active hole, have %s", h)
	}
	r = construct(t, ctx, "`(f $$$x:ident)", nil)
	if h := tree.Arg(r, 0); tree.EscapeLevel(h) != 1 || r.String() != "(f $$x:ident)" {
		t.Errorf("expected hole with one repeat marker, have %s", r)
	}
	r = construct(t, ctx, "`$$[$x]*", nil)
	if !tree.IsActiveScope(r) || r.String() != "$[$x]*" {
		t.Errorf("expected literal scope, have %s", r)
	}
}

func TestSplices(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.quote")
	defer teardown()
	//
	ctx := newContext()
	env := map[string]interface{}{
		"xs": seq("1", "2"),
		"ys": seq(),
	}
	tests := []struct {
		quotation, expected string
	}{
		{"`[a $xs* b]", "[a 1 2 b]"},
		{"`[$xs*]", "[1 2]"},
		{"`[$xs* $xs*]", "[1 2 1 2]"},
		{"`(f [$ys*] c)", "(f [] c)"},
	}
	for _, test := range tests {
		r := construct(t, ctx, test.quotation, env)
		if !tree.Equal(r, stxlang.MustParse(test.expected)) {
			t.Errorf("%s: expected %s, have %s", test.quotation, test.expected, r)
		}
	}
}

func TestScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.quote")
	defer teardown()
	//
	ctx := newContext()
	env := map[string]interface{}{
		"x":       seq("1", "2", "3"),
		"k":       seq("a", "b"),
		"v":       seq("1", "2"),
		"present": eval.Some(stxlang.MustParse("1")),
		"absent":  eval.None,
	}
	tests := []struct {
		quotation, expected string
	}{
		{"`(f $[$x]*)", "(f [1 2 3])"},
		{"`(f $[(g $x)]*)", "(f [(g 1) (g 2) (g 3)])"},
		{"`(f $[$x],*)", `(f [1 "," 2 "," 3])`},
		{"`(f $[$x]\";\"*)", `(f [1 ";" 2 ";" 3])`},
		{"`(let $[(bind $k $v)]* body)", "(let [(bind a 1) (bind b 2)] body)"},
		{"`(let $[$k $v]* body)", "(let [[a 1] [b 2]] body)"},
		{"`(f $[$present]?)", "(f [1])"},
		{"`(f $[$absent]?)", "(f [])"},
	}
	for _, test := range tests {
		r := construct(t, ctx, test.quotation, env)
		if !tree.Equal(r, stxlang.MustParse(test.expected)) {
			t.Errorf("%s: expected %s, have %s", test.quotation, test.expected, r)
		}
	}
}

func TestFloatOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.quote")
	defer teardown()
	//
	ctx := newContext()
	q := "`$[(g $x $(mkAtom \"c\"))]*"
	c, err := ExpandQuotation(ctx, stxlang.MustParse(q), 1)
	if err != nil {
		t.Fatal(err)
	}
	s := c.String()
	if strings.Count(s, `(mkAtom "c")`) != 1 || !strings.Contains(s, `(let v0 (mkAtom "c") (mkNode "list"`) {
		t.Errorf("expected hole expression to be evaluated once, before the repetition: %s", s)
	}
	r := construct(t, ctx, q, map[string]interface{}{"x": seq("1", "2")})
	if !tree.Equal(r, stxlang.MustParse(`[(g 1 "c") (g 2 "c")]`)) {
		t.Errorf("unexpected result %s", r)
	}
}

func TestExpansionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.quote")
	defer teardown()
	//
	tests := []struct {
		template string
		class    diag.Class
	}{
		{"(f $xs*)", diag.UnexpectedSplice},
		{"$xs*", diag.UnexpectedSplice},
		{"[a $[$x]*]", diag.UnexpectedScope},
		{"$[a]*", diag.TooManyScopeBindings},
		{"$[$x $y $z]*", diag.TooManyScopeBindings},
	}
	for _, test := range tests {
		_, err := ExpandTemplate(newContext(), stxlang.MustParse(test.template))
		if c := diag.ClassOf(err); c != test.class {
			t.Errorf("%s: expected error of class %s, have %v", test.template, test.class, err)
		}
	}
	_, err := ExpandQuotation(newContext(), stxlang.MustParse("(f x)"), 1)
	if !diag.Is(err, diag.MalformedForm) {
		t.Errorf("expected malformed-form error for non-quotation, have %v", err)
	}
}
