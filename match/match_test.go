package match

import (
	"testing"

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

func alt(pattern, rhs string) Alt {
	return NewAlt(stxlang.MustParse(pattern), stxlang.MustParse(rhs))
}

// run compiles a match on variable `input` and evaluates it with input bound
// to a tree.
func run(t *testing.T, input string, alts ...Alt) (string, error) {
	ctx := newContext()
	c, err := CompilePatternMatch(ctx, tree.NewIdent("input"), alts)
	if err != nil {
		t.Fatalf("compiling match failed: %v", err)
	}
	t.Logf("code = %s", c)
	ip := eval.NewInterpreter(ctx)
	ip.Globals.Define("input", stxlang.MustParse(input))
	v, err := ip.Eval(c)
	return eval.Format(v), err
}

func expectResult(t *testing.T, expected string, input string, alts ...Alt) {
	t.Helper()
	r, err := run(t, input, alts...)
	if err != nil {
		t.Errorf("%s: evaluation failed: %v", input, err)
		return
	}
	if r != expected {
		t.Errorf("%s: expected %s, got %s", input, expected, r)
	}
}

func TestWildcardFirstAlwaysWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	alts := []Alt{
		alt("_", `"first"`),
		alt("`(f $x)", `"second"`),
		alt("`$[$y]*", `"third"`),
	}
	for _, input := range []string{"(f 1)", "g", "[1 2]", "(h)"} {
		expectResult(t, `"first"`, input, alts...)
	}
}

func TestDisjointKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	alts := []Alt{
		alt("`(a $x)", `(tuple "A" x)`),
		alt("`(b $y)", `(noMatch)`), // must never be evaluated for (a …)
	}
	expectResult(t, `(tuple "A" 1)`, "(a 1)", alts...)
	if _, err := run(t, "(b 2)", alts...); err != eval.ErrNoMatch {
		t.Errorf("expected second alternative to be taken for (b 2), err = %v", err)
	}
	if _, err := run(t, "(c 3)", alts...); err != eval.ErrNoMatch {
		t.Errorf("expected fallback for (c 3), err = %v", err)
	}
}

func TestFirstMatchAmongOverlapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	alts := []Alt{
		alt("`(app $f $x:ident)", `(tuple "ident-arg" f x)`),
		alt("`(app $f (lit $n))", `(tuple "literal" n)`),
		alt("`(app $f $x)", `(tuple "other" f)`),
		alt("x", `(tuple "any" x)`),
	}
	expectResult(t, `(tuple "ident-arg" g y)`, "(app g y)", alts...)
	expectResult(t, `(tuple "literal" 7)`, "(app g (lit 7))", alts...)
	expectResult(t, `(tuple "other" g)`, "(app g [1])", alts...)
	expectResult(t, `(tuple "any" (app g))`, "(app g)", alts...)
	expectResult(t, `(tuple "any" 42)`, "42", alts...)
}

func TestNestedPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	alts := []Alt{
		alt("`(add (num $a) (num $b))", `(tuple "const" a b)`),
		alt("`(add $l (num \"0\"))", `(tuple "right-zero" l)`),
		alt("`(add $l $r)", `(tuple "add" l r)`),
	}
	expectResult(t, `(tuple "const" 1 2)`, "(add (num 1) (num 2))", alts...)
	expectResult(t, `(tuple "const" 1 0)`, "(add (num 1) (num 0))", alts...)
	expectResult(t, `(tuple "right-zero" x)`, "(add x (num 0))", alts...)
	expectResult(t, `(tuple "add" x y)`, "(add x y)", alts...)
}

func TestSpliceBindsAllChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	expectResult(t, "{a b c}", "[a b c]", alt("`[$xs*]", "xs"))
	expectResult(t, "{}", "[]", alt("`[$xs*]", "xs"))
}

func TestManyScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	expectResult(t, "{1 2 3}", "[1 2 3]", alt("`$[$x]*", "x"))
	expectResult(t, "{}", "[]", alt("`$[$x]*", "x"))
	alts := []Alt{
		alt("`$[(p $x)]*", "x"),
		alt("_", `"failed"`),
	}
	expectResult(t, "{1 2 3}", "[(p 1) (p 2) (p 3)]", alts...)
	expectResult(t, `"failed"`, "[(p 1) (q 2) (p 3)]", alts...)
	expectResult(t, `"failed"`, "(p 1)", alts...)
}

func TestManyScopeTwoVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	expectResult(t, "(tuple {a b} {1 2})", "[(pair a 1) (pair b 2)]",
		alt("`$[(pair $k $v)]*", "(tuple k v)"))
	expectResult(t, "(tuple {a b} {1 2})", "[[a 1] [b 2]]",
		alt("`$[$k $v]*", "(tuple k v)"))
}

func TestEqualScopesShareSubmatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	alts := []Alt{
		alt("`$[(p $x)]*", `(tuple "first" x)`),
		alt("`$[(p $x)]*", `(tuple "second" x)`),
		alt("v", `(tuple "other" v)`),
	}
	expectResult(t, `(tuple "first" {1 2})`, "[(p 1) (p 2)]", alts...)
	expectResult(t, `(tuple "other" [(q 1)])`, "[(q 1)]", alts...)
	expectResult(t, `(tuple "other" 5)`, "5", alts...)
}

func TestScopeFollowedByFurtherPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	// both scopes are equal, the submatch binds x for either alternative
	alts := []Alt{
		alt("`(f $[(p $x)]* (a))", `(tuple "marked" x)`),
		alt("`(f $[(p $x)]* $y)", `(tuple "rest" x y)`),
		alt("z", `(tuple "other" z)`),
	}
	expectResult(t, `(tuple "marked" {1 2})`, "(f [(p 1) (p 2)] (a))", alts...)
	expectResult(t, `(tuple "rest" {1} b)`, "(f [(p 1)] b)", alts...)
	expectResult(t, `(tuple "rest" {} c)`, "(f [] c)", alts...)
	expectResult(t, `(tuple "other" (f [(q 1)] (a)))`, "(f [(q 1)] (a))", alts...)
	expectResult(t, `(tuple "other" (g))`, "(g)", alts...)
}

func TestSepByScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	expectResult(t, "{1 2 3}", `[1 "," 2 "," 3]`, alt("`$[$x],*", "x"))
	expectResult(t, "{1}", `[1]`, alt("`$[$x],*", "x"))
}

func TestOptionalScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	alts := []Alt{
		alt("`(f $[$x]?)", "x"),
		alt("_", `"fallthrough"`),
	}
	expectResult(t, "none", "(f [])", alts...)
	expectResult(t, "(some 1)", "(f [1])", alts...)
	expectResult(t, `"fallthrough"`, "(f 1)", alts...)
	expectResult(t, `"fallthrough"`, "(g [])", alts...)
	two := alt("`(f $[$x $y]?)", "(tuple x y)")
	expectResult(t, "(tuple none none)", "(f [])", two)
	expectResult(t, "(tuple (some 1) (some 2))", "(f [1 2])", two)
}

func TestEscapedHoleMatchesLiterally(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	alts := []Alt{
		alt("`(f $$x)", `"literal hole"`),
		alt("`(f $y)", `"anything"`),
	}
	expectResult(t, `"literal hole"`, "(f $x)", alts...)
	expectResult(t, `"anything"`, "(f x)", alts...)
}

func TestWildcardHole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	expectResult(t, "y", "(f x y)", alt("`(f $_ $y)", "y"))
}

func TestHygienicDiscriminants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	ctx := newContext()
	alts := []Alt{alt("`(f (g $x) $y)", "x"), alt("`$[$z]*", "z")}
	c, err := CompilePatternMatch(ctx, tree.NewIdent("input"), alts)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	tree.Walk(c, func(n tree.Tree) bool {
		if tree.IsOfKind(n, "let") {
			if id, ok := tree.AsIdent(tree.Arg(n, 0)); ok && id.Raw == "discr" {
				if seen[id.Name] {
					t.Errorf("discriminant name %s bound twice", id.Name)
				}
				if !runtime.HasMacroScopes(id.Name) {
					t.Errorf("expected discriminant name to be hygienic, is %s", id.Name)
				}
				seen[id.Name] = true
			}
		}
		return true
	})
	if len(seen) < 3 {
		t.Errorf("expected at least 3 discriminant bindings, have %d", len(seen))
	}
}
