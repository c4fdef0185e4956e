package eval

import (
	"testing"

	"github.com/npillmayer/quasi/runtime"
	"github.com/npillmayer/quasi/stxlang"
	"github.com/npillmayer/quasi/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newInterpreter() *Interpreter {
	ctx := runtime.NewContext("Test", nil)
	ctx.Scopes = &runtime.Counter{}
	ip := NewInterpreter(ctx)
	ip.Globals.Define("t", stxlang.MustParse(`(f a "," b "," c)`))
	return ip
}

func TestForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.eval")
	defer teardown()
	//
	tests := []struct {
		code, expected string
	}{
		{`(let x 1 (if (eq x 1) "one" "other"))`, `"one"`},
		{`(and (eq 1 1) (not (eq 1 2)))`, "true"},
		{`(and (eq 1 2) (noMatch))`, "false"},
		{`(app (fun x (tuple x x)) 3)`, "(tuple 3 3)"},
		{`(map (fun x (some x)) (seq 1 2))`, "{(some 1) (some 2)}"},
		{`(zip (seq 1 2) (seq "a" "b" "c"))`, `{(tuple 1 "a") (tuple 2 "b")}`},
		{`(intersperse "," (seq 1 2 3))`, `{1 "," 2 "," 3}`},
		{`(allSome (seq (some 1) (none)))`, "false"},
		{`(allSome (seq))`, "true"},
		{`(getSome (some 5))`, "5"},
		{`(isSome (none))`, "false"},
		{`(proj (tuple 1 2) 1)`, "2"},
		{`(concat (seq 1) (seq) (seq 2 3))`, "{1 2 3}"},
		{`(isOfKind t "f")`, "true"},
		{`(childCount t)`, "5"},
		{`(getChild t 2)`, "b"},
		{`(getChild t 7)`, "<missing>"},
		{`(getArgs t)`, `{a "," b "," c}`},
		{`(getSepArgs t)`, "{a b c}"},
		{`(mkNode "g" (seq (mkAtom 1) (mkAtom "x") (mkMissing)))`, `(g 1 "x" <missing>)`},
		{`(mainModule)`, `"Test"`},
	}
	for _, test := range tests {
		ip := newInterpreter()
		v, err := ip.Eval(stxlang.MustParse(test.code))
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.code, err)
			continue
		}
		if Format(v) != test.expected {
			t.Errorf("%s: expected %s, have %s", test.code, test.expected, Format(v))
		}
	}
}

func TestMkIdent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.eval")
	defer teardown()
	//
	ip := newInterpreter()
	c := stxlang.MustParse(`(mkIdent "x" (addMacroScope (mainModule) "x" (currMacroScope)) (seq "A.x"))`)
	v, err := ip.Eval(c)
	if err != nil {
		t.Fatal(err)
	}
	id, ok := v.(*tree.Ident)
	if !ok {
		t.Fatalf("expected identifier, have %s", Format(v))
	}
	if id.Raw != "x" || runtime.EraseMacroScopes(id.Name) != "x" || !runtime.HasMacroScopes(id.Name) {
		t.Errorf("unexpected identifier %s with name %s", id.Raw, id.Name)
	}
	if len(id.Candidates) != 1 || id.Candidates[0] != "A.x" {
		t.Errorf("expected candidates [A.x], have %v", id.Candidates)
	}
	w, _ := ip.Eval(c)
	if w.(*tree.Ident).Name == id.Name {
		t.Errorf("expected every evaluation to use a fresh macro scope")
	}
}

func TestClosuresCaptureEnvironment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.eval")
	defer teardown()
	//
	ip := newInterpreter()
	v, err := ip.Eval(stxlang.MustParse(`(let y 10 (let f (fun x (tuple x y)) (let y 20 (app f 1))))`))
	if err != nil {
		t.Fatal(err)
	}
	if Format(v) != "(tuple 1 10)" {
		t.Errorf("expected lexical scoping, have %s", Format(v))
	}
}

func TestEvalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.eval")
	defer teardown()
	//
	ip := newInterpreter()
	if _, err := ip.Eval(stxlang.MustParse("(noMatch)")); err != ErrNoMatch {
		t.Errorf("expected ErrNoMatch, have %v", err)
	}
	for _, c := range []string{
		"y",
		"(let 1 2 3)",
		"(if 1 2 3)",
		"(unknown 1)",
		"(some)",
		"(proj (tuple 1) 5)",
		"(getSome (none))",
		"(map 1 (seq))",
		"(mkNode \"f\" (seq 1))",
		"(childCount 1)",
	} {
		if _, err := ip.Eval(stxlang.MustParse(c)); err == nil {
			t.Errorf("%s: expected evaluation to fail", c)
		}
	}
}
