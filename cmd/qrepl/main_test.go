package main

import (
	"testing"

	"github.com/npillmayer/quasi/eval"
	"github.com/npillmayer/quasi/runtime"
	"github.com/npillmayer/quasi/stxlang"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLeveledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.repl")
	defer teardown()
	//
	ll := leveledTree(stxlang.MustParse("(f [a $x] (g))"), nil, 0)
	expected := []struct {
		level int
		text  string
	}{
		{0, "f"}, {1, "[]"}, {2, "a"}, {2, "$x"}, {1, "(g)"},
	}
	if len(ll) != len(expected) {
		t.Fatalf("expected %d items, have %d: %v", len(expected), len(ll), ll)
	}
	for i, e := range expected {
		if ll[i].Level != e.level || ll[i].Text != e.text {
			t.Errorf("item %d: expected %d/%s, have %d/%s", i, e.level, e.text, ll[i].Level, ll[i].Text)
		}
	}
}

func TestFlagConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.repl")
	defer teardown()
	//
	conf := newFlagConfig()
	conf.Set("module", "")
	conf.Set("tracingsyntax", "Debug")
	conf.InitDefaults()
	if conf.GetString("module") != "Repl" {
		t.Errorf("expected default module name, have %q", conf.GetString("module"))
	}
	if conf.GetString("tracingsyntax") != "Debug" {
		t.Errorf("expected flag value to override default, have %q", conf.GetString("tracingsyntax"))
	}
	if conf.GetString("tracing.adapter") != "go" {
		t.Errorf("expected go tracing adapter")
	}
}

func TestIntpDefinitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.repl")
	defer teardown()
	//
	intp := newTestIntp()
	if _, err := intp.Eval("(def e `(add 1 2)) (def r (match e (alt `(add $a $b) `(add $b $a))))"); err != nil {
		t.Fatal(err)
	}
	v, ok := intp.ip.Globals.Lookup("r")
	if !ok {
		t.Fatalf("expected r to be defined")
	}
	if s := v.(interface{ String() string }).String(); s != "(add 2 1)" {
		t.Errorf("expected (add 2 1), have %s", s)
	}
	if _, err := intp.Eval("(names)"); err != nil {
		t.Errorf("expected (names) to work without a name table, have %v", err)
	}
	quit, err := intp.Eval("(quit)")
	if err != nil || !quit {
		t.Errorf("expected (quit) to end the session")
	}
}

func newTestIntp() *Intp {
	ctx := runtime.NewContext("Test", nil)
	ctx.Scopes = &runtime.Counter{}
	return &Intp{ctx: ctx, ip: eval.NewInterpreter(ctx)}
}
