package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNodeArgs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.tree")
	defer teardown()
	//
	n := NewNode("app", NewIdent("f"), NewAtom("1"))
	if n.Len() != 2 {
		t.Fatalf("expected node to have 2 children, has %d", n.Len())
	}
	if _, ok := n.Arg(5).(Missing); !ok {
		t.Errorf("expected out-of-range child to be missing, is %v", n.Arg(5))
	}
	m := n.SetArg(1, NewAtom("2"))
	if AtomText(n.Arg(1)) != "1" {
		t.Errorf("SetArg must not modify the original node")
	}
	if AtomText(m.Arg(1)) != "2" {
		t.Errorf("expected child 1 of copy to be 2, is %v", m.Arg(1))
	}
}

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.tree")
	defer teardown()
	//
	x := NewIdent("x")
	tests := []struct {
		tree     Tree
		expected string
	}{
		{NewNode("app", NewIdent("f"), List(NewAtom("a"), NewAtom("42"))), `(app f ["a" 42])`},
		{NewNode("unit"), `(unit)`},
		{NewHole("term", 0, x, "", false), `$x`},
		{NewHole("term", 1, x, "ident", false), `$$x:ident`},
		{NewHole("term", 0, x, "", true), `$x*`},
		{NewScope("term", 0, ",*", NewHole("term", 0, x, "", false)), `$[$x],*`},
		{NewScope("term", 0, ";*", NewHole("term", 0, x, "", false)), `$[$x]";"*`},
		{NewQuote(NewNode("app", NewWildcard())), "`(app _)"},
		{Missing{}, `<missing>`},
	}
	for _, test := range tests {
		if s := test.tree.String(); s != test.expected {
			t.Errorf("expected %s, got %s", test.expected, s)
		}
	}
}

func TestEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.tree")
	defer teardown()
	//
	h := NewHole("term", 2, NewIdent("x"), "", false)
	if EscapeLevel(h) != 2 || !IsEscaped(h) {
		t.Fatalf("expected escape level 2, is %d", EscapeLevel(h))
	}
	u := Unescape(h)
	if EscapeLevel(u) != 1 {
		t.Errorf("expected escape level 1 after unescaping, is %d", EscapeLevel(u))
	}
	v := Unescape(u)
	if Unescape(v) != v {
		t.Errorf("unescaping an active hole should be a no-op")
	}
	if IsActiveHole(h) || !IsActiveHole(v) {
		t.Errorf("active-hole predicate is broken")
	}
}

func TestScopeAccessors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.tree")
	defer teardown()
	//
	s := NewScope("term", 0, ";*", NewHole("term", 0, NewIdent("x"), "", false))
	if !IsScope(s) || IsHole(s) {
		t.Fatalf("expected %v to be a scope", s)
	}
	if ScopeGroup(s) != SepBy {
		t.Errorf("expected group sepBy, is %s", ScopeGroup(s))
	}
	if ScopeSeparator(s) != ";" {
		t.Errorf("expected separator ';', is %q", ScopeSeparator(s))
	}
	if len(ScopeContents(s)) != 1 {
		t.Errorf("expected 1 tree in scope")
	}
	if Category(s) != "term" {
		t.Errorf("expected category term, is %s", Category(s))
	}
}

func TestEqualIgnoresHygiene(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.tree")
	defer teardown()
	//
	a := NewNode("app", NewIdent("f"))
	b := NewNode("app", NewIdent("f").WithName("f._@.M._hyg.3", []string{"M.f"}))
	if !Equal(a, b) {
		t.Errorf("expected %v and %v to be structurally equal", a, b)
	}
	if Equal(a, NewNode("app", NewIdent("g"))) {
		t.Errorf("expected different identifiers to compare unequal")
	}
	if Equal(a, NewNode("app", NewIdent("f"), NewAtom("1"))) {
		t.Errorf("expected different arities to compare unequal")
	}
}

func TestWalkAndMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.tree")
	defer teardown()
	//
	n := NewNode("a", NewNode("b", NewIdent("x")), NewNode(ChoiceKind, NewIdent("y")))
	var kinds []Kind
	Walk(n, func(t Tree) bool {
		kinds = append(kinds, t.Kind())
		return true
	})
	expected := []Kind{"a", "b", IdentKind, ChoiceKind, IdentKind}
	if len(kinds) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, kinds)
	}
	for i := range kinds {
		if kinds[i] != expected[i] {
			t.Errorf("pre-order broken at %d: expected %v, got %v", i, expected, kinds)
		}
	}
	if !IsAmbiguous(n) {
		t.Errorf("expected tree with choice node to be ambiguous")
	}
	m := Map(n, func(t Tree) Tree {
		if id, ok := t.(*Ident); ok && id.Raw == "x" {
			return NewIdent("z")
		}
		return t
	})
	if m.String() != "(a (b z) (choice y))" {
		t.Errorf("unexpected mapped tree %v", m)
	}
	if n.String() != "(a (b x) (choice y))" {
		t.Errorf("Map must not modify its input, now %v", n)
	}
}

func TestActiveHoles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.tree")
	defer teardown()
	//
	x := NewHole("term", 0, NewIdent("x"), "", false)
	y := NewHole("term", 1, NewIdent("y"), "", false)
	z := NewHole("term", 0, NewIdent("z"), "", true)
	n := NewNode("f", x, y, NewScope("term", 0, "*", z), NewScope("term", 1, "?", x))
	holes := ActiveHoles(n)
	if len(holes) != 2 || holes[0] != x || holes[1] != z {
		t.Errorf("expected active holes [$x $z*], have %v", holes)
	}
}
