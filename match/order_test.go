package match

import (
	"testing"

	"github.com/npillmayer/quasi/stxlang"
	"github.com/npillmayer/quasi/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func infos() map[string]*HeadInfo {
	wild := func(n int) []tree.Tree {
		ps := make([]tree.Tree, n)
		for i := range ps {
			ps[i] = tree.NewWildcard()
		}
		return ps
	}
	return map[string]*HeadInfo{
		"any":  {},
		"k":    {Kind: "k"},
		"k/2":  {Kind: "k", HasArgs: true, ArgPats: wild(2)},
		"k/3":  {Kind: "k", HasArgs: true, ArgPats: wild(3)},
		"j":    {Kind: "j"},
		"j/2":  {Kind: "j", HasArgs: true, ArgPats: wild(2)},
		"S":    {Scope: stxlang.MustParse("$[$x]*")},
		"S'":   {Scope: stxlang.MustParse("$[$x]*")},
		"T":    {Scope: stxlang.MustParse("$[$x],*")},
		"none": {Bind: bindTo(tree.NewIdent("x"))},
	}
}

func TestGeneralizesRuleTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	hi := infos()
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"any", "k", true},
		{"any", "k/2", true},
		{"any", "S", true},
		{"none", "j/2", true},
		{"k", "k/2", true},
		{"k", "j", false},
		{"k", "any", false},
		{"k/2", "k", false},
		{"k/2", "k/3", false},
		{"k/2", "j/2", false},
		{"S", "S'", true},
		{"S'", "S", true},
		{"S", "T", false},
		{"S", "any", false},
		{"k", "S", false},
		{"S", "k", false},
	}
	for _, test := range tests {
		if r := hi[test.a].Generalizes(hi[test.b]); r != test.expected {
			t.Errorf("expected %s generalizes %s to be %v", test.a, test.b, test.expected)
		}
	}
}

func TestGeneralizesIsReflexive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	for name, h := range infos() {
		if !h.Generalizes(h) {
			t.Errorf("expected %s to generalize itself", name)
		}
	}
}

// Transitivity is not part of the contract of Generalizes, but it holds for
// the concrete rules.
func TestGeneralizesTransitiveForRuleTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	hi := infos()
	for an, a := range hi {
		for bn, b := range hi {
			for cn, c := range hi {
				if a.Generalizes(b) && b.Generalizes(c) && !a.Generalizes(c) {
					t.Errorf("%s ≥ %s ≥ %s, but not %s ≥ %s", an, bn, cn, an, cn)
				}
			}
		}
	}
}

func TestPivotFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quasi.match")
	defer teardown()
	//
	hi := infos()
	tests := []struct {
		infos    []string
		expected string
	}{
		{[]string{"any", "k", "k/2"}, "k/2"},
		{[]string{"k/2", "k", "any"}, "k/2"},
		{[]string{"j", "k/2"}, "j"}, // incomparable: leftmost wins
		{[]string{"k/2", "j"}, "k/2"},
		{[]string{"any", "S", "k"}, "S"},
		{[]string{"any", "none"}, "none"},
	}
	for _, test := range tests {
		var list []*HeadInfo
		for _, n := range test.infos {
			list = append(list, hi[n])
		}
		if p := pivot(list); p != hi[test.expected] {
			t.Errorf("%v: expected pivot %s, have %s", test.infos, test.expected, p)
		}
	}
}
