package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// Holes (antiquotations) are nodes of kind `<K>.hole` with exactly four children:
//
//    0  repeat markers  list of "$" atoms; their number is the escape level
//    1  inner term      identifier (binds) or any other tree (expression)
//    2  annotation      list with zero or one atom: explicit kind, e.g. `$x:ident`
//    3  splice marker   list with zero or one "*" atom, e.g. `$xs*`
//
// Hole scopes (antiquotation scopes) are nodes of kind `<K>.hole_scope` with
// exactly six children:
//
//    0  repeat markers  as for holes
//    1  group kind      atom "optional", "many" or "sepBy"
//    2  "["
//    3  contents        list of trees
//    4  "]"
//    5  suffix          atom "?", "*" or separator followed by "*", e.g. ",*"
//
const (
	holeSuffix  = ".hole"
	scopeSuffix = ".hole_scope"
	holeArity   = 4
	scopeArity  = 6
)

// Group is the repetition kind of a hole scope.
type Group string

// Groups of hole scopes.
const (
	Optional Group = "optional" // $[ … ]?
	Many     Group = "many"     // $[ … ]*
	SepBy    Group = "sepBy"    // $[ … ],*
)

// HoleKind returns the reserved hole kind for syntax category k.
func HoleKind(k Kind) Kind {
	return k + holeSuffix
}

// ScopeKind returns the reserved hole scope kind for syntax category k.
func ScopeKind(k Kind) Kind {
	return k + scopeSuffix
}

// IsHole is true for antiquotation nodes, escaped or not.
func IsHole(t Tree) bool {
	n, ok := t.(*Node)
	return ok && len(n.args) == holeArity && strings.HasSuffix(string(n.kind), holeSuffix)
}

// IsScope is true for antiquotation scope nodes, escaped or not.
func IsScope(t Tree) bool {
	n, ok := t.(*Node)
	return ok && len(n.args) == scopeArity && strings.HasSuffix(string(n.kind), scopeSuffix)
}

// Category returns the syntax category of a hole or hole scope.
func Category(t Tree) Kind {
	k := string(t.Kind())
	if IsScope(t) {
		return Kind(strings.TrimSuffix(k, scopeSuffix))
	}
	return Kind(strings.TrimSuffix(k, holeSuffix))
}

// EscapeLevel is the number of repeat markers of a hole or scope. Level 0
// means "active"; trees which are neither holes nor scopes have level 0.
func EscapeLevel(t Tree) int {
	if !IsHole(t) && !IsScope(t) {
		return 0
	}
	return len(Arg(t, 0).Args())
}

// IsEscaped is true for holes and scopes with at least one repeat marker.
func IsEscaped(t Tree) bool {
	return EscapeLevel(t) > 0
}

// Unescape strips one repeat marker from an escaped hole or scope. Other
// trees are returned unchanged.
func Unescape(t Tree) Tree {
	if !IsEscaped(t) {
		return t
	}
	n := t.(*Node)
	markers := Arg(n, 0).Args()
	tracer().Debugf("unescape %s", n)
	return n.SetArg(0, List(markers[1:]...))
}

// HoleTerm returns the inner term of a hole.
func HoleTerm(t Tree) Tree {
	return Arg(t, 1)
}

// HoleAnnotation returns the explicit kind annotation of a hole, if present.
func HoleAnnotation(t Tree) (Kind, bool) {
	ann := Arg(t, 2).Args()
	if len(ann) == 1 {
		if a, ok := ann[0].(*Atom); ok {
			return Kind(a.Text), true
		}
	}
	return "", false
}

// IsSplice is true for holes carrying a splice marker, e.g. `$xs*`.
func IsSplice(t Tree) bool {
	return IsHole(t) && len(Arg(t, 3).Args()) == 1
}

// IsActiveHole is true for holes which are neither escaped nor splices.
func IsActiveHole(t Tree) bool {
	return IsHole(t) && !IsEscaped(t) && !IsSplice(t)
}

// IsActiveSplice is true for non-escaped splice holes.
func IsActiveSplice(t Tree) bool {
	return IsSplice(t) && !IsEscaped(t)
}

// IsActiveScope is true for non-escaped hole scopes.
func IsActiveScope(t Tree) bool {
	return IsScope(t) && !IsEscaped(t)
}

// ScopeGroup returns the repetition kind of a hole scope.
func ScopeGroup(t Tree) Group {
	return Group(AtomText(Arg(t, 1)))
}

// ScopeContents returns the trees enclosed by a hole scope.
func ScopeContents(t Tree) []Tree {
	return Arg(t, 3).Args()
}

// ScopeSeparator returns the separator of a `sepBy` scope, e.g. ",".
func ScopeSeparator(t Tree) string {
	return strings.TrimSuffix(AtomText(Arg(t, 5)), "*")
}

// SuffixGroup maps a scope suffix to its group.
func SuffixGroup(suffix string) (Group, bool) {
	switch {
	case suffix == "?":
		return Optional, true
	case suffix == "*":
		return Many, true
	case len(suffix) > 1 && strings.HasSuffix(suffix, "*"):
		return SepBy, true
	}
	return "", false
}

// --- Constructors ----------------------------------------------------------

func repeatMarkers(escape int) *Node {
	markers := make([]Tree, escape)
	for i := range markers {
		markers[i] = NewAtom("$")
	}
	return List(markers...)
}

// NewHole creates a hole for syntax category k. An empty annotation means
// "no explicit kind".
func NewHole(k Kind, escape int, term Tree, annotation Kind, splice bool) *Node {
	ann, spl := List(), List()
	if annotation != "" {
		ann = List(NewAtom(string(annotation)))
	}
	if splice {
		spl = List(NewAtom("*"))
	}
	return NewNode(HoleKind(k), repeatMarkers(escape), term, ann, spl)
}

// NewScope creates a hole scope for syntax category k. The group is derived
// from the suffix ("?", "*" or separator + "*").
func NewScope(k Kind, escape int, suffix string, contents ...Tree) *Node {
	g, ok := SuffixGroup(suffix)
	if !ok {
		panic("invalid hole scope suffix: " + suffix)
	}
	return NewNode(ScopeKind(k), repeatMarkers(escape), NewAtom(string(g)),
		NewAtom("["), List(contents...), NewAtom("]"), NewAtom(suffix))
}

// NewQuote wraps body into a quotation. The quoted body is child 1.
func NewQuote(body Tree) *Node {
	return NewNode(QuoteKind, NewAtom("`("), body, NewAtom(")"))
}

// NewWildcard creates the pattern `_`.
func NewWildcard() *Node {
	return NewNode(WildcardKind, NewAtom("_"))
}

// IsQuote is true for quotation nodes.
func IsQuote(t Tree) bool {
	return IsOfKind(t, QuoteKind) && len(t.Args()) == 3
}

// QuoteBody returns the quoted child of a quotation.
func QuoteBody(t Tree) Tree {
	return Arg(t, 1)
}

// ActiveHoles collects the non-escaped holes inside t, in pre-order. The
// inner terms of holes are not searched, neither are escaped holes and
// escaped scopes.
func ActiveHoles(t Tree) []Tree {
	var holes []Tree
	Walk(t, func(n Tree) bool {
		if IsEscaped(n) {
			return false
		}
		if IsHole(n) {
			holes = append(holes, n)
			return false
		}
		return true
	})
	return holes
}
