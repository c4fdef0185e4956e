package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/quasi"
)

// Kind is a label for tree nodes. Kinds are drawn from an open label space;
// see the package documentation for the reserved ones.
type Kind string

// Reserved kinds.
const (
	AtomKind     Kind = "atom"     // kind of every Atom
	IdentKind    Kind = "ident"    // kind of every Ident
	MissingKind  Kind = "missing"  // kind of the Missing sentinel
	ListKind     Kind = "list"     // sequence wrapper, variable arity
	QuoteKind    Kind = "quote"    // quotation: "`(" body ")"
	WildcardKind Kind = "wildcard" // pattern `_`
	ChoiceKind   Kind = "choice"   // ambiguous parse, children are the alternatives
)

// SourceInfo holds the position a tree has been read from. Synthesized trees
// carry a null span.
type SourceInfo struct {
	Span quasi.Span
}

// Tree is the generic syntax tree type. It is a closed variant: the only
// implementations are *Atom, *Ident, *Node and Missing.
type Tree interface {
	Kind() Kind       // label of the tree; leaves have reserved kinds
	Info() SourceInfo // source position
	Args() []Tree     // children of a node; nil for leaves. Do not modify.
	String() string   // surface notation
	isTree()
}

// --- Atoms -----------------------------------------------------------------

// Atom is a leaf holding literal text.
type Atom struct {
	info SourceInfo
	Text string
}

// NewAtom creates an atom without source information.
func NewAtom(text string) *Atom {
	return &Atom{Text: text}
}

// Kind is AtomKind for every atom.
func (a *Atom) Kind() Kind { return AtomKind }

// Info returns the source information for a.
func (a *Atom) Info() SourceInfo { return a.info }

// Args returns nil.
func (a *Atom) Args() []Tree { return nil }

func (a *Atom) isTree() {}

// WithInfo returns a copy of a, located at info.
func (a *Atom) WithInfo(info SourceInfo) *Atom {
	c := *a
	c.info = info
	return &c
}

// --- Identifiers -----------------------------------------------------------

// Ident is a leaf holding an identifier. Raw is the text as written, Name is
// the (possibly hygienic) name and Candidates are global names the
// identifier has been pre-resolved to.
type Ident struct {
	info       SourceInfo
	Raw        string
	Name       string
	Candidates []string
}

// NewIdent creates an identifier with name equal to its raw text.
func NewIdent(raw string) *Ident {
	return &Ident{Raw: raw, Name: raw}
}

// Kind is IdentKind for every identifier.
func (id *Ident) Kind() Kind { return IdentKind }

// Info returns the source information for id.
func (id *Ident) Info() SourceInfo { return id.info }

// Args returns nil.
func (id *Ident) Args() []Tree { return nil }

func (id *Ident) isTree() {}

// WithInfo returns a copy of id, located at info.
func (id *Ident) WithInfo(info SourceInfo) *Ident {
	c := *id
	c.info = info
	return &c
}

// WithName returns a copy of id with name and candidates replaced.
func (id *Ident) WithName(name string, candidates []string) *Ident {
	c := *id
	c.Name = name
	c.Candidates = candidates
	return &c
}

// --- Nodes -----------------------------------------------------------------

// Node is an internal tree node.
type Node struct {
	info SourceInfo
	kind Kind
	args []Tree
}

// NewNode creates a node of kind k. The children are copied.
func NewNode(k Kind, args ...Tree) *Node {
	n := &Node{kind: k}
	if len(args) > 0 {
		n.args = make([]Tree, len(args))
		copy(n.args, args)
	}
	return n
}

// List creates a sequence wrapper node.
func List(args ...Tree) *Node {
	return NewNode(ListKind, args...)
}

// Kind returns the label of n.
func (n *Node) Kind() Kind { return n.kind }

// Info returns the source information for n.
func (n *Node) Info() SourceInfo { return n.info }

// Args returns the children of n. Clients must not modify the slice.
func (n *Node) Args() []Tree { return n.args }

func (n *Node) isTree() {}

// Len is the number of children of n.
func (n *Node) Len() int { return len(n.args) }

// Arg returns child i, or Missing if i is out of range.
func (n *Node) Arg(i int) Tree {
	if i < 0 || i >= len(n.args) {
		return Missing{}
	}
	return n.args[i]
}

// WithInfo returns a copy of n, located at info.
func (n *Node) WithInfo(info SourceInfo) *Node {
	c := *n
	c.info = info
	return &c
}

// SetArg returns a copy of n with child i replaced by t.
func (n *Node) SetArg(i int, t Tree) *Node {
	c := NewNode(n.kind, n.args...)
	c.info = n.info
	c.args[i] = t
	return c
}

// WithArgs returns a copy of n with all of its children replaced.
func (n *Node) WithArgs(args ...Tree) *Node {
	c := NewNode(n.kind, args...)
	c.info = n.info
	return c
}

// --- Missing ---------------------------------------------------------------

// Missing is the sentinel for a parse error. It never is the target of a
// live pattern.
type Missing struct{}

// Kind is MissingKind.
func (Missing) Kind() Kind { return MissingKind }

// Info returns an empty source info.
func (Missing) Info() SourceInfo { return SourceInfo{} }

// Args returns nil.
func (Missing) Args() []Tree { return nil }

func (Missing) String() string { return "<missing>" }

func (Missing) isTree() {}

// ---------------------------------------------------------------------------

// Arg returns child i of t, or Missing if t has no such child.
func Arg(t Tree, i int) Tree {
	args := t.Args()
	if i < 0 || i >= len(args) {
		return Missing{}
	}
	return args[i]
}

// IsOfKind is a predicate testing t's kind against k.
func IsOfKind(t Tree, k Kind) bool {
	return t != nil && t.Kind() == k
}

// IsList is true for sequence wrapper nodes.
func IsList(t Tree) bool {
	return IsOfKind(t, ListKind)
}

// AsIdent returns t as an identifier, if it is one.
func AsIdent(t Tree) (*Ident, bool) {
	id, ok := t.(*Ident)
	return id, ok
}

// AsAtom returns t as an atom, if it is one.
func AsAtom(t Tree) (*Atom, bool) {
	a, ok := t.(*Atom)
	return a, ok
}

// AtomText returns the text of t if t is an atom, and "" otherwise.
func AtomText(t Tree) string {
	if a, ok := t.(*Atom); ok {
		return a.Text
	}
	return ""
}

// Located sets the source info of a freshly read tree. Trees other than
// atoms, identifiers and nodes are returned unchanged.
func Located(t Tree, info SourceInfo) Tree {
	switch x := t.(type) {
	case *Atom:
		return x.WithInfo(info)
	case *Ident:
		return x.WithInfo(info)
	case *Node:
		return x.WithInfo(info)
	}
	return t
}
