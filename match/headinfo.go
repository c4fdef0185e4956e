package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/quasi/code"
	"github.com/npillmayer/quasi/diag"
	"github.com/npillmayer/quasi/runtime"
	"github.com/npillmayer/quasi/tree"
)

// BindAction wraps a result expression into bindings of pattern variables.
// discr names the discriminant the pattern is matched against.
type BindAction func(discr *tree.Ident, rhs tree.Tree) tree.Tree

// HeadInfo classifies the head pattern of an alternative: what a single
// matching step on the pattern requires.
//
// A basic classification tests the kind of the discriminant (if Kind is
// not empty) and its number of children (if HasArgs is set). A scope
// classification delegates to the scope submatcher.
type HeadInfo struct {
	Kind    tree.Kind   // kind to test for; empty matches anything
	HasArgs bool        // arity is tested
	ArgPats []tree.Tree // sub-patterns for the children, if HasArgs
	Scope   tree.Tree   // hole scope, for scope classifications
	Bind    BindAction  // nil for no bindings
}

// Arity is the number of children tested for, or -1.
func (h *HeadInfo) Arity() int {
	if !h.HasArgs {
		return -1
	}
	return len(h.ArgPats)
}

// IsScope is true for scope classifications.
func (h *HeadInfo) IsScope() bool {
	return h.Scope != nil
}

// OnMatch applies the bind action to a result expression.
func (h *HeadInfo) OnMatch(discr *tree.Ident, rhs tree.Tree) tree.Tree {
	if h.Bind == nil {
		return rhs
	}
	return h.Bind(discr, rhs)
}

func (h *HeadInfo) String() string {
	switch {
	case h.Scope != nil:
		return fmt.Sprintf("scope %s", h.Scope)
	case h.Kind == "":
		return "any"
	case h.HasArgs:
		return fmt.Sprintf("%s/%d", h.Kind, len(h.ArgPats))
	}
	return string(h.Kind)
}

// bindTo creates a bind action binding variable x to the discriminant.
func bindTo(x *tree.Ident) BindAction {
	return func(discr *tree.Ident, rhs tree.Tree) tree.Tree {
		return code.Let(x, discr, rhs)
	}
}

// bindArgsTo creates a bind action binding variable x to all children of
// the discriminant.
func bindArgsTo(x *tree.Ident) BindAction {
	return func(discr *tree.Ident, rhs tree.Tree) tree.Tree {
		return code.Let(x, code.GetArgs(discr), rhs)
	}
}

// Classify classifies a pattern. Rules are checked in order:
//
//    x          binds the discriminant, matches anything
//    _          matches anything
//    `"atom"    matches anything; atoms are implied by the enclosing kind
//    `$x        binds the discriminant; `$x:k tests for kind k; `$_ ignores it
//    `[$xs*]    binds all children of the discriminant
//    `$[…]*     scope, see the scope submatcher
//    `(k p…)    tests kind k and arity, sub-patterns are quotations of the children
//
func Classify(ctx *runtime.Context, pattern tree.Tree) (*HeadInfo, error) {
	switch p := pattern.(type) {
	case *tree.Ident:
		return &HeadInfo{Bind: bindTo(p)}, nil
	case *tree.Node:
		if p.Kind() == tree.WildcardKind {
			return &HeadInfo{}, nil
		}
		if tree.IsQuote(p) {
			return classifyQuoted(ctx, tree.QuoteBody(p))
		}
	}
	return nil, ctx.Errorf(pattern, diag.UnsupportedPattern, "unsupported pattern kind %s", pattern.Kind())
}

func classifyQuoted(ctx *runtime.Context, body tree.Tree) (*HeadInfo, error) {
	switch b := body.(type) {
	case *tree.Atom:
		return &HeadInfo{}, nil
	case *tree.Ident:
		return &HeadInfo{Kind: tree.IdentKind, HasArgs: true, ArgPats: []tree.Tree{}}, nil
	case *tree.Node:
		return classifyQuotedNode(ctx, b)
	}
	return nil, ctx.Errorf(body, diag.UnsupportedPattern, "cannot match against %s", body.Kind())
}

func classifyQuotedNode(ctx *runtime.Context, n *tree.Node) (*HeadInfo, error) {
	switch {
	case tree.IsActiveSplice(n):
		return nil, ctx.Errorf(n, diag.UnexpectedSplice, "splice is only allowed as the sole element of a list")
	case tree.IsActiveHole(n):
		return classifyHole(ctx, n)
	case tree.IsActiveScope(n):
		return &HeadInfo{Scope: n}, nil
	case tree.IsList(n) && n.Len() == 1 && tree.IsActiveSplice(n.Arg(0)):
		id, ok := tree.AsIdent(tree.HoleTerm(n.Arg(0)))
		if !ok {
			return nil, ctx.Errorf(n.Arg(0), diag.InvalidHoleBinding, "pattern hole must be a plain name")
		}
		return &HeadInfo{Bind: bindArgsTo(id)}, nil
	}
	if tree.IsList(n) {
		for _, ch := range n.Args() {
			if tree.IsActiveScope(ch) {
				return nil, ctx.Errorf(ch, diag.UnexpectedScope, "hole scope must not be an element of a list")
			}
		}
	}
	// escaped holes and scopes match literally, one level less escaped
	m := tree.Unescape(n).(*tree.Node)
	args := make([]tree.Tree, m.Len())
	for i, ch := range m.Args() {
		args[i] = tree.NewQuote(ch)
	}
	return &HeadInfo{Kind: m.Kind(), HasArgs: true, ArgPats: args}, nil
}

func classifyHole(ctx *runtime.Context, hole *tree.Node) (*HeadInfo, error) {
	term := tree.HoleTerm(hole)
	if tree.IsOfKind(term, tree.WildcardKind) {
		return &HeadInfo{}, nil
	}
	id, ok := tree.AsIdent(term)
	if !ok {
		return nil, ctx.Errorf(hole, diag.InvalidHoleBinding, "pattern hole must be a plain name")
	}
	k, _ := tree.HoleAnnotation(hole)
	return &HeadInfo{Kind: k, Bind: bindTo(id)}, nil
}
