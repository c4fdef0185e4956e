package quote

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/quasi/code"
	"github.com/npillmayer/quasi/diag"
	"github.com/npillmayer/quasi/runtime"
	"github.com/npillmayer/quasi/tree"
)

// expander holds the state of a single template expansion. mod and scp are
// bound once, around the whole construction code, and never rebound.
type expander struct {
	ctx *runtime.Context
	tag runtime.ScopeTag
	mod *tree.Ident
	scp *tree.Ident
}

// ExpandTemplate creates code which, when evaluated, constructs template
// with its holes filled in.
func ExpandTemplate(ctx *runtime.Context, template tree.Tree) (tree.Tree, error) {
	tag := ctx.FreshScope()
	x := &expander{
		ctx: ctx,
		tag: tag,
		mod: ctx.Hygienic("mod", tag),
		scp: ctx.Hygienic("scp", tag),
	}
	tracer().Infof("expand template %s", template)
	body, err := x.expand(template)
	if err != nil {
		return nil, err
	}
	result := code.Let(x.mod, code.MainModule(), code.Let(x.scp, code.CurrMacroScope(), body))
	ctx.Emit("quote", result)
	return result, nil
}

// ExpandQuotation expands the child of quotation t at index idx, usually 1.
func ExpandQuotation(ctx *runtime.Context, t tree.Tree, idx int) (tree.Tree, error) {
	if !tree.IsQuote(t) {
		return nil, ctx.Errorf(t, diag.MalformedForm, "expected quotation, have %s", t.Kind())
	}
	if idx < 0 || idx >= len(t.Args()) {
		return nil, ctx.Errorf(t, diag.MalformedForm, "quotation has no child %d", idx)
	}
	return ExpandTemplate(ctx, t.Args()[idx])
}

func (x *expander) expand(t tree.Tree) (tree.Tree, error) {
	switch a := t.(type) {
	case *tree.Atom:
		return code.MkAtom(a.Text), nil
	case *tree.Ident:
		return x.ident(a), nil
	case *tree.Node:
		return x.expandNode(a)
	}
	return code.MkMissing(), nil
}

func (x *expander) expandNode(n *tree.Node) (tree.Tree, error) {
	switch {
	case tree.IsEscaped(n):
		return x.literal(tree.Unescape(n)), nil
	case tree.IsActiveSplice(n):
		return nil, x.ctx.Errorf(n, diag.UnexpectedSplice, "splice is only allowed as an element of a list")
	case tree.IsActiveHole(n):
		return tree.HoleTerm(n), nil
	case tree.IsActiveScope(n):
		return x.expandScope(n)
	case tree.IsList(n):
		return x.expandList(n)
	}
	children, err := x.expandSeq(n.Args())
	if err != nil {
		return nil, err
	}
	return code.MkNode(n.Kind(), code.Seq(children...)), nil
}

// expandList concatenates runs of plain elements with the values of
// splice holes.
func (x *expander) expandList(n *tree.Node) (tree.Tree, error) {
	var parts, run []tree.Tree
	spliced := false
	for _, ch := range n.Args() {
		if tree.IsActiveScope(ch) {
			return nil, x.ctx.Errorf(ch, diag.UnexpectedScope, "hole scope must not be an element of a list")
		}
		if tree.IsActiveSplice(ch) {
			if len(run) > 0 {
				parts = append(parts, code.Seq(run...))
				run = nil
			}
			parts = append(parts, tree.HoleTerm(ch))
			spliced = true
			continue
		}
		c, err := x.expand(ch)
		if err != nil {
			return nil, err
		}
		run = append(run, c)
	}
	if !spliced {
		return code.MkNode(tree.ListKind, code.Seq(run...)), nil
	}
	if len(run) > 0 {
		parts = append(parts, code.Seq(run...))
	}
	return code.MkNode(tree.ListKind, code.Concat(parts...)), nil
}

func (x *expander) expandSeq(ts []tree.Tree) ([]tree.Tree, error) {
	r := make([]tree.Tree, len(ts))
	for i, t := range ts {
		c, err := x.expand(t)
		if err != nil {
			return nil, err
		}
		r[i] = c
	}
	return r, nil
}

// ident pre-resolves an identifier of the template text and tags it with the
// run-time macro scope.
func (x *expander) ident(id *tree.Ident) tree.Tree {
	_, all := x.ctx.ResolveName(id.Raw)
	candidates := make([]tree.Tree, len(all))
	for i, c := range all {
		candidates[i] = code.Str(c)
	}
	name := code.AddMacroScope(x.mod, id.Name, x.scp)
	return code.MkIdent(id.Raw, name, code.Seq(candidates...))
}

// literal reconstructs t without substituting holes.
func (x *expander) literal(t tree.Tree) tree.Tree {
	switch a := t.(type) {
	case *tree.Atom:
		return code.MkAtom(a.Text)
	case *tree.Ident:
		return x.ident(a)
	case *tree.Node:
		children := make([]tree.Tree, a.Len())
		for i, ch := range a.Args() {
			children[i] = x.literal(ch)
		}
		return code.MkNode(a.Kind(), code.Seq(children...))
	}
	return code.MkMissing()
}
