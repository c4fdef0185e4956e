package quote

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/quasi/code"
	"github.com/npillmayer/quasi/diag"
	"github.com/npillmayer/quasi/tree"
)

// maxScopeVars is the maximum number of variables a hole scope may iterate.
const maxScopeVars = 2

// binding is a floated-out hole expression.
type binding struct {
	name *tree.Ident
	expr tree.Tree
}

// floatOut replaces the inner expressions of non-identifier holes in t by
// fresh variables. It returns the rewritten tree together with the
// bindings for the variables, in order of occurrence. Escaped trees and the
// inner terms of holes are left alone.
func (x *expander) floatOut(t tree.Tree, bs []binding) (tree.Tree, []binding) {
	n, ok := t.(*tree.Node)
	if !ok || tree.IsEscaped(n) {
		return t, bs
	}
	if tree.IsHole(n) {
		if _, isIdent := tree.AsIdent(tree.HoleTerm(n)); isIdent {
			return n, bs
		}
		v := x.ctx.Hygienic(fmt.Sprintf("v%d", len(bs)), x.tag)
		bs = append(bs, binding{name: v, expr: tree.HoleTerm(n)})
		return n.SetArg(1, v), bs
	}
	var args []tree.Tree
	for i, ch := range n.Args() {
		var r tree.Tree
		r, bs = x.floatOut(ch, bs)
		if r != ch && args == nil {
			args = make([]tree.Tree, n.Len())
			copy(args, n.Args()[:i])
		}
		if args != nil {
			args[i] = r
		}
	}
	if args == nil {
		return n, bs
	}
	return n.WithArgs(args...), bs
}

// scopeVars returns the identifiers of the active holes in the contents of
// a scope, in order of first occurrence.
func (x *expander) scopeVars(scope tree.Tree) ([]*tree.Ident, error) {
	seen := linkedhashset.New()
	var vars []*tree.Ident
	for _, h := range tree.ActiveHoles(tree.List(tree.ScopeContents(scope)...)) {
		id, ok := tree.AsIdent(tree.HoleTerm(h))
		if !ok || seen.Contains(id.Name) {
			continue
		}
		seen.Add(id.Name)
		vars = append(vars, id)
	}
	if seen.Empty() || seen.Size() > maxScopeVars {
		return nil, x.ctx.Errorf(scope, diag.TooManyScopeBindings,
			"hole scope must iterate over 1 or %d variables, has %d", maxScopeVars, seen.Size())
	}
	return vars, nil
}

// expandScope constructs a list node from a hole scope. Non-identifier hole
// expressions are evaluated once, before the construction.
//
//    many     (mkNode "list" (map (fun x BODY) x))
//    sepBy    (mkNode "list" (intersperse (mkAtom sep) (map (fun x BODY) x)))
//    optional (if (isSome x) (let x (getSome x) BODY) (mkNode "list" (seq)))
//
// Two variables are zipped for repetitions; an optional scope with two
// variables is present only if both are.
func (x *expander) expandScope(scope *tree.Node) (tree.Tree, error) {
	vars, err := x.scopeVars(scope)
	if err != nil {
		return nil, err
	}
	contents, bindings := x.floatOut(tree.List(tree.ScopeContents(scope)...), nil)
	var body tree.Tree
	switch g := tree.ScopeGroup(scope); g {
	case tree.Optional:
		body, err = x.optional(contents, vars)
	case tree.Many, tree.SepBy:
		body, err = x.repeated(contents, vars)
		if err == nil && g == tree.SepBy {
			body = code.Intersperse(code.MkAtom(tree.ScopeSeparator(scope)), body)
		}
		if err == nil {
			body = code.MkNode(tree.ListKind, body)
		}
	default:
		return nil, x.ctx.Errorf(scope, diag.UnsupportedPattern, "unknown hole scope group %q", g)
	}
	if err != nil {
		return nil, err
	}
	tracer().Debugf("scope %s: %d variables, %d floated expressions", scope, len(vars), len(bindings))
	for i := len(bindings) - 1; i >= 0; i-- {
		body = code.Let(bindings[i].name, bindings[i].expr, body)
	}
	return body, nil
}

// repeated creates a sequence with one construction of contents per value.
// A single tree is repeated as is, several trees are grouped into a list.
func (x *expander) repeated(contents tree.Tree, vars []*tree.Ident) (tree.Tree, error) {
	var elem tree.Tree = contents
	if len(contents.Args()) == 1 {
		elem = contents.Args()[0]
	}
	body, err := x.expand(elem)
	if err != nil {
		return nil, err
	}
	if len(vars) == 1 {
		return code.Map(code.Fun(vars[0], body), vars[0]), nil
	}
	t := x.ctx.Hygienic("t", x.tag)
	body = code.Let(vars[0], code.Proj(t, 0), code.Let(vars[1], code.Proj(t, 1), body))
	return code.Map(code.Fun(t, body), code.Zip(vars[0], vars[1])), nil
}

func (x *expander) optional(contents tree.Tree, vars []*tree.Ident) (tree.Tree, error) {
	body, err := x.expand(contents)
	if err != nil {
		return nil, err
	}
	cond := code.IsSome(vars[0])
	for i := len(vars) - 1; i >= 0; i-- {
		body = code.Let(vars[i], code.GetSome(vars[i]), body)
	}
	if len(vars) == 2 {
		cond = code.And(cond, code.IsSome(vars[1]))
	}
	return code.If(cond, body, code.MkNode(tree.ListKind, code.Seq())), nil
}
