package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/quasi/code"
	"github.com/npillmayer/quasi/diag"
	"github.com/npillmayer/quasi/runtime"
	"github.com/npillmayer/quasi/tree"
)

// maxScopeVars is the maximum number of variables a hole scope may bind.
const maxScopeVars = 2

// PatternVars returns the variables bound by the holes of a pattern, in
// order of first occurrence. Holes must be plain names.
func PatternVars(ctx *runtime.Context, pattern tree.Tree) ([]*tree.Ident, error) {
	vars, bad := patternVars(pattern)
	if bad != nil {
		return nil, ctx.Errorf(bad, diag.ComplexAntiquotation,
			"hole in pattern must be a plain name to serve as a pattern variable")
	}
	return vars, nil
}

// patternVars collects the pattern variables of holes. It stops at the
// first hole which is not a plain name and returns it.
func patternVars(pattern tree.Tree) ([]*tree.Ident, tree.Tree) {
	names := arraylist.New()
	var vars []*tree.Ident
	for _, h := range tree.ActiveHoles(pattern) {
		term := tree.HoleTerm(h)
		if tree.IsOfKind(term, tree.WildcardKind) {
			continue
		}
		id, ok := tree.AsIdent(term)
		if !ok {
			return nil, h
		}
		if !names.Contains(id.Name) {
			names.Add(id.Name)
			vars = append(vars, id)
		}
	}
	return vars, nil
}

// scopeVars returns the one or two variables of a hole scope.
func scopeVars(ctx *runtime.Context, scope tree.Tree) ([]*tree.Ident, error) {
	vars, err := PatternVars(ctx, tree.List(tree.ScopeContents(scope)...))
	if err != nil {
		return nil, err
	}
	if len(vars) == 0 {
		return nil, ctx.Errorf(scope, diag.TooManyScopeBindings,
			"hole scope must bind at least one variable")
	}
	if len(vars) > maxScopeVars {
		return nil, ctx.Errorf(scope, diag.TooManyScopeBindings,
			"too many bindings in repetition scope: %d, at most %d supported", len(vars), maxScopeVars)
	}
	return vars, nil
}

// compileScope emits the submatcher for a hole scope. The discriminant is
// bound to d. The generated code first computes an option of a tuple with
// the values for the scope's variables, then branches to yes or no:
//
//    (let r <submatch>
//      (if (isSome r)
//        (let x (proj (getSome r) 0) … yes)
//        no))
//
func (c *compiler) compileScope(scope tree.Tree, d *tree.Ident, tag runtime.ScopeTag,
	yes, no tree.Tree) (tree.Tree, error) {
	//
	vars, err := scopeVars(c.ctx, scope)
	if err != nil {
		return nil, err
	}
	var sub tree.Tree
	switch tree.ScopeGroup(scope) {
	case tree.Optional:
		sub, err = c.optionalMatch(scope, d, vars)
	case tree.Many:
		sub, err = c.repeatedMatch(scope, d, tag, vars, code.GetArgs(d))
	case tree.SepBy:
		sub, err = c.repeatedMatch(scope, d, tag, vars, code.GetSepArgs(d))
	default:
		return nil, c.ctx.Errorf(scope, diag.UnsupportedPattern, "unknown hole scope group %q",
			tree.ScopeGroup(scope))
	}
	if err != nil {
		return nil, err
	}
	r := c.ctx.Hygienic("r", tag)
	body := yes
	for i := len(vars) - 1; i >= 0; i-- {
		body = code.Let(vars[i], code.Proj(code.GetSome(r), i), body)
	}
	return code.Let(r, sub, code.If(code.IsSome(r), body, no)), nil
}

// nestedMatch matches discriminant expression discr against pattern and
// results in (some (tuple v…)) or (none), where v… are built by mkResult
// from the variables.
func (c *compiler) nestedMatch(discr tree.Tree, pattern tree.Tree, vars []*tree.Ident,
	mkResult func(*tree.Ident) tree.Tree) (tree.Tree, error) {
	//
	values := make([]tree.Tree, len(vars))
	for i, v := range vars {
		values[i] = mkResult(v)
	}
	nested := &compiler{ctx: c.ctx, at: pattern, exhaustive: true}
	alts := []Alt{
		NewAlt(pattern, code.Some(code.Tuple(values...))),
		NewAlt(tree.NewWildcard(), code.None()),
	}
	tracer().Debugf("nested match against %s", pattern)
	return nested.compile([]tree.Tree{discr}, alts)
}

// optionalMatch: the empty list is the absent marker and binds every
// variable to none. Otherwise the children of the discriminant are matched
// against the contents of the scope, binding every variable to some value.
func (c *compiler) optionalMatch(scope tree.Tree, d *tree.Ident, vars []*tree.Ident) (tree.Tree, error) {
	pattern := tree.NewQuote(tree.List(tree.ScopeContents(scope)...))
	present, err := c.nestedMatch(d, pattern, vars, func(v *tree.Ident) tree.Tree {
		return code.Some(v)
	})
	if err != nil {
		return nil, err
	}
	nones := make([]tree.Tree, len(vars))
	for i := range nones {
		nones[i] = code.None()
	}
	absent := code.And(code.IsOfKind(d, tree.ListKind), code.Eq(code.ChildCount(d), code.Num(0)))
	return code.If(absent, code.Some(code.Tuple(nones...)), present), nil
}

// repeatedMatch matches every element of a list discriminant against the
// contents of the scope. If every element matches, the result holds one
// sequence of values per variable, in element order. A single failing
// element fails the whole match.
func (c *compiler) repeatedMatch(scope tree.Tree, d *tree.Ident, tag runtime.ScopeTag,
	vars []*tree.Ident, elements tree.Tree) (tree.Tree, error) {
	//
	contents := tree.ScopeContents(scope)
	var pattern tree.Tree
	if len(contents) == 1 {
		pattern = tree.NewQuote(contents[0])
	} else {
		pattern = tree.NewQuote(tree.List(contents...))
	}
	elem := c.ctx.Hygienic("elem", tag)
	one, err := c.nestedMatch(elem, pattern, vars, func(v *tree.Ident) tree.Tree {
		return v
	})
	if err != nil {
		return nil, err
	}
	rs := c.ctx.Hygienic("rs", tag)
	t := c.ctx.Hygienic("t", tag)
	columns := make([]tree.Tree, len(vars))
	for i := range vars {
		columns[i] = code.Map(code.Fun(t, code.Proj(code.GetSome(t), i)), rs)
	}
	all := code.Let(rs, code.Map(code.Fun(elem, one), elements),
		code.If(code.AllSome(rs), code.Some(code.Tuple(columns...)), code.None()))
	return code.If(code.IsOfKind(d, tree.ListKind), all, code.None()), nil
}
