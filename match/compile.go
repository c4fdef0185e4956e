package match

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

// Alt is an alternative of a match: a list of patterns, one per
// discriminant, and a result expression.
type Alt struct {
	Patterns []tree.Tree
	RHS      tree.Tree
}

// NewAlt creates an alternative with a single pattern.
func NewAlt(pattern, rhs tree.Tree) Alt {
	return Alt{Patterns: []tree.Tree{pattern}, RHS: rhs}
}

// compiler holds the settings of a single call to CompilePatternMatch.
type compiler struct {
	ctx        *runtime.Context
	at         tree.Tree // match being compiled, for diagnostics
	exhaustive bool
	fallback   tree.Tree
	bound      map[*tree.Ident]bool // discriminant variables already in scope
}

// Option configures the match compiler.
type Option func(*compiler)

// Exhaustive tells the compiler that the alternatives cover every
// discriminant. No fallback alternative will be appended; if the
// alternatives run out nevertheless, compiling fails with a
// non-exhaustive-match diagnostic.
func Exhaustive() Option {
	return func(c *compiler) {
		c.exhaustive = true
	}
}

// Fallback sets the result expression of the fallback alternative, which
// defaults to (noMatch).
func Fallback(rhs tree.Tree) Option {
	return func(c *compiler) {
		c.fallback = rhs
	}
}

// At sets the tree diagnostics are located at, if no pattern is more
// specific. Usually this is the match form.
func At(t tree.Tree) Option {
	return func(c *compiler) {
		c.at = t
	}
}

// CompilePatternMatch compiles a match of discr against alternatives into
// generated code. Every alternative must have exactly one pattern, and
// patterns must not contain ambiguous parses.
func CompilePatternMatch(ctx *runtime.Context, discr tree.Tree, alts []Alt, opts ...Option) (tree.Tree, error) {
	c := &compiler{ctx: ctx, at: discr, fallback: code.NoMatch()}
	for _, opt := range opts {
		opt(c)
	}
	for _, alt := range alts {
		if len(alt.Patterns) != 1 {
			return nil, ctx.Errorf(c.at, diag.UnsupportedPattern,
				"expected exactly one pattern per alternative, have %d", len(alt.Patterns))
		}
		if tree.IsAmbiguous(alt.Patterns[0]) {
			return nil, ctx.Errorf(alt.Patterns[0], diag.AmbiguousPattern,
				"pattern is ambiguous")
		}
	}
	if !c.exhaustive {
		alts = append(alts[:len(alts):len(alts)], NewAlt(tree.NewWildcard(), c.fallback))
	}
	tracer().Infof("compile match on %s with %d alternatives", discr, len(alts))
	alts, shared := c.shareResults(alts)
	result, err := c.compile([]tree.Tree{discr}, alts)
	if err != nil {
		return nil, err
	}
	for i := len(shared) - 1; i >= 0; i-- {
		result = code.Let(shared[i].name, shared[i].fun, result)
	}
	ctx.Emit("match", result)
	return result, nil
}

// compile is the decision tree compiler. Every alternative has one pattern
// per discriminant.
func (c *compiler) compile(discrs []tree.Tree, alts []Alt) (tree.Tree, error) {
	if len(alts) == 0 {
		return nil, c.ctx.Errorf(c.at, diag.NonExhaustiveMatch, "non-exhaustive match")
	}
	if len(discrs) == 0 {
		return alts[0].RHS, nil // first match wins
	}
	infos := make([]*HeadInfo, len(alts))
	for i, alt := range alts {
		if len(alt.Patterns) != len(discrs) {
			return nil, c.ctx.Errorf(c.at, diag.NonExhaustiveMatch,
				"alternative has %d patterns for %d discriminants", len(alt.Patterns), len(discrs))
		}
		info, err := Classify(c.ctx, alt.Patterns[0])
		if err != nil {
			return nil, err
		}
		infos[i] = info
	}
	p := pivot(infos)
	tag := c.ctx.FreshScope()
	d, isBound := c.discrVar(discrs[0], tag)
	bind := func(body tree.Tree) tree.Tree {
		if isBound {
			return body
		}
		return code.Let(d, discrs[0], body)
	}
	tracer().Debugf("pivot %s for %d alternatives", p, len(alts))
	//
	var yes, no []Alt
	for i, alt := range alts {
		if infos[i].Generalizes(p) {
			yes = append(yes, explode(alt, infos[i], p, d))
		}
		if !p.Generalizes(infos[i]) {
			no = append(no, alt)
		}
	}
	yesDiscrs := make([]tree.Tree, 0, len(discrs)+p.Arity())
	for i := 0; i < p.Arity(); i++ {
		yesDiscrs = append(yesDiscrs, code.GetChild(d, i))
	}
	yesDiscrs = append(yesDiscrs, discrs[1:]...)
	yesCode, err := c.compile(yesDiscrs, yes)
	if err != nil {
		return nil, err
	}
	if p.Kind == "" && !p.IsScope() { // no test, always matches
		return bind(yesCode), nil
	}
	noDiscrs := append([]tree.Tree{d}, discrs[1:]...)
	noCode, err := c.compile(noDiscrs, no)
	if err != nil {
		return nil, err
	}
	if p.IsScope() {
		scopeCode, err := c.compileScope(p.Scope, d, tag, yesCode, noCode)
		if err != nil {
			return nil, err
		}
		return bind(scopeCode), nil
	}
	cond := code.IsOfKind(d, p.Kind)
	if p.HasArgs {
		cond = code.And(cond, code.Eq(code.ChildCount(d), code.Num(p.Arity())))
	}
	return bind(code.If(cond, yesCode, noCode)), nil
}

// discrVar returns the variable holding a discriminant. A discriminant
// variable bound by an enclosing step is reused, other discriminant
// expressions get a fresh variable and have to be bound.
func (c *compiler) discrVar(discr tree.Tree, tag runtime.ScopeTag) (*tree.Ident, bool) {
	if id, ok := discr.(*tree.Ident); ok && c.bound[id] {
		return id, true
	}
	d := c.ctx.Hygienic("discr", tag)
	if c.bound == nil {
		c.bound = make(map[*tree.Ident]bool)
	}
	c.bound[d] = true
	return d, false
}

// sharedResult is a result expression bound to a function of the
// alternative's pattern variables.
type sharedResult struct {
	name *tree.Ident
	fun  tree.Tree
}

// shareResults moves the result expression of every alternative into a
// function, bound once in front of the decision tree. Alternatives reached
// on more than one path of the decision tree then repeat just a call:
//
//    (let rhs (fun args (let x (proj args 0) … RHS))
//      … (app rhs (tuple x …)))
//
// Result expressions which are no more than such a call stay in place.
func (c *compiler) shareResults(alts []Alt) ([]Alt, []sharedResult) {
	var shared []sharedResult
	out := make([]Alt, len(alts))
	for i, alt := range alts {
		out[i] = alt
		if isSimpleResult(alt.RHS) {
			continue
		}
		vars, bad := resultVars(alt.Patterns[0])
		if bad != nil {
			continue // the decision tree compiler will report it
		}
		tag := c.ctx.FreshScope()
		f := c.ctx.Hygienic("rhs", tag)
		args := c.ctx.Hygienic("args", tag)
		body := alt.RHS
		values := make([]tree.Tree, len(vars))
		for j := len(vars) - 1; j >= 0; j-- {
			body = code.Let(vars[j], code.Proj(args, j), body)
			values[j] = vars[j]
		}
		shared = append(shared, sharedResult{name: f, fun: code.Fun(args, body)})
		out[i].RHS = code.App(f, code.Tuple(values...))
	}
	return out, shared
}

// resultVars are the variables a result expression may refer to: the
// variables bound by the alternative's pattern.
func resultVars(pattern tree.Tree) ([]*tree.Ident, tree.Tree) {
	if id, ok := pattern.(*tree.Ident); ok {
		return []*tree.Ident{id}, nil
	}
	return patternVars(pattern)
}

// isSimpleResult is true for leaves, forms without arguments and calls
// with variables or literals as arguments.
func isSimpleResult(rhs tree.Tree) bool {
	n, ok := rhs.(*tree.Node)
	if !ok || n.Len() == 0 {
		return true
	}
	if n.Kind() != code.AppForm || n.Len() != 2 || !isLeaf(n.Arg(0)) {
		return false
	}
	arg := n.Arg(1)
	if isLeaf(arg) {
		return true
	}
	if !tree.IsOfKind(arg, code.TupleForm) {
		return false
	}
	for _, a := range arg.(*tree.Node).Args() {
		if !isLeaf(a) {
			return false
		}
	}
	return true
}

func isLeaf(t tree.Tree) bool {
	_, ok := t.(*tree.Node)
	return !ok
}

// explode replaces the head pattern of an alternative matched by the pivot
// with patterns for the pivot's children, and applies the bind action.
func explode(alt Alt, info, p *HeadInfo, d *tree.Ident) Alt {
	var head []tree.Tree
	switch {
	case p.IsScope():
	case info.HasArgs:
		head = info.ArgPats
	case p.HasArgs:
		head = make([]tree.Tree, p.Arity())
		for i := range head {
			head[i] = tree.NewWildcard()
		}
	}
	pats := make([]tree.Tree, 0, len(head)+len(alt.Patterns)-1)
	pats = append(pats, head...)
	pats = append(pats, alt.Patterns[1:]...)
	return Alt{Patterns: pats, RHS: info.OnMatch(d, alt.RHS)}
}
