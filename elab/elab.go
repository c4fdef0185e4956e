/*
Package elab elaborates code trees containing syntax matches and
quotations into plain generated code.

Two surface forms are recognized:

    (match discr (alt pattern rhs) …)   compiled by package match
    `template                          expanded by package quote

Elaboration is recursive: the result of compiling a match or expanding a
quotation is elaborated again, so result expressions and hole expressions
may contain further matches and quotations. Patterns are never elaborated.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package elab

import (
	"github.com/npillmayer/quasi/diag"
	"github.com/npillmayer/quasi/match"
	"github.com/npillmayer/quasi/quote"
	"github.com/npillmayer/quasi/runtime"
	"github.com/npillmayer/quasi/tree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quasi.elab'.
func tracer() tracing.Trace {
	return tracing.Select("quasi.elab")
}

// Surface forms consumed by the elaborator.
const (
	MatchForm tree.Kind = "match"
	AltForm   tree.Kind = "alt"
)

// Elaborate rewrites every match form and quotation in t.
func Elaborate(ctx *runtime.Context, t tree.Tree) (tree.Tree, error) {
	n, ok := t.(*tree.Node)
	if !ok {
		return t, nil
	}
	switch {
	case n.Kind() == MatchForm:
		c, err := elabMatch(ctx, n)
		if err != nil {
			return nil, err
		}
		return Elaborate(ctx, c)
	case tree.IsQuote(n):
		c, err := quote.ExpandQuotation(ctx, n, 1)
		if err != nil {
			return nil, err
		}
		return Elaborate(ctx, c)
	}
	var args []tree.Tree
	for i, ch := range n.Args() {
		e, err := Elaborate(ctx, ch)
		if err != nil {
			return nil, err
		}
		if e != ch && args == nil {
			args = make([]tree.Tree, n.Len())
			copy(args, n.Args()[:i])
		}
		if args != nil {
			args[i] = e
		}
	}
	if args == nil {
		return n, nil
	}
	return n.WithArgs(args...), nil
}

// elabMatch compiles (match discr (alt p… rhs) …). The discriminant is
// bound once by the generated code, so it may be any expression.
func elabMatch(ctx *runtime.Context, n *tree.Node) (tree.Tree, error) {
	if n.Len() < 2 {
		return nil, ctx.Errorf(n, diag.MalformedForm,
			"match needs a discriminant and at least one alternative")
	}
	alts := make([]match.Alt, 0, n.Len()-1)
	for _, a := range n.Args()[1:] {
		if !tree.IsOfKind(a, AltForm) || len(a.Args()) < 2 {
			return nil, ctx.Errorf(a, diag.MalformedForm,
				"expected (alt pattern result), have %s", a)
		}
		args := a.Args()
		alts = append(alts, match.Alt{
			Patterns: args[:len(args)-1],
			RHS:      args[len(args)-1],
		})
	}
	tracer().Debugf("elaborate match with %d alternatives", len(alts))
	return match.CompilePatternMatch(ctx, n.Arg(0), alts, match.At(n))
}
