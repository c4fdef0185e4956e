/*
Package runtime implements the services a syntax compiler consumes from its
surrounding elaborator: name resolution, fresh macro scopes, the identity of
the current module, error reporting and tracing. It also provides lexical
frames for the interpreter of generated code.

Symbol Table and Scope Tree

Global names are declared in namespaces. Namespaces form a scope tree, with
symbol tables attached to every scope.

Macro Scopes

Hygiene is implemented by tagging names with macro scopes. Fresh tags are
minted from a monotonically increasing counter, shared by all compilations
of a process unless a context is given its own counter.

Frames

Frames map variable names to values. They form a chain from the innermost
binding to the global frame.


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
package runtime

import (
	"fmt"

	"github.com/npillmayer/quasi/diag"
	"github.com/npillmayer/quasi/tree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quasi.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("quasi.runtime")
}

// Context is the compile context for syntax patterns and quotations. It is
// handed to every compiler call instead of relying on global state.
//
// A context must not be shared between goroutines while its name table is
// being modified. The scope counter is safe for concurrent use.
type Context struct {
	Module string      // name of the current module, constant per compilation unit
	Names  *NameTable  // read-only during compilation; may be nil
	Scopes *Counter    // source of fresh macro scopes
	Error  func(error) // user supplied handler for diagnostics, may be nil
}

// NewContext creates a compile context for a module. The context will use
// the process-wide macro scope counter.
func NewContext(module string, names *NameTable) *Context {
	return &Context{
		Module: module,
		Names:  names,
		Scopes: GlobalCounter,
	}
}

// CurrentModule returns the name of the module being compiled.
func (ctx *Context) CurrentModule() string {
	return ctx.Module
}

// FreshScope mints a fresh macro scope.
func (ctx *Context) FreshScope() ScopeTag {
	if ctx.Scopes == nil {
		ctx.Scopes = GlobalCounter
	}
	return ctx.Scopes.Next()
}

// ResolveName resolves an identifier against the visible global names.
// It returns the preferred candidate and all candidates, the latter sorted.
// Without a name table, nothing resolves.
func (ctx *Context) ResolveName(text string) (string, []string) {
	if ctx.Names == nil {
		return "", nil
	}
	return ctx.Names.Resolve(text)
}

// Hygienic creates an identifier for a compiler-introduced variable. The
// variable's name is tagged with macro scope tag, so it will not collide with
// user variables or with variables of other compilation steps.
func (ctx *Context) Hygienic(base string, tag ScopeTag) *tree.Ident {
	return tree.NewIdent(base).WithName(AddMacroScope(ctx.Module, base, tag), nil)
}

// Errorf creates a located diagnostic, traces it and hands it to the error
// handler, if one is set. The diagnostic is returned for the caller to
// propagate.
func (ctx *Context) Errorf(at tree.Tree, class diag.Class, format string, args ...interface{}) error {
	err := diag.Errorf(at, class, format, args...)
	tracer().P("class", string(class)).Errorf("%s", err.Error())
	if ctx.Error != nil {
		ctx.Error(err)
	}
	return err
}

// Emit writes a value to a diagnostic trace channel. It has no effect on
// compilation results.
func (ctx *Context) Emit(channel string, v interface{}) {
	tracer().P("channel", channel).Debugf("%s", render(v))
}

func render(v interface{}) string {
	switch x := v.(type) {
	case tree.Tree:
		return x.String()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}
