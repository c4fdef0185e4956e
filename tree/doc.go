/*
Package tree implements a generic labeled syntax tree, the common substrate
for syntax patterns, syntax templates and generated code.

A tree is one of four shapes:

    Atom     literal leaf, e.g. a keyword, a number or a string literal
    Ident    identifier leaf, with raw text, resolved name and candidate names
    Node     internal node with a kind label and an ordered list of children
    Missing  sentinel for a parse error

Kinds are drawn from an open label space. A few kinds are reserved: `list` is
the sequence wrapper with variable arity, `quote` marks a quotation,
`wildcard` is the pattern `_`, `choice` marks an ambiguous parse, and every
kind ending in `.hole` or `.hole_scope` denotes an antiquotation (hole) or an
antiquotation scope.

Trees are immutable after construction. Operations which "modify" a tree
return a new tree sharing unchanged sub-trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quasi.tree'.
func tracer() tracing.Trace {
	return tracing.Select("quasi.tree")
}
