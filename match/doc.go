/*
Package match compiles syntax pattern matches into decision trees.

A match consists of a discriminant and a list of alternatives, each a
pattern paired with a result expression. Patterns are identifiers (binding
the discriminant), the wildcard `_`, or quotations: tree templates whose
holes bind sub-trees, e.g.

    (match d
      (alt `(app $f $x) (seq f x))
      (alt `(app $[$xs]*) xs)
      (alt _ none))

CompilePatternMatch turns such a match into generated code (see package
code), which tests every discriminant at most once per path. The head
pattern of every alternative is classified first. Among the
classifications, a most specific one (the pivot) is chosen, and the
alternatives are split into those matching whenever the pivot's test
succeeds and those which may match when it fails. Both partitions are
compiled recursively; alternatives which match anything end up in both.

Hole scopes ($[…]?, $[…]*, $[…],*) are matched by a submatcher which
applies a nested match to every element of a repetition and collects the
bound variables into sequences.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quasi.match'.
func tracer() tracing.Trace {
	return tracing.Select("quasi.match")
}
