/*
Package eval interprets generated code.

Values of the interpreter are trees (tree.Tree), integers, strings,
booleans, options, tuples, sequences and closures. Variables live in
lexical frames (runtime.Frame).

The interpreter is not meant to be fast. It is the reference semantics for
the code produced by the match compiler and the quotation expander, and it
drives the REPL.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quasi.eval'.
func tracer() tracing.Trace {
	return tracing.Select("quasi.eval")
}
