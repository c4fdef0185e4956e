/*
Command qrepl provides an interactive command line tool (Q.REPL) for
syntax matches and quotations. Q.REPL reads forms in the surface notation
of package stxlang, elaborates matches and quotations into generated code,
and evaluates the code. It serves as a sandbox for experiments with
syntax patterns and templates.

Usage:

    qrepl [-trace level] [-init file] [-names file] [-module name] [expr]

Besides plain forms, Q.REPL understands

    (def x expr)    evaluate expr and bind the result to x
    (tree expr)     print the value of expr as a tree
    (code expr)     print the generated code for expr as a tree
    (names)         list the declared global names

Quit with <ctrl>D.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quasi.repl'
func tracer() tracing.Trace {
	return tracing.Select("quasi.repl")
}
