/*
Package stxlang reads trees written in the surface notation.

The notation is a small S-expression language:

    (kind child …)     node of kind `kind`
    [child …]          list node (sequence wrapper)
    name               identifier; operators like + or <= are identifiers, too
    _                  wildcard
    "text" | 123       atom
    `t                 quotation of t
    $x $$x $x:k        hole, escaped hole, hole with kind annotation
    $xs*               splice hole
    $(expr) $`t        hole with an expression or a quotation
    $[ … ]?            optional hole scope
    $[ … ]*            repetition hole scope
    $[ … ],*           repetition with separator; separators may also be strings: $[ … ]";"*

Comments start with ';' and extend to the end of the line.

Trees remember the span of input they have been read from. Trees print in
the same notation, i.e. reading the string representation of a tree
yields an equal tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stxlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quasi.stxlang'.
func tracer() tracing.Trace {
	return tracing.Select("quasi.stxlang")
}
