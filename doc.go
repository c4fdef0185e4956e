/*
Package quasi is a toolbox for syntax quotations and syntax pattern matching.

Macro systems operate on syntax trees: they take trees apart with pattern
matching and build new trees from templates. Quasi compiles both directions
into small, unconditional code. Package structure is as follows:

■ tree: Package tree implements a generic labeled syntax tree, including the
reserved node shapes for holes (antiquotations) and hole scopes.

■ match: Package match compiles a list of pattern alternatives into a single
decision tree, testing every discriminant at most once.

■ quote: Package quote expands quotation templates into tree-construction code.

■ eval: Package eval interprets the generated code; elab glues quotations and
match forms together, stxlang reads trees in a compact surface notation.

■ runtime: Package runtime provides the compile context (name resolution,
fresh macro scopes) and frames for the interpreter.

■ code: Package code defines the vocabulary of generated code; diag defines
the compile diagnostics.

■ scanner: Package scanner adapts lexmachine for the surface notation.

Command qrepl is an interactive sandbox for matches and quotations.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package quasi
