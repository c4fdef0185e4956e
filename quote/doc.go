/*
Package quote expands quotations into code which constructs the quoted
tree at run time.

A quotation is a tree template. Positions marked by holes are filled in by
the values of the holes' inner expressions; splice holes insert a sequence
of trees into the enclosing list, and hole scopes repeat a part of the
template once per value of their variables. Identifiers of the template
text are pre-resolved against the global names visible at expansion time
and tagged with the macro scope current at run time, making them hygienic.

For a template

    `(app f $x)

the expander produces

    (let mod (mainModule)
      (let scp (currMacroScope)
        (mkNode "app" (seq (mkIdent "f" (addMacroScope mod "f" scp) (seq)) x))))

Escaped holes and scopes are reconstructed literally, with one repeat
marker less.


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
package quote

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quasi.quote'.
func tracer() tracing.Trace {
	return tracing.Select("quasi.quote")
}
