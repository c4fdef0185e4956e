/*
Package scanner defines an interface for scanners of the surface notation,
and an adapter for lexmachine.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing literals, keywords and
regular expressions. Having that, clients use `NewLMAdapter` to wrap
lexmachine into a scanner.Tokenizer.

	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence. Tokens are read
until EOF.

	scan, err := LM.Scanner("input string to tokenize")
	…
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		…
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/quasi"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quasi.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("quasi.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF     = scanner.EOF
	Ident   = scanner.Ident
	Int     = scanner.Int
	String  = scanner.String
	Comment = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() quasi.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %s", e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// lexmachine scanner.
type DefaultToken struct {
	kind   quasi.TokType
	lexeme string
	Val    interface{}
	span   quasi.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ quasi.TokType, lexeme string, span quasi.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType is part of interface quasi.Token.
func (t DefaultToken) TokType() quasi.TokType {
	return t.kind
}

// Value is part of interface quasi.Token.
func (t DefaultToken) Value() interface{} {
	return t.Val
}

// Lexeme is part of interface quasi.Token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of interface quasi.Token.
func (t DefaultToken) Span() quasi.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%d|%q%s", t.kind, t.lexeme, t.span)
}
