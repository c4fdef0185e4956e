/*
Package diag defines the diagnostics raised while compiling syntax patterns
and syntax quotations.

All diagnostics are programmer errors of the macro author: they are raised
once, at compile time, located at the offending tree, and never recovered
from.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/quasi"
	"github.com/npillmayer/quasi/tree"
)

// Class categorizes diagnostics.
type Class string

// Diagnostic classes.
const (
	UnsupportedPattern   Class = "unsupported-pattern"     // pattern shape not understood
	InvalidHoleBinding   Class = "invalid-hole-binding"    // pattern hole is not a plain name
	UnexpectedSplice     Class = "unexpected-splice"       // splice where only a plain hole is legal
	UnexpectedScope      Class = "unexpected-scope"        // scope where only a plain hole is legal
	AmbiguousPattern     Class = "ambiguous-pattern"       // pattern contains a choice node
	TooManyScopeBindings Class = "too-many-scope-bindings" // scope binds not 1 or 2 variables
	NonExhaustiveMatch   Class = "non-exhaustive-match"    // ran out of alternatives
	ComplexAntiquotation Class = "complex-antiquotation"   // non-identifier hole where a name is required
	SyntaxError          Class = "syntax"                  // surface notation could not be read
	MalformedForm        Class = "malformed-form"          // match or quote form with wrong shape
)

var codes = map[Class]string{
	UnsupportedPattern:   "MATCH-0001",
	InvalidHoleBinding:   "MATCH-0002",
	UnexpectedSplice:     "MATCH-0003",
	UnexpectedScope:      "MATCH-0004",
	AmbiguousPattern:     "MATCH-0005",
	TooManyScopeBindings: "MATCH-0006",
	NonExhaustiveMatch:   "MATCH-0007",
	ComplexAntiquotation: "MATCH-0008",
	SyntaxError:          "SYNTAX-0001",
	MalformedForm:        "ELAB-0001",
}

// Error is a located compile diagnostic.
type Error struct {
	Class   Class      // error category
	Code    string     // error code, e.g. "MATCH-0007"
	Message string     // human-readable message
	Hints   []string   // suggestions for fixing
	At      tree.Tree  // offending tree, may be nil
	Span    quasi.Span // input position, null if unknown
}

// Errorf creates a diagnostic located at tree at.
func Errorf(at tree.Tree, class Class, format string, args ...interface{}) *Error {
	e := &Error{
		Class:   class,
		Code:    codes[class],
		Message: fmt.Sprintf(format, args...),
		At:      at,
	}
	if at != nil {
		e.Span = at.Info().Span
	}
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	if !e.Span.IsNull() {
		sb.WriteString(fmt.Sprintf("at %s: ", e.Span))
	}
	sb.WriteString(e.Message)
	if e.At != nil {
		sb.WriteString(fmt.Sprintf(" [%s]", e.At))
	}
	for _, hint := range e.Hints {
		sb.WriteString("\n  ")
		sb.WriteString(hint)
	}
	return sb.String()
}

// WithHint returns a copy of the error with a hint appended.
func (e *Error) WithHint(hint string) *Error {
	c := *e
	c.Hints = append(append([]string(nil), e.Hints...), hint)
	return &c
}

// WithSpan returns a copy of the error located at span.
func (e *Error) WithSpan(span quasi.Span) *Error {
	c := *e
	c.Span = span
	return &c
}

// Is tests wether err is (or wraps) a diagnostic of a given class.
func Is(err error, class Class) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Class == class
	}
	return false
}

// ClassOf returns the class of a diagnostic, or "" for other errors.
func ClassOf(err error) Class {
	var e *Error
	if errors.As(err, &e) {
		return e.Class
	}
	return ""
}
