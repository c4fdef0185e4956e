package quasi

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Constants are defined by the
// scanners which produce tokens.
type TokType int

// Tokens represent input tokens of the surface notation for trees.
//
// An example would be a token for an identifier:
//
//    TokType = Ident       // category of this kind of tokens
//    Lexeme  = "foo"       // lexeme how it appeared in the input stream
//    Value   = nil         // unused for identifiers
//    Span    = 12…15       // occured from position 12 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. Every tree
// read from the surface notation remembers which input positions it covers.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span, which is used for synthesized trees.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
