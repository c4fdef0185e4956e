package stxlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync"

	"github.com/npillmayer/quasi"
	"github.com/npillmayer/quasi/diag"
	"github.com/npillmayer/quasi/scanner"
	"github.com/npillmayer/quasi/tree"
)

var lexer *scanner.LMAdapter
var lexerErr error

var startOnce sync.Once // monitors one-time creation of the lexer

func createLexer() (*scanner.LMAdapter, error) {
	startOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer, lexerErr = Lexer()
	})
	return lexer, lexerErr
}

// Reader reads trees from the surface notation. It is a recursive descent
// parser with one token of lookahead.
type Reader struct {
	category tree.Kind // syntax category of holes and scopes
	scan     scanner.Tokenizer
	tok      quasi.Token
	err      error
}

// Option configures a reader.
type Option func(*Reader)

// Category sets the syntax category for holes and scopes. The default is
// "term".
func Category(k tree.Kind) Option {
	return func(r *Reader) {
		r.category = k
	}
}

// Parse reads exactly one tree from input.
func Parse(input string, opts ...Option) (tree.Tree, error) {
	ts, err := ParseAll(input, opts...)
	if err != nil {
		return nil, err
	}
	if len(ts) != 1 {
		return nil, diag.Errorf(nil, diag.SyntaxError, "expected a single tree, have %d", len(ts)).
			WithSpan(quasi.Span{0, uint64(len(input))})
	}
	return ts[0], nil
}

// ParseAll reads a sequence of trees from input.
func ParseAll(input string, opts ...Option) ([]tree.Tree, error) {
	lex, err := createLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lex.Scanner(input)
	if err != nil {
		return nil, err
	}
	r := &Reader{category: "term", scan: scan}
	for _, opt := range opts {
		opt(r)
	}
	scan.SetErrorHandler(func(e error) {
		if r.err == nil {
			r.err = diag.Errorf(nil, diag.SyntaxError, "unexpected input: %v", e)
		}
	})
	r.next()
	var ts []tree.Tree
	for r.tok.TokType() != scanner.EOF {
		t, err := r.readTree()
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	if r.err != nil {
		return nil, r.err
	}
	tracer().Debugf("read %d trees", len(ts))
	return ts, nil
}

// MustParse is like Parse, but panics on errors. It is intended for tests and
// for initializing tables.
func MustParse(input string, opts ...Option) tree.Tree {
	t, err := Parse(input, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// --- Recursive descent -----------------------------------------------------

func (r *Reader) next() quasi.Token {
	prev := r.tok
	r.tok = r.scan.NextToken()
	return prev
}

func (r *Reader) is(lit byte) bool {
	return r.tok.TokType() == quasi.TokType(lit)
}

func (r *Reader) errorf(format string, args ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	tracer().Errorf(format, args...)
	return diag.Errorf(nil, diag.SyntaxError, format, args...).WithSpan(r.tok.Span())
}

func (r *Reader) expect(lit byte) (quasi.Token, error) {
	if !r.is(lit) {
		return nil, r.errorf("expected '%c', have %q", lit, r.tok.Lexeme())
	}
	return r.next(), nil
}

func located(t tree.Tree, from quasi.Token, to quasi.Token) tree.Tree {
	return tree.Located(t, tree.SourceInfo{Span: from.Span().Extend(to.Span())})
}

func (r *Reader) readTree() (tree.Tree, error) {
	switch r.tok.TokType() {
	case scanner.EOF:
		return nil, r.errorf("unexpected end of input")
	case scanner.Ident:
		tok := r.next()
		if tok.Lexeme() == "_" {
			return located(tree.NewWildcard(), tok, tok), nil
		}
		return located(tree.NewIdent(tok.Lexeme()), tok, tok), nil
	case scanner.Int:
		tok := r.next()
		return located(tree.NewAtom(tok.Lexeme()), tok, tok), nil
	case scanner.String:
		tok := r.next()
		return located(tree.NewAtom(unquote(tok.Lexeme())), tok, tok), nil
	case '(':
		return r.readNode()
	case '[':
		from := r.next()
		args, to, err := r.readSeq(']')
		if err != nil {
			return nil, err
		}
		return located(tree.List(args...), from, to), nil
	case '`':
		from := r.next()
		body, err := r.readTree()
		if err != nil {
			return nil, err
		}
		return tree.Located(tree.NewQuote(body),
			tree.SourceInfo{Span: from.Span().Extend(body.Info().Span)}), nil
	case '$':
		return r.readAntiquotation()
	}
	return nil, r.errorf("unexpected token %q", r.tok.Lexeme())
}

// readNode reads `(kind child …)`.
func (r *Reader) readNode() (tree.Tree, error) {
	from := r.next()
	if r.tok.TokType() != scanner.Ident {
		return nil, r.errorf("expected node kind, have %q", r.tok.Lexeme())
	}
	kind := r.next().Lexeme()
	args, to, err := r.readSeq(')')
	if err != nil {
		return nil, err
	}
	return located(tree.NewNode(tree.Kind(kind), args...), from, to), nil
}

// readSeq reads trees up to and including a closing delimiter.
func (r *Reader) readSeq(closing byte) ([]tree.Tree, quasi.Token, error) {
	var args []tree.Tree
	for !r.is(closing) {
		if r.tok.TokType() == scanner.EOF {
			return nil, nil, r.errorf("missing '%c'", closing)
		}
		t, err := r.readTree()
		if err != nil {
			return nil, nil, err
		}
		args = append(args, t)
	}
	return args, r.next(), nil
}

// readAntiquotation reads holes and hole scopes.
func (r *Reader) readAntiquotation() (tree.Tree, error) {
	from := r.next()
	escape := 0
	for r.is('$') {
		r.next()
		escape++
	}
	if r.is('[') {
		return r.readScope(from, escape)
	}
	var term tree.Tree
	switch {
	case r.tok.TokType() == scanner.Ident:
		t, err := r.readTree()
		if err != nil {
			return nil, err
		}
		term = t
	case r.is('('):
		t, err := r.readNode()
		if err != nil {
			return nil, err
		}
		term = t
	case r.is('`'):
		t, err := r.readTree()
		if err != nil {
			return nil, err
		}
		term = t
	default:
		return nil, r.errorf("expected name or expression after '$', have %q", r.tok.Lexeme())
	}
	to := r.tok
	var annotation tree.Kind
	if r.is(':') {
		r.next()
		if r.tok.TokType() != scanner.Ident {
			return nil, r.errorf("expected kind after ':', have %q", r.tok.Lexeme())
		}
		to = r.next()
		annotation = tree.Kind(to.Lexeme())
	}
	splice := false
	if r.is('*') {
		to = r.next()
		splice = true
	}
	hole := tree.NewHole(r.category, escape, term, annotation, splice)
	span := from.Span().Extend(term.Info().Span)
	if annotation != "" || splice {
		span = span.Extend(to.Span())
	}
	return tree.Located(hole, tree.SourceInfo{Span: span}), nil
}

// readScope reads `$[ … ]?`, `$[ … ]*` and `$[ … ]sep*`.
func (r *Reader) readScope(from quasi.Token, escape int) (tree.Tree, error) {
	r.next() // '['
	contents, _, err := r.readSeq(']')
	if err != nil {
		return nil, err
	}
	var suffix string
	switch {
	case r.is('?'), r.is('*'):
		suffix = r.tok.Lexeme()
	case r.is(','):
		suffix = ","
	case r.tok.TokType() == scanner.String:
		suffix = unquote(r.tok.Lexeme())
		if suffix == "" || strings.ContainsAny(suffix, "*?") {
			return nil, r.errorf("invalid separator %q", r.tok.Lexeme())
		}
	default:
		return nil, r.errorf("expected '?', '*' or separator after hole scope, have %q", r.tok.Lexeme())
	}
	to := r.next()
	if suffix != "?" && suffix != "*" {
		if !r.is('*') {
			return nil, r.errorf("expected '*' after separator, have %q", r.tok.Lexeme())
		}
		to = r.next()
		suffix += "*"
	}
	scope := tree.NewScope(r.category, escape, suffix, contents...)
	return tree.Located(scope, tree.SourceInfo{Span: from.Span().Extend(to.Span())}), nil
}

func unquote(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}
