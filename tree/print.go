package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"strings"
)

// Trees print in the surface notation, i.e. a printed tree may be read back
// by package stxlang:
//
//    (kind child …)     node
//    [child …]          list node
//    name               identifier
//    "text" | 123       atom
//    _                  wildcard
//    `t                 quotation
//    $x $$x $x:k $xs*   holes
//    $[ … ]? $[ … ],*   hole scopes; other separators are quoted, e.g. $[ … ]";"*

func (a *Atom) String() string {
	if isNumeral(a.Text) {
		return a.Text
	}
	return `"` + a.Text + `"`
}

func (id *Ident) String() string {
	return id.Raw
}

func (n *Node) String() string {
	var b bytes.Buffer
	writeTree(&b, n)
	return b.String()
}

func writeTree(b *bytes.Buffer, t Tree) {
	n, ok := t.(*Node)
	if !ok {
		b.WriteString(t.String())
		return
	}
	switch {
	case IsHole(n):
		b.WriteString(strings.Repeat("$", 1+EscapeLevel(n)))
		writeTree(b, HoleTerm(n))
		if k, ok := HoleAnnotation(n); ok {
			b.WriteByte(':')
			b.WriteString(string(k))
		}
		if IsSplice(n) {
			b.WriteByte('*')
		}
	case IsScope(n):
		b.WriteString(strings.Repeat("$", 1+EscapeLevel(n)))
		b.WriteByte('[')
		writeSeq(b, ScopeContents(n))
		b.WriteByte(']')
		switch sep := ScopeSeparator(n); {
		case ScopeGroup(n) != SepBy:
			b.WriteString(AtomText(n.Arg(5)))
		case sep == ",":
			b.WriteString(",*")
		default:
			b.WriteString(`"` + sep + `"*`)
		}
	case IsQuote(n):
		b.WriteByte('`')
		writeTree(b, QuoteBody(n))
	case n.kind == WildcardKind:
		b.WriteByte('_')
	case n.kind == ListKind:
		b.WriteByte('[')
		writeSeq(b, n.args)
		b.WriteByte(']')
	default:
		b.WriteByte('(')
		b.WriteString(string(n.kind))
		if len(n.args) > 0 {
			b.WriteByte(' ')
			writeSeq(b, n.args)
		}
		b.WriteByte(')')
	}
}

func writeSeq(b *bytes.Buffer, ts []Tree) {
	for i, t := range ts {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeTree(b, t)
	}
}

func isNumeral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IndentedString returns a multi-line representation of t, one node per line,
// children indented. Holes, scopes and leaves are printed on one line.
func IndentedString(t Tree) string {
	var b bytes.Buffer
	writeIndented(&b, t, 0)
	return b.String()
}

func writeIndented(b *bytes.Buffer, t Tree, level int) {
	b.WriteString(strings.Repeat("  ", level))
	n, ok := t.(*Node)
	if !ok || IsHole(n) || IsScope(n) || n.kind == WildcardKind || len(n.args) == 0 {
		b.WriteString(t.String())
		b.WriteByte('\n')
		return
	}
	if n.kind == ListKind {
		b.WriteString("[]\n")
	} else {
		b.WriteString(string(n.kind))
		b.WriteByte('\n')
	}
	for _, ch := range n.args {
		writeIndented(b, ch, level+1)
	}
}
