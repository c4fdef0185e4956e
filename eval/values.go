package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/quasi/runtime"
	"github.com/npillmayer/quasi/tree"
)

// Option is an optional value.
type Option struct {
	Valid bool
	Value interface{}
}

// Some wraps a value into an option.
func Some(v interface{}) Option {
	return Option{Valid: true, Value: v}
}

// None is the absent option.
var None = Option{}

// Tuple is a fixed-size group of values.
type Tuple []interface{}

// Seq is a sequence of values.
type Seq []interface{}

// Closure is a function value of one parameter.
type Closure struct {
	Param string
	Body  tree.Tree
	Env   *runtime.Frame
}

// Format renders a value.
func Format(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case tree.Tree:
		return x.String()
	case Option:
		if !x.Valid {
			return "none"
		}
		return "(some " + Format(x.Value) + ")"
	case Tuple:
		return "(tuple" + formatElems(x, true) + ")"
	case Seq:
		return "{" + strings.TrimPrefix(formatElems(x, true), " ") + "}"
	case *Closure:
		return fmt.Sprintf("<fun %s>", x.Param)
	case string:
		return fmt.Sprintf("%q", x)
	}
	return fmt.Sprintf("%v", v)
}

func formatElems(vs []interface{}, lead bool) string {
	var b strings.Builder
	for _, v := range vs {
		if lead {
			b.WriteByte(' ')
		}
		b.WriteString(Format(v))
		lead = true
	}
	return b.String()
}

// Equal compares two values. Trees compare structurally.
func Equal(a, b interface{}) bool {
	switch x := a.(type) {
	case tree.Tree:
		y, ok := b.(tree.Tree)
		return ok && tree.Equal(x, y)
	case Option:
		y, ok := b.(Option)
		return ok && x.Valid == y.Valid && (!x.Valid || Equal(x.Value, y.Value))
	case Tuple:
		y, ok := b.(Tuple)
		return ok && equalElems(x, y)
	case Seq:
		y, ok := b.(Seq)
		return ok && equalElems(x, y)
	case *Closure:
		return a == b
	}
	return a == b
}

func equalElems(a, b []interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
