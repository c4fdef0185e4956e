package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/quasi/runtime"
	"github.com/npillmayer/quasi/tree"
)

// ErrNoMatch is returned when evaluation reaches the fallback alternative
// of a match.
var ErrNoMatch = errors.New("no alternative matches")

// Interpreter evaluates generated code.
type Interpreter struct {
	ctx     *runtime.Context
	Globals *runtime.Frame
	scope   runtime.ScopeTag
}

// NewInterpreter creates an interpreter with an empty global frame.
func NewInterpreter(ctx *runtime.Context) *Interpreter {
	return &Interpreter{
		ctx:     ctx,
		Globals: runtime.NewFrame("global", nil),
	}
}

// Eval evaluates t in the global frame. Every call to Eval is a separate
// expansion, i.e. it uses a fresh current macro scope.
func (ip *Interpreter) Eval(t tree.Tree) (interface{}, error) {
	ip.scope = ip.ctx.FreshScope()
	tracer().Debugf("eval %s in macro scope %s", t, ip.scope)
	return ip.EvalIn(ip.Globals, t)
}

// EvalIn evaluates t in frame env, without minting a macro scope.
func (ip *Interpreter) EvalIn(env *runtime.Frame, t tree.Tree) (interface{}, error) {
	switch x := t.(type) {
	case *tree.Atom:
		if isNumeral(x.Text) {
			n, err := strconv.Atoi(x.Text)
			if err != nil {
				return nil, ip.errorf(t, "integer literal out of range: %s", x.Text)
			}
			return n, nil
		}
		return x.Text, nil
	case *tree.Ident:
		if v, ok := env.Lookup(x.Name); ok {
			return v, nil
		}
		return nil, ip.errorf(t, "unbound variable %s", x.Name)
	case *tree.Node:
		f, ok := forms[x.Kind()]
		if !ok {
			return nil, ip.errorf(t, "cannot evaluate form %s", x.Kind())
		}
		if f.arity >= 0 && x.Len() != f.arity {
			return nil, ip.errorf(t, "%s expects %d arguments, has %d", x.Kind(), f.arity, x.Len())
		}
		return f.call(ip, env, x.Args())
	}
	return nil, ip.errorf(t, "cannot evaluate %s", t.Kind())
}

// Apply applies a closure to an argument.
func (ip *Interpreter) Apply(f *Closure, arg interface{}) (interface{}, error) {
	return ip.EvalIn(f.Env.Bind(f.Param, arg), f.Body)
}

func (ip *Interpreter) errorf(at tree.Tree, format string, args ...interface{}) error {
	err := fmt.Errorf("eval %s: %s", at.Kind(), fmt.Sprintf(format, args...))
	tracer().Errorf("%s", err.Error())
	return err
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
