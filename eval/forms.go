package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/quasi/code"
	"github.com/npillmayer/quasi/runtime"
	"github.com/npillmayer/quasi/tree"
)

// form is the implementation of a form of generated code. Arguments are
// passed unevaluated. An arity of -1 accepts any number of arguments.
type form struct {
	arity int
	call  func(ip *Interpreter, env *runtime.Frame, args []tree.Tree) (interface{}, error)
}

var forms map[tree.Kind]form

func init() {
	forms = map[tree.Kind]form{
		code.LetForm:            {3, evalLet},
		code.IfForm:             {3, evalIf},
		code.AndForm:            {2, evalAnd},
		code.NotForm:            {1, strict(opNot)},
		code.EqForm:             {2, strict(opEq)},
		code.FunForm:            {2, evalFun},
		code.AppForm:            {2, strict(opApp)},
		code.MapForm:            {2, strict(opMap)},
		code.ZipForm:            {2, strict(opZip)},
		code.AllSomeForm:        {1, strict(opAllSome)},
		code.IsSomeForm:         {1, strict(opIsSome)},
		code.GetSomeForm:        {1, strict(opGetSome)},
		code.SomeForm:           {1, strict(opSome)},
		code.NoneForm:           {0, strict(opNone)},
		code.TupleForm:          {-1, strict(opTuple)},
		code.ProjForm:           {2, strict(opProj)},
		code.SeqForm:            {-1, strict(opSeq)},
		code.ConcatForm:         {-1, strict(opConcat)},
		code.IntersperseForm:    {2, strict(opIntersperse)},
		code.IsOfKindForm:       {2, strict(opIsOfKind)},
		code.ChildCountForm:     {1, strict(opChildCount)},
		code.GetChildForm:       {2, strict(opGetChild)},
		code.GetArgsForm:        {1, strict(opGetArgs)},
		code.GetSepArgsForm:     {1, strict(opGetSepArgs)},
		code.MkNodeForm:         {2, strict(opMkNode)},
		code.MkAtomForm:         {1, strict(opMkAtom)},
		code.MkIdentForm:        {3, strict(opMkIdent)},
		code.MkMissingForm:      {0, strict(opMkMissing)},
		code.AddMacroScopeForm:  {3, strict(opAddMacroScope)},
		code.CurrMacroScopeForm: {0, strict(opCurrMacroScope)},
		code.MainModuleForm:     {0, strict(opMainModule)},
		code.NoMatchForm:        {0, evalNoMatch},
	}
}

// --- Special forms ---------------------------------------------------------

func evalLet(ip *Interpreter, env *runtime.Frame, args []tree.Tree) (interface{}, error) {
	x, ok := tree.AsIdent(args[0])
	if !ok {
		return nil, fmt.Errorf("let: cannot bind %s", args[0])
	}
	v, err := ip.EvalIn(env, args[1])
	if err != nil {
		return nil, err
	}
	return ip.EvalIn(env.Bind(x.Name, v), args[2])
}

func evalIf(ip *Interpreter, env *runtime.Frame, args []tree.Tree) (interface{}, error) {
	c, err := ip.EvalIn(env, args[0])
	if err != nil {
		return nil, err
	}
	b, ok := c.(bool)
	if !ok {
		return nil, fmt.Errorf("if: condition is not a boolean: %s", Format(c))
	}
	if b {
		return ip.EvalIn(env, args[1])
	}
	return ip.EvalIn(env, args[2])
}

func evalAnd(ip *Interpreter, env *runtime.Frame, args []tree.Tree) (interface{}, error) {
	for _, arg := range args {
		c, err := ip.EvalIn(env, arg)
		if err != nil {
			return nil, err
		}
		b, ok := c.(bool)
		if !ok {
			return nil, fmt.Errorf("and: operand is not a boolean: %s", Format(c))
		}
		if !b {
			return false, nil
		}
	}
	return true, nil
}

func evalFun(ip *Interpreter, env *runtime.Frame, args []tree.Tree) (interface{}, error) {
	x, ok := tree.AsIdent(args[0])
	if !ok {
		return nil, fmt.Errorf("fun: invalid parameter %s", args[0])
	}
	return &Closure{Param: x.Name, Body: args[1], Env: env}, nil
}

func evalNoMatch(ip *Interpreter, env *runtime.Frame, args []tree.Tree) (interface{}, error) {
	return nil, ErrNoMatch
}

// --- Strict forms ----------------------------------------------------------

type op func(ip *Interpreter, vs []interface{}) (interface{}, error)

// strict evaluates all arguments, left to right, before calling o.
func strict(o op) func(*Interpreter, *runtime.Frame, []tree.Tree) (interface{}, error) {
	return func(ip *Interpreter, env *runtime.Frame, args []tree.Tree) (interface{}, error) {
		vs := make([]interface{}, len(args))
		for i, arg := range args {
			v, err := ip.EvalIn(env, arg)
			if err != nil {
				return nil, err
			}
			vs[i] = v
		}
		return o(ip, vs)
	}
}

func opNot(ip *Interpreter, vs []interface{}) (interface{}, error) {
	b, ok := vs[0].(bool)
	if !ok {
		return nil, fmt.Errorf("not: operand is not a boolean: %s", Format(vs[0]))
	}
	return !b, nil
}

func opEq(ip *Interpreter, vs []interface{}) (interface{}, error) {
	return Equal(vs[0], vs[1]), nil
}

func opApp(ip *Interpreter, vs []interface{}) (interface{}, error) {
	f, ok := vs[0].(*Closure)
	if !ok {
		return nil, fmt.Errorf("app: not a function: %s", Format(vs[0]))
	}
	return ip.Apply(f, vs[1])
}

func opMap(ip *Interpreter, vs []interface{}) (interface{}, error) {
	f, ok := vs[0].(*Closure)
	if !ok {
		return nil, fmt.Errorf("map: not a function: %s", Format(vs[0]))
	}
	s, err := asSeq("map", vs[1])
	if err != nil {
		return nil, err
	}
	r := make(Seq, len(s))
	for i, v := range s {
		if r[i], err = ip.Apply(f, v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func opZip(ip *Interpreter, vs []interface{}) (interface{}, error) {
	a, err := asSeq("zip", vs[0])
	if err != nil {
		return nil, err
	}
	b, err := asSeq("zip", vs[1])
	if err != nil {
		return nil, err
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	r := make(Seq, n)
	for i := 0; i < n; i++ {
		r[i] = Tuple{a[i], b[i]}
	}
	return r, nil
}

func opAllSome(ip *Interpreter, vs []interface{}) (interface{}, error) {
	s, err := asSeq("allSome", vs[0])
	if err != nil {
		return nil, err
	}
	for _, v := range s {
		o, ok := v.(Option)
		if !ok {
			return nil, fmt.Errorf("allSome: not an option: %s", Format(v))
		}
		if !o.Valid {
			return false, nil
		}
	}
	return true, nil
}

func opIsSome(ip *Interpreter, vs []interface{}) (interface{}, error) {
	o, ok := vs[0].(Option)
	if !ok {
		return nil, fmt.Errorf("isSome: not an option: %s", Format(vs[0]))
	}
	return o.Valid, nil
}

func opGetSome(ip *Interpreter, vs []interface{}) (interface{}, error) {
	o, ok := vs[0].(Option)
	if !ok || !o.Valid {
		return nil, fmt.Errorf("getSome: not a present option: %s", Format(vs[0]))
	}
	return o.Value, nil
}

func opSome(ip *Interpreter, vs []interface{}) (interface{}, error) {
	return Some(vs[0]), nil
}

func opNone(ip *Interpreter, vs []interface{}) (interface{}, error) {
	return None, nil
}

func opTuple(ip *Interpreter, vs []interface{}) (interface{}, error) {
	return Tuple(vs), nil
}

func opProj(ip *Interpreter, vs []interface{}) (interface{}, error) {
	t, ok := vs[0].(Tuple)
	if !ok {
		return nil, fmt.Errorf("proj: not a tuple: %s", Format(vs[0]))
	}
	i, ok := vs[1].(int)
	if !ok || i < 0 || i >= len(t) {
		return nil, fmt.Errorf("proj: invalid index %s for tuple of size %d", Format(vs[1]), len(t))
	}
	return t[i], nil
}

func opSeq(ip *Interpreter, vs []interface{}) (interface{}, error) {
	return Seq(vs), nil
}

func opConcat(ip *Interpreter, vs []interface{}) (interface{}, error) {
	var r Seq
	for _, v := range vs {
		s, err := asSeq("concat", v)
		if err != nil {
			return nil, err
		}
		r = append(r, s...)
	}
	if r == nil {
		r = Seq{}
	}
	return r, nil
}

func opIntersperse(ip *Interpreter, vs []interface{}) (interface{}, error) {
	s, err := asSeq("intersperse", vs[1])
	if err != nil {
		return nil, err
	}
	r := make(Seq, 0, 2*len(s))
	for i, v := range s {
		if i > 0 {
			r = append(r, vs[0])
		}
		r = append(r, v)
	}
	return r, nil
}

func opIsOfKind(ip *Interpreter, vs []interface{}) (interface{}, error) {
	t, err := asTree("isOfKind", vs[0])
	if err != nil {
		return nil, err
	}
	k, ok := vs[1].(string)
	if !ok {
		return nil, fmt.Errorf("isOfKind: kind is not a string: %s", Format(vs[1]))
	}
	return tree.IsOfKind(t, tree.Kind(k)), nil
}

func opChildCount(ip *Interpreter, vs []interface{}) (interface{}, error) {
	t, err := asTree("childCount", vs[0])
	if err != nil {
		return nil, err
	}
	return len(t.Args()), nil
}

func opGetChild(ip *Interpreter, vs []interface{}) (interface{}, error) {
	t, err := asTree("getChild", vs[0])
	if err != nil {
		return nil, err
	}
	i, ok := vs[1].(int)
	if !ok {
		return nil, fmt.Errorf("getChild: index is not an integer: %s", Format(vs[1]))
	}
	return tree.Arg(t, i), nil
}

func opGetArgs(ip *Interpreter, vs []interface{}) (interface{}, error) {
	t, err := asTree("getArgs", vs[0])
	if err != nil {
		return nil, err
	}
	r := make(Seq, len(t.Args()))
	for i, ch := range t.Args() {
		r[i] = ch
	}
	return r, nil
}

func opGetSepArgs(ip *Interpreter, vs []interface{}) (interface{}, error) {
	t, err := asTree("getSepArgs", vs[0])
	if err != nil {
		return nil, err
	}
	args := t.Args()
	r := make(Seq, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		r = append(r, args[i])
	}
	return r, nil
}

func opMkNode(ip *Interpreter, vs []interface{}) (interface{}, error) {
	k, ok := vs[0].(string)
	if !ok {
		return nil, fmt.Errorf("mkNode: kind is not a string: %s", Format(vs[0]))
	}
	s, err := asSeq("mkNode", vs[1])
	if err != nil {
		return nil, err
	}
	children := make([]tree.Tree, len(s))
	for i, v := range s {
		if children[i], err = asTree("mkNode", v); err != nil {
			return nil, err
		}
	}
	return tree.NewNode(tree.Kind(k), children...), nil
}

func opMkAtom(ip *Interpreter, vs []interface{}) (interface{}, error) {
	return tree.NewAtom(fmt.Sprint(vs[0])), nil
}

func opMkIdent(ip *Interpreter, vs []interface{}) (interface{}, error) {
	raw, ok1 := vs[0].(string)
	name, ok2 := vs[1].(string)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("mkIdent: raw text and name must be strings")
	}
	s, err := asSeq("mkIdent", vs[2])
	if err != nil {
		return nil, err
	}
	var candidates []string
	for _, v := range s {
		c, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("mkIdent: candidate is not a string: %s", Format(v))
		}
		candidates = append(candidates, c)
	}
	return tree.NewIdent(raw).WithName(name, candidates), nil
}

func opMkMissing(ip *Interpreter, vs []interface{}) (interface{}, error) {
	return tree.Missing{}, nil
}

func opAddMacroScope(ip *Interpreter, vs []interface{}) (interface{}, error) {
	module, ok1 := vs[0].(string)
	name, ok2 := vs[1].(string)
	scope, ok3 := vs[2].(runtime.ScopeTag)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("addMacroScope: expected module, name and macro scope")
	}
	return runtime.AddMacroScope(module, name, scope), nil
}

func opCurrMacroScope(ip *Interpreter, vs []interface{}) (interface{}, error) {
	return ip.scope, nil
}

func opMainModule(ip *Interpreter, vs []interface{}) (interface{}, error) {
	return ip.ctx.CurrentModule(), nil
}

// ---------------------------------------------------------------------------

func asSeq(op string, v interface{}) (Seq, error) {
	if s, ok := v.(Seq); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%s: not a sequence: %s", op, Format(v))
}

func asTree(op string, v interface{}) (tree.Tree, error) {
	if t, ok := v.(tree.Tree); ok {
		return t, nil
	}
	return nil, fmt.Errorf("%s: not a tree: %s", op, Format(v))
}
