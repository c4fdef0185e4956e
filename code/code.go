/*
Package code defines the vocabulary of generated result expressions.

Generated code is itself a tree: every form is a node whose kind names the
operation, e.g.

    (let x (getChild d 0) (if (isOfKind x "app") yes no))

Literal atoms evaluate to integers if they are numerals and to strings
otherwise. Identifiers are variable references, looked up by their
(possibly hygienic) name.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package code

import (
	"strconv"

	"github.com/npillmayer/quasi/tree"
)

// Forms of generated code.
const (
	LetForm            tree.Kind = "let"            // (let x value body)
	IfForm             tree.Kind = "if"             // (if cond then else)
	AndForm            tree.Kind = "and"            // (and a b), short-circuit
	NotForm            tree.Kind = "not"            // (not a)
	EqForm             tree.Kind = "eq"             // (eq a b)
	FunForm            tree.Kind = "fun"            // (fun x body)
	AppForm            tree.Kind = "app"            // (app f a)
	MapForm            tree.Kind = "map"            // (map f seq)
	ZipForm            tree.Kind = "zip"            // (zip seq seq) => seq of tuples
	AllSomeForm        tree.Kind = "allSome"        // (allSome seq-of-options) => bool
	IsSomeForm         tree.Kind = "isSome"         // (isSome option)
	GetSomeForm        tree.Kind = "getSome"        // (getSome option)
	SomeForm           tree.Kind = "some"           // (some v)
	NoneForm           tree.Kind = "none"           // (none)
	TupleForm          tree.Kind = "tuple"          // (tuple a b …)
	ProjForm           tree.Kind = "proj"           // (proj tuple i)
	SeqForm            tree.Kind = "seq"            // (seq a b …)
	ConcatForm         tree.Kind = "concat"         // (concat seq seq …)
	IntersperseForm    tree.Kind = "intersperse"    // (intersperse sep seq)
	IsOfKindForm       tree.Kind = "isOfKind"       // (isOfKind t "kind")
	ChildCountForm     tree.Kind = "childCount"     // (childCount t)
	GetChildForm       tree.Kind = "getChild"       // (getChild t i)
	GetArgsForm        tree.Kind = "getArgs"        // (getArgs t) => seq of children
	GetSepArgsForm     tree.Kind = "getSepArgs"     // (getSepArgs t) => children at even positions
	MkNodeForm         tree.Kind = "mkNode"         // (mkNode "kind" seq)
	MkAtomForm         tree.Kind = "mkAtom"         // (mkAtom "text")
	MkIdentForm        tree.Kind = "mkIdent"        // (mkIdent "raw" name seq-of-candidates)
	MkMissingForm      tree.Kind = "mkMissing"      // (mkMissing)
	AddMacroScopeForm  tree.Kind = "addMacroScope"  // (addMacroScope module "name" scope)
	CurrMacroScopeForm tree.Kind = "currMacroScope" // (currMacroScope)
	MainModuleForm     tree.Kind = "mainModule"     // (mainModule)
	NoMatchForm        tree.Kind = "noMatch"        // (noMatch), fails evaluation
)

// Forms lists every form of the vocabulary.
var Forms = []tree.Kind{
	LetForm, IfForm, AndForm, NotForm, EqForm, FunForm, AppForm, MapForm,
	ZipForm, AllSomeForm, IsSomeForm, GetSomeForm, SomeForm, NoneForm,
	TupleForm, ProjForm, SeqForm, ConcatForm, IntersperseForm, IsOfKindForm,
	ChildCountForm, GetChildForm, GetArgsForm, GetSepArgsForm, MkNodeForm,
	MkAtomForm, MkIdentForm, MkMissingForm, AddMacroScopeForm,
	CurrMacroScopeForm, MainModuleForm, NoMatchForm,
}

// IsForm is true if k is a form of the vocabulary.
func IsForm(k tree.Kind) bool {
	for _, f := range Forms {
		if f == k {
			return true
		}
	}
	return false
}

// --- Literals --------------------------------------------------------------

// Str is a string literal.
func Str(s string) *tree.Atom {
	return tree.NewAtom(s)
}

// Num is an integer literal.
func Num(i int) *tree.Atom {
	return tree.NewAtom(strconv.Itoa(i))
}

// --- Binding and control ---------------------------------------------------

// Let binds x to value within body.
func Let(x *tree.Ident, value, body tree.Tree) tree.Tree {
	return tree.NewNode(LetForm, x, value, body)
}

// If is a conditional.
func If(cond, yes, no tree.Tree) tree.Tree {
	return tree.NewNode(IfForm, cond, yes, no)
}

// And is the short-circuit conjunction.
func And(a, b tree.Tree) tree.Tree {
	return tree.NewNode(AndForm, a, b)
}

// Not negates a boolean.
func Not(a tree.Tree) tree.Tree {
	return tree.NewNode(NotForm, a)
}

// Eq compares two integers, strings or booleans.
func Eq(a, b tree.Tree) tree.Tree {
	return tree.NewNode(EqForm, a, b)
}

// Fun is a function of one parameter.
func Fun(x *tree.Ident, body tree.Tree) tree.Tree {
	return tree.NewNode(FunForm, x, body)
}

// App applies a function.
func App(f, a tree.Tree) tree.Tree {
	return tree.NewNode(AppForm, f, a)
}

// NoMatch signals that no alternative of a match applies.
func NoMatch() tree.Tree {
	return tree.NewNode(NoMatchForm)
}

// --- Sequences, options and tuples -----------------------------------------

// Map applies f to every element of a sequence.
func Map(f, seq tree.Tree) tree.Tree {
	return tree.NewNode(MapForm, f, seq)
}

// Zip pairs the elements of two sequences.
func Zip(a, b tree.Tree) tree.Tree {
	return tree.NewNode(ZipForm, a, b)
}

// AllSome is true if every option of a sequence is present.
func AllSome(seq tree.Tree) tree.Tree {
	return tree.NewNode(AllSomeForm, seq)
}

// IsSome tests an option.
func IsSome(opt tree.Tree) tree.Tree {
	return tree.NewNode(IsSomeForm, opt)
}

// GetSome unwraps a present option.
func GetSome(opt tree.Tree) tree.Tree {
	return tree.NewNode(GetSomeForm, opt)
}

// Some wraps a value into an option.
func Some(v tree.Tree) tree.Tree {
	return tree.NewNode(SomeForm, v)
}

// None is the absent option.
func None() tree.Tree {
	return tree.NewNode(NoneForm)
}

// Tuple builds a tuple.
func Tuple(elems ...tree.Tree) tree.Tree {
	return tree.NewNode(TupleForm, elems...)
}

// Proj selects component i of a tuple.
func Proj(t tree.Tree, i int) tree.Tree {
	return tree.NewNode(ProjForm, t, Num(i))
}

// Seq builds a sequence.
func Seq(elems ...tree.Tree) tree.Tree {
	return tree.NewNode(SeqForm, elems...)
}

// Concat concatenates sequences.
func Concat(seqs ...tree.Tree) tree.Tree {
	return tree.NewNode(ConcatForm, seqs...)
}

// Intersperse puts sep between the elements of a sequence.
func Intersperse(sep, seq tree.Tree) tree.Tree {
	return tree.NewNode(IntersperseForm, sep, seq)
}

// --- Tree inspection -------------------------------------------------------

// IsOfKind tests the kind of a tree value.
func IsOfKind(t tree.Tree, k tree.Kind) tree.Tree {
	return tree.NewNode(IsOfKindForm, t, Str(string(k)))
}

// ChildCount is the number of children of a tree value.
func ChildCount(t tree.Tree) tree.Tree {
	return tree.NewNode(ChildCountForm, t)
}

// GetChild selects child i of a tree value.
func GetChild(t tree.Tree, i int) tree.Tree {
	return tree.NewNode(GetChildForm, t, Num(i))
}

// GetArgs is the sequence of children of a tree value.
func GetArgs(t tree.Tree) tree.Tree {
	return tree.NewNode(GetArgsForm, t)
}

// GetSepArgs is the sequence of children at even positions of a tree value,
// skipping separators.
func GetSepArgs(t tree.Tree) tree.Tree {
	return tree.NewNode(GetSepArgsForm, t)
}

// --- Tree construction -----------------------------------------------------

// MkNode constructs a node of kind k with children from a sequence.
func MkNode(k tree.Kind, children tree.Tree) tree.Tree {
	return tree.NewNode(MkNodeForm, Str(string(k)), children)
}

// MkAtom constructs an atom.
func MkAtom(text string) tree.Tree {
	return tree.NewNode(MkAtomForm, Str(text))
}

// MkIdent constructs an identifier with raw text, a name computed at runtime
// and a sequence of candidate names.
func MkIdent(raw string, name, candidates tree.Tree) tree.Tree {
	return tree.NewNode(MkIdentForm, Str(raw), name, candidates)
}

// MkMissing constructs the missing sentinel.
func MkMissing() tree.Tree {
	return tree.NewNode(MkMissingForm)
}

// AddMacroScope computes a hygienic name at runtime.
func AddMacroScope(module tree.Tree, name string, scope tree.Tree) tree.Tree {
	return tree.NewNode(AddMacroScopeForm, module, Str(name), scope)
}

// CurrMacroScope is the macro scope of the current expansion.
func CurrMacroScope() tree.Tree {
	return tree.NewNode(CurrMacroScopeForm)
}

// MainModule is the name of the current module.
func MainModule() tree.Tree {
	return tree.NewNode(MainModuleForm)
}
