package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Visitor is called for every tree of a walk. If it returns false, the
// children of t will not be visited.
type Visitor func(t Tree) bool

// Walk visits the tree top-down, left to right, in pre-order.
func Walk(t Tree, visit Visitor) {
	if t == nil {
		return
	}
	stack := make([]Tree, 1, 32)
	stack[0] = t
	for len(stack) > 0 {
		t, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if !visit(t) {
			continue
		}
		args := t.Args()
		for i := len(args) - 1; i >= 0; i-- { // push right to left
			stack = append(stack, args[i])
		}
	}
}

// A NodeFilter filters trees of a walk.
type NodeFilter func(t Tree) bool

// Any is true if some sub-tree of t (including t) is accepted by filt.
func Any(t Tree, filt NodeFilter) bool {
	found := false
	Walk(t, func(n Tree) bool {
		if found {
			return false
		}
		if filt(n) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Collect returns every sub-tree of t accepted by filt, in pre-order. Trees
// rejected by descend are neither collected nor entered.
func Collect(t Tree, filt NodeFilter, descend NodeFilter) []Tree {
	var r []Tree
	Walk(t, func(n Tree) bool {
		if descend != nil && !descend(n) {
			return false
		}
		if filt(n) {
			r = append(r, n)
		}
		return true
	})
	return r
}

// Map rebuilds t bottom-up, replacing every sub-tree by mapper's result.
// Sub-trees which map to themselves are shared with the input.
func Map(t Tree, mapper func(Tree) Tree) Tree {
	n, ok := t.(*Node)
	if !ok || len(n.args) == 0 {
		return mapper(t)
	}
	var args []Tree
	for i, ch := range n.args {
		m := Map(ch, mapper)
		if m != ch && args == nil {
			args = make([]Tree, len(n.args))
			copy(args, n.args[:i])
		}
		if args != nil {
			args[i] = m
		}
	}
	if args != nil {
		return mapper(n.WithArgs(args...))
	}
	return mapper(n)
}

// IsAmbiguous is true if t contains a choice node.
func IsAmbiguous(t Tree) bool {
	return Any(t, func(n Tree) bool {
		return IsOfKind(n, ChoiceKind)
	})
}
