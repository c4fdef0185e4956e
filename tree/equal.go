package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Equal compares two trees structurally. Kinds, atom texts and the shape of
// nodes have to match; identifiers compare by their raw text only, i.e.
// hygienic names and pre-resolved candidates are ignored. Source infos are
// ignored as well.
func Equal(a, b Tree) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Atom:
		y, ok := b.(*Atom)
		return ok && x.Text == y.Text
	case *Ident:
		y, ok := b.(*Ident)
		return ok && x.Raw == y.Raw
	case *Node:
		y, ok := b.(*Node)
		if !ok || x.kind != y.kind || len(x.args) != len(y.args) {
			return false
		}
		for i := range x.args {
			if !Equal(x.args[i], y.args[i]) {
				return false
			}
		}
		return true
	case Missing:
		_, ok := b.(Missing)
		return ok
	}
	return false
}
