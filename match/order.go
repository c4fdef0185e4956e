package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/quasi/tree"
)

// Generalizes is true if every discriminant h's test accepts is also
// accepted by other's test, i.e. other is at least as specific as h.
//
//    any      generalizes everything
//    k        generalizes k and k/n
//    k/n      generalizes k/n
//    scope S  generalizes scope S' iff S and S' are structurally equal
//
// The relation is reflexive, but not total.
func (h *HeadInfo) Generalizes(other *HeadInfo) bool {
	switch {
	case h.Scope != nil:
		return other.Scope != nil && tree.Equal(h.Scope, other.Scope)
	case h.Kind == "":
		return true
	case other.Scope != nil || other.Kind != h.Kind:
		return false
	case !h.HasArgs:
		return true
	}
	return other.HasArgs && len(other.ArgPats) == len(h.ArgPats)
}

// pivot selects a minimal classification by a left fold: the current
// candidate is replaced by any later one it generalizes. For pairwise
// incomparable candidates the leftmost one wins.
func pivot(infos []*HeadInfo) *HeadInfo {
	p := infos[0]
	for _, info := range infos[1:] {
		if p.Generalizes(info) {
			p = info
		}
	}
	return p
}
