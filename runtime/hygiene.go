package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// ScopeTag is a macro scope. Tags are positive; 0 is never minted.
type ScopeTag uint64

func (tag ScopeTag) String() string {
	return strconv.FormatUint(uint64(tag), 10)
}

// Counter mints fresh macro scopes. It is safe for concurrent use.
type Counter struct {
	last uint64
}

// Next returns a macro scope which has never been returned before by c.
func (c *Counter) Next() ScopeTag {
	return ScopeTag(atomic.AddUint64(&c.last, 1))
}

// GlobalCounter is the process-wide source of macro scopes.
var GlobalCounter = &Counter{}

const (
	scopeMarker = "._@."
	hygMarker   = "._hyg."
)

// AddMacroScope adds macro scope tag to name, in the context of module.
// The result has the form
//
//    name._@.module._hyg.tag
//
// Adding a further scope of the same module appends the tag, as in
// `x._@.M._hyg.3.7`.
func AddMacroScope(module, name string, tag ScopeTag) string {
	if i := strings.Index(name, scopeMarker); i >= 0 {
		rest := name[i+len(scopeMarker):]
		if j := strings.LastIndex(rest, hygMarker); j >= 0 && rest[:j] == module {
			return name + "." + tag.String()
		}
		tracer().Debugf("macro scope of different module for %q", name)
		return name[:i] + scopeMarker + module + hygMarker + tag.String()
	}
	return name + scopeMarker + module + hygMarker + tag.String()
}

// HasMacroScopes is true if name carries at least one macro scope.
func HasMacroScopes(name string) bool {
	return strings.Contains(name, scopeMarker)
}

// EraseMacroScopes strips all macro scopes from name.
func EraseMacroScopes(name string) string {
	if i := strings.Index(name, scopeMarker); i >= 0 {
		return name[:i]
	}
	return name
}

// MacroScopes returns the macro scopes of name, oldest first.
func MacroScopes(name string) []ScopeTag {
	i := strings.LastIndex(name, hygMarker)
	if i < 0 {
		return nil
	}
	var tags []ScopeTag
	for _, s := range strings.Split(name[i+len(hygMarker):], ".") {
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			tags = append(tags, ScopeTag(n))
		}
	}
	return tags
}
