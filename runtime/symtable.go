package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Symbol tables for global declarations and for frame variables. Symbol
// tables are attached to scopes. Scopes are organized in a tree.

// --- Tags ------------------------------------------------------------------

// Tag is the symbol type stored into symbol tables. Declarations in a name
// table carry their fully qualified name as user data; variables of a frame
// carry their value.
type Tag struct {
	name  string
	UData interface{} // user data
}

func newTag(nm string) *Tag {
	return &Tag{name: nm}
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s'>", s.name)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{Table: make(map[string]*Tag)}
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// ResolveOrDefineTag finds a tag in the table, inserts a new one if not
// found. Returns the tag and a flag, signalling wether the tag has already
// been present.
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	if tag := t.ResolveTag(tagname); tag != nil {
		return tag, true
	}
	tag, _ := t.DefineTag(tagname)
	return tag, false
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty.
// Overwrites an existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := newTag(tagname)
	old := t.insertTag(tag)
	return tag, old
}

func (t *SymbolTable) insertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	t.Table[tag.name] = tag
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each tag in the table, executing a mapper function.
// Iteration order is unspecified.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	for k, v := range t.Table {
		mapper(k, v)
	}
}

// === Scopes ================================================================

// Scope is a named scope, which may contain symbol definitions. Scopes link
// back to a parent scope, forming a tree. For name tables, scopes are
// namespaces and Name is the fully qualified namespace name.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	return &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
}

func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// DefineTag defines a tag in the scope. Returns the new tag and the previously
// stored tag under this key, if any.
func (s *Scope) DefineTag(tagname string) (*Tag, *Tag) {
	return s.symtab.DefineTag(tagname)
}

// ResolveTag finds a tag. Returns the tag (or nil) and a scope. The scope is
// the scope (of a scope-tree-path) the tag was found in.
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	for ; s != nil; s = s.Parent {
		if tag := s.symtab.ResolveTag(tagname); tag != nil {
			return tag, s
		}
	}
	return nil, nil
}

// Path returns the scope and all of its ancestors, innermost first.
func (s *Scope) Path() []*Scope {
	var path []*Scope
	for ; s != nil; s = s.Parent {
		path = append(path, s)
	}
	return path
}
