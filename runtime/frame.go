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

// Frames are used by the interpreter of generated code to hold variable
// bindings. Every binding creates a child frame, so frames form a chain
// from the innermost binding to the global frame. Frames below the global
// frame are never changed after construction; closures capture them.

// Frame is a memory frame, holding variables in a symbol table.
type Frame struct {
	Name        string
	Parent      *Frame
	SymbolTable *SymbolTable
}

// NewFrame creates a new memory frame.
func NewFrame(nm string, parent *Frame) *Frame {
	return &Frame{
		Name:        nm,
		Parent:      parent,
		SymbolTable: NewSymbolTable(),
	}
}

func (mf *Frame) String() string {
	return fmt.Sprintf("<frame %s (%d)>", mf.Name, mf.SymbolTable.Size())
}

// IsRoot is a predicate: Is this a root frame?
func (mf *Frame) IsRoot() bool {
	return mf.Parent == nil
}

// Define sets variable name to value v in this frame. Define is meant for
// populating global frames.
func (mf *Frame) Define(name string, v interface{}) {
	tag, _ := mf.SymbolTable.ResolveOrDefineTag(name)
	tag.UData = v
}

// Bind creates a child frame with a single variable bound to v.
func (mf *Frame) Bind(name string, v interface{}) *Frame {
	child := NewFrame(name, mf)
	child.Define(name, v)
	return child
}

// Lookup searches for a variable, starting with this frame and walking up
// the chain of parents.
func (mf *Frame) Lookup(name string) (interface{}, bool) {
	for f := mf; f != nil; f = f.Parent {
		if tag := f.SymbolTable.ResolveTag(name); tag != nil {
			return tag.UData, true
		}
	}
	return nil, false
}

// Depth is the number of frames from mf up to the root.
func (mf *Frame) Depth() int {
	d := 0
	for f := mf; f != nil; f = f.Parent {
		d++
	}
	return d
}
