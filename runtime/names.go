package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"gopkg.in/yaml.v3"
)

// NameTable holds the global declarations visible to a compilation unit.
// Declarations live in namespaces, which form a scope tree rooted in the
// anonymous namespace. Identifiers are resolved relative to the current
// namespace, its ancestors and the opened namespaces.
type NameTable struct {
	root       *Scope
	current    *Scope
	namespaces map[string]*Scope
	open       []*Scope
}

// NewNameTable creates an empty name table with the root namespace current.
func NewNameTable() *NameTable {
	root := NewScope("", nil)
	return &NameTable{
		root:       root,
		current:    root,
		namespaces: map[string]*Scope{"": root},
	}
}

func splitName(full string) (string, string) {
	if i := strings.LastIndex(full, "."); i > 0 && i < len(full)-1 {
		return full[:i], full[i+1:]
	}
	return "", full
}

func joinName(ns, local string) string {
	switch {
	case ns == "":
		return local
	case local == "":
		return ns
	}
	return ns + "." + local
}

// namespace returns the scope for a namespace, creating it and all of its
// ancestors on demand.
func (nt *NameTable) namespace(ns string) *Scope {
	if sc, ok := nt.namespaces[ns]; ok {
		return sc
	}
	parent, _ := splitName(ns)
	sc := NewScope(ns, nt.namespace(parent))
	nt.namespaces[ns] = sc
	return sc
}

// Declare declares a fully qualified global name, e.g. "List.map".
func (nt *NameTable) Declare(fullname string) *Tag {
	ns, local := splitName(fullname)
	tag, _ := nt.namespace(ns).DefineTag(local)
	tag.UData = fullname
	tracer().Debugf("declare %s", fullname)
	return tag
}

// Enter makes namespace ns the current namespace.
func (nt *NameTable) Enter(ns string) {
	nt.current = nt.namespace(ns)
}

// Open opens namespace ns, making its declarations visible unqualified.
func (nt *NameTable) Open(ns string) {
	sc := nt.namespace(ns)
	for _, o := range nt.open {
		if o == sc {
			return
		}
	}
	nt.open = append(nt.open, sc)
}

// Resolve resolves identifier text to global names. Candidates are searched
// in the current namespace and its ancestors, innermost first, then in the
// opened namespaces. The first candidate found is the primary one; the list
// of all candidates is sorted and free of duplicates. If nothing resolves,
// Resolve returns "" and nil.
func (nt *NameTable) Resolve(text string) (string, []string) {
	primary := ""
	found := treeset.NewWith(utils.StringComparator)
	add := func(full string) {
		if primary == "" {
			primary = full
		}
		found.Add(full)
	}
	ns, local := splitName(text)
	scopes := append(nt.current.Path(), nt.open...)
	for _, sc := range scopes {
		qualified := nt.namespaces[joinName(sc.Name, ns)]
		if qualified == nil {
			continue
		}
		if tag := qualified.Tags().ResolveTag(local); tag != nil {
			add(tag.UData.(string))
		}
	}
	if found.Empty() {
		return "", nil
	}
	all := make([]string, 0, found.Size())
	for _, v := range found.Values() {
		all = append(all, v.(string))
	}
	return primary, all
}

// Declarations lists the fully qualified names of all declarations, sorted.
func (nt *NameTable) Declarations() []string {
	if nt == nil {
		return nil
	}
	decls := treeset.NewWith(utils.StringComparator)
	for _, sc := range nt.namespaces {
		sc.Tags().Each(func(_ string, tag *Tag) {
			decls.Add(tag.UData.(string))
		})
	}
	names := make([]string, 0, decls.Size())
	for _, v := range decls.Values() {
		names = append(names, v.(string))
	}
	return names
}

// Size is the number of declarations.
func (nt *NameTable) Size() int {
	n := 0
	for _, sc := range nt.namespaces {
		n += sc.Tags().Size()
	}
	return n
}

// nameTableConfig is the document format of name tables:
//
//    namespace: Demo
//    open: [List]
//    declarations:
//      - Demo.f
//      - List.map
//
type nameTableConfig struct {
	Namespace    string   `yaml:"namespace"`
	Open         []string `yaml:"open"`
	Declarations []string `yaml:"declarations"`
}

// LoadNameTable reads a YAML name table document.
func LoadNameTable(r io.Reader) (*NameTable, error) {
	var conf nameTableConfig
	if err := yaml.NewDecoder(r).Decode(&conf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("cannot read name table: %w", err)
	}
	nt := NewNameTable()
	for _, d := range conf.Declarations {
		if d == "" || strings.HasPrefix(d, ".") || strings.HasSuffix(d, ".") {
			return nil, fmt.Errorf("invalid declaration %q in name table", d)
		}
		nt.Declare(d)
	}
	nt.Enter(conf.Namespace)
	for _, ns := range conf.Open {
		nt.Open(ns)
	}
	tracer().Infof("loaded name table with %d declarations", nt.Size())
	return nt, nil
}
