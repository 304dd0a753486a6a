// Package layout parses layout documents into identifier tables.
//
// A Document records, for one file, the root tag, every identified node with
// its Type, the nearest identified ancestor of each node (its wrapper), the
// sub-layouts it includes and the ids that were declared more than once.
package layout

import "sort"

// Type is the declared type of an identified node.
type Type interface {
	isType()
}

// ViewType is a node declared directly with its tag.
type ViewType struct {
	Tag string
}

// IncludeType is an identified <include>; its type is the root type of Layout.
type IncludeType struct {
	Layout string
}

func (ViewType) isType()    {}
func (IncludeType) isType() {}

// Document is the parse result of one layout file. It is not modified after
// parsing.
type Document struct {
	Name    string
	File    string
	RootTag string

	// IDs holds the surviving identifiers in declaration order.
	IDs   []string
	Types map[string]Type

	// Wrappers maps an id to its nearest enclosing identified node. Absent
	// means the document root.
	Wrappers map[string]string

	// Includes lists every referenced sub-layout once, in first-seen order.
	Includes         []string
	MultiplyIncluded map[string]bool

	conflicting map[string]bool
}

func newDocument(name, file string) *Document {
	return &Document{
		Name:             name,
		File:             file,
		Types:            make(map[string]Type),
		Wrappers:         make(map[string]string),
		MultiplyIncluded: make(map[string]bool),
		conflicting:      make(map[string]bool),
	}
}

// Conflicting returns the locally duplicated ids, sorted.
func (d *Document) Conflicting() []string {
	ids := make([]string, 0, len(d.conflicting))
	for id := range d.conflicting {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsConflicting reports whether id was declared more than once in d.
func (d *Document) IsConflicting(id string) bool {
	return d.conflicting[id]
}

// Wrapper returns the recorded wrapping owner of id.
func (d *Document) Wrapper(id string) (string, bool) {
	w, ok := d.Wrappers[id]
	return w, ok
}

func (d *Document) register(id string, t Type, wrapper string) {
	if d.conflicting[id] {
		return
	}
	if _, seen := d.Types[id]; seen {
		d.conflicting[id] = true
		delete(d.Types, id)
		delete(d.Wrappers, id)
		for i, existing := range d.IDs {
			if existing == id {
				d.IDs = append(d.IDs[:i], d.IDs[i+1:]...)
				break
			}
		}
		return
	}

	d.IDs = append(d.IDs, id)
	d.Types[id] = t
	if wrapper != "" {
		d.Wrappers[id] = wrapper
	}
}

func (d *Document) include(layout string) {
	for _, existing := range d.Includes {
		if existing == layout {
			d.MultiplyIncluded[layout] = true
			return
		}
	}
	d.Includes = append(d.Includes, layout)
}
