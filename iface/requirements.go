package iface

import (
	"sort"

	"go.uber.org/zap"

	"github.com/teranos/wrapgen/logger"
)

// Resolved is an interface with the full set of getters it requires,
// including those inherited from the interfaces it extends.
type Resolved struct {
	Name     string
	Requires map[string]string
}

// Members returns the required getter names, sorted.
func (r Resolved) Members() []string {
	names := make([]string, 0, len(r.Requires))
	for n := range r.Requires {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type entry struct {
	extends []string
	getters map[string]string
}

// Table holds every getter-only interface. Interfaces with any required
// member that takes parameters are left out.
type Table struct {
	entries  map[string]entry
	order    []string
	excluded []string
}

// NewTable builds the requirement table from declarations.
func NewTable(decls []Declaration, log *zap.SugaredLogger) *Table {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	t := &Table{entries: make(map[string]entry, len(decls))}
	for _, d := range decls {
		getters, ok := d.Getters()
		if !ok {
			log.Debugw("Interface has members with parameters, skipping",
				logger.FieldInterface, d.Name,
				logger.FieldFile, d.File)
			t.excluded = append(t.excluded, d.Name)
			continue
		}
		t.entries[d.Name] = entry{extends: d.Extends, getters: getters}
		t.order = append(t.order, d.Name)
	}
	sort.Strings(t.order)
	sort.Strings(t.excluded)
	return t
}

// Has reports whether name is a getter-only interface of the table.
func (t *Table) Has(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Excluded returns the declared interfaces that are not getter-only, sorted.
func (t *Table) Excluded() []string {
	return t.excluded
}

// Resolve merges into out every getter required by name and by the
// interfaces it extends, parents first. It returns false when name or any
// interface in its extension chain is missing from the table.
func (t *Table) Resolve(name string, out map[string]string) bool {
	return t.resolve(name, out, make(map[string]bool))
}

func (t *Table) resolve(name string, out map[string]string, visiting map[string]bool) bool {
	e, ok := t.entries[name]
	if !ok || visiting[name] {
		return false
	}
	visiting[name] = true
	defer delete(visiting, name)

	for _, parent := range e.extends {
		if !t.resolve(parent, out, visiting) {
			return false
		}
	}
	for member, typ := range e.getters {
		out[member] = typ
	}
	return true
}

// ResolveAll resolves every interface of the table, sorted by name. Names of
// interfaces that could not be resolved are returned separately.
func (t *Table) ResolveAll() (resolved []Resolved, dropped []string) {
	for _, name := range t.order {
		requires := make(map[string]string)
		if !t.Resolve(name, requires) {
			dropped = append(dropped, name)
			continue
		}
		resolved = append(resolved, Resolved{Name: name, Requires: requires})
	}
	return resolved, dropped
}
