package iface

import "github.com/teranos/wrapgen/typesys"

// RootMember is the getter that every layout exposes for its root node.
const RootMember = "view"

// CastChecker answers assignability between qualified type names.
type CastChecker interface {
	CanCast(source, target string) bool
}

// Matcher tests resolved layouts against a fixed set of interfaces.
type Matcher struct {
	interfaces []Resolved
	caster     CastChecker
	tags       typesys.TagTable
}

// NewMatcher creates a matcher. Layout tags are qualified through tags
// before any cast check.
func NewMatcher(interfaces []Resolved, caster CastChecker, tags typesys.TagTable) *Matcher {
	return &Matcher{interfaces: interfaces, caster: caster, tags: tags}
}

// Match returns the names of every interface satisfied by a layout with the
// given root tag and exposed id types, in interface order.
func (m *Matcher) Match(rootTag string, ids map[string]string) []string {
	available := make(map[string]string, len(ids)+1)
	for id, typ := range ids {
		available[id] = typ
	}
	available[RootMember] = rootTag

	var matched []string
	for _, r := range m.interfaces {
		if m.Satisfies(r, available) {
			matched = append(matched, r.Name)
		}
	}
	return matched
}

// Satisfies reports whether every getter required by r is present in
// available with a type assignable to the declared return type.
func (m *Matcher) Satisfies(r Resolved, available map[string]string) bool {
	for member, want := range r.Requires {
		have, ok := available[member]
		if !ok {
			return false
		}
		if !m.caster.CanCast(m.tags.Qualify(have), want) {
			return false
		}
	}
	return true
}
