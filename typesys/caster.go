package typesys

// DefaultTopType is the universal supertype every known type can be cast to.
const DefaultTopType = "java.lang.Object"

// Caster decides whether a value of one type can be used where another is
// expected. Supertype sets are computed once per source type and kept for
// the lifetime of the Caster.
type Caster struct {
	hierarchy *Hierarchy
	known     map[string]string
	top       string

	supers  map[string][]string
	missing map[string]bool
}

// CasterOption configures a Caster.
type CasterOption func(*Caster)

// WithTopType overrides the universal supertype.
func WithTopType(name string) CasterOption {
	return func(c *Caster) {
		if name != "" {
			c.top = name
		}
	}
}

// WithKnownCasts installs overrides mapping a type directly to a single
// supertype. An override replaces whatever the hierarchy declares for that
// type.
func WithKnownCasts(known map[string]string) CasterOption {
	return func(c *Caster) {
		for src, dst := range known {
			c.known[src] = dst
		}
	}
}

// NewCaster creates a Caster over h.
func NewCaster(h *Hierarchy, opts ...CasterOption) *Caster {
	if h == nil {
		h = NewHierarchy()
	}
	c := &Caster{
		hierarchy: h,
		known:     make(map[string]string),
		top:       DefaultTopType,
		supers:    make(map[string][]string),
		missing:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TopType returns the universal supertype.
func (c *Caster) TopType() string {
	return c.top
}

// CanCast reports whether source is assignable to target. Unknown source
// types are never assignable to anything but themselves.
func (c *Caster) CanCast(source, target string) bool {
	if source == target {
		return true
	}
	if source == c.top {
		return false
	}
	supers, ok := c.Supertypes(source)
	if !ok {
		return false
	}
	for _, s := range supers {
		if c.CanCast(s, target) {
			return true
		}
	}
	return false
}

// Supertypes returns the direct supertypes of source, including the top
// type. ok is false when source is unknown.
func (c *Caster) Supertypes(source string) (supers []string, ok bool) {
	if s, cached := c.supers[source]; cached {
		return s, true
	}
	if c.missing[source] {
		return nil, false
	}

	if dst, overridden := c.known[source]; overridden {
		supers = []string{dst}
	} else if d, declared := c.hierarchy.Lookup(source); declared {
		supers = d.Bases()
	} else {
		c.missing[source] = true
		return nil, false
	}

	supers = append(supers, c.top)
	c.supers[source] = supers
	return supers, true
}
