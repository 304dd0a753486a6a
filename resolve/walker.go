// Package resolve flattens a layout and its transitive includes into one
// identifier table.
//
// Every id declared anywhere in the include tree is attributed a type and a
// wrapping owner. An id declared more than once across the tree is excluded
// and recorded as a conflict for the whole walk of that root layout.
package resolve

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/layout"
	"github.com/teranos/wrapgen/logger"
)

// Model is the flattened identifier table of one root layout.
type Model struct {
	Layout  string
	RootTag string

	// IDs lists the exposed identifiers in walk order.
	IDs   []string
	Types map[string]string

	// Wrappers maps an exposed id to the accessor that scopes its lookup.
	// Absent means the layout root.
	Wrappers map[string]string

	// Conflicts holds every id excluded because it was declared more than
	// once in the include tree, sorted.
	Conflicts []string
}

// TypeOf returns the type name of an exposed id.
func (m *Model) TypeOf(id string) (string, bool) {
	t, ok := m.Types[id]
	return t, ok
}

// Walker resolves layouts of one corpus.
type Walker struct {
	corpus *layout.Corpus
	log    *zap.SugaredLogger
	strict bool
}

// Option configures a Walker.
type Option func(*Walker)

// WithStrictConflicts makes any conflict found during a walk fatal.
func WithStrictConflicts(strict bool) Option {
	return func(w *Walker) {
		w.strict = strict
	}
}

// NewWalker creates a walker over corpus.
func NewWalker(corpus *layout.Corpus, log *zap.SugaredLogger, opts ...Option) *Walker {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	w := &Walker{corpus: corpus, log: log}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Resolve walks the named layout and everything it includes.
func (w *Walker) Resolve(name string) (*Model, error) {
	acc := newAccumulator()
	st := &walk{
		corpus:    w.corpus,
		conflicts: make(map[string]bool),
		seen:      make(map[string]bool),
	}

	root, err := st.visit(name, acc, "")
	if err != nil {
		return nil, err
	}

	m := &Model{
		Layout:   name,
		RootTag:  root,
		Types:    make(map[string]string),
		Wrappers: make(map[string]string),
	}
	for _, id := range acc.order {
		if st.conflicts[id] {
			continue
		}
		m.IDs = append(m.IDs, id)
		m.Types[id] = acc.types[id]
		if wrap, ok := acc.wraps[id]; ok {
			m.Wrappers[id] = wrap
		}
	}
	for id := range st.conflicts {
		m.Conflicts = append(m.Conflicts, id)
	}
	sort.Strings(m.Conflicts)

	if len(m.Conflicts) > 0 {
		if w.strict {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrIncludeConflict, "layout %s: ids %s", name, strings.Join(m.Conflicts, ", ")),
				"rename the ids or disable strict_include_conflicts")
		}
		w.log.Warnw("Ids declared more than once across includes are not exposed",
			logger.FieldLayout, name,
			"ids", strings.Join(m.Conflicts, ", "))
	}
	return m, nil
}

// ResolveAll resolves every layout of the corpus, in corpus order.
func (w *Walker) ResolveAll() ([]*Model, error) {
	models := make([]*Model, 0, w.corpus.Len())
	for _, name := range w.corpus.Names() {
		m, err := w.Resolve(name)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

// walk is the state of one Resolve call.
type walk struct {
	corpus    *layout.Corpus
	conflicts map[string]bool
	// seen holds every id claimed anywhere in the tree, exposed or not
	seen   map[string]bool
	active []string
}

// visit folds the ids of the named layout into acc and returns its root tag.
// A nil acc walks the layout for conflicts only. enclosing is the id of the
// include that pulled the layout in, if any.
func (s *walk) visit(name string, acc *accumulator, enclosing string) (string, error) {
	doc, ok := s.corpus.Get(name)
	if !ok {
		return "", errors.Wrapf(errors.ErrUnknownLayout, "layout %q", name)
	}
	for i, open := range s.active {
		if open == name {
			cycle := append(append([]string(nil), s.active[i:]...), name)
			return "", errors.Wrapf(errors.ErrIncludeCycle, "%s", strings.Join(cycle, " -> "))
		}
	}
	s.active = append(s.active, name)
	defer func() { s.active = s.active[:len(s.active)-1] }()

	attributed := make(map[string]bool)
	for _, id := range doc.IDs {
		var candidate string
		switch t := doc.Types[id].(type) {
		case layout.ViewType:
			candidate = t.Tag
		case layout.IncludeType:
			attributed[t.Layout] = true
			root, err := s.visit(t.Layout, acc, id)
			if err != nil {
				return "", errors.Wrapf(err, "included from %s", name)
			}
			candidate = root
		}
		s.claim(acc, doc, id, candidate, enclosing)
	}

	// Ids of anonymous includes are never exposed but still collide.
	for _, sub := range doc.Includes {
		if attributed[sub] {
			continue
		}
		if _, err := s.visit(sub, nil, enclosing); err != nil {
			return "", errors.Wrapf(err, "included from %s", name)
		}
	}

	return doc.RootTag, nil
}

func (s *walk) claim(acc *accumulator, doc *layout.Document, id, typ, enclosing string) {
	if s.seen[id] {
		if acc != nil {
			acc.remove(id)
		}
		s.conflicts[id] = true
		return
	}
	s.seen[id] = true
	if acc == nil {
		return
	}
	wrap, ok := doc.Wrapper(id)
	if !ok {
		wrap = enclosing
	}
	acc.put(id, typ, wrap)
}

// accumulator is an insertion-ordered id table.
type accumulator struct {
	order []string
	types map[string]string
	wraps map[string]string
}

func newAccumulator() *accumulator {
	return &accumulator{
		types: make(map[string]string),
		wraps: make(map[string]string),
	}
}

func (a *accumulator) put(id, typ, wrap string) {
	a.order = append(a.order, id)
	a.types[id] = typ
	if wrap != "" {
		a.wraps[id] = wrap
	}
}

func (a *accumulator) remove(id string) {
	delete(a.types, id)
	delete(a.wraps, id)
	for i, existing := range a.order {
		if existing == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			return
		}
	}
}
