// Package typesys answers assignability questions between named types.
//
// Type ancestry comes from a static table loaded from TOML files rather than
// from introspecting compiled classes:
//
//	[types."android.widget.Button"]
//	extends = "android.widget.TextView"
//	implements = ["android.widget.Checkable"]
package typesys

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/teranos/wrapgen/errors"
)

//go:embed android.toml
var builtinAndroid string

// Decl is the declared ancestry of one type.
type Decl struct {
	Extends    string   `toml:"extends"`
	Implements []string `toml:"implements"`
}

// Bases returns the direct supertypes, superclass first.
func (d Decl) Bases() []string {
	bases := make([]string, 0, len(d.Implements)+1)
	if d.Extends != "" {
		bases = append(bases, d.Extends)
	}
	return append(bases, d.Implements...)
}

type hierarchyFile struct {
	Types map[string]Decl `toml:"types"`
}

// Hierarchy is a table of type name to declared ancestry.
type Hierarchy struct {
	types map[string]Decl
}

// NewHierarchy returns an empty table.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{types: make(map[string]Decl)}
}

// Builtin returns the table of framework view types shipped with wrapgen.
func Builtin() *Hierarchy {
	h := NewHierarchy()
	if err := h.decode(builtinAndroid, "builtin android.toml"); err != nil {
		panic(err)
	}
	return h
}

// LoadHierarchy merges the given files into one table. Later files override
// entries of earlier ones.
func LoadHierarchy(base *Hierarchy, paths ...string) (*Hierarchy, error) {
	h := NewHierarchy()
	if base != nil {
		h.Merge(base)
	}
	for _, path := range paths {
		var f hierarchyFile
		md, err := toml.DecodeFile(path, &f)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrMalformedDeclaration, "hierarchy %s: %v", path, err)
		}
		if err := checkUndecoded(md, path); err != nil {
			return nil, err
		}
		h.add(f.Types)
	}
	return h, nil
}

// Add declares a type.
func (h *Hierarchy) Add(name string, d Decl) {
	h.types[name] = d
}

// Merge copies every entry of other into h.
func (h *Hierarchy) Merge(other *Hierarchy) {
	h.add(other.types)
}

// Lookup returns the declared ancestry of name.
func (h *Hierarchy) Lookup(name string) (Decl, bool) {
	d, ok := h.types[name]
	return d, ok
}

// Names returns every declared type name, sorted.
func (h *Hierarchy) Names() []string {
	names := make([]string, 0, len(h.types))
	for n := range h.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (h *Hierarchy) add(types map[string]Decl) {
	for name, d := range types {
		h.types[name] = d
	}
}

func (h *Hierarchy) decode(data, source string) error {
	var f hierarchyFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return errors.Wrapf(errors.ErrMalformedDeclaration, "hierarchy %s: %v", source, err)
	}
	if err := checkUndecoded(md, source); err != nil {
		return err
	}
	h.add(f.Types)
	return nil
}

func checkUndecoded(md toml.MetaData, source string) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		keys = append(keys, k.String())
	}
	return errors.Wrapf(errors.ErrMalformedDeclaration, "hierarchy %s: unknown keys %s", source, strings.Join(keys, ", "))
}
