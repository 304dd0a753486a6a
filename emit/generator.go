// Package emit renders resolved layouts as source files.
//
// A Generator turns one Layout into the text of one file. Rendering is
// deterministic: ids keep their walk order and interfaces are sorted, so
// regenerating an unchanged project produces identical bytes.
package emit

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/resolve"
	"github.com/teranos/wrapgen/typesys"
)

// Generator renders wrapper sources for one target language.
type Generator interface {
	// Language returns the language name (e.g. "java")
	Language() string

	// FileExtension returns the extension of generated files, without dot
	FileExtension() string

	// TypeName returns the name of the wrapper type generated for a layout
	TypeName(layout string) string

	// GenerateFile renders the complete source of one wrapper
	GenerateFile(l *Layout) string
}

// Layout is a resolved layout with every type name fully qualified.
type Layout struct {
	Name     string
	RootType string

	IDs      []string
	Types    map[string]string
	Wrappers map[string]string

	// Interfaces holds the matched interfaces, sorted.
	Interfaces []string
}

// FromModel qualifies the types of m through tags.
func FromModel(m *resolve.Model, interfaces []string, tags typesys.TagTable) *Layout {
	l := &Layout{
		Name:       m.Layout,
		RootType:   tags.Qualify(m.RootTag),
		IDs:        append([]string(nil), m.IDs...),
		Types:      make(map[string]string, len(m.Types)),
		Wrappers:   make(map[string]string, len(m.Wrappers)),
		Interfaces: append([]string(nil), interfaces...),
	}
	for id, t := range m.Types {
		l.Types[id] = tags.Qualify(t)
	}
	for id, w := range m.Wrappers {
		l.Wrappers[id] = w
	}
	sort.Strings(l.Interfaces)
	return l
}

// PackageDir returns the directory of a dotted package below root.
func PackageDir(root, pkg string) string {
	parts := append([]string{root}, strings.Split(pkg, ".")...)
	return filepath.Join(parts...)
}

// FileName returns the file name generated for a layout.
func FileName(g Generator, layout string) string {
	return g.TypeName(layout) + "." + g.FileExtension()
}

// WriteLayouts renders every layout into dir, creating it if needed, and
// returns the written file names.
func WriteLayouts(g Generator, dir string, layouts []*Layout) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	written := make([]string, 0, len(layouts))
	for _, l := range layouts {
		name := FileName(g, l.Name)
		if err := os.WriteFile(filepath.Join(dir, name), []byte(g.GenerateFile(l)), 0o644); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", name)
		}
		written = append(written, name)
	}
	return written, nil
}
