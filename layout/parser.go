package layout

import (
	"io"
	"strings"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/xmlstream"
)

const (
	tagInclude  = "include"
	tagFragment = "fragment"

	attrID     = "android:id"
	attrLayout = "layout"

	prefixNewID  = "@+id/"
	prefixID     = "@id/"
	prefixLayout = "@layout/"
	prefixString = "@string/"
)

// PlaceholderLookup tells the parser which string resources need arguments.
type PlaceholderLookup interface {
	RequiresArguments(name string) bool
}

// NoPlaceholders is a PlaceholderLookup with no parameterised strings.
var NoPlaceholders PlaceholderLookup = Placeholders(nil)

// Placeholders is a PlaceholderLookup backed by a set of string names.
type Placeholders map[string]bool

// RequiresArguments implements PlaceholderLookup.
func (p Placeholders) RequiresArguments(name string) bool {
	return p[name]
}

// ValidateID checks the identifier naming rule: a lower case ASCII letter
// followed by ASCII letters and digits.
func ValidateID(id string) error {
	if id == "" {
		return errors.Wrap(errors.ErrInvalidIdentifier, "empty id")
	}
	if id[0] < 'a' || id[0] > 'z' {
		return errors.Wrapf(errors.ErrInvalidIdentifier, "id %q must start with a lower case letter", id)
	}
	for i := 1; i < len(id); i++ {
		c := id[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return errors.Wrapf(errors.ErrInvalidIdentifier, "id %q may only contain a-z, A-Z or 0-9", id)
		}
	}
	return nil
}

// Parse reads one layout document. name is the logical layout name and file
// is used in error messages.
func Parse(name, file string, r io.Reader, placeholders PlaceholderLookup) (*Document, error) {
	if placeholders == nil {
		placeholders = NoPlaceholders
	}
	h := &handler{
		doc:          newDocument(name, file),
		placeholders: placeholders,
	}
	if err := xmlstream.Parse(r, h); err != nil {
		return nil, errors.Wrapf(err, "layout %s", file)
	}
	return h.doc, nil
}

type handler struct {
	doc          *Document
	placeholders PlaceholderLookup

	// open holds the id of every open element, "" when it has none.
	open []string
}

func (h *handler) StartElement(name string, attrs []xmlstream.Attr) error {
	if h.doc.RootTag == "" {
		h.doc.RootTag = name
	}

	switch name {
	case tagFragment:
		h.open = append(h.open, "")
		return nil

	case tagInclude:
		id := idFromAttrs(attrs)
		var layout string
		if v, ok := xmlstream.Lookup(attrs, attrLayout); ok && strings.HasPrefix(v, prefixLayout) {
			layout = v[len(prefixLayout):]
		}
		if layout != "" {
			h.doc.include(layout)
			if id != "" {
				if err := h.register(id, IncludeType{Layout: layout}); err != nil {
					return err
				}
			}
		}
		h.open = append(h.open, id)
		return nil
	}

	for _, a := range attrs {
		if strings.HasPrefix(a.Value, prefixString) && h.placeholders.RequiresArguments(a.Value[len(prefixString):]) {
			return errors.WithHint(
				errors.Wrapf(errors.ErrPlaceholderNotAllowed, "%s on <%s> in %s", a.Value, name, h.doc.File),
				"this string requires placeholder arguments and must be set from code")
		}
	}

	id := idFromAttrs(attrs)
	if id != "" {
		if err := h.register(id, ViewType{Tag: name}); err != nil {
			return err
		}
	}
	h.open = append(h.open, id)
	return nil
}

func (h *handler) EndElement(string) error {
	h.open = h.open[:len(h.open)-1]
	return nil
}

func (h *handler) Characters(string) error { return nil }

func (h *handler) register(id string, t Type) error {
	if err := ValidateID(id); err != nil {
		return errors.Wrapf(err, "in %s", h.doc.File)
	}
	h.doc.register(id, t, h.wrapper())
	return nil
}

// wrapper returns the innermost identified open element. Direct children of
// the root element are wrapped by the root itself.
func (h *handler) wrapper() string {
	if len(h.open) < 2 {
		return ""
	}
	for i := len(h.open) - 1; i >= 0; i-- {
		if h.open[i] != "" {
			return h.open[i]
		}
	}
	return ""
}

func idFromAttrs(attrs []xmlstream.Attr) string {
	v, ok := xmlstream.Lookup(attrs, attrID)
	if !ok {
		return ""
	}
	switch {
	case strings.HasPrefix(v, prefixNewID):
		return v[len(prefixNewID):]
	case strings.HasPrefix(v, prefixID):
		return v[len(prefixID):]
	}
	return ""
}
