package strres

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/xmlstream"
)

const (
	tagResources = "resources"
	tagString    = "string"
	attrName     = "name"
)

// Formatting tags allowed inside a <string>.
var inlineTags = map[string]bool{"i": true, "b": true, "u": true}

// ParseValues reads the <string> entries of one values file into into.
// check is called for every entry before it is stored and may reject it.
// Files whose root is not <resources> contribute nothing.
func ParseValues(r io.Reader, file string, into map[string]string, check func(name, text string) error) error {
	h := &valuesHandler{file: file, into: into, check: check}
	if err := xmlstream.Parse(r, h); err != nil {
		return errors.Wrapf(err, "values %s", file)
	}
	return nil
}

type valuesHandler struct {
	file  string
	into  map[string]string
	check func(name, text string) error

	root     string
	valid    bool
	defining string
	inside   bool
	text     strings.Builder
}

func (h *valuesHandler) StartElement(name string, attrs []xmlstream.Attr) error {
	if h.root == "" {
		h.root = name
		h.valid = name == tagResources
		return nil
	}
	if !h.valid {
		return nil
	}

	if name == tagString {
		if h.inside {
			return errors.Wrapf(errors.ErrMalformedString, "<string> nested in %q at %s", h.defining, h.file)
		}
		n, ok := xmlstream.Lookup(attrs, attrName)
		if !ok {
			return errors.Wrapf(errors.ErrMalformedString, "<string> without name at %s", h.file)
		}
		h.defining = n
		h.inside = true
		h.text.Reset()
		return nil
	}

	if h.inside && !inlineTags[name] {
		return errors.Wrapf(errors.ErrMalformedString, "tag <%s> inside string %q at %s", name, h.defining, h.file)
	}
	return nil
}

func (h *valuesHandler) Characters(text string) error {
	if h.valid && h.inside {
		h.text.WriteString(text)
	}
	return nil
}

func (h *valuesHandler) EndElement(name string) error {
	if !h.valid || name != tagString {
		return nil
	}

	n, text := h.defining, h.text.String()
	h.defining, h.inside = "", false
	h.text.Reset()

	if _, dup := h.into[n]; dup {
		return errors.Wrapf(errors.ErrMalformedString, "duplicated string %q at %s", n, h.file)
	}
	if h.check != nil {
		if err := h.check(n, text); err != nil {
			return errors.Wrapf(err, "string %q at %s", n, h.file)
		}
	}
	h.into[n] = text
	return nil
}

// LoadValuesDir reads every .xml file of one values folder.
func LoadValuesDir(dir string, check func(name, text string) error) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", dir)
	}

	strs := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".xml") {
			continue
		}
		if err := parseValuesFile(filepath.Join(dir, e.Name()), strs, check); err != nil {
			return nil, err
		}
	}
	return strs, nil
}

func parseValuesFile(path string, into map[string]string, check func(name, text string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()
	return ParseValues(f, path, into, check)
}
