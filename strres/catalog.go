package strres

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/logger"
)

const (
	defaultValues = "values"
	variantPrefix = "values-"
)

// Catalog is the set of string resources of one res directory.
type Catalog struct {
	// Defaults maps a string name to its text in the unqualified folder.
	Defaults map[string]string

	// Params maps a string name to the arguments it requires. Strings that
	// need none are absent.
	Params map[string][]ParamType

	// Variants maps a folder qualifier ("es", "fr-rCA") to its strings.
	Variants map[string]map[string]string
}

// NewCatalog builds a catalog from default strings, scanning each text.
func NewCatalog(defaults map[string]string) (*Catalog, error) {
	c := &Catalog{
		Defaults: defaults,
		Params:   make(map[string][]ParamType),
		Variants: make(map[string]map[string]string),
	}
	for name, text := range defaults {
		params, err := RequiredParams(text)
		if err != nil {
			return nil, errors.Wrapf(err, "string %q", name)
		}
		if len(params) > 0 {
			c.Params[name] = params
		}
	}
	return c, nil
}

// RequiresArguments reports whether the named string has placeholders.
func (c *Catalog) RequiresArguments(name string) bool {
	_, ok := c.Params[name]
	return ok
}

// Placeholders returns the names of every string with placeholders, sorted.
func (c *Catalog) Placeholders() []string {
	names := make([]string, 0, len(c.Params))
	for n := range c.Params {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CheckVariant verifies that a localised string exists in the defaults and
// requires the same ordered arguments.
func (c *Catalog) CheckVariant(name, text string) error {
	if _, ok := c.Defaults[name]; !ok {
		return errors.Wrapf(errors.ErrVariantMismatch, "%q has no default", name)
	}
	got, err := RequiredParams(text)
	if err != nil {
		return err
	}
	want := c.Params[name]
	if len(got) != len(want) {
		return errors.Wrapf(errors.ErrVariantMismatch, "%q requires %d arguments, default requires %d", name, len(got), len(want))
	}
	if !SameParams(got, want) {
		return errors.Wrapf(errors.ErrVariantMismatch, "%q arguments %s do not match default %s", name, join(got), join(want))
	}
	return nil
}

// Load reads <resDir>/values and every values-<qualifier> folder. A missing
// values folder yields an empty catalog.
func Load(resDir string, log *zap.SugaredLogger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	defaults := make(map[string]string)
	dir := filepath.Join(resDir, defaultValues)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		defaults, err = LoadValuesDir(dir, nil)
		if err != nil {
			return nil, err
		}
	}

	c, err := NewCatalog(defaults)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(resDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read resources directory %s", resDir)
	}
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), variantPrefix) {
			continue
		}
		q := strings.TrimPrefix(e.Name(), variantPrefix)
		strs, err := LoadValuesDir(filepath.Join(resDir, e.Name()), c.CheckVariant)
		if err != nil {
			return nil, err
		}
		c.Variants[q] = strs
		log.Debugw("Checked string variant",
			logger.FieldVariant, q,
			logger.FieldCount, len(strs))
	}

	log.Infow("Loaded string resources",
		logger.FieldCount, len(c.Defaults),
		"placeholders", len(c.Params))
	return c, nil
}

func join(params []ParamType) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = string(p)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
