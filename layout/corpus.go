package layout

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
	defaultFolder = "layout"
	variantPrefix = "layout-"
	xmlExt        = ".xml"
)

// Corpus is the name-keyed table of every default layout document.
type Corpus struct {
	Dir string

	// Variants maps a folder qualifier ("land", "sw600dp") to the layout
	// files it overrides.
	Variants map[string][]string

	docs  map[string]*Document
	order []string
}

// NewCorpus builds a corpus from already parsed documents, in the given order.
func NewCorpus(docs ...*Document) *Corpus {
	c := &Corpus{
		Variants: make(map[string][]string),
		docs:     make(map[string]*Document, len(docs)),
	}
	for _, d := range docs {
		if _, exists := c.docs[d.Name]; !exists {
			c.order = append(c.order, d.Name)
		}
		c.docs[d.Name] = d
	}
	return c
}

// Get returns the document with the given logical name.
func (c *Corpus) Get(name string) (*Document, bool) {
	d, ok := c.docs[name]
	return d, ok
}

// Names returns every layout name in load order.
func (c *Corpus) Names() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.order)
}

// LoadCorpus parses every document in <resDir>/layout and lists the
// layout-<qualifier> variant folders. Documents with locally duplicated ids
// are collected and reported together once every file has been parsed.
func LoadCorpus(resDir string, placeholders PlaceholderLookup, log *zap.SugaredLogger) (*Corpus, error) {
	entries, err := os.ReadDir(resDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read resources directory %s", resDir)
	}

	found := false
	variants := make(map[string][]string)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		switch name := e.Name(); {
		case name == defaultFolder:
			found = true
		case strings.HasPrefix(name, variantPrefix):
			files, err := listXML(filepath.Join(resDir, name))
			if err != nil {
				return nil, err
			}
			variants[strings.TrimPrefix(name, variantPrefix)] = files
		}
	}
	if !found {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrMissingRequiredFolder, "no %q folder in %s", defaultFolder, resDir),
			"resources_dir must point at an Android res/ directory")
	}

	dir := filepath.Join(resDir, defaultFolder)
	files, err := listXML(dir)
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(files))
	dups := make(map[string][]string)
	for _, file := range files {
		doc, err := parseFile(filepath.Join(dir, file), placeholders)
		if err != nil {
			return nil, err
		}
		if ids := doc.Conflicting(); len(ids) > 0 {
			dups[doc.File] = ids
		}
		for layout := range doc.MultiplyIncluded {
			log.Debugw("Layout included more than once",
				logger.FieldLayout, doc.Name,
				"included", layout)
		}
		docs = append(docs, doc)
	}
	if len(dups) > 0 {
		return nil, &errors.DuplicateIdentifierError{Documents: dups}
	}

	c := NewCorpus(docs...)
	c.Dir = dir
	c.Variants = variants

	for _, q := range sortedKeys(variants) {
		log.Debugw("Found layout variant",
			logger.FieldVariant, q,
			logger.FieldCount, len(variants[q]))
	}
	log.Infow("Parsed layouts",
		logger.FieldPath, dir,
		logger.FieldCount, c.Len())
	return c, nil
}

func parseFile(path string, placeholders PlaceholderLookup) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), xmlExt)
	return Parse(name, path, f, placeholders)
}

func listXML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", dir)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), xmlExt) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
