// Package iface loads structural interface declarations and decides which of
// them a resolved layout satisfies.
//
// Declarations live in YAML files:
//
//	interfaces:
//	  - name: com.example.Titled
//	    extends: [com.example.HasRoot]
//	    members:
//	      - name: title
//	        returns: android.widget.TextView
//	      - name: describe
//	        returns: java.lang.String
//	        default: true
package iface

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teranos/wrapgen/errors"
)

// Member is one method of an interface.
type Member struct {
	Name    string   `yaml:"name"`
	Params  []string `yaml:"params,omitempty"`
	Returns string   `yaml:"returns"`

	// Default marks a member with a body; it never counts as a requirement.
	Default bool `yaml:"default,omitempty"`
}

// Declaration is one interface as written in a declaration file.
type Declaration struct {
	Name    string   `yaml:"name"`
	Extends []string `yaml:"extends,omitempty"`
	Members []Member `yaml:"members,omitempty"`

	File string `yaml:"-"`
}

// Getters returns the required getter name to return type pairs. ok is false
// when a required member takes parameters, which excludes the interface.
func (d Declaration) Getters() (getters map[string]string, ok bool) {
	getters = make(map[string]string)
	for _, m := range d.Members {
		if m.Default {
			continue
		}
		if len(m.Params) != 0 {
			return nil, false
		}
		getters[m.Name] = m.Returns
	}
	return getters, true
}

type declarationFile struct {
	Interfaces []Declaration `yaml:"interfaces"`
}

// ParseDeclarations decodes one declaration file. Unknown keys are rejected.
func ParseDeclarations(data []byte, file string) ([]Declaration, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f declarationFile
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrapf(errors.ErrMalformedDeclaration, "%s: %v", file, err)
	}

	for i := range f.Interfaces {
		d := &f.Interfaces[i]
		d.File = file
		if err := validate(d); err != nil {
			return nil, err
		}
	}
	return f.Interfaces, nil
}

func validate(d *Declaration) error {
	if d.Name == "" {
		return errors.Wrapf(errors.ErrMalformedDeclaration, "%s: interface without a name", d.File)
	}
	seen := make(map[string]bool, len(d.Members))
	for _, m := range d.Members {
		if m.Name == "" || m.Returns == "" {
			return errors.Wrapf(errors.ErrMalformedDeclaration, "%s: %s has a member without name or return type", d.File, d.Name)
		}
		if seen[m.Name] && len(m.Params) == 0 {
			return errors.Wrapf(errors.ErrMalformedDeclaration, "%s: %s declares %s() twice", d.File, d.Name, m.Name)
		}
		if len(m.Params) == 0 {
			seen[m.Name] = true
		}
	}
	return nil
}

// LoadDir reads every .yaml and .yml file below dir. An interface name may be
// declared only once across all files.
func LoadDir(dir string) ([]Declaration, error) {
	var all []Declaration
	origin := make(map[string]string)

	err := filepath.WalkDir(dir, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}
		decls, err := ParseDeclarations(data, path)
		if err != nil {
			return err
		}
		for _, d := range decls {
			if prev, dup := origin[d.Name]; dup {
				return errors.Wrapf(errors.ErrMalformedDeclaration, "interface %s declared in %s and %s", d.Name, prev, path)
			}
			origin[d.Name] = path
			all = append(all, d)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load interfaces from %s", dir)
	}
	return all, nil
}
