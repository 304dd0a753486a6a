package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/wrapgen/errors"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "WRAPGEN"

// Load reads the configuration at path, or the nearest wrapgen.toml above
// the working directory when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get working directory")
		}
		path = Find(wd)
		if path == "" {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrMalformedConfiguration, "no %s found in %s or its parents", FileName, wd),
				"run `wrapgen init` to create one")
		}
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedConfiguration, "failed to read config file %s: %v", path, err)
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}
	cfg.Path = abs
	cfg.resolvePaths(filepath.Dir(abs))
	return cfg, nil
}

// LoadWithViper unmarshals a configuration from a prepared Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedConfiguration, "failed to unmarshal config: %v", err)
	}
	return &cfg, nil
}

// Find searches for wrapgen.toml starting at dir and walking up the
// directory tree. It returns an empty string when none is found.
func Find(dir string) string {
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Dir returns the directory of the configuration file.
func (c *Config) Dir() string {
	if c.Path == "" {
		return "."
	}
	return filepath.Dir(c.Path)
}

func (c *Config) resolvePaths(base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	c.ResourcesDir = abs(c.ResourcesDir)
	c.InterfacesDir = abs(c.InterfacesDir)
	c.OutputDir = abs(c.OutputDir)
	for i, f := range c.HierarchyFiles {
		c.HierarchyFiles[i] = abs(f)
	}
}
