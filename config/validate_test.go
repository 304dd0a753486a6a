package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/version"
)

func validConfig() *Config {
	cfg := Default()
	cfg.PackageName = "com.example.notes.layout"
	cfg.ResourceClass = "com.example.notes.R"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"default is valid", func(c *Config) {}, ""},
		{"short R is invalid", func(c *Config) { c.ResourceClass = ".R" }, "resource_class"},
		{"bare R is invalid", func(c *Config) { c.ResourceClass = "R" }, "resource_class"},
		{"not R", func(c *Config) { c.ResourceClass = "com.example.Resources" }, "resource_class"},
		{"lowercase r", func(c *Config) { c.ResourceClass = "com.example.r" }, "resource_class"},
		{"empty package", func(c *Config) { c.PackageName = "" }, "package_name"},
		{"empty package segment", func(c *Config) { c.PackageName = "com..example" }, "empty segment"},
		{"empty layout interface", func(c *Config) { c.LayoutInterface = " " }, "layout_interface"},
		{"empty output", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"zero debounce is valid", func(c *Config) { c.Watch.DebounceMS = 0 }, ""},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMS = -1 }, "debounce_ms"},
		{"negative rate", func(c *Config) { c.Watch.MaxPerMinute = -5 }, "max_per_minute"},
		{"half known cast", func(c *Config) { c.KnownCasts = []KnownCast{{Type: "a.B"}} }, "known_casts"},
		{"half implicit tag", func(c *Config) { c.ImplicitTags = []ImplicitTag{{Type: "a.B"}} }, "implicit_tags"},
		{"bad version constraint", func(c *Config) { c.RequiredVersion = "soon" }, "required_version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.True(t, errors.Is(err, errors.ErrMalformedConfiguration))
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiredVersion(t *testing.T) {
	saved := version.Version
	t.Cleanup(func() { version.Version = saved })

	version.Version = "0.2.0"
	cfg := validConfig()
	cfg.RequiredVersion = ">= 0.3"
	err := cfg.Validate()
	assert.True(t, errors.Is(err, errors.ErrMalformedConfiguration))
	assert.NotEmpty(t, errors.GetAllHints(err))

	version.Version = "0.3.2"
	assert.NoError(t, cfg.Validate())
}
