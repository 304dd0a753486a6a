package config

import (
	"strings"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/version"
)

// Validate checks that the configuration is usable for a generation run
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"package_name", c.PackageName},
		{"layout_interface", c.LayoutInterface},
		{"resource_class", c.ResourceClass},
		{"ensure_non_null_function", c.EnsureNonNullFunction},
		{"resources_dir", c.ResourcesDir},
		{"interfaces_dir", c.InterfacesDir},
		{"output_dir", c.OutputDir},
		{"top_type", c.TopType},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Wrapf(errors.ErrMalformedConfiguration, "%s cannot be empty", r.key)
		}
	}

	if len(c.ResourceClass) <= 2 || !strings.HasSuffix(c.ResourceClass, ".R") {
		return errors.WithHint(
			errors.Wrapf(errors.ErrMalformedConfiguration, "resource_class %q is not a qualified reference to a class named R", c.ResourceClass),
			`use the application's R class, e.g. "com.example.app.R"`)
	}

	for _, part := range strings.Split(c.PackageName, ".") {
		if part == "" {
			return errors.Wrapf(errors.ErrMalformedConfiguration, "package_name %q has an empty segment", c.PackageName)
		}
	}

	for _, kc := range c.KnownCasts {
		if kc.Type == "" || kc.Cast == "" {
			return errors.Wrapf(errors.ErrMalformedConfiguration, "known_casts entries need both type and cast, got %+v", kc)
		}
	}
	for _, it := range c.ImplicitTags {
		if it.Tag == "" || it.Type == "" {
			return errors.Wrapf(errors.ErrMalformedConfiguration, "implicit_tags entries need both tag and type, got %+v", it)
		}
	}

	// 0 disables debouncing, negative is invalid
	if c.Watch.DebounceMS < 0 {
		return errors.Wrapf(errors.ErrMalformedConfiguration, "watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}
	if c.Watch.MaxPerMinute < 0 {
		return errors.Wrapf(errors.ErrMalformedConfiguration, "watch.max_per_minute must be >= 0, got %d", c.Watch.MaxPerMinute)
	}

	if c.RequiredVersion != "" {
		info := version.Get()
		ok, err := info.Satisfies(c.RequiredVersion)
		if err != nil {
			return errors.Wrapf(errors.ErrMalformedConfiguration, "required_version: %v", err)
		}
		if !ok {
			return errors.WithHint(
				errors.Wrapf(errors.ErrMalformedConfiguration, "project requires wrapgen %s, running %s", c.RequiredVersion, info.Version),
				"upgrade wrapgen or relax required_version")
		}
	}

	return nil
}
