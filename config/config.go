// Package config loads wrapgen.toml.
//
// Values are read from the file named on the command line or from the first
// wrapgen.toml found walking up from the working directory. Environment
// variables prefixed with WRAPGEN_ override file values (WRAPGEN_OUTPUT_DIR,
// WRAPGEN_WATCH_DEBOUNCE_MS). Relative directories are resolved against the
// directory holding the file.
package config

// FileName is the configuration file searched for by Load.
const FileName = "wrapgen.toml"

// Config represents a wrapgen project configuration
type Config struct {
	// Java package of the generated wrappers (e.g. "com.example.app.layout")
	PackageName string `mapstructure:"package_name" toml:"package_name"`
	// Interface every wrapper is declared against, imported by each file
	LayoutInterface string `mapstructure:"layout_interface" toml:"layout_interface"`
	// Fully qualified Android resource class, must end in ".R"
	ResourceClass string `mapstructure:"resource_class" toml:"resource_class"`
	// Function called on the inflated root; statically imported when qualified
	EnsureNonNullFunction string `mapstructure:"ensure_non_null_function" toml:"ensure_non_null_function"`

	ResourcesDir  string `mapstructure:"resources_dir" toml:"resources_dir"`
	InterfacesDir string `mapstructure:"interfaces_dir" toml:"interfaces_dir"`
	OutputDir     string `mapstructure:"output_dir" toml:"output_dir"`

	HierarchyFiles      []string `mapstructure:"hierarchy_files" toml:"hierarchy_files"`
	UseBuiltinHierarchy bool     `mapstructure:"use_builtin_hierarchy" toml:"use_builtin_hierarchy"`
	TopType             string   `mapstructure:"top_type" toml:"top_type"`

	KnownCasts   []KnownCast   `mapstructure:"known_casts" toml:"known_casts,omitempty"`
	ImplicitTags []ImplicitTag `mapstructure:"implicit_tags" toml:"implicit_tags,omitempty"`

	// Fail the run instead of warning when an id is excluded because it is
	// declared more than once across includes
	StrictIncludeConflicts bool `mapstructure:"strict_include_conflicts" toml:"strict_include_conflicts"`

	// Semver constraint on the wrapgen binary (e.g. ">= 0.3")
	RequiredVersion string `mapstructure:"required_version" toml:"required_version,omitempty"`

	LogTheme string      `mapstructure:"log_theme" toml:"log_theme"`
	Watch    WatchConfig `mapstructure:"watch" toml:"watch"`
	Hooks    HooksConfig `mapstructure:"hooks" toml:"hooks"`

	// Path is the file the configuration was read from
	Path string `mapstructure:"-" toml:"-"`
}

// KnownCast declares that Type can be used as Cast, replacing whatever the
// type hierarchy says about Type.
type KnownCast struct {
	Type string `mapstructure:"type" toml:"type"`
	Cast string `mapstructure:"cast" toml:"cast"`
}

// ImplicitTag maps a bare layout tag to a qualified type.
type ImplicitTag struct {
	Tag  string `mapstructure:"tag" toml:"tag"`
	Type string `mapstructure:"type" toml:"type"`
}

// WatchConfig configures `wrapgen watch`
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms"`
	// Upper bound on regenerations per minute (0 = unlimited)
	MaxPerMinute int `mapstructure:"max_per_minute" toml:"max_per_minute"`
}

// HooksConfig holds commands run around generation
type HooksConfig struct {
	// Shell-quoted command run in the project directory after files are written
	AfterGenerate string `mapstructure:"after_generate" toml:"after_generate,omitempty"`
}

// KnownCastMap returns the known casts keyed by type.
func (c *Config) KnownCastMap() map[string]string {
	m := make(map[string]string, len(c.KnownCasts))
	for _, kc := range c.KnownCasts {
		m[kc.Type] = kc.Cast
	}
	return m
}

// ImplicitTagMap returns the implicit tags keyed by tag.
func (c *Config) ImplicitTagMap() map[string]string {
	m := make(map[string]string, len(c.ImplicitTags))
	for _, it := range c.ImplicitTags {
		m[it.Tag] = it.Type
	}
	return m
}
