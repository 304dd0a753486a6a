package config

import "github.com/spf13/viper"

// Default values
const (
	DefaultResourcesDir    = "src/main/res"
	DefaultInterfacesDir   = "interfaces"
	DefaultOutputDir       = "build/generated/wrapgen"
	DefaultTopType         = "java.lang.Object"
	DefaultDebounceMS      = 300
	DefaultMaxPerMinute    = 30
	DefaultLogTheme        = "everforest"
	DefaultEnsureNonNull   = "java.util.Objects.requireNonNull"
	DefaultFilePermissions = 0o644
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("package_name", "")
	v.SetDefault("layout_interface", "")
	v.SetDefault("resource_class", "")
	v.SetDefault("ensure_non_null_function", DefaultEnsureNonNull)

	v.SetDefault("resources_dir", DefaultResourcesDir)
	v.SetDefault("interfaces_dir", DefaultInterfacesDir)
	v.SetDefault("output_dir", DefaultOutputDir)

	v.SetDefault("hierarchy_files", []string{})
	v.SetDefault("use_builtin_hierarchy", true)
	v.SetDefault("top_type", DefaultTopType)

	v.SetDefault("strict_include_conflicts", false)
	v.SetDefault("required_version", "")
	v.SetDefault("log_theme", DefaultLogTheme)

	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
	v.SetDefault("watch.max_per_minute", DefaultMaxPerMinute)

	v.SetDefault("hooks.after_generate", "")
}

// Default returns a configuration holding only default values, used as the
// template written by `wrapgen init`.
func Default() *Config {
	return &Config{
		PackageName:           "com.example.app.layout",
		LayoutInterface:       "com.example.app.Layout",
		ResourceClass:         "com.example.app.R",
		EnsureNonNullFunction: DefaultEnsureNonNull,
		ResourcesDir:          DefaultResourcesDir,
		InterfacesDir:         DefaultInterfacesDir,
		OutputDir:             DefaultOutputDir,
		HierarchyFiles:        []string{},
		UseBuiltinHierarchy:   true,
		TopType:               DefaultTopType,
		LogTheme:              DefaultLogTheme,
		Watch: WatchConfig{
			DebounceMS:   DefaultDebounceMS,
			MaxPerMinute: DefaultMaxPerMinute,
		},
	}
}
