package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/wrapgen/config"
	"github.com/teranos/wrapgen/logger"
)

// loadConfig loads and validates the configuration named by --config, or the
// nearest wrapgen.toml.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.SetTheme(cfg.LogTheme)

	logger.Logger.Debugw("Loaded configuration",
		logger.FieldPath, cfg.Path,
		"resources_dir", cfg.ResourcesDir,
		"output_dir", cfg.OutputDir)
	return cfg, nil
}

func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}
