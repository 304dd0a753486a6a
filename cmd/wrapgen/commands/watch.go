package commands

import (
	"os"
	"slices"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wrapgen/config"
	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/gen"
	"github.com/teranos/wrapgen/logger"
)

// WatchCmd regenerates on input changes
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate layout wrappers on change",
	Long: `Generate once, then regenerate whenever a file under resources_dir
or interfaces_dir, a hierarchy file, or wrapgen.toml changes.

Failed runs are logged and watching continues. Changes are debounced
by watch.debounce_ms and regenerations are limited to
watch.max_per_minute.

Examples:
  wrapgen watch
  wrapgen watch -v             # Log every batch of changed files`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	v := verbosity(cmd)
	log := logger.ComponentLogger("watch")

	regenerate := func() {
		summary, err := gen.NewRun(cfg, logger.ComponentLogger("gen")).Execute(cmd.Context())
		if err != nil {
			log.Errorw("Generation failed",
				logger.FieldError, err)
			if logger.ShouldOutput(v, logger.OutputErrors) {
				pterm.Error.Println(err.Error())
				for _, hint := range errors.GetAllHints(err) {
					pterm.Printf("  hint: %s\n", hint)
				}
			}
			return
		}
		printSummary(summary, v)
	}
	regenerate()

	roots := []string{cfg.ResourcesDir, cfg.Path}
	if info, err := os.Stat(cfg.InterfacesDir); err == nil && info.IsDir() {
		roots = append(roots, cfg.InterfacesDir)
	}
	roots = append(roots, cfg.HierarchyFiles...)

	watcher, err := config.NewResourceWatcher(config.WatchOptions{
		Roots:        roots,
		Ignore:       []string{cfg.OutputDir},
		Debounce:     time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
		MaxPerMinute: cfg.Watch.MaxPerMinute,
	}, log)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	watcher.OnChange(func(changed []string) error {
		log.Infow("Inputs changed",
			logger.FieldCount, len(changed))
		log.Debugw("Changed files", "files", changed)

		if slices.Contains(changed, cfg.Path) {
			reloaded, err := config.Load(cfg.Path)
			if err == nil {
				err = reloaded.Validate()
			}
			if err != nil {
				return errors.Wrap(err, "keeping previous configuration")
			}
			// Watched roots stay those of the initial configuration
			cfg = reloaded
			logger.SetTheme(cfg.LogTheme)
		}

		regenerate()
		return nil
	})

	pterm.Info.Printf("Watching %d inputs, press Ctrl+C to stop\n", len(roots))
	return watcher.Run(cmd.Context())
}
