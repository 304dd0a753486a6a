package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/gen"
	"github.com/teranos/wrapgen/logger"
)

// CheckCmd checks if generated sources are up to date
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if generated wrappers are up to date",
	Long: `Generate into a temporary directory and compare the result with
the sources in output_dir. Generated files that would no longer be
produced are reported as stale.

Exit codes:
  0 - Sources are up to date
  1 - Sources are out of date, or the run failed

Examples:
  wrapgen check                # Use in CI after layout changes`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := gen.Check(cmd.Context(), cfg, logger.ComponentLogger("check"))
	if err != nil {
		return err
	}

	if result.UpToDate {
		pterm.Success.Println("Layout wrappers are up to date")
		return nil
	}

	pterm.Error.Println("Layout wrappers are out of date")
	printFiles("Changed", result.Differing)
	printFiles("Missing", result.Missing)
	printFiles("Stale", result.Stale)

	return errors.WithHint(
		errors.New("generated sources are out of date"),
		"run `wrapgen generate` and delete stale files")
}

func printFiles(label string, files []string) {
	if len(files) == 0 {
		return
	}
	pterm.Printf("\n%s:\n", label)
	for _, f := range files {
		pterm.Printf("  - %s\n", f)
	}
}
