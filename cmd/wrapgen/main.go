package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wrapgen/cmd/wrapgen/commands"
	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "wrapgen",
	Short: "Generate typed wrappers for Android layouts",
	Long: `wrapgen - typed accessors for Android layout resources.

wrapgen reads the layouts under res/layout, resolves every identifier
through nested includes, matches each layout against the getter-only
interfaces you declare, and writes one wrapper class per layout.

Available commands:
  generate - Write wrapper sources to output_dir
  check    - Verify that the written sources are up to date
  watch    - Regenerate whenever a layout, string or interface changes
  init     - Create a starter wrapgen.toml
  version  - Show build information

Examples:
  wrapgen init                 # Write wrapgen.toml in the current directory
  wrapgen generate -v          # Generate and list matched interfaces
  wrapgen check                # Fail when generated sources are stale
  wrapgen watch                # Keep sources in sync while editing`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON to stderr")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to wrapgen.toml (default: search upward from the working directory)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.InitCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Cleanup()

	if err != nil {
		pterm.Error.Println(err.Error())
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "  hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
