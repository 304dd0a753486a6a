package commands

import (
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wrapgen/config"
	"github.com/teranos/wrapgen/errors"
)

var initForce bool

// InitCmd writes a starter configuration
var InitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter wrapgen.toml",
	Long: `Write a wrapgen.toml with default values into dir (default: the
working directory). Edit package_name, layout_interface and
resource_class before the first run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	InitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing wrapgen.toml")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}

	path := filepath.Join(dir, config.FileName)
	if err := config.WriteDefault(path, initForce); err != nil {
		return err
	}

	pterm.Success.Printf("Wrote %s\n", path)
	pterm.Info.Println("Set package_name, layout_interface and resource_class, then run `wrapgen generate`")
	return nil
}
