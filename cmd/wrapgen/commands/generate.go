package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wrapgen/config"
	"github.com/teranos/wrapgen/gen"
	"github.com/teranos/wrapgen/logger"
)

// GenerateCmd writes wrapper sources
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate layout wrappers",
	Long: `Generate one wrapper class per layout under resources_dir/layout.

The run fails without writing anything when a layout declares an invalid
or duplicate id, includes an unknown layout, or sets a string that needs
placeholder arguments.

Examples:
  wrapgen generate             # Write sources to output_dir
  wrapgen generate -v          # Also list layouts and matched interfaces
  wrapgen generate -vvv        # Also print every resolved id`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	v := verbosity(cmd)
	if logger.ShouldOutput(v, logger.OutputConfig) {
		printConfig(cfg)
	}

	summary, err := gen.NewRun(cfg, logger.ComponentLogger("gen")).Execute(cmd.Context())
	if err != nil {
		return err
	}
	printSummary(summary, v)
	return nil
}

func printConfig(cfg *config.Config) {
	pterm.Info.Printf("Configuration: %s\n", cfg.Path)
	pterm.Printf("  package:    %s\n", cfg.PackageName)
	pterm.Printf("  resources:  %s\n", cfg.ResourcesDir)
	pterm.Printf("  interfaces: %s\n", cfg.InterfacesDir)
	pterm.Printf("  output:     %s\n", cfg.OutputDir)
	pterm.Println()
}

func printSummary(s *gen.Summary, v int) {
	if logger.ShouldOutput(v, logger.OutputResults) {
		pterm.Success.Printf("Generated %d layout wrappers in %s\n", len(s.Files), s.PackageDir)
	}

	if len(s.Dropped) > 0 {
		pterm.Warning.Printf("Interfaces extending a non-getter interface were skipped: %s\n", strings.Join(s.Dropped, ", "))
	}

	if logger.ShouldOutput(v, logger.OutputLayoutSummary) && len(s.Resolved) > 0 {
		data := pterm.TableData{{"Layout", "Ids", "Hidden", "Interfaces"}}
		for _, l := range s.Resolved {
			row := []string{l.Name, pterm.Sprint(len(l.IDs)), strings.Join(s.Conflicts[l.Name], ", "), ""}
			if logger.ShouldOutput(v, logger.OutputInterfaces) {
				row[3] = strings.Join(l.Interfaces, ", ")
			}
			data = append(data, row)
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}

	if logger.ShouldOutput(v, logger.OutputIdentifierTable) {
		for _, l := range s.Resolved {
			pterm.DefaultSection.Println(l.Name)
			data := pterm.TableData{{"Id", "Type", "Owner"}}
			data = append(data, []string{"view", l.RootType, ""})
			for _, id := range l.IDs {
				owner := l.Wrappers[id]
				if owner == "" {
					owner = "view"
				}
				data = append(data, []string{id, l.Types[id], owner})
			}
			_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		}
	}

	if logger.ShouldOutput(v, logger.OutputTiming) {
		pterm.Info.Printf("Run %s took %s\n", s.RunID, s.Duration)
	}
}
