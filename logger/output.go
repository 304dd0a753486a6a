package logger

// Output controls what categories of information the CLI prints at each
// verbosity level. Unlike log levels (which filter by severity), output
// categories control WHAT is displayed on stdout.
//
// Verbosity Levels:
//
//	0 (default) - Results and errors: written files, stale files, failures
//	1 (-v)      - + per-layout summaries and matched interfaces
//	2 (-vv)     - + timing and loaded configuration
//	3 (-vvv)    - + full resolved identifier tables

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	OutputResults OutputCategory = iota // Files written, check verdict
	OutputErrors                        // Errors with hints

	OutputLayoutSummary // One line per generated layout
	OutputInterfaces    // Matched interfaces per layout

	OutputTiming // Run duration
	OutputConfig // Effective configuration values

	OutputIdentifierTable // Every exposed id with its type and owner
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,

	OutputLayoutSummary: VerbosityInfo,
	OutputInterfaces:    VerbosityInfo,

	OutputTiming: VerbosityDebug,
	OutputConfig: VerbosityDebug,

	OutputIdentifierTable: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}
