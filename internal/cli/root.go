// Package cli implements the turbograph command-line interface.
//
// The commands convert turbine process XML into the supported sinks:
//   - convert: JSON graph document (map- or list-shaped nodes)
//   - export: two-sheet spreadsheet or paired CSV tables
//   - render: Graphviz node-link diagram (DOT, SVG, PNG)
//   - serve: the converter behind an HTTP endpoint
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the application name used for config directories and display.
const appName = "turbograph"

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the turbograph CLI and returns an error if any command
// fails. Conversion failures surface here with no partial output file
// written; main maps them to a non-zero exit status.
func Execute(ctx context.Context) error {
	var verbose bool

	cfg, err := loadConfig()
	if err != nil {
		// A malformed config file is fatal rather than silently ignored,
		// so a typo does not flip the output shape unnoticed.
		return err
	}

	root := &cobra.Command{
		Use:   appName,
		Short: "Turbograph converts turbine process XML into graph formats",
		Long: `Turbograph reads turbine/process XML descriptions (typed nodes, edges
with physical flow attributes) and converts them into a normalized JSON
graph, a tabular spreadsheet, or a node-link diagram.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newConvertCmd(cfg))
	root.AddCommand(newExportCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd(cfg))

	return root.ExecuteContext(ctx)
}
