package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "corridor",
	Short: "Corridor - minimum-cost token sorting solver",
	Long: `Corridor computes the minimum total cost of sorting four kinds of
labeled tokens from four depth-limited storage columns into their
destination columns, moving only through a shared corridor of connector
cells. Each token kind pays a different cost per cell travelled.

Boards are described by a fixed-format text diagram; the result is the
minimum total cost, or an explicit failure when no legal sorting exists.`,
	Version: version,
	// Prevent silent success when the binary is invoked without a subcommand
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
