package commands

import (
	"github.com/spf13/cobra"

	"github.com/dyluth/corridor/internal/board"
	"github.com/dyluth/corridor/internal/boardfile"
	"github.com/dyluth/corridor/internal/printer"
)

var showCmd = &cobra.Command{
	Use:   "show BOARD_FILE",
	Short: "Parse and display a board without solving it",
	Long: `Parse a board file, validate it, and print the resulting board
diagram together with a per-kind token census. Useful for checking a
hand-written board before running the solver.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	b, err := boardfile.Load(args[0])
	if err != nil {
		return printer.Error("invalid board file", err.Error(), nil)
	}

	printer.Info("%s", b.String())
	printer.Info("\ncolumn capacity: %d\n", b.Capacity())
	counts := b.TokenCounts()
	for kind, count := range counts {
		printer.Info("tokens of kind %s: %d\n", board.Token(kind+1), count)
	}
	return nil
}
