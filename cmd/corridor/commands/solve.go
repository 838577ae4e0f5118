package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dyluth/corridor/internal/boardfile"
	"github.com/dyluth/corridor/internal/config"
	"github.com/dyluth/corridor/internal/printer"
	"github.com/dyluth/corridor/internal/search"
)

var (
	solveConfigPath string
	solveDeadline   string
	solveProgress   bool
	solveOutput     string
)

var solveCmd = &cobra.Command{
	Use:   "solve BOARD_FILE",
	Short: "Compute the minimum sorting cost for a board",
	Long: `Compute the minimum total cost of fully sorting the given board.

The board file is a fixed-format diagram, for example:

  #############
  #...........#
  ###B#C#B#D###
    #A#D#C#A#
    #########

Output Formats:
  default - Human-readable colored summary
  jsonl   - A single JSON object for piping to jq

Options can also be set in a corridor.yml file passed via --config;
command-line flags override the file.

Examples:
  # Solve a board
  corridor solve board.txt

  # Print each improved solution as the search narrows in
  corridor solve board.txt --progress

  # Bound the search and emit a machine-readable report
  corridor solve board.txt --deadline=30s --output=jsonl | jq .cost`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveConfigPath, "config", "c", "", "Path to corridor.yml (optional)")
	solveCmd.Flags().StringVar(&solveDeadline, "deadline", "", "Abort the search after this duration (e.g. 30s)")
	solveCmd.Flags().BoolVar(&solveProgress, "progress", false, "Print each improved solution as it is found")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "Output format: default or jsonl")

	rootCmd.AddCommand(solveCmd)
}

// solveReport is the jsonl output shape.
type solveReport struct {
	RunID     string `json:"run_id"`
	Solved    bool   `json:"solved"`
	Cost      int    `json:"cost"`
	Explored  int    `json:"explored"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if solveConfigPath != "" {
		loaded, err := config.Load(solveConfigPath)
		if err != nil {
			return printer.Error(
				"invalid configuration",
				err.Error(),
				[]string{"Check the corridor.yml format:\n  version: \"1.0\"\n  solver:\n    deadline: 30s"},
			)
		}
		cfg = loaded
	}

	// Flags override the config file.
	if cmd.Flags().Changed("deadline") {
		cfg.Solver.Deadline = solveDeadline
	}
	if cmd.Flags().Changed("progress") {
		cfg.Solver.Progress = solveProgress
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = solveOutput
	}
	if err := cfg.Validate(); err != nil {
		return printer.Error("invalid options", err.Error(), nil)
	}

	b, err := boardfile.Load(args[0])
	if err != nil {
		return printer.Error(
			"invalid board file",
			err.Error(),
			[]string{"Inspect the board diagram:\n  corridor show " + args[0]},
		)
	}

	solver := &search.Solver{}
	if d := cfg.DeadlineDuration(); d > 0 {
		solver.Deadline = time.Now().Add(d)
	}
	if cfg.Solver.Progress && cfg.Output == config.OutputDefault {
		solver.Progress = func(cost int) {
			printer.Step("found solution with cost %d\n", cost)
		}
	}

	res, err := solver.Solve(b)
	if errors.Is(err, search.ErrDeadlineExceeded) {
		return printer.Error(
			"search deadline exceeded",
			fmt.Sprintf("The search did not finish within %s (%d states explored).", cfg.Solver.Deadline, res.Explored),
			[]string{"Raise or remove the deadline:\n  corridor solve " + args[0]},
		)
	}
	if err != nil {
		return fmt.Errorf("failed to solve board: %w", err)
	}

	if cfg.Output == config.OutputJSONL {
		data, err := json.Marshal(solveReport{
			RunID:     res.RunID,
			Solved:    res.Solved,
			Cost:      res.Cost,
			Explored:  res.Explored,
			ElapsedMs: res.Elapsed.Milliseconds(),
		})
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		printer.Println(string(data))
		if !res.Solved {
			return fmt.Errorf("no solution")
		}
		return nil
	}

	if !res.Solved {
		return printer.Error(
			"no solution",
			fmt.Sprintf("No sequence of legal moves sorts this board (%d states explored).", res.Explored),
			[]string{"Verify the board's token population:\n  corridor show " + args[0]},
		)
	}

	printer.Success("minimum cost: %d\n", res.Cost)
	printer.Info("explored %d states in %s (run %s)\n", res.Explored, res.Elapsed.Round(time.Millisecond), res.RunID)
	return nil
}
