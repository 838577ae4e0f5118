package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDiagram = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`

func writeBoard(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the real root command, resetting solve's flag state first so
// one test's flags never leak into the next.
func execute(args ...string) error {
	solveConfigPath, solveDeadline, solveOutput = "", "", ""
	solveProgress = false
	solveCmd.Flags().Visit(func(f *pflag.Flag) { f.Changed = false })

	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	return rootCmd.Execute()
}

func TestSolveCommand_SolvesExampleBoard(t *testing.T) {
	path := writeBoard(t, exampleDiagram)
	err := execute("solve", path)
	assert.NoError(t, err)
}

func TestSolveCommand_JSONLOutput(t *testing.T) {
	path := writeBoard(t, exampleDiagram)
	err := execute("solve", path, "--output=jsonl")
	assert.NoError(t, err)
}

func TestSolveCommand_MissingBoardFile(t *testing.T) {
	err := execute("solve", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestSolveCommand_MalformedBoard(t *testing.T) {
	path := writeBoard(t, "not a board")
	err := execute("solve", path)
	assert.Error(t, err)
}

func TestSolveCommand_InvalidOutputFlag(t *testing.T) {
	path := writeBoard(t, exampleDiagram)
	err := execute("solve", path, "--output=xml")
	assert.Error(t, err)
}

func TestSolveCommand_ConfigFile(t *testing.T) {
	boardPath := writeBoard(t, exampleDiagram)
	cfgPath := filepath.Join(t.TempDir(), "corridor.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: \"1.0\"\nsolver:\n  deadline: 1m\n"), 0o644))

	err := execute("solve", boardPath, "--config", cfgPath)
	assert.NoError(t, err)
}

func TestShowCommand_DisplaysBoard(t *testing.T) {
	path := writeBoard(t, exampleDiagram)
	err := execute("show", path)
	assert.NoError(t, err)
}

func TestShowCommand_MalformedBoard(t *testing.T) {
	path := writeBoard(t, "###")
	err := execute("show", path)
	assert.Error(t, err)
}
