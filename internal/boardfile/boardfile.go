// Package boardfile parses the fixed-format board diagram:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// Token rows start on the third line; column i's token sits at byte offset
// i*2+3 of each token row. The column capacity is the number of token rows.
package boardfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dyluth/corridor/internal/board"
)

// headerLines is the number of diagram lines above the first token row, and
// also the number of non-token lines overall (two header lines plus the
// bottom wall).
const headerLines = 2

// tokenOffset converts a column index into the byte offset of its token
// character within a diagram row.
func tokenOffset(col int) int {
	return col*2 + 3
}

// Load reads and parses a board diagram from a file.
func Load(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	defer f.Close()

	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse reads a board diagram and returns the initial board. It rejects
// malformed diagrams and unbalanced token populations so the solver never
// receives a board that is invalid by construction.
func Parse(r io.Reader) (*board.Board, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read board diagram: %w", err)
	}

	capacity := len(lines) - headerLines - 1
	if capacity < 1 {
		return nil, fmt.Errorf("board diagram too short: need at least %d lines, got %d", headerLines+2, len(lines))
	}

	var columns [board.NumColumns]board.Column
	for col := 0; col < board.NumColumns; col++ {
		tokens := make([]board.Token, 0, capacity)
		for depth := 0; depth < capacity; depth++ {
			lineNo := headerLines + depth
			line := lines[lineNo]
			off := tokenOffset(col)
			if len(line) <= off {
				return nil, fmt.Errorf("line %d too short: column %d expects a token at offset %d", lineNo+1, col, off)
			}
			t, err := board.ParseToken(line[off])
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", lineNo+1, col, err)
			}
			tokens = append(tokens, t)
		}
		columns[col] = board.NewColumn(capacity, tokens...)
	}

	b := board.New(columns)
	for kind, count := range b.TokenCounts() {
		if count != capacity {
			return nil, fmt.Errorf("unbalanced token population: kind %s appears %d times, want %d",
				board.Token(kind+1), count, capacity)
		}
	}
	return b, nil
}
