package search

import (
	"github.com/dyluth/corridor/internal/board"
)

// State is a board snapshot plus the cost accumulated to reach it. States
// are never shared between branches: every successor owns a full clone of
// its predecessor's board.
type State struct {
	Board *board.Board
	Cost  int
}

// NewState wraps an initial board with zero accumulated cost.
func NewState(b *board.Board) *State {
	return &State{Board: b}
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	return &State{Board: s.Board.Clone(), Cost: s.Cost}
}

// Settle performs every currently forced move until none remain. A move is
// forced when a token can go straight into its destination column: such a
// move is always cost-optimal and never blocks any other token, so
// deferring it can only add cost. Applying one forced move can unblock
// another, so the sweep repeats until a full pass moves nothing.
func (s *State) Settle() {
	for s.settleOnce() {
	}
}

// settleOnce runs one full sweep of the two forced-move rules: first every
// column whose top token can travel directly home, then every corridor slot
// whose token can. Reports whether any move fired.
func (s *State) settleOnce() bool {
	moved := false

	for col := 0; col < board.NumColumns; col++ {
		top, ok := s.Board.Column(col).Top()
		if !ok {
			continue
		}
		dest := top.Destination()
		if dest == col {
			continue
		}
		if s.Board.ColumnAccepts(dest) && s.Board.ColumnPathClear(col, dest) {
			s.Cost += s.Board.MoveBetweenColumns(col, dest)
			moved = true
		}
	}

	for slot := 0; slot < board.NumSlots; slot++ {
		t := s.Board.Slot(slot)
		if t == board.Empty {
			continue
		}
		dest := t.Destination()
		if s.Board.ColumnAccepts(dest) && s.Board.SlotPathClear(slot, dest) {
			s.Cost += s.Board.MoveToColumn(slot, dest)
			moved = true
		}
	}

	return moved
}

// Successors generates one new state per legal column-to-corridor move:
// for every column still holding a misplaced token, and every unobstructed
// slot visible from its mouth. This is the only source of choice in the
// search; every other move is forced and handled by Settle.
func (s *State) Successors() []*State {
	var next []*State
	for col := 0; col < board.NumColumns; col++ {
		if s.Board.ColumnClean(col) {
			continue
		}
		for _, slot := range s.Board.AvailableSlots(col) {
			succ := s.Clone()
			succ.Cost += succ.Board.MoveToSlot(col, slot)
			next = append(next, succ)
		}
	}
	return next
}

// LowerBound returns an admissible lower bound on the total cost of any
// completion of this state: the accumulated cost plus, for every token not
// yet home, the cost of an unobstructed direct trip to its destination.
// Obstruction and queuing are deliberately ignored, so the bound never
// overestimates.
func (s *State) LowerBound() int {
	bound := s.Cost

	for slot := 0; slot < board.NumSlots; slot++ {
		t := s.Board.Slot(slot)
		if t == board.Empty {
			continue
		}
		steps := 1 + abs(board.SlotCoord(slot)-board.ColumnCoord(t.Destination()))
		bound += steps * t.StepCost()
	}

	for col := 0; col < board.NumColumns; col++ {
		for _, t := range s.Board.Column(col).Tokens() {
			if t.Destination() == col {
				continue
			}
			steps := 2 + abs(board.ColumnCoord(col)-board.ColumnCoord(t.Destination()))
			bound += steps * t.StepCost()
		}
	}

	return bound
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
