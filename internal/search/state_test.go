package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/corridor/internal/board"
)

// swapBoard is the capacity-2 board with one A/B pair swapped between
// columns 0 and 1.
func swapBoard() *board.Board {
	return board.New([board.NumColumns]board.Column{
		board.NewColumn(2, board.TokenB, board.TokenA),
		board.NewColumn(2, board.TokenA, board.TokenB),
		board.NewColumn(2, board.TokenC, board.TokenC),
		board.NewColumn(2, board.TokenD, board.TokenD),
	})
}

func sortedBoard() *board.Board {
	return board.New([board.NumColumns]board.Column{
		board.NewColumn(2, board.TokenA, board.TokenA),
		board.NewColumn(2, board.TokenB, board.TokenB),
		board.NewColumn(2, board.TokenC, board.TokenC),
		board.NewColumn(2, board.TokenD, board.TokenD),
	})
}

func TestSettle_SendsCorridorTokenHome(t *testing.T) {
	b := board.New([board.NumColumns]board.Column{
		board.NewColumn(1),
		board.NewColumn(1, board.TokenA),
		board.NewColumn(1, board.TokenC),
		board.NewColumn(1, board.TokenD),
	})
	s := NewState(b)
	// Park the misplaced A on slot 3 (coordinate 5), then settle.
	s.Cost += s.Board.MoveToSlot(1, 3)
	require.Equal(t, 2, s.Cost) // 1 up, 1 across

	s.Settle()

	// 3 across plus 1 down into the empty destination.
	assert.Equal(t, 2+4, s.Cost)
	top, ok := s.Board.Column(0).Top()
	require.True(t, ok)
	assert.Equal(t, board.TokenA, top)
}

func TestSettle_DirectColumnMove(t *testing.T) {
	b := board.New([board.NumColumns]board.Column{
		board.NewColumn(1),
		board.NewColumn(1, board.TokenA),
		board.NewColumn(1, board.TokenC),
		board.NewColumn(1, board.TokenD),
	})
	s := NewState(b)

	s.Settle()

	// A travels column 1 -> column 0 directly: 1 out + 2 across + 1 in.
	assert.Equal(t, 4, s.Cost)
	assert.True(t, s.Board.ColumnClean(0))
	assert.True(t, s.Board.Column(1).IsEmpty())
}

func TestSettle_Idempotent(t *testing.T) {
	s := NewState(board.New([board.NumColumns]board.Column{
		board.NewColumn(2, board.TokenA),
		board.NewColumn(2, board.TokenB),
		board.NewColumn(2, board.TokenB, board.TokenC),
		board.NewColumn(2, board.TokenD, board.TokenD),
	}))
	s.Cost += s.Board.MoveToSlot(0, 0)
	s.Cost += s.Board.MoveToSlot(1, 6)

	s.Settle()
	require.NotZero(t, s.Cost)
	costAfterFirst := s.Cost
	renderAfterFirst := s.Board.String()

	s.Settle()

	assert.Equal(t, costAfterFirst, s.Cost, "second settle must add no cost")
	assert.Equal(t, renderAfterFirst, s.Board.String(), "second settle must not move tokens")
}

func TestSettle_DoesNotFillContaminatedColumn(t *testing.T) {
	// Column 0's own token is buried beneath a B: nothing may settle into
	// column 0 until the B is evicted, and eviction is a choice, not a
	// forced move.
	b := board.New([board.NumColumns]board.Column{
		board.NewColumn(2, board.TokenB, board.TokenA),
		board.NewColumn(2, board.TokenA, board.TokenB),
		board.NewColumn(2, board.TokenC, board.TokenC),
		board.NewColumn(2, board.TokenD, board.TokenD),
	})
	s := NewState(b)

	s.Settle()

	assert.Equal(t, 0, s.Cost)
	assert.Equal(t, 2, s.Board.Column(0).Len())
	assert.Equal(t, 2, s.Board.Column(1).Len())
}

// TestSettle_OrderIndependence replays the settle fixpoint with the rule
// scans reversed (corridor before columns, indices descending) and checks
// that the settled board and the added cost come out identical: forced
// moves never interfere, so any fixpoint order gives the same result.
func TestSettle_OrderIndependence(t *testing.T) {
	base := NewState(board.New([board.NumColumns]board.Column{
		board.NewColumn(2, board.TokenA),
		board.NewColumn(2, board.TokenB),
		board.NewColumn(2, board.TokenB, board.TokenC),
		board.NewColumn(2, board.TokenD, board.TokenD),
	}))
	// Exercise both rules at once: an A and a B waiting in the corridor
	// plus a direct column-to-column move from column 2.
	base.Cost += base.Board.MoveToSlot(0, 0)
	base.Cost += base.Board.MoveToSlot(1, 6)

	normal := base.Clone()
	normal.Settle()

	alt := base.Clone()
	for altSettleOnce(alt) {
	}

	assert.Equal(t, normal.Cost, alt.Cost)
	assert.Equal(t, normal.Board.String(), alt.Board.String())
	assert.True(t, normal.Board.Column(1).IsFull())
}

// altSettleOnce mirrors State.settleOnce with the two rule scans swapped
// and run in descending index order.
func altSettleOnce(s *State) bool {
	moved := false
	for slot := board.NumSlots - 1; slot >= 0; slot-- {
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
	for col := board.NumColumns - 1; col >= 0; col-- {
		top, ok := s.Board.Column(col).Top()
		if !ok || top.Destination() == col {
			continue
		}
		dest := top.Destination()
		if s.Board.ColumnAccepts(dest) && s.Board.ColumnPathClear(col, dest) {
			s.Cost += s.Board.MoveBetweenColumns(col, dest)
			moved = true
		}
	}
	return moved
}

func TestSuccessors(t *testing.T) {
	t.Run("sorted board generates none", func(t *testing.T) {
		s := NewState(sortedBoard())
		assert.Empty(t, s.Successors())
	})

	t.Run("one per unclean column and reachable slot", func(t *testing.T) {
		s := NewState(swapBoard())
		// Columns 0 and 1 each hold a misplaced token; the empty corridor
		// exposes all 7 slots to both.
		succs := s.Successors()
		assert.Len(t, succs, 14)
	})

	t.Run("cost strictly increases", func(t *testing.T) {
		s := NewState(swapBoard())
		for _, succ := range s.Successors() {
			assert.Greater(t, succ.Cost, s.Cost)
		}
	})

	t.Run("successors own independent boards", func(t *testing.T) {
		s := NewState(swapBoard())
		succs := s.Successors()
		require.NotEmpty(t, succs)
		assert.Equal(t, 2, s.Board.Column(0).Len(), "parent board must be untouched")
	})
}

func TestLowerBound(t *testing.T) {
	t.Run("settled state bounds to its own cost", func(t *testing.T) {
		s := NewState(sortedBoard())
		s.Cost = 123
		assert.Equal(t, 123, s.LowerBound())
	})

	t.Run("misplaced column tokens project distance plus two", func(t *testing.T) {
		// B in column 0 projects (2+2)*10, A in column 1 projects (2+2)*1.
		s := NewState(swapBoard())
		assert.Equal(t, 44, s.LowerBound())
	})

	t.Run("corridor tokens project distance plus one", func(t *testing.T) {
		b := board.New([board.NumColumns]board.Column{
			board.NewColumn(1),
			board.NewColumn(1, board.TokenA),
			board.NewColumn(1, board.TokenC),
			board.NewColumn(1, board.TokenD),
		})
		s := NewState(b)
		moveCost := s.Board.MoveToSlot(1, 0) // A to coordinate 0
		s.Cost += moveCost
		// Remaining projection: |0-2| + 1 = 3 steps at cost 1.
		assert.Equal(t, moveCost+3, s.LowerBound())
	})

	t.Run("never exceeds the true remaining cost", func(t *testing.T) {
		boards := []*board.Board{
			swapBoard(),
			board.New([board.NumColumns]board.Column{
				board.NewColumn(1, board.TokenB),
				board.NewColumn(1, board.TokenC),
				board.NewColumn(1, board.TokenA),
				board.NewColumn(1, board.TokenD),
			}),
		}
		for _, b := range boards {
			s := NewState(b)
			truth := bruteMin(b.Clone(), 0)
			require.GreaterOrEqual(t, truth, 0, "oracle must find a solution")
			assert.LessOrEqual(t, s.LowerBound(), truth)
		}
	})
}
