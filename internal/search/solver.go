package search

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dyluth/corridor/internal/board"
)

// ErrDeadlineExceeded is returned when the solver's deadline passes before
// the search space is exhausted.
var ErrDeadlineExceeded = errors.New("search deadline exceeded")

// Solver drives a depth-first branch-and-bound search over board states.
// The zero value is ready to use.
type Solver struct {
	// Deadline aborts the search when reached. The zero value means no
	// deadline. The check runs at the top of the search loop; settling and
	// pruning are side-effect-free, so aborting is always safe.
	Deadline time.Time

	// Progress, when set, is called with the cost of each improved complete
	// solution as it is found.
	Progress func(cost int)
}

// Result summarizes one solver run.
type Result struct {
	// RunID uniquely identifies this run in reports and logs.
	RunID string `json:"run_id"`

	// Solved reports whether any legal move sequence sorts the board.
	Solved bool `json:"solved"`

	// Cost is the minimum total cost. Only meaningful when Solved is true.
	Cost int `json:"cost"`

	// Explored counts states popped from the work list, pruned ones
	// included.
	Explored int `json:"explored"`

	Elapsed time.Duration `json:"-"`
}

// Solve searches for the minimum-cost sorting of the initial board. The
// input board is never mutated. A board that admits no sorting yields
// Result.Solved == false and a nil error.
func (sv *Solver) Solve(initial *board.Board) (Result, error) {
	start := time.Now()
	res := Result{RunID: uuid.NewString()}

	stack := []*State{NewState(initial.Clone())}
	best := math.MaxInt

	for len(stack) > 0 {
		if !sv.Deadline.IsZero() && time.Now().After(sv.Deadline) {
			res.Elapsed = time.Since(start)
			return res, ErrDeadlineExceeded
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Explored++

		// Prune branches that provably cannot beat the best known cost.
		if cur.Cost >= best || cur.LowerBound() >= best {
			continue
		}

		settled := cur.Clone()
		settled.Settle()

		if settled.Board.IsSettled() {
			if settled.Cost < best {
				best = settled.Cost
				if sv.Progress != nil {
					sv.Progress(best)
				}
			}
			continue
		}

		stack = append(stack, settled.Successors()...)
	}

	res.Elapsed = time.Since(start)
	if best != math.MaxInt {
		res.Solved = true
		res.Cost = best
	}
	return res, nil
}
