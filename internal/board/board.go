package board

import "strings"

// NumColumns is the number of storage columns (one per token kind).
const NumColumns = 4

// NumSlots is the number of corridor connector cells.
const NumSlots = 7

// The corridor and the column mouths share a single horizontal axis.
// Corridor slots sit at {0,1,3,5,7,9,10} and column mouths at {2,4,6,8}:
// every column is flanked by a slot on each side, with two extra slots at
// each far end. All distance arithmetic depends on this exact spacing.
var (
	slotCoords   = [NumSlots]int{0, 1, 3, 5, 7, 9, 10}
	columnCoords = [NumColumns]int{2, 4, 6, 8}
)

// SlotCoord returns the axis coordinate of a corridor slot.
func SlotCoord(slot int) int { return slotCoords[slot] }

// ColumnCoord returns the axis coordinate of a column mouth.
func ColumnCoord(col int) int { return columnCoords[col] }

// Board is one complete configuration: four columns plus the corridor.
// The move primitives mutate the board and return the cost of the single
// move performed. They do not validate legality; callers must run the
// corresponding legality check first.
type Board struct {
	columns [NumColumns]Column
	slots   [NumSlots]Token
}

// New builds a board from four columns. All columns must share the same
// capacity; the corridor starts empty.
func New(columns [NumColumns]Column) *Board {
	return &Board{columns: columns}
}

// Capacity returns the shared column capacity.
func (b *Board) Capacity() int { return b.columns[0].Cap() }

// Column returns the column at the given index.
func (b *Board) Column(col int) *Column { return &b.columns[col] }

// Slot returns the token occupying a corridor slot, or Empty.
func (b *Board) Slot(slot int) Token { return b.slots[slot] }

// Clone returns a deep copy sharing no storage with the original.
func (b *Board) Clone() *Board {
	out := &Board{slots: b.slots}
	for i := range b.columns {
		out.columns[i] = b.columns[i].clone()
	}
	return out
}

// IsSettled reports whether every column is full and contains only tokens
// whose destination is that column.
func (b *Board) IsSettled() bool {
	for i := range b.columns {
		if !b.columns[i].IsFull() || !b.columns[i].holdsOnly(i) {
			return false
		}
	}
	return true
}

// ColumnClean reports whether every token currently in the column already
// has it as its destination. True for an empty column. A clean column never
// needs any token moved out of it.
func (b *Board) ColumnClean(col int) bool {
	return b.columns[col].holdsOnly(col)
}

// ColumnAccepts reports whether the column is a legal destination right now:
// not full, and holding no token that belongs elsewhere. A contaminated
// column must be drained before it accepts anything.
func (b *Board) ColumnAccepts(col int) bool {
	return !b.columns[col].IsFull() && b.columns[col].holdsOnly(col)
}

// AvailableSlots returns the corridor slots a token leaving the given column
// can stop at: walking left and right from the pair of slots flanking the
// column mouth, stopping at (and excluding) the first occupied slot in each
// direction.
func (b *Board) AvailableSlots(col int) []int {
	var out []int
	for slot := col + 1; slot >= 0; slot-- {
		if b.slots[slot] != Empty {
			break
		}
		out = append(out, slot)
	}
	for slot := col + 2; slot < NumSlots; slot++ {
		if b.slots[slot] != Empty {
			break
		}
		out = append(out, slot)
	}
	return out
}

// SlotPathClear reports whether a token in the given slot can reach the
// given column mouth: every slot strictly between the two coordinates must
// be empty. The moving token's own slot is an endpoint and is not checked.
func (b *Board) SlotPathClear(slot, col int) bool {
	return b.rangeEmpty(slotCoords[slot], columnCoords[col])
}

// ColumnPathClear reports whether the stretch of corridor between two column
// mouths is entirely empty.
func (b *Board) ColumnPathClear(from, to int) bool {
	return b.rangeEmpty(columnCoords[from], columnCoords[to])
}

// rangeEmpty reports whether every slot with a coordinate strictly between
// a and b is unoccupied. Direction-agnostic: a and b may come in any order.
func (b *Board) rangeEmpty(x, y int) bool {
	if x > y {
		x, y = y, x
	}
	for slot, coord := range slotCoords {
		if coord > x && coord < y && b.slots[slot] != Empty {
			return false
		}
	}
	return true
}

// MoveToSlot moves the top token of a column into a corridor slot and
// returns the move's cost. The vertical component is how deep the token sat
// in the column.
func (b *Board) MoveToSlot(col, slot int) int {
	t := b.columns[col].pop()
	b.slots[slot] = t

	horizontal := abs(slotCoords[slot] - columnCoords[col])
	vertical := b.columns[col].Cap() - b.columns[col].Len()
	return (vertical + horizontal) * t.StepCost()
}

// MoveToColumn moves a token out of a corridor slot into a column and
// returns the move's cost. The vertical component is how deep the token
// comes to rest.
func (b *Board) MoveToColumn(slot, col int) int {
	t := b.slots[slot]
	b.slots[slot] = Empty
	b.columns[col].push(t)

	horizontal := abs(slotCoords[slot] - columnCoords[col])
	vertical := 1 + b.columns[col].Cap() - b.columns[col].Len()
	return (vertical + horizontal) * t.StepCost()
}

// MoveBetweenColumns moves the top token of one column directly into
// another and returns the move's cost: vertical distance out of the origin,
// one step across the corridor axis, vertical distance into the destination.
func (b *Board) MoveBetweenColumns(from, to int) int {
	t := b.columns[from].pop()
	b.columns[to].push(t)

	horizontal := abs(columnCoords[from] - columnCoords[to])
	vertical := (b.columns[from].Cap() - b.columns[from].Len()) +
		(b.columns[to].Cap() - b.columns[to].Len()) + 1
	return (vertical + horizontal) * t.StepCost()
}

// TokenCounts returns the number of tokens of each kind on the board,
// indexed by destination column. Every legal move preserves these counts.
func (b *Board) TokenCounts() [NumColumns]int {
	var counts [NumColumns]int
	for _, t := range b.slots {
		if t != Empty {
			counts[t.Destination()]++
		}
	}
	for i := range b.columns {
		for _, t := range b.columns[i].tokens {
			counts[t.Destination()]++
		}
	}
	return counts
}

// String renders the board as the standard diagram.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	for coord := 0; coord <= 10; coord++ {
		cell := "."
		for slot, sc := range slotCoords {
			if sc == coord {
				cell = b.slots[slot].String()
			}
		}
		sb.WriteString(cell)
	}
	sb.WriteString("#\n")

	for depth := 0; depth < b.Capacity(); depth++ {
		if depth == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for i := range b.columns {
			c := &b.columns[i]
			gap := c.Cap() - c.Len()
			cell := "."
			if depth >= gap {
				cell = c.tokens[depth-gap].String()
			}
			sb.WriteString(cell)
			sb.WriteString("#")
		}
		if depth == 0 {
			sb.WriteString("##")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  #########\n")
	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
