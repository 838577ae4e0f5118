package board

// Column is a fixed-capacity stack of tokens accessed only from the top.
// Tokens sit at the bottom of the column; index 0 of the backing slice is
// the topmost token.
type Column struct {
	capacity int
	tokens   []Token
}

// NewColumn builds a column with the given capacity holding the given
// tokens, listed top to bottom.
func NewColumn(capacity int, tokens ...Token) Column {
	c := Column{capacity: capacity, tokens: make([]Token, 0, capacity)}
	c.tokens = append(c.tokens, tokens...)
	return c
}

// Len returns the number of tokens currently in the column.
func (c *Column) Len() int { return len(c.tokens) }

// Cap returns the column's fixed capacity.
func (c *Column) Cap() int { return c.capacity }

func (c *Column) IsFull() bool  { return len(c.tokens) == c.capacity }
func (c *Column) IsEmpty() bool { return len(c.tokens) == 0 }

// Top returns the topmost token, or false if the column is empty.
func (c *Column) Top() (Token, bool) {
	if len(c.tokens) == 0 {
		return Empty, false
	}
	return c.tokens[0], true
}

// Tokens returns a copy of the column's contents, top to bottom.
func (c *Column) Tokens() []Token {
	out := make([]Token, len(c.tokens))
	copy(out, c.tokens)
	return out
}

// holdsOnly reports whether every token in the column has the given column
// index as its destination. True for an empty column.
func (c *Column) holdsOnly(col int) bool {
	for _, t := range c.tokens {
		if t.Destination() != col {
			return false
		}
	}
	return true
}

func (c *Column) push(t Token) {
	c.tokens = append([]Token{t}, c.tokens...)
}

func (c *Column) pop() Token {
	t := c.tokens[0]
	c.tokens = c.tokens[1:]
	return t
}

func (c *Column) clone() Column {
	return NewColumn(c.capacity, c.tokens...)
}
