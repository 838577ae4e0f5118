package board

import "fmt"

// Token is one of the four movable token kinds. The zero value (Empty) marks
// an unoccupied corridor slot and is never stored in a column.
type Token byte

const (
	Empty Token = iota
	TokenA
	TokenB
	TokenC
	TokenD
)

// ParseToken converts a board diagram character into a token kind.
func ParseToken(ch byte) (Token, error) {
	switch ch {
	case 'A':
		return TokenA, nil
	case 'B':
		return TokenB, nil
	case 'C':
		return TokenC, nil
	case 'D':
		return TokenD, nil
	default:
		return Empty, fmt.Errorf("invalid token character %q (expected A, B, C, or D)", ch)
	}
}

// Destination returns the index of the column this token must end up in.
func (t Token) Destination() int {
	return int(t) - 1
}

// StepCost returns the cost this token pays for every cell it travels.
// Each kind is ten times more expensive than the previous one.
func (t Token) StepCost() int {
	switch t {
	case TokenA:
		return 1
	case TokenB:
		return 10
	case TokenC:
		return 100
	case TokenD:
		return 1000
	}
	return 0
}

func (t Token) String() string {
	if t == Empty {
		return "."
	}
	return string(rune('A' + t - 1))
}
