package board

import "fmt"

// Side is a player colour. Its value equals the colour bit of Piece.
type Side uint8

const (
	SideWhite Side = iota
	SideBlack
)

// SideCount is the number of sides, for array sizing only.
const SideCount = 2

// NewSideFromSymbol decodes the FEN active colour field.
func NewSideFromSymbol(sym string) (Side, error) {
	switch sym {
	case "w":
		return SideWhite, nil
	case "b":
		return SideBlack, nil
	default:
		return SideWhite, fmt.Errorf("%w: invalid turn '%s'", ErrInvalidFEN, sym)
	}
}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

// Symbol returns the FEN active colour letter.
func (s Side) Symbol() string {
	if s == SideBlack {
		return "b"
	}
	return "w"
}

func (s Side) Opposite() Side {
	return s ^ 1
}
