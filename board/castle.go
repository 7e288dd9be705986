package board

import "fmt"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

// CastleRights is a 4-bit set of castling availabilities.
type CastleRights uint8

const (
	CastleRightsWhiteKingside CastleRights = 1 << iota
	CastleRightsWhiteQueenside
	CastleRightsBlackKingside
	CastleRightsBlackQueenside

	CastleRightsNone CastleRights = 0
	CastleRightsAll               = CastleRightsWhiteKingside | CastleRightsWhiteQueenside | CastleRightsBlackKingside | CastleRightsBlackQueenside
)

var maskCastleRights = [5]CastleRights{
	CastleDirectionWhiteRight: CastleRightsWhiteKingside,
	CastleDirectionWhiteLeft:  CastleRightsWhiteQueenside,
	CastleDirectionBlackRight: CastleRightsBlackKingside,
	CastleDirectionBlackLeft:  CastleRightsBlackQueenside,
}

// NewCastleRightsFromFEN decodes the FEN castling field. "-" means no rights.
func NewCastleRightsFromFEN(field string) (CastleRights, error) {
	var c CastleRights
	if field == "-" {
		return c, nil
	}
	for _, e := range field {
		switch e {
		case 'K':
			c.Set(CastleDirectionWhiteRight, true)
		case 'Q':
			c.Set(CastleDirectionWhiteLeft, true)
		case 'k':
			c.Set(CastleDirectionBlackRight, true)
		case 'q':
			c.Set(CastleDirectionBlackLeft, true)
		default:
			return CastleRightsNone, fmt.Errorf("%w: '%c'", ErrInvalidCastlingChar, e)
		}
	}
	return c, nil
}

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(CastleRightsWhiteKingside|CastleRightsWhiteQueenside) != 0
	}
	return c&(CastleRightsBlackKingside|CastleRightsBlackQueenside) != 0
}

// String returns the FEN castling field.
func (c CastleRights) String() string {
	if c == CastleRightsNone {
		return "-"
	}
	s := ""
	if c.IsAllowed(CastleDirectionWhiteRight) {
		s += "K"
	}
	if c.IsAllowed(CastleDirectionWhiteLeft) {
		s += "Q"
	}
	if c.IsAllowed(CastleDirectionBlackRight) {
		s += "k"
	}
	if c.IsAllowed(CastleDirectionBlackLeft) {
		s += "q"
	}
	return s
}
