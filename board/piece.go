package board

import "fmt"

// PieceType is a colourless piece kind.
type PieceType uint8

const (
	PieceTypePawn PieceType = iota
	PieceTypeKnight
	PieceTypeBishop
	PieceTypeRook
	PieceTypeQueen
	PieceTypeKing

	// PieceTypeNone marks an absent piece type, e.g. a move without promotion.
	PieceTypeNone PieceType = 0xFF
)

// PieceTypeCount is the number of piece types, for array sizing only.
const PieceTypeCount = 6

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []PieceType{PieceTypeKnight, PieceTypeBishop, PieceTypeRook, PieceTypeQueen}

// NewPieceType converts an integer into a PieceType.
func NewPieceType(v int) (PieceType, error) {
	if v < 0 || v >= PieceTypeCount {
		return PieceTypeNone, fmt.Errorf("%w: piece type %d", ErrInvalidEnumValue, v)
	}
	return PieceType(v), nil
}

// PieceTypeFromSymbol decodes a promotion letter. Case is ignored.
func PieceTypeFromSymbol(sym byte) (PieceType, error) {
	switch sym | 0x20 { // lowercase is +32 uppercase
	case 'p':
		return PieceTypePawn, nil
	case 'n':
		return PieceTypeKnight, nil
	case 'b':
		return PieceTypeBishop, nil
	case 'r':
		return PieceTypeRook, nil
	case 'q':
		return PieceTypeQueen, nil
	case 'k':
		return PieceTypeKing, nil
	default:
		return PieceTypeNone, fmt.Errorf("%w: '%c'", ErrInvalidPieceChar, sym)
	}
}

func (t PieceType) IsValid() bool {
	return t < PieceTypeCount
}

func (t PieceType) String() string {
	switch t {
	case PieceTypePawn:
		return "Pawn"
	case PieceTypeKnight:
		return "Knight"
	case PieceTypeBishop:
		return "Bishop"
	case PieceTypeRook:
		return "Rook"
	case PieceTypeQueen:
		return "Queen"
	case PieceTypeKing:
		return "King"
	default:
		return ""
	}
}

// Symbol returns the lowercase letter of the piece type, as used in UCI promotions.
func (t PieceType) Symbol() string {
	if !t.IsValid() {
		return ""
	}
	return string("pnbrqk"[t])
}

// Of returns the concrete piece of this type for the given side.
func (t PieceType) Of(s Side) Piece {
	return Piece(t)<<1 | Piece(s)
}

// Piece is a colour-tagged piece.
//
// The encoding is load-bearing: both colours of a type differ only in bit 0,
// which is 0 for White. Piece^1 flips the colour and Piece>>1 is the PieceType.
type Piece uint8

const (
	WhitePawn Piece = iota
	BlackPawn
	WhiteKnight
	BlackKnight
	WhiteBishop
	BlackBishop
	WhiteRook
	BlackRook
	WhiteQueen
	BlackQueen
	WhiteKing
	BlackKing

	// PieceNone marks an empty mailbox slot.
	PieceNone Piece = 0xFF
)

// PieceCount is the number of concrete pieces, for array sizing only.
const PieceCount = 12

// NewPiece converts an integer into a Piece.
func NewPiece(v int) (Piece, error) {
	if v < 0 || v >= PieceCount {
		return PieceNone, fmt.Errorf("%w: piece %d", ErrInvalidEnumValue, v)
	}
	return Piece(v), nil
}

// PieceFromSymbol decodes a FEN piece letter, uppercase for White.
func PieceFromSymbol(sym byte) (Piece, error) {
	switch sym {
	case 'P':
		return WhitePawn, nil
	case 'N':
		return WhiteKnight, nil
	case 'B':
		return WhiteBishop, nil
	case 'R':
		return WhiteRook, nil
	case 'Q':
		return WhiteQueen, nil
	case 'K':
		return WhiteKing, nil
	case 'p':
		return BlackPawn, nil
	case 'n':
		return BlackKnight, nil
	case 'b':
		return BlackBishop, nil
	case 'r':
		return BlackRook, nil
	case 'q':
		return BlackQueen, nil
	case 'k':
		return BlackKing, nil
	default:
		return PieceNone, fmt.Errorf("%w: '%c'", ErrInvalidPieceChar, sym)
	}
}

func (p Piece) IsValid() bool {
	return p < PieceCount
}

func (p Piece) Type() PieceType {
	return PieceType(p >> 1)
}

func (p Piece) Side() Side {
	return Side(p & 1)
}

func (p Piece) IsWhite() bool {
	return p&1 == 0
}

// Flip returns the same piece type of the opposite colour.
func (p Piece) Flip() Piece {
	return p ^ 1
}

func (p Piece) String() string {
	if !p.IsValid() {
		return ""
	}
	return p.Side().String() + " " + p.Type().String()
}

// SymbolFEN returns the FEN letter of the piece.
func (p Piece) SymbolFEN() string {
	if !p.IsValid() {
		return ""
	}
	sym := "PNBRQK"[p.Type()]
	if p.Side() == SideBlack {
		sym |= 0x20
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(invert bool) string {
	if !p.IsValid() {
		return ""
	}
	s := p.Side()
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		return []string{"♙", "♘", "♗", "♖", "♕", "♔"}[p.Type()]
	default:
		return []string{"♟", "♞", "♝", "♜", "♛", "♚"}[p.Type()]
	}
}
