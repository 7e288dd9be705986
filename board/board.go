package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chesscore/position"
)

// Board is the bitmap/mailbox/occupancy triple plus castling, en passant and
// ply metadata. For every square s and piece p, bitmaps[p] has s set iff
// mailbox[s] == p, and occupied[side] is the union of that side's bitmaps.
// Place and Remove are the only mutators of occupancy and keep this intact.
//
// Little-endian rank-file (LERF) mapping.
type Board struct {
	// grid data
	bitmaps  [PieceCount]Bitmap
	mailbox  [TotalCells]Piece
	occupied [SideCount]Bitmap

	// meta
	castleRights  CastleRights
	enPassant     position.Pos
	halfMoveClock uint16
	fullMoveClock uint16

	// reserved for attack aggregation by move generation
	attacked Bitmap
}

// NewEmptyBoard returns a board with no pieces, no castling rights and no en passant target.
func NewEmptyBoard() *Board {
	b := &Board{}
	b.reset()
	return b
}

func (b *Board) reset() {
	*b = Board{
		enPassant:     position.NoSquare,
		fullMoveClock: 1,
	}
	for i := range b.mailbox {
		b.mailbox[i] = PieceNone
	}
}

// Place puts p on pos. pos must be empty: placing onto an occupied square
// returns ErrSquareOccupied and leaves the board unchanged.
func (b *Board) Place(p Piece, pos position.Pos) error {
	if err := checkArgs(p, pos); err != nil {
		return err
	}
	if occupant := b.mailbox[pos]; occupant != PieceNone {
		return fmt.Errorf("%w: %s holds %s", ErrSquareOccupied, pos, occupant)
	}
	b.bitmaps[p].Set(pos)
	b.mailbox[pos] = p
	b.occupied[p.Side()].Set(pos)
	return nil
}

// Remove takes p off pos. pos must hold p, otherwise ErrPieceMismatch is
// returned and the board is left unchanged.
func (b *Board) Remove(p Piece, pos position.Pos) error {
	if err := checkArgs(p, pos); err != nil {
		return err
	}
	if occupant := b.mailbox[pos]; occupant != p {
		return fmt.Errorf("%w: %s holds %q, not %s", ErrPieceMismatch, pos, occupant, p)
	}
	b.bitmaps[p].Unset(pos)
	b.mailbox[pos] = PieceNone
	b.occupied[p.Side()].Unset(pos)
	return nil
}

func checkArgs(p Piece, pos position.Pos) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: piece %d", ErrInvalidEnumValue, p)
	}
	if !pos.IsValid() {
		return fmt.Errorf("%w: %d", position.ErrInvalidSquare, pos)
	}
	return nil
}

// PieceAt returns the occupant of pos, if any.
func (b *Board) PieceAt(pos position.Pos) (Piece, bool) {
	if !pos.IsValid() {
		return PieceNone, false
	}
	p := b.mailbox[pos]
	return p, p != PieceNone
}

func (b *Board) Bitmap(p Piece) Bitmap {
	if !p.IsValid() {
		return 0
	}
	return b.bitmaps[p]
}

// GetBitmap returns the bitmap of the piece type t owned by s.
func (b *Board) GetBitmap(s Side, t PieceType) Bitmap {
	return b.Bitmap(t.Of(s))
}

func (b *Board) Occupied(s Side) Bitmap {
	return b.occupied[s]
}

func (b *Board) OccupiedAll() Bitmap {
	return b.occupied[SideWhite] | b.occupied[SideBlack]
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

func (b *Board) SetCastleRights(c CastleRights) {
	b.castleRights = c & CastleRightsAll
}

// EnPassant returns the en passant target, or position.NoSquare.
func (b *Board) EnPassant() position.Pos {
	return b.enPassant
}

func (b *Board) SetEnPassant(pos position.Pos) {
	if !pos.IsValid() {
		pos = position.NoSquare
	}
	b.enPassant = pos
}

func (b *Board) HalfMoveClock() uint16 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint16 {
	return b.fullMoveClock
}

// Ply returns the number of half moves played since the start of the game.
func (b *Board) Ply(turn Side) uint16 {
	if b.fullMoveClock == 0 {
		return uint16(turn)
	}
	return (b.fullMoveClock-1)*2 + uint16(turn)
}

func (b *Board) Attacked() Bitmap {
	return b.attacked
}

func (b *Board) SetAttacked(bm Bitmap) {
	b.attacked = bm
}

// Validate checks the bitmap/mailbox/occupancy consistency.
func (b *Board) Validate() error {
	var union [SideCount]Bitmap
	for p := Piece(0); p < PieceCount; p++ {
		union[p.Side()] |= b.bitmaps[p]
		for bm := b.bitmaps[p]; bm != 0; {
			pos := bm.PopLS1B()
			if b.mailbox[pos] != p {
				return fmt.Errorf("%w: %s bitmap has %s, mailbox holds %q", ErrInconsistentBoard, p, pos, b.mailbox[pos])
			}
		}
	}
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		p := b.mailbox[pos]
		if p == PieceNone {
			continue
		}
		if !p.IsValid() {
			return fmt.Errorf("%w: mailbox %s holds invalid piece %d", ErrInconsistentBoard, pos, p)
		}
		if !b.bitmaps[p].IsSet(pos) {
			return fmt.Errorf("%w: mailbox %s holds %s, bitmap is clear", ErrInconsistentBoard, pos, p)
		}
	}
	for _, s := range []Side{SideWhite, SideBlack} {
		if union[s] != b.occupied[s] {
			return fmt.Errorf("%w: %s occupancy %#x, pieces %#x", ErrInconsistentBoard, s, uint64(b.occupied[s]), uint64(union[s]))
		}
	}
	return nil
}

// Clone returns a deep copy of the board. All fields are values.
func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) Equal(o *Board) bool {
	return *b == *o
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if p, ok := b.PieceAt(position.NewPos(x, y)); ok {
				sym = p.SymbolFEN()
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

var (
	colorCellLight = color.New(color.FgBlack, color.BgHiWhite)
	colorCellDark  = color.New(color.FgBlack, color.BgGreen)
	colorLabel     = color.New(color.Bold)
)

// Draw renders the board with coloured cells. Colour output follows
// color.NoColor, so it degrades to plain text when not writing to a terminal.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if p, ok := b.PieceAt(position.NewPos(x, y)); ok {
				sym = p.SymbolUnicode(false)
			}
			cell := colorCellLight
			if x%2^y%2 == 0 {
				cell = colorCellDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("cast: %04b\nenps: %s\nhalf: %4d\nfull: %4d", b.castleRights, b.enPassant, b.halfMoveClock, b.fullMoveClock)
}
