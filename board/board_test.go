package board

import (
	"errors"
	"testing"

	"github.com/daystram/chesscore/position"
)

func TestPlaceRemoveRoundTrip(t *testing.T) {
	t.Parallel()

	b, _, err := ParseFEN("r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	for p := Piece(0); p < PieceCount; p++ {
		for pos := position.Pos(0); pos < TotalCells; pos++ {
			if _, ok := b.PieceAt(pos); ok {
				continue
			}
			before := b.Clone()
			if err := b.Place(p, pos); err != nil {
				t.Fatalf("unexpected place error: %v", err)
			}
			if got, ok := b.PieceAt(pos); !ok || got != p {
				t.Fatalf("unexpected piece at %s: got=%s want=%s", pos, got, p)
			}
			if !b.Bitmap(p).IsSet(pos) || !b.Occupied(p.Side()).IsSet(pos) {
				t.Fatalf("bitmaps not updated for %s at %s", p, pos)
			}
			if err := b.Validate(); err != nil {
				t.Fatal("inconsistent board:", err)
			}
			if err := b.Remove(p, pos); err != nil {
				t.Fatalf("unexpected remove error: %v", err)
			}
			if !b.Equal(before) {
				t.Fatalf("place/remove of %s at %s did not restore the board", p, pos)
			}
		}
	}
}

func TestPlaceOccupied(t *testing.T) {
	t.Parallel()

	b := NewEmptyBoard()
	if err := b.Place(WhiteKnight, position.E4); err != nil {
		t.Fatal("unexpected error:", err)
	}
	before := b.Clone()
	err := b.Place(BlackQueen, position.E4)
	if !errors.Is(err, ErrSquareOccupied) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrSquareOccupied)
	}
	if !b.Equal(before) {
		t.Error("board mutated by rejected place")
	}
}

func TestRemoveMismatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		piece   Piece
		pos     position.Pos
		wantErr error
	}{
		{name: "empty square", piece: WhitePawn, pos: position.E5, wantErr: ErrPieceMismatch},
		{name: "other piece", piece: BlackPawn, pos: position.E4, wantErr: ErrPieceMismatch},
		{name: "invalid piece", piece: PieceNone, pos: position.E4, wantErr: ErrInvalidEnumValue},
		{name: "invalid square", piece: WhitePawn, pos: position.NoSquare, wantErr: position.ErrInvalidSquare},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewEmptyBoard()
			if err := b.Place(WhitePawn, position.E4); err != nil {
				t.Fatal("unexpected error:", err)
			}
			before := b.Clone()
			if err := b.Remove(tt.piece, tt.pos); !errors.Is(err, tt.wantErr) {
				t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if !b.Equal(before) {
				t.Error("board mutated by rejected remove")
			}
		})
	}
}

func TestPlaceInvalidArgs(t *testing.T) {
	t.Parallel()
	b := NewEmptyBoard()
	if err := b.Place(Piece(PieceCount), position.A1); !errors.Is(err, ErrInvalidEnumValue) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidEnumValue)
	}
	if err := b.Place(WhiteKing, position.Pos(-1)); !errors.Is(err, position.ErrInvalidSquare) {
		t.Errorf("unexpected error: got=%v want=%v", err, position.ErrInvalidSquare)
	}
	if b.OccupiedAll() != 0 {
		t.Error("board mutated by rejected place")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	b, _, err := ParseFEN(DefaultStartingPositionFEN)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := b.Validate(); err != nil {
		t.Fatal("unexpected error:", err)
	}

	stale := b.Clone()
	stale.mailbox[position.E2] = PieceNone
	if err := stale.Validate(); !errors.Is(err, ErrInconsistentBoard) {
		t.Errorf("unexpected error for stale bitmap: got=%v", err)
	}

	ghost := b.Clone()
	ghost.mailbox[position.E4] = WhiteQueen
	if err := ghost.Validate(); !errors.Is(err, ErrInconsistentBoard) {
		t.Errorf("unexpected error for ghost mailbox: got=%v", err)
	}

	occ := b.Clone()
	occ.occupied[SideBlack].Set(position.E4)
	if err := occ.Validate(); !errors.Is(err, ErrInconsistentBoard) {
		t.Errorf("unexpected error for occupancy: got=%v", err)
	}
}

func TestBoardMeta(t *testing.T) {
	t.Parallel()

	b := NewEmptyBoard()
	if b.EnPassant() != position.NoSquare || b.CastleRights() != CastleRightsNone {
		t.Fatal("unexpected empty board metadata")
	}
	b.SetEnPassant(position.D6)
	if b.EnPassant() != position.D6 {
		t.Errorf("unexpected en passant: got=%s", b.EnPassant())
	}
	b.SetEnPassant(position.Pos(100))
	if b.EnPassant() != position.NoSquare {
		t.Errorf("unexpected en passant: got=%d", b.EnPassant())
	}
	b.SetCastleRights(0xFF)
	if b.CastleRights() != CastleRightsAll {
		t.Errorf("unexpected castle rights: got=%04b", b.CastleRights())
	}
	b.SetAttacked(NewBitmap(position.F7))
	if !b.Attacked().IsSet(position.F7) {
		t.Error("attacked bitmap not stored")
	}
	if got := b.Ply(SideBlack); got != 1 {
		t.Errorf("unexpected ply: got=%d want=1", got)
	}
}
