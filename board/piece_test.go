package board

import (
	"errors"
	"testing"
)

func TestPieceEncoding(t *testing.T) {
	t.Parallel()

	for p := Piece(0); p < PieceCount; p++ {
		if p.Flip().Flip() != p {
			t.Errorf("%s: flip is not an involution", p)
		}
		if p.Flip().Type() != p.Type() || p.Flip().Side() == p.Side() {
			t.Errorf("%s: flip changed the type or kept the side", p)
		}
		if p.Type().Of(p.Side()) != p {
			t.Errorf("%s: type/side round trip failed", p)
		}
		if p.IsWhite() != (p.Side() == SideWhite) {
			t.Errorf("%s: IsWhite disagrees with Side", p)
		}
		got, err := PieceFromSymbol(p.SymbolFEN()[0])
		if err != nil || got != p {
			t.Errorf("%s: symbol round trip failed: got=%s err=%v", p, got, err)
		}
	}
	if PieceNone.IsValid() || PieceTypeNone.IsValid() {
		t.Error("sentinels must not be valid")
	}
	if WhiteKing.Type() != PieceTypeKing || BlackPawn.Side() != SideBlack {
		t.Error("unexpected decoding of concrete pieces")
	}
}

func TestNewPiece(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		value   int
		want    Piece
		wantErr error
	}{
		{name: "first", value: 0, want: WhitePawn},
		{name: "last", value: 11, want: BlackKing},
		{name: "negative", value: -1, want: PieceNone, wantErr: ErrInvalidEnumValue},
		{name: "too large", value: 12, want: PieceNone, wantErr: ErrInvalidEnumValue},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPiece(tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("unexpected piece: got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestNewPieceType(t *testing.T) {
	t.Parallel()

	for v := 0; v < PieceTypeCount; v++ {
		got, err := NewPieceType(v)
		if err != nil || int(got) != v {
			t.Errorf("unexpected result for %d: got=%d err=%v", v, got, err)
		}
	}
	for _, v := range []int{-1, 6, 255} {
		if _, err := NewPieceType(v); !errors.Is(err, ErrInvalidEnumValue) {
			t.Errorf("unexpected error for %d: %v", v, err)
		}
	}
}

func TestPieceFromSymbolInvalid(t *testing.T) {
	t.Parallel()

	for _, sym := range []byte{'x', 'X', '0', ' ', '/'} {
		if _, err := PieceFromSymbol(sym); !errors.Is(err, ErrInvalidPieceChar) {
			t.Errorf("unexpected error for %q: %v", sym, err)
		}
		if _, err := PieceTypeFromSymbol(sym); !errors.Is(err, ErrInvalidPieceChar) {
			t.Errorf("unexpected type error for %q: %v", sym, err)
		}
	}
	if pt, err := PieceTypeFromSymbol('Q'); err != nil || pt != PieceTypeQueen {
		t.Errorf("unexpected result for 'Q': got=%s err=%v", pt, err)
	}
}

func TestSide(t *testing.T) {
	t.Parallel()

	if SideWhite.Opposite() != SideBlack || SideBlack.Opposite() != SideWhite {
		t.Error("unexpected opposite side")
	}
	for _, s := range []Side{SideWhite, SideBlack} {
		got, err := NewSideFromSymbol(s.Symbol())
		if err != nil || got != s {
			t.Errorf("unexpected round trip for %s: got=%s err=%v", s, got, err)
		}
	}
	if _, err := NewSideFromSymbol("W"); !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("unexpected error: %v", err)
	}
}
