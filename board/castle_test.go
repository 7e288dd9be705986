package board

import (
	"errors"
	"testing"
)

func TestCastleRightsFromFEN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		field   string
		want    CastleRights
		wantErr error
	}{
		{field: "-", want: CastleRightsNone},
		{field: "KQkq", want: CastleRightsAll},
		{field: "Kq", want: CastleRightsWhiteKingside | CastleRightsBlackQueenside},
		{field: "k", want: CastleRightsBlackKingside},
		{field: "KX", want: CastleRightsNone, wantErr: ErrInvalidCastlingChar},
		{field: "--", want: CastleRightsNone, wantErr: ErrInvalidCastlingChar},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.field, func(t *testing.T) {
			t.Parallel()
			got, err := NewCastleRightsFromFEN(tt.field)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("unexpected rights: got=%04b want=%04b", got, tt.want)
			}
			if err == nil && got.String() != tt.field {
				t.Errorf("unexpected string: got=%s want=%s", got, tt.field)
			}
		})
	}
}

func TestCastleRightsSet(t *testing.T) {
	t.Parallel()

	c := CastleRightsAll
	c.Set(CastleDirectionWhiteRight, false)
	c.Set(CastleDirectionWhiteLeft, false)
	if c.IsSideAllowed(SideWhite) || !c.IsSideAllowed(SideBlack) {
		t.Errorf("unexpected side rights: %s", c)
	}
	c.Set(CastleDirectionWhiteLeft, true)
	if !c.IsAllowed(CastleDirectionWhiteLeft) || c.IsAllowed(CastleDirectionWhiteRight) {
		t.Errorf("unexpected rights: %s", c)
	}
}
