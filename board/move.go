package board

import (
	"fmt"

	"github.com/daystram/chesscore/position"
)

// Move is a pure notation record; it carries no legality or side effect information.
type Move struct {
	From, To position.Pos

	// Promote is PieceTypeNone when the move does not promote.
	Promote  PieceType
	IsCastle bool
}

// NewMoveFromUCI decodes "e2e4" or "e7e8q". Castling is not detected here
// and IsCastle is always false.
func NewMoveFromUCI(uci string) (Move, error) {
	if len(uci) != 4 && len(uci) != 5 {
		return Move{}, fmt.Errorf("%w: '%s' has length %d", ErrInvalidMove, uci, len(uci))
	}
	from, err := position.NewPosFromNotation(uci[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: '%s': %w", ErrInvalidMove, uci, err)
	}
	to, err := position.NewPosFromNotation(uci[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: '%s': %w", ErrInvalidMove, uci, err)
	}
	mv := Move{
		From:    from,
		To:      to,
		Promote: PieceTypeNone,
	}
	if len(uci) == 5 {
		prom, err := PieceTypeFromSymbol(uci[4])
		if err != nil || prom == PieceTypePawn || prom == PieceTypeKing {
			return Move{}, fmt.Errorf("%w: '%s': bad promotion '%c'", ErrInvalidMove, uci, uci[4])
		}
		mv.Promote = prom
	}
	return mv, nil
}

func (m Move) String() string {
	return m.UCI()
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation() + m.Promote.Symbol()
}

func (m Move) IsPromote() bool {
	return m.Promote != PieceTypeNone
}
