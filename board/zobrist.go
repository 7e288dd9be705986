package board

import "github.com/daystram/chesscore/position"

// DefaultZobristSeed seeds the keys used by NewZobrist callers that do not care.
const DefaultZobristSeed = 7

// Zobrist holds the random keys for position hashing. Like AttackTable it is
// built once and only read afterwards.
type Zobrist struct {
	piece        [PieceCount][TotalCells]uint64
	enPassant    [TotalCells]uint64
	castleRights [16]uint64
	sideBlack    uint64
}

func NewZobrist(seed uint64) *Zobrist {
	r := NewPseudoRand(seed)
	z := &Zobrist{}
	for p := range z.piece {
		for pos := range z.piece[p] {
			z.piece[p][pos] = r.Uint64()
		}
	}
	for pos := range z.enPassant {
		z.enPassant[pos] = r.Uint64()
	}
	for c := range z.castleRights {
		z.castleRights[c] = r.Uint64()
	}
	z.sideBlack = r.Uint64()
	return z
}

// Hash computes the key of b with turn to move from scratch.
func (z *Zobrist) Hash(b *Board, turn Side) uint64 {
	var hash uint64
	for p := Piece(0); p < PieceCount; p++ {
		for bm := b.bitmaps[p]; bm != 0; {
			hash ^= z.piece[p][bm.PopLS1B()]
		}
	}
	hash ^= z.castleRights[b.castleRights&CastleRightsAll]
	if b.enPassant != position.NoSquare {
		hash ^= z.enPassant[b.enPassant]
	}
	if turn == SideBlack {
		hash ^= z.sideBlack
	}
	return hash
}
