package board

import "github.com/daystram/chesscore/position"

// AttackTable holds the empty-board target squares of the leaper pieces.
// It is filled once by NewAttackTable and must not be written afterwards,
// which makes it safe to share between goroutines.
type AttackTable struct {
	knight [TotalCells]Bitmap
	king   [TotalCells]Bitmap
}

// NewAttackTable computes the knight and king tables.
//
// A plain shift wraps a piece leaving one side of the board onto the next
// rank of the other side, so the source bit is cleared first whenever it
// sits on a file the offset would carry it past.
//
//	      | <<15 |      | <<17 |
//	------|------|------|------|------
//	 << 6 | << 7 | << 8 | << 9 | <<10
//	------|------|------|------|------
//	      | >> 1 |   0  | << 1 |
//	------|------|------|------|------
//	 >>10 | >> 9 | >> 8 | >> 7 | >> 6
//	------|------|------|------|------
//	      | >>17 |      | >>15 |
func NewAttackTable() *AttackTable {
	t := &AttackTable{}
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := NewBitmap(pos)

		var knight Bitmap
		knight |= (cell & maskNotFileH) << 17
		knight |= (cell & maskNotFileA) << 15
		knight |= (cell & maskNotFileGH) << 10
		knight |= (cell & maskNotFileAB) << 6
		knight |= (cell & maskNotFileGH) >> 6
		knight |= (cell & maskNotFileAB) >> 10
		knight |= (cell & maskNotFileH) >> 15
		knight |= (cell & maskNotFileA) >> 17
		t.knight[pos] = knight

		t.king[pos] = Union(
			ShiftNW(cell), ShiftN(cell), ShiftNE(cell),
			ShiftW(cell), ShiftE(cell),
			ShiftSW(cell), ShiftS(cell), ShiftSE(cell),
		)
	}
	return t
}

func (t *AttackTable) KnightAttacks(pos position.Pos) Bitmap {
	return t.knight[pos]
}

func (t *AttackTable) KingAttacks(pos position.Pos) Bitmap {
	return t.king[pos]
}

// Attacks returns the table for a leaper piece type, or an empty bitmap for sliders and pawns.
func (t *AttackTable) Attacks(pt PieceType, pos position.Pos) Bitmap {
	switch pt {
	case PieceTypeKnight:
		return t.knight[pos]
	case PieceTypeKing:
		return t.king[pos]
	default:
		return 0
	}
}
