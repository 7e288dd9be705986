package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/chesscore/position"
)

// Bitmap holds one bit per square, bit i for position.Pos(i).
type Bitmap uint64

// The Shift functions move every bit one square in a compass direction.
// Bits that would leave the board are dropped instead of wrapping around.

func ShiftNW(bm Bitmap) Bitmap {
	return (bm & maskNotFileA) << 7
}

func ShiftN(bm Bitmap) Bitmap {
	return bm << 8
}

func ShiftNE(bm Bitmap) Bitmap {
	return (bm & maskNotFileH) << 9
}

func ShiftE(bm Bitmap) Bitmap {
	return (bm & maskNotFileH) << 1
}

func ShiftSE(bm Bitmap) Bitmap {
	return (bm & maskNotFileH) >> 7
}

func ShiftS(bm Bitmap) Bitmap {
	return bm >> 8
}

func ShiftSW(bm Bitmap) Bitmap {
	return (bm & maskNotFileA) >> 9
}

func ShiftW(bm Bitmap) Bitmap {
	return (bm & maskNotFileA) >> 1
}

func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

// NewBitmap returns a bitmap with only pos set.
func NewBitmap(pos position.Pos) Bitmap {
	return 1 << uint(pos)
}

func (bm *Bitmap) Set(pos position.Pos) {
	*bm |= NewBitmap(pos)
}

func (bm *Bitmap) Unset(pos position.Pos) {
	*bm &^= NewBitmap(pos)
}

func (bm Bitmap) IsSet(pos position.Pos) bool {
	return bm&NewBitmap(pos) != 0
}

// LS1B returns the lowest set square, or position.NoSquare for an empty bitmap.
func (bm Bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

// PopLS1B clears and returns the lowest set square.
func (bm *Bitmap) PopLS1B() position.Pos {
	pos := bm.LS1B()
	*bm &= *bm - 1
	return pos
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

func (bm Bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := position.MaxComponentScalar; y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := position.Pos(0); x < position.MaxComponentScalar; x++ {
			if bm.IsSet(position.NewPos(x, y-1)) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < position.MaxComponentScalar; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
