package board

import (
	"github.com/daystram/chesscore/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

const (
	maskNotFileA  Bitmap = ^Bitmap(0x_01_01_01_01_01_01_01_01)
	maskNotFileAB Bitmap = ^Bitmap(0x_03_03_03_03_03_03_03_03)
	maskNotFileH  Bitmap = ^Bitmap(0x_80_80_80_80_80_80_80_80)
	maskNotFileGH Bitmap = ^Bitmap(0x_C0_C0_C0_C0_C0_C0_C0_C0)
)

// maskRow[y] covers every square of rank y.
var (
	maskRow = [Height]Bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
)
