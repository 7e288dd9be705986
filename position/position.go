package position

import (
	"errors"

	"golang.org/x/exp/constraints"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalSquares is the number of squares on the board.
	TotalSquares = MaxComponentScalar * MaxComponentScalar

	// NoSquare is the sentinel for "no square", e.g. an absent en passant target.
	NoSquare Pos = TotalSquares
)

var (
	// ErrInvalidSquare represents a malformed algebraic square.
	ErrInvalidSquare = errors.New("invalid square")
)

// Pos is a square index, little-endian rank-file: a1=0, h1=7, a8=56, h8=63.
type Pos int8

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Pos = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
)

const (
	FileA Pos = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Pos = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// NewPosFromNotation decodes a two character algebraic square ("a1".."h8").
func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return NoSquare, err
	}
	return MaxComponentScalar*y + x, nil
}

// NewPos builds a square from file and rank components.
func NewPos(x, y Pos) Pos {
	return MaxComponentScalar*y + x
}

func (p Pos) IsValid() bool {
	return p >= 0 && p < TotalSquares
}

func (p Pos) String() string {
	if p == NoSquare {
		return "-"
	}
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return string(rune('a'+p.X())) + string(rune('1'+p.Y()))
}

// X returns the file of the square, 0 for the a-file.
func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

// Y returns the rank of the square, 0 for the first rank.
func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

// FileDistance returns the number of files between p and q.
func (p Pos) FileDistance(q Pos) Pos {
	return abs(p.X() - q.X())
}

// RankDistance returns the number of ranks between p and q.
func (p Pos) RankDistance(q Pos) Pos {
	return abs(p.Y() - q.Y())
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidSquare
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if x < 'a' || x >= 'a'+byte(MaxComponentScalar) {
		return 0, ErrInvalidSquare
	}
	return Pos(x - 'a'), nil
}

func notationToY(y byte) (Pos, error) {
	if y < '1' || y >= '1'+byte(MaxComponentScalar) {
		return 0, ErrInvalidSquare
	}
	return Pos(y - '1'), nil
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('1' + p))
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
