package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/chesscore/position"
)

// FENFieldCount is the number of whitespace separated FEN fields.
const FENFieldCount = 6

// ParseFEN decodes a FEN record into a new board and the side to move.
func ParseFEN(fen string) (*Board, Side, error) {
	return ParseFENFields(strings.Fields(fen))
}

// ParseFENFields decodes the six FEN fields. Nothing is returned on failure.
func ParseFENFields(segments []string) (*Board, Side, error) {
	if len(segments) != FENFieldCount {
		return nil, SideWhite, fmt.Errorf("%w: incorrect number of segments: %d", ErrInvalidFEN, len(segments))
	}

	b := NewEmptyBoard()
	if err := b.parsePlacement(segments[0]); err != nil {
		return nil, SideWhite, err
	}

	turn, err := NewSideFromSymbol(segments[1])
	if err != nil {
		return nil, SideWhite, err
	}

	b.castleRights, err = NewCastleRightsFromFEN(segments[2])
	if err != nil {
		return nil, SideWhite, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}

	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return nil, SideWhite, fmt.Errorf("%w: invalid enpassant position '%s': %w", ErrInvalidFEN, segments[3], err)
		}
		if !(maskRow[position.Rank3] | maskRow[position.Rank6]).IsSet(pos) {
			return nil, SideWhite, fmt.Errorf("%w: enpassant position '%s' not on rank 3 or 6", ErrInvalidFEN, segments[3])
		}
		b.enPassant = pos
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return nil, SideWhite, fmt.Errorf("%w: invalid half move clock: %w", ErrInvalidFEN, err)
	}
	b.halfMoveClock = uint16(halfMoveClock)

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil {
		return nil, SideWhite, fmt.Errorf("%w: invalid full move clock: %w", ErrInvalidFEN, err)
	}
	b.fullMoveClock = uint16(fullMoveClock)

	return b, turn, nil
}

// parsePlacement walks a cursor from a8. A '/' drops it one rank back to the
// a-file, which is only valid once the current rank is exactly filled.
func (b *Board) parsePlacement(placement string) error {
	cursor := position.A8
	rankEnd := cursor + Width
	for i := 0; i < len(placement); i++ {
		switch c := placement[i]; {
		case c == '/':
			if cursor != rankEnd {
				return fmt.Errorf("%w: rank %d has %d cells", ErrInvalidFEN, rankEnd.Y(), cursor-(rankEnd-Width))
			}
			if rankEnd == Width {
				return fmt.Errorf("%w: too many ranks", ErrInvalidFEN)
			}
			cursor -= 2 * Width
			rankEnd -= Width
		case '1' <= c && c <= '8':
			skip := position.Pos(c - '0')
			if cursor+skip > rankEnd {
				return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
			}
			cursor += skip
		default:
			p, err := PieceFromSymbol(c)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidFEN, err)
			}
			if cursor >= rankEnd {
				return fmt.Errorf("%w: too many cells in rank %d", ErrInvalidFEN, rankEnd.Y())
			}
			if err := b.Place(p, cursor); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidFEN, err)
			}
			cursor++
		}
	}
	if rankEnd != Width || cursor != rankEnd {
		return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
	}
	return nil
}

// UnmarshalFEN replaces the board with the decoded position and returns the
// side to move. On error the receiver is left untouched.
func (b *Board) UnmarshalFEN(fen string) (Side, error) {
	if b == nil {
		return SideWhite, fmt.Errorf("invalid board")
	}
	scratch, turn, err := ParseFEN(fen)
	if err != nil {
		return SideWhite, err
	}
	*b = *scratch
	return turn, nil
}

// MarshalFEN encodes the board; the board does not track the side to move.
func MarshalFEN(b *Board, turn Side) string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		skip := 0
		for x := position.Pos(0); x < Width; x++ {
			p, ok := b.PieceAt(position.NewPos(x, y))
			if !ok {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN())
		}
		if skip != 0 {
			_, _ = builder.WriteString(strconv.Itoa(skip))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %s %s %s %d %d",
		turn.Symbol(), b.castleRights, b.enPassant, b.halfMoveClock, b.fullMoveClock))

	return builder.String()
}

func (b *Board) FEN(turn Side) string {
	return MarshalFEN(b, turn)
}
