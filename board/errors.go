package board

import "errors"

var (
	ErrInvalidFEN          = errors.New("invalid fen")
	ErrInvalidPieceChar    = errors.New("invalid piece character")
	ErrInvalidCastlingChar = errors.New("invalid castling character")
	ErrInvalidMove         = errors.New("invalid move")
	ErrInvalidEnumValue    = errors.New("invalid enum value")
	ErrSquareOccupied      = errors.New("square occupied")
	ErrPieceMismatch       = errors.New("piece mismatch")
	ErrInconsistentBoard   = errors.New("inconsistent board")
)
