package engine

import (
	"fmt"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/position"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	FEN         string
	ZobristSeed uint64
	Logger      func(...any)
}

type Option func(*EngineConfig)

func WithFEN(fen string) Option {
	return func(cfg *EngineConfig) {
		cfg.FEN = fen
	}
}

func WithLogger(logger func(...any)) Option {
	return func(cfg *EngineConfig) {
		cfg.Logger = logger
	}
}

func WithZobristSeed(seed uint64) Option {
	return func(cfg *EngineConfig) {
		cfg.ZobristSeed = seed
	}
}

// Engine owns the position being worked on: the board, whose turn it is,
// the precomputed attack tables and the snapshots of earlier positions.
// It is meant for a single goroutine.
type Engine struct {
	board   *board.Board
	tc      board.TurnContext
	attacks *board.AttackTable
	zobrist *board.Zobrist
	history *board.History

	logger func(...any)
}

func NewEngine(opts ...Option) (*Engine, error) {
	cfg := &EngineConfig{
		FEN:         board.DefaultStartingPositionFEN,
		ZobristSeed: board.DefaultZobristSeed,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}

	e := &Engine{
		board:   board.NewEmptyBoard(),
		attacks: board.NewAttackTable(),
		zobrist: board.NewZobrist(cfg.ZobristSeed),
		history: board.NewHistory(),
		logger:  cfg.Logger,
	}
	if err := e.LoadFEN(cfg.FEN); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) Board() *board.Board {
	return e.board
}

func (e *Engine) Turn() board.Side {
	return e.tc.Turn()
}

func (e *Engine) TurnContext() *board.TurnContext {
	return &e.tc
}

func (e *Engine) Attacks() *board.AttackTable {
	return e.attacks
}

func (e *Engine) History() *board.History {
	return e.history
}

// Hash returns the Zobrist key of the current position.
func (e *Engine) Hash() uint64 {
	return e.zobrist.Hash(e.board, e.tc.Turn())
}

// LoadFEN replaces the current position. On error the board, the turn and
// the history are left as they were.
func (e *Engine) LoadFEN(fen string) error {
	turn, err := e.board.UnmarshalFEN(fen)
	if err != nil {
		return fmt.Errorf("cannot load position: %w", err)
	}
	e.tc.Initialize(turn)
	e.history.Clear()

	e.logger(message.NewPrinter(language.English).
		Sprintf("loaded %s: %d pieces, %s to move, castling %s, en passant %s",
			fen, e.board.OccupiedAll().BitCount(), turn, e.board.CastleRights(), e.board.EnPassant()))
	return nil
}

// FlipTurn hands the move to the opponent.
func (e *Engine) FlipTurn() {
	e.tc.Flip()
}

// PushHistory snapshots the current position.
func (e *Engine) PushHistory() {
	e.history.Push(e.board, e.tc.Turn(), e.Hash())
}

// PopHistory restores the latest snapshot. It reports false if there is none.
func (e *Engine) PopHistory() bool {
	b, turn, ok := e.history.Pop()
	if !ok {
		return false
	}
	*e.board = b
	e.tc.Initialize(turn)
	return true
}

// Repetitions counts how often the current position occurs in the history.
func (e *Engine) Repetitions() int {
	return e.history.Repetitions(e.Hash())
}

// ParseMove decodes a UCI move string.
func (e *Engine) ParseMove(s string) (board.Move, error) {
	return board.NewMoveFromUCI(s)
}

// ParseSquare decodes algebraic square notation.
func (e *Engine) ParseSquare(s string) (position.Pos, error) {
	return position.NewPosFromNotation(s)
}

// AttackedBy returns the squares attacked by the knights and the king of s.
// Sliding pieces and pawns are not covered by the tables.
func (e *Engine) AttackedBy(s board.Side) board.Bitmap {
	var attacked board.Bitmap
	for _, t := range []board.PieceType{board.PieceTypeKnight, board.PieceTypeKing} {
		for bm := e.board.GetBitmap(s, t); bm != 0; {
			attacked |= e.attacks.Attacks(t, bm.PopLS1B())
		}
	}
	return attacked
}

// FEN exports the current position.
func (e *Engine) FEN() string {
	return e.board.FEN(e.tc.Turn())
}
