package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/engine"
)

// Interface is a line-oriented command loop over a single Engine.
type Interface struct {
	engine *engine.Engine
	in     io.Reader
	out    io.Writer
}

func NewInterface(in io.Reader, out io.Writer) *Interface {
	return &Interface{
		in:  in,
		out: out,
	}
}

// Run reads commands until "quit" or the end of input.
func (i *Interface) Run() error {
	if err := i.reset(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		var err error
		switch args := strings.Fields(cmd); args[0] {
		case "new":
			err = i.reset()
		case "position":
			err = i.commandPosition(args[1:])
		case "d":
			i.println(i.engine.Board().Draw())
		case "debug":
			i.println(i.engine.Board().DebugString())
		case "fen":
			i.println(i.engine.FEN())
		case "flip":
			i.engine.FlipTurn()
			i.println(i.engine.Turn())
		case "push":
			i.engine.PushHistory()
			i.println("history", i.engine.History().Len())
		case "pop":
			if !i.engine.PopHistory() {
				err = errors.New("history is empty")
			}
		case "hash":
			i.println(fmt.Sprintf("%016x repetitions=%d", i.engine.Hash(), i.engine.Repetitions()))
		case "attacks":
			err = i.commandAttacks(args[1:])
		case "move":
			err = i.commandMove(args[1:])
		case "square":
			err = i.commandSquare(args[1:])
		case "quit":
			return nil
		default:
			err = fmt.Errorf("unknown command %q", args[0])
		}
		if err != nil {
			i.println("error:", err)
		}
	}
	return scanner.Err()
}

func (i *Interface) commandPosition(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: position startpos | position fen <fen>")
	}

	var fen string
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		return fmt.Errorf("unknown position source %q", args[0])
	}
	return i.engine.LoadFEN(fen)
}

func (i *Interface) commandAttacks(args []string) error {
	s := i.engine.Turn()
	if len(args) > 0 {
		var err error
		if s, err = board.NewSideFromSymbol(args[0]); err != nil {
			return err
		}
	}
	i.println(i.engine.AttackedBy(s).Dump())
	return nil
}

func (i *Interface) commandMove(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: move <uci>")
	}
	mv, err := i.engine.ParseMove(args[0])
	if err != nil {
		return err
	}
	p, ok := i.engine.Board().PieceAt(mv.From)
	if !ok {
		i.println(fmt.Sprintf("%s: %s -> %s, empty origin", mv, mv.From, mv.To))
		return nil
	}
	i.println(fmt.Sprintf("%s: %s %s -> %s", mv, p, mv.From, mv.To))
	return nil
}

func (i *Interface) commandSquare(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: square <notation>")
	}
	pos, err := i.engine.ParseSquare(args[0])
	if err != nil {
		return err
	}
	p, _ := i.engine.Board().PieceAt(pos)
	i.println(fmt.Sprintf("%s=%d %s", pos, pos, p))
	return nil
}

func (i *Interface) reset() error {
	e, err := engine.NewEngine(engine.WithLogger(i.println))
	if err != nil {
		return err
	}
	i.engine = e
	return nil
}

func (i *Interface) println(a ...any) {
	_, _ = fmt.Fprintln(i.out, a...)
}
