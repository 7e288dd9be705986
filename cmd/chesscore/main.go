package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/console"
	"github.com/daystram/chesscore/engine"
)

const (
	exitOK = iota
	exitErr
)

var (
	fenFlag  = flag.String("fen", "", "position to load, defaults to the trailing arguments or the starting position")
	draw     = flag.Bool("draw", false, "draw the loaded board")
	attacks  = flag.Bool("attacks", false, "print the knight and king attacks of both sides")
	debug    = flag.Bool("debug", false, "print the internal board state")
	quiet    = flag.Bool("quiet", false, "do not log position loads")
	noColor  = flag.Bool("nocolor", false, "disable coloured output")
	dbDir    = flag.String("db", "", "position database directory")
	saveName = flag.String("save", "", "save the loaded position under this name (requires -db)")
	loadName = flag.String("load", "", "load the position saved under this name (requires -db)")
	list     = flag.Bool("list", false, "list saved positions (requires -db)")

	consoleRun = flag.Bool("console", false, "run the interactive command console on stdin")

	benchRun      = flag.Bool("bench", false, "run FEN import benchmark")
	benchN        = flag.Int("bench.n", 10_000, "iterations per position in bench mode")
	benchParallel = flag.Bool("bench.parallel", false, "run one worker per position in bench mode")
)

var heading = color.New(color.Bold, color.FgCyan)

func main() {
	flag.Parse()
	if *noColor {
		color.NoColor = true
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	if *consoleRun {
		return console.NewInterface(os.Stdin, os.Stdout).Run()
	}
	if *benchRun {
		return runBench(*benchN, *benchParallel)
	}

	fen := *fenFlag
	if fen == "" && len(args) > 0 {
		fen = strings.Join(args, " ")
	}

	if *dbDir != "" {
		st, err := openStore(*dbDir)
		if err != nil {
			return err
		}
		defer func() {
			if err := st.Close(); err != nil {
				log.Println(err)
			}
		}()

		if *list {
			return listPositions(st)
		}
		if *loadName != "" {
			saved, err := st.LoadPosition(*loadName)
			if err != nil {
				return err
			}
			fen = saved.FEN
		}
		if *saveName != "" {
			if fen == "" {
				fen = board.DefaultStartingPositionFEN
			}
			if err := st.SavePosition(*saveName, fen); err != nil {
				return err
			}
			log.Printf("saved position %q\n", *saveName)
		}
	} else if *list || *loadName != "" || *saveName != "" {
		return errors.New("-list, -load and -save require -db")
	}

	if fen == "" {
		fen = board.DefaultStartingPositionFEN
	}
	logger := func(a ...any) { log.Println(a...) }
	if *quiet {
		logger = func(...any) {}
	}
	e, err := engine.NewEngine(
		engine.WithFEN(fen),
		engine.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	return show(e)
}

func show(e *engine.Engine) error {
	fmt.Println(e.FEN())
	if *draw {
		fmt.Println()
		fmt.Println(e.Board().Draw())
	}
	if *debug {
		fmt.Println(e.Board().Dump())
		fmt.Println(e.Board().DebugString())
	}
	if *attacks {
		printAttacks(e)
	}
	return nil
}
