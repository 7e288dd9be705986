package main

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/engine"
)

func printAttacks(e *engine.Engine) {
	p := message.NewPrinter(language.English)
	for _, s := range []board.Side{e.Turn(), e.Turn().Opposite()} {
		bm := e.AttackedBy(s)
		enemy := bm & e.Board().Occupied(s.Opposite())
		fmt.Println()
		_, _ = heading.Printf("%s attacks", s)
		fmt.Println(p.Sprintf(" (%d squares, %d enemy pieces)", bm.BitCount(), enemy.BitCount()))
		fmt.Println(bm.Dump())
	}
}
