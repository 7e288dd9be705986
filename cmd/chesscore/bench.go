package main

import (
	"log"

	"github.com/daystram/chesscore/bench"
)

func runBench(n int, parallel bool) error {
	mode := "sequential"
	if parallel {
		mode = "parallel"
	}
	log.Printf("============ bench(%d): %s\n", n, mode)

	out := make(chan string, 1)
	if _, err := bench.Run(n, bench.DefaultFENs, parallel, out); err != nil {
		return err
	}
	log.Println(<-out)
	return nil
}
