package main

import (
	"fmt"
	"log"

	"github.com/daystram/chesscore/storage"
)

func openStore(dir string) (*storage.Storage, error) {
	log.Printf("opening position database: %s\n", dir)
	return storage.NewStorage(dir)
}

func listPositions(st *storage.Storage) error {
	positions, err := st.ListPositions()
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		log.Println("no saved positions")
		return nil
	}
	for _, pos := range positions {
		_, _ = heading.Printf("%-20s", pos.Name)
		fmt.Printf(" %s  %s\n", pos.SavedAt.Format("2006-01-02 15:04"), pos.FEN)
	}
	return nil
}
