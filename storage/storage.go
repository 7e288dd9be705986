package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/daystram/chesscore/board"
)

const keyPrefixPosition = "position/"

var ErrPositionNotFound = errors.New("position not found")

// SavedPosition is a named FEN snapshot.
type SavedPosition struct {
	Name    string    `json:"-"`
	FEN     string    `json:"fen"`
	SavedAt time.Time `json:"saved_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens (or creates) the database in dir.
func NewStorage(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %s: %w", dir, err)
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePosition stores fen under name, replacing any earlier entry. The FEN
// is validated first so the store only ever holds importable positions.
func (s *Storage) SavePosition(name, fen string) error {
	if name == "" {
		return errors.New("position name must not be empty")
	}
	if _, _, err := board.ParseFEN(fen); err != nil {
		return err
	}

	data, err := json.Marshal(&SavedPosition{
		FEN:     fen,
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefixPosition+name), data)
	})
}

// LoadPosition returns the entry saved under name.
func (s *Storage) LoadPosition(name string) (*SavedPosition, error) {
	pos := &SavedPosition{Name: name}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefixPosition + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrPositionNotFound, name)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, pos)
		})
	})
	if err != nil {
		return nil, err
	}
	return pos, nil
}

// ListPositions returns every saved entry in key order.
func (s *Storage) ListPositions() ([]*SavedPosition, error) {
	var positions []*SavedPosition
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefixPosition)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			pos := &SavedPosition{Name: string(item.Key()[len(prefix):])}
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, pos)
			}); err != nil {
				return err
			}
			positions = append(positions, pos)
		}
		return nil
	})
	return positions, err
}

// DeletePosition removes the entry saved under name.
func (s *Storage) DeletePosition(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(keyPrefixPosition + name)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", ErrPositionNotFound, name)
			}
			return err
		}
		return txn.Delete(key)
	})
}
