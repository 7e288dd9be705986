package board

// History is a stack of board snapshots, pushed when a move is made and
// popped when it is taken back. It assumes a single mutator; concurrent
// searchers need their own copy.
type History struct {
	entries []historyEntry
}

type historyEntry struct {
	board Board
	turn  Side
	hash  uint64
}

func NewHistory() *History {
	return &History{
		entries: make([]historyEntry, 0, 256),
	}
}

// Push stores a copy of b.
func (h *History) Push(b *Board, turn Side, hash uint64) {
	h.entries = append(h.entries, historyEntry{
		board: *b,
		turn:  turn,
		hash:  hash,
	})
}

// Pop removes the latest snapshot.
func (h *History) Pop() (Board, Side, bool) {
	if len(h.entries) == 0 {
		return Board{}, SideWhite, false
	}
	e := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return e.board, e.turn, true
}

func (h *History) Peek() (Board, Side, bool) {
	if len(h.entries) == 0 {
		return Board{}, SideWhite, false
	}
	e := h.entries[len(h.entries)-1]
	return e.board, e.turn, true
}

func (h *History) Len() int {
	return len(h.entries)
}

// Repetitions counts the snapshots with the given hash.
func (h *History) Repetitions(hash uint64) int {
	var n int
	for _, e := range h.entries {
		if e.hash == hash {
			n++
		}
	}
	return n
}

func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// Clone returns an independent copy, e.g. for a parallel searcher.
func (h *History) Clone() *History {
	entries := make([]historyEntry, len(h.entries), cap(h.entries))
	copy(entries, h.entries)
	return &History{entries: entries}
}
