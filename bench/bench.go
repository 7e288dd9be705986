package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesscore/board"
)

// DefaultFENs is the position set used when none is given.
var DefaultFENs = []string{
	board.DefaultStartingPositionFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
}

// Result holds the counters of one run.
type Result struct {
	Imports uint64
	Pieces  uint64
	Lookups uint64
	Elapsed time.Duration
}

// Run imports every FEN iterations times and aggregates the knight and king
// attacks of each imported position. The attack table is built once and
// shared by all workers when parallel is set.
func Run(iterations int, fens []string, parallel bool, out chan string) (Result, error) {
	if len(fens) == 0 {
		fens = DefaultFENs
	}
	for _, fen := range fens {
		if _, _, err := board.ParseFEN(fen); err != nil {
			return Result{}, err
		}
	}

	var res Result
	at := board.NewAttackTable()

	var run runFunc
	if parallel {
		run = runParallel
	} else {
		run = runSequential
	}

	start := time.Now()
	run(at, iterations, fens, &res.Imports, &res.Pieces, &res.Lookups)
	res.Elapsed = time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("n=%d imports=%d rate=%dfen/s pieces=%d lookups=%d (%.3fs elapsed)",
				iterations, res.Imports, int(float64(res.Imports)/(res.Elapsed+1).Seconds()), res.Pieces, res.Lookups, res.Elapsed.Seconds())
	}
	return res, nil
}

type runFunc func(at *board.AttackTable, n int, fens []string, imports, pieces, lookups *uint64)

func runSequential(at *board.AttackTable, n int, fens []string, imports, pieces, lookups *uint64) {
	b := board.NewEmptyBoard()
	for i := 0; i < n; i++ {
		for _, fen := range fens {
			if _, err := b.UnmarshalFEN(fen); err != nil {
				continue
			}
			*imports++
			p, l := aggregate(at, b)
			*pieces += p
			*lookups += l
		}
	}
}

func runParallel(at *board.AttackTable, n int, fens []string, imports, pieces, lookups *uint64) {
	var wg sync.WaitGroup
	for _, fen := range fens {
		fen := fen
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := board.NewEmptyBoard()
			for i := 0; i < n; i++ {
				if _, err := b.UnmarshalFEN(fen); err != nil {
					return
				}
				atomic.AddUint64(imports, 1)
				p, l := aggregate(at, b)
				atomic.AddUint64(pieces, p)
				atomic.AddUint64(lookups, l)
			}
		}()
	}
	wg.Wait()
}

// aggregate stores the union of both sides' knight and king attacks in b.
func aggregate(at *board.AttackTable, b *board.Board) (uint64, uint64) {
	var attacked board.Bitmap
	var lookups uint64
	for _, s := range []board.Side{board.SideWhite, board.SideBlack} {
		for _, t := range []board.PieceType{board.PieceTypeKnight, board.PieceTypeKing} {
			for bm := b.GetBitmap(s, t); bm != 0; {
				attacked |= at.Attacks(t, bm.PopLS1B())
				lookups++
			}
		}
	}
	b.SetAttacked(attacked)
	return uint64(b.OccupiedAll().BitCount()), lookups
}

func (r Result) String() string {
	return fmt.Sprintf("imports=%d pieces=%d lookups=%d", r.Imports, r.Pieces, r.Lookups)
}
