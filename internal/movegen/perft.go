package movegen

import (
	"sync"

	. "github.com/cricklet/chessbits/internal/bitboards"
	. "github.com/cricklet/chessbits/internal/helpers"
	. "github.com/cricklet/chessbits/internal/zobrist"
)

type PerftOptions struct {
	// Cache, when set, reuses counts for positions reached by transposition.
	Cache Optional[*TranspositionTable]
}

// PerftCounter counts pseudo-legal move paths. Move buffers are recycled
// through a pool so deep counts do not allocate per node.
type PerftCounter struct {
	generator *Generator
	buffers   *Pool[MoveList]
	cache     *TranspositionTable
}

func NewPerftCounter(generator *Generator, opts PerftOptions) *PerftCounter {
	return &PerftCounter{
		generator: generator,
		cache:     opts.Cache.ValueOr(nil),
		buffers: NewPool(
			func() MoveList { return make(MoveList, 0, 64) },
			func(l *MoveList) { *l = (*l)[:0] },
		),
	}
}

func (p *PerftCounter) PoolStats() PoolStats {
	return p.buffers.Stats()
}

// Count returns the number of leaf nodes depth plies below board.
func (p *PerftCounter) Count(board BoardArray, player Player, depth int) int {
	return p.count(board, player, depth, HashForBoard(&board, player))
}

func (p *PerftCounter) count(board BoardArray, player Player, depth int, hash uint64) int {
	if depth <= 0 {
		return 1
	}

	if p.cache != nil {
		if cached := p.cache.Get(hash, depth); cached.HasValue() {
			return cached.Value().Count
		}
	}

	buffer := p.buffers.Get()
	defer p.buffers.Release(buffer)

	b := BitboardsFromBoard(board)
	*buffer = p.generator.AppendMoves(*buffer, &b, player)

	total := 0
	if depth == 1 {
		total = len(*buffer)
	} else {
		for _, move := range *buffer {
			child := board
			captured := move.Apply(&child)
			childHash := UpdateHash(hash, move.StartIndex, move.EndIndex, board[move.StartIndex], captured)
			total += p.count(child, player.Other(), depth-1, childHash)
		}
	}

	if p.cache != nil {
		p.cache.Put(hash, depth, total)
	}
	return total
}

type PerftDivision struct {
	Move  Move
	Count int
}

// Divide counts each root move on its own goroutine. done, if given, is
// called as each root move finishes. The result keeps generation order.
func (p *PerftCounter) Divide(board BoardArray, player Player, depth int, done func(PerftDivision)) []PerftDivision {
	moves := p.generator.GenerateMoves(board, player)
	result := make([]PerftDivision, len(moves))

	var wg sync.WaitGroup
	for i, move := range moves {
		wg.Add(1)
		go func(i int, move Move) {
			defer wg.Done()

			child := board
			move.Apply(&child)
			result[i] = PerftDivision{Move: move, Count: p.Count(child, player.Other(), depth-1)}
			if done != nil {
				done(result[i])
			}
		}(i, move)
	}
	wg.Wait()

	return result
}
