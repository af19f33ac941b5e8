package zobrist

import (
	"math/rand"
	"testing"

	. "github.com/cricklet/chessbits/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestHashDependsOnSideToMove(t *testing.T) {
	board := StartingBoard
	assert.NotEqual(t, HashForBoard(&board, White), HashForBoard(&board, Black))
	assert.Equal(t, ZobristSideToMove, HashForBoard(&board, White)^HashForBoard(&board, Black))
	assert.Equal(t, uint64(0), HashForBoard(&BoardArray{}, White))
}

func TestUpdateHashMatchesFullHash(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 1000; i++ {
		board := BoardArray{}
		for j := range board {
			if rng.Intn(3) == 0 {
				board[j] = Piece(1 + rng.Intn(NumPieces-1))
			}
		}
		player := Player(rng.Intn(2))
		start, end := rng.Intn(64), rng.Intn(64)
		if start == end || board[start] == XX {
			continue
		}

		before := HashForBoard(&board, player)
		moved, captured := board[start], board[end]
		board[end], board[start] = moved, XX

		assert.Equal(t, HashForBoard(&board, player.Other()), UpdateHash(before, start, end, moved, captured))
	}
}

func TestTranspositionTable(t *testing.T) {
	table := NewTranspositionTable(16)

	assert.True(t, table.Get(35, 2).IsEmpty())
	table.Put(35, 2, 400)

	cached := table.Get(35, 2)
	assert.True(t, cached.HasValue())
	assert.Equal(t, 400, cached.Value().Count)

	assert.True(t, table.Get(35, 3).IsEmpty())
	assert.True(t, table.Get(35+16, 2).IsEmpty())

	assert.Equal(t, "hits: 1, collisions: 1, depth mismatch: 1, misses: 1", table.Stats())
}
