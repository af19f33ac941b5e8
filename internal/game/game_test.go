package game

import (
	"strings"
	"testing"

	. "github.com/cricklet/chessbits/internal/helpers"
	. "github.com/cricklet/chessbits/internal/movegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generator = DefaultGenerator()

func assertMovesInSync(t *testing.T, g *GameState) {
	t.Helper()
	assert.True(t, g.Moves.Equal(generator.GenerateMoves(g.Board, g.Player)), "%v to move\n%v", g.Player, g.Board.String())
}

func TestNewGameState(t *testing.T) {
	g := NewGameState(StartingBoard, White, generator)
	assert.Equal(t, 20, len(g.Moves))
	assert.Equal(t, Black, g.Enemy())
	assert.True(t, g.LastMove().IsEmpty())
	assert.Equal(t, StartingBoard.StateString(), g.StateString())
	assertMovesInSync(t, g)
}

func TestNewGameStateFromString(t *testing.T) {
	state := "RNBQKBNR" + "PPPPPPPP" + strings.Repeat("0", 32) + "pppppppp" + "rnbqkbnr"
	g, err := NewGameStateFromString(state, Black, generator)
	require.True(t, IsNil(err), err)
	assert.Equal(t, StartingBoard, g.Board)
	assert.Equal(t, Black, g.Player)
	assert.Equal(t, "a7a6", g.Moves[0].String())

	_, err = NewGameStateFromString(state[1:], White, generator)
	assert.ErrorIs(t, err, ErrInvalidBoardState)

	_, err = NewGameStateFromString(strings.Replace(state, "Q", "X", 1), White, generator)
	assert.ErrorIs(t, err, ErrInvalidBoardState)
}

func TestPerformMoveFlipsPlayerAndRegenerates(t *testing.T) {
	g := NewGameState(StartingBoard, White, generator)

	err := g.PerformMoveFromString("e2e4")
	require.True(t, IsNil(err), err)

	assert.Equal(t, Black, g.Player)
	assert.Equal(t, WP, g.Board[BoardIndexFromString("e4")])
	assert.Equal(t, XX, g.Board[BoardIndexFromString("e2")])
	assert.Equal(t, "e2e4", g.LastMove().Value().String())

	// the list now belongs to black
	assert.Equal(t, 20, len(g.Moves))
	for _, m := range g.Moves {
		assert.True(t, g.Board[m.StartIndex].IsBlack(), m.String())
	}
	assertMovesInSync(t, g)

	require.True(t, IsNil(g.PerformMoveFromString("d7d5")))
	assert.Equal(t, White, g.Player)
	assert.True(t, g.Moves.IsDestination(BoardIndexFromString("e4"), BoardIndexFromString("d5")))
	assertMovesInSync(t, g)
}

func TestPerformMoveRejectsUnavailableMoves(t *testing.T) {
	g := NewGameState(StartingBoard, White, generator)

	for _, move := range []string{"e2e5", "e7e5", "b1d2", "a1a2", "e1e2"} {
		err := g.PerformMoveFromString(move)
		assert.ErrorIs(t, err, ErrUnavailableMove, move)
	}
	assert.Equal(t, StartingBoard, g.Board)
	assert.Equal(t, White, g.Player)
	assert.Equal(t, 0, len(g.History))

	err := g.PerformMoveFromString("e2")
	assert.False(t, IsNil(err))
	assert.NotErrorIs(t, err, ErrUnavailableMove)
}

func TestCaptureAndRewind(t *testing.T) {
	board := BoardArray{}
	board[BoardIndexFromString("a1")] = WR
	board[BoardIndexFromString("a2")] = BP
	board[BoardIndexFromString("h8")] = BK

	g := NewGameState(board, White, generator)
	require.True(t, IsNil(g.PerformMoveFromString("a1a2")))

	assert.Equal(t, WR, g.Board[BoardIndexFromString("a2")])
	assert.Equal(t, XX, g.Board[BoardIndexFromString("a1")])
	assert.Equal(t, HistoryValue{
		Move:     Move{StartIndex: 0, EndIndex: 8, PieceType: Rook},
		Captured: BP,
	}, g.History[0])

	g.Rewind(1)
	assert.Equal(t, board, g.Board)
	assert.Equal(t, White, g.Player)
	assert.Equal(t, 0, len(g.History))
	assertMovesInSync(t, g)
}

func TestRewindPastStart(t *testing.T) {
	g := NewGameState(StartingBoard, White, generator)
	for _, move := range []string{"e2e4", "e7e5", "g1f3"} {
		require.True(t, IsNil(g.PerformMoveFromString(move)), move)
	}

	g.Rewind(2)
	assert.Equal(t, Black, g.Player)
	assert.Equal(t, "e2e4", g.LastMove().Value().String())
	assertMovesInSync(t, g)

	g.Rewind(10)
	assert.Equal(t, StartingBoard, g.Board)
	assert.Equal(t, White, g.Player)
	assertMovesInSync(t, g)
}

func TestSelectionMoves(t *testing.T) {
	g := NewGameState(StartingBoard, White, generator)

	moves, err := g.SelectionMoves("b1")
	require.True(t, IsNil(err), err)
	assert.Equal(t, []string{"b1a3", "b1c3"}, moves)

	moves, err = g.SelectionMoves("e2")
	require.True(t, IsNil(err), err)
	assert.Equal(t, []string{"e2e3", "e2e4"}, moves)

	// pieces of the side not to move have nothing highlighted
	moves, err = g.SelectionMoves("e7")
	require.True(t, IsNil(err), err)
	assert.Equal(t, []string{}, moves)

	_, err = g.SelectionMoves("z9")
	assert.False(t, IsNil(err))
}
