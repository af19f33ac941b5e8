package game

import (
	"errors"

	. "github.com/cricklet/chessbits/internal/bitboards"
	. "github.com/cricklet/chessbits/internal/helpers"
	. "github.com/cricklet/chessbits/internal/movegen"
)

var ErrUnavailableMove = errors.New("move is not available")

type HistoryValue struct {
	Move     Move
	Captured Piece
}

// GameState owns the authoritative board and the side to move, and keeps
// Moves in sync with them: the list is rebuilt at setup and after every
// accepted move, always after the side to move has been flipped.
type GameState struct {
	Board  BoardArray
	Player Player
	Moves  MoveList

	History []HistoryValue

	generator *Generator
}

func NewGameState(board BoardArray, player Player, generator *Generator) *GameState {
	g := &GameState{
		Board:     board,
		Player:    player,
		History:   []HistoryValue{},
		generator: generator,
	}
	g.Regenerate()
	return g
}

func NewGameStateFromString(state string, player Player, generator *Generator) (*GameState, Error) {
	board, err := ParseBoardState(state)
	if !IsNil(err) {
		return nil, err
	}
	return NewGameState(board, player, generator), NilError
}

func (g *GameState) Generator() *Generator {
	return g.generator
}

func (g *GameState) Regenerate() {
	g.Moves = g.generator.GenerateMoves(g.Board, g.Player)
}

func (g *GameState) Bitboards() Bitboards {
	return BitboardsFromBoard(g.Board)
}

func (g *GameState) StateString() string {
	return g.Board.StateString()
}

func (g *GameState) Enemy() Player {
	return g.Player.Other()
}

// PerformMove accepts only moves from the current list. Whatever stood on
// the destination is replaced by the moving piece.
func (g *GameState) PerformMove(startIndex int, endIndex int) Error {
	move := g.Moves.Find(startIndex, endIndex)
	if move.IsEmpty() {
		return Errorf("%w: %v%v for %v", ErrUnavailableMove, StringFromBoardIndex(startIndex), StringFromBoardIndex(endIndex), g.Player)
	}

	captured := move.Value().Apply(&g.Board)
	g.History = append(g.History, HistoryValue{Move: move.Value(), Captured: captured})

	g.Player = g.Player.Other()
	g.Regenerate()

	return NilError
}

func (g *GameState) PerformMoveFromString(s string) Error {
	start, end, err := ParseMoveSquares(s)
	if !IsNil(err) {
		return err
	}
	return g.PerformMove(start, end)
}

func (g *GameState) LastMove() Optional[Move] {
	if len(g.History) == 0 {
		return Empty[Move]()
	}
	return Some(g.History[len(g.History)-1].Move)
}

// Rewind undoes up to num moves.
func (g *GameState) Rewind(num int) {
	for i := 0; i < num && len(g.History) > 0; i++ {
		h := g.History[len(g.History)-1]
		g.History = g.History[:len(g.History)-1]

		g.Board[h.Move.StartIndex] = g.Board[h.Move.EndIndex]
		g.Board[h.Move.EndIndex] = h.Captured
		g.Player = g.Player.Other()
	}
	g.Regenerate()
}

// SelectionMoves lists the moves available from a square, e.g. to
// highlight them for the piece a user picked up.
func (g *GameState) SelectionMoves(s string) ([]string, Error) {
	location, err := FileRankFromString(s)
	if !IsNil(err) {
		return nil, err
	}
	return g.Moves.MovesFrom(IndexFromFileRank(location)).Strings(), NilError
}
