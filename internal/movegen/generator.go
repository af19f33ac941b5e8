package movegen

import (
	. "github.com/cricklet/chessbits/internal/bitboards"
	. "github.com/cricklet/chessbits/internal/helpers"
)

type GeneratorOptions struct {
	Logger Optional[Logger]
}

// Generator produces pseudo-legal moves. It holds only the read-only attack
// tables, so a single Generator may be shared across goroutines.
type Generator struct {
	tables *AttackTables
	Logger Logger
}

func NewGenerator(tables *AttackTables, opts GeneratorOptions) *Generator {
	if tables == nil {
		panic("movegen: NewGenerator requires attack tables")
	}
	return &Generator{
		tables: tables,
		Logger: opts.Logger.ValueOr(&SilentLogger),
	}
}

// DefaultGenerator uses the process-wide tables from InitializeTables.
func DefaultGenerator() *Generator {
	return NewGenerator(InitializeTables(), GeneratorOptions{})
}

func (g *Generator) Tables() *AttackTables {
	return g.tables
}

// GenerateMoves returns every pseudo-legal move for player. Identical inputs
// always give identical lists in identical order.
func (g *Generator) GenerateMoves(board BoardArray, player Player) MoveList {
	b := BitboardsFromBoard(board)
	return g.AppendMoves(make(MoveList, 0, 64), &b, player)
}

// GenerateMovesFromState parses a 64-token board state before generating.
func (g *Generator) GenerateMovesFromState(state string, player Player) (MoveList, Error) {
	board, err := ParseBoardState(state)
	if !IsNil(err) {
		return nil, err
	}
	return g.GenerateMoves(board, player), NilError
}

func (g *Generator) AppendMoves(moves MoveList, b *Bitboards, player Player) MoveList {
	g.GeneratePseudoMoves(func(move Move) {
		moves = append(moves, move)
	}, b, player)
	return moves
}

// GeneratePseudoMoves calls f for each move in order: pawn pushes, double
// pushes, west captures, east captures, then knights, kings, bishops, rooks
// and queens. Inside each group origins and destinations ascend.
func (g *Generator) GeneratePseudoMoves(f func(move Move), b *Bitboards, player Player) {
	playerBoards := &b.Players[player]
	enemyBoards := &b.Players[player.Other()]
	empty := b.Empty()

	generatePawnMoves(f, playerBoards.Pieces[Pawn], empty, enemyBoards.Occupied, player)

	// knights and kings only step onto empty squares
	generateJumpMoves(f, playerBoards.Pieces[Knight], empty, &g.tables.Knight, Knight)
	generateJumpMoves(f, playerBoards.Pieces[King], empty, &g.tables.King, King)

	generateWalkMoves(f, playerBoards.Pieces[Bishop], b.Occupied, playerBoards.Occupied, g.tables.BishopAttacks, Bishop)
	generateWalkMoves(f, playerBoards.Pieces[Rook], b.Occupied, playerBoards.Occupied, g.tables.RookAttacks, Rook)
	generateWalkMoves(f, playerBoards.Pieces[Queen], b.Occupied, playerBoards.Occupied, g.tables.QueenAttacks, Queen)
}
