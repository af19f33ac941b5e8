package bitboards

import (
	. "github.com/cricklet/chessbits/internal/helpers"
)

type PlayerBitboards struct {
	Occupied Bitboard
	Pieces   [6]Bitboard // indexed via PieceType
}

type Bitboards struct {
	Occupied Bitboard
	Players  [2]PlayerBitboards
}

// BitboardsFromBoard derives every bitboard from scratch. There is no
// incremental update: the board array is the only source of truth.
func BitboardsFromBoard(board BoardArray) Bitboards {
	result := Bitboards{}
	for i, piece := range board {
		if piece == XX {
			continue
		}
		result.SetSquare(i, piece)
	}
	return result
}

func (b *Bitboards) SetSquare(index int, piece Piece) {
	player := piece.Player()
	pieceType := piece.PieceType()
	oneBitboard := SingleBitboard(index)

	b.Occupied |= oneBitboard
	b.Players[player].Occupied |= oneBitboard
	b.Players[player].Pieces[pieceType] |= oneBitboard
}

func (b *Bitboards) Empty() Bitboard {
	return ^b.Occupied
}

func (b *Bitboards) Pieces(player Player, pieceType PieceType) Bitboard {
	return b.Players[player].Pieces[pieceType]
}

// PieceAt reads a square back out of the bitboards.
func (b *Bitboards) PieceAt(index int) Piece {
	for _, player := range []Player{White, Black} {
		if !b.Players[player].Occupied.IsSet(index) {
			continue
		}
		for _, pieceType := range AllPieceTypes {
			if b.Players[player].Pieces[pieceType].IsSet(index) {
				return PieceForPlayer[player][pieceType]
			}
		}
	}
	return XX
}

// Validate checks that the twelve piece bitboards are pairwise disjoint and
// that the aggregates are exactly their unions.
func (b *Bitboards) Validate() Error {
	seen := Bitboard(0)
	union := [2]Bitboard{}
	for _, player := range []Player{White, Black} {
		for _, pieceType := range AllPieceTypes {
			pieces := b.Players[player].Pieces[pieceType]
			if overlap := seen & pieces; overlap != 0 {
				return Errorf("%v %v overlaps another piece on %v", player, pieceType.Name(), MapSlice(overlap.Indices(), StringFromBoardIndex))
			}
			seen |= pieces
			union[player] |= pieces
		}
		if union[player] != b.Players[player].Occupied {
			return Errorf("%v occupancy does not match its pieces\n%v\n!=\n%v", player, b.Players[player].Occupied, union[player])
		}
	}
	if union[White]|union[Black] != b.Occupied {
		return Errorf("total occupancy does not match both players\n%v", b.Occupied)
	}
	return NilError
}
