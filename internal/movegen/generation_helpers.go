package movegen

import (
	. "github.com/cricklet/chessbits/internal/bitboards"
	. "github.com/cricklet/chessbits/internal/helpers"
)

type pawnOffsets struct {
	push int
	// the rank a single push from the starting rank lands on
	doublePushRank Bitboard
	west           int
	east           int
}

var pawnOffsetsForPlayer = [2]pawnOffsets{
	{ // WHITE
		push:           OffsetN,
		doublePushRank: Rank3,
		west:           OffsetN + OffsetW,
		east:           OffsetN + OffsetE,
	},
	{
		push:           OffsetS,
		doublePushRank: Rank6,
		west:           OffsetS + OffsetW,
		east:           OffsetS + OffsetE,
	},
}

// emitShiftedMoves undoes offset on every target to recover the origin.
func emitShiftedMoves(f func(move Move), targets Bitboard, offset int, pieceType PieceType) {
	index, temp := 0, targets
	for temp != 0 {
		index, temp = temp.NextIndexOfOne()
		f(Move{StartIndex: index - offset, EndIndex: index, PieceType: pieceType})
	}
}

func generatePawnMoves(f func(move Move), pawns Bitboard, empty Bitboard, enemy Bitboard, player Player) {
	if pawns == 0 {
		return
	}
	offsets := pawnOffsetsForPlayer[player]

	singlePushes := Shift(pawns, offsets.push) & empty
	emitShiftedMoves(f, singlePushes, offsets.push, Pawn)

	// the intermediate square is already known empty from singlePushes
	doublePushes := Shift(singlePushes&offsets.doublePushRank, offsets.push) & empty
	emitShiftedMoves(f, doublePushes, 2*offsets.push, Pawn)

	westCaptures := Shift(pawns&NotFileA, offsets.west) & enemy
	emitShiftedMoves(f, westCaptures, offsets.west, Pawn)

	eastCaptures := Shift(pawns&NotFileH, offsets.east) & enemy
	emitShiftedMoves(f, eastCaptures, offsets.east, Pawn)
}

func generateJumpMoves(
	f func(move Move),
	pieces Bitboard,
	allowed Bitboard,
	attackMasks *[64]Bitboard,
	pieceType PieceType,
) {
	startIndex, tempPieces := 0, pieces
	for tempPieces != 0 {
		startIndex, tempPieces = tempPieces.NextIndexOfOne()

		potential := attackMasks[startIndex] & allowed

		endIndex, tempPotential := 0, potential
		for tempPotential != 0 {
			endIndex, tempPotential = tempPotential.NextIndexOfOne()
			f(Move{StartIndex: startIndex, EndIndex: endIndex, PieceType: pieceType})
		}
	}
}

func generateWalkMoves(
	f func(move Move),
	pieces Bitboard,
	allOccupied Bitboard,
	selfOccupied Bitboard,
	attacks func(index int, occupied Bitboard) Bitboard,
	pieceType PieceType,
) {
	startIndex, tempPieces := 0, pieces
	for tempPieces != 0 {
		startIndex, tempPieces = tempPieces.NextIndexOfOne()

		// blockers of either color stop the ray; only our own are excluded as targets
		potential := attacks(startIndex, allOccupied) &^ selfOccupied

		endIndex, tempPotential := 0, potential
		for tempPotential != 0 {
			endIndex, tempPotential = tempPotential.NextIndexOfOne()
			f(Move{StartIndex: startIndex, EndIndex: endIndex, PieceType: pieceType})
		}
	}
}
