package zobrist

import (
	"math/rand"

	. "github.com/cricklet/chessbits/internal/helpers"
)

// The empty piece keeps zero keys so empty squares never touch the hash.
var ZobristPieceAtSquare [NumPieces][64]uint64
var ZobristSideToMove uint64

func init() {
	r := rand.New(rand.NewSource(32879419))
	ZobristSideToMove = r.Uint64()
	for piece := 1; piece < NumPieces; piece++ {
		for boardIndex := 0; boardIndex < 64; boardIndex++ {
			ZobristPieceAtSquare[piece][boardIndex] = r.Uint64()
		}
	}
}

func HashForBoard(board *BoardArray, player Player) uint64 {
	hash := uint64(0)
	for boardIndex := 0; boardIndex < 64; boardIndex++ {
		hash ^= ZobristPieceAtSquare[board[boardIndex]][boardIndex]
	}
	if player == Black {
		hash ^= ZobristSideToMove
	}
	return hash
}

// UpdateHash applies moving a piece from start onto end, replacing
// captured, and passes the move to the other side.
func UpdateHash(hash uint64, startIndex int, endIndex int, moved Piece, captured Piece) uint64 {
	hash ^= ZobristPieceAtSquare[moved][startIndex]
	hash ^= ZobristPieceAtSquare[captured][endIndex]
	hash ^= ZobristPieceAtSquare[moved][endIndex]
	return hash ^ ZobristSideToMove
}
