package bitboards

type Dir int

const (
	N Dir = iota
	S
	E
	W

	NE
	NW
	SE
	SW

	NumDirs
)

var RookDirs = []Dir{
	N,
	S,
	E,
	W,
}

var BishopDirs = []Dir{
	NE,
	NW,
	SE,
	SW,
}

const (
	OffsetN int = 8
	OffsetS int = -8
	OffsetE int = 1
	OffsetW int = -1
)

var Offsets = [NumDirs]int{
	OffsetN,
	OffsetS,
	OffsetE,
	OffsetW,

	OffsetN + OffsetE,
	OffsetN + OffsetW,
	OffsetS + OffsetE,
	OffsetS + OffsetW,
}

// PreMoveMasks clear the squares that would fall off the board (or wrap to
// the opposite file) when stepped once in each direction.
var PreMoveMasks = [NumDirs]Bitboard{
	^Rank8,
	^Rank1,
	NotFileH,
	NotFileA,

	^Rank8 & NotFileH,
	^Rank8 & NotFileA,
	^Rank1 & NotFileH,
	^Rank1 & NotFileA,
}

// Step moves every bit one square in dir, dropping bits that leave the board.
func Step(b Bitboard, dir Dir) Bitboard {
	return Shift(b&PreMoveMasks[dir], Offsets[dir])
}

// RankFileOffset is a (rank, file) delta.
type RankFileOffset struct {
	Rank int
	File int
}

var KnightOffsets = [8]RankFileOffset{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var KingOffsets = [8]RankFileOffset{
	{1, -1}, {1, 0}, {1, 1},
	{0, -1}, {0, 1},
	{-1, -1}, {-1, 0}, {-1, 1},
}

// GenerateJumpAttackMasks builds, for every origin, the set of squares
// reached by applying each offset that stays on the board.
func GenerateJumpAttackMasks(offsets []RankFileOffset) [64]Bitboard {
	result := [64]Bitboard{}

	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		for _, offset := range offsets {
			r, f := rank+offset.Rank, file+offset.File
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				result[sq] |= SingleBitboard(r*8 + f)
			}
		}
	}
	return result
}
