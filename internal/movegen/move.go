package movegen

import (
	"golang.org/x/exp/slices"

	. "github.com/cricklet/chessbits/internal/bitboards"
	. "github.com/cricklet/chessbits/internal/helpers"
)

// Move is a pseudo-legal move. It carries no capture, promotion or check
// flag; whether a destination was occupied is read from the board.
type Move struct {
	StartIndex int
	EndIndex   int
	PieceType  PieceType
}

func (m Move) String() string {
	return StringFromBoardIndex(m.StartIndex) + StringFromBoardIndex(m.EndIndex)
}

func (m Move) DebugString() string {
	return m.PieceType.Name() + " " + m.String()
}

// Apply moves the piece on StartIndex onto EndIndex and returns whatever
// stood there before.
func (m Move) Apply(board *BoardArray) Piece {
	captured := board[m.EndIndex]
	board[m.EndIndex] = board[m.StartIndex]
	board[m.StartIndex] = XX
	return captured
}

// ParseMoveSquares reads "e2e4" style coordinates.
func ParseMoveSquares(s string) (int, int, Error) {
	if len(s) != 4 {
		return 0, 0, Errorf("invalid move %q", s)
	}
	start, err := FileRankFromString(s[0:2])
	if !IsNil(err) {
		return 0, 0, Errorf("invalid move %q: %w", s, err)
	}
	end, err := FileRankFromString(s[2:4])
	if !IsNil(err) {
		return 0, 0, Errorf("invalid move %q: %w", s, err)
	}
	return IndexFromFileRank(start), IndexFromFileRank(end), NilError
}

type MoveList []Move

func (l MoveList) Find(startIndex int, endIndex int) Optional[Move] {
	i := slices.IndexFunc(l, func(m Move) bool {
		return m.StartIndex == startIndex && m.EndIndex == endIndex
	})
	if i < 0 {
		return Empty[Move]()
	}
	return Some(l[i])
}

func (l MoveList) IsDestination(startIndex int, endIndex int) bool {
	return l.Find(startIndex, endIndex).HasValue()
}

func (l MoveList) HasMovesFrom(startIndex int) bool {
	return slices.IndexFunc(l, func(m Move) bool {
		return m.StartIndex == startIndex
	}) >= 0
}

func (l MoveList) DestinationsFrom(startIndex int) Bitboard {
	result := Bitboard(0)
	for _, m := range l {
		if m.StartIndex == startIndex {
			result |= SingleBitboard(m.EndIndex)
		}
	}
	return result
}

func (l MoveList) MovesFrom(startIndex int) MoveList {
	return FilterSlice(l, func(m Move) bool {
		return m.StartIndex == startIndex
	})
}

// DestinationsByOrigin indexes the list for repeated highlight queries.
func (l MoveList) DestinationsByOrigin() [64]Bitboard {
	result := [64]Bitboard{}
	for _, m := range l {
		result[m.StartIndex] |= SingleBitboard(m.EndIndex)
	}
	return result
}

func (l MoveList) CountByPieceType() [6]int {
	result := [6]int{}
	for _, m := range l {
		result[m.PieceType]++
	}
	return result
}

func (l MoveList) Strings() []string {
	return MapSlice(l, func(m Move) string { return m.String() })
}

func (l MoveList) Equal(other MoveList) bool {
	return slices.Equal(l, other)
}
