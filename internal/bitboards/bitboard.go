package bitboards

import (
	"fmt"
	"math/bits"
	"strings"

	. "github.com/cricklet/chessbits/internal/helpers"
)

// Bitboard has bit i set when square i (rank*8+file) is in the set.
type Bitboard uint64

var AllZeros Bitboard = Bitboard(0)
var AllOnes Bitboard = ^AllZeros

const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileC Bitboard = FileA << 2
	FileD Bitboard = FileA << 3
	FileE Bitboard = FileA << 4
	FileF Bitboard = FileA << 5
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7

	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = Rank1 << (8 * 1)
	Rank3 Bitboard = Rank1 << (8 * 2)
	Rank4 Bitboard = Rank1 << (8 * 3)
	Rank5 Bitboard = Rank1 << (8 * 4)
	Rank6 Bitboard = Rank1 << (8 * 5)
	Rank7 Bitboard = Rank1 << (8 * 6)
	Rank8 Bitboard = Rank1 << (8 * 7)

	NotFileA  Bitboard = ^FileA
	NotFileH  Bitboard = ^FileH
	NotFileAB Bitboard = ^(FileA | FileB)
	NotFileGH Bitboard = ^(FileG | FileH)
)

var Files = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
var Ranks = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

var SingleBitboards [64]Bitboard = func() [64]Bitboard {
	result := [64]Bitboard{}
	for i := 0; i < 64; i++ {
		result[i] = ShiftTowardsIndex64(1, i)
	}
	return result
}()

func SingleBitboard(index int) Bitboard {
	return SingleBitboards[index]
}

func (b Bitboard) IsSet(index int) bool {
	return b&SingleBitboard(index) != 0
}

func (b Bitboard) Set(index int) Bitboard {
	return b | SingleBitboard(index)
}

func (b Bitboard) Clear(index int) Bitboard {
	return b &^ SingleBitboard(index)
}

func OnesCount(b Bitboard) int {
	return bits.OnesCount64(uint64(b))
}

func (b Bitboard) LeastSignificantOne() Bitboard {
	return b & -b
}

func (b Bitboard) FirstIndexOfOne() int {
	ls1 := b.LeastSignificantOne()
	return bits.OnesCount64(uint64(ls1 - 1))
}

// NextIndexOfOne pops the lowest set bit. Callers loop until the remaining
// board is zero:
//
//	index, temp := 0, b
//	for temp != 0 {
//		index, temp = temp.NextIndexOfOne()
//	}
func (b Bitboard) NextIndexOfOne() (int, Bitboard) {
	ls1 := b.LeastSignificantOne()
	index := bits.OnesCount64(uint64(ls1 - 1))
	b = b ^ ls1

	return index, b
}

func (b Bitboard) EachIndexOfOne(callback func(int)) {
	index, temp := 0, b
	for temp != 0 {
		index, temp = temp.NextIndexOfOne()
		callback(index)
	}
}

func (b Bitboard) Indices() []int {
	result := make([]int, 0, OnesCount(b))
	b.EachIndexOfOne(func(index int) {
		result = append(result, index)
	})
	return result
}

func BitboardFromIndices(indices ...int) Bitboard {
	return ReduceSlice(indices, AllZeros, func(result Bitboard, index int) Bitboard {
		return result | SingleBitboard(index)
	})
}

func BitboardWithAllLocationsSet(locations []string) Bitboard {
	return BitboardFromIndices(MapSlice(locations, BoardIndexFromString)...)
}

func ShiftTowardIndex0(b Bitboard, n int) Bitboard {
	return b >> n
}

func ShiftTowardsIndex64(b Bitboard, n int) Bitboard {
	return b << n
}

// Shift moves every bit by offset squares. Bits pushed past a1 or h8 are
// dropped; wrapping across files is the caller's job to mask.
func Shift(b Bitboard, offset int) Bitboard {
	if offset >= 0 {
		return ShiftTowardsIndex64(b, offset)
	}
	return ShiftTowardIndex0(b, -offset)
}

func (b Bitboard) String() string {
	ranks := [8]string{}
	for rank := 0; rank < 8; rank++ {
		r := uint8(ShiftTowardIndex0(b, rank*8) & Rank1)

		// mirror the bits so the a-file prints first
		ranks[7-rank] = fmt.Sprintf("%08b", ReverseBits(r))
	}

	return strings.Join(ranks[0:], "\n")
}

func BitboardFromStrings(strings [8]string) Bitboard {
	b := Bitboard(0)
	for inverseRank, line := range strings {
		for file, c := range line {
			if c == '1' {
				index := IndexFromFileRank(FileRank{File: File(file), Rank: Rank(7 - inverseRank)})
				b |= SingleBitboard(index)
			}
		}
	}
	return b
}
