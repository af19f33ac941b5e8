package bitboards

import (
	"math/rand"
	"strings"
	"testing"

	. "github.com/cricklet/chessbits/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestBitboardFromStrings(t *testing.T) {
	b := BitboardFromStrings([8]string{
		"10000001",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"10000011",
	})
	assert.Equal(t, BitboardWithAllLocationsSet([]string{"a8", "h8", "a1", "g1", "h1"}), b)
	assert.Equal(t, strings.Join([]string{
		"10000001",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"10000011",
	}, "\n"), b.String())
}

func TestFileAndRankMasks(t *testing.T) {
	assert.Equal(t, BitboardWithAllLocationsSet([]string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8"}), FileA)
	assert.Equal(t, BitboardWithAllLocationsSet([]string{"h1", "h2", "h3", "h4", "h5", "h6", "h7", "h8"}), FileH)
	assert.Equal(t, BitboardWithAllLocationsSet([]string{"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3"}), Rank3)
	assert.Equal(t, Bitboard(0xFF00000000000000), Rank8)

	all := Bitboard(0)
	for i := 0; i < 8; i++ {
		assert.Equal(t, 8, OnesCount(Files[i]))
		assert.Equal(t, 8, OnesCount(Ranks[i]))
		assert.Equal(t, Bitboard(0), Files[i]&Files[(i+1)%8])
		all |= Files[i]
	}
	assert.Equal(t, AllOnes, all)
	assert.Equal(t, 48, OnesCount(NotFileAB))
	assert.Equal(t, 48, OnesCount(NotFileGH))
}

func TestEachIndexOfOne(t *testing.T) {
	assert.Equal(t, []int{}, AllZeros.Indices())

	all := AllOnes.Indices()
	assert.Equal(t, 64, len(all))
	for i, index := range all {
		assert.Equal(t, i, index)
	}

	b := BitboardFromIndices(63, 0, 17, 9)
	assert.Equal(t, []int{0, 9, 17, 63}, b.Indices())

	// the board is a value, so iterating twice gives the same sequence
	first := []int{}
	b.EachIndexOfOne(func(i int) { first = append(first, i) })
	second := []int{}
	b.EachIndexOfOne(func(i int) { second = append(second, i) })
	assert.Equal(t, first, second)
}

func TestNextIndexOfOne(t *testing.T) {
	index, rest := SingleBitboard(63).NextIndexOfOne()
	assert.Equal(t, 63, index)
	assert.Equal(t, Bitboard(0), rest)

	index, rest = BitboardFromIndices(5, 40).NextIndexOfOne()
	assert.Equal(t, 5, index)
	assert.Equal(t, SingleBitboard(40), rest)
}

func TestIndicesMatchOnesCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		b := Bitboard(rng.Uint64())
		indices := b.Indices()
		assert.Equal(t, OnesCount(b), len(indices))
		assert.Equal(t, b, BitboardFromIndices(indices...))
	}
}

func TestSetAndClear(t *testing.T) {
	b := AllZeros.Set(12).Set(40)
	assert.True(t, b.IsSet(12))
	assert.True(t, b.IsSet(40))
	assert.False(t, b.IsSet(13))
	assert.Equal(t, SingleBitboard(40), b.Clear(12))
	assert.Equal(t, 12, b.FirstIndexOfOne())
}

func TestShift(t *testing.T) {
	assert.Equal(t, SingleBitboard(16), Shift(SingleBitboard(8), OffsetN))
	assert.Equal(t, SingleBitboard(0), Shift(SingleBitboard(8), OffsetS))
	assert.Equal(t, Bitboard(0), Shift(SingleBitboard(63), OffsetN))
	assert.Equal(t, Bitboard(0), Shift(SingleBitboard(3), OffsetS))
}

func TestStepDoesNotWrap(t *testing.T) {
	assert.Equal(t, Bitboard(0), Step(FileH, E))
	assert.Equal(t, Bitboard(0), Step(FileA, W))
	assert.Equal(t, Bitboard(0), Step(Rank8, N))
	assert.Equal(t, Bitboard(0), Step(Rank1, S))
	assert.Equal(t, FileB, Step(FileA, E))
	assert.Equal(t, SingleBitboard(BoardIndexFromString("b2")), Step(SingleBitboard(BoardIndexFromString("a1")), NE))
	assert.Equal(t, Bitboard(0), Step(SingleBitboard(BoardIndexFromString("a2")), NW))
}
