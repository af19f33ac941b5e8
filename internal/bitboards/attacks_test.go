package bitboards

import (
	"testing"

	. "github.com/cricklet/chessbits/internal/helpers"
	"github.com/stretchr/testify/assert"
)

var testTables = NewAttackTables(TablesOptions{})

func TestKnightAttackMasks(t *testing.T) {
	assert.Equal(t, BitboardWithAllLocationsSet([]string{"b3", "c2"}), testTables.KnightAttacks(0))
	assert.Equal(t, 2, OnesCount(testTables.Knight[BoardIndexFromString("h8")]))
	assert.Equal(t, 3, OnesCount(testTables.Knight[BoardIndexFromString("b1")]))
	assert.Equal(t, 4, OnesCount(testTables.Knight[BoardIndexFromString("a4")]))
	assert.Equal(t, 8, OnesCount(testTables.Knight[BoardIndexFromString("d4")]))

	assert.Equal(t, BitboardFromStrings([8]string{
		"00000000",
		"00000000",
		"00000000",
		"00101000",
		"01000100",
		"00000000",
		"01000100",
		"00101000",
	}), testTables.Knight[BoardIndexFromString("d3")])
}

func TestKingAttackMasks(t *testing.T) {
	assert.Equal(t, BitboardWithAllLocationsSet([]string{"a2", "b1", "b2"}), testTables.KingAttacks(0))
	assert.Equal(t, 3, OnesCount(testTables.King[63]))
	assert.Equal(t, 5, OnesCount(testTables.King[BoardIndexFromString("e1")]))
	assert.Equal(t, 8, OnesCount(testTables.King[BoardIndexFromString("e4")]))
}

func TestJumpAttackMasksStayOnBoard(t *testing.T) {
	for _, tc := range []struct {
		name    string
		masks   [64]Bitboard
		offsets [8]RankFileOffset
	}{
		{"knight", testTables.Knight, KnightOffsets},
		{"king", testTables.King, KingOffsets},
	} {
		for sq := 0; sq < 64; sq++ {
			origin := FileRankFromIndex(sq)
			tc.masks[sq].EachIndexOfOne(func(dest int) {
				target := FileRankFromIndex(dest)
				dr := int(target.Rank) - int(origin.Rank)
				df := int(target.File) - int(origin.File)
				assert.Contains(t, tc.offsets[:], RankFileOffset{dr, df}, "%v from %v to %v", tc.name, origin, target)
			})
			assert.False(t, tc.masks[sq].IsSet(sq), tc.name)
		}
	}
}

func TestJumpAttacksAreSymmetric(t *testing.T) {
	for a := 0; a < 64; a++ {
		for b := 0; b < 64; b++ {
			assert.Equal(t, testTables.Knight[a].IsSet(b), testTables.Knight[b].IsSet(a))
			assert.Equal(t, testTables.King[a].IsSet(b), testTables.King[b].IsSet(a))
		}
	}
}

func TestInitializeTablesIsIdempotent(t *testing.T) {
	first := InitializeTables()
	second := InitializeTables()
	assert.Same(t, first, second)
	assert.Equal(t, testTables.Knight, first.Knight)
	assert.Equal(t, testTables.King, first.King)
}
