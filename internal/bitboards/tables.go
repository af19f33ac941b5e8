package bitboards

import (
	"path/filepath"
	"sync"
	"time"

	. "github.com/cricklet/chessbits/internal/helpers"
)

// AttackTables holds every precomputed lookup the move generator needs.
// It is built once and never written again, so one value can be shared by
// any number of goroutines.
type AttackTables struct {
	Knight [64]Bitboard
	King   [64]Bitboard
	Rook   MagicMoveTable
	Bishop MagicMoveTable
}

type TablesOptions struct {
	Logger       Optional[Logger]
	RookMagics   Optional[[64]MagicValue]
	BishopMagics Optional[[64]MagicValue]
}

func NewAttackTables(opts TablesOptions) *AttackTables {
	logger := opts.Logger.ValueOr(&SilentLogger)
	start := time.Now()

	magicOpts := MagicTableOptions{Logger: Some(logger)}

	t := &AttackTables{
		Knight: GenerateJumpAttackMasks(KnightOffsets[:]),
		King:   GenerateJumpAttackMasks(KingOffsets[:]),
		Rook:   NewMagicMoveTable(RookDirs, opts.RookMagics.ValueOr(RookBestMagics), magicOpts),
		Bishop: NewMagicMoveTable(BishopDirs, opts.BishopMagics.ValueOr(BishopBestMagics), magicOpts),
	}

	logger.Println("initialized attack tables in", time.Since(start).Round(time.Millisecond))
	return t
}

var _defaultTables *AttackTables
var _defaultTablesOnce sync.Once

// InitializeTables returns the process-wide tables, building them on the
// first call. Safe to call repeatedly and concurrently.
func InitializeTables() *AttackTables {
	_defaultTablesOnce.Do(func() {
		_defaultTables = NewAttackTables(TablesOptions{})
	})
	return _defaultTables
}

func (t *AttackTables) KnightAttacks(index int) Bitboard {
	return t.Knight[index]
}

func (t *AttackTables) KingAttacks(index int) Bitboard {
	return t.King[index]
}

func (t *AttackTables) RookAttacks(index int, occupied Bitboard) Bitboard {
	return t.Rook.Attacks(index, occupied)
}

func (t *AttackTables) BishopAttacks(index int, occupied Bitboard) Bitboard {
	return t.Bishop.Attacks(index, occupied)
}

func (t *AttackTables) QueenAttacks(index int, occupied Bitboard) Bitboard {
	return t.Rook.Attacks(index, occupied) | t.Bishop.Attacks(index, occupied)
}

func RookMagicsPath(dir string) string {
	return filepath.Join(dir, "magics-for-rook.json")
}

func BishopMagicsPath(dir string) string {
	return filepath.Join(dir, "magics-for-bishop.json")
}

// CachedMagicsOptions loads magics previously written by cmd/magics from dir.
// Missing files fall back to the built-in magics.
func CachedMagicsOptions(dir string, logger Logger) TablesOptions {
	opts := TablesOptions{Logger: Some(logger)}

	rook, err := LoadMagics(RookMagicsPath(dir))
	if IsNil(err) {
		opts.RookMagics = Some(rook)
	} else {
		logger.Println("using built-in rook magics:", err.First())
	}

	bishop, err := LoadMagics(BishopMagicsPath(dir))
	if IsNil(err) {
		opts.BishopMagics = Some(bishop)
	} else {
		logger.Println("using built-in bishop magics:", err.First())
	}

	return opts
}
