package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"

	. "github.com/cricklet/chessbits/internal/bitboards"
	. "github.com/cricklet/chessbits/internal/helpers"
)

type searchOptions struct {
	attempts int
	seed     int64
	dir      string
}

func parseArgs(args []string) (searchOptions, Error) {
	result := searchOptions{
		attempts: 10_000,
		seed:     time.Now().UnixNano(),
		dir:      filepath.Join(RootDir(), "data"),
	}
	if len(args) > 0 {
		attempts, err := strconv.Atoi(args[0])
		if err != nil || attempts < 1 {
			return result, Errorf("invalid attempts %q", args[0])
		}
		result.attempts = attempts
	}
	if len(args) > 1 {
		seed, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return result, Errorf("invalid seed %q", args[1])
		}
		result.seed = seed
	}
	if len(args) > 2 {
		result.dir = args[2]
	}
	return result, NilError
}

// tableSize is the number of bytes the move lookups for magics occupy.
func tableSize(magics [64]MagicValue) uint64 {
	total := uint64(0)
	for _, m := range magics {
		total += uint64(8) << m.BitsInMagicIndex
	}
	return total
}

// improveMagics keeps whichever magic needs fewer index bits on each square.
func improveMagics(
	dirs []Dir,
	current [64]MagicValue,
	rng *rand.Rand,
	attempts int,
	bar *progressbar.ProgressBar,
) [64]MagicValue {
	result := current
	for i := 0; i < 64; i++ {
		result[i] = FindBetterMagic(i, dirs, current[i], rng, attempts)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	// rebuilding the table repairs any square whose magic collides
	return NewMagicMoveTable(dirs, result, MagicTableOptions{Seed: rng.Int63()}).Magics
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	args := os.Args[1:]

	if Contains(args, "profile") {
		profilePath := RootDir() + "/data/CmdMagicsMain"
		p := profile.Start(profile.ProfilePath(profilePath))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	opts, err := parseArgs(args)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		fmt.Println("usage:")
		fmt.Println(" > magics [attempts] [seed] [dir] [profile]")
		os.Exit(1)
	}

	if err := Wrap(os.MkdirAll(opts.dir, 0755)); !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := &DefaultLogger
	cached := CachedMagicsOptions(opts.dir, logger)
	rng := rand.New(rand.NewSource(opts.seed))

	for _, kind := range []struct {
		name    string
		dirs    []Dir
		current [64]MagicValue
		path    string
	}{
		{"rook", RookDirs, cached.RookMagics.ValueOr(RookBestMagics), RookMagicsPath(opts.dir)},
		{"bishop", BishopDirs, cached.BishopMagics.ValueOr(BishopBestMagics), BishopMagicsPath(opts.dir)},
	} {
		bar := progressbar.Default(64, kind.name)
		improved := improveMagics(kind.dirs, kind.current, rng, opts.attempts, bar)
		_ = bar.Finish()

		logger.Printf("%v tables: %v => %v\n", kind.name,
			humanize.Bytes(tableSize(kind.current)), humanize.Bytes(tableSize(improved)))

		if err := SaveMagics(kind.path, improved); !IsNil(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger.Println("wrote", kind.path)
	}
}
