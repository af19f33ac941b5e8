package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"

	"github.com/cricklet/chessbits/internal/fen"
	. "github.com/cricklet/chessbits/internal/helpers"
	"github.com/cricklet/chessbits/internal/movegen"
	"github.com/cricklet/chessbits/internal/zobrist"
)

func usage() {
	fmt.Println("usage:")
	fmt.Println(" > perft <depth>")
	fmt.Println(" > perft <state> <white|black> <depth>")
	fmt.Println(" > perft <fen> <depth>")
	fmt.Println(" > perft ... [hash] [profile]")
}

type perftArgs struct {
	board  BoardArray
	player Player
	depth  int
}

func parseArgs(args []string) (perftArgs, Error) {
	result := perftArgs{board: StartingBoard, player: White}

	var depthArg string
	switch len(args) {
	case 1:
		depthArg = args[0]
	case 2:
		board, player, err := fen.PositionFromFenString(args[0])
		if !IsNil(err) {
			return result, err
		}
		result.board, result.player = board, player
		depthArg = args[1]
	case 3:
		board, err := ParseBoardState(args[0])
		if !IsNil(err) {
			return result, err
		}
		player, err := PlayerFromString(args[1])
		if !IsNil(err) {
			return result, err
		}
		result.board, result.player = board, player
		depthArg = args[2]
	default:
		return result, Errorf("expected 1 to 3 arguments, got %v", len(args))
	}

	depth, err := strconv.Atoi(depthArg)
	if err != nil || depth < 1 {
		return result, Errorf("invalid depth %q", depthArg)
	}
	result.depth = depth
	return result, NilError
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
		profilePath := RootDir() + "/data/CmdPerftMain"
		p := profile.Start(profile.ProfilePath(profilePath))
		defer p.Stop()
	}
	useHash := Contains(args, "hash")
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile" && arg != "hash"
	})

	parsed, err := parseArgs(args)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(1)
	}

	fmt.Println(parsed.board.Unicode())
	fmt.Println(parsed.player, "to move, depth", parsed.depth)

	perftOpts := movegen.PerftOptions{}
	var cache *zobrist.TranspositionTable
	if useHash {
		cache = zobrist.NewTranspositionTable(zobrist.DefaultTranspositionTableSize)
		perftOpts.Cache = Some(cache)
	}
	generator := movegen.DefaultGenerator()
	counter := movegen.NewPerftCounter(generator, perftOpts)
	start := time.Now()

	rootMoves := generator.GenerateMoves(parsed.board, parsed.player)
	progress := CreateProgressBar(len(rootMoves), "perft")
	divisions := counter.Divide(parsed.board, parsed.player, parsed.depth, func(movegen.PerftDivision) {
		progress.Add(1)
	})
	progress.Close()

	total := 0
	for _, d := range divisions {
		fmt.Printf("%v: %v\n", d.Move, humanize.Comma(int64(d.Count)))
		total += d.Count
	}

	elapsed := time.Since(start)
	fmt.Println()
	fmt.Println("nodes:", humanize.Comma(int64(total)))
	fmt.Println("elapsed:", elapsed.Round(time.Millisecond))
	if elapsed > 0 {
		fmt.Println("nodes/s:", humanize.Comma(int64(float64(total)/elapsed.Seconds())))
	}
	fmt.Println("buffers:", counter.PoolStats())
	if cache != nil {
		fmt.Println("cache:", cache.Stats())
	}
}
