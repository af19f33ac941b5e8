package fen

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/cricklet/chessbits/internal/helpers"
)

// Castling rights, en-passant targets and clocks are read for syntax only;
// positions here are just placement and side to move.

func FenStringForPlayer(p Player) string {
	if p == White {
		return "w"
	} else {
		return "b"
	}
}

func PlacementForBoard(b *BoardArray) string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		numSpaces := 0
		for file := 0; file < 8; file++ {
			piece := b[IndexFromFileRank(FileRank{File: File(file), Rank: Rank(rank)})]
			if piece == XX {
				numSpaces++
				continue
			}
			if numSpaces > 0 {
				s += fmt.Sprint(numSpaces)
				numSpaces = 0
			}
			s += string(piece.Token())
		}
		if numSpaces > 0 {
			s += fmt.Sprint(numSpaces)
		}
		if rank != 0 {
			s += "/"
		}
	}
	return s
}

func FenStringForPosition(b *BoardArray, p Player) string {
	return fmt.Sprintf("%v %v - - 0 1", PlacementForBoard(b), FenStringForPlayer(p))
}

func boardFromPlacement(s string) (BoardArray, Error) {
	board := BoardArray{}

	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return board, Errorf("expected 8 ranks, got %v in '%v'", len(ranks), s)
	}

	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p, err := PieceFromToken(c)
			if !IsNil(err) || p == XX {
				return board, Errorf("unknown character '%c' in '%v'", c, s)
			}
			if file >= 8 {
				return board, Errorf("too many squares in rank %v of '%v'", rank, s)
			}
			board[IndexFromFileRank(FileRank{File: File(file), Rank: rank})] = p
			file++
		}
		if file != 8 {
			return board, Errorf("expected 8 squares in rank %v of '%v', got %v", rank, s, file)
		}
	}

	return board, NilError
}

// PositionFromFenString accepts a full FEN or any prefix of its fields
// starting with the placement. A missing side to move means white.
func PositionFromFenString(s string) (BoardArray, Player, Error) {
	ss := strings.Fields(s)
	if len(ss) == 0 || len(ss) > 6 {
		return BoardArray{}, White, Errorf("wrong num %v of fields in str '%v'", len(ss), s)
	}

	board, err := boardFromPlacement(ss[0])
	if !IsNil(err) {
		return BoardArray{}, White, err
	}

	player := White
	if len(ss) > 1 {
		player, err = PlayerFromString(ss[1])
		if !IsNil(err) {
			return BoardArray{}, White, Errorf("invalid player '%v' in '%v'", ss[1], s)
		}
	}

	if len(ss) > 2 {
		for _, c := range ss[2] {
			if !strings.ContainsRune("-KQkq", c) {
				return BoardArray{}, White, Errorf("invalid castling rights '%v' in '%v'", ss[2], s)
			}
		}
	}

	if len(ss) > 3 && ss[3] != "-" {
		if _, err := FileRankFromString(ss[3]); !IsNil(err) {
			return BoardArray{}, White, Errorf("invalid en-passant target '%v' in '%v'", ss[3], s)
		}
	}

	for _, clock := range ss[MinInt(4, len(ss)):] {
		if _, err := strconv.ParseUint(clock, 10, 0); err != nil {
			return BoardArray{}, White, Errorf("invalid clock '%v' in '%v'", clock, s)
		}
	}

	return board, player, NilError
}
