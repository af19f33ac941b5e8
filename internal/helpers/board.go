package helpers

import (
	"errors"
	"strings"
)

// BoardArray is indexed rank*8+file, a1 = 0, h8 = 63.
type BoardArray [64]Piece

// NaturalBoardArray is laid out the way a board is read, rank 8 first.
type NaturalBoardArray [64]Piece

func (n NaturalBoardArray) AsBoardArray() BoardArray {
	b := BoardArray{}

	for rank := 0; rank < 8; rank++ {
		index := rank * 8
		newIndex := (7 - rank) * 8
		copy(b[index:index+8], n[newIndex:newIndex+8])
	}

	return b
}

var ErrInvalidBoardState = errors.New("invalid board state")

const EmptyToken = '0'

var _pieceTokens = [NumPieces]byte{
	EmptyToken, 'R', 'N', 'B', 'K', 'Q', 'P', 'r', 'n', 'b', 'k', 'q', 'p',
}

var _piecesByToken = func() [256]Piece {
	result := [256]Piece{}
	for i := range result {
		result[i] = Piece(NumPieces)
	}
	for p, token := range _pieceTokens {
		result[token] = Piece(p)
	}
	return result
}()

// Token is the single byte used for a cell in a board state string.
func (p Piece) Token() byte {
	return _pieceTokens[p]
}

func PieceFromToken(c byte) (Piece, Error) {
	p := _piecesByToken[c]
	if p == Piece(NumPieces) {
		return XX, Errorf("%w: unrecognized token %q", ErrInvalidBoardState, c)
	}
	return p, NilError
}

// ParseBoardState reads 64 tokens in rank-major order starting from a1.
func ParseBoardState(s string) (BoardArray, Error) {
	board := BoardArray{}
	if len(s) != len(board) {
		return board, Errorf("%w: expected %v cells, got %v", ErrInvalidBoardState, len(board), len(s))
	}

	for i := 0; i < len(s); i++ {
		piece, err := PieceFromToken(s[i])
		if !IsNil(err) {
			return BoardArray{}, Errorf("cell %v: %w", StringFromBoardIndex(i), err)
		}
		board[i] = piece
	}

	return board, NilError
}

func (b BoardArray) StateString() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, piece := range b {
		sb.WriteByte(piece.Token())
	}
	return sb.String()
}

func PieceAtFileRank(board BoardArray, location FileRank) Piece {
	return board[IndexFromFileRank(location)]
}

var StartingBoard = NaturalBoardArray{
	BR, BN, BB, BQ, BK, BB, BN, BR,
	BP, BP, BP, BP, BP, BP, BP, BP,
	XX, XX, XX, XX, XX, XX, XX, XX,
	XX, XX, XX, XX, XX, XX, XX, XX,
	XX, XX, XX, XX, XX, XX, XX, XX,
	XX, XX, XX, XX, XX, XX, XX, XX,
	WP, WP, WP, WP, WP, WP, WP, WP,
	WR, WN, WB, WQ, WK, WB, WN, WR,
}.AsBoardArray()

func (b BoardArray) String() string {
	result := ""
	for rank := 7; rank >= 0; rank-- {
		row := b[rank*8 : (rank+1)*8]
		for _, p := range row {
			result += p.String()
		}
		if rank != 0 {
			result += "\n"
		}
	}
	return result
}

const _hintForeground = "\033[38;5;244m"
const _whiteForeground = "\033[38;5;255m"
const _blackForeground = "\033[38;5;232m"
const _whiteBackground = "\033[48;5;244m"
const _blackBackground = "\033[48;5;243m"
const _highlightBackground = "\033[48;5;108m"
const _resetColors = "\x1b[0m"

func (b BoardArray) Unicode() string {
	return b.UnicodeWithHighlights(func(int) bool { return false })
}

// UnicodeWithHighlights colors the squares for which highlight returns true,
// e.g. the destinations of a selected piece.
func (b BoardArray) UnicodeWithHighlights(highlight func(index int) bool) string {
	result := ""
	result += "  "
	for file := 0; file < 8; file++ {
		result += _hintForeground + " " + File(file).String() + " " + _resetColors
	}
	result += "\n"

	for rank := 7; rank >= 0; rank-- {
		result += _hintForeground + Rank(rank).String() + " " + _resetColors
		for file := 0; file < 8; file++ {
			location := FileRank{File(file), Rank(rank)}
			piece := PieceAtFileRank(b, location)

			if highlight(IndexFromFileRank(location)) {
				result += _highlightBackground
			} else if (file+rank)%2 == 0 {
				result += _blackBackground
			} else {
				result += _whiteBackground
			}
			if piece.IsWhite() {
				result += _whiteForeground
			} else {
				result += _blackForeground
			}

			result += " " + piece.PieceType().Unicode() + " "
			result += _resetColors
		}
		result += "\n"
	}

	return result
}
