package helpers

type File uint
type Rank uint

type FileRank struct {
	File File
	Rank Rank
}

type Player uint

const (
	White Player = iota
	Black
)

var _playerStrings = [2]string{
	"white", "black",
}

func (p Player) String() string {
	return _playerStrings[p]
}

func (p Player) Other() Player {
	return 1 - p
}

func PlayerFromString(c string) (Player, Error) {
	switch c {
	case "b", "black":
		return Black, NilError
	case "w", "white":
		return White, NilError
	default:
		return White, Errorf("invalid player %v", c)
	}
}

type Piece uint

const (
	XX Piece = iota
	WR
	WN
	WB
	WK
	WQ
	WP
	BR
	BN
	BB
	BK
	BQ
	BP
)

const NumPieces = 13

type PieceType uint

const (
	Rook PieceType = iota
	Knight
	Bishop
	King
	Queen
	Pawn
	InvalidPiece
)

var AllPieceTypes = [6]PieceType{Rook, Knight, Bishop, King, Queen, Pawn}

func (p PieceType) String() string {
	return [7]string{
		"r", "n", "b", "k", "q", "p", "?",
	}[p]
}

func (p PieceType) Name() string {
	return [7]string{
		"rook", "knight", "bishop", "king", "queen", "pawn", "invalid",
	}[p]
}

func (p PieceType) IsValid() bool {
	return p >= Rook && p <= Pawn
}

var PieceTypeLookup = [NumPieces]PieceType{
	XX: InvalidPiece,
	WR: Rook, WN: Knight, WB: Bishop, WK: King, WQ: Queen, WP: Pawn,
	BR: Rook, BN: Knight, BB: Bishop, BK: King, BQ: Queen, BP: Pawn,
}

func (p Piece) PieceType() PieceType {
	return PieceTypeLookup[p]
}

// Player is only meaningful for non-empty pieces.
func (p Piece) Player() Player {
	if p < BR {
		return White
	}
	return Black
}

func (p Piece) IsWhite() bool {
	return p <= WP && p >= WR
}

func (p Piece) IsBlack() bool {
	return p <= BP && p >= BR
}

func (p Piece) IsEmpty() bool {
	return p == XX
}

var PieceForPlayer [2][6]Piece = func() [2][6]Piece {
	result := [2][6]Piece{}

	result[White][Rook] = WR
	result[White][Knight] = WN
	result[White][Bishop] = WB
	result[White][King] = WK
	result[White][Queen] = WQ
	result[White][Pawn] = WP

	result[Black][Rook] = BR
	result[Black][Knight] = BN
	result[Black][Bishop] = BB
	result[Black][King] = BK
	result[Black][Queen] = BQ
	result[Black][Pawn] = BP

	return result
}()

func (p Piece) String() string {
	return [NumPieces]string{
		" ", "R", "N", "B", "K", "Q", "P", "r", "n", "b", "k", "q", "p",
	}[p]
}

func (p PieceType) Unicode() string {
	return [7]string{
		"♜", "♞", "♝", "♚", "♛", "♟", " ",
	}[p]
}

func (f File) String() string {
	return [8]string{
		"a", "b", "c", "d", "e", "f", "g", "h",
	}[f]
}

func (r Rank) String() string {
	return [8]string{
		"1", "2", "3", "4", "5", "6", "7", "8",
	}[r]
}

func RankFromChar(c byte) (Rank, Error) {
	rank := int(c) - '1'
	if rank < 0 || rank >= 8 {
		return 0, Errorf("rank invalid %q", c)
	}
	return Rank(rank), NilError
}

func FileFromChar(c byte) (File, Error) {
	file := int(c) - 'a'
	if file < 0 || file >= 8 {
		return 0, Errorf("file invalid %q", c)
	}
	return File(file), NilError
}

func (v FileRank) String() string {
	return v.File.String() + v.Rank.String()
}

func FileRankFromString(s string) (FileRank, Error) {
	if len(s) != 2 {
		return FileRank{}, Errorf("invalid location %v", s)
	}

	file, fileErr := FileFromChar(s[0])
	if !IsNil(fileErr) {
		return FileRank{}, Errorf("invalid location %v: %w", s, fileErr)
	}
	rank, rankErr := RankFromChar(s[1])
	if !IsNil(rankErr) {
		return FileRank{}, Errorf("invalid location %v: %w", s, rankErr)
	}

	return FileRank{file, rank}, NilError
}

func IndexFromFileRank(location FileRank) int {
	return int(location.Rank)*8 + int(location.File)
}

func FileRankFromIndex(index int) FileRank {
	f := File(index & 0b111)
	r := Rank(index >> 3)
	return FileRank{f, r}
}

func StringFromBoardIndex(index int) string {
	return FileRankFromIndex(index).String()
}

func BoardIndexFromString(s string) int {
	location, err := FileRankFromString(s)
	if !IsNil(err) {
		panic(err)
	}
	return IndexFromFileRank(location)
}

func IsValidIndex(index int) bool {
	return index >= 0 && index < 64
}
