package bitboards

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	. "github.com/cricklet/chessbits/internal/helpers"
)

type MagicValue struct {
	Magic            uint64
	BitsInMagicIndex int
}

func (m MagicValue) String() string {
	return fmt.Sprintf("{%v, %v}", m.Magic, m.BitsInMagicIndex)
}

type MagicMoveTable struct {
	// Each of the 64 indices in the board has a magic-lookup precomputed.
	// This is used to lookup a move based on the current occupancy of the
	// board, eg:
	// ROOK_MOVES[
	//   ((occupancy & blockerMask) * magic)
	//     >> (64 - numBits)
	//  ]
	Magics       [64]MagicValue
	BlockerMasks [64]Bitboard
	Moves        [64][]Bitboard
}

var RookBestMagics = [64]MagicValue{
	{9331458498780872708, 12}, {4665729506550484992, 11}, {144126186415460480, 11}, {144124147393380420, 12}, {11565257037802111104, 11}, {144132788852099073, 11}, {360290736719004416, 11}, {72057871080096230, 12}, {4719913149124313312, 11}, {293156463157707144, 10}, {6917669902577307648, 10}, {140771923603456, 10}, {1162069475734979584, 10}, {9223935029758136344, 10}, {73465046232203520, 10}, {72198473260253312, 11}, {72207677412868132, 11}, {9160032444752128, 10}, {144256475856900105, 10}, {5193215519872860424, 10}, {159430394052612, 10}, {10523224031208014848, 10}, {864765895917076752, 10}, {600333755678852, 11}, {15832969587466384, 11}, {4503884168962050, 10}, {1161937501029400896, 10}, {5814147670840180754, 10}, {576645472412763136, 10}, {42786397639148544, 10}, {2315415374626029896, 10}, {10520549469173335296, 11}, {2317524495633481760, 11}, {360323223285399872, 10}, {9007474451424004, 10}, {5700005885121026, 10}, {10160261531204324352, 10}, {15016162516944359556, 10}, {17636813465603, 10}, {150026164885260370, 11}, {18015225290719265, 11}, {292736450217132032, 10}, {1333100674342224000, 10}, {1153484494829912080, 10}, {145243183935160356, 10}, {4648277800028340236, 10}, {18295882077241348, 10}, {148900299225235458, 11}, {2308517022067064960, 11}, {2666166164849787008, 10}, {10484947351389610496, 10}, {865113409641250944, 10}, {79164905423104, 10}, {598134445769894144, 10}, {8865384334336, 10}, {140741783341184, 11}, {11822236544142419985, 12}, {853358739210241, 11}, {2306689770606579907, 11}, {27305340485764105, 11}, {562958563547782, 12}, {576742261673689253, 11}, {563053041289474, 11}, {72061994248775234, 12},
}
var BishopBestMagics = [64]MagicValue{
	{1171237203947823488, 6}, {2308412585671671873, 5}, {7569428664312397952, 5}, {1155182929459020040, 5}, {883849190865657860, 5}, {23791370577911968, 5}, {4936090344850063874, 5}, {146649013763063808, 6}, {936753137990238992, 5}, {2278222469285378, 5}, {1196989970411233792, 5}, {324720985242599456, 5}, {5764660884244799536, 5}, {2394762130760320, 5}, {621497027822370952, 5}, {13981425596434489600, 5}, {27065647490015380, 5}, {5190404141385548160, 5}, {9605402366906400, 7}, {579851818030354560, 7}, {1190076210669946880, 7}, {73606260729094176, 7}, {63472633420988992, 5}, {144191067330330882, 5}, {9296115726568935426, 5}, {1153494350270302208, 5}, {2594293288496408642, 7}, {288533842569070752, 9}, {282097763762178, 9}, {12682493891987964224, 7}, {3413158987827720, 5}, {144257574865338502, 5}, {9227880378178601482, 5}, {578723650582085891, 5}, {563226173772032, 7}, {4611688219602845825, 9}, {577596552386969664, 9}, {784805039544846344, 7}, {4512990774821376, 5}, {13856521630425031561, 5}, {36187162681018624, 5}, {81208298082213924, 5}, {563370994700560, 7}, {598417927602305, 7}, {1733894656929825796, 7}, {9223935605837201536, 7}, {83396204645406928, 5}, {2594638672888348928, 5}, {4575136872169504, 5}, {1443143505936385, 5}, {288232576282804224, 5}, {2199569041456, 5}, {1181772762902036736, 5}, {582517344230309892, 5}, {4616194085424742402, 5}, {78814110179000972, 5}, {380572319064539168, 6}, {4625202317049012226, 5}, {109354164517619712, 5}, {18256567021373440, 5}, {1154047404782782976, 5}, {586593868780142848, 5}, {9223566169653444672, 5}, {4508038484721921, 6},
}

func MagicIndex(magic uint64, blockerBoard Bitboard, bitsInIndex int) int {
	mult := uint64(blockerBoard) * magic
	shift := 64 - bitsInIndex
	result := mult >> shift
	return int(result)
}

// Attacks is every square reachable from index along the table's rays given
// the occupancy, up to and including the first blocker in each direction.
func (t *MagicMoveTable) Attacks(index int, occupied Bitboard) Bitboard {
	blockerBoard := t.BlockerMasks[index] & occupied
	magicValues := t.Magics[index]
	magicIndex := MagicIndex(magicValues.Magic, blockerBoard, magicValues.BitsInMagicIndex)
	return t.Moves[index][magicIndex]
}

func generateWalkBitboard(
	pieceBoard Bitboard,
	blockerBoard Bitboard,
	dir Dir,
	output Bitboard,
) Bitboard {
	potential := pieceBoard

	for potential != 0 {
		potential = Step(potential, dir)

		quiet := potential & ^blockerBoard
		capture := potential & blockerBoard

		output |= quiet | capture

		potential = quiet
	}

	return output
}

// SlidingAttacksSlow ray-casts from index in each dir until it leaves the
// board or hits an occupied square. It is the reference the magic tables are
// built from.
func SlidingAttacksSlow(index int, occupied Bitboard, dirs []Dir) Bitboard {
	result := Bitboard(0)
	for _, dir := range dirs {
		result = generateWalkBitboard(SingleBitboard(index), occupied, dir, result)
	}
	return result
}

// GenerateBlockerMask is the relevant occupancy for a slider on startIndex:
// its empty-board rays minus the last square of each ray, since a piece on
// the edge never changes what is reachable.
func GenerateBlockerMask(startIndex int, dirs []Dir) Bitboard {
	result := Bitboard(0)
	for _, dir := range dirs {
		walk := generateWalkBitboard(SingleBitboard(startIndex), Bitboard(0), dir, Bitboard(0))
		result |= walk & PreMoveMasks[dir]
	}

	return result &^ SingleBitboard(startIndex)
}

// EachBlockerBoard visits every subset of blockerMask, starting from the
// empty subset.
func EachBlockerBoard(blockerMask Bitboard, callback func(Bitboard)) {
	subset := Bitboard(0)
	for {
		callback(subset)
		subset = (subset - blockerMask) & blockerMask
		if subset == 0 {
			break
		}
	}
}

type MoveBoardForBlockerBoard struct {
	moveBoard    Bitboard
	blockerBoard Bitboard
}

func generateMoveBoards(pieceIndex int, blockerMask Bitboard, dirs []Dir) []MoveBoardForBlockerBoard {
	result := make([]MoveBoardForBlockerBoard, 0, 1<<OnesCount(blockerMask))
	EachBlockerBoard(blockerMask, func(blockerBoard Bitboard) {
		result = append(result, MoveBoardForBlockerBoard{
			moveBoard:    SlidingAttacksSlow(pieceIndex, blockerBoard, dirs),
			blockerBoard: blockerBoard,
		})
	})
	return result
}

type magicScratch struct {
	cache []Bitboard
	hit   []bool
}

func newMagicScratch() *magicScratch {
	return &magicScratch{cache: make([]Bitboard, 1<<12), hit: make([]bool, 1<<12)}
}

// magicIndexWorks accepts collisions only between blocker boards that produce
// the same moves.
func (s *magicScratch) magicIndexWorks(magic uint64, moves []MoveBoardForBlockerBoard, bitsInIndex int) bool {
	size := 1 << bitsInIndex
	for i := 0; i < size; i++ {
		s.hit[i] = false
	}
	for _, move := range moves {
		i := MagicIndex(magic, move.blockerBoard, bitsInIndex)
		if s.hit[i] {
			if s.cache[i] != move.moveBoard {
				return false
			}
		} else {
			s.cache[i] = move.moveBoard
			s.hit[i] = true
		}
	}

	return true
}

func rand64(rng *rand.Rand) uint64 {
	return uint64(rng.Uint32())<<32 + uint64(rng.Uint32())
}

func mostlyZeroRand64(rng *rand.Rand) uint64 {
	return rand64(rng) & rand64(rng) & rand64(rng)
}

func (s *magicScratch) bitsRequiredForMagicIndex(magic uint64, moves []MoveBoardForBlockerBoard) (int, Success) {
	success := Success(false)
	bestBitsInIndex := 0

	for bitsInIndex := 12; bitsInIndex > 0; bitsInIndex-- {
		if s.magicIndexWorks(magic, moves, bitsInIndex) {
			bestBitsInIndex = bitsInIndex
			success = true
		} else {
			break
		}
	}

	return bestBitsInIndex, success
}

func (s *magicScratch) findMagicValue(moves []MoveBoardForBlockerBoard, bitsInIndex int, rng *rand.Rand, attempts int) (MagicValue, Success) {
	for i := 0; i < attempts; i++ {
		magic := mostlyZeroRand64(rng)
		if s.magicIndexWorks(magic, moves, bitsInIndex) {
			return MagicValue{magic, bitsInIndex}, true
		}
	}
	return MagicValue{}, false
}

func (s *magicScratch) findBetterMagicValue(bestMagic MagicValue, moves []MoveBoardForBlockerBoard, rng *rand.Rand, attempts int) MagicValue {
	for i := 0; i < attempts; i++ {
		magic := mostlyZeroRand64(rng)
		bitsInIndex, currentSuccess := s.bitsRequiredForMagicIndex(magic, moves)
		if !currentSuccess {
			continue
		}

		if bitsInIndex < bestMagic.BitsInMagicIndex {
			bestMagic.Magic = magic
			bestMagic.BitsInMagicIndex = bitsInIndex
		}
	}

	return bestMagic
}

// FindBetterMagic tries attempts random magics for index and returns the one
// needing the fewest index bits, or current if none beats it.
func FindBetterMagic(index int, dirs []Dir, current MagicValue, rng *rand.Rand, attempts int) MagicValue {
	blockerMask := GenerateBlockerMask(index, dirs)
	moves := generateMoveBoards(index, blockerMask, dirs)
	return newMagicScratch().findBetterMagicValue(current, moves, rng, attempts)
}

const _replacementMagicAttempts = 10_000_000

type MagicTableOptions struct {
	Logger Optional[Logger]
	Seed   int64
}

// NewMagicMoveTable fills a table for the rays in dirs. Every magic is
// checked against all blocker boards; one that collides is replaced by a
// fresh search at the full relevant-bit width.
func NewMagicMoveTable(dirs []Dir, magics [64]MagicValue, opts MagicTableOptions) MagicMoveTable {
	logger := opts.Logger.ValueOr(&SilentLogger)
	rng := rand.New(rand.NewSource(opts.Seed))
	scratch := newMagicScratch()

	result := MagicMoveTable{}

	for i := 0; i < 64; i++ {
		blockerMask := GenerateBlockerMask(i, dirs)
		result.BlockerMasks[i] = blockerMask

		moves := generateMoveBoards(i, blockerMask, dirs)

		magic := magics[i]
		if magic.BitsInMagicIndex <= 0 || magic.BitsInMagicIndex > 12 || !scratch.magicIndexWorks(magic.Magic, moves, magic.BitsInMagicIndex) {
			logger.Printf("magic %v for %v does not hash cleanly, searching for a replacement\n", magic, StringFromBoardIndex(i))

			replacement, ok := scratch.findMagicValue(moves, OnesCount(blockerMask), rng, _replacementMagicAttempts)
			if !ok {
				panic(fmt.Sprintf("no magic found for %v", StringFromBoardIndex(i)))
			}
			magic = replacement
		}
		result.Magics[i] = magic

		result.Moves[i] = make([]Bitboard, 1<<magic.BitsInMagicIndex)
		for _, m := range moves {
			magicIndex := MagicIndex(magic.Magic, m.blockerBoard, magic.BitsInMagicIndex)
			result.Moves[i][magicIndex] = m.moveBoard
		}
	}

	return result
}

func LoadMagics(path string) ([64]MagicValue, Error) {
	magics := [64]MagicValue{}

	input, err := os.ReadFile(path)
	if err != nil {
		return magics, Errorf("reading magics %v: %w", path, err)
	}
	err = json.Unmarshal(input, &magics)
	if err != nil {
		return magics, Errorf("parsing magics %v: %w", path, err)
	}

	return magics, NilError
}

func SaveMagics(path string, magics [64]MagicValue) Error {
	output, err := json.Marshal(magics)
	if err != nil {
		return Wrap(err)
	}
	err = os.WriteFile(path, output, 0600)
	if err != nil {
		return Errorf("writing magics %v: %w", path, err)
	}
	return NilError
}
