package zobrist

import (
	"fmt"
	"sync"

	. "github.com/cricklet/chessbits/internal/helpers"
)

type CachedCount struct {
	Depth       int
	Count       int
	ZobristHash uint64
}

// TranspositionTable remembers node counts by position hash. Counts are
// only reused at exactly the depth they were computed for.
type TranspositionTable struct {
	lock sync.Mutex

	Size          int
	Cache         []CachedCount
	Hits          int
	Collisions    int
	DepthMismatch int
	Misses        int
}

var DefaultTranspositionTableSize = 1 << 20

func NewTranspositionTable(size int) *TranspositionTable {
	return &TranspositionTable{
		Size:  size,
		Cache: make([]CachedCount, size),
	}
}

func (t *TranspositionTable) Stats() string {
	t.lock.Lock()
	defer t.lock.Unlock()
	return fmt.Sprintf("hits: %v, collisions: %v, depth mismatch: %v, misses: %v", t.Hits, t.Collisions, t.DepthMismatch, t.Misses)
}

func (t *TranspositionTable) Get(hash uint64, depth int) Optional[CachedCount] {
	t.lock.Lock()
	defer t.lock.Unlock()

	v := t.Cache[hash%uint64(t.Size)]
	if v.ZobristHash == hash {
		if v.Depth == depth {
			t.Hits++
			return Some(v)
		} else {
			t.DepthMismatch++
		}
	} else if v.ZobristHash != 0 {
		t.Collisions++
	} else {
		t.Misses++
	}
	return Empty[CachedCount]()
}

func (t *TranspositionTable) Put(hash uint64, depth int, count int) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.Cache[hash%uint64(t.Size)] = CachedCount{
		Depth:       depth,
		Count:       count,
		ZobristHash: hash,
	}
}
