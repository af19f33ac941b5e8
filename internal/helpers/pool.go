package helpers

import (
	"fmt"
	"sync"
)

type PoolStats struct {
	creates int
	resets  int
	hits    int
}

func (s PoolStats) String() string {
	return fmt.Sprint("creates: ", s.creates, ", resets: ", s.resets, ", hits: ", s.hits)
}

// Pool recycles up to 256 buffers, e.g. move lists reused across plies.
type Pool[T any] struct {
	create func() T
	reset  func(*T)

	lock      sync.Mutex
	available []*T
	stats     PoolStats
}

func NewPool[T any](create func() T, reset func(*T)) *Pool[T] {
	return &Pool[T]{create: create, reset: reset, available: make([]*T, 0, 256)}
}

func (p *Pool[T]) Get() *T {
	p.lock.Lock()
	defer p.lock.Unlock()

	if n := len(p.available); n > 0 {
		result := p.available[n-1]
		p.available = p.available[:n-1]
		p.stats.hits++
		return result
	}

	p.stats.creates++
	result := p.create()
	return &result
}

func (p *Pool[T]) Release(t *T) {
	p.reset(t)

	p.lock.Lock()
	defer p.lock.Unlock()

	p.stats.resets++
	if len(p.available) < cap(p.available) {
		p.available = append(p.available, t)
	}
}

func (p *Pool[T]) Stats() PoolStats {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.stats
}
