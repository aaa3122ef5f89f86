// Package pool keeps released objects for reuse instead of constructing new
// ones on every request.
package pool

import (
	"errors"
	"sync"
)

// Unbounded disables the capacity limit
const Unbounded = -1

var (
	// ErrExhausted is returned by Acquire when capacity objects are in use
	ErrExhausted = errors.New("pool exhausted")

	// ErrForeign is returned by Release for objects the pool did not hand out
	ErrForeign = errors.New("object was not acquired from this pool")
)

// Config holds pool configuration
type Config struct {
	// Capacity limits the number of objects alive at once. Zero or negative
	// means Unbounded.
	Capacity int
}

// DefaultConfig returns an unbounded configuration
func DefaultConfig() Config {
	return Config{Capacity: Unbounded}
}

// Stats reports pool activity
type Stats struct {
	Created int
	Reused  int
	Idle    int
	InUse   int
}

// Pool hands out *T values and takes them back for reuse
type Pool[T any] struct {
	mu       sync.Mutex
	newFn    func() *T
	capacity int
	idle     []*T
	inUse    map[*T]struct{}

	// Metrics
	created int
	reused  int
}

// New creates a pool; newFn constructs an object when none is idle
func New[T any](cfg Config, newFn func() *T) *Pool[T] {
	if cfg.Capacity <= 0 {
		cfg.Capacity = Unbounded
	}
	if newFn == nil {
		newFn = func() *T { return new(T) }
	}

	return &Pool[T]{
		newFn:    newFn,
		capacity: cfg.Capacity,
		inUse:    make(map[*T]struct{}),
	}
}

// Capacity returns the configured capacity, or Unbounded
func (p *Pool[T]) Capacity() int {
	return p.capacity
}

// Acquire returns the most recently released object, or a new one if none
// is idle. Objects are handed out as they were released; callers reset them.
func (p *Pool[T]) Acquire() (*T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.idle); n > 0 {
		obj := p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
		p.inUse[obj] = struct{}{}
		p.reused++
		return obj, nil
	}

	if p.capacity != Unbounded && p.created >= p.capacity {
		return nil, ErrExhausted
	}

	obj := p.newFn()
	p.inUse[obj] = struct{}{}
	p.created++
	return obj, nil
}

// Release returns obj to the pool without destroying it
func (p *Pool[T]) Release(obj *T) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.inUse[obj]; !ok {
		return ErrForeign
	}
	delete(p.inUse, obj)
	p.idle = append(p.idle, obj)
	return nil
}

// Stats returns a snapshot of the pool counters
func (p *Pool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Stats{
		Created: p.created,
		Reused:  p.reused,
		Idle:    len(p.idle),
		InUse:   len(p.inUse),
	}
}
