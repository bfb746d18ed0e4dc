package entity

// Pool is a free-list recycler for pooled records. Records are allocated at
// construction (or on overflow) and reused for the life of the process, so
// steady-state play never allocates. The soft capacity only sizes the
// initial free list; Acquire never fails under a spawn burst.
type Pool[T any] struct {
	alloc  func() *T
	free   []*T
	active map[*T]struct{}
}

// NewPool creates a pool pre-seeded with prealloc records.
func NewPool[T any](prealloc int, alloc func() *T) *Pool[T] {
	p := &Pool[T]{
		alloc:  alloc,
		free:   make([]*T, 0, prealloc),
		active: make(map[*T]struct{}, prealloc),
	}
	for i := 0; i < prealloc; i++ {
		p.free = append(p.free, alloc())
	}
	return p
}

// Acquire returns a ready-to-use record, pulled from the free list when one
// is available and freshly constructed otherwise. The reset function runs
// on the record before it is handed out. A record is never handed out twice
// without an intervening Release.
func (p *Pool[T]) Acquire(reset func(*T)) *T {
	var rec *T
	if n := len(p.free); n > 0 {
		rec = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		rec = p.alloc()
	}
	if reset != nil {
		reset(rec)
	}
	p.active[rec] = struct{}{}
	return rec
}

// Release returns a record to the free list. Releasing a record the pool is
// not tracking as active is a silent no-op; this tolerates double-despawn
// between bounds checking and death-animation completion. Field values are
// left as-is until the next Acquire reset.
func (p *Pool[T]) Release(rec *T) {
	if rec == nil {
		return
	}
	if _, ok := p.active[rec]; !ok {
		return
	}
	delete(p.active, rec)
	p.free = append(p.free, rec)
}

// ActiveCount returns the number of records currently handed out.
func (p *Pool[T]) ActiveCount() int {
	return len(p.active)
}

// FreeCount returns the number of records waiting on the free list.
func (p *Pool[T]) FreeCount() int {
	return len(p.free)
}
