package ratelimit

import (
	"hash/fnv"
	"sync"
	"time"
)

// shardCount trades shard-contention probability against the cost of many
// fine-grained locks. Keys are spread across shards by FNV-1a, so unrelated
// clients rarely serialize on the same mutex.
const shardCount = 64

// record wraps per-client algorithm state with the access time the eviction
// sweeper keys off.
type record[T any] struct {
	state      T
	lastAccess time.Time
}

type shard[T any] struct {
	mu      sync.Mutex
	records map[string]*record[T]
}

// store owns the per-client records of a single limiter instance. Lookup,
// creation, mutation and eviction of a record all happen under its shard
// lock: create-or-fetch for a new key is atomic, and the sweeper can never
// remove a record another caller is mutating.
type store[T any] struct {
	shards      [shardCount]shard[T]
	clock       Clock
	idleTimeout time.Duration

	stopSweep chan struct{}
	stopOnce  sync.Once
}

func newStore[T any](cfg settings) *store[T] {
	s := &store[T]{
		clock:       cfg.clock,
		idleTimeout: cfg.idleTimeout,
		stopSweep:   make(chan struct{}),
	}
	for i := range s.shards {
		s.shards[i].records = make(map[string]*record[T])
	}
	if cfg.sweepInterval > 0 {
		go s.sweep(cfg.sweepInterval)
	}
	return s
}

func (s *store[T]) shardFor(key string) *shard[T] {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &s.shards[h.Sum32()%shardCount]
}

// update runs fn on key's record under the shard lock, creating the record
// with init when the key is unseen.
func (s *store[T]) update(key string, init func() T, fn func(state *T)) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	rec, ok := sh.records[key]
	if !ok {
		rec = &record[T]{state: init()}
		sh.records[key] = rec
	}
	rec.lastAccess = s.clock.Now()
	fn(&rec.state)
}

// inspect runs fn on key's record if one exists and reports whether it did.
// fn may still mutate state: lazy refill and pruning happen on reads too.
func (s *store[T]) inspect(key string, fn func(state *T)) bool {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	rec, ok := sh.records[key]
	if !ok {
		return false
	}
	rec.lastAccess = s.clock.Now()
	fn(&rec.state)
	return true
}

func (s *store[T]) remove(key string) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	delete(sh.records, key)
	sh.mu.Unlock()
}

// size returns the number of tracked clients across all shards.
func (s *store[T]) size() int {
	var n int
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		n += len(sh.records)
		sh.mu.Unlock()
	}
	return n
}

func (s *store[T]) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeIdle()
		case <-s.stopSweep:
			return
		}
	}
}

// removeIdle drops records untouched for longer than the idle timeout. The
// next access for an evicted key is indistinguishable from a first-ever call.
func (s *store[T]) removeIdle() {
	now := s.clock.Now()
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		for key, rec := range sh.records {
			if now.Sub(rec.lastAccess) > s.idleTimeout {
				delete(sh.records, key)
			}
		}
		sh.mu.Unlock()
	}
}

// close stops the background sweeper. Safe to call multiple times.
func (s *store[T]) close() {
	s.stopOnce.Do(func() { close(s.stopSweep) })
}
