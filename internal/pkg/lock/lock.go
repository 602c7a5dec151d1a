// Package lock provides per-party mutual exclusion so that two near-simultaneous
// button taps from the same party are applied one after the other.
package lock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// PartyLock holds one mutex per party key. Different keys never block each other.
// A key's mutex is dropped once no caller holds or waits on it.
type PartyLock struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

// New creates an empty PartyLock.
func New() *PartyLock {
	return &PartyLock{locks: make(map[int64]*entry)}
}

// Lock acquires the mutex for key.
func (pl *PartyLock) Lock(key int64) {
	pl.mu.Lock()
	e, ok := pl.locks[key]
	if !ok {
		e = &entry{}
		pl.locks[key] = e
	}
	e.refs++
	pl.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key. Unlocking a key that was never locked is a no-op.
func (pl *PartyLock) Unlock(key int64) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	e, ok := pl.locks[key]
	if !ok {
		return
	}
	e.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(pl.locks, key)
	}
}

// WithLock runs fn while holding the mutex for key.
func (pl *PartyLock) WithLock(key int64, fn func() error) error {
	pl.Lock(key)
	defer pl.Unlock(key)
	return fn()
}
