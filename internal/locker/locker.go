// Package locker serializes mutations per product. Placement, withdrawal and
// result declaration each span a read-validate-write sequence over shared
// inventory, so they hold the product's mutex for the whole call.
package locker

import "sync"

// Locker hands out one mutex per key. Mutexes are created on first use and
// kept for the life of the process.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty Locker.
func New() *Locker {
	return &Locker{locks: make(map[string]*sync.Mutex)}
}

func (l *Locker) get(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}

// Lock acquires the mutex for key, blocking until it is available.
func (l *Locker) Lock(key string) {
	l.get(key).Lock()
}

// Unlock releases the mutex for key.
func (l *Locker) Unlock(key string) {
	l.get(key).Unlock()
}
