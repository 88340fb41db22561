package concurrency

import (
	"sync"
)

// LockManager handles keyed locks
type LockManager[K comparable] struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager[K comparable]() *LockManager[K] {
	return &LockManager[K]{}
}

// GetLock returns the mutex for the given key, creating it on first use
func (lm *LockManager[K]) GetLock(key K) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager[K]) WithLock(key K, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// Forget drops the lock for key. A caller that still holds it keeps a valid
// mutex; the next GetLock hands out a fresh one.
func (lm *LockManager[K]) Forget(key K) {
	lm.locks.Delete(key)
}
