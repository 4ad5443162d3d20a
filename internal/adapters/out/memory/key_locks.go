package memory

import (
	"context"
	"sync"
)

// keyLocks is a set of mutexes created on demand per key. A waiting Lock can
// be abandoned through its context; entries are dropped once nobody holds or
// waits for them.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*keyLock)}
}

func (l *keyLocks) acquire(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	return kl
}

func (l *keyLocks) release(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}

// Lock blocks until key is free or ctx is done.
func (l *keyLocks) Lock(ctx context.Context, key string) error {
	kl := l.acquire(key)
	select {
	case kl.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.release(key, kl)
		return ctx.Err()
	}
}

// TryLock takes key only if it is free right now.
func (l *keyLocks) TryLock(key string) bool {
	kl := l.acquire(key)
	select {
	case kl.ch <- struct{}{}:
		return true
	default:
		l.release(key, kl)
		return false
	}
}

func (l *keyLocks) Unlock(key string) {
	l.mu.Lock()
	kl, ok := l.locks[key]
	l.mu.Unlock()
	if !ok {
		return
	}
	<-kl.ch
	l.release(key, kl)
}
