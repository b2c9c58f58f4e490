package guarded

import (
	"context"
	"sync"
)

// lock is the held/free flag shared by every cell.
//
// The zero value is free.
type lock struct {
	once  sync.Once
	guard chan struct{} // buffered guard, write = acquire, read = release
}

func (l *lock) init() {
	l.once.Do(func() {
		l.guard = make(chan struct{}, 1)
	})
}

// acquire blocks until the lock is held by the caller, or ctx is canceled.
func (l *lock) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.init()

	select {
	case l.guard <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// acquireForever blocks until the lock is held by the caller.
func (l *lock) acquireForever() {
	l.init()
	l.guard <- struct{}{}
}

// tryAcquire acquires the lock if doing so would not block.
func (l *lock) tryAcquire() bool {
	l.init()

	select {
	case l.guard <- struct{}{}:
		return true
	default:
		return false
	}
}

// release frees the lock.
//
// It panics if the lock is not held.
func (l *lock) release() {
	l.init()

	select {
	case <-l.guard:
	default:
		panic("guarded: unlock of unlocked cell")
	}
}
