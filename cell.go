package guarded

import "context"

// Cell is a value of type T that can only be accessed while holding the cell's
// exclusive lock.
//
// A *Cell is safe for concurrent use by multiple goroutines. The zero value is
// an unlocked cell containing the zero value of T. A Cell must not be copied
// after first use.
type Cell[T any] struct {
	l     lock
	value T
}

// New returns an unlocked cell containing v.
//
// Ownership of v passes to the cell. If T holds references (pointers, slices,
// maps) the caller must not use them after calling New; all further access
// must go through the cell.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// WithLock calls fn with exclusive access to the value in c.
//
// It blocks until the lock is acquired; there is no timeout. The lock is
// released when fn returns or panics. fn's result and error are returned
// unchanged.
//
// fn must not retain the pointer it is given beyond its own return.
func WithLock[T, R any](c *Cell[T], fn func(*T) (R, error)) (R, error) {
	c.l.acquireForever()
	defer c.l.release()

	return fn(&c.value)
}

// WithLockIfAvailable calls fn with exclusive access to the value in c if the
// lock can be acquired without blocking.
//
// ok is false if the lock was held by another goroutine, in which case fn is
// not called. Otherwise it behaves like WithLock.
func WithLockIfAvailable[T, R any](c *Cell[T], fn func(*T) (R, error)) (_ R, ok bool, _ error) {
	if !c.l.tryAcquire() {
		var zero R
		return zero, false, nil
	}
	defer c.l.release()

	r, err := fn(&c.value)
	return r, true, err
}

// WithLockContext calls fn with exclusive access to the value in c.
//
// It blocks until the lock is acquired, or ctx is canceled. If ctx is canceled
// first, fn is not called and ctx.Err() is returned.
func WithLockContext[T, R any](
	ctx context.Context,
	c *Cell[T],
	fn func(*T) (R, error),
) (R, error) {
	if err := c.l.acquire(ctx); err != nil {
		var zero R
		return zero, err
	}
	defer c.l.release()

	return fn(&c.value)
}
