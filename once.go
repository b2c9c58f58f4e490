package guarded

import (
	"context"
	"sync/atomic"
)

// Once is a context-aware and "failable" version of sync.Once.
type Once struct {
	done uint32 // atomic bool, only set while s is held
	s    Signal
}

// Do calls the function fn if and only if Do() has never been called
// successfully for this instance of Once.
//
// A successful call is one that returns a nil error and does not panic. If
// another call is in progress Do blocks until it finishes, or ctx is canceled.
func (o *Once) Do(
	ctx context.Context,
	fn func(context.Context) error,
) error {
	if atomic.LoadUint32(&o.done) == 1 {
		return nil
	}

	_, err := WithLockContext(ctx, &o.s, func(*struct{}) (struct{}, error) {
		if o.done == 1 {
			return struct{}{}, nil
		}

		if err := fn(ctx); err != nil {
			return struct{}{}, err
		}

		atomic.StoreUint32(&o.done, 1)
		return struct{}{}, nil
	})

	return err
}
