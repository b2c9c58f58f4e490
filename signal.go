package guarded

// Signal is a cell with no payload, used purely to synchronize goroutines.
//
// In addition to WithLock and its variants, a Signal can be locked and
// unlocked directly with UnsafeLock, UnsafeTryLock and UnsafeUnlock.
type Signal = Cell[struct{}]

// NewSignal returns an unlocked signal.
func NewSignal() *Signal {
	return &Signal{}
}

// UnsafeLock blocks until s is acquired.
//
// The caller must call UnsafeUnlock exactly once when it is done. Nothing
// releases s automatically; forgetting to unlock deadlocks every later
// acquirer.
func UnsafeLock(s *Signal) {
	s.l.acquireForever()
}

// UnsafeTryLock acquires s if doing so would not block.
//
// It returns true if s was acquired, in which case the caller must call
// UnsafeUnlock exactly once.
func UnsafeTryLock(s *Signal) bool {
	return s.l.tryAcquire()
}

// UnsafeUnlock releases s.
//
// s need not be released by the goroutine that acquired it. Releasing s on
// behalf of another goroutine's acquisition breaks that goroutine's exclusive
// access and is not detected.
//
// It panics if s is not currently locked.
func UnsafeUnlock(s *Signal) {
	s.l.release()
}
