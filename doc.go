// Package guarded provides a mutex that owns the value it protects.
//
// The value in a Cell is only reachable through WithLock and its variants,
// which hold the cell's lock for the duration of the call and release it on
// every exit path. A Signal is a cell with no value, which may additionally be
// locked and unlocked directly.
package guarded
