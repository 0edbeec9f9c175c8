package nearcell

import "sync"

// Locked is the synchronizing wrapper for sharing a cell across
// goroutines. Cell and Checked make no cross-goroutine guarantees at
// all; when a value must be shared, it goes in a Locked.
type Locked[T any] struct {
	mu   sync.RWMutex
	cell Cell[T]
}

// NewLocked constructs a Locked cell taking ownership of v.
func NewLocked[T any](v T) *Locked[T] {
	return &Locked[T]{cell: Cell[T]{value: v}}
}

// NewLockedDefault constructs a Locked cell holding the zero value of T.
func NewLockedDefault[T any]() *Locked[T] {
	var v T
	return NewLocked(v)
}

// Get returns the current value.
func (l *Locked[T]) Get() T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cell.value
}

// Set stores v into the cell.
func (l *Locked[T]) Set(v T) {
	l.mu.Lock()
	l.cell.value = v
	l.mu.Unlock()
}

// Swap stores v and returns the previous value.
func (l *Locked[T]) Swap(v T) T {
	l.mu.Lock()
	old := l.cell.value
	l.cell.value = v
	l.mu.Unlock()
	return old
}

// With calls f with the current value under the read lock. f must not
// call back into this Locked.
func (l *Locked[T]) With(f func(T)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f(l.cell.value)
}

// WithMut calls f with a mutable view of the storage under the write
// lock. The pointer is only valid for the duration of the call.
func (l *Locked[T]) WithMut(f func(*T)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f(&l.cell.value)
}
