// Package nearcell provides a single-value memory cell with every
// legitimate way to reach the contained value, each under an explicit,
// minimal aliasing contract. The safe accessors (Get, Set, Update) cover
// normal use; Ptr, UnsafePointer and Mut expose the storage directly for
// callers that can uphold the contract themselves.
//
// None of the types here synchronize. Cell and Checked belong to one
// ownership domain (one goroutine, or whatever external synchronization
// the caller layers on top); Locked is the wrapper to use when the cell
// must be shared across goroutines.
package nearcell

import (
	"fmt"
	"unsafe"

	"github.com/rawbytedev/nearcell/internal/common"
)

// noCopy makes `go vet -copylocks` flag value copies of the containing
// struct. Copying a cell would fork the storage and break pointer identity.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Cell is an owned container for exactly one value of type T, stored
// inline. It always holds a live value until Unwrap consumes it.
type Cell[T any] struct {
	_     noCopy
	value T
}

// New constructs a Cell taking ownership of v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// NewDefault constructs a Cell holding the zero value of T.
func NewDefault[T any]() *Cell[T] {
	return New(common.Zero[T]())
}

// Get returns the current value. Safe: the result is a snapshot, no view
// into the storage escapes.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set stores v into the cell.
func (c *Cell[T]) Set(v T) {
	c.value = v
}

// Update calls f with a mutable view of the storage. The view is only
// valid for the duration of the call; f must not retain the pointer.
func (c *Cell[T]) Update(f func(*T)) {
	f(&c.value)
}

// Mut returns a mutable pointer to the storage from a shared handle,
// bypassing any discipline the caller may otherwise rely on.
//
// Writing through the result is sound only if no other access to this
// cell (Get, Update, another Mut, a retained Ptr) overlaps with the
// pointer's use. Violating that is a data race / torn access, not a
// reportable error. Prefer Update, or Checked when the discipline should
// be verified at runtime.
func (c *Cell[T]) Mut() *T {
	return &c.value
}

// Ptr returns a raw pointer to the storage. Producing the pointer is
// always safe; the Mut contract applies as soon as it is written through.
// The address is non-nil and stable for the cell's lifetime.
func (c *Cell[T]) Ptr() *T {
	return &c.value
}

// UnsafePointer returns the storage address as an untyped pointer,
// usable as a stable identity token (map keys, dedup) or for read-only
// access that must not overlap a write.
func (c *Cell[T]) UnsafePointer() unsafe.Pointer {
	return unsafe.Pointer(&c.value)
}

// Unwrap consumes the cell, returning the contained value. The storage
// is reset to the zero value and the cell must not be used afterwards.
func (c *Cell[T]) Unwrap() T {
	v := c.value
	c.value = common.Zero[T]()
	return v
}

// String renders the contained value the way the value itself would.
func (c *Cell[T]) String() string {
	return fmt.Sprint(c.value)
}

// GoString renders the value wrapped with the cell's type name.
func (c *Cell[T]) GoString() string {
	return fmt.Sprintf("nearcell.Cell(%#v)", c.value)
}
