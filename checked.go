package nearcell

import "errors"

var (
	ErrBorrowed    = errors.New("nearcell: already borrowed")
	ErrBorrowedMut = errors.New("nearcell: already mutably borrowed")
	ErrReleased    = errors.New("nearcell: use of released borrow")
)

// Checked wraps a Cell with a runtime borrow guard: any number of shared
// borrows, or exactly one exclusive borrow, may be live at a time. It
// replaces the caller-discipline contract of Cell.Mut with a check that
// panics (or errors, via the Try forms) instead of racing.
//
// The guard is a plain counter, not a lock. A conflicting borrow is a
// bug in the caller, never something to wait out, so Checked stays
// single-ownership-domain like Cell.
type Checked[T any] struct {
	cell Cell[T]
	// borrows counts live shared borrows; -1 means mutably borrowed.
	borrows int
}

// NewChecked constructs a Checked cell taking ownership of v.
func NewChecked[T any](v T) *Checked[T] {
	return &Checked[T]{cell: Cell[T]{value: v}}
}

// NewCheckedDefault constructs a Checked cell holding the zero value of T.
func NewCheckedDefault[T any]() *Checked[T] {
	var v T
	return NewChecked(v)
}

// Borrow takes a shared borrow. Panics if an exclusive borrow is live.
func (c *Checked[T]) Borrow() Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}
	return r
}

// TryBorrow is Borrow returning ErrBorrowedMut instead of panicking.
func (c *Checked[T]) TryBorrow() (Ref[T], error) {
	if c.borrows < 0 {
		return Ref[T]{}, ErrBorrowedMut
	}
	c.borrows++
	return Ref[T]{cell: c}, nil
}

// BorrowMut takes the exclusive borrow. Panics if any borrow is live.
func (c *Checked[T]) BorrowMut() MutRef[T] {
	r, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return r
}

// TryBorrowMut is BorrowMut returning ErrBorrowed instead of panicking.
func (c *Checked[T]) TryBorrowMut() (MutRef[T], error) {
	if c.borrows != 0 {
		if c.borrows < 0 {
			return MutRef[T]{}, ErrBorrowedMut
		}
		return MutRef[T]{}, ErrBorrowed
	}
	c.borrows = -1
	return MutRef[T]{cell: c}, nil
}

// Unwrap consumes the cell, returning the contained value. Panics if any
// borrow is live.
func (c *Checked[T]) Unwrap() T {
	if c.borrows < 0 {
		panic(ErrBorrowedMut)
	}
	if c.borrows > 0 {
		panic(ErrBorrowed)
	}
	return c.cell.Unwrap()
}

// Ref is a live shared borrow of a Checked cell.
type Ref[T any] struct {
	cell *Checked[T]
}

// Get returns the current value.
func (r Ref[T]) Get() T {
	if r.cell == nil {
		panic(ErrReleased)
	}
	return r.cell.cell.value
}

// Release ends the borrow. The Ref must not be used afterwards.
func (r *Ref[T]) Release() {
	if r.cell == nil {
		panic(ErrReleased)
	}
	r.cell.borrows--
	r.cell = nil
}

// MutRef is the live exclusive borrow of a Checked cell.
type MutRef[T any] struct {
	cell *Checked[T]
}

// Get returns the current value.
func (r MutRef[T]) Get() T {
	if r.cell == nil {
		panic(ErrReleased)
	}
	return r.cell.cell.value
}

// Set stores v into the cell.
func (r MutRef[T]) Set(v T) {
	if r.cell == nil {
		panic(ErrReleased)
	}
	r.cell.cell.value = v
}

// Ptr returns a mutable pointer to the storage, valid until Release.
func (r MutRef[T]) Ptr() *T {
	if r.cell == nil {
		panic(ErrReleased)
	}
	return &r.cell.cell.value
}

// Release ends the borrow. The MutRef must not be used afterwards.
func (r *MutRef[T]) Release() {
	if r.cell == nil {
		panic(ErrReleased)
	}
	r.cell.borrows = 0
	r.cell = nil
}
