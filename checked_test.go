package nearcell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckedSharedBorrows(t *testing.T) {
	c := NewChecked(24)
	a := c.Borrow()
	b := c.Borrow()
	require.Equal(t, 24, a.Get())
	require.Equal(t, 24, b.Get())
	a.Release()
	b.Release()
	require.Equal(t, 24, c.Unwrap())
}

func TestCheckedMutBorrow(t *testing.T) {
	c := NewChecked(24)
	m := c.BorrowMut()
	m.Set(42)
	require.Equal(t, 42, m.Get())
	*m.Ptr() = 242
	m.Release()

	r := c.Borrow()
	require.Equal(t, 242, r.Get())
	r.Release()
	require.Equal(t, 242, c.Unwrap())
}

func TestCheckedConflicts(t *testing.T) {
	c := NewChecked("x")

	r := c.Borrow()
	_, err := c.TryBorrowMut()
	require.ErrorIs(t, err, ErrBorrowed)
	require.Panics(t, func() { c.BorrowMut() })
	require.Panics(t, func() { c.Unwrap() })
	r.Release()

	m := c.BorrowMut()
	_, err = c.TryBorrow()
	require.ErrorIs(t, err, ErrBorrowedMut)
	_, err = c.TryBorrowMut()
	require.ErrorIs(t, err, ErrBorrowedMut)
	require.Panics(t, func() { c.Borrow() })
	m.Release()

	// all borrows gone, both modes work again
	c.Borrow().Get()
}

func TestCheckedReleaseRestores(t *testing.T) {
	c := NewCheckedDefault[int]()
	for i := 0; i < 3; i++ {
		m := c.BorrowMut()
		m.Set(m.Get() + 1)
		m.Release()
	}
	require.Equal(t, 3, c.Unwrap())
}

func TestCheckedUseAfterRelease(t *testing.T) {
	c := NewChecked(1)
	r := c.Borrow()
	r.Release()
	require.Panics(t, func() { r.Release() })

	m := c.BorrowMut()
	m.Release()
	require.Panics(t, func() { m.Set(2) })
}
