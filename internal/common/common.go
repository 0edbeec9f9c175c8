package common

import "unsafe"

// Zero returns the zero value of T.
func Zero[T any]() T {
	var v T
	return v
}

// AlignOf returns the required alignment of T.
func AlignOf[T any]() uintptr {
	var v T
	return unsafe.Alignof(v)
}

// Aligned reports whether p satisfies align.
func Aligned(p unsafe.Pointer, align uintptr) bool {
	if align == 0 {
		return false
	}
	return uintptr(p)%align == 0
}
