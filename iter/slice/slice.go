// Package slice lets ordinary slices take part in lending traversal.
//
// Iter lends copies of the elements of a slice, IterMut lends pointers into
// its backing array.  Both delegate directly to slice indexing, support
// traversal from either end and report an exact size hint.
package slice

import "github.com/jake-scott/go-lender"

// Iter traverses over a slice of elements of type T, lending each element
// by value.
type Iter[T any] struct {
	s []T
}

// New returns a lender that traverses over the provided slice.
func New[T any](s []T) *Iter[T] {
	return &Iter[T]{s: s}
}

// Next returns the element at the front of the remaining slice.
func (r *Iter[T]) Next() (T, bool) {
	if len(r.s) == 0 {
		var zero T
		return zero, false
	}

	x := r.s[0]
	r.s = r.s[1:]
	return x, true
}

// NextBack returns the element at the back of the remaining slice.
func (r *Iter[T]) NextBack() (T, bool) {
	if len(r.s) == 0 {
		var zero T
		return zero, false
	}

	x := r.s[len(r.s)-1]
	r.s = r.s[:len(r.s)-1]
	return x, true
}

// Len returns the number of elements left.
func (r *Iter[T]) Len() int {
	return len(r.s)
}

// SizeHint returns the exact number of elements left.
func (r *Iter[T]) SizeHint() (int, int, bool) {
	return len(r.s), len(r.s), true
}

// Fused always returns true.
func (r *Iter[T]) Fused() bool {
	return true
}

// IntoLender returns r.
func (r *Iter[T]) IntoLender() lender.Lender[T] {
	return r
}

func (r *Iter[T]) Count() int {
	n := len(r.s)
	r.s = nil
	return n
}

func (r *Iter[T]) AdvanceBy(n int) int {
	return advance(&r.s, n)
}

func (r *Iter[T]) AdvanceBackBy(n int) int {
	return advanceBack(&r.s, n)
}

func (r *Iter[T]) Nth(n int) (T, bool) {
	if advance(&r.s, n) != 0 {
		var zero T
		return zero, false
	}
	return r.Next()
}

func (r *Iter[T]) NthBack(n int) (T, bool) {
	if advanceBack(&r.s, n) != 0 {
		var zero T
		return zero, false
	}
	return r.NextBack()
}

func (r *Iter[T]) Last() (T, bool) {
	x, ok := r.NextBack()
	r.s = nil
	return x, ok
}

// IterMut traverses over a slice of elements of type T, lending a pointer
// to each element in the backing array.  Writes through the pointer update
// the slice.
type IterMut[T any] struct {
	s []T
}

// NewMut returns a lender that traverses over the provided slice, lending
// pointers to its elements.
func NewMut[T any](s []T) *IterMut[T] {
	return &IterMut[T]{s: s}
}

// Next returns a pointer to the element at the front of the remaining slice.
func (r *IterMut[T]) Next() (*T, bool) {
	if len(r.s) == 0 {
		return nil, false
	}

	x := &r.s[0]
	r.s = r.s[1:]
	return x, true
}

// NextBack returns a pointer to the element at the back of the remaining
// slice.
func (r *IterMut[T]) NextBack() (*T, bool) {
	if len(r.s) == 0 {
		return nil, false
	}

	x := &r.s[len(r.s)-1]
	r.s = r.s[:len(r.s)-1]
	return x, true
}

// Len returns the number of elements left.
func (r *IterMut[T]) Len() int {
	return len(r.s)
}

// SizeHint returns the exact number of elements left.
func (r *IterMut[T]) SizeHint() (int, int, bool) {
	return len(r.s), len(r.s), true
}

// Fused always returns true.
func (r *IterMut[T]) Fused() bool {
	return true
}

// IntoLender returns r.
func (r *IterMut[T]) IntoLender() lender.Lender[*T] {
	return r
}

func (r *IterMut[T]) Count() int {
	n := len(r.s)
	r.s = nil
	return n
}

func (r *IterMut[T]) AdvanceBy(n int) int {
	return advance(&r.s, n)
}

func (r *IterMut[T]) AdvanceBackBy(n int) int {
	return advanceBack(&r.s, n)
}

func (r *IterMut[T]) Nth(n int) (*T, bool) {
	if advance(&r.s, n) != 0 {
		return nil, false
	}
	return r.Next()
}

func (r *IterMut[T]) NthBack(n int) (*T, bool) {
	if advanceBack(&r.s, n) != 0 {
		return nil, false
	}
	return r.NextBack()
}

func (r *IterMut[T]) Last() (*T, bool) {
	x, ok := r.NextBack()
	r.s = nil
	return x, ok
}

// advance drops up to n elements from the front of *s and returns how many
// were missing.
func advance[T any](s *[]T, n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(*s) {
		k := n - len(*s)
		*s = nil
		return k
	}

	*s = (*s)[n:]
	return 0
}

// advanceBack drops up to n elements from the back of *s and returns how
// many were missing.
func advanceBack[T any](s *[]T, n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(*s) {
		k := n - len(*s)
		*s = nil
		return k
	}

	*s = (*s)[:len(*s)-n]
	return 0
}
