package slice

import (
	"slices"

	"github.com/jake-scott/go-lender"
)

// View is a read-only view of contiguous elements.  It can produce a
// lender over itself but offers no mutable traversal.
type View[T any] []T

// Iter returns a double-ended lender over the view.
func (v View[T]) Iter() *Iter[T] {
	return New([]T(v))
}

// IterLender implements lender.IterLender.
func (v View[T]) IterLender() lender.Lender[T] {
	return v.Iter()
}

// MutView is a mutable view of contiguous elements.  It can produce both a
// read-only lender and a lender of pointers into the view.
type MutView[T any] []T

// Iter returns a double-ended lender over the view.
func (v MutView[T]) Iter() *Iter[T] {
	return New([]T(v))
}

// IterMut returns a double-ended lender of pointers into the view.
func (v MutView[T]) IterMut() *IterMut[T] {
	return NewMut([]T(v))
}

// IterLender implements lender.IterLender.
func (v MutView[T]) IterLender() lender.Lender[T] {
	return v.Iter()
}

// IterMutLender implements lender.IterMutLender.
func (v MutView[T]) IterMutLender() lender.Lender[*T] {
	return v.IterMut()
}

// Vec is a growable array.  Besides producing lenders over itself, a Vec
// can be built from or extended with a lender of values.
type Vec[T any] []T

// Iter returns a double-ended lender over the elements of v.
func (v *Vec[T]) Iter() *Iter[T] {
	return New([]T(*v))
}

// IterMut returns a double-ended lender of pointers to the elements of v.
func (v *Vec[T]) IterMut() *IterMut[T] {
	return NewMut([]T(*v))
}

// IterLender implements lender.IterLender.
func (v *Vec[T]) IterLender() lender.Lender[T] {
	return v.Iter()
}

// IterMutLender implements lender.IterMutLender.
func (v *Vec[T]) IterMutLender() lender.Lender[*T] {
	return v.IterMut()
}

// Len returns the number of elements in v.
func (v *Vec[T]) Len() int {
	return len(*v)
}

// FromLender replaces the contents of v with the elements of src.
func (v *Vec[T]) FromLender(src lender.IntoLender[T]) {
	*v = nil
	v.ExtendLender(src)
}

// ExtendLender appends every element of src to v.
func (v *Vec[T]) ExtendLender(src lender.IntoLender[T]) {
	lender.Drain[T](v, src)
}

// ExtendLenderOne appends item to v.
func (v *Vec[T]) ExtendLenderOne(item T) {
	*v = append(*v, item)
}

// ExtendLenderReserve grows the capacity of v so that another additional
// elements can be appended without reallocating.
func (v *Vec[T]) ExtendLenderReserve(additional int) {
	if additional > 0 {
		*v = slices.Grow(*v, additional)
	}
}
