package lender

// FromLender is implemented by collections that can be built from a lender.
// FromLender replaces the contents of the receiver with the elements of
// src, draining src completely.
//
// Lent elements are only valid for one step, so a collection either stores
// something derived from each element or is itself a view that the
// elements point into.
type FromLender[L any] interface {
	FromLender(src IntoLender[L])
}

// ExtendLender is implemented by collections that can be extended with the
// elements of a lender.
type ExtendLender[L any] interface {
	// ExtendLender drains src, inserting each element.
	ExtendLender(src IntoLender[L])

	// ExtendLenderOne inserts exactly one element.
	ExtendLenderOne(item L)

	// ExtendLenderReserve is a hint that additional elements are about
	// to be inserted.  It is never needed for correctness.
	ExtendLenderReserve(additional int)
}

// NoReserve can be embedded in a collection to provide an
// ExtendLenderReserve that ignores the hint.
type NoReserve struct{}

// ExtendLenderReserve does nothing.
func (NoReserve) ExtendLenderReserve(int) {}

// Collect builds a new collection of type C from src.  *C must implement
// FromLender.
//
// Example:
//
//	v := lender.Collect[slice.Vec[int]](lender.NewChain(a, b))
func Collect[C any, L any, PC interface {
	*C
	FromLender[L]
}](src IntoLender[L]) C {
	var c C
	PC(&c).FromLender(src)
	return c
}

// Extend drains src into dst.
func Extend[L any](dst ExtendLender[L], src IntoLender[L]) {
	dst.ExtendLender(src)
}

// Drain is a helper for implementing ExtendLender.  It reserves room for the
// lower bound of src's size hint and then inserts each element of src using
// ExtendLenderOne.
func Drain[L any](dst ExtendLender[L], src IntoLender[L]) {
	l := src.IntoLender()

	if lower, _, _ := SizeHint(l); lower > 0 {
		dst.ExtendLenderReserve(lower)
	}

	ForEach(l, dst.ExtendLenderOne)
}
