package lender

// Lender is a generic interface for one-directional traversal where each
// element may borrow from the lender's own state.
//
// A value returned by Next (or by any operation that steps the lender) is
// only valid until the next method call on the same lender.  Lenders are
// free to hand out a pointer into an internal buffer, or a slice that is
// overwritten by the following step.  Callers that need to keep an element
// must copy it.
type Lender[L any] interface {
	// Next advances the lender and returns the lent element.  It returns
	// false once there are no more elements.
	Next() (L, bool)
}

// DoubleEndedLender is a Lender that can also be stepped from the back.
// Front and back traversal consume the same elements; the lender is
// exhausted when they meet.
type DoubleEndedLender[L any] interface {
	Lender[L]

	// NextBack removes and returns the element at the back of the lender.
	NextBack() (L, bool)
}

// FusedLender is implemented by lenders that keep returning false from
// Next (and NextBack) once they have reported exhaustion.
type FusedLender interface {
	Fused() bool
}

// IsFused reports whether l guarantees fused behaviour.
func IsFused(l any) bool {
	f, ok := l.(FusedLender)
	return ok && f.Fused()
}

// SizeHinter is an interface that can be implemented by a lender that knows
// bounds on the number of elements it has left.
//
// lower is a lower bound.  upper is only meaningful when ok is true; ok is
// false when the upper bound is unknown or does not fit in an int.
type SizeHinter interface {
	SizeHint() (lower int, upper int, ok bool)
}

// IntoLender is implemented by anything that can be turned into a Lender.
// Every lender in this module converts into itself.
type IntoLender[L any] interface {
	IntoLender() Lender[L]
}

type identity[L any] struct {
	Lender[L]
}

func (i identity[L]) IntoLender() Lender[L] {
	return i.Lender
}

// Identity lifts a Lender that does not implement IntoLender so that it can
// be passed to consumers such as Collect and Chain.
func Identity[L any](l Lender[L]) IntoLender[L] {
	if il, ok := l.(IntoLender[L]); ok {
		return il
	}
	return identity[L]{l}
}

// Func is a Lender backed by a step function.
//
// Example:
//
//	buf := make([]byte, 4)
//	n := 0
//	l := lender.Func[[]byte](func() ([]byte, bool) {
//	    if n == 3 {
//	        return nil, false
//	    }
//	    binary.BigEndian.PutUint32(buf, uint32(n))
//	    n++
//	    return buf, true
//	})
type Func[L any] func() (L, bool)

// Next calls f.
func (f Func[L]) Next() (L, bool) {
	return f()
}

// IntoLender returns f.
func (f Func[L]) IntoLender() Lender[L] {
	return f
}

// IterLender is implemented by collections that can produce a read-only
// lender over their elements.  The lender borrows the collection and must
// not be used after the collection has been modified.
type IterLender[L any] interface {
	IterLender() Lender[L]
}

// IterMutLender is implemented by collections that can produce a lender
// whose elements give mutable access to the collection's storage.
type IterMutLender[L any] interface {
	IterMutLender() Lender[L]
}
