package lender

// MapFunc is a generic function that takes a lent element and returns
// a transformed element.  The result may itself borrow from the element,
// in which case it is valid for the same step.
//
// Example:
//
//	func lineLength(line []byte) int {
//	    return len(line)
//	}
type MapFunc[L any, M any] func(L) M

// MapLender is the lender returned by Map.
type MapLender[L, M any] struct {
	l Lender[L]
	f MapFunc[L, M]
}

// Map returns a lender that calls f on each element of l.
func Map[L, M any](l Lender[L], f MapFunc[L, M]) *MapLender[L, M] {
	return &MapLender[L, M]{l: l, f: f}
}

// Next returns f applied to the next element of the wrapped lender.
func (m *MapLender[L, M]) Next() (M, bool) {
	x, ok := m.l.Next()
	if !ok {
		var zero M
		return zero, false
	}
	return m.f(x), true
}

// IntoLender returns m.
func (m *MapLender[L, M]) IntoLender() Lender[M] {
	return m
}

// SizeHint returns the wrapped lender's hint; Map does not change the
// number of elements.
func (m *MapLender[L, M]) SizeHint() (int, int, bool) {
	return SizeHint(m.l)
}

// Fused reports whether the wrapped lender is fused.
func (m *MapLender[L, M]) Fused() bool {
	return IsFused(m.l)
}

func (m *MapLender[L, M]) TryForEach(f func(M) bool) bool {
	return TryForEach(m.l, func(x L) bool {
		return f(m.f(x))
	})
}

// Copied returns a lender that dereferences each pointer lent by l.  It
// turns a lender of mutable references into one of values, so the elements
// can be stored past the step that produced them.
func Copied[T any](l Lender[*T]) *MapLender[*T, T] {
	return Map(l, func(p *T) T {
		return *p
	})
}
