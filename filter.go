package lender

// FilterFunc is a generic function type that takes a single element and
// returns true if it is to be included or false if the element is to be
// skipped.
//
// Example:
//
//	func nonEmpty(line []byte) bool {
//	    return len(line) > 0
//	}
type FilterFunc[L any] func(L) bool

// FilterLender is the lender returned by Filter.
type FilterLender[L any] struct {
	l Lender[L]
	f FilterFunc[L]
}

// Filter returns a lender over the elements of l for which f returns true.
func Filter[L any](l Lender[L], f FilterFunc[L]) *FilterLender[L] {
	return &FilterLender[L]{l: l, f: f}
}

// Next returns the next element of the wrapped lender that passes the
// filter.
func (fl *FilterLender[L]) Next() (L, bool) {
	return Find(fl.l, fl.f)
}

// IntoLender returns fl.
func (fl *FilterLender[L]) IntoLender() Lender[L] {
	return fl
}

// SizeHint keeps the wrapped lender's upper bound; any number of elements
// might be filtered out, so the lower bound is 0.
func (fl *FilterLender[L]) SizeHint() (int, int, bool) {
	_, upper, ok := SizeHint(fl.l)
	return 0, upper, ok
}

// Fused reports whether the wrapped lender is fused.
func (fl *FilterLender[L]) Fused() bool {
	return IsFused(fl.l)
}

func (fl *FilterLender[L]) Count() int {
	n := 0
	ForEach(fl.l, func(x L) {
		if fl.f(x) {
			n++
		}
	})
	return n
}

func (fl *FilterLender[L]) TryForEach(f func(L) bool) bool {
	return TryForEach(fl.l, func(x L) bool {
		if !fl.f(x) {
			return true
		}
		return f(x)
	})
}
