package lender

type tryRForEacher[L any] interface {
	TryRForEach(f func(L) bool) bool
}

type backAdvancer interface {
	AdvanceBackBy(n int) int
}

type backNther[L any] interface {
	NthBack(n int) (L, bool)
}

type rfinder[L any] interface {
	RFind(predicate func(L) bool) (L, bool)
}

// TryRForEach is the back-to-front version of TryForEach.
func TryRForEach[L any](l DoubleEndedLender[L], f func(L) bool) bool {
	if t, ok := l.(tryRForEacher[L]); ok {
		return t.TryRForEach(f)
	}

	for {
		x, ok := l.NextBack()
		if !ok {
			return true
		}
		if !f(x) {
			return false
		}
	}
}

// RForEach calls f for each element of l, starting from the back.
func RForEach[L any](l DoubleEndedLender[L], f func(L)) {
	TryRForEach(l, func(x L) bool {
		f(x)
		return true
	})
}

// TryRFold is the back-to-front version of TryFold.
func TryRFold[L, A, B any](l DoubleEndedLender[L], init A, f func(A, L) ControlFlow[A, B]) ControlFlow[A, B] {
	acc := init
	var stop ControlFlow[A, B]

	completed := TryRForEach(l, func(x L) bool {
		r := f(acc, x)
		if r.brk {
			stop = r
			return false
		}
		acc = r.cont
		return true
	})
	if !completed {
		return stop
	}

	return Continue[A, B](acc)
}

// RFold consumes l from the back, threading an accumulator through f.
func RFold[L, A any](l DoubleEndedLender[L], init A, f ReduceFunc[A, L]) A {
	acc := init
	TryRForEach(l, func(x L) bool {
		acc = f(acc, x)
		return true
	})
	return acc
}

// AdvanceBackBy skips n elements from the back of l.  Like AdvanceBy, it
// returns the number of elements that could not be skipped.
func AdvanceBackBy[L any](l DoubleEndedLender[L], n int) int {
	if n <= 0 {
		return 0
	}
	if a, ok := l.(backAdvancer); ok {
		return a.AdvanceBackBy(n)
	}

	for i := 0; i < n; i++ {
		if _, ok := l.NextBack(); !ok {
			return n - i
		}
	}
	return 0
}

// NthBack returns the nth element counting from the back of l.
func NthBack[L any](l DoubleEndedLender[L], n int) (L, bool) {
	if nt, ok := l.(backNther[L]); ok {
		return nt.NthBack(n)
	}

	if AdvanceBackBy(l, n) != 0 {
		var zero L
		return zero, false
	}
	return l.NextBack()
}

// RFind returns the last element for which predicate returns true,
// consuming l from the back up to and including that element.
func RFind[L any](l DoubleEndedLender[L], predicate func(L) bool) (L, bool) {
	if f, ok := l.(rfinder[L]); ok {
		return f.RFind(predicate)
	}

	for {
		x, ok := l.NextBack()
		if !ok {
			var zero L
			return zero, false
		}
		if predicate(x) {
			return x, true
		}
	}
}
