package lender

import (
	"math"

	"golang.org/x/exp/constraints"
)

// The bulk operations below are written purely in terms of Next.  A lender
// can provide a faster (or differently ordered) version of any of them by
// implementing the matching method; the free function checks for it first.

type counter interface {
	Count() int
}

type tryForEacher[L any] interface {
	TryForEach(f func(L) bool) bool
}

type advancer interface {
	AdvanceBy(n int) int
}

type nther[L any] interface {
	Nth(n int) (L, bool)
}

type finder[L any] interface {
	Find(predicate func(L) bool) (L, bool)
}

type laster[L any] interface {
	Last() (L, bool)
}

// SizeHint returns the bounds on the remaining length of l.  Lenders that
// do not implement SizeHinter report (0, 0, false).
func SizeHint[L any](l Lender[L]) (lower int, upper int, ok bool) {
	if sh, ok := l.(SizeHinter); ok {
		return sh.SizeHint()
	}
	return 0, 0, false
}

// Count consumes l and returns the number of elements it produced.
func Count[L any](l Lender[L]) int {
	if c, ok := l.(counter); ok {
		return c.Count()
	}

	n := 0
	for _, ok := l.Next(); ok; _, ok = l.Next() {
		n++
	}
	return n
}

// TryForEach calls f for each element of l until f returns false.  It
// returns true if l was exhausted, or false if f stopped the traversal.
func TryForEach[L any](l Lender[L], f func(L) bool) bool {
	if t, ok := l.(tryForEacher[L]); ok {
		return t.TryForEach(f)
	}

	for {
		x, ok := l.Next()
		if !ok {
			return true
		}
		if !f(x) {
			return false
		}
	}
}

// ForEach calls f for each element of l.
func ForEach[L any](l Lender[L], f func(L)) {
	TryForEach(l, func(x L) bool {
		f(x)
		return true
	})
}

// TryFold applies f to an accumulator and each element of l in turn.  As
// soon as f returns a Break, folding stops and that ControlFlow is returned
// as is.  Otherwise the final accumulator is returned as a Continue.
func TryFold[L, A, B any](l Lender[L], init A, f func(A, L) ControlFlow[A, B]) ControlFlow[A, B] {
	acc := init
	var stop ControlFlow[A, B]

	completed := TryForEach(l, func(x L) bool {
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

// Fold consumes l, threading an accumulator through f.
//
// Example:
//
//	total := lender.Fold(l, 0, func(acc int, line []byte) int {
//	    return acc + len(line)
//	})
func Fold[L, A any](l Lender[L], init A, f ReduceFunc[A, L]) A {
	acc := init
	TryForEach(l, func(x L) bool {
		acc = f(acc, x)
		return true
	})
	return acc
}

// AdvanceBy skips the next n elements of l.  It returns 0 if n elements
// were skipped, otherwise the number of elements that were missing when l
// ran out.
func AdvanceBy[L any](l Lender[L], n int) int {
	if n <= 0 {
		return 0
	}
	if a, ok := l.(advancer); ok {
		return a.AdvanceBy(n)
	}

	for i := 0; i < n; i++ {
		if _, ok := l.Next(); !ok {
			return n - i
		}
	}
	return 0
}

// Nth skips n elements and returns the one after them.
func Nth[L any](l Lender[L], n int) (L, bool) {
	if nt, ok := l.(nther[L]); ok {
		return nt.Nth(n)
	}

	if AdvanceBy(l, n) != 0 {
		var zero L
		return zero, false
	}
	return l.Next()
}

// Find returns the first element for which predicate returns true.  The
// elements up to and including the one found are consumed.
func Find[L any](l Lender[L], predicate func(L) bool) (L, bool) {
	if f, ok := l.(finder[L]); ok {
		return f.Find(predicate)
	}

	for {
		x, ok := l.Next()
		if !ok {
			var zero L
			return zero, false
		}
		if predicate(x) {
			return x, true
		}
	}
}

// Last consumes l and returns its final element.
//
// The default implementation holds on to each element across the following
// call to Next.  Lenders that overwrite their lent storage on every step
// should implement Last themselves.
func Last[L any](l Lender[L]) (L, bool) {
	if la, ok := l.(laster[L]); ok {
		return la.Last()
	}

	var last L
	found := false
	for x, ok := l.Next(); ok; x, ok = l.Next() {
		last, found = x, true
	}
	return last, found
}

// Any reports whether predicate is true for at least one element.  It stops
// at the first match.
func Any[L any](l Lender[L], predicate func(L) bool) bool {
	return !TryForEach(l, func(x L) bool {
		return !predicate(x)
	})
}

// All reports whether predicate is true for every element.  It stops at the
// first element that fails.
func All[L any](l Lender[L], predicate func(L) bool) bool {
	return TryForEach(l, predicate)
}

// Position returns the index of the first element for which predicate
// returns true.
func Position[L any](l Lender[L], predicate func(L) bool) (int, bool) {
	i := 0
	found := !TryForEach(l, func(x L) bool {
		if predicate(x) {
			return false
		}
		i++
		return true
	})
	return i, found
}

// Number is the set of types that Sum and Product accept.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum adds up the elements of l.
func Sum[N Number](l Lender[N]) N {
	return Fold(l, N(0), func(acc, x N) N {
		return acc + x
	})
}

// Product multiplies the elements of l.  The product of no elements is 1.
func Product[N Number](l Lender[N]) N {
	return Fold(l, N(1), func(acc, x N) N {
		return acc * x
	})
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func checkedAdd(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}
