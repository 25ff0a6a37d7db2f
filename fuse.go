package lender

// Fuse wraps a lender so that once it reports exhaustion it keeps reporting
// exhaustion, without ever calling the wrapped lender again.
type Fuse[L any] struct {
	l    Lender[L]
	done bool
}

// NewFuse returns a Fuse that takes ownership of l.
func NewFuse[L any](l Lender[L]) *Fuse[L] {
	return &Fuse[L]{l: l}
}

func (f *Fuse[L]) finish() {
	f.done = true
}

// Next returns the next element of the wrapped lender, or false forever
// after it first returned false.
func (f *Fuse[L]) Next() (L, bool) {
	if f.done {
		var zero L
		return zero, false
	}

	x, ok := f.l.Next()
	if !ok {
		f.finish()
	}
	return x, ok
}

// Fused always returns true.
func (f *Fuse[L]) Fused() bool {
	return true
}

// IntoLender returns f.
func (f *Fuse[L]) IntoLender() Lender[L] {
	return f
}

// SizeHint reports (0, 0, true) once the fuse is blown, otherwise the
// wrapped lender's hint.
func (f *Fuse[L]) SizeHint() (int, int, bool) {
	if f.done {
		return 0, 0, true
	}
	return SizeHint(f.l)
}

func (f *Fuse[L]) Count() int {
	if f.done {
		return 0
	}

	n := Count(f.l)
	f.finish()
	return n
}

func (f *Fuse[L]) TryForEach(fn func(L) bool) bool {
	if f.done {
		return true
	}

	if !TryForEach(f.l, fn) {
		return false
	}
	f.finish()
	return true
}

func (f *Fuse[L]) AdvanceBy(n int) int {
	if n <= 0 {
		return 0
	}
	if f.done {
		return n
	}

	k := AdvanceBy(f.l, n)
	if k > 0 {
		f.finish()
	}
	return k
}

func (f *Fuse[L]) Nth(n int) (L, bool) {
	if f.done {
		var zero L
		return zero, false
	}

	x, ok := Nth(f.l, n)
	if !ok {
		f.finish()
	}
	return x, ok
}

func (f *Fuse[L]) Find(predicate func(L) bool) (L, bool) {
	if f.done {
		var zero L
		return zero, false
	}

	x, ok := Find(f.l, predicate)
	if !ok {
		f.finish()
	}
	return x, ok
}

// Last drains the wrapped lender.  The wrapped lender is kept, so an
// element that borrows from it stays valid.
func (f *Fuse[L]) Last() (L, bool) {
	if f.done {
		var zero L
		return zero, false
	}

	x, ok := Last(f.l)
	f.finish()
	return x, ok
}

// DoubleEndedFuse is a Fuse over a DoubleEndedLender.  Exhaustion from
// either end blows the fuse for both ends.
type DoubleEndedFuse[L any] struct {
	Fuse[L]
	back DoubleEndedLender[L]
}

// NewDoubleEndedFuse returns a DoubleEndedFuse that takes ownership of l.
func NewDoubleEndedFuse[L any](l DoubleEndedLender[L]) *DoubleEndedFuse[L] {
	return &DoubleEndedFuse[L]{
		Fuse: Fuse[L]{l: l},
		back: l,
	}
}

// IntoLender returns f.
func (f *DoubleEndedFuse[L]) IntoLender() Lender[L] {
	return f
}

// NextBack returns the element at the back of the wrapped lender, or false
// forever after the fuse has been blown.
func (f *DoubleEndedFuse[L]) NextBack() (L, bool) {
	if f.done {
		var zero L
		return zero, false
	}

	x, ok := f.back.NextBack()
	if !ok {
		f.finish()
	}
	return x, ok
}

func (f *DoubleEndedFuse[L]) TryRForEach(fn func(L) bool) bool {
	if f.done {
		return true
	}

	if !TryRForEach(f.back, fn) {
		return false
	}
	f.finish()
	return true
}

func (f *DoubleEndedFuse[L]) AdvanceBackBy(n int) int {
	if n <= 0 {
		return 0
	}
	if f.done {
		return n
	}

	k := AdvanceBackBy(f.back, n)
	if k > 0 {
		f.finish()
	}
	return k
}

func (f *DoubleEndedFuse[L]) NthBack(n int) (L, bool) {
	if f.done {
		var zero L
		return zero, false
	}

	x, ok := NthBack(f.back, n)
	if !ok {
		f.finish()
	}
	return x, ok
}

func (f *DoubleEndedFuse[L]) RFind(predicate func(L) bool) (L, bool) {
	if f.done {
		var zero L
		return zero, false
	}

	x, ok := RFind(f.back, predicate)
	if !ok {
		f.finish()
	}
	return x, ok
}
