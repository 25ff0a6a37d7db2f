package lender

// Chain is a lender that returns every element of a, followed by every
// element of b.  Both operands are fused on construction so that a is never
// stepped again once it has run out.
type Chain[L any] struct {
	a, b  *Fuse[L]
	fused bool
}

// NewChain returns a Chain that takes ownership of a and b.
//
// Example:
//
//	l := lender.NewChain[int](slice.New(first), slice.New(second))
//	for x, ok := l.Next(); ok; x, ok = l.Next() {
//	    fmt.Println(x)
//	}
func NewChain[L any](a, b Lender[L]) *Chain[L] {
	return &Chain[L]{
		a:     NewFuse(a),
		b:     NewFuse(b),
		fused: IsFused(a) && IsFused(b),
	}
}

// Next returns the next element of a, or of b once a is exhausted.
func (c *Chain[L]) Next() (L, bool) {
	if x, ok := c.a.Next(); ok {
		return x, true
	}
	return c.b.Next()
}

// Fused reports whether both operands are fused lenders.
func (c *Chain[L]) Fused() bool {
	return c.fused
}

// IntoLender returns c.
func (c *Chain[L]) IntoLender() Lender[L] {
	return c
}

// Count consumes both operands and returns the sum of their counts.
func (c *Chain[L]) Count() int {
	return c.a.Count() + c.b.Count()
}

// TryForEach walks a and then b.  If f stops the walk inside a, b is not
// touched.
func (c *Chain[L]) TryForEach(f func(L) bool) bool {
	if !c.a.TryForEach(f) {
		return false
	}
	return c.b.TryForEach(f)
}

// AdvanceBy skips n elements in a, and whatever a could not supply in b.
func (c *Chain[L]) AdvanceBy(n int) int {
	k := c.a.AdvanceBy(n)
	if k == 0 {
		return 0
	}
	return c.b.AdvanceBy(k)
}

// Nth is equivalent to AdvanceBy(n) followed by Next.
func (c *Chain[L]) Nth(n int) (L, bool) {
	if k := c.a.AdvanceBy(n); k == 0 {
		if x, ok := c.a.Next(); ok {
			return x, true
		}
		n = 0
	} else {
		n = k
	}
	return c.b.Nth(n)
}

// Find searches a and then b for the first element matching predicate.
func (c *Chain[L]) Find(predicate func(L) bool) (L, bool) {
	if x, ok := c.a.Find(predicate); ok {
		return x, true
	}
	return c.b.Find(predicate)
}

// Last drains both operands.  It returns the last element of b, or the last
// element of a if b was empty.
func (c *Chain[L]) Last() (L, bool) {
	aLast, aOK := c.a.Last()
	bLast, bOK := c.b.Last()
	if bOK {
		return bLast, true
	}
	return aLast, aOK
}

// SizeHint adds up the hints of both operands.  The lower bound saturates;
// the upper bound is unknown if either side's is, or if the sum overflows.
func (c *Chain[L]) SizeHint() (int, int, bool) {
	aLower, aUpper, aOK := c.a.SizeHint()
	bLower, bUpper, bOK := c.b.SizeHint()

	lower := saturatingAdd(aLower, bLower)
	if !aOK || !bOK {
		return lower, 0, false
	}

	upper, ok := checkedAdd(aUpper, bUpper)
	return lower, upper, ok
}

// DoubleEndedChain is a Chain over two double-ended lenders.  Stepping from
// the back returns the elements of b in reverse, then those of a.
type DoubleEndedChain[L any] struct {
	Chain[L]

	// the same fuses as Chain.a and Chain.b
	ra, rb *DoubleEndedFuse[L]
}

// NewDoubleEndedChain returns a DoubleEndedChain that takes ownership of a
// and b.
func NewDoubleEndedChain[L any](a, b DoubleEndedLender[L]) *DoubleEndedChain[L] {
	ra := NewDoubleEndedFuse(a)
	rb := NewDoubleEndedFuse(b)

	return &DoubleEndedChain[L]{
		Chain: Chain[L]{
			a:     &ra.Fuse,
			b:     &rb.Fuse,
			fused: IsFused(a) && IsFused(b),
		},
		ra: ra,
		rb: rb,
	}
}

// IntoLender returns c.
func (c *DoubleEndedChain[L]) IntoLender() Lender[L] {
	return c
}

// NextBack returns the last remaining element of b, or of a once b is
// exhausted.
func (c *DoubleEndedChain[L]) NextBack() (L, bool) {
	if x, ok := c.rb.NextBack(); ok {
		return x, true
	}
	return c.ra.NextBack()
}

// TryRForEach walks b from the back and then a.  If f stops the walk inside
// b, a is not touched.
func (c *DoubleEndedChain[L]) TryRForEach(f func(L) bool) bool {
	if !c.rb.TryRForEach(f) {
		return false
	}
	return c.ra.TryRForEach(f)
}

func (c *DoubleEndedChain[L]) AdvanceBackBy(n int) int {
	k := c.rb.AdvanceBackBy(n)
	if k == 0 {
		return 0
	}
	return c.ra.AdvanceBackBy(k)
}

func (c *DoubleEndedChain[L]) NthBack(n int) (L, bool) {
	if k := c.rb.AdvanceBackBy(n); k == 0 {
		if x, ok := c.rb.NextBack(); ok {
			return x, true
		}
		n = 0
	} else {
		n = k
	}
	return c.ra.NthBack(n)
}

func (c *DoubleEndedChain[L]) RFind(predicate func(L) bool) (L, bool) {
	if x, ok := c.rb.RFind(predicate); ok {
		return x, true
	}
	return c.ra.RFind(predicate)
}
