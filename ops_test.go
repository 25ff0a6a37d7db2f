package lender

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// seq returns a lender over values that only implements Next, so every
// operation takes its default path
func seq[T any](values ...T) Func[T] {
	return func() (T, bool) {
		if len(values) == 0 {
			var zero T
			return zero, false
		}
		x := values[0]
		values = values[1:]
		return x, true
	}
}

// backSeq is seq with a back end, still without any optional methods
type backSeq[T any] struct {
	values []T
}

func (b *backSeq[T]) Next() (T, bool) {
	if len(b.values) == 0 {
		var zero T
		return zero, false
	}
	x := b.values[0]
	b.values = b.values[1:]
	return x, true
}

func (b *backSeq[T]) NextBack() (T, bool) {
	if len(b.values) == 0 {
		var zero T
		return zero, false
	}
	x := b.values[len(b.values)-1]
	b.values = b.values[:len(b.values)-1]
	return x, true
}

func TestCount(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, Count[int](seq[int]()))
	assert.Equal(4, Count[int](seq(1, 2, 3, 4)))
}

func TestSizeHintUnknown(t *testing.T) {
	assert := assert.New(t)

	lower, _, ok := SizeHint[int](seq(1, 2))
	assert.Equal(0, lower)
	assert.False(ok)
}

func TestFold(t *testing.T) {
	assert := assert.New(t)

	add := func(acc float32, x int) float32 {
		return acc + float32(x)
	}

	assert.Equal(float32(10), Fold[int](seq(1, 2, 3, 4), 0, add))
	assert.Equal(float32(123), Fold[int](seq[int](), 123, add))
}

func TestTryFold(t *testing.T) {
	tests := []struct {
		name      string
		input     []int
		limit     int
		wantBreak bool
		want      int
		wantSeen  int
	}{
		{name: "runs to completion", input: []int{1, 2, 3}, limit: 100, want: 6, wantSeen: 3},
		{name: "stops early", input: []int{1, 2, 3, 4}, limit: 3, wantBreak: true, want: 3, wantSeen: 3},
		{name: "empty input", input: nil, limit: 0, want: 0, wantSeen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			seen := 0
			res := TryFold[int](seq(tt.input...), 0, func(acc, x int) ControlFlow[int, int] {
				seen++
				if x >= tt.limit {
					return Break[int](x)
				}
				return Continue[int, int](acc + x)
			})

			assert.Equal(tt.wantBreak, res.IsBreak())
			assert.Equal(!tt.wantBreak, res.IsContinue())
			if tt.wantBreak {
				v, ok := res.BreakValue()
				assert.True(ok)
				assert.Equal(tt.want, v)
			} else {
				v, ok := res.ContinueValue()
				assert.True(ok)
				assert.Equal(tt.want, v)
			}
			assert.Equal(tt.wantSeen, seen)
		})
	}
}

func TestControlFlow(t *testing.T) {
	assert := assert.New(t)

	c := Continue[string, error]("acc")
	v, ok := c.ContinueValue()
	assert.True(ok)
	assert.Equal("acc", v)
	_, ok = c.BreakValue()
	assert.False(ok)

	errStop := fmt.Errorf("stop")
	b := Break[string](errStop)
	_, ok = b.ContinueValue()
	assert.False(ok)
	e, ok := b.BreakValue()
	assert.True(ok)
	assert.ErrorIs(e, errStop)
}

func TestAdvanceByDefault(t *testing.T) {
	tests := []struct {
		n        int
		residual int
		next     int
		nextOK   bool
	}{
		{n: -1, residual: 0, next: 1, nextOK: true},
		{n: 0, residual: 0, next: 1, nextOK: true},
		{n: 2, residual: 0, next: 3, nextOK: true},
		{n: 3, residual: 0, nextOK: false},
		{n: 7, residual: 4, nextOK: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			assert := assert.New(t)

			l := seq(1, 2, 3)
			assert.Equal(tt.residual, AdvanceBy[int](l, tt.n))

			x, ok := l.Next()
			assert.Equal(tt.nextOK, ok)
			assert.Equal(tt.next, x)
		})
	}
}

func TestNthDefault(t *testing.T) {
	assert := assert.New(t)

	l := seq("a", "b", "c", "d")

	x, ok := Nth[string](l, 1)
	assert.True(ok)
	assert.Equal("b", x)

	x, ok = Nth[string](l, 1)
	assert.True(ok)
	assert.Equal("d", x)

	_, ok = Nth[string](l, 0)
	assert.False(ok)
}

func TestFindDefault(t *testing.T) {
	assert := assert.New(t)

	l := seq(1, 3, 6, 7, 8)
	even := func(x int) bool { return x%2 == 0 }

	x, ok := Find[int](l, even)
	assert.True(ok)
	assert.Equal(6, x)

	x, ok = l.Next()
	assert.True(ok)
	assert.Equal(7, x)

	_, ok = Find[int](seq(1, 3), even)
	assert.False(ok)
}

func TestLastDefault(t *testing.T) {
	assert := assert.New(t)

	x, ok := Last[int](seq(1, 2, 3))
	assert.True(ok)
	assert.Equal(3, x)

	_, ok = Last[int](seq[int]())
	assert.False(ok)
}

func TestAnyAllPosition(t *testing.T) {
	assert := assert.New(t)

	big := func(x int) bool { return x > 2 }

	assert.True(Any[int](seq(1, 2, 3), big))
	assert.False(Any[int](seq(1, 2), big))
	assert.True(All[int](seq(3, 4), big))
	assert.False(All[int](seq(3, 1, 4), big))
	assert.True(All[int](seq[int](), big))

	i, ok := Position[int](seq(1, 2, 3, 4), big)
	assert.True(ok)
	assert.Equal(2, i)

	_, ok = Position[int](seq(1, 2), big)
	assert.False(ok)

	// Any stops at the first match
	l := seq(5, 1)
	assert.True(Any[int](l, big))
	x, _ := l.Next()
	assert.Equal(1, x)
}

func TestSumProduct(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(10, Sum[int](seq(1, 2, 3, 4)))
	assert.Equal(24, Product[int](seq(1, 2, 3, 4)))
	assert.Equal(0.0, Sum[float64](seq[float64]()))
	assert.Equal(1.0, Product[float64](seq[float64]()))
	assert.Equal(uint8(6), Sum[uint8](seq[uint8](1, 2, 3)))
}

func TestBackDefaults(t *testing.T) {
	assert := assert.New(t)

	l := &backSeq[int]{values: []int{1, 2, 3, 4, 5}}

	assert.Equal(0, AdvanceBackBy[int](l, 1))

	x, ok := NthBack[int](l, 1)
	assert.True(ok)
	assert.Equal(3, x)

	x, ok = RFind[int](l, func(x int) bool { return x == 1 })
	assert.True(ok)
	assert.Equal(1, x)

	_, ok = RFind[int](l, func(int) bool { return true })
	assert.False(ok)

	assert.Equal(2, AdvanceBackBy[int](l, 2))
	_, ok = NthBack[int](l, 0)
	assert.False(ok)

	l = &backSeq[int]{values: []int{1, 2, 3}}
	assert.Equal("321", RFold[int](l, "", func(acc string, x int) string {
		return acc + fmt.Sprint(x)
	}))

	l = &backSeq[int]{values: []int{1, 2, 3}}
	res := TryRFold[int](l, 0, func(acc, x int) ControlFlow[int, int] {
		if x == 2 {
			return Break[int](acc)
		}
		return Continue[int, int](acc + x)
	})
	v, ok := res.BreakValue()
	assert.True(ok)
	assert.Equal(3, v)

	x, _ = l.Next()
	assert.Equal(1, x)
}

func TestIdentity(t *testing.T) {
	assert := assert.New(t)

	f := seq(1)
	assert.NotNil(Identity[int](f).IntoLender())

	var plain Lender[int] = &backSeq[int]{values: []int{1, 2}}
	il := Identity(plain)
	assert.Same(plain, il.IntoLender())
	assert.Equal(2, Count(il.IntoLender()))
}
