package lender_test

import (
	"testing"

	"github.com/jake-scott/go-lender"
	"github.com/jake-scott/go-lender/iter/slice"
	"github.com/stretchr/testify/assert"
)

func isEven(i int) bool {
	return i%2 == 0
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{
			name:  "some evens",
			input: []int{1, 2, 3, 4, 5, 6, 7, 8},
			want:  []int{2, 4, 6, 8},
		},
		{
			name:  "no evens",
			input: []int{1, 3, 5},
			want:  []int{},
		},
		{
			name:  "empty list",
			input: []int{},
			want:  []int{},
		},
		{
			name:  "null list",
			input: nil,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			f := lender.Filter[int](slice.New(tt.input), isEven)
			assert.Equal(tt.want, drain(f))

			_, ok := f.Next()
			assert.False(ok)

			assert.Equal(len(tt.want), lender.Count[int](lender.Filter[int](slice.New(tt.input), isEven)))
		})
	}
}

func TestFilterSizeHint(t *testing.T) {
	assert := assert.New(t)

	f := lender.Filter[int](slice.New([]int{1, 2, 3}), isEven)
	lower, upper, ok := f.SizeHint()
	assert.Equal(0, lower)
	assert.Equal(3, upper)
	assert.True(ok)
	assert.True(f.Fused())
}

func TestFilterTryFoldShortCircuits(t *testing.T) {
	assert := assert.New(t)

	src := slice.New([]int{1, 2, 3, 4, 5, 6})
	f := lender.Filter[int](src, isEven)

	res := lender.TryFold[int](f, 0, func(acc, x int) lender.ControlFlow[int, int] {
		if x == 4 {
			return lender.Break[int](acc)
		}
		return lender.Continue[int, int](acc + x)
	})

	v, ok := res.BreakValue()
	assert.True(ok)
	assert.Equal(2, v)
	assert.Equal(2, src.Len())
}
