package slice_test

import (
	"fmt"

	"github.com/jake-scott/go-lender"
	"github.com/jake-scott/go-lender/iter/slice"
)

func ExampleIter() {
	input := []string{"dog", "cat", "fox", "pigeon"}

	iter := slice.New(input)

	for animal, ok := iter.Next(); ok; animal, ok = iter.Next() {
		fmt.Printf("Animal: <%s>\n", animal)
	}

	// output:
	// Animal: <dog>
	// Animal: <cat>
	// Animal: <fox>
	// Animal: <pigeon>
}

func ExampleIterMut() {
	scores := []int{3, 1, 4}

	lender.ForEach(slice.NewMut(scores), func(p *int) {
		*p *= 10
	})

	fmt.Println(scores)

	// output:
	// [30 10 40]
}

func ExampleVec() {
	evens := lender.Collect[slice.Vec[int]](lender.Filter[int](slice.New([]int{1, 2, 3, 4}), func(x int) bool {
		return x%2 == 0
	}))

	fmt.Println(evens)

	// output:
	// [2 4]
}
