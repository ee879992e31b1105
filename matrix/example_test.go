package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/tapematrix/matrix"
)

// ExampleMul multiplies two small matrices.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]int64{{5, 6}, {7, 8}})

	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(p)

	// Output:
	// [19, 22]
	// [43, 50]
}
