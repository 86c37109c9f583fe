// SPDX-License-Identifier: MIT
package sparse_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/spmat/sparse"
)

// ExampleAdd parses two matrices and prints their sum in the text format.
func ExampleAdd() {
	a, _ := sparse.ParseString("rows=2\ncols=2\n(0,0,1)\n(0,1,2)\n(1,0,3)\n(1,1,4)")
	b, _ := sparse.ParseString("rows=2\ncols=2\n(0,0,5)\n(1,1,6)")

	sum, err := sparse.Add(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(sum)

	// Output:
	// rows=2
	// cols=2
	// (0, 0, 6)
	// (0, 1, 2)
	// (1, 0, 3)
	// (1, 1, 10)
}

// ExampleApply shows the driver-facing entry point: an op tag plus two matrices.
func ExampleApply() {
	a, _ := sparse.ParseString("rows=2\ncols=3\n(0,0,1)\n(1,2,2)")
	b, _ := sparse.ParseString("rows=3\ncols=1\n(0,0,4)\n(2,0,5)")

	op, _ := sparse.ParseOp("3") // menu choice "3" = multiplication
	res, err := sparse.Apply(op, a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Operation completed. Result has %d non-zero entries.\n", res.NNZ())
	_, _ = res.WriteTo(os.Stdout)

	// Output:
	// Operation completed. Result has 2 non-zero entries.
	// rows=2
	// cols=1
	// (0, 0, 4)
	// (1, 0, 10)
}

// ExampleParseString_malformed inspects a format error.
func ExampleParseString_malformed() {
	_, err := sparse.ParseString("rows=2\ncols=abc\n")

	var pe *sparse.ParseError
	if errors.As(err, &pe) {
		fmt.Println(errors.Is(err, sparse.ErrMalformedHeader), pe.Line, pe.Rule)
	}

	// Output:
	// true 2 header-value
}
