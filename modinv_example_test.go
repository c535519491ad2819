package modinv_test

import (
	"fmt"

	"github.com/kbolino/modinv"
)

func ExampleInverse() {
	x, err := modinv.Inverse(3, 5)
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: 2
}

func ExampleInverse_notCoprime() {
	_, err := modinv.Inverse(4, 8)
	fmt.Println(err)
	// Output: 4 and 8 aren't relatively prime
}

func ExampleInverse_modulusOne() {
	x, err := modinv.Inverse(42, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: 0
}

func ExampleMustInverse() {
	fmt.Println(modinv.MustInverse(7, 26))
	// Output: 15
}

func ExampleSteps() {
	steps, x, err := modinv.Steps(3, 5)
	if err != nil {
		panic(err)
	}
	for _, s := range steps {
		fmt.Println(s.Quotient, s.Dividend, s.Divisor, s.Remainder, s.X, s.Y, s.T)
	}
	fmt.Println(x)
	// Output:
	// 1 5 3 2 0 1 -1
	// 1 3 2 1 1 -1 2
	// 2 2 1 0 -1 2 -5
	// 2
}

func ExampleExtGCD() {
	a, b, d := modinv.ExtGCD(3, 5)
	fmt.Println(a, b, d)
	// Output: 2 -1 1
}

func ExampleParseExpr() {
	a, b, err := modinv.ParseExpr("7 mod 26")
	if err != nil {
		panic(err)
	}
	fmt.Println(a, b)
	// Output: 7 26
}
