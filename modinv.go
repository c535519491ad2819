// Package modinv computes modular multiplicative inverses of unsigned 64-bit
// integers using the extended Euclidean algorithm.
// See the Inverse function for details.
package modinv

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// MaxModulus is the largest modulus accepted by Inverse.
//
// The Bézout coefficients are tracked in int64 and never exceed the modulus
// in magnitude, so any modulus up to math.MaxInt64 is safe. The first operand
// may use the full uint64 range.
const MaxModulus = math.MaxInt64

// Common errors returned by functions in this package.
var (
	ErrNonInvertible   = errors.New("operands are not relatively prime")
	ErrModulusZero     = errors.New("modulus is zero")
	ErrModulusOverflow = errors.New("modulus overflow")
	ErrFmtInvalid      = errors.New("invalid operand format")
)

// NotCoprimeError is returned when A has no inverse modulo B because
// GCD(A, B) != 1. It matches ErrNonInvertible under errors.Is.
type NotCoprimeError struct {
	A, B uint64
	GCD  uint64
}

func (e *NotCoprimeError) Error() string {
	return fmt.Sprintf("%d and %d aren't relatively prime", e.A, e.B)
}

// Is reports whether target is ErrNonInvertible.
func (e *NotCoprimeError) Is(target error) bool {
	return target == ErrNonInvertible
}

// Step is one iteration of the extended Euclidean loop, captured before the
// registers are shifted. X*A == Dividend (mod B) holds for every step.
type Step struct {
	Quotient  uint64
	Dividend  uint64
	Divisor   uint64
	Remainder uint64
	X, Y, T   int64
}

// Inverse returns the unique x in [0, b) such that a*x mod b == 1.
//
// The inverse modulo 1 is defined to be 0. Inverse returns ErrModulusZero if
// b is 0, ErrModulusOverflow if b exceeds MaxModulus, and a *NotCoprimeError
// if a and b are not relatively prime. In particular, 0 has no inverse for
// any b > 1.
func Inverse(a, b uint64) (uint64, error) {
	return inverse(a, b, nil)
}

// MustInverse is like Inverse but panics if the inverse does not exist.
func MustInverse(a, b uint64) uint64 {
	x, err := Inverse(a, b)
	if err != nil {
		panic(err)
	}
	return x
}

// Steps is like Inverse but also returns every iteration of the loop in
// order. No steps are returned when b is 1 or an error occurs.
func Steps(a, b uint64) ([]Step, uint64, error) {
	var steps []Step
	x, err := inverse(a, b, func(s Step) {
		steps = append(steps, s)
	})
	if err != nil {
		return nil, 0, err
	}
	return steps, x, nil
}

func inverse(a, b uint64, visit func(Step)) (uint64, error) {
	switch {
	case b == 0:
		return 0, ErrModulusZero
	case b > MaxModulus:
		return 0, ErrModulusOverflow
	case b == 1:
		return 0, nil
	}
	if !IsCoprime(a, b) {
		return 0, &NotCoprimeError{A: a, B: b, GCD: GCD(a, b)}
	}
	var x, y, t int64 = 0, 1, 0
	dividend, divisor := b, a
	for divisor > 0 {
		// the dividend only exceeds MaxModulus while the divisor is b >= 2,
		// so q always fits in an int64
		q, r := dividend/divisor, dividend%divisor
		t = x - y*int64(q)
		if visit != nil {
			visit(Step{q, dividend, divisor, r, x, y, t})
		}
		dividend, divisor = divisor, r
		x, y = y, t
	}
	if x < 0 {
		x += int64(b)
	}
	return uint64(x), nil
}
