// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

// sqrtIterationCap bounds the Babylonian/Newton iteration as a safety
// valve, not a tuning parameter: original_source only logs a warning
// to stderr when it is exhausted (babylonian-sqrt.c, newtonian-sqrt.c)
// and keeps returning its last guess; a library kernel reports
// ErrNonConverge instead.
const sqrtIterationCap = 10000

// Sqrt computes out = sqrt(a) to scale fractional digits and returns
// out, using Babylonian iteration: c_0 = a, c_{n+1} = (a/c_n + c_n)/2,
// until two successive iterates compare equal. Grounded in
// original_source/arbprec/src/babylonian-sqrt.c's arb_babylonian_sqrt.
//
// a must be non-negative; the source has no such guard, but a library
// kernel does. Sqrt leaves out unchanged on error.
func Sqrt(a, out *Number, base, scale int) (*Number, error) {
	if a.IsNegative() {
		return nil, Errorf("%w", ErrNegativeSqrt)
	}
	if a.isZero() {
		Copy(out, a)
		out.sign = Positive
		return out, nil
	}

	two := smallInt(2, base)
	c := a.Clone()
	last := a.Clone()

	for i := 0; i < sqrtIterationCap; i++ {
		quo := NewNumber(0)
		if _, err := Div(a, c, quo, base, scale); err != nil {
			return nil, err
		}
		sum := NewNumber(0)
		Add(quo, c, sum, base)
		next := NewNumber(0)
		if _, err := Div(sum, two, next, base, scale); err != nil {
			return nil, err
		}
		if Compare(next, last, base) == 0 {
			Copy(out, next)
			return out, nil
		}
		last = next
		c = next
	}
	return nil, Errorf("%w", ErrNonConverge)
}

// SqrtReciprocal is an alternative square root that converges to the
// same answer as Sqrt via the identical recurrence, but seeded from a
// fixed initial guess rather than the operand itself. Grounded in
// original_source/arbprec/src/newtonian-sqrt.c's arb_newton_sqrt,
// which (despite its name) runs the same c_{n+1}=(a/c_n+c_n)/2 update
// as the Babylonian routine — the only real difference is the seed.
func SqrtReciprocal(a, out *Number, base, scale int) (*Number, error) {
	if a.IsNegative() {
		return nil, Errorf("%w", ErrNegativeSqrt)
	}
	if a.isZero() {
		Copy(out, a)
		out.sign = Positive
		return out, nil
	}

	two := smallInt(2, base)
	guess := smallInt(1, base)

	for i := 0; i < sqrtIterationCap; i++ {
		prevGuess := guess
		ans := NewNumber(0)
		if _, err := Div(a, guess, ans, base, scale); err != nil {
			return nil, err
		}
		hold := NewNumber(0)
		Add(ans, prevGuess, hold, base)
		next := NewNumber(0)
		if _, err := Div(hold, two, next, base, scale); err != nil {
			return nil, err
		}
		guess = next
		if Compare(guess, prevGuess, base) == 0 {
			Copy(out, guess)
			return out, nil
		}
	}
	return nil, Errorf("%w", ErrNonConverge)
}
