// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

// Pow computes out = a^b for a non-negative integer exponent b and
// returns out. b must have rp==0 and a non-negative sign; any other
// exponent is reported as an error, since this kernel is repeated
// multiplication, not a general real-valued power function.
//
// This is the spec's own called-for redesign: right-to-left binary
// exponentiation replaces
// original_source/arbprec/src/exponentation.c's decrement-by-two loop
// (arb_exp), trading O(b) multiplies for O(log b) while converging to
// the identical result.
func Pow(a, b, out *Number, base, scale int) (*Number, error) {
	if b.rp != 0 || b.IsNegative() {
		return nil, Errorf("pow: exponent must be a non-negative integer")
	}

	result := smallInt(1, base)
	squared := a.Clone()
	exp := b.Clone()
	two := smallInt(2, base)
	one := smallInt(1, base)

	for !exp.isZero() {
		rem := NewNumber(1)
		if _, err := Mod(exp, two, rem, base, 0); err != nil {
			return nil, err
		}
		if Compare(rem, one, base) == 0 {
			next := NewNumber(0)
			Mul(result, squared, next, base, scale)
			result = next
		}

		nextExp := NewNumber(0)
		if _, err := Div(exp, two, nextExp, base, 0); err != nil {
			return nil, err
		}
		exp = nextExp

		if !exp.isZero() {
			nextSquared := NewNumber(0)
			Mul(squared, squared, nextSquared, base, scale)
			squared = nextSquared
		}
	}

	Copy(out, result)
	return out, nil
}
