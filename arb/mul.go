// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

// karatsubaThreshold is the digit count at or above which Mul switches
// from long multiplication to Karatsuba, per spec.md §4.D's suggested
// threshold of 32 digits.
const karatsubaThreshold = 32

// Mul computes out = a*b in the given base, truncating the fractional
// result to max(scale, rp_a, rp_b) digits (never more than rp_a+rp_b),
// and returns out. Safe under aliasing.
//
// This is the wrapper contract of spec.md §4.D / original_source
// long-multiplication.c's arb_mul: resolve sign as the XOR of operand
// signs, run the magnitude multiply (long or Karatsuba), then derive
// lp/rp/len for the result.
func Mul(a, b, out *Number, base, scale int) *Number {
	ta, tb := aliasGuard2(a, b, out)

	aDigits := ta.digits[:ta.Len()]
	bDigits := tb.digits[:tb.Len()]

	var product []Digit
	if maxInt(len(aDigits), len(bDigits)) >= karatsubaThreshold {
		product = karatsubaMultiply(aDigits, bDigits, base)
	} else {
		product = multiplyMagnitude(aDigits, bDigits, base)
	}

	lpC := ta.lp + tb.lp
	rpSum := ta.rp + tb.rp
	rpC := minInt(rpSum, maxInt(scale, maxInt(ta.rp, tb.rp)))
	if drop := rpSum - rpC; drop > 0 {
		product = product[:len(product)-drop]
	}

	out.digits = product
	out.lp = lpC
	out.rp = rpC
	out.sign = Positive
	if ta.sign != tb.sign {
		out.sign = Negative
	}
	out.removeLeadingZeros()
	return out
}

// multiplyMagnitude is schoolbook long multiplication: every digit of
// a is multiplied against every digit of b and accumulated at the
// corresponding power-of-base position, with carries propagated once
// at the end (original_source/arbprec/src/long-multiplication.c's
// arb_mul_core, restructured here as little-endian accumulation for
// clarity and reversed back to the package's most-significant-first
// storage order).
func multiplyMagnitude(a, b []Digit, base int) []Digit {
	la, lb := len(a), len(b)
	acc := make([]int, la+lb)
	for i := 0; i < la; i++ {
		ai := int(a[la-1-i])
		if ai == 0 {
			continue
		}
		for j := 0; j < lb; j++ {
			acc[i+j] += ai * int(b[lb-1-j])
		}
	}
	carry := 0
	for p := 0; p < len(acc); p++ {
		v := acc[p] + carry
		acc[p] = v % base
		carry = v / base
	}
	result := make([]Digit, la+lb)
	for k := range result {
		result[k] = Digit(acc[la+lb-1-k])
	}
	return result
}
