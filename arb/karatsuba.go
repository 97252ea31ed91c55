// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

// karatsubaMagnitude multiplies two unsigned, rp=0 digit sequences
// (most-significant first) using the divide-and-conquer scheme of
// spec.md §4.D, grounded in
// original_source/arbprec/src/karatsuba-mul.c's arb_karatsuba_mul_core:
//
//	x = x1*B^m + x0,  y = y1*B^m + y0
//	z1 = x1*y1,  z4 = x0*y0,  z5 = (x1+x0)*(y1+y0)
//	result = z1*B^2m + (z5-z1-z4)*B^m + z4
//
// Recursion bottoms out at a single-digit operand, handled by a
// scalar-by-vector multiply. The combining add/subtract steps reuse
// the package's own magnitude add/subtract rather than a separate raw
// implementation, per spec.md's "the combining step uses the additive
// kernel".
// karatsubaMultiply is the public entry point: it runs the recursive
// karatsubaMagnitude and normalizes the result to exactly len(a)+len(b)
// digits, since intermediate adds may pad the result with extra
// leading zeros (every schoolbook product of an la- and lb-digit
// number fits in la+lb digits, so any extra leading digits are
// necessarily zero).
func karatsubaMultiply(a, b []Digit, base int) []Digit {
	return normalizeLength(karatsubaMagnitude(a, b, base), len(a)+len(b))
}

func normalizeLength(d []Digit, want int) []Digit {
	switch {
	case len(d) == want:
		return d
	case len(d) < want:
		out := make([]Digit, want)
		copy(out[want-len(d):], d)
		return out
	default:
		return d[len(d)-want:]
	}
}

func karatsubaMagnitude(a, b []Digit, base int) []Digit {
	if len(b) == 1 {
		return scalarMultiply(a, b[0], base)
	}
	if len(a) == 1 {
		return scalarMultiply(b, a[0], base)
	}

	m := minInt(len(a), len(b)) / 2
	aHi, aLo := splitDigits(a, m)
	bHi, bLo := splitDigits(b, m)

	z1 := karatsubaMagnitude(aHi, bHi, base)
	z4 := karatsubaMagnitude(aLo, bLo, base)
	sumA := addMagnitude(aHi, aLo, base)
	sumB := addMagnitude(bHi, bLo, base)
	z5 := karatsubaMagnitude(sumA, sumB, base)

	mid := subMagnitude(subMagnitude(z5, z1, base), z4, base)

	result := addMagnitude(shiftLeftMagnitude(z1, 2*m), shiftLeftMagnitude(mid, m), base)
	result = addMagnitude(result, z4, base)
	return result
}

// splitDigits splits the least-significant m digits of a (a view,
// borrowed without copying) from the remaining high-order digits.
func splitDigits(a []Digit, m int) (hi, lo []Digit) {
	if m >= len(a) {
		return []Digit{0}, a
	}
	return a[:len(a)-m], a[len(a)-m:]
}

// scalarMultiply multiplies the magnitude a by a single digit,
// producing a len(a)+1 digit result (original_source's
// arb_karatsuba_mul_single).
func scalarMultiply(a []Digit, scalar Digit, base int) []Digit {
	out := make([]Digit, len(a)+1)
	carry := 0
	for i := len(a) - 1; i >= 0; i-- {
		prod := int(a[i])*int(scalar) + carry
		carry = prod / base
		out[i+1] = Digit(prod % base)
	}
	out[0] = Digit(carry)
	return out
}

// asMagnitude wraps a raw digit slice as a temporary, unsigned,
// integer-only Number so the additive kernel can operate on it.
func asMagnitude(d []Digit) *Number {
	return &Number{digits: d, sign: Positive, lp: len(d), rp: 0}
}

func addMagnitude(a, b []Digit, base int) []Digit {
	out := &Number{}
	magnitudeAdd(asMagnitude(a), asMagnitude(b), out, base)
	return out.digits
}

// subMagnitude computes a-b for magnitudes that are always known to
// satisfy a>=b (true for every call site in karatsubaMagnitude, by the
// Karatsuba identity); it panics if that invariant is ever violated,
// since a negative intermediate would indicate a logic error, not a
// representable result.
func subMagnitude(a, b []Digit, base int) []Digit {
	out := &Number{}
	magnitudeSub(asMagnitude(a), asMagnitude(b), out, base)
	if out.sign == Negative && !out.isZero() {
		panic("arb: karatsuba intermediate went negative")
	}
	return out.digits
}

// shiftLeftMagnitude multiplies a magnitude by base^k by appending k
// trailing zero digits (spec.md §4.D: "append k trailing zero digits
// to lp").
func shiftLeftMagnitude(a []Digit, k int) []Digit {
	if k == 0 {
		return a
	}
	out := make([]Digit, len(a)+k)
	copy(out, a)
	return out
}
