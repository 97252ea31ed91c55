// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

// Add computes out = a + b in the given base and returns out. It is
// safe to call with out aliased to a, b, or both (spec.md §3 aliasing
// rule): aliased inputs are copied to private temporaries first.
//
// Dispatch mirrors the sign table grounded in
// original_source/arbprec/src/add-sub.c's arb_add: same-sign operands
// go through a magnitude add, mixed-sign operands go through a
// magnitude subtract of the larger-magnitude convention.
func Add(a, b, out *Number, base int) *Number {
	ta, tb := aliasGuard2(a, b, out)
	switch {
	case ta.sign == Negative && tb.sign == Negative:
		magnitudeAdd(ta, tb, out, base)
		out.sign = Negative
	case ta.sign == Negative:
		// (-|ta|) + tb == tb - |ta|
		magnitudeSub(tb, ta, out, base)
	case tb.sign == Negative:
		// ta + (-|tb|) == ta - |tb|
		magnitudeSub(ta, tb, out, base)
	default:
		magnitudeAdd(ta, tb, out, base)
		out.sign = Positive
	}
	out.removeLeadingZeros()
	return out
}

// Sub computes out = a - b and returns out, expressed as a + (-b) so
// it shares Add's sign dispatch and aliasing guarantees.
func Sub(a, b, out *Number, base int) *Number {
	negB := b.Clone()
	negB.flipSign()
	return Add(a, negB, out, base)
}

// aliasGuard2 returns private copies of a and b whenever either is the
// same Number as out, so the caller's magnitude routines can freely
// write into out without corrupting a still-unread input.
func aliasGuard2(a, b, out *Number) (*Number, *Number) {
	ta, tb := a, b
	if out == a {
		ta = a.Clone()
	}
	if out == b {
		tb = b.Clone()
	}
	return ta, tb
}

// magnitudeAdd computes |a|+|b|, ignoring sign, and writes the
// normalized-length result into out (sign is the caller's concern).
// Digits are produced least-significant first by iterating from the
// lowest aligned place upward, then reversed to the stored most-
// significant-first order (spec.md §4.C).
func magnitudeAdd(a, b, out *Number, base int) {
	rp := maxInt(a.rp, b.rp)
	lp := maxInt(a.lp, b.lp)
	top := lp - 1
	bottom := -rp

	buf := make([]Digit, 0, top-bottom+2)
	carry := 0
	for place := bottom; place <= top; place++ {
		sum := int(a.digitAt(place)) + int(b.digitAt(place)) + carry
		carry = 0
		if sum >= base {
			carry = 1
			sum -= base
		}
		buf = append(buf, Digit(sum))
	}
	if carry != 0 {
		buf = append(buf, Digit(carry))
		lp++
	}
	reverseDigits(buf)

	out.digits = buf
	out.lp = lp
	out.rp = rp
}

// magnitudeSub computes a-b treating both as magnitudes (sign of a/b
// is ignored) and writes the signed result into out. It runs the
// primary a-b computation and a mirror nine's-complement-of-(b-a)
// computation in lockstep; a residual borrow past the most
// significant position means |b|>|a|, so the mirror result is swapped
// in and the sign flipped. This avoids a separate magnitude pre-
// compare, grounded in arb_sub_inter's mir/mborrow shadow computation.
func magnitudeSub(a, b, out *Number, base int) {
	rp := maxInt(a.rp, b.rp)
	lp := maxInt(a.lp, b.lp)
	top := lp - 1
	bottom := -rp
	size := top - bottom + 1

	primary := make([]Digit, 0, size)
	mirror := make([]Digit, 0, size)
	borrow := 0
	mborrow := -1
	for place := bottom; place <= top; place++ {
		da, db := int(a.digitAt(place)), int(b.digitAt(place))

		mir := da - db + mborrow
		mborrow = 0
		if mir < 0 {
			mborrow = -1
			mir += base
		}
		mirror = append(mirror, Digit(base-1-mir))

		sum := da - db + borrow
		borrow = 0
		if sum < 0 {
			borrow = -1
			sum += base
		}
		primary = append(primary, Digit(sum))
	}

	out.lp = lp
	out.rp = rp
	if borrow == -1 {
		reverseDigits(mirror)
		out.digits = mirror
		out.sign = Negative
	} else {
		reverseDigits(primary)
		out.digits = primary
		out.sign = Positive
	}
}

func reverseDigits(d []Digit) {
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}
}
