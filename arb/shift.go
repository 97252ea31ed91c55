// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

// LeftShift compacts a's digit array by dropping the n most
// significant digits in place, moving the remaining digits toward the
// front and zero-filling the vacated low end. It is the array
// compaction primitive removeLeadingZeros itself calls after counting
// how many leading zeros to drop, exposed here as a direct operation
// too, grounded in
// original_source/arbprec/src/logical-shift.c's arb_leftshift.
func LeftShift(a *Number, n int) *Number {
	length := a.Len()
	if n <= 0 {
		return a
	}
	if n > length {
		n = length
	}
	copy(a.digits[:length-n], a.digits[n:length])
	for i := length - n; i < length; i++ {
		a.digits[i] = 0
	}
	return a
}

// RightShift moves a's digits toward the least-significant end by n
// positions. With faux=false it is a true logical shift: n zero
// digits are prepended and the n digits that fall off the
// least-significant end are discarded, total digit count (and lp/rp)
// unchanged (original's rightshift_core, base-10 "990" becomes "099";
// arb_rightshift with faux=0 only moves raw digits, it never touches
// lp/rp). With faux=true no digit is moved; only the reported length
// shrinks by n, the fast path original_source calls a faux shift —
// since this package's Len() is lp+rp rather than a stored field (see
// DESIGN.md O1), "shrink len by n" is realized by first reducing rp
// and then, once rp is exhausted, lp.
// Grounded in logical-shift.c's arb_rightshift.
func RightShift(a *Number, n int, faux bool) *Number {
	length := a.Len()
	if n > length {
		n = length
	}
	if faux {
		dropRP := minInt(n, a.rp)
		a.rp -= dropRP
		a.lp -= n - dropRP
		a.digits = a.digits[:a.Len()]
		return a
	}
	copy(a.digits[n:length], a.digits[:length-n])
	for i := 0; i < n; i++ {
		a.digits[i] = 0
	}
	return a
}
