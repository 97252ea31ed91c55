// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

// Div computes out = a/b in the given base, producing at least scale
// fractional digits, and returns out. It implements Knuth Algorithm D
// (guess, refine, multiply-and-subtract with D6 add-back), grounded
// line-for-line in original_source/arbprec/src/algd.c's arb_alg_d.
//
// Div reports ErrDivideByZero (wrapped) and leaves out unchanged if b
// is zero. It is safe under aliasing: every input digit is read into a
// local working buffer before out is written.
func Div(a, b, out *Number, base, scale int) (*Number, error) {
	if b.isZero() {
		return nil, Errorf("%w", ErrDivideByZero)
	}
	negative := a.sign != b.sign

	lea := a.lp + b.rp
	uscal := a.rp - b.rp
	offset := 0
	if uscal < scale {
		offset = scale - uscal
	}

	numLen := a.Len()
	u := make([]int, 1+numLen+offset+3)
	for i := 0; i < numLen; i++ {
		u[1+i] = int(a.digits[i])
	}

	v := make([]int, b.Len())
	for i := range v {
		v[i] = int(b.digits[i])
	}
	for len(v) > 0 && v[0] == 0 {
		v = v[1:]
	}
	leb := len(v)

	quodig := scale + 1
	outOfScale := leb > lea+scale
	if !outOfScale && !(leb > lea) {
		quodig = lea - leb + scale + 1
	}

	qLen := quodig + scale
	q := make([]int, qLen)
	lpQ := quodig - scale
	rpQ := scale

	if !outOfScale {
		j := 0
		k := 0
		if leb > lea {
			k = leb - lea
		}
		temp := make([]int, leb+1)
		qg := base - 1
		limit := lea + scale - leb
		for ; j <= limit; j, k = j+1, k+1 {
			uAt := func(idx int) int {
				if idx < 0 || idx >= len(u) {
					return 0
				}
				return u[idx]
			}
			v1 := 0
			if len(v) > 1 {
				v1 = v[1]
			}

			if v[0] != uAt(j) {
				qg = (uAt(j)*base + uAt(j+1)) / v[0]
				if qg > base-1 {
					qg = base - 1
				}
			} else {
				qg = base - 1
			}

			refine := func(guess int) bool {
				return v1*guess > (uAt(j)*base+uAt(j+1)-v[0]*guess)*base+uAt(j+2)
			}
			if refine(qg) {
				qg--
				if refine(qg) {
					qg--
				}
			}

			if qg != 0 {
				temp = mulByDigit(v, qg, base, temp)
				if longSub(u, leb, j, temp, leb, base) != 0 {
					qg--
					if longAdd(u, leb, j, v, leb-1, base) != 0 {
						u[0] = 0
					}
				}
			}
			q[k] = qg
		}
	}

	digits := make([]Digit, qLen)
	for i, d := range q {
		digits[i] = Digit(d)
	}
	out.digits = digits
	out.lp = lpQ
	out.rp = rpQ
	out.removeLeadingZeros()
	out.sign = Positive
	if negative {
		out.sign = Negative
	}
	if out.isZero() {
		out.sign = Positive
	}
	return out, nil
}

// mulByDigit multiplies the digit sequence v (most-significant first)
// by a single quotient-digit guess qg, writing the len(v)+1-digit
// result into dst (original_source's arb_mul_core(v, leb, &qg, 1, ...)
// in the D4 step of Algorithm D).
func mulByDigit(v []int, qg, base int, dst []int) []int {
	if cap(dst) < len(v)+1 {
		dst = make([]int, len(v)+1)
	}
	dst = dst[:len(v)+1]
	carry := 0
	for i := len(v) - 1; i >= 0; i-- {
		prod := v[i]*qg + carry
		carry = prod / base
		dst[i+1] = prod % base
	}
	dst[0] = carry
	return dst
}

// longSub subtracts v[0..k] from u[uBase+i-k .. uBase+i], most
// significant digit first, returning the final borrow (0 or 1).
// Grounded in original_source/arbprec/src/algd.c's _long_sub.
func longSub(u []int, uBase, i int, v []int, k, base int) int {
	borrow := 0
	for step := 0; step <= k; step++ {
		ii, kk := i-step, k-step
		val := u[uBase+ii] - v[kk] - borrow
		borrow = 0
		if val < 0 {
			val += base
			borrow = 1
		}
		u[uBase+ii] = val
	}
	return borrow
}

// longAdd is the D6 add-back counterpart to longSub, returning the
// final carry (0 or 1). Grounded in algd.c's _long_add.
func longAdd(u []int, uBase, i int, v []int, k, base int) int {
	carry := 0
	for step := 0; step <= k; step++ {
		ii, kk := i-step, k-step
		val := u[uBase+ii] + v[kk] + carry
		carry = 0
		if val >= base {
			val -= base
			carry = 1
		}
		u[uBase+ii] = val
	}
	return carry
}

// Mod computes out = a - (a/b)*b, at the scale contract of spec.md
// §4.E / original_source's arb_mod: the quotient is computed to
// scale fractional digits, then the remultiply uses
// max(len_a, len_b+scale) fractional precision so the subtraction is
// exact.
func Mod(a, b, out *Number, base, scale int) (*Number, error) {
	tmp := NewNumber(0)
	if _, err := Div(a, b, tmp, base, scale); err != nil {
		return nil, err
	}
	newScale := maxInt(a.Len(), b.Len()+scale)
	tmp2 := NewNumber(0)
	Mul(tmp, b, tmp2, base, newScale)
	Sub(a, tmp2, out, base)
	return out, nil
}
