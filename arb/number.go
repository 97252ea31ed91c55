// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arb implements an arbitrary-precision fixed-point decimal
// arithmetic kernel: a digit-array Number representation plus the
// additive, multiplicative, division, and derived-operation kernels
// that operate on it.
//
// A Number holds a sign, a sequence of digits most-significant first,
// and a radix-point position (lp digits to the left of the point, rp
// to the right). Every operation that returns a Number to a caller
// leaves it normalized: no leading zero digit unless the value is
// exactly zero, and zero magnitude always carries a positive sign.
package arb

// Digit is a single base-b digit, 0 <= Digit < base for whatever base
// an operation was called with. Values above 35 only arise internally
// (see Format) and are never produced by Parse for bases <= 36.
type Digit = uint8

// Sign is the sign of a Number. Zero is always Positive.
type Sign int8

const (
	Positive Sign = 1
	Negative Sign = -1
)

func (s Sign) flip() Sign {
	if s == Positive {
		return Negative
	}
	return Positive
}

// Number is a signed, fixed-point, arbitrary-precision value: a
// sequence of base-b digits (most-significant first) together with a
// sign and the count of digits to the left (lp) and right (rp) of the
// implicit radix point.
//
// digits is owned exclusively by the Number; operations never alias
// two Numbers' backing arrays together, and never mutate an input
// unless that input is also the designated output (see the package
// doc and the Add/Sub/Mul/... contracts for the aliasing rule).
type Number struct {
	digits []Digit
	sign   Sign
	lp     int
	rp     int
}

// Len reports the total number of significant digits, lp+rp. It is
// derived rather than stored so invariant P1 (len == lp+rp) cannot be
// violated by a stale write.
func (n *Number) Len() int {
	if n == nil {
		return 0
	}
	return n.lp + n.rp
}

// LP and RP report the digit counts to the left and right of the
// radix point, respectively.
func (n *Number) LP() int { return n.lp }
func (n *Number) RP() int { return n.rp }

// Sign reports the Number's sign.
func (n *Number) Sign() Sign { return n.sign }

// IsNegative reports whether n is negative. Zero is never negative.
func (n *Number) IsNegative() bool { return n.sign == Negative }

// NewNumber allocates a Number with room for at least capacity digits
// and sets it to zero. A capacity of 0 is legal; the backing array
// grows automatically as needed.
func NewNumber(capacity int) *Number {
	n := &Number{digits: make([]Digit, 1, maxInt(capacity, 1))}
	n.sign = Positive
	n.lp = 1
	n.rp = 0
	return n
}

// zero is never shared: every call to zeroNumber builds a fresh value,
// since Numbers are mutated in place by the operations that return them.
func zeroNumber() *Number {
	return NewNumber(1)
}

// smallInt builds a Number for a small non-negative integer constant
// (such as 1 or 2) expressed correctly in the given base — a single
// digit in decimal may need several digits once base is small (base 2
// needs two digits for the value 2). Used internally by Pow's binary
// exponentiation and Sqrt's Babylonian iteration, in the spirit of
// original_source/arbprec/src/hrdware2arb.c's hardware-integer-to-arb
// conversion.
func smallInt(v, base int) *Number {
	if v == 0 {
		return zeroNumber()
	}
	var digits []Digit
	for v > 0 {
		digits = append(digits, Digit(v%base))
		v /= base
	}
	reverseDigits(digits)
	return &Number{digits: digits, sign: Positive, lp: len(digits), rp: 0}
}

// expand grows n's digit storage, if necessary, so that at least size
// digit slots are addressable, zero-filling any newly added headroom.
// It never shrinks the backing array and never changes n's value (lp,
// rp, sign are left untouched; callers that also want to change the
// logical length do so explicitly afterward).
func (n *Number) expand(size int) {
	if size <= len(n.digits) {
		return
	}
	if size <= cap(n.digits) {
		tail := n.digits[len(n.digits):size]
		for i := range tail {
			tail[i] = 0
		}
		n.digits = n.digits[:size]
		return
	}
	next := make([]Digit, size)
	copy(next, n.digits)
	n.digits = next
}

// digitAt returns the digit of n at the given place value: place 0 is
// the ones digit, place k>0 is the base^k digit, and place -k (k>0) is
// the k-th digit after the radix point. Positions outside n's stored
// range return 0, so two Numbers with different lp/rp can be added or
// subtracted digit-by-digit after aligning on the radix point rather
// than on raw array index (spec.md §4.C: "a helper supplies the i-th
// digit from each operand relative to the radix position").
func (n *Number) digitAt(place int) Digit {
	idx := n.lp - 1 - place
	if idx < 0 || idx >= len(n.digits) {
		return 0
	}
	return n.digits[idx]
}

// Copy makes dst an independent copy of src: same digits, sign, lp,
// and rp. dst and src may be the same Number, in which case Copy is a
// no-op.
func Copy(dst, src *Number) {
	if dst == src {
		return
	}
	dst.expand(src.Len())
	dst.digits = dst.digits[:src.Len()]
	copy(dst.digits, src.digits[:src.Len()])
	dst.sign = src.sign
	dst.lp = src.lp
	dst.rp = src.rp
}

// Clone returns an independent copy of n.
func (n *Number) Clone() *Number {
	c := NewNumber(n.Len())
	Copy(c, n)
	return c
}

func (n *Number) flipSign() {
	n.sign = n.sign.flip()
}

// setSign sets out's sign to the XOR of a's and b's signs, the
// convention every multiplicative/divisive operation uses to combine
// operand signs (spec.md §4.D wrapper contract).
func setSign(a, b, out *Number) {
	out.sign = Positive
	if a.sign != b.sign {
		out.sign = Negative
	}
}

// removeLeadingZeros trims digits from the most-significant end of n
// while they are zero and lp > 0, shrinking lp accordingly and
// preserving rp. If every digit was trimmed away (the value was all
// zeros), it restores the canonical single-zero form: lp=1, rp=0,
// sign positive (spec.md §4.A).
//
// Counting stays a local loop over a copy of lp, and the trim itself
// is delegated to LeftShift, exactly as
// original_source/arbprec/src/general.c's remove_leading_zeros counts
// down c->lp and then calls arb_leftshift(c, i, 1) to do the actual
// digit move.
func (n *Number) removeLeadingZeros() {
	length := n.Len()
	n.digits = n.digits[:length]
	i, lp := 0, n.lp
	for lp > 0 && i < length && n.digits[i] == 0 {
		lp--
		i++
	}
	if i > 0 {
		LeftShift(n, i)
		n.lp -= i
		n.digits = n.digits[:length-i]
	}
	if n.Len() == 0 {
		n.digits = append(n.digits[:0], 0)
		n.lp, n.rp = 1, 0
	}
	if n.isZero() {
		n.sign = Positive
	}
}

// Compare returns the sign of a-b: -1 if a<b, 0 if a==b, +1 if a>b.
// Signs are compared first (a positive value is always greater than a
// negative one); equal-sign operands are compared magnitude-only,
// digit by digit after aligning on the radix point (spec.md §4.A).
func Compare(a, b *Number, base int) int {
	_ = base
	if a.isZero() && b.isZero() {
		return 0
	}
	if a.sign != b.sign {
		if a.sign == Positive {
			return 1
		}
		return -1
	}
	mag := compareMagnitude(a, b)
	if a.sign == Negative {
		mag = -mag
	}
	return mag
}

func compareMagnitude(a, b *Number) int {
	top := maxInt(a.lp, b.lp) - 1
	bottom := -maxInt(a.rp, b.rp)
	for place := top; place >= bottom; place-- {
		da, db := a.digitAt(place), b.digitAt(place)
		if da != db {
			if da > db {
				return 1
			}
			return -1
		}
	}
	return 0
}

func (n *Number) isZero() bool {
	length := minInt(n.Len(), len(n.digits))
	for _, d := range n.digits[:length] {
		if d != 0 {
			return false
		}
	}
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
