// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

import "math"

// logTable approximates log10(b) for 0<=b<=49, used to budget how
// many output digits a base conversion needs without allocating a
// wildly oversized buffer. Grounded in
// original_source/arbprec/src/convert.c's logtable.
var logTable = [50]float64{
	0.0000000000000,
	0.0000000000000, 0.3010299956640, 0.4771212547197,
	0.6020599913280, 0.6989700043360, 0.7781512503836,
	0.8450980400143, 0.9030899869919, 0.9542425094393,
	1.0000000000000, 1.0413926851582, 1.0791812460476,
	1.1139433523068, 1.1461280356782, 1.1760912590557,
	1.2041199826559, 1.2304489213783, 1.2552725051033,
	1.2787536009528, 1.3010299956640, 1.3222192947339,
	1.3424226808222, 1.3617278360176, 1.3802112417116,
	1.3979400086720, 1.4149733479708, 1.4313637641590,
	1.4471580313422, 1.4623979978990, 1.4771212547197,
	1.4913616938343, 1.5051499783199, 1.5185139398779,
	1.5314789170423, 1.5440680443503, 1.5563025007673,
	1.5682017240670, 1.5797835966168, 1.5910646070265,
	1.6020599913280, 1.6127838567197, 1.6232492903979,
	1.6334684555796, 1.6434526764862, 1.6532125137753,
	1.6627578316816, 1.6720978579357, 1.6812412373756,
	1.6901960800285,
}

// estimateLen sizes the output digit budget for converting srcLen
// digits from ibase to obase: ceil(srcLen/log_obase) plus one digit
// of headroom when obase is smaller than ibase, so the digit count
// grows (mirroring convert.c's "if (ibase > obase && obase < 50)"
// condition), otherwise srcLen itself is always sufficient. The
// one-digit headroom is a deliberate deviation from convert.c, which
// sizes exactly to the log-table estimate and silently drops any
// overflow carry past it.
func estimateLen(srcLen, ibase, obase int) int {
	if srcLen == 0 {
		return 0
	}
	if ibase > obase && obase < len(logTable) && logTable[obase] > 0 {
		return int(math.Ceil(float64(srcLen)/logTable[obase])) + 1
	}
	return srcLen
}

// convertIntegerDigits converts an MSD-first integer digit sequence
// from ibase to obase via the classic double-dabble accumulation:
// each source digit is folded into an obase-digit accumulator by
// multiplying the accumulator by ibase and adding the digit, carrying
// across accumulator positions. Grounded in convert.c's convert().
func convertIntegerDigits(src []int, ibase, obase, outLen int) []int {
	acc := make([]int, outLen)
	for _, d := range src {
		carry := d
		for j := outLen - 1; j >= 0; j-- {
			prod := acc[j]*ibase + carry
			acc[j] = prod % obase
			carry = prod / obase
		}
	}
	return acc
}

// convertFractionDigits converts an MSD-first fractional digit
// sequence from ibase to obase by repeatedly multiplying the fraction
// (held in ibase) by obase and emitting the integer part that carries
// out the front as the next obase digit. Grounded in convert.c's
// conv_frac, generalized to the arb_short_mul scalar-multiply-with-
// carry step regardless of which base is larger.
func convertFractionDigits(src []int, ibase, obase, outLen int) []int {
	work := append([]int(nil), src...)
	out := make([]int, outLen)
	for i := 0; i < outLen; i++ {
		carry := 0
		for j := len(work) - 1; j >= 0; j-- {
			work[j] = work[j]*obase + carry
			carry = work[j] / ibase
			work[j] %= ibase
		}
		out[i] = carry
	}
	return out
}

// Convert reinterprets a's digits (recorded in base ibase) into base
// obase and writes the result into out, preserving the position of
// the radix point: the integer part is converted independently from
// the fractional part, per spec.md §4.F. Returns out.
func Convert(a, out *Number, ibase, obase int) *Number {
	intSrc := digitsToInts(a.digits[:a.lp])
	fracSrc := digitsToInts(a.digits[a.lp:a.Len()])

	intLen := estimateLen(len(intSrc), ibase, obase)
	fracLen := estimateLen(len(fracSrc), ibase, obase)

	intOut := convertIntegerDigits(intSrc, ibase, obase, intLen)
	fracOut := convertFractionDigits(fracSrc, ibase, obase, fracLen)

	digits := make([]Digit, intLen+fracLen)
	for i, v := range intOut {
		digits[i] = Digit(v)
	}
	for i, v := range fracOut {
		digits[intLen+i] = Digit(v)
	}

	out.digits = digits
	out.lp = intLen
	out.rp = fracLen
	out.sign = a.sign
	out.removeLeadingZeros()
	return out
}

func digitsToInts(d []Digit) []int {
	out := make([]int, len(d))
	for i, v := range d {
		out[i] = int(v)
	}
	return out
}
