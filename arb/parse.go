// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

// Parse converts a textual fixed-point literal into a Number. The
// glyph table and its permissiveness are preserved exactly per
// spec.md §4.B: '0'-'9' and 'A'-'Z' map to their digit values 0-35;
// any other rune (including lowercase letters, which
// original_source/arbprec/src/str2fxdpnt.c's arb_base table maps
// inconsistently for only a handful of codepoints) is silently
// treated as digit 0 rather than rejected. A single leading '+' or
// '-' sets the sign; a single '.' marks the radix point. Parse only
// reports ErrParse for a genuinely empty string, since there is
// nothing permissive parsing can do with no input at all.
//
// Grounded in str2fxdpnt.c's arb_parse_str, restructured around a
// digit count rather than raw string-index arithmetic to sidestep
// that function's sign-offset bookkeeping.
func Parse(text string) (*Number, error) {
	if text == "" {
		return nil, Errorf("%w", ErrParse)
	}

	var digits []Digit
	sign := Positive
	lp := -1
	for _, r := range text {
		switch {
		case r == '.':
			if lp == -1 {
				lp = len(digits)
			}
		case r == '+':
			sign = Positive
		case r == '-':
			sign = Negative
		default:
			digits = append(digits, charToDigit(r))
		}
	}
	if lp == -1 {
		lp = len(digits)
	}
	rp := len(digits) - lp

	if len(digits) == 0 {
		digits = []Digit{0}
		lp, rp = 1, 0
	}

	n := &Number{digits: digits, sign: sign, lp: lp, rp: rp}
	n.removeLeadingZeros()
	return n, nil
}

// charToDigit maps a single rune to its digit value under the
// permissive glyph table described above.
func charToDigit(r rune) Digit {
	switch {
	case r >= '0' && r <= '9':
		return Digit(r - '0')
	case r >= 'A' && r <= 'Z':
		return Digit(r-'A') + 10
	default:
		return 0
	}
}
