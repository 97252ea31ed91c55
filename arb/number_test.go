// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

import "testing"

func TestParseRemoveLeadingZeros(t *testing.T) {
	tests := []struct {
		in     string
		wantLP int
		wantRP int
	}{
		{"0.5", 0, 1},
		{"007", 1, 0},
		{"0", 1, 0},
		{"00.00", 0, 2},
	}
	for _, test := range tests {
		n, err := Parse(test.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", test.in, err)
		}
		if n.LP() != test.wantLP || n.RP() != test.wantRP {
			t.Errorf("Parse(%q) = lp=%d rp=%d, want lp=%d rp=%d", test.in, n.LP(), n.RP(), test.wantLP, test.wantRP)
		}
	}
}

func TestParseEmptyIsError(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatal("Parse(\"\") = nil error, want ErrParse")
	}
}

func TestParseSign(t *testing.T) {
	n, err := Parse("-3.5")
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsNegative() {
		t.Errorf("Parse(-3.5).IsNegative() = false, want true")
	}
	z, err := Parse("-0")
	if err != nil {
		t.Fatal(err)
	}
	if z.IsNegative() {
		t.Errorf("Parse(-0).IsNegative() = true, want false (zero is always positive)")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1", "1", 0},
		{"1", "2", -1},
		{"2", "1", 1},
		{"-1", "1", -1},
		{"-0.1", "0.1", -1},
		{"1.50", "1.5", 0},
		{"-5", "-3", -1},
	}
	for _, test := range tests {
		a, _ := Parse(test.a)
		b, _ := Parse(test.b)
		if got := Compare(a, b, 10); got != test.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"1.5", "-3.75", ".5", "255", "-.001"} {
		n, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := n.String(); got != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got, s)
		}
	}
}
