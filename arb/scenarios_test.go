// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenarios S1-S9, taken directly from the end-to-end table, each
// grounded in the matching original_source/arbprec/tests/*.c case:
// add.c, div.c (S4/S5), mul.c, conv_frac.c (S6's sqrt uses the same
// Babylonian recurrence conv_frac.c exercises), and convscaled.c for
// the base-conversion round trip (S8/S9).
func TestScenarioAdd(t *testing.T) {
	a, err := Parse("1.5")
	require.NoError(t, err)
	b, err := Parse("2.25")
	require.NoError(t, err)
	out := NewNumber(0)
	Add(a, b, out, 10)
	require.Equal(t, "3.75", out.String())
}

func TestScenarioSub(t *testing.T) {
	a, err := Parse("1")
	require.NoError(t, err)
	b, err := Parse("2")
	require.NoError(t, err)
	out := NewNumber(0)
	Sub(a, b, out, 10)
	require.Equal(t, "-1", out.String())
}

func TestScenarioMul(t *testing.T) {
	a, err := Parse("12.5")
	require.NoError(t, err)
	b, err := Parse("0.4")
	require.NoError(t, err)
	out := NewNumber(0)
	Mul(a, b, out, 10, 10)
	require.Equal(t, "5.00", out.String())
}

func TestScenarioDiv(t *testing.T) {
	a, err := Parse("10")
	require.NoError(t, err)
	b, err := Parse("3")
	require.NoError(t, err)
	out := NewNumber(0)
	_, err = Div(a, b, out, 10, 5)
	require.NoError(t, err)
	require.Equal(t, "3.33333", out.String())
}

func TestScenarioMod(t *testing.T) {
	a, err := Parse("10")
	require.NoError(t, err)
	b, err := Parse("3")
	require.NoError(t, err)
	out := NewNumber(0)
	_, err = Mod(a, b, out, 10, 10)
	require.NoError(t, err)
	require.Equal(t, "1", out.String())
}

func TestScenarioSqrt(t *testing.T) {
	a, err := Parse("2")
	require.NoError(t, err)
	out := NewNumber(0)
	_, err = Sqrt(a, out, 10, 10)
	require.NoError(t, err)
	require.Equal(t, "1.4142135623", out.String())
}

func TestScenarioSqrtReciprocalAgrees(t *testing.T) {
	a, err := Parse("2")
	require.NoError(t, err)
	want := NewNumber(0)
	_, err = Sqrt(a, want, 10, 10)
	require.NoError(t, err)
	got := NewNumber(0)
	_, err = SqrtReciprocal(a, got, 10, 10)
	require.NoError(t, err)
	require.Equal(t, want.String(), got.String())
}

func TestScenarioCompare(t *testing.T) {
	a, err := Parse("-0.1")
	require.NoError(t, err)
	b, err := Parse("0.1")
	require.NoError(t, err)
	require.Equal(t, -1, Compare(a, b, 10))
}

func TestScenarioConvertToHex(t *testing.T) {
	a, err := Parse("255")
	require.NoError(t, err)
	out := NewNumber(0)
	Convert(a, out, 10, 16)
	require.Equal(t, "FF", out.String())
}

func TestScenarioConvertFromHex(t *testing.T) {
	a, err := Parse("FF")
	require.NoError(t, err)
	out := NewNumber(0)
	Convert(a, out, 16, 10)
	require.Equal(t, "255", out.String())
}

func TestScenarioDivideByZero(t *testing.T) {
	a, err := Parse("1")
	require.NoError(t, err)
	zero, err := Parse("0")
	require.NoError(t, err)
	out := NewNumber(0)
	_, err = Div(a, zero, out, 10, 10)
	require.ErrorIs(t, err, ErrDivideByZero)
}

func TestScenarioNegativeSqrt(t *testing.T) {
	a, err := Parse("-4")
	require.NoError(t, err)
	out := NewNumber(0)
	_, err = Sqrt(a, out, 10, 10)
	require.ErrorIs(t, err, ErrNegativeSqrt)
}

func TestScenarioPow(t *testing.T) {
	a, err := Parse("2")
	require.NoError(t, err)
	b, err := Parse("10")
	require.NoError(t, err)
	out := NewNumber(0)
	_, err = Pow(a, b, out, 10, 10)
	require.NoError(t, err)
	require.Equal(t, "1024", out.String())
}

func TestScenarioPowZeroExponent(t *testing.T) {
	a, err := Parse("7")
	require.NoError(t, err)
	zero, err := Parse("0")
	require.NoError(t, err)
	out := NewNumber(0)
	_, err = Pow(a, zero, out, 10, 10)
	require.NoError(t, err)
	require.Equal(t, "1", out.String())
}

func TestScenarioMagnitudeMismatch(t *testing.T) {
	big, err := Parse("100000000000000000000000000000000000000000000000")
	require.NoError(t, err)
	small, err := Parse("0.0000000000000000000000000000000000000000000001")
	require.NoError(t, err)
	out := NewNumber(0)
	Add(big, small, out, 10)
	require.True(t, Compare(out, big, 10) == 1)
}
