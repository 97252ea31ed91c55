// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arb

import (
	"errors"
	"fmt"
)

// Error is the package's error type. It behaves like a plain string
// error but lets callers match package-level failures with errors.Is
// against the sentinel values below.
type Error string

func (e Error) Error() string { return string(e) }

// Errorf builds an error with an "arb: " prefix, wrapping any %w verb
// the way fmt.Errorf does, so callers can use errors.Is against the
// sentinels below.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf("arb: "+format, args...)
}

// Sentinel errors for the taxonomy in spec.md §7. Parse, Div, Mod and
// Sqrt wrap one of these when they fail so callers can use errors.Is;
// Pow's non-integer-exponent error wraps none of them.
var (
	ErrDivideByZero = errors.New("division by zero")
	ErrNegativeSqrt = errors.New("square root of negative number")
	ErrNonConverge  = errors.New("iteration failed to converge")
	ErrParse        = errors.New("parse error")
)
