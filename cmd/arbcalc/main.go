// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command arbcalc is a thin command-line harness over the arb
// package: one subcommand per boundary operation. It is a direct
// caller exercising the library, not an expression-grammar
// calculator — there is no parser, no bytecode VM, no REPL.
package main

import (
	"fmt"
	"os"

	"arbprec.dev/arbprec/arb"
	"github.com/spf13/cobra"
)

func main() {
	var base int
	var scale int

	rootCmd := &cobra.Command{
		Use:   "arbcalc",
		Short: "Arbitrary-precision fixed-point decimal arithmetic",
	}
	rootCmd.PersistentFlags().IntVar(&base, "base", 10, "numeric base for operands and results")
	rootCmd.PersistentFlags().IntVar(&scale, "scale", 20, "fractional digits to compute for div/mul/pow/sqrt")

	rootCmd.AddCommand(
		binaryCmd("add", "a + b", func(a, b, out *arb.Number) (*arb.Number, error) {
			return arb.Add(a, b, out, base), nil
		}),
		binaryCmd("sub", "a - b", func(a, b, out *arb.Number) (*arb.Number, error) {
			return arb.Sub(a, b, out, base), nil
		}),
		binaryCmd("mul", "a * b", func(a, b, out *arb.Number) (*arb.Number, error) {
			return arb.Mul(a, b, out, base, scale), nil
		}),
		binaryCmd("div", "a / b", func(a, b, out *arb.Number) (*arb.Number, error) {
			return arb.Div(a, b, out, base, scale)
		}),
		binaryCmd("mod", "a mod b", func(a, b, out *arb.Number) (*arb.Number, error) {
			return arb.Mod(a, b, out, base, scale)
		}),
		binaryCmd("pow", "a ^ b (b a non-negative integer)", func(a, b, out *arb.Number) (*arb.Number, error) {
			return arb.Pow(a, b, out, base, scale)
		}),
		sqrtCmd(&base, &scale),
		compareCmd(&base),
		convertCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func binaryCmd(use, short string, op func(a, b, out *arb.Number) (*arb.Number, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arb.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := arb.Parse(args[1])
			if err != nil {
				return err
			}
			out := arb.NewNumber(0)
			if _, err := op(a, b, out); err != nil {
				return err
			}
			fmt.Println(out.String())
			return nil
		},
	}
}

func sqrtCmd(base, scale *int) *cobra.Command {
	var reciprocal bool
	cmd := &cobra.Command{
		Use:   "sqrt <a>",
		Short: "square root of a",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arb.Parse(args[0])
			if err != nil {
				return err
			}
			out := arb.NewNumber(0)
			if reciprocal {
				_, err = arb.SqrtReciprocal(a, out, *base, *scale)
			} else {
				_, err = arb.Sqrt(a, out, *base, *scale)
			}
			if err != nil {
				return err
			}
			fmt.Println(out.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&reciprocal, "reciprocal", false, "use SqrtReciprocal (the same Babylonian update, seeded from 1 instead of a)")
	return cmd
}

func compareCmd(base *int) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "-1, 0, or 1 depending on whether a < b, a == b, or a > b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arb.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := arb.Parse(args[1])
			if err != nil {
				return err
			}
			fmt.Println(arb.Compare(a, b, *base))
			return nil
		},
	}
}

func convertCmd() *cobra.Command {
	var ibase, obase int
	cmd := &cobra.Command{
		Use:   "convert <a>",
		Short: "reinterpret a's digits from --ibase into --obase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arb.Parse(args[0])
			if err != nil {
				return err
			}
			out := arb.NewNumber(0)
			arb.Convert(a, out, ibase, obase)
			fmt.Println(out.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&ibase, "ibase", 10, "base a's digits are recorded in")
	cmd.Flags().IntVar(&obase, "obase", 10, "base to convert into")
	return cmd
}
