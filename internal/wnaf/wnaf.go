// Package wnaf computes windowed non-adjacent form representations of
// scalars, the recoding every fixed-base and variable-base window-table
// scalar multiplication in this module is built on.
package wnaf

import "math/big"

// Digits returns the width-w NAF digits of k, least-significant first.
// Each digit is an odd integer in [-(2^(w-1)-1), 2^(w-1)-1], or zero.
// Reconstructing k from the digits is sum(d_i * 2^i).
func Digits(k *big.Int, w uint) []int32 {
	if w < 2 {
		w = 2
	}
	if k.Sign() == 0 {
		return nil
	}

	n := new(big.Int).Set(k)
	neg := n.Sign() < 0
	if neg {
		n.Neg(n)
	}

	windowSize := int64(1) << w
	half := windowSize / 2

	var digits []int32
	for n.Sign() > 0 {
		var digit int32
		if n.Bit(0) == 1 {
			mod := new(big.Int).And(n, big.NewInt(windowSize-1))
			d := mod.Int64()
			if d >= half {
				d -= windowSize
			}
			digit = int32(d)
			n.Sub(n, big.NewInt(d))
		}
		digits = append(digits, digit)
		n.Rsh(n, 1)
	}

	if neg {
		for i := range digits {
			digits[i] = -digits[i]
		}
	}
	return digits
}

// Recode is an alias kept for call sites that think in terms of "recoding
// a scalar" rather than "the digits of a scalar" -- same operation.
func Recode(k *big.Int, w uint) []int32 { return Digits(k, w) }

// AteTraversal returns the width-2 (standard) NAF digits of k, most
// significant first, with the leading nonzero digit dropped. A Miller
// loop seeds its accumulator with the base point itself before entering
// the doubling/addition loop, which already accounts for that leading
// digit; every remaining digit is -1, 0 or 1 and drives one doubling step
// plus, when non-zero, one addition step against +-Q. This replaces plain
// bit-by-bit ate-loop-count traversal with its NAF form, trading the
// occasional extra addition binary double-and-add needs for runs of 1s
// against a cheaper run of a single addition either side of a zero digit.
func AteTraversal(k *big.Int) []int32 {
	digits := Digits(k, 2)
	trimmed := make([]int32, 0, len(digits))
	started := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if !started {
			if d == 0 {
				continue
			}
			started = true
			continue
		}
		trimmed = append(trimmed, d)
	}
	return trimmed
}
