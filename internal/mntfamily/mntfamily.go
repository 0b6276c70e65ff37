// Package mntfamily implements the MNT-curve (MNT4/MNT6) final
// exponentiation: a two-sub-chunk exponentiation parameterized by the
// curve's final_exponent_last_chunk_{w0,w1,is_w0_neg} constants, shared by
// every curve in the family regardless of whether its target group is the
// "2-over-2" tower Fp4 (MNT4) or the "2-over-3" tower Fp6B (MNT6).
//
// Unlike the BLS/BN hard parts (internal/blsfamily, internal/bnfamily),
// which are both one fixed addition chain in the seed z, the MNT
// exponent q^(k/2) - 1 (easy part, "first chunk") times a final chunk
// built from exactly two cyclotomic exponentiations rather than a long
// chain -- hence "two-sub-chunk".
package mntfamily

import "math/big"

// GT is the minimal contract the target group of an MNT pairing must
// satisfy. HalfDegree is the tower's half-degree k/2 Frobenius power used
// by FirstChunk: 2 for MNT4's Fp4, 3 for MNT6's Fp6B.
type GT[T any] interface {
	Mul(T) T
	CyclotomicExp(exp []byte) T
	Frobenius(k int) T
	Inverse() (T, bool)
}

// LastChunkParams carries the curve-specific final_exponent_last_chunk
// constants: the exponent splits as w1 on the Frobenius(1) twist of elt,
// times w0 (or its negation) on elt itself.
type LastChunkParams struct {
	W1      *big.Int
	AbsW0   *big.Int
	IsW0Neg bool
}

// FirstChunk computes elt^(q^halfDegree - 1) given elt and its own
// inverse, via one Frobenius(halfDegree) and a multiply.
func FirstChunk[T GT[T]](elt, eltInv T, halfDegree int) T {
	return elt.Frobenius(halfDegree).Mul(eltInv)
}

// LastChunk computes the final-chunk exponentiation given elt and eltInv
// already raised through FirstChunk (so elt here is elt0^(q^halfDegree-1)
// for the original pairing value elt0, and eltInv is the same computed
// from elt0's inverse): w1_part = Frobenius(1)(elt)^w1, w0_part = elt^w0
// or eltInv^|w0| when w0 is negative, and the result is their product.
func LastChunk[T GT[T]](elt, eltInv T, p LastChunkParams) T {
	eltQ := elt.Frobenius(1)
	w1Part := eltQ.CyclotomicExp(p.W1.Bytes())

	var w0Part T
	if p.IsW0Neg {
		w0Part = eltInv.CyclotomicExp(p.AbsW0.Bytes())
	} else {
		w0Part = elt.CyclotomicExp(p.AbsW0.Bytes())
	}
	return w1Part.Mul(w0Part)
}

// FinalExponentiation computes elt^((q^k-1)/r) for the MNT final
// exponent, following libff's final_exponentiation_{first,last}_chunk
// split: the first chunk is applied once to elt and once to elt's own
// inverse (since the easy part is not an involution on its own), and the
// last chunk then combines both results.
func FinalExponentiation[T GT[T]](elt T, halfDegree int, p LastChunkParams) T {
	eltInv, ok := elt.Inverse()
	if !ok {
		return elt
	}
	toFirst := FirstChunk(elt, eltInv, halfDegree)
	invToFirst := FirstChunk(eltInv, elt, halfDegree)
	return LastChunk(toFirst, invToFirst, p)
}
