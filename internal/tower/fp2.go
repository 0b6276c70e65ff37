// Package tower implements the algebraic-extension ladder F_q -> F_q^2 ->
// F_q^3 -> F_q^4 -> F_q^6 -> F_q^12 used by the pairing-friendly curves in
// this module. Two independent shapes occur in the supported curve set and
// are kept as distinct named types rather than unified behind one generic
// "degree-k extension": a 3-over-2 ladder (Fp2 -> Fp6A -> Fp12, used by
// BLS12-381/377 and BN254) and a 2-over-3 ladder (Fp3 -> Fp6B, used by
// MNT6-298 and Edwards-183), plus a 2-over-2 ladder (Fp2 -> Fp4, MNT4-298).
package tower

import (
	"math/big"

	"github.com/nilfoundation/algebra/internal/fp"
)

// Fp2Params holds the non-residue and Frobenius constants for
// Fp2 = Fp[u]/(u^2 - NonResidue).
type Fp2Params struct {
	NonResidue fp.Element
	// FrobeniusCoeffC1[k mod 2] multiplies c1 when raising to p^k.
	FrobeniusCoeffC1 [2]fp.Element
}

// Fp2 is an element c0 + c1*u of Fp[u]/(u^2 - NonResidue).
type Fp2 struct {
	P      *Fp2Params
	C0, C1 fp.Element
}

// NewFp2 builds a Fp2 from its two coordinates.
func NewFp2(p *Fp2Params, c0, c1 fp.Element) Fp2 {
	return Fp2{P: p, C0: c0, C1: c1}
}

// Zero returns 0 + 0u.
func (p *Fp2Params) Zero(base *fp.Params) Fp2 {
	return Fp2{P: p, C0: base.Zero(), C1: base.Zero()}
}

// One returns 1 + 0u.
func (p *Fp2Params) One(base *fp.Params) Fp2 {
	return Fp2{P: p, C0: base.One(), C1: base.Zero()}
}

// IsZero reports whether e is the additive identity.
func (e Fp2) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() }

// IsOne reports whether e is the multiplicative identity.
func (e Fp2) IsOne() bool { return e.C0.IsOne() && e.C1.IsZero() }

// Equal reports component-wise equality.
func (e Fp2) Equal(f Fp2) bool { return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) }

// Add returns e + f.
func (e Fp2) Add(f Fp2) Fp2 {
	return Fp2{P: e.P, C0: e.C0.Add(f.C0), C1: e.C1.Add(f.C1)}
}

// Sub returns e - f.
func (e Fp2) Sub(f Fp2) Fp2 {
	return Fp2{P: e.P, C0: e.C0.Sub(f.C0), C1: e.C1.Sub(f.C1)}
}

// Neg returns -e.
func (e Fp2) Neg() Fp2 {
	return Fp2{P: e.P, C0: e.C0.Neg(), C1: e.C1.Neg()}
}

// Double returns e + e.
func (e Fp2) Double() Fp2 {
	return Fp2{P: e.P, C0: e.C0.Double(), C1: e.C1.Double()}
}

// Conjugate returns c0 - c1*u, the nontrivial Fp2/Fp automorphism.
func (e Fp2) Conjugate() Fp2 {
	return Fp2{P: e.P, C0: e.C0, C1: e.C1.Neg()}
}

// MulByFp multiplies by a base-field scalar.
func (e Fp2) MulByFp(s fp.Element) Fp2 {
	return Fp2{P: e.P, C0: e.C0.Mul(s), C1: e.C1.Mul(s)}
}

// MulByNonResidue returns e * NonResidue, lifted to Fp2 (scales both limbs).
func (e Fp2) MulByNonResidue() Fp2 {
	return e.MulByFp(e.P.NonResidue)
}

// Mul returns e * f via the schoolbook Karatsuba-style cross term:
// (a0+a1u)(b0+b1u) = (a0b0 + nu*a1b1) + ((a0+a1)(b0+b1) - a0b0 - a1b1)u.
func (e Fp2) Mul(f Fp2) Fp2 {
	v0 := e.C0.Mul(f.C0)
	v1 := e.C1.Mul(f.C1)
	c0 := v0.Add(v1.Mul(e.P.NonResidue))
	c1 := e.C0.Add(e.C1).Mul(f.C0.Add(f.C1)).Sub(v0).Sub(v1)
	return Fp2{P: e.P, C0: c0, C1: c1}
}

// Square returns e^2 via the complex-squaring trick:
// (a0+a1u)^2 = ((a0+a1)(a0+nu*a1) - a0a1 - nu*a0a1) + 2a0a1 u.
func (e Fp2) Square() Fp2 {
	ab := e.C0.Mul(e.C1)
	c0 := e.C0.Add(e.C1).Mul(e.C0.Add(e.C1.Mul(e.P.NonResidue))).Sub(ab).Sub(ab.Mul(e.P.NonResidue))
	c1 := ab.Double()
	return Fp2{P: e.P, C0: c0, C1: c1}
}

// Inverse returns e^-1 using the norm-based formula
// (a0+a1u)^-1 = (a0 - a1u) / (a0^2 - nu*a1^2).
func (e Fp2) Inverse() (Fp2, bool) {
	norm := e.C0.Square().Sub(e.C1.Square().Mul(e.P.NonResidue))
	normInv, ok := norm.Inverse()
	if !ok {
		return Fp2{}, false
	}
	return Fp2{P: e.P, C0: e.C0.Mul(normInv), C1: e.C1.Neg().Mul(normInv)}, true
}

// Pow raises e to a non-negative big.Int exponent via left-to-right
// square-and-multiply. Used at curve-parameter build time to derive
// Frobenius coefficient tables (gamma^((p^i-1)/d)) from a tower
// non-residue, rather than trusting hand-transcribed hex constants.
func (e Fp2) Pow(k *big.Int) Fp2 {
	base := e.C0.Params()
	result := Fp2{P: e.P, C0: base.One(), C1: base.Zero()}
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if k.Bit(i) == 1 {
			result = result.Mul(e)
		}
	}
	return result
}

// Frobenius raises e to the p^k power: conjugate-and-scale when k is odd,
// identity when k is even (since Fp2/Fp has degree 2).
func (e Fp2) Frobenius(k int) Fp2 {
	if k%2 == 0 {
		return e
	}
	return Fp2{P: e.P, C0: e.C0, C1: e.C1.Mul(e.P.FrobeniusCoeffC1[k%2])}
}

// Sgn0 returns the hash-to-curve sign: sgn0(c0) || (c0 == 0 && sgn0(c1)).
func (e Fp2) Sgn0() int {
	s0 := e.C0.Sgn0()
	zero0 := 0
	if e.C0.IsZero() {
		zero0 = 1
	}
	s1 := e.C1.Sgn0()
	return s0 | (zero0 & s1)
}

// IsSquare reports whether e is a quadratic residue in Fp2. When p = 3
// (mod 4) (true for every curve in this module) a is a QR in Fp2 iff its
// norm c0^2 - nu*c1^2 is a QR in Fp.
func (e Fp2) IsSquare() bool {
	if e.IsZero() {
		return true
	}
	norm := e.C0.Square().Sub(e.C1.Square().Mul(e.P.NonResidue))
	return norm.IsSquare()
}

// Sqrt returns a square root of e in Fp2 using the standard two-candidate
// construction over the norm, with a squaring-based verification of
// whichever candidate matches.
func (e Fp2) Sqrt() (Fp2, bool) {
	base := e.C0.Params()
	if e.IsZero() {
		return Fp2{P: e.P, C0: base.Zero(), C1: base.Zero()}, true
	}
	norm := e.C0.Square().Sub(e.C1.Square().Mul(e.P.NonResidue))
	if !norm.IsSquare() {
		return Fp2{}, false
	}
	sqrtNorm, ok := norm.Sqrt()
	if !ok {
		return Fp2{}, false
	}
	two := base.FromUint64(2)
	twoInv, _ := two.Inverse()

	for _, sign := range [2]fp.Element{sqrtNorm, sqrtNorm.Neg()} {
		x0 := e.C0.Add(sign).Mul(twoInv)
		if !x0.IsSquare() {
			continue
		}
		sqrtX0, ok := x0.Sqrt()
		if !ok {
			continue
		}
		twoSqrtX0 := sqrtX0.Double()
		twoSqrtX0Inv, ok := twoSqrtX0.Inverse()
		if !ok {
			continue
		}
		x1 := e.C1.Mul(twoSqrtX0Inv)
		candidate := Fp2{P: e.P, C0: sqrtX0, C1: x1}
		if candidate.Square().Equal(e) {
			return candidate, true
		}
	}
	return Fp2{}, false
}
