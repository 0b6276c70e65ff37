package tower

import (
	"math/big"

	"github.com/nilfoundation/algebra/internal/fp"
)

// Fp3Params holds the non-residue and Frobenius constants for
// Fp3 = Fp[v]/(v^3 - NonResidue). Used by MNT6-298 and Edwards-183, whose
// G2 coordinates live directly in this cubic extension (the "2-over-3"
// tower: GT for these curves is Fp6B = Fp3[w]/(w^2-v), not a sextic twist
// of a quadratic extension).
type Fp3Params struct {
	NonResidue fp.Element
	// FrobeniusCoeffC1[k mod 3], FrobeniusCoeffC2[k mod 3] multiply c1, c2
	// respectively when raising to p^k.
	FrobeniusCoeffC1 [3]fp.Element
	FrobeniusCoeffC2 [3]fp.Element
}

// Fp3 is an element c0 + c1*v + c2*v^2 of Fp[v]/(v^3 - NonResidue).
type Fp3 struct {
	P          *Fp3Params
	C0, C1, C2 fp.Element
}

// Zero returns the additive identity.
func (p *Fp3Params) Zero(base *fp.Params) Fp3 {
	return Fp3{P: p, C0: base.Zero(), C1: base.Zero(), C2: base.Zero()}
}

// One returns the multiplicative identity.
func (p *Fp3Params) One(base *fp.Params) Fp3 {
	return Fp3{P: p, C0: base.One(), C1: base.Zero(), C2: base.Zero()}
}

// IsZero reports whether e is the additive identity.
func (e Fp3) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() && e.C2.IsZero() }

// IsOne reports whether e is the multiplicative identity.
func (e Fp3) IsOne() bool { return e.C0.IsOne() && e.C1.IsZero() && e.C2.IsZero() }

// Equal reports component-wise equality.
func (e Fp3) Equal(f Fp3) bool {
	return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) && e.C2.Equal(f.C2)
}

// Add returns e + f.
func (e Fp3) Add(f Fp3) Fp3 {
	return Fp3{P: e.P, C0: e.C0.Add(f.C0), C1: e.C1.Add(f.C1), C2: e.C2.Add(f.C2)}
}

// Sub returns e - f.
func (e Fp3) Sub(f Fp3) Fp3 {
	return Fp3{P: e.P, C0: e.C0.Sub(f.C0), C1: e.C1.Sub(f.C1), C2: e.C2.Sub(f.C2)}
}

// Neg returns -e.
func (e Fp3) Neg() Fp3 {
	return Fp3{P: e.P, C0: e.C0.Neg(), C1: e.C1.Neg(), C2: e.C2.Neg()}
}

// Double returns e + e.
func (e Fp3) Double() Fp3 {
	return Fp3{P: e.P, C0: e.C0.Double(), C1: e.C1.Double(), C2: e.C2.Double()}
}

// MulByNonResidue scales e by the cubic's non-residue, i.e. computes
// v * e "shifted" -- used when reducing the v^3 term back into c0.
func (e Fp3) MulByNonResidue() Fp3 {
	// v*(c0 + c1 v + c2 v^2) = c2*nu + c0*v + c1*v^2
	return Fp3{P: e.P, C0: e.C2.Mul(e.P.NonResidue), C1: e.C0, C2: e.C1}
}

// Mul returns e * f via the Toom-Cook-3 style cubic extension product.
func (e Fp3) Mul(f Fp3) Fp3 {
	nu := e.P.NonResidue
	t0 := e.C0.Mul(f.C0)
	t1 := e.C1.Mul(f.C1)
	t2 := e.C2.Mul(f.C2)

	c0 := t0.Add(e.C1.Add(e.C2).Mul(f.C1.Add(f.C2)).Sub(t1).Sub(t2).Mul(nu))
	c1 := e.C0.Add(e.C1).Mul(f.C0.Add(f.C1)).Sub(t0).Sub(t1).Add(t2.Mul(nu))
	c2 := e.C0.Add(e.C2).Mul(f.C0.Add(f.C2)).Sub(t0).Sub(t2).Add(t1)
	return Fp3{P: e.P, C0: c0, C1: c1, C2: c2}
}

// Square returns e * e.
func (e Fp3) Square() Fp3 { return e.Mul(e) }

// Inverse returns e^-1 via the classic cubic-extension inverse (invert the
// 3x3 "resultant" and recombine), falling back to failure when the norm is
// non-invertible (only happens for e == 0).
func (e Fp3) Inverse() (Fp3, bool) {
	nu := e.P.NonResidue
	t0 := e.C0.Square()
	t1 := e.C1.Square()
	t2 := e.C2.Square()
	t3 := e.C0.Mul(e.C1)
	t4 := e.C0.Mul(e.C2)
	t5 := e.C1.Mul(e.C2)

	c0 := t0.Sub(t5.Mul(nu))
	c1 := t2.Mul(nu).Sub(t3)
	c2 := t1.Sub(t4)

	norm := e.C0.Mul(c0).Add(e.C2.Mul(c1).Mul(nu)).Add(e.C1.Mul(c2).Mul(nu))
	normInv, ok := norm.Inverse()
	if !ok {
		return Fp3{}, false
	}
	return Fp3{P: e.P, C0: c0.Mul(normInv), C1: c1.Mul(normInv), C2: c2.Mul(normInv)}, true
}

// Pow raises e to a non-negative big.Int exponent via left-to-right
// square-and-multiply, used to bootstrap Frobenius coefficient tables.
func (e Fp3) Pow(k *big.Int) Fp3 {
	result := e.P.One(e.C0.Params())
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if k.Bit(i) == 1 {
			result = result.Mul(e)
		}
	}
	return result
}

// Frobenius raises e to the p^k power: component-wise Frobenius on the
// (ground-field-identity) limbs plus multiplication by the precomputed
// degree-3 Frobenius coefficients.
func (e Fp3) Frobenius(k int) Fp3 {
	k3 := ((k % 3) + 3) % 3
	if k3 == 0 {
		return e
	}
	return Fp3{
		P:  e.P,
		C0: e.C0,
		C1: e.C1.Mul(e.P.FrobeniusCoeffC1[k3]),
		C2: e.C2.Mul(e.P.FrobeniusCoeffC2[k3]),
	}
}
