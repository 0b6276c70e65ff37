package tower

import "math/big"

// Fp6AParams holds the non-residue (an Fp2 element) and Frobenius constants
// for Fp6A = Fp2[v]/(v^3 - NonResidue), the "3-over-2" tower underlying GT
// for BLS12-381, BLS12-377 and BN254.
type Fp6AParams struct {
	NonResidue Fp2
	// FrobeniusCoeffC1[k mod 6], FrobeniusCoeffC2[k mod 6] multiply c1, c2
	// respectively when raising to p^k.
	FrobeniusCoeffC1 [6]Fp2
	FrobeniusCoeffC2 [6]Fp2
}

// Fp6A is an element c0 + c1*v + c2*v^2 of Fp2[v]/(v^3 - NonResidue).
type Fp6A struct {
	P          *Fp6AParams
	C0, C1, C2 Fp2
}

// Zero returns the additive identity.
func (p *Fp6AParams) Zero(fp2zero Fp2) Fp6A {
	return Fp6A{P: p, C0: fp2zero, C1: fp2zero, C2: fp2zero}
}

// One returns the multiplicative identity.
func (p *Fp6AParams) One(fp2zero, fp2one Fp2) Fp6A {
	return Fp6A{P: p, C0: fp2one, C1: fp2zero, C2: fp2zero}
}

// IsZero reports whether e is the additive identity.
func (e Fp6A) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() && e.C2.IsZero() }

// IsOne reports whether e is the multiplicative identity.
func (e Fp6A) IsOne() bool { return e.C0.IsOne() && e.C1.IsZero() && e.C2.IsZero() }

// Equal reports component-wise equality.
func (e Fp6A) Equal(f Fp6A) bool {
	return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) && e.C2.Equal(f.C2)
}

// Add returns e + f.
func (e Fp6A) Add(f Fp6A) Fp6A {
	return Fp6A{P: e.P, C0: e.C0.Add(f.C0), C1: e.C1.Add(f.C1), C2: e.C2.Add(f.C2)}
}

// Sub returns e - f.
func (e Fp6A) Sub(f Fp6A) Fp6A {
	return Fp6A{P: e.P, C0: e.C0.Sub(f.C0), C1: e.C1.Sub(f.C1), C2: e.C2.Sub(f.C2)}
}

// Neg returns -e.
func (e Fp6A) Neg() Fp6A {
	return Fp6A{P: e.P, C0: e.C0.Neg(), C1: e.C1.Neg(), C2: e.C2.Neg()}
}

// mulByNonResidue scales an Fp2 element by the sextic's Fp2 non-residue,
// i.e. performs the v-shift used to reduce the v^3 and v^4 terms.
func (e Fp6A) mulByNonResidue(x Fp2) Fp2 { return x.Mul(e.P.NonResidue) }

// MulByV shifts e up by one power of v: v*(c0 + c1 v + c2 v^2) =
// nu*c2 + c0 v + c1 v^2. Used by Fp12 multiplication.
func (e Fp6A) MulByV() Fp6A {
	return Fp6A{P: e.P, C0: e.mulByNonResidue(e.C2), C1: e.C0, C2: e.C1}
}

// Mul returns e * f via the Toom-Cook-3 style cubic product over Fp2.
func (e Fp6A) Mul(f Fp6A) Fp6A {
	t0 := e.C0.Mul(f.C0)
	t1 := e.C1.Mul(f.C1)
	t2 := e.C2.Mul(f.C2)

	c0 := t0.Add(e.mulByNonResidue(e.C1.Add(e.C2).Mul(f.C1.Add(f.C2)).Sub(t1).Sub(t2)))
	c1 := e.C0.Add(e.C1).Mul(f.C0.Add(f.C1)).Sub(t0).Sub(t1).Add(e.mulByNonResidue(t2))
	c2 := e.C0.Add(e.C2).Mul(f.C0.Add(f.C2)).Sub(t0).Sub(t2).Add(t1)
	return Fp6A{P: e.P, C0: c0, C1: c1, C2: c2}
}

// Square returns e * e.
func (e Fp6A) Square() Fp6A { return e.Mul(e) }

// Inverse returns e^-1 via the classic cubic-extension inverse.
func (e Fp6A) Inverse() (Fp6A, bool) {
	t0 := e.C0.Square()
	t1 := e.C1.Square()
	t2 := e.C2.Square()
	t3 := e.C0.Mul(e.C1)
	t4 := e.C0.Mul(e.C2)
	t5 := e.C1.Mul(e.C2)

	c0 := t0.Sub(e.mulByNonResidue(t5))
	c1 := e.mulByNonResidue(t2).Sub(t3)
	c2 := t1.Sub(t4)

	norm := e.C0.Mul(c0).Add(e.mulByNonResidue(e.C2.Mul(c1))).Add(e.mulByNonResidue(e.C1.Mul(c2)))
	normInv, ok := norm.Inverse()
	if !ok {
		return Fp6A{}, false
	}
	return Fp6A{P: e.P, C0: c0.Mul(normInv), C1: c1.Mul(normInv), C2: c2.Mul(normInv)}, true
}

// Pow raises e to a non-negative big.Int exponent via left-to-right
// square-and-multiply.
func (e Fp6A) Pow(k *big.Int) Fp6A {
	fp2P := e.C0.P
	base := e.C0.C0.Params()
	fp2zero := Fp2{P: fp2P, C0: base.Zero(), C1: base.Zero()}
	fp2one := Fp2{P: fp2P, C0: base.One(), C1: base.Zero()}
	result := Fp6A{P: e.P, C0: fp2one, C1: fp2zero, C2: fp2zero}
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if k.Bit(i) == 1 {
			result = result.Mul(e)
		}
	}
	return result
}

// Frobenius raises e to the p^k power.
func (e Fp6A) Frobenius(k int) Fp6A {
	k6 := ((k % 6) + 6) % 6
	return Fp6A{
		P:  e.P,
		C0: e.C0.Frobenius(k6),
		C1: e.C1.Frobenius(k6).Mul(e.P.FrobeniusCoeffC1[k6]),
		C2: e.C2.Frobenius(k6).Mul(e.P.FrobeniusCoeffC2[k6]),
	}
}
