package tower

// Fp4Params holds the non-residue (an Fp2 element) and Frobenius constants
// for Fp4 = Fp2[w]/(w^2 - NonResidue). Used only by MNT4-298, whose GT is
// this quadratic extension of Fp2 (the "2-over-2" tower).
type Fp4Params struct {
	NonResidue       Fp2
	FrobeniusCoeffC1 [4]Fp2
}

// Fp4 is an element c0 + c1*w of Fp2[w]/(w^2 - NonResidue).
type Fp4 struct {
	P      *Fp4Params
	C0, C1 Fp2
}

// Zero returns the additive identity.
func (p *Fp4Params) Zero(fp2zero Fp2) Fp4 {
	return Fp4{P: p, C0: fp2zero, C1: fp2zero}
}

// One returns the multiplicative identity.
func (p *Fp4Params) One(fp2zero, fp2one Fp2) Fp4 {
	return Fp4{P: p, C0: fp2one, C1: fp2zero}
}

// IsZero reports whether e is the additive identity.
func (e Fp4) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() }

// IsOne reports whether e is the multiplicative identity.
func (e Fp4) IsOne() bool { return e.C0.IsOne() && e.C1.IsZero() }

// Equal reports component-wise equality.
func (e Fp4) Equal(f Fp4) bool { return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) }

// Add returns e + f.
func (e Fp4) Add(f Fp4) Fp4 { return Fp4{P: e.P, C0: e.C0.Add(f.C0), C1: e.C1.Add(f.C1)} }

// Sub returns e - f.
func (e Fp4) Sub(f Fp4) Fp4 { return Fp4{P: e.P, C0: e.C0.Sub(f.C0), C1: e.C1.Sub(f.C1)} }

// Neg returns -e.
func (e Fp4) Neg() Fp4 { return Fp4{P: e.P, C0: e.C0.Neg(), C1: e.C1.Neg()} }

// Conjugate returns c0 - c1*w, the nontrivial Fp4/Fp2 automorphism; this
// is the "unitary inversion" used on MNT4's cyclotomic subgroup.
func (e Fp4) Conjugate() Fp4 { return Fp4{P: e.P, C0: e.C0, C1: e.C1.Neg()} }

// mulByNonResidue scales an Fp2 element by the quartic's non-residue.
func (e Fp4) mulByNonResidue(x Fp2) Fp2 { return x.Mul(e.P.NonResidue) }

// Mul returns e * f.
func (e Fp4) Mul(f Fp4) Fp4 {
	v0 := e.C0.Mul(f.C0)
	v1 := e.C1.Mul(f.C1)
	c0 := v0.Add(e.mulByNonResidue(v1))
	c1 := e.C0.Add(e.C1).Mul(f.C0.Add(f.C1)).Sub(v0).Sub(v1)
	return Fp4{P: e.P, C0: c0, C1: c1}
}

// Square returns e^2 via the complex-squaring trick.
func (e Fp4) Square() Fp4 {
	ab := e.C0.Mul(e.C1)
	c0 := e.C0.Add(e.C1).Mul(e.C0.Add(e.mulByNonResidue(e.C1))).Sub(ab).Sub(e.mulByNonResidue(ab))
	c1 := ab.Add(ab)
	return Fp4{P: e.P, C0: c0, C1: c1}
}

// Inverse returns e^-1 via the norm-based formula over Fp2.
func (e Fp4) Inverse() (Fp4, bool) {
	norm := e.C0.Square().Sub(e.mulByNonResidue(e.C1.Square()))
	normInv, ok := norm.Inverse()
	if !ok {
		return Fp4{}, false
	}
	return Fp4{P: e.P, C0: e.C0.Mul(normInv), C1: e.C1.Neg().Mul(normInv)}, true
}

// Frobenius raises e to the p^k power.
func (e Fp4) Frobenius(k int) Fp4 {
	k4 := ((k % 4) + 4) % 4
	inner := e.C0.Frobenius(k4)
	c1 := e.C1.Frobenius(k4).Mul(e.P.FrobeniusCoeffC1[k4])
	return Fp4{P: e.P, C0: inner, C1: c1}
}

// CyclotomicSquare computes e^2 for e in the unitary subgroup of Fp4^x
// (Conjugate(e)*e = 1, the subgroup MNT4's final-exponentiation hard part
// operates in). There c0^2 - xi*c1^2 = 1, so squaring collapses to one Fp2
// square plus one Fp2 multiplication:
//
//	c0' = 2*c0^2 - 1
//	c1' = 2*c0*c1
func (e Fp4) CyclotomicSquare() Fp4 {
	c0sq := e.C0.Square()
	c0c1 := e.C0.Mul(e.C1)
	newC1 := c0c1.Add(c0c1)
	base := e.C0.C0.Params()
	one := Fp2{P: e.C0.P, C0: base.One(), C1: base.Zero()}
	newC0 := c0sq.Add(c0sq).Sub(one)
	return Fp4{P: e.P, C0: newC0, C1: newC1}
}

// UnitaryInverse returns e^-1 assuming e is unitary (lies on the norm-1
// subgroup), where inversion coincides with conjugation.
func (e Fp4) UnitaryInverse() Fp4 { return e.Conjugate() }

// identity returns 1 + 0w, built from e's own base-field parameters.
func (e Fp4) identity() Fp4 {
	base := e.C0.C0.Params()
	one := Fp2{P: e.C0.P, C0: base.One(), C1: base.Zero()}
	zero := Fp2{P: e.C0.P, C0: base.Zero(), C1: base.Zero()}
	return Fp4{P: e.P, C0: one, C1: zero}
}

// CyclotomicExp raises e (assumed already in the cyclotomic subgroup) to a
// non-negative exponent given as big-endian bytes, via left-to-right
// cyclotomic squaring.
func (e Fp4) CyclotomicExp(exp []byte) Fp4 {
	result := e.identity()
	for _, b := range exp {
		for i := 7; i >= 0; i-- {
			result = result.CyclotomicSquare()
			if (b>>uint(i))&1 == 1 {
				result = result.Mul(e)
			}
		}
	}
	return result
}
