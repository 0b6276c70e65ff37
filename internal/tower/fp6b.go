package tower

// Fp6BParams holds the non-residue (an Fp3 element) and Frobenius
// constants for Fp6B = Fp3[w]/(w^2 - NonResidue), the "2-over-3" tower used
// as GT by MNT6-298 and Edwards-183.
type Fp6BParams struct {
	NonResidue       Fp3
	FrobeniusCoeffC1 [6]Fp3
}

// Fp6B is an element c0 + c1*w of Fp3[w]/(w^2 - NonResidue).
type Fp6B struct {
	P      *Fp6BParams
	C0, C1 Fp3
}

// Zero returns the additive identity.
func (p *Fp6BParams) Zero(fp3zero Fp3) Fp6B { return Fp6B{P: p, C0: fp3zero, C1: fp3zero} }

// One returns the multiplicative identity.
func (p *Fp6BParams) One(fp3zero, fp3one Fp3) Fp6B { return Fp6B{P: p, C0: fp3one, C1: fp3zero} }

// IsZero reports whether e is the additive identity.
func (e Fp6B) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() }

// IsOne reports whether e is the multiplicative identity.
func (e Fp6B) IsOne() bool { return e.C0.IsOne() && e.C1.IsZero() }

// Equal reports component-wise equality.
func (e Fp6B) Equal(f Fp6B) bool { return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) }

// Add returns e + f.
func (e Fp6B) Add(f Fp6B) Fp6B { return Fp6B{P: e.P, C0: e.C0.Add(f.C0), C1: e.C1.Add(f.C1)} }

// Sub returns e - f.
func (e Fp6B) Sub(f Fp6B) Fp6B { return Fp6B{P: e.P, C0: e.C0.Sub(f.C0), C1: e.C1.Sub(f.C1)} }

// Neg returns -e.
func (e Fp6B) Neg() Fp6B { return Fp6B{P: e.P, C0: e.C0.Neg(), C1: e.C1.Neg()} }

// Conjugate returns c0 - c1*w: unitary inversion on MNT6/Edwards's
// cyclotomic subgroup coincides with this automorphism.
func (e Fp6B) Conjugate() Fp6B { return Fp6B{P: e.P, C0: e.C0, C1: e.C1.Neg()} }

// Mul returns e * f.
func (e Fp6B) Mul(f Fp6B) Fp6B {
	v0 := e.C0.Mul(f.C0)
	v1 := e.C1.Mul(f.C1)
	c0 := v0.Add(v1.Mul(e.P.NonResidue))
	c1 := e.C0.Add(e.C1).Mul(f.C0.Add(f.C1)).Sub(v0).Sub(v1)
	return Fp6B{P: e.P, C0: c0, C1: c1}
}

// Square returns e^2.
func (e Fp6B) Square() Fp6B {
	ab := e.C0.Mul(e.C1)
	c0 := e.C0.Add(e.C1).Mul(e.C0.Add(e.C1.Mul(e.P.NonResidue))).Sub(ab).Sub(ab.Mul(e.P.NonResidue))
	c1 := ab.Add(ab)
	return Fp6B{P: e.P, C0: c0, C1: c1}
}

// Inverse returns e^-1 via the norm-based formula over Fp3.
func (e Fp6B) Inverse() (Fp6B, bool) {
	norm := e.C0.Square().Sub(e.C1.Square().Mul(e.P.NonResidue))
	normInv, ok := norm.Inverse()
	if !ok {
		return Fp6B{}, false
	}
	return Fp6B{P: e.P, C0: e.C0.Mul(normInv), C1: e.C1.Neg().Mul(normInv)}, true
}

// Frobenius raises e to the p^k power.
func (e Fp6B) Frobenius(k int) Fp6B {
	k6 := ((k % 6) + 6) % 6
	return Fp6B{P: e.P, C0: e.C0.Frobenius(k6), C1: e.C1.Frobenius(k6).Mul(e.P.FrobeniusCoeffC1[k6])}
}

// CyclotomicSquare computes e^2 for e in the unitary subgroup of Fp6B^x
// (Conjugate(e)*e = 1). There c0^2 - xi*c1^2 = 1, collapsing squaring to
// one Fp3 square plus one Fp3 multiplication:
//
//	c0' = 2*c0^2 - 1
//	c1' = 2*c0*c1
func (e Fp6B) CyclotomicSquare() Fp6B {
	c0sq := e.C0.Square()
	c0c1 := e.C0.Mul(e.C1)
	newC1 := c0c1.Add(c0c1)
	base := e.C0.C0.Params()
	one := Fp3{P: e.C0.P, C0: base.One(), C1: base.Zero(), C2: base.Zero()}
	newC0 := c0sq.Add(c0sq).Sub(one)
	return Fp6B{P: e.P, C0: newC0, C1: newC1}
}

// UnitaryInverse returns e^-1 assuming e is unitary.
func (e Fp6B) UnitaryInverse() Fp6B { return e.Conjugate() }

func (e Fp6B) identity() Fp6B {
	base := e.C0.C0.Params()
	one := Fp3{P: e.C0.P, C0: base.One(), C1: base.Zero(), C2: base.Zero()}
	zero := Fp3{P: e.C0.P, C0: base.Zero(), C1: base.Zero(), C2: base.Zero()}
	return Fp6B{P: e.P, C0: one, C1: zero}
}

// CyclotomicExp raises e to a non-negative exponent given as big-endian
// bytes, via left-to-right cyclotomic squaring.
func (e Fp6B) CyclotomicExp(exp []byte) Fp6B {
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
