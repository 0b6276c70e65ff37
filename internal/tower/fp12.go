package tower

import "math/big"

// Fp12Params holds the Frobenius constants for
// Fp12 = Fp6A[w]/(w^2 - v), GT for BLS12-381, BLS12-377 and BN254.
type Fp12Params struct {
	FrobeniusCoeffC1 [12]Fp2
}

// Fp12 is an element c0 + c1*w of Fp6A[w]/(w^2 - v).
type Fp12 struct {
	P      *Fp12Params
	C0, C1 Fp6A
}

// Zero returns the additive identity.
func (p *Fp12Params) Zero(fp6zero Fp6A) Fp12 { return Fp12{P: p, C0: fp6zero, C1: fp6zero} }

// One returns the multiplicative identity.
func (p *Fp12Params) One(fp6zero, fp6one Fp6A) Fp12 { return Fp12{P: p, C0: fp6one, C1: fp6zero} }

// IsZero reports whether e is the additive identity.
func (e Fp12) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() }

// IsOne reports whether e is the multiplicative identity.
func (e Fp12) IsOne() bool { return e.C0.IsOne() && e.C1.IsZero() }

// Equal reports component-wise equality.
func (e Fp12) Equal(f Fp12) bool { return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) }

// Add returns e + f.
func (e Fp12) Add(f Fp12) Fp12 { return Fp12{P: e.P, C0: e.C0.Add(f.C0), C1: e.C1.Add(f.C1)} }

// Sub returns e - f.
func (e Fp12) Sub(f Fp12) Fp12 { return Fp12{P: e.P, C0: e.C0.Sub(f.C0), C1: e.C1.Sub(f.C1)} }

// Neg returns -e.
func (e Fp12) Neg() Fp12 { return Fp12{P: e.P, C0: e.C0.Neg(), C1: e.C1.Neg()} }

// Conjugate returns c0 - c1*w. On the order-r cyclotomic subgroup this
// coincides with inversion, which is exactly what makes UnitaryInverse
// below valid there and nowhere else.
func (e Fp12) Conjugate() Fp12 { return Fp12{P: e.P, C0: e.C0, C1: e.C1.Neg()} }

// UnitaryInverse is Conjugate, named for the cyclotomic-subgroup call
// sites where "this is an inverse, not just a conjugate" is the intent.
func (e Fp12) UnitaryInverse() Fp12 { return e.Conjugate() }

// Mul returns e * f using w^2 = v.
func (e Fp12) Mul(f Fp12) Fp12 {
	v0 := e.C0.Mul(f.C0)
	v1 := e.C1.Mul(f.C1)
	c0 := v0.Add(v1.MulByV())
	c1 := e.C0.Add(e.C1).Mul(f.C0.Add(f.C1)).Sub(v0).Sub(v1)
	return Fp12{P: e.P, C0: c0, C1: c1}
}

// Square returns e^2 via the complex-squaring trick over Fp6A.
func (e Fp12) Square() Fp12 {
	ab := e.C0.Mul(e.C1)
	c0 := e.C0.Add(e.C1).Mul(e.C0.Add(e.C1.MulByV())).Sub(ab).Sub(ab.MulByV())
	c1 := ab.Add(ab)
	return Fp12{P: e.P, C0: c0, C1: c1}
}

// Inverse returns e^-1 via the norm-based formula over Fp6A.
func (e Fp12) Inverse() (Fp12, bool) {
	norm := e.C0.Square().Sub(e.C1.Square().MulByV())
	normInv, ok := norm.Inverse()
	if !ok {
		return Fp12{}, false
	}
	return Fp12{P: e.P, C0: e.C0.Mul(normInv), C1: e.C1.Neg().Mul(normInv)}, true
}

// Frobenius raises e to the p^k power: full Fp6A Frobenius on both C0 and
// C1 (which already applies the ζ1/ζ2 coefficients to the v/v^2 limbs
// internally), then the degree-12 Frobenius coefficient scaling C1 as a
// whole for the w limb.
func (e Fp12) Frobenius(k int) Fp12 {
	k12 := ((k % 12) + 12) % 12
	c1f := e.C1.Frobenius(k12)
	c1 := Fp6A{
		P:  c1f.P,
		C0: c1f.C0.Mul(e.P.FrobeniusCoeffC1[k12]),
		C1: c1f.C1.Mul(e.P.FrobeniusCoeffC1[k12]),
		C2: c1f.C2.Mul(e.P.FrobeniusCoeffC1[k12]),
	}
	return Fp12{P: e.P, C0: e.C0.Frobenius(k12), C1: c1}
}

// Pow returns e^k for a non-negative exponent k, via left-to-right
// square-and-multiply. Unlike CyclotomicExp this works for any e, not
// just elements already reduced into the cyclotomic subgroup.
func (e Fp12) Pow(k *big.Int) Fp12 {
	result := e.identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if k.Bit(i) == 1 {
			result = result.Mul(e)
		}
	}
	return result
}

// fp6Zero and fp6One build the Fp6A additive/multiplicative identities
// from e's own field parameters, without requiring the caller to thread
// them through separately.
func (e Fp12) fp6Zero() Fp6A {
	fp2P := e.C0.C0.P
	base := e.C0.C0.C0.Params()
	fp2zero := Fp2{P: fp2P, C0: base.Zero(), C1: base.Zero()}
	return Fp6A{P: e.C0.P, C0: fp2zero, C1: fp2zero, C2: fp2zero}
}

func (e Fp12) fp6One() Fp6A {
	fp2P := e.C0.C0.P
	base := e.C0.C0.C0.Params()
	fp2zero := Fp2{P: fp2P, C0: base.Zero(), C1: base.Zero()}
	fp2one := Fp2{P: fp2P, C0: base.One(), C1: base.Zero()}
	return Fp6A{P: e.C0.P, C0: fp2one, C1: fp2zero, C2: fp2zero}
}

// CyclotomicSquare computes e^2 for e in the order-(p^6+1) unitary subgroup
// of Fp12^x, the subgroup satisfying Conjugate(e)*e = 1 that the easy part
// of final exponentiation lands in. There c0^2 - v*c1^2 = 1, which collapses
// squaring to one Fp6A square plus one Fp6A multiplication in place of the
// two Fp6A multiplications the generic Square needs:
//
//	c0' = 2*c0^2 - 1
//	c1' = 2*c0*c1
func (e Fp12) CyclotomicSquare() Fp12 {
	c0sq := e.C0.Square()
	c0c1 := e.C0.Mul(e.C1)
	newC1 := c0c1.Add(c0c1)
	newC0 := c0sq.Add(c0sq).Sub(e.fp6One())
	return Fp12{P: e.P, C0: newC0, C1: newC1}
}

func (e Fp12) identity() Fp12 {
	return Fp12{P: e.P, C0: e.fp6One(), C1: e.fp6Zero()}
}

// CyclotomicExp raises e (assumed already in the cyclotomic subgroup) to a
// non-negative exponent given as big-endian bytes, via left-to-right
// cyclotomic squaring -- the "exp_by_z" building block every BLS12/BN
// final-exponentiation hard part is built from.
func (e Fp12) CyclotomicExp(exp []byte) Fp12 {
	result := e.identity()
	started := false
	for _, b := range exp {
		for i := 7; i >= 0; i-- {
			if started {
				result = result.CyclotomicSquare()
			}
			if (b>>uint(i))&1 == 1 {
				if !started {
					result = e
					started = true
					continue
				}
				result = result.Mul(e)
			}
		}
	}
	if !started {
		return e.identity()
	}
	return result
}

// fp6aMulBySparse02 multiplies e by the Fp6A element (d0, 0, d2), skipping
// every product that a zero middle coefficient would make zero.
func fp6aMulBySparse02(e Fp6A, d0, d2 Fp2) Fp6A {
	t0 := e.C0.Mul(d0)
	t2 := e.C2.Mul(d2)
	c0 := t0.Add(e.mulByNonResidue(e.C1.Add(e.C2).Mul(d2).Sub(t2)))
	c1 := e.C0.Add(e.C1).Mul(d0).Sub(t0).Add(e.mulByNonResidue(t2))
	c2 := e.C0.Add(e.C2).Mul(d0.Add(d2)).Sub(t0).Sub(t2)
	return Fp6A{P: e.P, C0: c0, C1: c1, C2: c2}
}

// fp6aMulBySparse0 multiplies e by the Fp6A element (d0, 0, 0).
func fp6aMulBySparse0(e Fp6A, d0 Fp2) Fp6A {
	t0 := e.C0.Mul(d0)
	c1 := e.C0.Add(e.C1).Mul(d0).Sub(t0)
	c2 := e.C0.Add(e.C2).Mul(d0).Sub(t0)
	return Fp6A{P: e.P, C0: t0, C1: c1, C2: c2}
}

// MulBy024 multiplies e by the sparse Fp12 element whose only non-zero
// coefficients (in the flattened 6-tuple (c0.c0, c0.c1, c0.c2, c1.c0,
// c1.c1, c1.c2) basis) sit at positions 0, 2 and 4 -- the structural shape
// of a Miller-loop line-function evaluation: ell0 at c0.c0, ellVV at
// c0.c2, ellVW at c1.c1. The products of e.C0 by (ell0, 0, ellVV) and of
// e.C1 by (0, ellVW, 0) drop every product against a known-zero
// coefficient; only the Karatsuba cross term multiplies by the dense sum
// (ell0, ellVW, ellVV) through the general Fp6A Mul.
func (e Fp12) MulBy024(ell0, ellVW, ellVV Fp2) Fp12 {
	v0 := fp6aMulBySparse02(e.C0, ell0, ellVV)
	v1 := fp6aMulBySparse0(e.C1, ellVW).MulByV()
	newC0 := v0.Add(v1.MulByV())
	dense := Fp6A{P: e.C0.P, C0: ell0, C1: ellVW, C2: ellVV}
	newC1 := e.C0.Add(e.C1).Mul(dense).Sub(v0).Sub(v1)
	return Fp12{P: e.P, C0: newC0, C1: newC1}
}
