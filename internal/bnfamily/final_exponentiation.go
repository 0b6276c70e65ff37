// Package bnfamily implements the BN-curve (alt_bn128 family) final
// exponentiation hard part: the 22-step Beuchat et al. addition chain,
// built around three exp_by_neg_z calls, shared by every BN-style curve this
// module supports.
package bnfamily

import "math/big"

// GT is the minimal contract the target group of a BN pairing must
// satisfy for the hard part to run.
type GT[T any] interface {
	Mul(T) T
	Conjugate() T
	UnitaryInverse() T
	CyclotomicSquare() T
	CyclotomicExp(exp []byte) T
	Frobenius(k int) T
	Inverse() (T, bool)
}

// Seed carries the BN seed z (as a non-negative magnitude) and its sign.
type Seed struct {
	Z    *big.Int
	ZNeg bool
}

// expByNegZ computes elt^(-z) when the seed is negative, or elt^(-z) via
// an explicit unitary inversion when it is positive -- exp_by_neg_z in
// the original always returns the *negated* exponent, regardless of the
// seed's own sign.
func expByNegZ[T GT[T]](elt T, seed Seed) T {
	result := elt.CyclotomicExp(seed.Z.Bytes())
	if !seed.ZNeg {
		result = result.UnitaryInverse()
	}
	return result
}

// FirstChunk computes elt^((q^6-1)*(q^2+1)) via (conj(elt)*elt^-1)^(q^2+1).
func FirstChunk[T GT[T]](elt T) T {
	a := elt.Conjugate()
	b, _ := elt.Inverse()
	c := a.Mul(b)
	d := c.Frobenius(2)
	return d.Mul(c)
}

// LastChunk computes elt^(2z*(6z^2+3z+1)*(q^4-q^2+1)/r) following Fuentes-
// Castaneda et al. "Faster hashing to G2", via the 22-step chain.
func LastChunk[T GT[T]](elt T, seed Seed) T {
	a := expByNegZ(elt, seed)
	b := a.CyclotomicSquare()
	c := b.CyclotomicSquare()
	d := c.Mul(b)
	e := expByNegZ(d, seed)
	f := e.CyclotomicSquare()
	g := expByNegZ(f, seed)
	h := d.UnitaryInverse()
	i := g.UnitaryInverse()
	j := i.Mul(e)
	k := j.Mul(h)
	l := k.Mul(b)
	m := k.Mul(e)
	n := m.Mul(elt)
	o := l.Frobenius(1)
	p := o.Mul(n)
	q := k.Frobenius(2)
	r := q.Mul(p)
	s := elt.UnitaryInverse()
	t := s.Mul(l)
	u := t.Frobenius(3)
	v := u.Mul(r)
	return v
}

// FinalExponentiation computes elt^((q^12-1)/r).
func FinalExponentiation[T GT[T]](elt T, seed Seed) T {
	return LastChunk(FirstChunk(elt), seed)
}
