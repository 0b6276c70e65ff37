// Package blsfamily implements the final-exponentiation hard part shared
// by every BLS12 curve: BLS12-381 and BLS12-377 differ only in their seed
// z and curve constants, so the addition chain itself -- an invariant,
// fixed sequence of multiplications, cyclotomic squarings and Frobenius
// maps computing elt^(3*(q^4-q^2+1)/r) -- lives here once rather than being
// duplicated per curve.
package blsfamily

import "math/big"

// GT is the minimal contract the order-q^12-1 target group of a BLS12
// pairing must satisfy for the hard part below to run. Every concrete
// Fp12 instantiation (one per curve, since each carries its own modulus
// and tower parameters) implements this directly.
type GT[T any] interface {
	Mul(T) T
	Conjugate() T
	UnitaryInverse() T
	CyclotomicSquare() T
	CyclotomicExp(exp []byte) T
	Frobenius(k int) T
	Inverse() (T, bool)
}

// Seed carries the two curve-specific knobs the hard part needs: the BLS
// seed z (always given as a non-negative magnitude) and its sign.
type Seed struct {
	Z    *big.Int
	ZNeg bool
}

func expByZ[T GT[T]](elt T, seed Seed) T {
	result := elt.CyclotomicExp(seed.Z.Bytes())
	if seed.ZNeg {
		result = result.UnitaryInverse()
	}
	return result
}

// FirstChunk computes elt^((q^6-1)*(q^2+1)) following Beuchat et al. p.9:
// conj(elt)*elt^-1, raised to q^2+1 via one Frobenius(2) and a multiply.
func FirstChunk[T GT[T]](elt T) T {
	a := elt.UnitaryInverse()
	b, _ := elt.Inverse()
	c := a.Mul(b)
	d := c.Frobenius(2)
	return d.Mul(c)
}

// LastChunk computes elt^(3*(q^4-q^2+1)/r) given elt already raised through
// FirstChunk, via an addition chain with five exp_by_z calls.
func LastChunk[T GT[T]](elt T, seed Seed) T {
	a := elt.CyclotomicSquare() // elt^2
	b := a.UnitaryInverse()     // elt^-2
	c := expByZ(elt, seed)      // elt^z
	d := c.CyclotomicSquare()   // elt^(2z)
	e := b.Mul(c)               // elt^(z-2)
	f := expByZ(e, seed)        // elt^(z^2-2z)
	g := expByZ(f, seed)        // elt^(z^3-2z^2)
	h := expByZ(g, seed)        // elt^(z^4-2z^3)
	i := h.Mul(d)            // elt^(z^4-2z^3+2z)
	j := expByZ(i, seed)     // elt^(z^5-2z^4+2z^2)
	k := e.UnitaryInverse()  // elt^(-z+2)
	l := k.Mul(j)
	m := elt.Mul(l)
	n := elt.UnitaryInverse() // elt^-1
	o := f.Mul(elt)
	p := o.Frobenius(3)
	q := i.Mul(n)
	r := q.Frobenius(1)
	s := c.Mul(g)
	t := s.Frobenius(2)
	u := t.Mul(p)
	v := u.Mul(r)
	w := v.Mul(m)
	return w
}

// FinalExponentiation computes elt^((q^12-1)/r): the easy part (FirstChunk)
// composed with the hard part (LastChunk).
func FinalExponentiation[T GT[T]](elt T, seed Seed) T {
	return LastChunk(FirstChunk(elt), seed)
}
