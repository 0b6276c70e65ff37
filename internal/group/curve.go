// Package group implements Jacobian-coordinate elliptic curve point
// arithmetic shared by every G1/G2 instantiation in this module. The field
// type is abstracted behind the Field interface so the same Add/Double/
// ScalarMul code serves curves over Fp (G1 everywhere), Fp2 (G2 for
// BLS12-381/377 and BN254) and Fp3 (G2 for MNT6-298). Edwards-183 uses the
// twisted-Edwards addition law in its own package instead of this one.
package group

import (
	"math/big"

	"github.com/nilfoundation/algebra/internal/wnaf"
)

// Field is the minimal contract a coordinate field must satisfy for
// Jacobian-coordinate point arithmetic: a commutative ring with inverse,
// closed under the operations the curve formulas need.
type Field[F any] interface {
	Add(F) F
	Sub(F) F
	Neg() F
	Mul(F) F
	Square() F
	Double() F
	IsZero() bool
	Equal(F) bool
	Inverse() (F, bool)
}

// Params bundles a curve's Weierstrass coefficients (y^2 = x^3 + a*x + b)
// and the zero/one elements of the coordinate field, needed since F's
// zero value is not necessarily the field's additive identity.
type Params[F any] struct {
	A, B F
	Zero F
	One  F
}

// Point is a Jacobian-coordinate point (X, Y, Z) representing the affine
// point (X/Z^2, Y/Z^3). The identity is represented by Z == 0.
type Point[F Field[F]] struct {
	P    *Params[F]
	X, Y, Z F
}

// Infinity returns the point at infinity.
func Infinity[F Field[F]](p *Params[F]) Point[F] {
	return Point[F]{P: p, X: p.One, Y: p.One, Z: p.Zero}
}

// IsInfinity reports whether pt is the identity.
func (pt Point[F]) IsInfinity() bool { return pt.Z.IsZero() }

// FromAffine lifts an affine (x, y) to Jacobian coordinates.
func FromAffine[F Field[F]](p *Params[F], x, y F) Point[F] {
	return Point[F]{P: p, X: x, Y: y, Z: p.One}
}

// ToAffine converts pt to affine coordinates, returning (0,0) for infinity.
func (pt Point[F]) ToAffine() (F, F, bool) {
	if pt.IsInfinity() {
		return pt.P.Zero, pt.P.Zero, false
	}
	zInv, ok := pt.Z.Inverse()
	if !ok {
		return pt.P.Zero, pt.P.Zero, false
	}
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return pt.X.Mul(zInv2), pt.Y.Mul(zInv3), true
}

// Neg returns -pt.
func (pt Point[F]) Neg() Point[F] {
	return Point[F]{P: pt.P, X: pt.X, Y: pt.Y.Neg(), Z: pt.Z}
}

// Equal reports whether pt and other represent the same affine point,
// compared cross-multiplication-style to avoid inversions.
func (pt Point[F]) Equal(other Point[F]) bool {
	if pt.IsInfinity() || other.IsInfinity() {
		return pt.IsInfinity() == other.IsInfinity()
	}
	z1z1 := pt.Z.Square()
	z2z2 := other.Z.Square()
	if !pt.X.Mul(z2z2).Equal(other.X.Mul(z1z1)) {
		return false
	}
	z1cubed := z1z1.Mul(pt.Z)
	z2cubed := z2z2.Mul(other.Z)
	return pt.Y.Mul(z2cubed).Equal(other.Y.Mul(z1cubed))
}

// Double returns pt + pt using the standard Jacobian doubling formula
// specialized for a == 0 when P.A.IsZero(), falling back to the general
// a-aware formula otherwise (needed by MNT4/MNT6, whose twist coefficient
// a is non-zero).
func (pt Point[F]) Double() Point[F] {
	if pt.IsInfinity() || pt.Y.IsZero() {
		return Infinity(pt.P)
	}
	xx := pt.X.Square()
	yy := pt.Y.Square()
	yyyy := yy.Square()
	zz := pt.Z.Square()

	var m F
	if pt.P.A.IsZero() {
		m = xx.Double().Add(xx)
	} else {
		m = xx.Double().Add(xx).Add(pt.P.A.Mul(zz.Square()))
	}

	s := pt.Y.Mul(pt.Z).Double()
	t := pt.X.Add(yy)
	u := pt.X.Sub(yy)
	r := t.Square().Sub(u.Square())

	x3 := m.Square().Sub(r.Double())
	y3 := m.Mul(r.Sub(x3)).Sub(yyyy.Double().Double().Double())
	z3 := s

	return Point[F]{P: pt.P, X: x3, Y: y3, Z: z3}
}

// Add returns pt + other via the general Jacobian addition formula (does
// not assume either operand is affine).
func (pt Point[F]) Add(other Point[F]) Point[F] {
	if pt.IsInfinity() {
		return other
	}
	if other.IsInfinity() {
		return pt
	}

	z1z1 := pt.Z.Square()
	z2z2 := other.Z.Square()
	u1 := pt.X.Mul(z2z2)
	u2 := other.X.Mul(z1z1)
	z1cubed := z1z1.Mul(pt.Z)
	z2cubed := z2z2.Mul(other.Z)
	s1 := pt.Y.Mul(z2cubed)
	s2 := other.Y.Mul(z1cubed)

	if u1.Equal(u2) {
		if !s1.Equal(s2) {
			return Infinity(pt.P)
		}
		return pt.Double()
	}

	h := u2.Sub(u1)
	i := h.Double().Square()
	j := h.Mul(i)
	r := s2.Sub(s1).Double()
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Double())
	z3 := pt.Z.Mul(other.Z).Mul(h).Double()

	return Point[F]{P: pt.P, X: x3, Y: y3, Z: z3}
}

// MixedAdd returns pt + other where other is known to have Z == One,
// saving the squarings MixedAdd's callers (Miller loop accumulation and
// batch-converted fixed-base tables) would otherwise redo.
func (pt Point[F]) MixedAdd(other Point[F]) Point[F] {
	if pt.IsInfinity() {
		return other
	}
	if other.IsInfinity() {
		return pt
	}

	z1z1 := pt.Z.Square()
	u2 := other.X.Mul(z1z1)
	z1cubed := z1z1.Mul(pt.Z)
	s2 := other.Y.Mul(z1cubed)

	if pt.X.Equal(u2) {
		if !pt.Y.Equal(s2) {
			return Infinity(pt.P)
		}
		return pt.Double()
	}

	h := u2.Sub(pt.X)
	hh := h.Square()
	i := hh.Double().Double()
	j := h.Mul(i)
	r := s2.Sub(pt.Y).Double()
	v := pt.X.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(pt.Y.Mul(j).Double())
	z3 := pt.Z.Mul(h).Double()

	return Point[F]{P: pt.P, X: x3, Y: y3, Z: z3}
}

// ScalarMul returns k*pt via double-and-add over the big-endian bytes of
// k, left-to-right. Windowed/wNAF-based multiplication lives one layer up
// in the multiexp and wnaf packages; this is the unconditionally-correct
// baseline every faster path is checked against.
func (pt Point[F]) ScalarMul(k []byte) Point[F] {
	result := Infinity(pt.P)
	for _, b := range k {
		for i := 7; i >= 0; i-- {
			result = result.Double()
			if (b>>uint(i))&1 == 1 {
				result = result.Add(pt)
			}
		}
	}
	return result
}

// ScalarMulWNAF returns k*pt via windowed non-adjacent form recoding: an
// odd-multiple table of pt is built once, then the wNAF digits of k are
// walked most-significant first with one doubling per digit and at most
// one addition, instead of one addition per set bit of k. Worthwhile once
// window >= 2, since a width-2 NAF already halves the expected number of
// additions versus plain binary double-and-add.
func (pt Point[F]) ScalarMulWNAF(k *big.Int, window uint) Point[F] {
	if window < 2 {
		return pt.ScalarMul(k.Bytes())
	}
	if k.Sign() == 0 {
		return Infinity(pt.P)
	}

	digits := wnaf.Digits(k, window)

	tableSize := 1 << (window - 1)
	table := make([]Point[F], tableSize)
	table[0] = pt
	twice := pt.Double()
	for i := 1; i < tableSize; i++ {
		table[i] = table[i-1].Add(twice)
	}

	result := Infinity(pt.P)
	for i := len(digits) - 1; i >= 0; i-- {
		result = result.Double()
		d := digits[i]
		if d == 0 {
			continue
		}
		idx := d
		if idx < 0 {
			idx = -idx
		}
		term := table[(idx-1)/2]
		if d < 0 {
			term = term.Neg()
		}
		result = result.Add(term)
	}
	return result
}
