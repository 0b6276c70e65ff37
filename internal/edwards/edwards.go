// Package edwards implements the twisted-Edwards unified addition law
// a*x^2 + y^2 = 1 + d*x^2*y^2, used by Edwards-183's G1 (over Fp) and G2
// (over Fp3, since Edwards-183's G2 coordinates live directly in the cubic
// extension rather than a quadratic twist -- see internal/tower.Fp3).
// Unlike the short-Weierstrass curves (internal/group), a twisted-Edwards
// curve with square a and non-square d has a single addition formula
// that handles doubling without a separate case, which is why this curve
// family gets its own point type instead of reusing group.Point.
package edwards

import "github.com/nilfoundation/algebra/internal/group"

// Params bundles a twisted-Edwards curve's a, d coefficients and the
// coordinate field's zero/one elements.
type Params[F any] struct {
	A, D      F
	Zero, One F
}

// Point is a projective twisted-Edwards point (X:Y:Z) representing the
// affine point (X/Z, Y/Z). The identity is the affine point (0,1).
type Point[F group.Field[F]] struct {
	P       *Params[F]
	X, Y, Z F
}

// Infinity returns the identity element (0,1).
func Infinity[F group.Field[F]](p *Params[F]) Point[F] {
	return Point[F]{P: p, X: p.Zero, Y: p.One, Z: p.One}
}

// IsInfinity reports whether pt is the identity.
func (pt Point[F]) IsInfinity() bool {
	return pt.X.IsZero() && pt.Y.Equal(pt.Z)
}

// FromAffine lifts an affine (x, y) to projective coordinates.
func FromAffine[F group.Field[F]](p *Params[F], x, y F) Point[F] {
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
	return pt.X.Mul(zInv), pt.Y.Mul(zInv), true
}

// Neg returns -pt: the twisted-Edwards negation law (-x, y).
func (pt Point[F]) Neg() Point[F] {
	return Point[F]{P: pt.P, X: pt.X.Neg(), Y: pt.Y, Z: pt.Z}
}

// Equal reports whether pt and other represent the same affine point,
// compared cross-multiplication-style to avoid inversions.
func (pt Point[F]) Equal(other Point[F]) bool {
	return pt.X.Mul(other.Z).Equal(other.X.Mul(pt.Z)) && pt.Y.Mul(other.Z).Equal(other.Y.Mul(pt.Z))
}

// Add computes pt + other using the unified projective twisted-Edwards
// addition law (Hisil-Wong-Carter-Dawson "add-2008-bbjlp"), which also
// handles doubling -- there is no separate doubling branch the way
// short-Weierstrass Jacobian coordinates need one.
func (pt Point[F]) Add(other Point[F]) Point[F] {
	zz := pt.Z.Mul(other.Z)
	bb := zz.Square()
	c := pt.X.Mul(other.X)
	d := pt.Y.Mul(other.Y)
	e := pt.P.D.Mul(c).Mul(d)
	f := bb.Sub(e)
	g := bb.Add(e)
	x3 := zz.Mul(f).Mul(pt.X.Add(pt.Y).Mul(other.X.Add(other.Y)).Sub(c).Sub(d))
	y3 := zz.Mul(g).Mul(d.Sub(pt.P.A.Mul(c)))
	z3 := f.Mul(g)
	return Point[F]{P: pt.P, X: x3, Y: y3, Z: z3}
}

// Double returns pt + pt. Exposed separately from Add for interface
// symmetry with the Weierstrass curves' Point type, even though the
// unified law above already handles pt == other correctly.
func (pt Point[F]) Double() Point[F] {
	return pt.Add(pt)
}
