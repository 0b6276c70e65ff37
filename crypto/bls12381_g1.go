package crypto

// BLS12-381 G1 point operations over the curve y^2 = x^3 + 4 in F_p.
//
// BlsG1Point keeps its historical *big.Int Jacobian field layout so every
// caller in this package (precompiles, aggregation, the pure-Go BLS
// backend) is unaffected, but the group law itself is delegated to
// ecc/bls12381's generic group.Point[fp.Element] rather than reimplemented
// here with hand-written Jacobian formulas.

import (
	"math/big"

	"github.com/nilfoundation/algebra/ecc/bls12381"
	"github.com/nilfoundation/algebra/internal/group"
)

// BlsG1Point represents a point on the BLS12-381 G1 curve in Jacobian coordinates.
type BlsG1Point struct {
	x, y, z *big.Int
}

func (p *BlsG1Point) toGroup() bls12381.G1Point {
	return bls12381.G1Point{
		P: bls12381.G1Generator().P,
		X: blsFpFrom(p.x), Y: blsFpFrom(p.y), Z: blsFpFrom(p.z),
	}
}

func fromGroupG1(pt bls12381.G1Point) *BlsG1Point {
	return &BlsG1Point{x: pt.X.ToBigInt(), y: pt.Y.ToBigInt(), z: pt.Z.ToBigInt()}
}

// BlsG1Generator returns the generator of G1.
func BlsG1Generator() *BlsG1Point {
	return fromGroupG1(bls12381.G1Generator())
}

// BlsG1Infinity returns the point at infinity.
func BlsG1Infinity() *BlsG1Point {
	return fromGroupG1(bls12381.G1Infinity())
}

// blsG1IsInfinity returns true if the point is the identity (Z=0).
func (p *BlsG1Point) blsG1IsInfinity() bool {
	return p.z.Sign() == 0
}

// blsG1FromAffine creates a Jacobian point from affine coordinates.
// The all-zeros encoding represents the point at infinity.
func blsG1FromAffine(x, y *big.Int) *BlsG1Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return BlsG1Infinity()
	}
	return fromGroupG1(group.FromAffine(bls12381.G1Generator().P, blsFpFrom(x), blsFpFrom(y)))
}

// blsG1ToAffine converts Jacobian to affine coordinates.
// Returns (0,0) for infinity.
func (p *BlsG1Point) blsG1ToAffine() (x, y *big.Int) {
	if p.blsG1IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	ax, ay, _ := p.toGroup().ToAffine()
	return ax.ToBigInt(), ay.ToBigInt()
}

// blsG1IsOnCurve checks if the affine point (x, y) is on y^2 = x^3 + 4.
// The point (0,0) is the identity and considered valid.
func blsG1IsOnCurve(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Sign() == 0 {
		return true
	}
	if x.Sign() < 0 || x.Cmp(blsP) >= 0 {
		return false
	}
	if y.Sign() < 0 || y.Cmp(blsP) >= 0 {
		return false
	}
	return bls12381.IsOnG1Curve(group.FromAffine(bls12381.G1Generator().P, blsFpFrom(x), blsFpFrom(y)))
}

// blsG1Add adds two G1 points in Jacobian coordinates.
func blsG1Add(a, b *BlsG1Point) *BlsG1Point {
	return fromGroupG1(a.toGroup().Add(b.toGroup()))
}

// blsG1Double doubles a G1 point in Jacobian coordinates.
func blsG1Double(a *BlsG1Point) *BlsG1Point {
	return fromGroupG1(a.toGroup().Double())
}

// blsG1ScalarMul computes k*P using windowed non-adjacent form recoding.
func blsG1ScalarMul(p *BlsG1Point, k *big.Int) *BlsG1Point {
	if k.Sign() == 0 || p.blsG1IsInfinity() {
		return BlsG1Infinity()
	}
	kMod := new(big.Int).Mod(k, blsR)
	if kMod.Sign() == 0 {
		return BlsG1Infinity()
	}
	return fromGroupG1(p.toGroup().ScalarMulWNAF(kMod, 4))
}

// blsG1Neg returns -P.
func blsG1Neg(p *BlsG1Point) *BlsG1Point {
	return fromGroupG1(p.toGroup().Neg())
}

// blsG1InSubgroup checks if a point is in the r-torsion subgroup of G1.
func blsG1InSubgroup(p *BlsG1Point) bool {
	if p.blsG1IsInfinity() {
		return true
	}
	result := p.toGroup().ScalarMulWNAF(blsR, 4)
	return result.IsInfinity()
}
