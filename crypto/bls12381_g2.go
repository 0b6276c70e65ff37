package crypto

// BLS12-381 G2 point operations over the twist curve y^2 = x^3 + 4(1+u)
// in F_p^2 where F_p^2 = F_p[u]/(u^2+1).
//
// BlsG2Point keeps its historical blsFp2-coordinate Jacobian layout, but
// the group law delegates to ecc/bls12381's generic group.Point[tower.Fp2]
// rather than reimplementing the Jacobian formulas over *blsFp2 directly.

import (
	"math/big"

	"github.com/nilfoundation/algebra/ecc/bls12381"
	"github.com/nilfoundation/algebra/internal/group"
)

// BlsG2Point represents a point on the BLS12-381 G2 twisted curve.
type BlsG2Point struct {
	x, y, z *blsFp2
}

// BLS12-381 twist curve coefficient: b' = 4(1+u)
var blsTwistB = &blsFp2{
	c0: big.NewInt(4),
	c1: big.NewInt(4),
}

func (p *BlsG2Point) toGroup() bls12381.G2Point {
	return bls12381.G2Point{
		P: bls12381.G2Generator().P,
		X: p.x.toTower(), Y: p.y.toTower(), Z: p.z.toTower(),
	}
}

func fromGroupG2(pt bls12381.G2Point) *BlsG2Point {
	return &BlsG2Point{x: fromTowerFp2(pt.X), y: fromTowerFp2(pt.Y), z: fromTowerFp2(pt.Z)}
}

// BlsG2Generator returns the generator of G2.
func BlsG2Generator() *BlsG2Point {
	return fromGroupG2(bls12381.G2Generator())
}

// BlsG2Infinity returns the point at infinity for G2.
func BlsG2Infinity() *BlsG2Point {
	return fromGroupG2(bls12381.G2Infinity())
}

func (p *BlsG2Point) blsG2IsInfinity() bool {
	return p.z.isZero()
}

// blsG2FromAffine creates a G2 point from affine coordinates.
func blsG2FromAffine(x, y *blsFp2) *BlsG2Point {
	if x.isZero() && y.isZero() {
		return BlsG2Infinity()
	}
	return fromGroupG2(group.FromAffine(bls12381.G2Generator().P, x.toTower(), y.toTower()))
}

// blsG2ToAffine converts from Jacobian to affine coordinates.
func (p *BlsG2Point) blsG2ToAffine() (x, y *blsFp2) {
	if p.blsG2IsInfinity() {
		return blsFp2Zero(), blsFp2Zero()
	}
	ax, ay, _ := p.toGroup().ToAffine()
	return fromTowerFp2(ax), fromTowerFp2(ay)
}

// blsG2IsOnCurve checks if the affine point is on y^2 = x^3 + 4(1+u).
func blsG2IsOnCurve(x, y *blsFp2) bool {
	if x.isZero() && y.isZero() {
		return true
	}
	xr0 := new(big.Int).Mod(x.c0, blsP)
	xr1 := new(big.Int).Mod(x.c1, blsP)
	yr0 := new(big.Int).Mod(y.c0, blsP)
	yr1 := new(big.Int).Mod(y.c1, blsP)
	if xr0.Cmp(x.c0) != 0 || xr1.Cmp(x.c1) != 0 {
		return false
	}
	if yr0.Cmp(y.c0) != 0 || yr1.Cmp(y.c1) != 0 {
		return false
	}
	return bls12381.IsOnG2Curve(group.FromAffine(bls12381.G2Generator().P, x.toTower(), y.toTower()))
}

// blsG2Add adds two G2 points in Jacobian coordinates.
func blsG2Add(a, b *BlsG2Point) *BlsG2Point {
	return fromGroupG2(a.toGroup().Add(b.toGroup()))
}

// blsG2Double doubles a G2 point in Jacobian coordinates.
func blsG2Double(a *BlsG2Point) *BlsG2Point {
	return fromGroupG2(a.toGroup().Double())
}

// blsG2Neg returns -P.
func blsG2Neg(p *BlsG2Point) *BlsG2Point {
	return fromGroupG2(p.toGroup().Neg())
}

// blsG2ScalarMul computes k*P for a G2 point via windowed NAF.
func blsG2ScalarMul(p *BlsG2Point, k *big.Int) *BlsG2Point {
	if k.Sign() == 0 || p.blsG2IsInfinity() {
		return BlsG2Infinity()
	}
	kMod := new(big.Int).Mod(k, blsR)
	if kMod.Sign() == 0 {
		return BlsG2Infinity()
	}
	return fromGroupG2(p.toGroup().ScalarMulWNAF(kMod, 4))
}

// blsG2InSubgroup checks if a point is in the r-torsion subgroup of G2.
func blsG2InSubgroup(p *BlsG2Point) bool {
	if p.blsG2IsInfinity() {
		return true
	}
	result := p.toGroup().ScalarMulWNAF(blsR, 4)
	return result.IsInfinity()
}
