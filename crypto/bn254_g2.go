package crypto

// BN254 G2 point operations over the twisted curve y^2 = x^3 + 3/(9+i)
// in F_p^2.
//
// The twist maps G2 points from E'(F_p^2) to E(F_p^12). G2Point keeps its
// historical Jacobian *fp2 field layout, but the group law is delegated
// to ecc/bn254's generic group.Point[tower.Fp2].

import (
	"math/big"

	"github.com/nilfoundation/algebra/ecc/bn254"
	"github.com/nilfoundation/algebra/internal/group"
)

// G2Point represents a point on the BN254 G2 twisted curve.
type G2Point struct {
	x, y, z *fp2
}

// G2 generator point coordinates, exposed for test vectors that build raw
// precompile input byte strings.
var (
	g2GenXa0, _ = new(big.Int).SetString("10857046999023057135944570762232829481370756359578518086990519993285655852781", 10)
	g2GenXa1, _ = new(big.Int).SetString("11559732032986387107991004021392285783925812861821192530917403151452391805634", 10)
	g2GenYa0, _ = new(big.Int).SetString("8495653923123431417604973247489272438418190587263600148770280649306958101930", 10)
	g2GenYa1, _ = new(big.Int).SetString("4082367875863433681332203403145435568316851327593401208105741076214120093531", 10)
)

func (p *G2Point) toGroup() bn254.G2Point {
	return bn254.G2Point{
		P: bn254.G2Generator().P,
		X: p.x.toTower(), Y: p.y.toTower(), Z: p.z.toTower(),
	}
}

func fromGroupBnG2(pt bn254.G2Point) *G2Point {
	return &G2Point{x: fromTowerBnFp2(pt.X), y: fromTowerBnFp2(pt.Y), z: fromTowerBnFp2(pt.Z)}
}

// G2Generator returns the generator of G2.
func G2Generator() *G2Point {
	return fromGroupBnG2(bn254.G2Generator())
}

// G2Infinity returns the point at infinity for G2.
func G2Infinity() *G2Point {
	return fromGroupBnG2(bn254.G2Infinity())
}

func (p *G2Point) g2IsInfinity() bool {
	return p.z.isZero()
}

// g2FromAffine creates a G2 point from affine coordinates.
func g2FromAffine(x, y *fp2) *G2Point {
	if x.isZero() && y.isZero() {
		return G2Infinity()
	}
	return fromGroupBnG2(group.FromAffine(bn254.G2Generator().P, x.toTower(), y.toTower()))
}

// g2ToAffine converts from Jacobian to affine coordinates.
func (p *G2Point) g2ToAffine() (x, y *fp2) {
	if p.g2IsInfinity() {
		return fp2Zero(), fp2Zero()
	}
	ax, ay, _ := p.toGroup().ToAffine()
	return fromTowerBnFp2(ax), fromTowerBnFp2(ay)
}

// g2IsOnCurve checks if the affine point is on y^2 = x^3 + b'.
func g2IsOnCurve(x, y *fp2) bool {
	if x.isZero() && y.isZero() {
		return true
	}
	xr0 := new(big.Int).Mod(x.a0, bn254P)
	xr1 := new(big.Int).Mod(x.a1, bn254P)
	yr0 := new(big.Int).Mod(y.a0, bn254P)
	yr1 := new(big.Int).Mod(y.a1, bn254P)
	if xr0.Cmp(x.a0) != 0 || xr1.Cmp(x.a1) != 0 {
		return false
	}
	if yr0.Cmp(y.a0) != 0 || yr1.Cmp(y.a1) != 0 {
		return false
	}
	return bn254.IsOnG2Curve(group.FromAffine(bn254.G2Generator().P, x.toTower(), y.toTower()))
}

// g2IsOnCurveSubgroup checks if a G2 point is on the twist curve and in
// the n-torsion subgroup (n*P is the identity); (0,0) encodes infinity.
func g2IsOnCurveSubgroup(x, y *fp2) bool {
	if !g2IsOnCurve(x, y) {
		return false
	}
	if x.isZero() && y.isZero() {
		return true
	}
	pt := group.FromAffine(bn254.G2Generator().P, x.toTower(), y.toTower())
	return pt.ScalarMulWNAF(bn254.ScalarField.Modulus, 4).IsInfinity()
}

// g2Add adds two G2 points in Jacobian coordinates.
func g2Add(a, b *G2Point) *G2Point {
	return fromGroupBnG2(a.toGroup().Add(b.toGroup()))
}

// g2Double doubles a G2 point in Jacobian coordinates.
func g2Double(a *G2Point) *G2Point {
	return fromGroupBnG2(a.toGroup().Double())
}

// g2ScalarMul computes k*P for a G2 point using windowed non-adjacent form recoding.
func g2ScalarMul(p *G2Point, k *big.Int) *G2Point {
	if k.Sign() == 0 || p.g2IsInfinity() {
		return G2Infinity()
	}
	kMod := new(big.Int).Mod(k, bn254N)
	if kMod.Sign() == 0 {
		return G2Infinity()
	}
	return fromGroupBnG2(p.toGroup().ScalarMulWNAF(kMod, 4))
}

// g2Neg returns -P.
func g2Neg(p *G2Point) *G2Point {
	return fromGroupBnG2(p.toGroup().Neg())
}
