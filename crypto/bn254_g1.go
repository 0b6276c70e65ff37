package crypto

// BN254 G1 point operations over the curve y^2 = x^3 + 3 in F_p.
//
// G1Point keeps its historical *big.Int Jacobian field layout so every
// caller in this package (precompiles, pairing) is unaffected, but the
// group law itself is delegated to ecc/bn254's generic group.Point[fp.Element]
// rather than reimplemented here with hand-written Jacobian formulas.

import (
	"math/big"

	"github.com/nilfoundation/algebra/ecc/bn254"
	"github.com/nilfoundation/algebra/internal/group"
)

// G1Point represents a point on the BN254 G1 curve in Jacobian coordinates.
type G1Point struct {
	x, y, z *big.Int
}

func (p *G1Point) toGroup() bn254.G1Point {
	return bn254.G1Point{
		P: bn254.G1Generator().P,
		X: bnFpFrom(p.x), Y: bnFpFrom(p.y), Z: bnFpFrom(p.z),
	}
}

func fromGroupBnG1(pt bn254.G1Point) *G1Point {
	return &G1Point{x: pt.X.ToBigInt(), y: pt.Y.ToBigInt(), z: pt.Z.ToBigInt()}
}

// G1Generator returns the generator of G1: (1, 2).
func G1Generator() *G1Point {
	return fromGroupBnG1(bn254.G1Generator())
}

// G1Infinity returns the point at infinity.
func G1Infinity() *G1Point {
	return fromGroupBnG1(bn254.G1Infinity())
}

// Marshal serializes the G1 point to uncompressed affine bytes (64 bytes: X || Y).
func (p *G1Point) Marshal() []byte {
	if p.g1IsInfinity() {
		return make([]byte, 64)
	}
	ax, ay := p.g1ToAffine()
	out := make([]byte, 64)
	axBytes := ax.Bytes()
	ayBytes := ay.Bytes()
	copy(out[32-len(axBytes):32], axBytes)
	copy(out[64-len(ayBytes):64], ayBytes)
	return out
}

// g1IsInfinity returns true if the point is the identity (Z=0).
func (p *G1Point) g1IsInfinity() bool {
	return p.z.Sign() == 0
}

// g1FromAffine creates a Jacobian point from affine coordinates.
// (0,0) is treated as the point at infinity.
func g1FromAffine(x, y *big.Int) *G1Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return G1Infinity()
	}
	return fromGroupBnG1(group.FromAffine(bn254.G1Generator().P, bnFpFrom(x), bnFpFrom(y)))
}

// g1ToAffine converts Jacobian to affine coordinates. Returns (0,0) for infinity.
func (p *G1Point) g1ToAffine() (x, y *big.Int) {
	if p.g1IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	ax, ay, _ := p.toGroup().ToAffine()
	return ax.ToBigInt(), ay.ToBigInt()
}

// g1IsOnCurve checks if the affine point (x, y) is on y^2 = x^3 + 3.
// The point (0,0) is the identity and considered valid.
func g1IsOnCurve(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Sign() == 0 {
		return true
	}
	if x.Sign() < 0 || x.Cmp(bn254P) >= 0 {
		return false
	}
	if y.Sign() < 0 || y.Cmp(bn254P) >= 0 {
		return false
	}
	return bn254.IsOnG1Curve(group.FromAffine(bn254.G1Generator().P, bnFpFrom(x), bnFpFrom(y)))
}

// g1Add adds two G1 points in Jacobian coordinates.
func g1Add(a, b *G1Point) *G1Point {
	return fromGroupBnG1(a.toGroup().Add(b.toGroup()))
}

// g1Double doubles a G1 point in Jacobian coordinates.
func g1Double(a *G1Point) *G1Point {
	return fromGroupBnG1(a.toGroup().Double())
}

// G1ScalarMul computes k*P using windowed non-adjacent form recoding.
func G1ScalarMul(p *G1Point, k *big.Int) *G1Point {
	if k.Sign() == 0 || p.g1IsInfinity() {
		return G1Infinity()
	}
	kMod := new(big.Int).Mod(k, bn254N)
	if kMod.Sign() == 0 {
		return G1Infinity()
	}
	return fromGroupBnG1(p.toGroup().ScalarMulWNAF(kMod, 4))
}

// g1Neg returns -P.
func g1Neg(p *G1Point) *G1Point {
	return fromGroupBnG1(p.toGroup().Neg())
}
