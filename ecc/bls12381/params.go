// Package bls12381 implements G1/G2 group arithmetic and the optimal ate
// pairing for the BLS12-381 curve: base field F_p, scalar field F_r, the
// sextic twist G2 over F_p^2, and GT = F_p^12.
package bls12381

import (
	"math/big"

	"github.com/nilfoundation/algebra/internal/blsfamily"
	"github.com/nilfoundation/algebra/internal/fp"
	"github.com/nilfoundation/algebra/internal/group"
	"github.com/nilfoundation/algebra/internal/tower"
)

// Base is the base field F_p, p = 0x1a0111ea...aaab.
var Base = mustParams("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab")

// ScalarField is F_r, the order of the G1/G2/GT subgroups.
var ScalarField = mustParams("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")

func mustParams(hex string) *fp.Params {
	p, err := fp.NewParams(hex)
	if err != nil {
		panic(err)
	}
	return p
}

// Scalar is an element of the G1/G2/GT scalar field.
type Scalar = fp.Element

// NewScalar lifts a big.Int into the scalar field.
func NewScalar(x *big.Int) Scalar { return ScalarField.FromBigInt(x) }

// Fp2Params is the quadratic extension Fp2 = Fp[u]/(u^2+1): the base
// field's non-residue is -1, so Fp2 = Fp[u]/(u^2-(-1)).
var Fp2Params = buildFp2Params()

func buildFp2Params() *tower.Fp2Params {
	negOne := Base.FromBigInt(new(big.Int).Sub(Base.Modulus, big.NewInt(1)))
	return &tower.Fp2Params{
		NonResidue:       negOne,
		FrobeniusCoeffC1: tower.ComputeFp2FrobeniusCoeffC1(Base, negOne),
	}
}

func fp2Zero() tower.Fp2 { return Fp2Params.Zero(Base) }
func fp2One() tower.Fp2  { return Fp2Params.One(Base) }

// fp6NonResidue is xi = 1+u, the Fp6A non-residue.
func fp6NonResidue() tower.Fp2 {
	return tower.NewFp2(Fp2Params, Base.FromUint64(1), Base.FromUint64(1))
}

// Fp6AParams is the cubic extension Fp6A = Fp2[v]/(v^3-(1+u)).
var Fp6AParams = buildFp6AParams()

func buildFp6AParams() *tower.Fp6AParams {
	xi := fp6NonResidue()
	c1, c2 := tower.ComputeFp6AFrobeniusCoeffs(Base.Modulus, xi)
	return &tower.Fp6AParams{NonResidue: xi, FrobeniusCoeffC1: c1, FrobeniusCoeffC2: c2}
}

// Fp12Params is the sextic extension Fp12 = Fp6A[w]/(w^2-v), GT.
var Fp12Params = &tower.Fp12Params{
	FrobeniusCoeffC1: tower.ComputeFp12FrobeniusCoeffs(Base.Modulus, fp6NonResidue()),
}

func fp6Zero() tower.Fp6A { return Fp6AParams.Zero(fp2Zero()) }
func fp6One() tower.Fp6A  { return Fp6AParams.One(fp2Zero(), fp2One()) }

// GTOne returns the multiplicative identity of GT = Fp12.
func GTOne() tower.Fp12 { return Fp12Params.One(fp6Zero(), fp6One()) }

// GTZero returns the additive identity of GT = Fp12.
func GTZero() tower.Fp12 { return Fp12Params.Zero(fp6Zero()) }

// g1Params holds y^2 = x^3 + 4 over F_p.
var g1Params = &group.Params[fp.Element]{
	A:    Base.Zero(),
	B:    Base.FromUint64(4),
	Zero: Base.Zero(),
	One:  Base.One(),
}

// g2Params holds y^2 = x^3 + 4(1+u) over F_p^2, the sextic twist.
var g2Params = &group.Params[tower.Fp2]{
	A:    fp2Zero(),
	B:    tower.NewFp2(Fp2Params, Base.FromUint64(4), Base.FromUint64(4)),
	Zero: fp2Zero(),
	One:  fp2One(),
}

// G1Point is a BLS12-381 G1 point in Jacobian coordinates over F_p.
type G1Point = group.Point[fp.Element]

// G2Point is a BLS12-381 G2 point in Jacobian coordinates over F_p^2.
type G2Point = group.Point[tower.Fp2]

var g1GenX = mustHexFp("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb")
var g1GenY = mustHexFp("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1")

func mustHexFp(hex string) fp.Element {
	x, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("bls12381: bad hex constant")
	}
	return Base.FromBigInt(x)
}

// G1Generator returns the canonical generator of G1.
func G1Generator() G1Point {
	g := group.FromAffine(g1Params, g1GenX, g1GenY)
	if !IsOnG1Curve(g) {
		panic("bls12381: G1 generator validation failed")
	}
	return g
}

// G1Infinity returns the identity element of G1.
func G1Infinity() G1Point { return group.Infinity(g1Params) }

// IsOnG1Curve reports whether pt satisfies y^2 = x^3 + 4 (or is infinity).
func IsOnG1Curve(pt G1Point) bool {
	if pt.IsInfinity() {
		return true
	}
	x, y, ok := pt.ToAffine()
	if !ok {
		return false
	}
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(g1Params.B)
	return lhs.Equal(rhs)
}

var (
	g2GenXc0 = mustHexFp("024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8")
	g2GenXc1 = mustHexFp("13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e")
	g2GenYc0 = mustHexFp("0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801")
	g2GenYc1 = mustHexFp("0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be")
)

// G2Generator returns the canonical generator of G2.
func G2Generator() G2Point {
	x := tower.NewFp2(Fp2Params, g2GenXc0, g2GenXc1)
	y := tower.NewFp2(Fp2Params, g2GenYc0, g2GenYc1)
	g := group.FromAffine(g2Params, x, y)
	if !IsOnG2Curve(g) {
		panic("bls12381: G2 generator validation failed")
	}
	return g
}

// G2Infinity returns the identity element of G2.
func G2Infinity() G2Point { return group.Infinity(g2Params) }

// IsOnG2Curve reports whether pt satisfies y^2 = x^3 + 4(1+u) (or infinity).
func IsOnG2Curve(pt G2Point) bool {
	if pt.IsInfinity() {
		return true
	}
	x, y, ok := pt.ToAffine()
	if !ok {
		return false
	}
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(g2Params.B)
	return lhs.Equal(rhs)
}

// seedZ is the BLS12-381 seed's magnitude, 0xd201000000010000; the seed
// itself is negative, which is also the sign of the ate loop count used by
// the Miller loop below.
var seedZ = mustHexBig("d201000000010000")

func mustHexBig(hex string) *big.Int {
	x, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("bls12381: bad hex constant")
	}
	return x
}

// finalExpSeed bundles the seed for the shared BLS-family hard part.
var finalExpSeed = blsfamily.Seed{Z: seedZ, ZNeg: true}

// AteLoopCount is |z|, the Miller loop's bit-iteration count.
var AteLoopCount = seedZ

// AteIsLoopCountNeg mirrors the seed's sign: the Miller loop's
// accumulated line product is inverted at the end when true.
const AteIsLoopCountNeg = true
