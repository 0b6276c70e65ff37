// Package bls12377 implements G1/G2 group arithmetic and the optimal ate
// pairing for the BLS12-377 curve: base field F_p, scalar field F_r, the
// sextic twist G2 over F_p^2, and GT = F_p^12. Shares its Fp12 hard-part
// final exponentiation chain with bls12381 via internal/blsfamily, since
// both are BLS12-family curves differing only in the seed and constants.
package bls12377

import (
	"math/big"

	"github.com/nilfoundation/algebra/internal/blsfamily"
	"github.com/nilfoundation/algebra/internal/fp"
	"github.com/nilfoundation/algebra/internal/group"
	"github.com/nilfoundation/algebra/internal/tower"
)

// Base is the base field F_p.
var Base = mustParams("258664426012969094010652733694893533536393512754914660539884262666720468348340822774968888139573360124440321458177")

// ScalarField is F_r, the order of the G1/G2/GT subgroups.
//
// r = 0x12AB655E9A2CA55660B44D1E5C37B00159AA76FED00000010A11800000000001.
var ScalarField = mustParams("8444461749428370424248824938781546531375899335154063827935233455917409239041")

// ScalarFieldGenerator is a fixed multiplicative generator of F_r^*.
const ScalarFieldGenerator = 22

func mustParams(dec string) *fp.Params {
	m, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("bls12377: bad decimal constant")
	}
	p, err := fp.NewParamsFromInt(m)
	if err != nil {
		panic(err)
	}
	return p
}

// Scalar is an element of the G1/G2/GT scalar field.
type Scalar = fp.Element

// NewScalar lifts a big.Int into the scalar field.
func NewScalar(x *big.Int) Scalar { return ScalarField.FromBigInt(x) }

// Fp2Params is the quadratic extension Fp2 = Fp[u]/(u^2+5): the base
// field's non-residue is -5.
var Fp2Params = buildFp2Params()

func buildFp2Params() *tower.Fp2Params {
	negFive := Base.FromBigInt(new(big.Int).Sub(Base.Modulus, big.NewInt(5)))
	return &tower.Fp2Params{
		NonResidue:       negFive,
		FrobeniusCoeffC1: tower.ComputeFp2FrobeniusCoeffC1(Base, negFive),
	}
}

func fp2Zero() tower.Fp2 { return Fp2Params.Zero(Base) }
func fp2One() tower.Fp2  { return Fp2Params.One(Base) }

// fp6NonResidue is xi = u, the Fp6A non-residue (the twist element used
// to build the twist curve coefficient below).
func fp6NonResidue() tower.Fp2 {
	return tower.NewFp2(Fp2Params, Base.Zero(), Base.One())
}

// Fp6AParams is the cubic extension Fp6A = Fp2[v]/(v^3-u).
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

// g1Params holds y^2 = x^3 + 1 over F_p.
var g1Params = &group.Params[fp.Element]{
	A:    Base.Zero(),
	B:    Base.One(),
	Zero: Base.Zero(),
	One:  Base.One(),
}

// g2Params holds y^2 = x^3 + u^-1 over F_p^2, the sextic twist.
var g2Params = &group.Params[tower.Fp2]{
	A:    fp2Zero(),
	B:    buildG2B(),
	Zero: fp2Zero(),
	One:  fp2One(),
}

func buildG2B() tower.Fp2 {
	xi := fp6NonResidue()
	inv, ok := xi.Inverse()
	if !ok {
		panic("bls12377: twist non-residue is not invertible")
	}
	return inv
}

// G1Point is a BLS12-377 G1 point in Jacobian coordinates over F_p.
type G1Point = group.Point[fp.Element]

// G2Point is a BLS12-377 G2 point in Jacobian coordinates over F_p^2.
type G2Point = group.Point[tower.Fp2]

func mustDecFp(dec string) fp.Element {
	x, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("bls12377: bad decimal constant")
	}
	return Base.FromBigInt(x)
}

var (
	g1GenX = mustDecFp("81937999373150964239938255573465948239988671502647976594219695644855304257327692006745978603320413799295628339695")
	g1GenY = mustDecFp("241266749859715473739788878240585681733927191168601896383759122102112907357779751001206799952863815012735208165030")
)

// G1Generator returns the canonical generator of G1.
func G1Generator() G1Point {
	g := group.FromAffine(g1Params, g1GenX, g1GenY)
	if !IsOnG1Curve(g) {
		panic("bls12377: G1 generator validation failed")
	}
	return g
}

// G1Infinity returns the identity element of G1.
func G1Infinity() G1Point { return group.Infinity(g1Params) }

// IsOnG1Curve reports whether pt satisfies y^2 = x^3 + 1 (or is infinity).
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
	g2GenXc0 = mustDecFp("233578398248691099356572568220835526895379068987715365179118596935057653620464273615301663571204657964920925606294")
	g2GenXc1 = mustDecFp("140913150380207355837477652521042157274541796891053068589147167627541651775299824604154852141315666357241556069118")
	g2GenYc0 = mustDecFp("63160294768292073209381361943935198908131692476676907196754037919244929611450776219210369229519898517858833747423")
	g2GenYc1 = mustDecFp("149157405641012693445398062341192467754805999074082136895788947234480009303640899064710353187729182149407503257491")
)

// G2Generator returns the canonical generator of G2.
func G2Generator() G2Point {
	x := tower.NewFp2(Fp2Params, g2GenXc0, g2GenXc1)
	y := tower.NewFp2(Fp2Params, g2GenYc0, g2GenYc1)
	g := group.FromAffine(g2Params, x, y)
	if !IsOnG2Curve(g) {
		panic("bls12377: G2 generator validation failed")
	}
	return g
}

// G2Infinity returns the identity element of G2.
func G2Infinity() G2Point { return group.Infinity(g2Params) }

// IsOnG2Curve reports whether pt satisfies y^2 = x^3 + u^-1 (or infinity).
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

// seedZ is the BLS12-377 seed, x = 9586122913090633729; unlike BLS12-381
// the seed is positive, so the ate loop count and the final-exponentiation
// seed both carry a positive sign.
var seedZ = mustDecBig("9586122913090633729")

func mustDecBig(dec string) *big.Int {
	x, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("bls12377: bad decimal constant")
	}
	return x
}

// finalExpSeed bundles the seed for the shared BLS-family hard part.
var finalExpSeed = blsfamily.Seed{Z: seedZ, ZNeg: false}

// AteLoopCount is the seed magnitude, the Miller loop's bit-iteration count.
var AteLoopCount = seedZ

// AteIsLoopCountNeg mirrors the seed's sign: false for BLS12-377.
const AteIsLoopCountNeg = false
