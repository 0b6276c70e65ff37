// Package bn254 implements G1/G2 group arithmetic and the optimal ate
// pairing for the BN254 (alt_bn128) curve: base field F_p, scalar field
// F_n, the sextic twist G2 over F_p^2, and GT = F_p^12.
package bn254

import (
	"math/big"

	"github.com/nilfoundation/algebra/internal/bnfamily"
	"github.com/nilfoundation/algebra/internal/fp"
	"github.com/nilfoundation/algebra/internal/group"
	"github.com/nilfoundation/algebra/internal/tower"
)

// Base is the base field F_p.
var Base = mustParams("21888242871839275222246405745257275088696311157297823662689037894645226208583")

// ScalarField is F_n, the order of the G1/G2/GT subgroups.
var ScalarField = mustParams("21888242871839275222246405745257275088548364400416034343698204186575808495617")

func mustParams(dec string) *fp.Params {
	m, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("bn254: bad decimal constant")
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

// Fp2Params is the quadratic extension Fp2 = Fp[i]/(i^2+1).
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

// fp6NonResidue is xi = 9+i, the Fp6A non-residue.
func fp6NonResidue() tower.Fp2 {
	return tower.NewFp2(Fp2Params, Base.FromUint64(9), Base.FromUint64(1))
}

// Fp6AParams is the cubic extension Fp6A = Fp2[v]/(v^3-(9+i)).
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

// twistMulByQX, twistMulByQY are the Frobenius-twist isomorphism scalars
// used by mulByQ below: xi^((p-1)/3) and xi^((p-1)/2) respectively.
var (
	twistMulByQX = fp6NonResidue().Pow(new(big.Int).Div(new(big.Int).Sub(Base.Modulus, big.NewInt(1)), big.NewInt(3)))
	twistMulByQY = fp6NonResidue().Pow(new(big.Int).Div(new(big.Int).Sub(Base.Modulus, big.NewInt(1)), big.NewInt(2)))
)

// mulByQ applies the degree-1 Frobenius twist isomorphism to a G2 point,
// the endomorphism the BN-family closing addition steps need: it is
// cheaper than a generic scalar multiplication by p.
func mulByQ(q G2Point) G2Point {
	return G2Point{
		P: q.P,
		X: q.X.Frobenius(1).Mul(twistMulByQX),
		Y: q.Y.Frobenius(1).Mul(twistMulByQY),
		Z: q.Z.Frobenius(1),
	}
}

// g1Params holds y^2 = x^3 + 3 over F_p.
var g1Params = &group.Params[fp.Element]{
	A:    Base.Zero(),
	B:    Base.FromUint64(3),
	Zero: Base.Zero(),
	One:  Base.One(),
}

// g2Params holds y^2 = x^3 + 3/(9+i) over F_p^2, the sextic twist.
var g2Params = &group.Params[tower.Fp2]{
	A:    fp2Zero(),
	B:    buildG2B(),
	Zero: fp2Zero(),
	One:  fp2One(),
}

func buildG2B() tower.Fp2 {
	c0, _ := new(big.Int).SetString("19485874751759354771024239261021720505790618469301721065564631296452457478373", 10)
	c1, _ := new(big.Int).SetString("266929791119991161246907387137283842545076965332900288569378510910307636690", 10)
	return tower.NewFp2(Fp2Params, Base.FromBigInt(c0), Base.FromBigInt(c1))
}

// G1Point is a BN254 G1 point in Jacobian coordinates over F_p.
type G1Point = group.Point[fp.Element]

// G2Point is a BN254 G2 point in Jacobian coordinates over F_p^2.
type G2Point = group.Point[tower.Fp2]

var g1GenX = Base.FromUint64(1)
var g1GenY = Base.FromUint64(2)

// G1Generator returns the canonical generator of G1.
func G1Generator() G1Point {
	g := group.FromAffine(g1Params, g1GenX, g1GenY)
	if !IsOnG1Curve(g) {
		panic("bn254: G1 generator validation failed")
	}
	return g
}

// G1Infinity returns the identity element of G1.
func G1Infinity() G1Point { return group.Infinity(g1Params) }

// IsOnG1Curve reports whether pt satisfies y^2 = x^3 + 3 (or is infinity).
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

func mustHexFp(dec string) fp.Element {
	x, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("bn254: bad decimal constant")
	}
	return Base.FromBigInt(x)
}

var (
	g2GenXc0 = mustHexFp("10857046999023057135944570762232829481370756359578518086990519993285655852781")
	g2GenXc1 = mustHexFp("11559732032986387107991004021392285783925812861821192530917403151452391805634")
	g2GenYc0 = mustHexFp("8495653923123431417604973247489272438418190587263600148770280649306958101930")
	g2GenYc1 = mustHexFp("4082367875863433681332203403145435568316851327593401208105741076214120093531")
)

// G2Generator returns the canonical generator of G2.
func G2Generator() G2Point {
	x := tower.NewFp2(Fp2Params, g2GenXc0, g2GenXc1)
	y := tower.NewFp2(Fp2Params, g2GenYc0, g2GenYc1)
	g := group.FromAffine(g2Params, x, y)
	if !IsOnG2Curve(g) {
		panic("bn254: G2 generator validation failed")
	}
	return g
}

// G2Infinity returns the identity element of G2.
func G2Infinity() G2Point { return group.Infinity(g2Params) }

// IsOnG2Curve reports whether pt satisfies y^2 = x^3 + 3/(9+i) (or infinity).
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

// seedZ is |u| in p = 36u^4+36u^3+24u^2+6u+1; the ate loop count is 6u+2.
var seedZ = mustDecBig("4965661367192848881")

func mustDecBig(dec string) *big.Int {
	x, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("bn254: bad decimal constant")
	}
	return x
}

// finalExpSeed bundles the seed for the shared BN-family hard part.
var finalExpSeed = bnfamily.Seed{Z: seedZ, ZNeg: false}

// AteLoopCount is 6u+2, the Miller loop's bit-iteration count.
var AteLoopCount = new(big.Int).Add(new(big.Int).Mul(seedZ, big.NewInt(6)), big.NewInt(2))

// AteIsLoopCountNeg mirrors the seed's sign: false for BN254.
const AteIsLoopCountNeg = false
