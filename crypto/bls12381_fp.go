package crypto

// BLS12-381 finite field arithmetic over F_p.
//
// These functions keep their original *big.Int signature so the rest of
// this package's precompile and aggregation code is untouched, but now
// delegate the actual modular arithmetic to internal/fp's Montgomery
// Element type through ecc/bls12381.Base rather than reimplementing REDC
// on raw big.Ints here.

import (
	"math/big"

	"github.com/nilfoundation/algebra/ecc/bls12381"
	"github.com/nilfoundation/algebra/internal/fp"
)

// BLS12-381 curve parameters.
var (
	// blsP is the base field modulus.
	blsP = bls12381.Base.Modulus
	// blsR is the subgroup order.
	blsR = bls12381.ScalarField.Modulus
	// blsB is the curve coefficient b = 4 for G1: y^2 = x^3 + 4.
	blsB = big.NewInt(4)
)

func blsFpFrom(a *big.Int) fp.Element { return bls12381.Base.FromBigInt(a) }

// blsFpAdd returns (a + b) mod p.
func blsFpAdd(a, b *big.Int) *big.Int {
	return blsFpFrom(a).Add(blsFpFrom(b)).ToBigInt()
}

// blsFpSub returns (a - b) mod p.
func blsFpSub(a, b *big.Int) *big.Int {
	return blsFpFrom(a).Sub(blsFpFrom(b)).ToBigInt()
}

// blsFpMul returns (a * b) mod p.
func blsFpMul(a, b *big.Int) *big.Int {
	return blsFpFrom(a).Mul(blsFpFrom(b)).ToBigInt()
}

// blsFpNeg returns (-a) mod p.
func blsFpNeg(a *big.Int) *big.Int {
	return blsFpFrom(a).Neg().ToBigInt()
}

// blsFpInv returns a^(-1) mod p.
func blsFpInv(a *big.Int) *big.Int {
	inv, ok := blsFpFrom(a).Inverse()
	if !ok {
		return new(big.Int)
	}
	return inv.ToBigInt()
}

// blsFpSqr returns a^2 mod p.
func blsFpSqr(a *big.Int) *big.Int {
	return blsFpFrom(a).Square().ToBigInt()
}

// blsFpExp returns a^e mod p.
func blsFpExp(a, e *big.Int) *big.Int {
	return blsFpFrom(a).Pow(e).ToBigInt()
}

// blsFpSqrt returns a square root of a mod p, or nil if none exists.
func blsFpSqrt(a *big.Int) *big.Int {
	r, ok := blsFpFrom(a).Sqrt()
	if !ok {
		return nil
	}
	return r.ToBigInt()
}

// blsFpIsSquare checks if a is a quadratic residue mod p.
func blsFpIsSquare(a *big.Int) bool {
	return blsFpFrom(a).IsSquare()
}

// blsFpSgn0 returns the "sign" of a field element per the hash-to-curve spec.
func blsFpSgn0(a *big.Int) int {
	return blsFpFrom(a).Sgn0()
}

// blsFpCmov returns a if b==0, else c (constant-time selection for field elements).
func blsFpCmov(a, c *big.Int, b int) *big.Int {
	if b != 0 {
		return new(big.Int).Set(c)
	}
	return new(big.Int).Set(a)
}
