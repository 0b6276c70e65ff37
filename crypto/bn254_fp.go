package crypto

// BN254 finite field arithmetic over F_p.
//
// Signatures stay *big.Int-shaped for the rest of this package, but the
// modular arithmetic itself delegates to internal/fp's Montgomery Element
// through ecc/bn254.Base.

import (
	"math/big"

	"github.com/nilfoundation/algebra/ecc/bn254"
	"github.com/nilfoundation/algebra/internal/fp"
)

// BN254 curve parameters.
var (
	// bn254P is the base field modulus.
	bn254P = bn254Base.Modulus
	// bn254N is the curve order (number of points on E(F_p)).
	bn254N = bn254.ScalarField.Modulus
	// bn254B is the curve coefficient in y^2 = x^3 + b.
	bn254B = big.NewInt(3)
)

var bn254Base = bn254.Base

func bnFpFrom(a *big.Int) fp.Element { return bn254Base.FromBigInt(a) }

// fpAdd returns (a + b) mod p.
func fpAdd(a, b *big.Int) *big.Int {
	return bnFpFrom(a).Add(bnFpFrom(b)).ToBigInt()
}

// fpSub returns (a - b) mod p.
func fpSub(a, b *big.Int) *big.Int {
	return bnFpFrom(a).Sub(bnFpFrom(b)).ToBigInt()
}

// fpMul returns (a * b) mod p.
func fpMul(a, b *big.Int) *big.Int {
	return bnFpFrom(a).Mul(bnFpFrom(b)).ToBigInt()
}

// fpNeg returns (-a) mod p.
func fpNeg(a *big.Int) *big.Int {
	return bnFpFrom(a).Neg().ToBigInt()
}

// fpInv returns a^(-1) mod p.
func fpInv(a *big.Int) *big.Int {
	inv, ok := bnFpFrom(a).Inverse()
	if !ok {
		return new(big.Int)
	}
	return inv.ToBigInt()
}

// fpSqr returns a^2 mod p.
func fpSqr(a *big.Int) *big.Int {
	return bnFpFrom(a).Square().ToBigInt()
}

// fpExp returns a^e mod p.
func fpExp(a, e *big.Int) *big.Int {
	return bnFpFrom(a).Pow(e).ToBigInt()
}
