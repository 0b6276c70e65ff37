package crypto

// BLS12-381 map-to-curve operations.
//
// Implements mapping from field elements to curve points as required by
// EIP-2537 precompiles: a try-and-increment map for correctness, followed
// by cofactor clearing to land in the prime-order subgroup.
//
// For G1: Maps Fp -> E(Fp) where E: y^2 = x^3 + 4
// For G2: Maps Fp2 -> E'(Fp2) where E': y^2 = x^3 + 4(1+u)

import (
	"math/big"

	"github.com/nilfoundation/algebra/hashtocurve"
)

// blsMapFpToG1 maps a field element u to a G1 point, delegating to the
// shared try-and-increment map in package hashtocurve rather than
// reimplementing it over blsFpXxx primitives here.
func blsMapFpToG1(u *big.Int) *BlsG1Point {
	return fromGroupG1(hashtocurve.MapToG1(blsFpFrom(u)))
}

// blsMapFp2ToG2 maps an Fp2 element u to a G2 point.
// Uses a try-and-increment method on E': y^2 = x^3 + 4(1+u).
func blsMapFp2ToG2(u *blsFp2) *BlsG2Point {
	x := newBlsFp2(u.c0, u.c1)

	for i := 0; i < 256; i++ {
		// Compute y^2 = x^3 + 4(1+u)
		x3 := blsFp2Mul(blsFp2Sqr(x), x)
		rhs := blsFp2Add(x3, blsTwistB)

		y := blsFp2Sqrt(rhs)
		if y != nil {
			// Verify: y^2 == rhs
			if blsFp2Sqr(y).equal(rhs) {
				// Choose sign based on input.
				if blsFp2Sgn0(u) != blsFp2Sgn0(y) {
					y = blsFp2Neg(y)
				}
				return blsG2FromAffine(x, y)
			}
		}

		// Try next x by incrementing the real part.
		x = blsFp2Add(x, blsFp2One())
	}

	return BlsG2Infinity()
}
