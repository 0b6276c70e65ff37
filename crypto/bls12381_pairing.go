package crypto

// BLS12-381 optimal ate pairing, e: G1 x G2 -> GT = F_p^12.
//
// blsMultiPairing keeps its historical signature (used by the EVM
// precompile and the signature aggregation helpers in this package) but
// delegates Miller loop accumulation and final exponentiation to
// ecc/bls12381's tower-based pairing engine instead of reimplementing the
// Fp6/Fp12 tower and line functions over raw *blsFp2/*big.Int values here.

import "github.com/nilfoundation/algebra/ecc/bls12381"

// blsMultiPairing checks if the product of pairings equals the identity.
// product(e(P_i, Q_i)) == 1 in GT
func blsMultiPairing(g1Points []*BlsG1Point, g2Points []*BlsG2Point) bool {
	f := bls12381.GTOne()
	for i := range g1Points {
		if g1Points[i].blsG1IsInfinity() || g2Points[i].blsG2IsInfinity() {
			continue
		}
		fi, err := bls12381.Pairing(g1Points[i].toGroup(), g2Points[i].toGroup())
		if err != nil {
			return false
		}
		f = f.Mul(fi)
	}

	result := bls12381.FinalExponentiation(f)
	return result.Equal(bls12381.GTOne())
}
