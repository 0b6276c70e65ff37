package crypto

// BN254 optimal Ate pairing.
//
// The Miller loop, sparse line multiplication, and the curve-specific
// final exponentiation all live in ecc/bn254; this file only adapts
// between the package's historical *big.Int-shaped G1Point/G2Point and
// the canonical group/tower representation.

import (
	"github.com/nilfoundation/algebra/ecc/bn254"
	"github.com/nilfoundation/algebra/internal/tower"
)

// BN254Pair computes the optimal Ate pairing e(P, Q), including final
// exponentiation, landing the result in G_T.
func BN254Pair(p *G1Point, q *G2Point) tower.Fp12 {
	if p.g1IsInfinity() || q.g2IsInfinity() {
		return bn254.GTOne()
	}
	f, err := bn254.Pairing(p.toGroup(), q.toGroup())
	if err != nil {
		return bn254.GTOne()
	}
	return bn254.FinalExponentiation(f)
}

// bn254MultiPairing checks prod e(Pi, Qi) == 1 in G_T.
func bn254MultiPairing(g1Points []*G1Point, g2Points []*G2Point) bool {
	if len(g1Points) != len(g2Points) {
		return false
	}
	f := bn254.GTOne()
	for i := range g1Points {
		if g1Points[i].g1IsInfinity() || g2Points[i].g2IsInfinity() {
			continue
		}
		fi, err := bn254.Pairing(g1Points[i].toGroup(), g2Points[i].toGroup())
		if err != nil {
			return false
		}
		f = f.Mul(fi)
	}
	result := bn254.FinalExponentiation(f)
	return result.Equal(bn254.GTOne())
}
