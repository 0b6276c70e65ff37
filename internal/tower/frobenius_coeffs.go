package tower

import (
	"math/big"

	"github.com/nilfoundation/algebra/internal/fp"
)

// Frobenius coefficient tables for every tower shape are derived here from
// first principles (gamma^((p^i-1)/d), gamma the tower's non-residue, d the
// extension degree) rather than transcribed as hex literals: the degree-i
// Frobenius map fixes the base field, so its action on a tower generator is
// exactly this power of the generator, and computing it by exponentiation
// at curve-parameter build time removes an entire class of copy/paste
// constant-transcription bugs for numbers this large.

// ComputeFp2FrobeniusCoeffC1 returns [1, nonResidue^((p-1)/2)].
func ComputeFp2FrobeniusCoeffC1(base *fp.Params, nonResidue fp.Element) [2]fp.Element {
	exp := new(big.Int).Sub(base.Modulus, big.NewInt(1))
	exp.Rsh(exp, 1)
	return [2]fp.Element{base.One(), nonResidue.Pow(exp)}
}

// ComputeFp3FrobeniusCoeffs returns, for i=0..2, nonResidue^((p^i-1)/3) and
// its square, the c1/c2 Frobenius constants for Fp3 = Fp[v]/(v^3-nonResidue).
func ComputeFp3FrobeniusCoeffs(p *big.Int, nonResidue fp.Element) (c1, c2 [3]fp.Element) {
	three := big.NewInt(3)
	pi := big.NewInt(1)
	for i := 0; i < 3; i++ {
		exp := new(big.Int).Sub(pi, big.NewInt(1))
		exp.Div(exp, three)
		c1[i] = nonResidue.Pow(exp)
		c2[i] = c1[i].Mul(c1[i])
		pi.Mul(pi, p)
	}
	return c1, c2
}

// ComputeFp4FrobeniusCoeffs returns, for i=0..3, delta^((p^i-1)/2) as an Fp2
// element, the c1 Frobenius constants for Fp4 = Fp2[w]/(w^2-delta).
func ComputeFp4FrobeniusCoeffs(p *big.Int, delta Fp2) [4]Fp2 {
	var coeffs [4]Fp2
	two := big.NewInt(2)
	pi := big.NewInt(1)
	for i := 0; i < 4; i++ {
		exp := new(big.Int).Sub(pi, big.NewInt(1))
		exp.Div(exp, two)
		coeffs[i] = delta.Pow(exp)
		pi.Mul(pi, p)
	}
	return coeffs
}

// ComputeFp6AFrobeniusCoeffs returns, for i=0..5, xi^((p^i-1)/3) and its
// square, the c1/c2 Frobenius constants for Fp6A = Fp2[v]/(v^3-xi).
func ComputeFp6AFrobeniusCoeffs(p *big.Int, xi Fp2) (c1, c2 [6]Fp2) {
	three := big.NewInt(3)
	pi := big.NewInt(1)
	for i := 0; i < 6; i++ {
		exp := new(big.Int).Sub(pi, big.NewInt(1))
		exp.Div(exp, three)
		c1[i] = xi.Pow(exp)
		c2[i] = c1[i].Mul(c1[i])
		pi.Mul(pi, p)
	}
	return c1, c2
}

// ComputeFp6BFrobeniusCoeffs returns, for i=0..5, delta^((p^i-1)/2) as an
// Fp3 element, the c1 Frobenius constants for Fp6B = Fp3[w]/(w^2-delta).
func ComputeFp6BFrobeniusCoeffs(p *big.Int, delta Fp3) [6]Fp3 {
	var coeffs [6]Fp3
	two := big.NewInt(2)
	pi := big.NewInt(1)
	for i := 0; i < 6; i++ {
		exp := new(big.Int).Sub(pi, big.NewInt(1))
		exp.Div(exp, two)
		coeffs[i] = delta.Pow(exp)
		pi.Mul(pi, p)
	}
	return coeffs
}

// ComputeFp12FrobeniusCoeffs returns, for i=0..11, xi^((p^i-1)/6) as an Fp2
// element, the w-coefficient Frobenius constants for Fp12 = Fp6A[w]/(w^2-v)
// where xi is the Fp6A non-residue (so that w^6 = xi).
func ComputeFp12FrobeniusCoeffs(p *big.Int, xi Fp2) [12]Fp2 {
	var coeffs [12]Fp2
	six := big.NewInt(6)
	pi := big.NewInt(1)
	for i := 0; i < 12; i++ {
		exp := new(big.Int).Sub(pi, big.NewInt(1))
		exp.Div(exp, six)
		coeffs[i] = xi.Pow(exp)
		pi.Mul(pi, p)
	}
	return coeffs
}
