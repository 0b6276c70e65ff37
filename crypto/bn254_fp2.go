package crypto

// BN254 extension field F_p^2 = F_p[i] / (i^2 + 1).
//
// Elements are represented as (a0 + a1*i) where a0, a1 in F_p. The fp2
// type keeps its historical shape but delegates to internal/tower.Fp2
// through ecc/bn254.Fp2Params.

import (
	"math/big"

	"github.com/nilfoundation/algebra/ecc/bn254"
	"github.com/nilfoundation/algebra/internal/tower"
)

// fp2 represents an element of F_p^2 as (a0 + a1*i).
type fp2 struct {
	a0, a1 *big.Int
}

func (e *fp2) toTower() tower.Fp2 {
	return tower.NewFp2(bn254.Fp2Params, bnFpFrom(e.a0), bnFpFrom(e.a1))
}

func fromTowerBnFp2(t tower.Fp2) *fp2 {
	return &fp2{a0: t.C0.ToBigInt(), a1: t.C1.ToBigInt()}
}

func newFp2(a0, a1 *big.Int) *fp2 {
	return &fp2{a0: new(big.Int).Set(a0), a1: new(big.Int).Set(a1)}
}

func fp2Zero() *fp2 {
	return &fp2{a0: new(big.Int), a1: new(big.Int)}
}

func fp2One() *fp2 {
	return &fp2{a0: big.NewInt(1), a1: new(big.Int)}
}

func (e *fp2) isZero() bool {
	return e.toTower().IsZero()
}

func (e *fp2) equal(f *fp2) bool {
	return e.toTower().Equal(f.toTower())
}

// fp2Add returns e + f in F_p^2.
func fp2Add(e, f *fp2) *fp2 {
	return fromTowerBnFp2(e.toTower().Add(f.toTower()))
}

// fp2Sub returns e - f in F_p^2.
func fp2Sub(e, f *fp2) *fp2 {
	return fromTowerBnFp2(e.toTower().Sub(f.toTower()))
}

// fp2Mul returns e * f in F_p^2.
func fp2Mul(e, f *fp2) *fp2 {
	return fromTowerBnFp2(e.toTower().Mul(f.toTower()))
}

// fp2Sqr returns e^2 in F_p^2.
func fp2Sqr(e *fp2) *fp2 {
	return fromTowerBnFp2(e.toTower().Square())
}

// fp2Neg returns -e in F_p^2.
func fp2Neg(e *fp2) *fp2 {
	return fromTowerBnFp2(e.toTower().Neg())
}

// fp2Conj returns the conjugate of e: (a0 - a1*i).
func fp2Conj(e *fp2) *fp2 {
	return fromTowerBnFp2(e.toTower().Conjugate())
}

// fp2Inv returns e^(-1) in F_p^2.
func fp2Inv(e *fp2) *fp2 {
	inv, ok := e.toTower().Inverse()
	if !ok {
		return fp2Zero()
	}
	return fromTowerBnFp2(inv)
}

// fp2MulScalar returns e * s where s is in F_p.
func fp2MulScalar(e *fp2, s *big.Int) *fp2 {
	return fromTowerBnFp2(e.toTower().MulByFp(bnFpFrom(s)))
}

// fp2MulByNonResidue multiplies by the non-residue (9+i) used in the
// sextic twist for BN254's F_p^6/F_p^12 tower.
func fp2MulByNonResidue(e *fp2) *fp2 {
	return fromTowerBnFp2(e.toTower().Mul(bn254.Fp6AParams.NonResidue))
}
