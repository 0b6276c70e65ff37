package crypto

// BLS12-381 extension field F_p^2 = F_p[u] / (u^2 + 1).
//
// Elements are represented as (c0 + c1*u) where c0, c1 in F_p. This is used
// for G2 point coordinates on the twist curve. The blsFp2 type and its
// functions keep their historical shape but delegate the actual Fp2
// arithmetic to internal/tower.Fp2 through ecc/bls12381.Fp2Params.

import (
	"math/big"

	"github.com/nilfoundation/algebra/ecc/bls12381"
	"github.com/nilfoundation/algebra/internal/tower"
)

// blsFp2 represents an element of F_p^2 as (c0 + c1*u).
type blsFp2 struct {
	c0, c1 *big.Int
}

func (e *blsFp2) toTower() tower.Fp2 {
	return tower.NewFp2(bls12381.Fp2Params, blsFpFrom(e.c0), blsFpFrom(e.c1))
}

func fromTowerFp2(t tower.Fp2) *blsFp2 {
	return &blsFp2{c0: t.C0.ToBigInt(), c1: t.C1.ToBigInt()}
}

func newBlsFp2(c0, c1 *big.Int) *blsFp2 {
	return &blsFp2{c0: new(big.Int).Set(c0), c1: new(big.Int).Set(c1)}
}

func blsFp2Zero() *blsFp2 {
	return &blsFp2{c0: new(big.Int), c1: new(big.Int)}
}

func blsFp2One() *blsFp2 {
	return &blsFp2{c0: big.NewInt(1), c1: new(big.Int)}
}

func (e *blsFp2) isZero() bool {
	return e.toTower().IsZero()
}

func (e *blsFp2) equal(f *blsFp2) bool {
	return e.toTower().Equal(f.toTower())
}

// blsFp2Add returns e + f in F_p^2.
func blsFp2Add(e, f *blsFp2) *blsFp2 {
	return fromTowerFp2(e.toTower().Add(f.toTower()))
}

// blsFp2Sub returns e - f in F_p^2.
func blsFp2Sub(e, f *blsFp2) *blsFp2 {
	return fromTowerFp2(e.toTower().Sub(f.toTower()))
}

// blsFp2Mul returns e * f in F_p^2.
func blsFp2Mul(e, f *blsFp2) *blsFp2 {
	return fromTowerFp2(e.toTower().Mul(f.toTower()))
}

// blsFp2Sqr returns e^2 in F_p^2.
func blsFp2Sqr(e *blsFp2) *blsFp2 {
	return fromTowerFp2(e.toTower().Square())
}

// blsFp2Neg returns -e in F_p^2.
func blsFp2Neg(e *blsFp2) *blsFp2 {
	return fromTowerFp2(e.toTower().Neg())
}

// blsFp2Conj returns the conjugate of e: (c0 - c1*u).
func blsFp2Conj(e *blsFp2) *blsFp2 {
	return fromTowerFp2(e.toTower().Conjugate())
}

// blsFp2Inv returns e^(-1) in F_p^2.
func blsFp2Inv(e *blsFp2) *blsFp2 {
	inv, ok := e.toTower().Inverse()
	if !ok {
		return blsFp2Zero()
	}
	return fromTowerFp2(inv)
}

// blsFp2MulScalar returns e * s where s is in F_p.
func blsFp2MulScalar(e *blsFp2, s *big.Int) *blsFp2 {
	return fromTowerFp2(e.toTower().MulByFp(blsFpFrom(s)))
}

// blsFp2Sgn0 returns the "sign" of an Fp2 element per the hash-to-curve spec.
func blsFp2Sgn0(e *blsFp2) int {
	return e.toTower().Sgn0()
}

// blsFp2Sqrt returns a square root of e in Fp2, or nil if none exists.
func blsFp2Sqrt(e *blsFp2) *blsFp2 {
	r, ok := e.toTower().Sqrt()
	if !ok {
		return nil
	}
	return fromTowerFp2(r)
}

// blsFp2IsSquare checks if an Fp2 element is a quadratic residue.
func blsFp2IsSquare(e *blsFp2) bool {
	return e.toTower().IsSquare()
}

// blsFp2MulByU multiplies e by the non-residue u in Fp2.
func blsFp2MulByU(e *blsFp2) *blsFp2 {
	// u*(c0 + c1*u) = c1*u^2 + c0*u, with u^2 the Fp2 non-residue.
	t := e.toTower()
	return fromTowerFp2(tower.NewFp2(t.P, t.C1.Mul(t.P.NonResidue), t.C0))
}
