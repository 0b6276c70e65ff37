// Package fp implements Montgomery-form prime field arithmetic,
// parameterized at runtime by a curve-specific modulus rather than by a
// fixed-width [N]uint64 limb array. Limb storage is delegated to
// math/big.Int; the Montgomery reduction contract itself -- a value is
// always held as a*R mod p, multiplication performs one REDC pass, results
// are kept in the canonical range [0, p) -- is reproduced exactly, just on a
// variable-width substrate. See DESIGN.md for why this substrate was chosen
// over a hand-rolled fixed-width limb array.
package fp

import (
	"fmt"
	"math/big"
)

// Params holds everything needed to do Montgomery arithmetic modulo a fixed
// prime p: the modulus itself, the Montgomery radix R = 2^bits (bits rounded
// up to a 64-bit limb boundary above bitlen(p)), and the small set of
// derived constants REDC needs.
type Params struct {
	Modulus *big.Int
	bits    uint
	r       *big.Int // R = 2^bits
	rModP   *big.Int // R mod p (Montgomery form of 1)
	r2ModP  *big.Int // R^2 mod p (FromBigInt enters Montgomery form via rModP)
	rInv    *big.Int // R^-1 mod p (used to leave Montgomery form)
	negPInv *big.Int // -p^-1 mod R (the REDC multiplier)
	mask    *big.Int // R-1, for fast "mod R" via bitwise AND

	ts *tsState // lazily computed Tonelli-Shanks constants
}

// NewParams builds Montgomery parameters for the prime given in hex (no
// "0x" prefix required, case-insensitive).
func NewParams(modulusHex string) (*Params, error) {
	p, ok := new(big.Int).SetString(modulusHex, 16)
	if !ok {
		return nil, fmt.Errorf("fp: invalid modulus hex %q", modulusHex)
	}
	return NewParamsFromInt(p)
}

// NewParamsFromInt builds Montgomery parameters for an already-parsed
// modulus. Returns an error if p is not a positive odd integer (even moduli have
// no R^-1 mod p, which every pairing-friendly field modulus here satisfies
// by construction).
func NewParamsFromInt(p *big.Int) (*Params, error) {
	if p.Sign() <= 0 || p.Bit(0) == 0 {
		return nil, fmt.Errorf("fp: modulus must be a positive odd integer")
	}
	bitLen := uint(p.BitLen())
	bits := ((bitLen / 64) + 1) * 64

	r := new(big.Int).Lsh(big.NewInt(1), bits)
	mask := new(big.Int).Sub(r, big.NewInt(1))

	rModP := new(big.Int).Mod(r, p)
	r2ModP := new(big.Int).Mod(new(big.Int).Mul(rModP, rModP), p)
	r2ModP.Mod(r2ModP, p)

	rInv := new(big.Int).ModInverse(r, p)
	if rInv == nil {
		return nil, fmt.Errorf("fp: R has no inverse mod p (modulus not odd?)")
	}

	pInvModR := new(big.Int).ModInverse(p, r)
	if pInvModR == nil {
		return nil, fmt.Errorf("fp: p has no inverse mod R")
	}
	negPInv := new(big.Int).Sub(r, pInvModR)
	negPInv.And(negPInv, mask)

	return &Params{
		Modulus: new(big.Int).Set(p),
		bits:    bits,
		r:       r,
		rModP:   rModP,
		r2ModP:  r2ModP,
		rInv:    rInv,
		negPInv: negPInv,
		mask:    mask,
	}, nil
}

// redc reduces a double-wide product t = a*b (a, b already in Montgomery
// form, so t represents (x*R)*(y*R) = xyR^2) down to xyR mod p -- the
// textbook Montgomery REDC: m <- (t * negPInv) mod R; t <- (t + m*p) / R;
// if t >= p then t -= p.
func (pp *Params) redc(t *big.Int) *big.Int {
	m := new(big.Int).Mul(t, pp.negPInv)
	m.And(m, pp.mask)

	t = new(big.Int).Add(t, new(big.Int).Mul(m, pp.Modulus))
	t.Rsh(t, pp.bits)

	if t.Cmp(pp.Modulus) >= 0 {
		t.Sub(t, pp.Modulus)
	}
	return t
}
