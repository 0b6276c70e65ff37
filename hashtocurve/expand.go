// Package hashtocurve implements the curve-independent pieces of RFC 9380
// hash-to-curve (expand_message_xmd and hash_to_field) plus a BLS12-381 G1
// map-to-curve and cofactor clear built on the shared fp/group types, so
// any curve package in this module can grow its own HashToG1/HashToG2
// without re-deriving the byte-expansion machinery.
package hashtocurve

import (
	"crypto/sha256"
	"errors"
	"math/big"
)

// ExpandMessageXMD implements expand_message_xmd from RFC 9380 Section
// 5.3.1 using SHA-256 as the underlying hash: b_in_bytes = 32, r_in_bytes =
// 64. Produces lenInBytes of pseudo-random output from msg and dst.
func ExpandMessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	const bInBytes = 32
	const rInBytes = 64

	ell := (lenInBytes + bInBytes - 1) / bInBytes
	if ell > 255 {
		return nil, errors.New("hashtocurve: expand_message_xmd output too large")
	}
	if len(dst) > 255 {
		return nil, errors.New("hashtocurve: DST too long")
	}

	dstPrime := make([]byte, len(dst)+1)
	copy(dstPrime, dst)
	dstPrime[len(dst)] = byte(len(dst))

	zPad := make([]byte, rInBytes)
	libStr := []byte{byte(lenInBytes >> 8), byte(lenInBytes)}

	h := sha256.New()
	h.Write(zPad)
	h.Write(msg)
	h.Write(libStr)
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h.Reset()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	b1 := h.Sum(nil)

	uniform := make([]byte, 0, lenInBytes+bInBytes)
	uniform = append(uniform, b1...)
	bPrev := b1

	for i := 2; i <= ell; i++ {
		xored := make([]byte, bInBytes)
		for j := 0; j < bInBytes; j++ {
			xored[j] = b0[j] ^ bPrev[j]
		}
		h.Reset()
		h.Write(xored)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bi := h.Sum(nil)
		uniform = append(uniform, bi...)
		bPrev = bi
	}

	return uniform[:lenInBytes], nil
}

// HashToField produces count field elements modulo modulus from msg and
// dst, per RFC 9380 Section 5.2 with m=1 (a prime field, not an extension)
// and L=64 bytes per element -- a safe uniformity margin for every base
// field this module defines (up to BLS12-381's 381-bit p).
func HashToField(msg, dst []byte, modulus *big.Int, count int) ([]*big.Int, error) {
	const l = 64
	uniform, err := ExpandMessageXMD(msg, dst, count*l)
	if err != nil {
		return nil, err
	}
	out := make([]*big.Int, count)
	for i := 0; i < count; i++ {
		u := new(big.Int).SetBytes(uniform[i*l : (i+1)*l])
		u.Mod(u, modulus)
		out[i] = u
	}
	return out, nil
}

// ValidateDST checks that a domain separation tag conforms to the
// hash-to-curve spec: non-empty and at most 255 bytes.
func ValidateDST(dst []byte) error {
	if len(dst) == 0 {
		return errors.New("hashtocurve: empty DST")
	}
	if len(dst) > 255 {
		return errors.New("hashtocurve: DST exceeds 255 bytes")
	}
	return nil
}
