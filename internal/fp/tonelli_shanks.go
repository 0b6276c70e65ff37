package fp

import "math/big"

// tsState holds the precomputed (s, t, nqr, nqr_to_t) quadruple used by
// Tonelli-Shanks: p - 1 = t * 2^s with t odd, nqr a fixed quadratic
// non-residue, nqr_to_t = nqr^t.
type tsState struct {
	s      uint
	t      *big.Int
	nqrToT Element
}

// tonelliShanksState lazily computes and caches this field's
// Tonelli-Shanks constants the first time a sqrt falls off the p=3(mod 4)
// fast path.
func (pp *Params) tonelliShanksState() *tsState {
	if pp.ts != nil {
		return pp.ts
	}
	pMinus1 := new(big.Int).Sub(pp.Modulus, big.NewInt(1))
	s := uint(0)
	t := new(big.Int).Set(pMinus1)
	for t.Bit(0) == 0 {
		t.Rsh(t, 1)
		s++
	}

	nqr := pp.FromUint64(2)
	for nqr.IsSquare() {
		nqr = nqr.Add(pp.One())
	}

	st := &tsState{s: s, t: t, nqrToT: nqr.Pow(t)}
	pp.ts = st
	return st
}

// tonelliShanks solves x^2 = a (mod p) using the general algorithm,
// returning ok=false if a is not a quadratic residue (the caller is
// expected to have already checked IsSquare, but this stays defensive).
func (pp *Params) tonelliShanks(a Element) (Element, bool) {
	if !a.IsSquare() {
		return pp.Zero(), false
	}
	st := pp.tonelliShanksState()

	expM := new(big.Int).Add(st.t, big.NewInt(1))
	expM.Rsh(expM, 1)
	x := a.Pow(expM)
	b := a.Pow(st.t)
	g := st.nqrToT
	r := st.s

	for !b.IsOne() {
		m := uint(0)
		bb := b
		for !bb.IsOne() {
			bb = bb.Square()
			m++
			if m == r {
				return pp.Zero(), false
			}
		}

		gExp := new(big.Int).Lsh(big.NewInt(1), uint(r-m-1))
		gs := g.Pow(gExp)
		g = gs.Square()
		x = x.Mul(gs)
		b = b.Mul(g)
		r = m
	}
	return canonicalSqrtSign(x), true
}

// Cmov returns a if flag == 0, else c -- constant-time-shaped selection
// used by hash-to-curve sign fixups (not constant-time at the Go level
// since the substrate is math/big, see the library-wide constant-time
// caveat in SPEC_FULL.md).
func Cmov(a, c Element, flag int) Element {
	if flag != 0 {
		return c
	}
	return a
}
