package bn254

import (
	"errors"

	"github.com/nilfoundation/algebra/algerr"
	"github.com/nilfoundation/algebra/internal/bnfamily"
	"github.com/nilfoundation/algebra/internal/fp"
	"github.com/nilfoundation/algebra/internal/group"
	"github.com/nilfoundation/algebra/internal/tower"
	"github.com/nilfoundation/algebra/internal/wnaf"
	"github.com/nilfoundation/algebra/log"
)

const curveName = "bn254"

// EllCoeff is one Miller-loop line-function evaluation, sparse in the
// Fp12 basis: the line contributes ell_0 + ell_VV*v^2 + ell_VW*v*w (up to the
// P-dependent scalars folded in at accumulation time).
type EllCoeff struct {
	Ell0, EllVW, EllVV tower.Fp2
}

// G1Precomp is P's affine coordinates, reused across every line evaluation
// in a Miller loop against any number of G2 precomputations.
type G1Precomp struct {
	PX, PY fp.Element
}

// G2Precomp is Q's affine coordinates plus the full sequence of line-
// function coefficients accumulated while walking the ate loop count plus
// the two BN-family closing steps against pi(Q) and -pi^2(Q).
type G2Precomp struct {
	QX, QY tower.Fp2
	Coeffs []EllCoeff
}

// PrecomputeG1 affinizes P for repeated use as a Miller-loop G1 input.
func PrecomputeG1(p G1Point) (G1Precomp, error) {
	x, y, ok := p.ToAffine()
	if !ok {
		return G1Precomp{}, algerr.Invalid(curveName, "precompute_g1", errors.New("point at infinity"))
	}
	return G1Precomp{PX: x, PY: y}, nil
}

func twistNonResidue() tower.Fp2 { return fp6NonResidue() }

// doublingStep mirrors the shared D-twist doubling_step_for_flipped_miller_loop
// formula, identical in shape to the one used by the BLS12-family engine.
func doublingStep(twoInv fp.Element, cur G2Point) (G2Point, EllCoeff) {
	x, y, z := cur.X, cur.Y, cur.Z
	a := y.Mul(x).MulByFp(twoInv)
	b := y.Square()
	c := z.Square()
	d := c.Double().Add(c)
	e := g2Params.B.Mul(d)
	f := e.Double().Add(e)
	g := b.Add(f).MulByFp(twoInv)
	h := y.Add(z).Square().Sub(b.Add(c))
	i := e.Sub(b)
	j := x.Square()
	eSq := e.Square()

	newX := a.Mul(b.Sub(f))
	newY := g.Square().Sub(eSq.Double().Add(eSq))
	newZ := b.Mul(h)

	coeff := EllCoeff{
		Ell0:  twistNonResidue().Mul(i),
		EllVW: h.Neg(),
		EllVV: j.Double().Add(j),
	}
	return G2Point{P: cur.P, X: newX, Y: newY, Z: newZ}, coeff
}

// mixedAdditionStep mirrors mixed_addition_step_for_flipped_miller_loop.
func mixedAdditionStep(base, cur G2Point) (G2Point, EllCoeff) {
	x1, y1, z1 := cur.X, cur.Y, cur.Z
	x2, y2 := base.X, base.Y

	d := x1.Sub(x2.Mul(z1))
	e := y1.Sub(y2.Mul(z1))
	f := d.Square()
	g := e.Square()
	h := d.Mul(f)
	i := x1.Mul(f)
	j := h.Add(z1.Mul(g)).Sub(i.Double())

	newX := d.Mul(j)
	newY := e.Mul(i.Sub(j)).Sub(h.Mul(y1))
	newZ := z1.Mul(h)

	coeff := EllCoeff{
		Ell0:  twistNonResidue().Mul(e.Mul(x2).Sub(d.Mul(y2))),
		EllVV: e.Neg(),
		EllVW: d,
	}
	return G2Point{P: cur.P, X: newX, Y: newY, Z: newZ}, coeff
}

// PrecomputeG2 affinizes Q, walks the ate loop count, and then appends the
// two BN-family closing addition steps against Q1 = pi(Q) and Q2 = -pi^2(Q)
// that close the optimal-ate loop for alt_bn128-shaped curves.
func PrecomputeG2(q G2Point) (G2Precomp, error) {
	qx, qy, ok := q.ToAffine()
	if !ok {
		return G2Precomp{}, algerr.Invalid(curveName, "precompute_g2", errors.New("point at infinity"))
	}

	twoInv, _ := Base.FromUint64(2).Inverse()

	result := G2Precomp{QX: qx, QY: qy}
	qCopy := group.FromAffine(g2Params, qx, qy)
	negQ := group.FromAffine(g2Params, qx, qy.Neg())
	r := qCopy

	for _, d := range wnaf.AteTraversal(AteLoopCount) {
		var c EllCoeff
		r, c = doublingStep(twoInv, r)
		result.Coeffs = append(result.Coeffs, c)
		if d != 0 {
			base := qCopy
			if d < 0 {
				base = negQ
			}
			r, c = mixedAdditionStep(base, r)
			result.Coeffs = append(result.Coeffs, c)
		}
	}

	q1 := mulByQ(qCopy)
	q2 := mulByQ(q1)
	if AteIsLoopCountNeg {
		r.Y = r.Y.Neg()
	}
	q2.Y = q2.Y.Neg()

	var c EllCoeff
	r, c = mixedAdditionStep(q1, r)
	result.Coeffs = append(result.Coeffs, c)
	_, c = mixedAdditionStep(q2, r)
	result.Coeffs = append(result.Coeffs, c)

	return result, nil
}

func accumulateLine(f tower.Fp12, c EllCoeff, prec G1Precomp) tower.Fp12 {
	return f.MulBy024(c.Ell0, c.EllVW.MulByFp(prec.PY), c.EllVV.MulByFp(prec.PX))
}

// MillerLoop evaluates the Miller loop for one (G1, G2) precomputed pair,
// including the two BN-family closing line evaluations.
func MillerLoop(precP G1Precomp, precQ G2Precomp) (tower.Fp12, error) {
	f := GTOne()
	idx := 0
	for _, d := range wnaf.AteTraversal(AteLoopCount) {
		if idx >= len(precQ.Coeffs) {
			return tower.Fp12{}, algerr.Mismatch(curveName, "miller_loop", errors.New("coefficient list too short"))
		}
		f = f.Square()
		f = accumulateLine(f, precQ.Coeffs[idx], precP)
		idx++
		if d != 0 {
			if idx >= len(precQ.Coeffs) {
				return tower.Fp12{}, algerr.Mismatch(curveName, "miller_loop", errors.New("coefficient list too short"))
			}
			f = accumulateLine(f, precQ.Coeffs[idx], precP)
			idx++
		}
	}

	if AteIsLoopCountNeg {
		inv, ok := f.Inverse()
		if !ok {
			return tower.Fp12{}, algerr.Invalid(curveName, "miller_loop", errors.New("non-invertible accumulator"))
		}
		f = inv
	}

	for ; idx < len(precQ.Coeffs); idx++ {
		f = accumulateLine(f, precQ.Coeffs[idx], precP)
	}

	return f, nil
}

// DoubleMillerLoop evaluates two Miller loops in lockstep, halving the
// number of squarings versus two independent calls.
func DoubleMillerLoop(precP1 G1Precomp, precQ1 G2Precomp, precP2 G1Precomp, precQ2 G2Precomp) (tower.Fp12, error) {
	f := GTOne()
	idx := 0
	for _, d := range wnaf.AteTraversal(AteLoopCount) {
		if idx >= len(precQ1.Coeffs) || idx >= len(precQ2.Coeffs) {
			return tower.Fp12{}, algerr.Mismatch(curveName, "double_miller_loop", errors.New("coefficient list too short"))
		}
		f = f.Square()
		f = accumulateLine(f, precQ1.Coeffs[idx], precP1)
		f = accumulateLine(f, precQ2.Coeffs[idx], precP2)
		idx++
		if d != 0 {
			f = accumulateLine(f, precQ1.Coeffs[idx], precP1)
			f = accumulateLine(f, precQ2.Coeffs[idx], precP2)
			idx++
		}
	}

	if AteIsLoopCountNeg {
		inv, ok := f.Inverse()
		if !ok {
			return tower.Fp12{}, algerr.Invalid(curveName, "double_miller_loop", errors.New("non-invertible accumulator"))
		}
		f = inv
	}

	for ; idx < len(precQ1.Coeffs) && idx < len(precQ2.Coeffs); idx++ {
		f = accumulateLine(f, precQ1.Coeffs[idx], precP1)
		f = accumulateLine(f, precQ2.Coeffs[idx], precP2)
	}

	return f, nil
}

// FinalExponentiation raises a Miller-loop output into the order-n
// subgroup of GT via the shared BN-family easy/hard-part chain.
func FinalExponentiation(f tower.Fp12) tower.Fp12 {
	return bnfamily.FinalExponentiation[tower.Fp12](f, finalExpSeed)
}

// Pairing computes the (non-final-exponentiated) ate pairing of P and Q.
func Pairing(p G1Point, q G2Point) (tower.Fp12, error) {
	log.Debug("pairing start", "curve", curveName, "op", "pairing")
	precP, err := PrecomputeG1(p)
	if err != nil {
		return tower.Fp12{}, err
	}
	precQ, err := PrecomputeG2(q)
	if err != nil {
		return tower.Fp12{}, err
	}
	f, err := MillerLoop(precP, precQ)
	if err != nil {
		return tower.Fp12{}, err
	}
	log.Debug("pairing done", "curve", curveName, "op", "pairing")
	return f, nil
}

// ReducedPairing computes the full bilinear pairing e(P, Q) in the
// order-n subgroup of GT.
func ReducedPairing(p G1Point, q G2Point) (tower.Fp12, error) {
	f, err := Pairing(p, q)
	if err != nil {
		return tower.Fp12{}, err
	}
	return FinalExponentiation(f), nil
}
