package multiexp

import (
	"math/big"

	"github.com/nilfoundation/algebra/internal/group"
)

// WindowTable stores, for a fixed base g, a precomputed outer x inner
// table of partial sums: powers_of_g[outer][inner] is inner*g*2^(outer*window),
// the layout windowedExp walks to exponentiate g by an arbitrary scalar
// using one group addition per outer window instead of per bit.
type WindowTable[F group.Field[F]] [][]group.Point[F]

// GetExpWindowSize picks the fixed-base window width for a batch of
// numScalars exponentiations against the same base, using a static
// table of scalar-count thresholds; the tradeoff is table-build cost
// (2^window additions per outer window) against per-exponentiation cost
// (one addition per outer window instead of one double-and-add per bit).
func GetExpWindowSize(numScalars int, thresholds []int) int {
	if len(thresholds) == 0 {
		return 17
	}
	window := 1
	for i := len(thresholds) - 1; i >= 0; i-- {
		if thresholds[i] != 0 && numScalars >= thresholds[i] {
			window = i + 1
			break
		}
	}
	return window
}

// GetWindowTable builds the window table for base g, covering scalars up
// to scalarSize bits with windows of width `window`.
func GetWindowTable[F group.Field[F]](scalarSize, window int, g group.Point[F]) WindowTable[F] {
	inWindow := 1 << uint(window)
	outerc := (scalarSize + window - 1) / window
	lastInWindow := 1 << uint(scalarSize-(outerc-1)*window)

	table := make(WindowTable[F], outerc)
	gouter := g
	zero := group.Infinity(g.P)

	for outer := 0; outer < outerc; outer++ {
		curInWindow := inWindow
		if outer == outerc-1 {
			curInWindow = lastInWindow
		}
		row := make([]group.Point[F], inWindow)
		for i := range row {
			row[i] = zero
		}
		ginner := zero
		for inner := 0; inner < curInWindow; inner++ {
			row[inner] = ginner
			ginner = ginner.Add(gouter)
		}
		table[outer] = row

		for i := 0; i < window; i++ {
			gouter = gouter.Double()
		}
	}
	return table
}

// WindowedExp evaluates a precomputed table at exponent pow: for each
// outer window it reads the `window` bits of pow landing in that window
// and adds the corresponding precomputed row entry.
func WindowedExp[F group.Field[F]](scalarSize, window int, table WindowTable[F], pow *big.Int) group.Point[F] {
	outerc := (scalarSize + window - 1) / window
	res := table[0][0]

	for outer := 0; outer < outerc; outer++ {
		inner := 0
		for i := 0; i < window; i++ {
			if pow.Bit(outer*window+i) == 1 {
				inner |= 1 << uint(i)
			}
		}
		res = res.Add(table[outer][inner])
	}
	return res
}

// BatchExp evaluates the window table at every scalar in v.
func BatchExp[F group.Field[F]](scalarSize, window int, table WindowTable[F], v []*big.Int) []group.Point[F] {
	res := make([]group.Point[F], len(v))
	for i, pow := range v {
		res[i] = WindowedExp(scalarSize, window, table, pow)
	}
	return res
}

// BatchExpWithCoeff evaluates the window table at coeff*v[i] for every i.
func BatchExpWithCoeff[F group.Field[F]](scalarSize, window int, table WindowTable[F], coeff *big.Int, v []*big.Int) []group.Point[F] {
	res := make([]group.Point[F], len(v))
	for i, pow := range v {
		scaled := new(big.Int).Mul(coeff, pow)
		res[i] = WindowedExp(scalarSize, window, table, scaled)
	}
	return res
}
