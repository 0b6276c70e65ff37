// Package multiexp implements fixed-base and variable-base multi-scalar
// multiplication: sum_i scalars[i]*bases[i] for a slice of curve points
// sharing one group.Params, plus the windowed fixed-base exponentiation
// tables used when the base points are known ahead of time.
package multiexp

import (
	"container/heap"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/nilfoundation/algebra/internal/group"
)

// scalarMulWindow is the wNAF window width used for every per-base scalar
// multiplication multiexp performs outside the bucket method (BDLO12 already
// wins by batching across bases; naivePlain and BosCoster's final residual
// multiplication are the two call sites a single-base wNAF pass helps).
const scalarMulWindow = 4

func scalarMul[F group.Field[F]](base group.Point[F], scalar *big.Int) group.Point[F] {
	return base.ScalarMulWNAF(scalar, scalarMulWindow)
}

// Method selects the variable-base multiexp algorithm. All three compute
// the same sum; they trade off setup cost, memory, and asymptotic behavior
// differently as the number of terms grows.
type Method int

const (
	// NaivePlain accumulates via a ScalarMul-and-Add pass over every term.
	// Cheapest to reason about, worst asymptotic behavior; the correctness
	// baseline the other two methods are checked against.
	NaivePlain Method = iota
	// BDLO12 is the bucket method (Bernstein-Doumen-Lange-Oosterwijk):
	// split each scalar into fixed-width windows, accumulate bases into
	// 2^c-1 buckets per window, then combine buckets high-window-first.
	BDLO12
	// BosCoster repeatedly combines the two largest-scalar terms via a
	// max-heap, converging scalars toward zero while folding group
	// additions into the bases they're attached to.
	BosCoster
)

// Multiexp computes sum_i scalars[i]*bases[i], splitting the work into
// chunksCount independent chunks run concurrently and reduced in index
// order. len(bases) must equal len(scalars).
func Multiexp[F group.Field[F]](bases []group.Point[F], scalars []*big.Int, method Method, chunksCount int) group.Point[F] {
	if len(bases) == 0 {
		return zeroOf(bases)
	}
	totalSize := len(bases)
	if totalSize < chunksCount || chunksCount <= 1 {
		return multiexpInner(bases, scalars, method)
	}

	oneChunkSize := totalSize / chunksCount
	partials := make([]group.Point[F], chunksCount)

	var g errgroup.Group
	for i := 0; i < chunksCount; i++ {
		i := i
		start := i * oneChunkSize
		end := start + oneChunkSize
		if i == chunksCount-1 {
			end = totalSize
		}
		g.Go(func() error {
			partials[i] = multiexpInner(bases[start:end], scalars[start:end], method)
			return nil
		})
	}
	_ = g.Wait()

	result := partials[0]
	for i := 1; i < len(partials); i++ {
		result = result.Add(partials[i])
	}
	return result
}

func zeroOf[F group.Field[F]](bases []group.Point[F]) group.Point[F] {
	if len(bases) > 0 {
		return group.Infinity(bases[0].P)
	}
	var zero group.Point[F]
	return zero
}

func multiexpInner[F group.Field[F]](bases []group.Point[F], scalars []*big.Int, method Method) group.Point[F] {
	switch method {
	case BDLO12:
		return bdlo12(bases, scalars)
	case BosCoster:
		return bosCoster(bases, scalars)
	default:
		return naivePlain(bases, scalars)
	}
}

func naivePlain[F group.Field[F]](bases []group.Point[F], scalars []*big.Int) group.Point[F] {
	result := group.Infinity(bases[0].P)
	for i, base := range bases {
		result = result.Add(scalarMul(base, scalars[i]))
	}
	return result
}

// MultiexpWithMixedAddition separates out scalar==1 terms, folding them
// into the accumulator with MixedAdd directly (skipping scalar==0 terms
// entirely), then dispatches the remaining terms to Multiexp. Bases paired
// with scalar 1 must be affine (Z = 1), as MixedAdd assumes.
func MultiexpWithMixedAddition[F group.Field[F]](bases []group.Point[F], scalars []*big.Int, method Method, chunksCount int) group.Point[F] {
	acc := zeroOf(bases)
	var g []group.Point[F]
	var p []*big.Int

	for i, s := range scalars {
		switch {
		case s.Sign() == 0:
			continue
		case s.Cmp(big.NewInt(1)) == 0:
			acc = acc.MixedAdd(bases[i])
		default:
			g = append(g, bases[i])
			p = append(p, s)
		}
	}

	if len(g) == 0 {
		return acc
	}
	return acc.Add(Multiexp(g, p, method, chunksCount))
}

// bdlo12 is the bucket method: window width c is chosen from n (the BDLO12
// heuristic c ~ log2(n) - 2, clamped to a sane range), scalars are split
// into c-bit windows, bases are accumulated into per-window buckets keyed
// by the window digit, and the windows are combined from the most to the
// least significant via repeated doubling.
func bdlo12[F group.Field[F]](bases []group.Point[F], scalars []*big.Int) group.Point[F] {
	n := len(bases)
	c := bucketWindowSize(n)
	maxBits := maxScalarBits(scalars)
	if maxBits == 0 {
		return group.Infinity(bases[0].P)
	}
	numWindows := (maxBits + c - 1) / c

	result := group.Infinity(bases[0].P)
	for w := numWindows - 1; w >= 0; w-- {
		buckets := make([]group.Point[F], 1<<uint(c))
		for i := range buckets {
			buckets[i] = group.Infinity(bases[0].P)
		}
		for i, s := range scalars {
			digit := windowDigit(s, w, c)
			if digit == 0 {
				continue
			}
			buckets[digit] = buckets[digit].Add(bases[i])
		}

		windowSum := group.Infinity(bases[0].P)
		running := group.Infinity(bases[0].P)
		for d := len(buckets) - 1; d >= 1; d-- {
			running = running.Add(buckets[d])
			windowSum = windowSum.Add(running)
		}

		for i := 0; i < c; i++ {
			result = result.Double()
		}
		result = result.Add(windowSum)
	}
	return result
}

func bucketWindowSize(n int) int {
	if n < 4 {
		return 1
	}
	c := big.NewInt(int64(n)).BitLen() - 2
	if c < 1 {
		c = 1
	}
	if c > 16 {
		c = 16
	}
	return c
}

func maxScalarBits(scalars []*big.Int) int {
	max := 0
	for _, s := range scalars {
		if b := s.BitLen(); b > max {
			max = b
		}
	}
	return max
}

func windowDigit(s *big.Int, window, c int) int {
	digit := 0
	base := window * c
	for i := 0; i < c; i++ {
		if s.Bit(base+i) == 1 {
			digit |= 1 << uint(i)
		}
	}
	return digit
}

// bosCosterItem is one live term in the heap: a scalar weight and the base
// point it is currently attached to.
type bosCosterItem[F group.Field[F]] struct {
	scalar *big.Int
	base   group.Point[F]
}

type bosCosterHeap[F group.Field[F]] []*bosCosterItem[F]

func (h bosCosterHeap[F]) Len() int            { return len(h) }
func (h bosCosterHeap[F]) Less(i, j int) bool  { return h[i].scalar.Cmp(h[j].scalar) > 0 }
func (h bosCosterHeap[F]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bosCosterHeap[F]) Push(x any)         { *h = append(*h, x.(*bosCosterItem[F])) }
func (h *bosCosterHeap[F]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// bosCoster repeatedly takes the two largest-scalar terms off a max-heap,
// subtracts the smaller scalar from the larger and folds the smaller term's
// base into the larger term's base, until one term remains; that term's
// base times its residual scalar is the answer.
func bosCoster[F group.Field[F]](bases []group.Point[F], scalars []*big.Int) group.Point[F] {
	h := &bosCosterHeap[F]{}
	heap.Init(h)
	for i, s := range scalars {
		if s.Sign() == 0 {
			continue
		}
		heap.Push(h, &bosCosterItem[F]{scalar: new(big.Int).Set(s), base: bases[i]})
	}
	if h.Len() == 0 {
		return group.Infinity(bases[0].P)
	}

	for h.Len() > 1 {
		top := heap.Pop(h).(*bosCosterItem[F])
		second := heap.Pop(h).(*bosCosterItem[F])

		if top.scalar.Cmp(second.scalar) == 0 {
			merged := top.base.Add(second.base)
			heap.Push(h, &bosCosterItem[F]{scalar: top.scalar, base: merged})
			continue
		}

		top.scalar.Sub(top.scalar, second.scalar)
		second.base = second.base.Add(top.base)
		heap.Push(h, second)
		if top.scalar.Sign() != 0 {
			heap.Push(h, top)
		}
	}

	last := heap.Pop(h).(*bosCosterItem[F])
	return scalarMul(last.base, last.scalar)
}

// InnerProduct computes sum_i a[i]*b[i] via naivePlain multiexp using b as
// the scalar coefficients, mirroring the construction's use as a
// degenerate multiexp over an equal-length base/scalar pair.
func InnerProduct[F group.Field[F]](a []group.Point[F], b []*big.Int) group.Point[F] {
	return Multiexp(a, b, NaivePlain, 1)
}
