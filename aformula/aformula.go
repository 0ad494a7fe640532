// Package aformula computes Gourdon's A(x, y) term:
//
//	A(x, y) = sum_{b: start < p_b <= x^(1/3)} sum_{j=b+1}^{pi(sqrt(x/p_b))}
//	              [xn < y] 2*pi(xn) + [xn >= y] pi(xn),   xn = (x/p_b)/p_j
//
// Runtime O(x^(1/2+o(1))), same complexity class as P2/B.
//
// Grounded on original_source/src/gourdon/A.cpp's A_OpenMP: the same
// b/j double loop bounded by pi[x13] and pi[isqrt(x2)], the same
// fast_div64-style divide-by-a-64-bit-prime, and the same "double-count
// below y" branch. Translated onto pitable.Table in place of PiTable and
// primearray.Array in place of a raw primes vector, and onto a
// goroutine/channel reduction in place of OpenMP's dynamic-schedule
// parallel-for.
package aformula

import (
	"sync"

	"primecount/imath"
	"primecount/pitable"
	"primecount/primearray"
	"primecount/wideint"
)

// Compute returns A(x, y) using up to threads goroutines.
func Compute(x wideint.Signed, y int64, threads int) wideint.Signed {
	xw := wideint.ToInt128(x)
	if threads < 1 {
		threads = 1
	}

	y2 := wideint.ToInt128(wideint.FromInt64(y).Mul(wideint.FromInt64(y)))
	start := maxI64(imath.IrootWide(xw, 4), xw.Div(y2).Int64())

	qStart, _ := xw.DivFast64(maxI64(start, 1))
	maxPrime := imath.IsqrtWide(qStart.(wideint.Int128))

	primes := primearray.New(maxPrime)
	pi := pitable.New(imath.IsqrtWide(xw))

	x13 := imath.IrootWide(xw, 3)
	piX13 := pi.Get(x13)
	bLo := pi.Get(start) + 1

	if bLo > piX13 {
		return wideint.Narrow(wideint.FromInt64(0))
	}

	jobs := make(chan int64, piX13-bLo+1)
	for b := bLo; b <= piX13; b++ {
		jobs <- b
	}
	close(jobs)

	results := make(chan wideint.Int128, threads)
	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := wideint.ToInt128(wideint.FromInt64(0))
			for b := range jobs {
				local = local.Add(rowSum(xw, y, b, primes, pi)).(wideint.Int128)
			}
			results <- local
		}()
	}
	wg.Wait()
	close(results)

	sum := wideint.ToInt128(wideint.FromInt64(0))
	for r := range results {
		sum = sum.Add(r).(wideint.Int128)
	}
	return wideint.Narrow(sum)
}

// rowSum is A_OpenMP's inner j-loop for one outer prime index b.
func rowSum(x wideint.Int128, y, b int64, primes *primearray.Array, pi *pitable.Table) wideint.Int128 {
	prime := primes.At(int(b - 1))
	qx2, _ := x.DivFast64(prime)
	x2 := qx2.(wideint.Int128)

	maxJ := pi.Get(imath.IsqrtWide(x2))

	sum := wideint.ToInt128(wideint.FromInt64(0))
	for j := b + 1; j <= maxJ; j++ {
		pj := primes.At(int(j - 1))
		qxn, _ := x2.DivFast64(pj)
		xn := qxn.(wideint.Int128).Int64()

		piXn := pi.Get(xn)
		if xn < y {
			sum = sum.Add(wideint.FromInt64(2 * piXn)).(wideint.Int128)
		} else {
			sum = sum.Add(wideint.FromInt64(piXn)).(wideint.Int128)
		}
	}
	return sum
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
