// Package p3 computes the 3rd partial sieve function used by Lehmer's
// formula: P3(x, a) counts the integers <= x with exactly 3 prime
// factors, each exceeding the a-th prime.
//
// Grounded on original_source/src/P3.cpp: the same double loop over
// prime indices i in (a, pi(y)] and j in [i, bi], the same
// pi_bsearch(x/p_i/p_j) - (j-1) inner term, and the same
// dynamic-schedule parallel-for-with-reduction outer loop, translated
// onto this module's primearray.Array in place of a raw primes vector
// with a leading sentinel, and onto a goroutine/channel reduction in
// place of OpenMP's `reduction(+: sum)`.
package p3

import (
	"sync"

	"primecount/imath"
	"primecount/primearray"
	"primecount/wideint"
)

// Compute returns P3(x, a) using up to threads goroutines. primes must
// contain every prime up to sqrt(x); a is the number of smallest primes
// excluded from the count (i.e. only the (a+1)-th prime, primes.At(a), and
// larger participate).
func Compute(x wideint.Signed, a int64, threads int, primes *primearray.Array) wideint.Signed {
	xw := wideint.ToInt128(x)
	if threads < 1 {
		threads = 1
	}

	y := imath.IrootWide(xw, 3)
	piY := primes.PiBsearch(y)

	if a+1 > piY {
		return wideint.Narrow(wideint.FromInt64(0))
	}

	jobs := make(chan int64, piY-a)
	for i := a + 1; i <= piY; i++ {
		jobs <- i
	}
	close(jobs)

	results := make(chan wideint.Int128, threads)
	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := wideint.ToInt128(wideint.FromInt64(0))
			for i := range jobs {
				local = local.Add(rowSum(xw, i, primes)).(wideint.Int128)
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

// rowSum computes the inner j-loop for a single outer index i: the
// contribution of every triple (p_i, p_j, remaining-factor) with
// i <= j <= bi.
func rowSum(x wideint.Int128, i int64, primes *primearray.Array) wideint.Int128 {
	pi := primes.At(int(i - 1))
	qxi, _ := x.DivFast64(pi)
	xi := qxi.(wideint.Int128)

	bi := primes.PiBsearch(imath.IsqrtWide(xi))

	sum := wideint.ToInt128(wideint.FromInt64(0))
	for j := i; j <= bi; j++ {
		pj := primes.At(int(j - 1))
		qj, _ := xi.DivFast64(pj)
		term := primes.PiBsearch(qj.(wideint.Int128).Int64()) - (j - 1)
		sum = sum.Add(wideint.FromInt64(term)).(wideint.Int128)
	}
	return sum
}
