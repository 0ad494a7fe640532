// Package s2trivial computes the contribution of the trivial special
// leaves in Deleglise-Rivat's algorithm: for every prime q in
// (max(p_c, sqrt(z)), y], the trivial leaf n = q*q contributes
// pi(y) - pi(max(x/q^2, q)).
//
// Grounded on original_source/src/deleglise-rivat/S2_trivial.cpp's
// S2_trivial_OpenMP: the same per-thread [start, stop) partition of
// (max(p_c, sqrt(z)), y], the same primesieve::iterator-driven prime
// scan, and the same xn = max(x/(prime*prime), prime) term. Translated
// onto primestream.Stream in place of primesieve::iterator and onto a
// goroutine worker pool in place of OpenMP's parallel for, with
// resumelog.Log standing in for S2_trivial.cpp's JSON load_backup/
// store_backup pair.
package s2trivial

import (
	"sync"

	"primecount/imath"
	"primecount/pitable"
	"primecount/primearray"
	"primecount/primestream"
	"primecount/resumelog"
	"primecount/sieve"
	"primecount/wideint"
)

// Compute returns S2_trivial(x, y, z, c) using up to threads goroutines.
// If log is non-nil, a matching (x,y,z) checkpoint is reused instead of
// recomputing, and a fresh one is stored on completion.
func Compute(x wideint.Signed, y, z, c int64, threads int, log *resumelog.Log) wideint.Signed {
	if log != nil {
		if rec, ok := log.IsResume("S2_trivial", x, wideint.FromInt64(y), wideint.FromInt64(z)); ok {
			if v, err := wideint.ParseInt128(rec.Sum); err == nil {
				return wideint.Narrow(v)
			}
		}
	}

	sum := compute(x, y, z, c, threads)

	if log != nil {
		log.Store("S2_trivial", resumelog.Record{
			X: x.String(), Y: wideint.FromInt64(y).String(), Z: wideint.FromInt64(z).String(),
			Sum: sum.String(), Percent: 100, Seconds: 0,
		})
	}
	return sum
}

func compute(x wideint.Signed, y, z, c int64, threads int) wideint.Signed {
	xw := wideint.ToInt128(x)
	if threads < 1 {
		threads = 1
	}

	pi := pitable.New(y)
	piY := pi.Get(y)
	sqrtZ := imath.Isqrt(z)
	primeC := primearray.NthPrime(maxI64(c, 1))
	if c < 1 {
		primeC = 0
	}

	start0 := maxI64(primeC, sqrtZ) + 1
	if start0 > y {
		return wideint.Narrow(wideint.FromInt64(0))
	}

	s := sieve.New(y + 2)
	threadDistance := imath.CeilDiv(y-start0+1, int64(threads))
	if threadDistance < 1 {
		threadDistance = 1
	}

	results := make(chan wideint.Int128, threads)
	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		start := start0 + threadDistance*int64(i)
		if start > y {
			break
		}
		stop := minI64(start+threadDistance, y+1)
		wg.Add(1)
		go func(start, stop int64) {
			defer wg.Done()
			results <- threadSum(s, xw, pi, piY, start, stop)
		}(start, stop)
	}
	wg.Wait()
	close(results)

	sum := wideint.ToInt128(wideint.FromInt64(0))
	for r := range results {
		sum = sum.Add(r).(wideint.Int128)
	}
	return wideint.Narrow(sum)
}

func threadSum(s *sieve.Sieve, x wideint.Int128, pi *pitable.Table, piY, start, stop int64) wideint.Int128 {
	sum := wideint.ToInt128(wideint.FromInt64(0))
	stream := primestream.New(s, start, stop-1)

	for prime := stream.NextPrime(); prime != 0 && prime < stop; prime = stream.NextPrime() {
		pp := wideint.ToInt128(wideint.FromInt64(prime).Mul(wideint.FromInt64(prime)))
		xn := maxI64(x.Div(pp).Int64(), prime)
		sum = sum.Add(wideint.FromInt64(piY - pi.Get(xn))).(wideint.Int128)
	}
	return sum
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

