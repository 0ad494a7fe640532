// Package p2b computes the B(x, y) formula from Gourdon's algorithm, a
// simplified variant of P2(x, a):
//
//	B(x, y) = sum_{i=pi(y)+1}^{pi(sqrt(x))} pi(x / p_i)
//
// Runtime O(z log log z), memory O(sqrt(z)), z = x/y.
//
// Grounded on original_source/src/gourdon/B.cpp: the per-thread forward
// and reverse prime cursors (B_thread), the carry-based cross-thread
// reduction that recovers true pi(x/p) values from chunk-relative counts,
// and the balanceLoad doubling/halving of thread_distance. Translated
// onto this module's primestream.Stream and sieve.Sieve in place of
// primesieve::iterator, and onto wideint.Signed in place of the
// template<T> dispatch over int64_t/int128_t.
package p2b

import (
	"sync"
	"time"

	"primecount/imath"
	"primecount/primestream"
	"primecount/sieve"
	"primecount/wideint"
)

// minThreadDistance is balanceLoad's floor; it only binds at the scale the
// original algorithm targets (x beyond ~10^15). Smaller inputs clamp to
// the per-thread share instead so the tuning loop stays exercised at
// every scale this module is actually tested at.
const minThreadDistance = 1 << 23

// Compute returns B(x, y) using up to threads goroutines.
func Compute(x wideint.Signed, y int64, threads int) wideint.Signed {
	xw := wideint.ToInt128(x)
	if xw.CmpInt64(4) < 0 {
		return wideint.Narrow(wideint.FromInt64(0))
	}
	if threads < 1 {
		threads = 1
	}

	low := int64(2)
	zVal, _ := xw.DivFast64(maxI64(y, 1))
	zi := zVal.(wideint.Int128).Int64()

	sqrtX := imath.IsqrtWide(xw)
	s := sieve.New(sqrtX*2 + zi + 2)

	threadDistance := int64(imath.InBetween(1, minThreadDistance, imath.CeilDiv(zi-low, int64(threads))))

	sum := wideint.ToInt128(wideint.FromInt64(0))
	pixTotal := int64(0)

	for low < zi {
		maxThreads := int64(imath.CeilDiv(zi-low, threadDistance))
		batchThreads := int(imath.InBetween(1, int64(threads), maxThreads))

		start := time.Now()
		sums := make([]wideint.Int128, batchThreads)
		pix := make([]int64, batchThreads)
		pixCount := make([]int64, batchThreads)

		var wg sync.WaitGroup
		for i := 0; i < batchThreads; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				sums[idx], pix[idx], pixCount[idx] = threadSum(s, xw, y, zi, low, int64(idx), threadDistance)
			}(i)
		}
		wg.Wait()

		for i := 0; i < batchThreads; i++ {
			sum = sum.Add(sums[i]).(wideint.Int128)
		}

		low += threadDistance * int64(batchThreads)
		threadDistance = balanceLoad(threadDistance, low, zi, batchThreads, start)

		for i := 0; i < batchThreads; i++ {
			sum = sum.Add(wideint.FromInt64(pixTotal).Mul(wideint.FromInt64(pixCount[i]))).(wideint.Int128)
			pixTotal += pix[i]
		}
	}

	return wideint.Narrow(sum)
}

// threadSum is B_thread: one worker's contribution over its chunk of
// [low, low+threadDistance), returning its local sum plus the raw
// (pix, pixCount) counters the caller must fold back in with a carry.
func threadSum(s *sieve.Sieve, x wideint.Int128, y, z, low, threadNum, threadDistance int64) (sum wideint.Int128, pix, pixCount int64) {
	sum = wideint.ToInt128(wideint.FromInt64(0))

	chunkLow := low + threadDistance*threadNum
	chunkZ := minI64(chunkLow+threadDistance, z)

	qz, _ := x.DivFast64(maxI64(chunkZ, 1))
	start := maxI64(qz.(wideint.Int128).Int64(), y)

	qlow, _ := x.DivFast64(maxI64(chunkLow, 1))
	stop := minI64(qlow.(wideint.Int128).Int64(), imath.IsqrtWide(x))

	fwd := primestream.New(s, chunkLow, chunkZ)
	rev := primestream.New(s, stop+1, stop+1)

	next := fwd.NextPrime()
	prime := rev.PrevPrime()

	for prime > start {
		qxp, _ := x.DivFast64(prime)
		xpVal := qxp.(wideint.Int128).Int64()
		if xpVal >= chunkZ {
			break
		}
		for next != 0 && next <= xpVal {
			pix++
			next = fwd.NextPrime()
		}
		pixCount++
		sum = sum.Add(wideint.FromInt64(pix)).(wideint.Int128)
		prime = rev.PrevPrime()
	}

	for next != 0 && next <= chunkZ-1 {
		pix++
		next = fwd.NextPrime()
	}

	return sum, pix, pixCount
}

// balanceLoad grows thread_distance when a batch finished quickly (more
// parallel slack available) and shrinks it when a batch ran long, clamped
// to [minThreadDistance, ceil((z-low)/threads)] exactly as
// original_source's balanceLoad does.
func balanceLoad(distance, low, z int64, threads int, batchStart time.Time) int64 {
	seconds := time.Since(batchStart).Seconds()
	maxDistance := imath.CeilDiv(z-low, int64(threads))
	if seconds < 60 {
		distance *= 2
	}
	if seconds > 60 {
		distance /= 2
	}
	return imath.InBetween(minI64(minThreadDistance, maxDistance), distance, maxDistance)
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
