package formula

import (
	"strconv"
	"sync"
	"time"

	"primecount/alignedslots"
	"primecount/loadbalancer"
	"primecount/logx"
	"primecount/sieve"
)

// PiPrimesieve returns pi(x) via a direct segmented sieve, the brute-force
// reference spec.md §8's invariant 4 cross-checks the other wrappers
// against. Segments are dispatched by LoadBalancer (C6) exactly as spec.md
// §4.6 describes for the sieve range, and each worker's running count
// lands in its own AlignedSlots (C5) cell so concurrent Add calls from
// different threads never share a cache line.
func PiPrimesieve(x int64, threads int) int64 {
	if x < 2 {
		return 0
	}
	if threads < 1 {
		threads = 1
	}

	logx.Section("pi_primesieve")
	start := time.Now()
	logx.Params(strconv.FormatInt(x, 10), strconv.Itoa(threads))

	s := sieve.New(x*2 + 4096)
	lb := loadbalancer.New(x, x, false)
	partials := alignedslots.NewInt64Slots(threads)

	var wg sync.WaitGroup
	for worker := 0; worker < threads; worker++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			primesieveWorker(s, lb, partials, idx, x)
		}(worker)
	}
	wg.Wait()

	total := partials.Sum()
	if x >= 2 {
		total++ // 2 is never represented in the odd-only sieve bitmap
	}
	logx.Result("pi_primesieve", strconv.FormatInt(total, 10), time.Since(start).Seconds())
	return total
}

func primesieveWorker(s *sieve.Sieve, lb *loadbalancer.LoadBalancer, partials *alignedslots.Int64Slots, idx int, limit int64) {
	var prevLow, sumDelta int64
	var rt loadbalancer.Runtime
	var buf []uint64

	for {
		low, segments, segmentSize, done := lb.GetWork(prevLow, sumDelta, rt)
		span := segments * segmentSize
		if span <= 0 {
			if done {
				return
			}
			continue
		}

		actual := span
		if low+actual > limit+1 {
			actual = limit + 1 - low
		}
		if actual < 0 {
			actual = 0
		}

		words := sieve.WordsFor(span)
		if int64(len(buf)) < int64(words) {
			buf = make([]uint64, words)
		}

		start := time.Now()
		var count int64
		if actual > 0 {
			s.Run(low, span, buf)
			bitsWanted := (actual + 1) / 2 // low is odd; this many odd residues fall within [low, low+actual)
			count = sieve.PopcountRange(buf, bitsWanted)
			partials.Add(idx, count)
		}
		elapsed := time.Since(start).Seconds()
		if rt.Init == 0 {
			rt.Init = elapsed
		}
		rt.Secs = elapsed

		prevLow = low
		sumDelta = count

		if done {
			return
		}
	}
}
