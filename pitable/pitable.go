// Package pitable implements a compressed lookup table for prime counts.
// Each bit corresponds to an odd integer and is set when that integer is
// prime; the table returns the number of primes <= n in O(1) using only
// n/8 bytes of memory.
//
// Grounded on original_source/include/PiTable.hpp for the bit layout (one
// 64-bit word of "bits" plus a running "prime count" per 128-wide window)
// and on the teacher's compactqueue128 for the cache-friendly, popcount-
// driven lookup style.
package pitable

import (
	"math/bits"
	"sync"
	"time"

	"primecount/loadbalancer"
	"primecount/sieve"
)

// window holds the running prime count below the window's start and the
// primality bitmap of the 64 odd integers the window covers.
type window struct {
	primeCount int64
	bits       uint64
}

// Table is a read-only, O(1) prime-counting lookup over [0, max].
type Table struct {
	data []window
	max  int64
}

// unsetBits[r] selects, out of a window's 64 bits, those representing odd
// values <= r (r in [0,127]). Used to mask off bits past the query point
// when n doesn't land on a window boundary.
var unsetBits = buildUnsetBits()

func buildUnsetBits() [128]uint64 {
	var m [128]uint64
	for r := 0; r < 128; r++ {
		n := (r + 1) / 2
		if n >= 64 {
			m[r] = ^uint64(0)
		} else {
			m[r] = uint64(1)<<uint(n) - 1
		}
	}
	return m
}

// New builds a Table covering every integer in [0, max].
func New(max int64) *Table {
	windows := max/128 + 1
	bound := 128 * windows

	s := sieve.New(bound)
	data := make([]window, windows)

	var cumulative int64
	buf := make([]uint64, 1)
	for w := int64(0); w < windows; w++ {
		low := 128*w + 1
		s.Run(low, 128, buf)
		wordBits := buf[0]
		if w == 0 {
			// We only store odd integers, so the only even prime (2) has
			// nowhere to live. Repurpose the bit for value 1 (never prime)
			// as a stand-in for 2; Get special-cases n==1 back to 0.
			wordBits |= 1
		}
		data[w] = window{primeCount: cumulative, bits: wordBits}
		cumulative += int64(bits.OnesCount64(wordBits))
	}

	return &Table{data: data, max: max}
}

// NewParallel builds a Table covering [0, max] like New, but dispatches the
// sieve pass across threads goroutines via LoadBalancer (C6) instead of
// running it as one sequential loop over every 128-wide window. Intended
// for the large tables formula.Phi builds to serve its pi(sqrt(x)) cutoff,
// where max can run into the hundreds of millions and a serial pass would
// dominate the recursion it's meant to speed up.
//
// Each worker only fills in its own windows' bitmaps; the prime-count
// prefix that window.primeCount carries is filled in afterward with one
// cheap sequential pass, since that step is inherently ordered and far
// cheaper than the sieve itself.
func NewParallel(max int64, threads int) *Table {
	if threads < 2 {
		return New(max)
	}

	windows := max/128 + 1
	bound := 128 * windows

	s := sieve.New(bound*2 + 4096)
	data := make([]window, windows)
	lb := loadbalancer.New(bound, bound, false)

	var wg sync.WaitGroup
	for worker := 0; worker < threads; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buildWindows(s, lb, data, windows)
		}()
	}
	wg.Wait()

	var cumulative int64
	for w := range data {
		count := int64(bits.OnesCount64(data[w].bits))
		data[w].primeCount = cumulative
		cumulative += count
	}

	return &Table{data: data, max: max}
}

// buildWindows is one NewParallel worker: it repeatedly pulls a number
// range from lb, sieves it, and drops each resulting word straight into
// its corresponding window (low always lands on a window boundary, since
// LoadBalancer's segment sizes are always multiples of 128 - sieve's own
// GetSegmentSize contract).
func buildWindows(s *sieve.Sieve, lb *loadbalancer.LoadBalancer, data []window, windows int64) {
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

		words := sieve.WordsFor(span)
		if int64(len(buf)) < int64(words) {
			buf = make([]uint64, words)
		}

		start := time.Now()
		baseWindow := (low - 1) / 128
		if baseWindow < windows {
			s.Run(low, span, buf)
			for i := int64(0); i < int64(words) && baseWindow+i < windows; i++ {
				wordBits := buf[i]
				if baseWindow+i == 0 {
					wordBits |= 1
				}
				data[baseWindow+i] = window{bits: wordBits}
			}
		}
		elapsed := time.Since(start).Seconds()
		if rt.Init == 0 {
			rt.Init = elapsed
		}
		rt.Secs = elapsed

		prevLow = low
		sumDelta = span
		if done {
			return
		}
	}
}

// Get returns the number of primes <= n. n must be in [0, max].
//
//go:nosplit
//go:inline
func (t *Table) Get(n int64) int64 {
	if n == 1 {
		return 0
	}
	w := &t.data[n/128]
	mask := unsetBits[n%128]
	return w.primeCount + int64(bits.OnesCount64(w.bits&mask))
}

// Size returns max+1, the number of integers this table covers.
func (t *Table) Size() int64 { return t.max + 1 }

// Max returns the upper bound this table was built for.
func (t *Table) Max() int64 { return t.max }
