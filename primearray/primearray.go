// Package primearray implements the ordered prime-array entity spec.md's
// data model names: a zero-based sequence of the primes <= some bound,
// searchable in O(log n) via pi_bsearch. P3 uses it in place of a PiTable
// because its lookup bound is sqrt(x) and building a full compressed table
// that large would dominate the runtime budget.
package primearray

import (
	"math"
	"sort"

	"primecount/sieve"
)

// Array is an immutable, ascending list of the primes <= bound.
type Array struct {
	primes []int64
	bound  int64
}

// New builds the array of all primes in [0, bound].
func New(bound int64) *Array {
	primes := []int64{}
	if bound >= 2 {
		primes = append(primes, 2)
	}
	if bound >= 3 {
		low := int64(3)
		remaining := bound - low + 1
		if remaining > 0 {
			segSize := sieve.GetSegmentSize(remaining)
			s := sieve.New(low + segSize)
			buf := make([]uint64, sieve.WordsFor(segSize))
			s.Run(low, segSize, buf)
			for i := int64(0); i < segSize/2; i++ {
				v := low + 2*i
				if v > bound {
					break
				}
				if sieve.TestBit(buf, i) {
					primes = append(primes, v)
				}
			}
		}
	}
	return &Array{primes: primes, bound: bound}
}

// Len returns the number of primes in the array.
func (a *Array) Len() int { return len(a.primes) }

// At returns the i-th prime (0-based); At(0) is the first prime, 2.
func (a *Array) At(i int) int64 { return a.primes[i] }

// PiBsearch returns |{i : primes[i] <= n}|, i.e. pi(n) restricted to this
// array's coverage, via binary search.
func (a *Array) PiBsearch(n int64) int64 {
	idx := sort.Search(len(a.primes), func(i int) bool { return a.primes[i] > n })
	return int64(idx)
}

// NthPrime returns the n-th prime (1-indexed: NthPrime(1) == 2), sieving
// up to a prime-number-theorem estimate and widening the bound until the
// estimate undershoots in practice.
//
// Grounded on primecount's own nth_prime bootstrap, which likewise
// oversizes a sieve from the x/ln(x) density estimate rather than
// maintaining a running prime-generating iterator.
func NthPrime(n int64) int64 {
	if n < 1 {
		panic("primearray: NthPrime requires n >= 1")
	}
	bound := nthPrimeUpperBound(n)
	for {
		a := New(bound)
		if int64(a.Len()) >= n {
			return a.At(int(n - 1))
		}
		bound *= 2
	}
}

// nthPrimeUpperBound estimates an upper bound for the n-th prime via the
// classical p_n < n*(ln n + ln ln n) bound, valid for n >= 6; padded for
// small n.
func nthPrimeUpperBound(n int64) int64 {
	if n < 6 {
		return 15
	}
	fn := float64(n)
	bound := fn * (math.Log(fn) + math.Log(math.Log(fn)))
	return int64(bound) + 10
}
