package p3

import (
	"testing"

	"primecount/imath"
	"primecount/primearray"
	"primecount/wideint"
)

// p3Ref brute-forces P3(x,a) by counting ordered triples of prime-array
// indices a < i <= j <= k with primes[i]*primes[j]*primes[k] <= x.
func p3Ref(x int64, a int64, primes *primearray.Array) int64 {
	n := primes.Len()
	var count int64
	for i := int(a); i < n; i++ {
		pi := primes.At(i)
		if pi*pi*pi > x {
			break
		}
		for j := i; j < n; j++ {
			pj := primes.At(j)
			if pi*pj*pj > x {
				break
			}
			for k := j; k < n; k++ {
				pk := primes.At(k)
				if pi*pj*pk > x {
					break
				}
				count++
			}
		}
	}
	return count
}

func TestComputeMatchesReference(t *testing.T) {
	cases := []struct {
		x int64
		a int64
	}{
		{1000, 0},
		{1000, 2},
		{10000, 1},
		{100000, 3},
	}
	for _, c := range cases {
		primes := primearray.New(imath.Isqrt(c.x) + 1)
		want := p3Ref(c.x, c.a, primes)
		got := Compute(wideint.FromInt64(c.x), c.a, 2, primes)
		if got.Int64() != want {
			t.Errorf("Compute(%d,%d) = %d, want %d", c.x, c.a, got.Int64(), want)
		}
	}
}

func TestComputeZeroWhenNoEligiblePrimes(t *testing.T) {
	x := int64(100)
	primes := primearray.New(imath.Isqrt(x) + 1)
	got := Compute(wideint.FromInt64(x), int64(primes.Len()), 1, primes)
	if got.Int64() != 0 {
		t.Fatalf("Compute with a=len(primes) = %d, want 0", got.Int64())
	}
}
