package primestream

import (
	"testing"

	"primecount/sieve"
)

func isPrimeRef(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func primesUpTo(n int64) []int64 {
	var out []int64
	for i := int64(2); i <= n; i++ {
		if isPrimeRef(i) {
			out = append(out, i)
		}
	}
	return out
}

func TestNextPrimeMatchesReference(t *testing.T) {
	const bound = 100000
	s := sieve.New(bound)
	want := primesUpTo(bound - 1)

	c := New(s, 0, bound-1)
	var got []int64
	for {
		p := c.NextPrime()
		if p == 0 {
			break
		}
		got = append(got, p)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d primes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestNextPrimeMonotone(t *testing.T) {
	s := sieve.New(50000)
	c := New(s, 10, 40000)
	prev := int64(0)
	for i := 0; i < 1000; i++ {
		p := c.NextPrime()
		if p == 0 {
			break
		}
		if p <= prev {
			t.Fatalf("NextPrime not monotone: %d after %d", p, prev)
		}
		prev = p
	}
}

func TestPrevPrimeMatchesReference(t *testing.T) {
	const bound = 100000
	s := sieve.New(bound)
	all := primesUpTo(bound - 1)

	c := New(s, bound-1, bound-1)
	var got []int64
	for {
		p := c.PrevPrime()
		if p == 0 {
			break
		}
		got = append(got, p)
	}

	// got is descending; reverse to compare against ascending reference,
	// excluding bound-1 itself (PrevPrime is exclusive of the start).
	want := all
	if len(want) > 0 && want[len(want)-1] == bound-1 {
		want = want[:len(want)-1]
	}
	if len(got) != len(want) {
		t.Fatalf("got %d primes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[len(got)-1-i] != want[i] {
			t.Fatalf("mismatch at reference index %d: got %d want %d", i, got[len(got)-1-i], want[i])
		}
	}
}

func TestPrevPrimeMonotoneDecreasing(t *testing.T) {
	s := sieve.New(50000)
	c := New(s, 40000, 40000)
	prev := int64(1 << 62)
	for i := 0; i < 1000; i++ {
		p := c.PrevPrime()
		if p == 0 {
			break
		}
		if p >= prev {
			t.Fatalf("PrevPrime not monotone decreasing: %d after %d", p, prev)
		}
		prev = p
	}
}

func TestExhaustionReturnsZero(t *testing.T) {
	s := sieve.New(1000)
	c := New(s, 2, 10)
	for {
		if c.NextPrime() == 0 {
			break
		}
	}
	for i := 0; i < 3; i++ {
		if got := c.NextPrime(); got != 0 {
			t.Fatalf("NextPrime after exhaustion = %d, want 0", got)
		}
	}
}
