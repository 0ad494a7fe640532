package s2trivial

import (
	"os"
	"path/filepath"
	"testing"

	"primecount/imath"
	"primecount/resumelog"
	"primecount/wideint"
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

func piRef(n int64) int64 {
	var c int64
	for i := int64(2); i <= n; i++ {
		if isPrimeRef(i) {
			c++
		}
	}
	return c
}

func nthPrimeRef(n int64) int64 {
	var count int64
	for p := int64(2); ; p++ {
		if isPrimeRef(p) {
			count++
			if count == n {
				return p
			}
		}
	}
}

// s2TrivialRef brute-forces S2_trivial(x,y,z,c) directly from its
// definition: sum over primes q in (max(p_c, sqrt(z)), y] of
// pi(y) - pi(max(x/q^2, q)).
func s2TrivialRef(x, y, z, c int64) int64 {
	primeC := int64(0)
	if c >= 1 {
		primeC = nthPrimeRef(c)
	}
	start := maxI64(primeC, imath.Isqrt(z))
	piY := piRef(y)

	var sum int64
	for q := start + 1; q <= y; q++ {
		if !isPrimeRef(q) {
			continue
		}
		xn := maxI64(x/(q*q), q)
		sum += piY - piRef(xn)
	}
	return sum
}

func TestComputeMatchesReference(t *testing.T) {
	cases := []struct {
		x, y, z, c int64
	}{
		{100000, 100, 1000, 0},
		{100000, 200, 500, 2},
		{1000000, 300, 3333, 3},
	}
	for _, tc := range cases {
		want := s2TrivialRef(tc.x, tc.y, tc.z, tc.c)
		got := Compute(wideint.FromInt64(tc.x), tc.y, tc.z, tc.c, 2, nil)
		if got.Int64() != want {
			t.Errorf("Compute(%d,%d,%d,%d) = %d, want %d", tc.x, tc.y, tc.z, tc.c, got.Int64(), want)
		}
	}
}

func TestComputeZeroWhenStartExceedsY(t *testing.T) {
	got := Compute(wideint.FromInt64(1000), 5, 1000, 0, 1, nil)
	if got.Int64() != 0 {
		t.Fatalf("Compute with start>y = %d, want 0", got.Int64())
	}
}

func TestComputeResumesFromLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	log := resumelog.Open(path)

	x, y, z, c := int64(100000), int64(100), int64(1000), int64(0)
	want := Compute(wideint.FromInt64(x), y, z, c, 2, log)

	// Reopen from disk and confirm the resumed value matches without
	// needing to recompute.
	log2 := resumelog.Open(path)
	got := Compute(wideint.FromInt64(x), y, z, c, 2, log2)
	if got.Int64() != want.Int64() {
		t.Fatalf("resumed Compute = %d, want %d", got.Int64(), want.Int64())
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected backup file to exist: %v", err)
	}
}
