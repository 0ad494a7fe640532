package sieve

import "testing"

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

func TestGetSegmentSize(t *testing.T) {
	cases := []struct{ in, want int64 }{
		{1, MinSegmentSize},
		{MinSegmentSize, MinSegmentSize},
		{MinSegmentSize + 1, MinSegmentSize + 2*WordBits},
		{10000, 10112},
	}
	for _, c := range cases {
		if got := GetSegmentSize(c.in); got != c.want {
			t.Errorf("GetSegmentSize(%d) = %d, want %d", c.in, got, c.want)
		}
		if got := GetSegmentSize(c.in); got%(2*WordBits) != 0 {
			t.Errorf("GetSegmentSize(%d) = %d is not word-aligned", c.in, got)
		}
	}
}

func TestRunAgainstReference(t *testing.T) {
	const bound = 1 << 16
	s := New(bound)

	low := int64(1)
	size := GetSegmentSize(4096)
	for low < bound {
		if low+size > bound {
			size = GetSegmentSize(bound - low)
		}
		out := make([]uint64, WordsFor(size))
		s.Run(low, size, out)
		for i := int64(0); i < size/2; i++ {
			v := low + 2*i
			want := isPrimeRef(v)
			got := testBit(out, i)
			if got != want {
				t.Fatalf("Run(%d,%d): bit for %d = %v, want %v", low, size, v, got, want)
			}
		}
		low += size
	}
}

func TestPopcountRangeMatchesCount(t *testing.T) {
	const bound = 1 << 14
	s := New(bound)
	size := GetSegmentSize(bound - 1)
	out := make([]uint64, WordsFor(size))
	s.Run(1, size, out)

	var want int64
	for v := int64(1); v < 1+size; v += 2 {
		if isPrimeRef(v) {
			want++
		}
	}
	if got := PopcountRange(out, size/2); got != want {
		t.Fatalf("PopcountRange = %d, want %d", got, want)
	}
}
