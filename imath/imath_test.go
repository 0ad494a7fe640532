package imath

import (
	"testing"

	"primecount/wideint"
)

func TestIsqrt(t *testing.T) {
	cases := map[int64]int64{
		0: 0, 1: 1, 2: 1, 3: 1, 4: 2, 8: 2, 9: 3, 10: 3, 99: 9, 100: 10,
		1_000_000_000_000: 1_000_000,
	}
	for n, want := range cases {
		if got := Isqrt(n); got != want {
			t.Errorf("Isqrt(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestIsqrtNearPerfectSquares(t *testing.T) {
	for r := int64(1); r < 10000; r++ {
		sq := r * r
		if got := Isqrt(sq); got != r {
			t.Fatalf("Isqrt(%d) = %d, want %d", sq, got, r)
		}
		if got := Isqrt(sq - 1); got != r-1 {
			t.Fatalf("Isqrt(%d) = %d, want %d", sq-1, got, r-1)
		}
	}
}

func TestIroot(t *testing.T) {
	if got := Iroot(27, 3); got != 3 {
		t.Errorf("Iroot(27,3) = %d, want 3", got)
	}
	if got := Iroot(26, 3); got != 2 {
		t.Errorf("Iroot(26,3) = %d, want 2", got)
	}
	if got := Iroot(1_000_000_000_000, 4); got != 1000 {
		t.Errorf("Iroot(10^12,4) = %d, want 1000", got)
	}
	if got := Iroot(0, 3); got != 0 {
		t.Errorf("Iroot(0,3) = %d, want 0", got)
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{10, 3, 4}, {9, 3, 3}, {1, 1, 1}, {0, 5, 0},
	}
	for _, c := range cases {
		if got := CeilDiv(c.a, c.b); got != c.want {
			t.Errorf("CeilDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestInBetween(t *testing.T) {
	if got := InBetween(10, 5, 20); got != 10 {
		t.Errorf("got %d want 10", got)
	}
	if got := InBetween(10, 25, 20); got != 20 {
		t.Errorf("got %d want 20", got)
	}
	if got := InBetween(10, 15, 20); got != 15 {
		t.Errorf("got %d want 15", got)
	}
}

func TestIsqrtWide(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 99, 100, 1_000_000_000_000} {
		want := Isqrt(n)
		if got := IsqrtWide(wideint.FromInt64(n)); got != want {
			t.Errorf("IsqrtWide(%d) = %d, want %d", n, got, want)
		}
	}
	// A value that overflows int64: 10^25, whose sqrt is 10^12.5 ~ 3162277660168.
	v := wideint.FromInt64(1)
	ten := wideint.FromInt64(10)
	for i := 0; i < 25; i++ {
		v = v.Mul(ten).(wideint.Int128)
	}
	r := IsqrtWide(v)
	rr := wideint.FromInt64(r).Mul(wideint.FromInt64(r)).(wideint.Int128)
	rr1 := wideint.FromInt64(r + 1).Mul(wideint.FromInt64(r + 1)).(wideint.Int128)
	if rr.Cmp(v) > 0 || rr1.Cmp(v) <= 0 {
		t.Fatalf("IsqrtWide(10^25) = %d is not floor(sqrt(10^25))", r)
	}
}

func TestIrootWide(t *testing.T) {
	if got := IrootWide(wideint.FromInt64(27), 3); got != 3 {
		t.Errorf("IrootWide(27,3) = %d, want 3", got)
	}
	if got := IrootWide(wideint.FromInt64(26), 3); got != 2 {
		t.Errorf("IrootWide(26,3) = %d, want 2", got)
	}
	if got := IrootWide(wideint.FromInt64(1_000_000_000_000), 4); got != 1000 {
		t.Errorf("IrootWide(10^12,4) = %d, want 1000", got)
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int64]int64{1: 1, 2: 2, 3: 4, 5: 8, 8: 8, 9: 16, 511: 512, 512: 512, 513: 1024}
	for n, want := range cases {
		if got := NextPow2(n); got != want {
			t.Errorf("NextPow2(%d) = %d, want %d", n, got, want)
		}
	}
}
