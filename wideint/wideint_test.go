package wideint

import "testing"

func TestNarrowDispatch(t *testing.T) {
	small := FromInt64(42)
	if _, ok := Narrow(small).(Int64); !ok {
		t.Fatalf("expected Int64 for a value that fits, got %T", Narrow(small))
	}

	big := Int128{Hi: 1, Lo: 0}
	if _, ok := Narrow(big).(Int128); !ok {
		t.Fatalf("expected Int128 for a value that overflows int64, got %T", Narrow(big))
	}
}

func TestInt128AddSubMul(t *testing.T) {
	a := FromInt64(1_000_000_000_000)
	b := FromInt64(3)
	got := a.Mul(b).(Int128)
	want := FromInt64(3_000_000_000_000)
	if got != want {
		t.Fatalf("Mul: got %+v want %+v", got, want)
	}

	sum := a.Add(b).(Int128)
	if sum.Int64() != 1_000_000_000_003 {
		t.Fatalf("Add: got %d want %d", sum.Int64(), 1_000_000_000_003)
	}

	diff := a.Sub(b).(Int128)
	if diff.Int64() != 999_999_999_997 {
		t.Fatalf("Sub: got %d want %d", diff.Int64(), 999_999_999_997)
	}
}

func TestInt128DivFast64(t *testing.T) {
	// (2^64 * 5 + 7) / 3
	num := Int128{Hi: 5, Lo: 7}
	q, r := num.DivFast64(3)
	qq := q.(Int128)

	// Verify via the identity q*3 + r == num.
	reconstructed := qq.MulInt64(3).(Int128).Add(FromInt64(r)).(Int128)
	if reconstructed != num {
		t.Fatalf("DivFast64 round trip failed: q=%+v r=%d reconstructed=%+v want=%+v", qq, r, reconstructed, num)
	}
}

func TestInt128DivFast64Negative(t *testing.T) {
	num := FromInt64(-100)
	q, r := num.DivFast64(7)
	if q.Int64() != -100/7 || r != -100%7 {
		t.Fatalf("DivFast64 negative: got q=%d r=%d want q=%d r=%d", q.Int64(), r, -100/7, -100%7)
	}
}

func TestInt64DivFast64(t *testing.T) {
	a := Int64(100)
	q, r := a.DivFast64(7)
	if q.(Int64) != 14 || r != 2 {
		t.Fatalf("got q=%v r=%d want q=14 r=2", q, r)
	}
}

func TestCmp(t *testing.T) {
	a := FromInt64(10)
	b := FromInt64(20)
	if a.Cmp(b) >= 0 {
		t.Fatalf("expected a < b")
	}
	if b.Cmp(a) <= 0 {
		t.Fatalf("expected b > a")
	}
	if a.Cmp(a) != 0 {
		t.Fatalf("expected a == a")
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		v    Int128
		want string
	}{
		{FromInt64(0), "0"},
		{FromInt64(-42), "-42"},
		{Int128{Hi: 0, Lo: 18446744073709551615}, "18446744073709551615"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Fatalf("String(%+v) = %q, want %q", c.v, got, c.want)
		}
	}
}

// TestStringLargeRoundTrip builds a value that overflows a single uint64
// digit group (> 10^19) by repeated multiplication and checks that String()
// renders it as a 1 followed by exactly 25 zeros.
func TestStringLargeRoundTrip(t *testing.T) {
	v := FromInt64(1)
	ten := FromInt64(10)
	for i := 0; i < 25; i++ {
		v = v.Mul(ten).(Int128)
	}
	s := v.String()
	if len(s) != 26 || s[0] != '1' {
		t.Fatalf("10^25 rendered as %q (len %d)", s, len(s))
	}
	for _, c := range s[1:] {
		if c != '0' {
			t.Fatalf("10^25 rendered as %q, expected all zero digits after leading 1", s)
		}
	}
}

func TestToInt128(t *testing.T) {
	narrow := Narrow(FromInt64(99))
	if got := ToInt128(narrow); got != FromInt64(99) {
		t.Fatalf("ToInt128(narrow Int64) = %+v, want %+v", got, FromInt64(99))
	}
	wide := Int128{Hi: 1, Lo: 0}
	if got := ToInt128(wide); got != wide {
		t.Fatalf("ToInt128(Int128) = %+v, want %+v", got, wide)
	}
}

func TestInt128Div(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{100, 7, 14},
		{-100, 7, -14},
		{100, -7, -14},
		{-100, -7, 14},
		{0, 5, 0},
	}
	for _, c := range cases {
		got := FromInt64(c.a).Div(FromInt64(c.b))
		if got.Int64() != c.want {
			t.Errorf("Div(%d,%d) = %d, want %d", c.a, c.b, got.Int64(), c.want)
		}
	}

	// A divisor wider than int64: (10^25) / (10^12 * 10^12) should equal 10.
	v := FromInt64(1)
	ten := FromInt64(10)
	for i := 0; i < 25; i++ {
		v = v.Mul(ten).(Int128)
	}
	d := FromInt64(1)
	for i := 0; i < 24; i++ {
		d = d.Mul(ten).(Int128)
	}
	got := v.Div(d)
	if got.Int64() != 10 {
		t.Fatalf("Div(10^25, 10^24) = %d, want 10", got.Int64())
	}
}

func TestFloat64(t *testing.T) {
	v := FromInt64(1 << 40)
	if v.Float64() != float64(int64(1)<<40) {
		t.Fatalf("Float64 mismatch: got %v", v.Float64())
	}
}
