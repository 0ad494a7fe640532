// Package imath implements the small integer-math primitives every formula
// and the LoadBalancer lean on: integer square/k-th roots, floor natural
// log, ceiling division, and next-power-of-two.
//
// Grounded on localidx's nextPow2 doubling loop (same algorithm, widened to
// int64) and fastuni's bit-trick posture for the math-heavy helpers.
package imath

import (
	"math"

	"primecount/wideint"
)

// Isqrt returns floor(sqrt(n)) for n >= 0.
//
//go:nosplit
//go:inline
func Isqrt(n int64) int64 {
	if n < 0 {
		panic("imath: Isqrt of negative value")
	}
	if n == 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	// float64 sqrt can be off by one near perfect squares; correct it.
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// Iroot returns floor(n^(1/k)) for n >= 0, k >= 1.
//
//go:nosplit
//go:inline
func Iroot(n int64, k int) int64 {
	if n < 0 {
		panic("imath: Iroot of negative value")
	}
	if n == 0 || k == 1 {
		return n
	}
	r := int64(math.Pow(float64(n), 1/float64(k)))
	if r < 1 {
		r = 1
	}
	for r > 1 && ipow(r, k) > n {
		r--
	}
	for ipow(r+1, k) <= n {
		r++
	}
	return r
}

// ipow computes base^exp for small non-negative exp without overflow
// guards beyond what int64 naturally provides; callers only ever pass
// exponents in {2,3,4,6} on operands already known to be in range.
func ipow(base int64, exp int) int64 {
	result := int64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

// Ilog returns floor(ln(n)) for n >= 1. Used only for sizing heuristics
// (LoadBalancer's initial segment size); not required to be bitwise
// portable, matching the design note that the Status percent curve (which
// also uses pow/log) is cosmetic rather than load-bearing.
//
//go:nosplit
//go:inline
func Ilog(n int64) int64 {
	if n < 1 {
		return 0
	}
	return int64(math.Log(float64(n)))
}

// CeilDiv returns ceil(a/b) for positive a, b.
//
//go:nosplit
//go:inline
func CeilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// InBetween clamps x to [lo, hi].
//
//go:nosplit
//go:inline
func InBetween(lo, x, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// IsqrtWide returns floor(sqrt(x)) for an x that may overflow int64, via a
// float64 seed corrected by exact Int128 comparison. Every caller in this
// module only ever applies it to values whose root fits int64 (x up to
// ~10^27, root up to ~3.2*10^13), matching the practical range primecount
// itself supports.
func IsqrtWide(x wideint.Int128) int64 {
	f := x.Float64()
	if f < 0 {
		panic("imath: IsqrtWide of negative value")
	}
	r := int64(math.Sqrt(f))
	if r < 0 {
		r = 0
	}
	sq := func(v int64) wideint.Int128 {
		return wideint.ToInt128(wideint.FromInt64(v).Mul(wideint.FromInt64(v)))
	}
	for r > 0 && sq(r).Cmp(x) > 0 {
		r--
	}
	for sq(r + 1).Cmp(x) <= 0 {
		r++
	}
	return r
}

// IrootWide returns floor(x^(1/k)) for an x that may overflow int64, k>=2.
func IrootWide(x wideint.Int128, k int) int64 {
	f := x.Float64()
	if f < 0 {
		panic("imath: IrootWide of negative value")
	}
	r := int64(math.Pow(f, 1/float64(k)))
	if r < 1 {
		r = 1
	}
	pw := func(v int64) wideint.Int128 {
		p := wideint.ToInt128(wideint.FromInt64(1))
		for i := 0; i < k; i++ {
			p = wideint.ToInt128(p.Mul(wideint.FromInt64(v)))
		}
		return p
	}
	for r > 1 && pw(r).Cmp(x) > 0 {
		r--
	}
	for pw(r+1).Cmp(x) <= 0 {
		r++
	}
	return r
}

// NextPow2 returns the smallest power of two >= n, n >= 1.
//
//go:nosplit
//go:inline
func NextPow2(n int64) int64 {
	s := int64(1)
	for s < n {
		s <<= 1
	}
	return s
}
