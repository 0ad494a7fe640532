package formula

import "primecount/primearray"

// p2Y returns the y argument that makes p2b.Compute(x, y, threads) equal
// B(x, p_a), the a-th prime when a > 0, or 1 (pi(1) == 0) when a == 0.
func p2Y(a int64, primes *primearray.Array) int64 {
	if a <= 0 {
		return 1
	}
	return primes.At(int(a - 1))
}

// p2Correction converts p2b.Compute's B(x, p_a) = sum_{i=a+1}^{b} pi(x/p_i)
// into Lehmer's P2(x,a) = sum_{i=a+1}^{b} [pi(x/p_i) - (i-1)], b = pi(sqrt(x)):
// P2(x,a) = B(x,p_a) - sum_{i=a+1}^{b} (i-1), and the sum telescopes to the
// closed form below. b <= a means the range is empty and no correction is
// owed; p2b.go itself documents B as P2 "once a's partial-sieve bookkeeping
// is stripped away" - that bookkeeping is exactly this (i-1) term.
func p2Correction(a, b int64) int64 {
	if b <= a {
		return 0
	}
	n := b - a
	return n * (a + b - 1) / 2
}
