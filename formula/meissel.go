package formula

import (
	"strconv"
	"time"

	"primecount/imath"
	"primecount/logx"
	"primecount/p2b"
	"primecount/primearray"
	"primecount/wideint"
)

// PiMeissel computes pi(x) = phi(x,a) + a - 1 - P2(x,a), a = pi(floor(x^(1/3))),
// matching primecount.cpp's pi_meissel. P2(x,a) is computed via p2b's
// B(x, p_a) = sum_{i=a+1}^{b} pi(x/p_i), b = pi(sqrt(x)), corrected by
// p2Correction to restore the -(i-1) term Lehmer's P2 carries and B doesn't.
func PiMeissel(x int64, threads int) int64 {
	if x < 2 {
		return 0
	}
	logx.Section("pi_meissel")
	start := time.Now()
	a := primeA(imath.Iroot(x, 3))
	primes := primearray.New(imath.Isqrt(x))
	phi := Phi(wideint.Int64(x), a, threads, primes)
	b := legendreA(x)
	p2 := p2b.Compute(wideint.Int64(x), p2Y(a, primes), threads)
	p2v := p2.Int64() - p2Correction(a, b)
	result := phi.Int64() + a - 1 - p2v
	logx.Result("pi_meissel", strconv.FormatInt(result, 10), time.Since(start).Seconds())
	return result
}
