package formula

import (
	"strconv"
	"time"

	"primecount/imath"
	"primecount/logx"
	"primecount/p2b"
	"primecount/p3"
	"primecount/primearray"
	"primecount/wideint"
)

// PiLehmer computes pi(x) = phi(x,a) + a - 1 - P2(x,a) - P3(x,a),
// a = pi(floor(x^(1/4))), matching primecount.cpp's pi_lehmer. P2(x,a) is
// recovered from p2b's B(x, p_a) the same way PiMeissel does, via
// p2Correction.
func PiLehmer(x int64, threads int) int64 {
	if x < 2 {
		return 0
	}
	logx.Section("pi_lehmer")
	start := time.Now()
	a := primeA(imath.Iroot(x, 4))
	primes := primearray.New(imath.Isqrt(x))
	phi := Phi(wideint.Int64(x), a, threads, primes)
	b := legendreA(x)
	p2 := p2b.Compute(wideint.Int64(x), p2Y(a, primes), threads)
	p2v := p2.Int64() - p2Correction(a, b)
	p3v := p3.Compute(wideint.Int64(x), a, threads, primes)
	result := phi.Int64() + a - 1 - p2v - p3v.Int64()
	logx.Result("pi_lehmer", strconv.FormatInt(result, 10), time.Since(start).Seconds())
	return result
}
