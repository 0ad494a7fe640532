package formula

import (
	"strconv"
	"time"

	"primecount/imath"
	"primecount/logx"
	"primecount/primearray"
	"primecount/wideint"
)

// PiLegendre computes pi(x) = phi(x,a) + a - 1, a = pi(floor(sqrt(x))),
// matching primecount.cpp's pi_legendre.
func PiLegendre(x int64, threads int) int64 {
	if x < 2 {
		return 0
	}
	logx.Section("pi_legendre")
	start := time.Now()
	a := legendreA(x)
	primes := primearray.New(imath.Isqrt(x))
	phi := Phi(wideint.Int64(x), a, threads, primes)
	result := phi.Int64() + a - 1
	logx.Result("pi_legendre", strconv.FormatInt(result, 10), time.Since(start).Seconds())
	return result
}
