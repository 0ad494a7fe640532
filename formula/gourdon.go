package formula

import (
	"time"

	"primecount/aformula"
	"primecount/imath"
	"primecount/logx"
	"primecount/p2b"
	"primecount/primearray"
	"primecount/wideint"
)

// PiGourdon approximates Gourdon's algorithm using only the two terms this
// module actually computes, A (C9) and B (C7's B-formula guise of P2):
//
//	pi(x) ~= phi(x,a) + a - 1 + A(x,y) - B(x,y)
//
// The real algorithm also has C, D, Phi0, and Sigma terms (see
// original_source/src/gourdon/A.cpp's and B.cpp's header comments, which
// both reference these sibling terms without including their source).
// Those are a documented Non-goal, so this wrapper's result is only exact
// when those omitted terms happen to cancel, which is not guaranteed — it
// exists for API completeness (spec.md §8's pi_primesieve cross-check
// deliberately excludes pi_gourdon for this reason), not as a verified pi(x).
func PiGourdon(x wideint.Signed, threads int) wideint.Signed {
	xw := wideint.ToInt128(x)
	if xw.CmpInt64(2) < 0 {
		return wideint.Narrow(wideint.FromInt64(0))
	}
	logx.Section("pi_gourdon")
	start := time.Now()
	y := drAlpha * imath.IrootWide(xw, 3)
	if sqrtX := imath.IsqrtWide(xw); y > sqrtX {
		y = sqrtX
	}
	if y < 1 {
		y = 1
	}
	a := primeA(y)
	primes := primearray.New(y)
	logx.Params(xw.String(), wideint.FromInt64(y).String())

	phi := wideint.ToInt128(Phi(xw, a, threads, primes))
	av := wideint.ToInt128(aformula.Compute(xw, y, threads))
	bv := wideint.ToInt128(p2b.Compute(xw, y, threads))

	result := phi.Add(wideint.FromInt64(a - 1))
	result = result.Add(av)
	result = result.Sub(bv)
	narrowed := wideint.Narrow(wideint.ToInt128(result))
	logx.Result("pi_gourdon", narrowed.String(), time.Since(start).Seconds())
	return narrowed
}
