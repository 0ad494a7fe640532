package formula

import (
	"time"

	"primecount/imath"
	"primecount/logx"
	"primecount/p2b"
	"primecount/primearray"
	"primecount/resumelog"
	"primecount/s2trivial"
	"primecount/wideint"
)

// drAlpha mirrors lmoAlpha but larger, reflecting Deleglise-Rivat's "refine
// the y choice" tuning note (glossary "alpha": larger alpha trades space
// for time). Still a fixed constant for the same reason lmoAlpha is.
const drAlpha = 3

// PiDeleglisRivat computes pi(x) = phi(x,a) + a - 1 - P2(x,a), a = pi(y),
// y = alpha * floor(x^(1/3)), over wideint.Signed so it services the full
// x up to ~10^27 that P2/B (C7) was built for. P2(x,a) is recovered from
// p2b's B(x, p_a) via p2Correction, the same as PiMeissel and PiLMO. Same
// documented recursion-instead-of-S1+S2 simplification as PiLMO.
func PiDeleglisRivat(x wideint.Signed, threads int) wideint.Signed {
	xw := wideint.ToInt128(x)
	if xw.CmpInt64(2) < 0 {
		return wideint.Narrow(wideint.FromInt64(0))
	}
	logx.Section("pi_deleglise_rivat")
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
	phi := Phi(xw, a, threads, primes)
	b := primeA(imath.IsqrtWide(xw))
	p2 := p2b.Compute(xw, p2Y(a, primes), threads)
	p2v := wideint.ToInt128(p2).Sub(wideint.FromInt64(p2Correction(a, b)))

	result := phi.Add(wideint.FromInt64(a - 1))
	result = result.Sub(p2v)
	narrowed := wideint.Narrow(wideint.ToInt128(result))

	// When verbose logging is on, also compute and surface the real
	// decomposition's trivial-leaves term as a diagnostic: S2_trivial(x,y,z,c)
	// is not folded into narrowed above, since phi(x,a) already accounts for
	// that contribution via plain recursion (see DESIGN.md's Open Question
	// resolution) and adding both would double-count it.
	if logx.Enabled {
		logS2Trivial(xw, y, a, threads)
	}

	logx.Result("pi_deleglise_rivat", narrowed.String(), time.Since(start).Seconds())
	return narrowed
}

// logS2Trivial exercises S2_trivial (C10) and its ResumeLog (C11)
// checkpoint for diagnostic purposes: z = floor(x/y), c = a/2 (a coarser
// threshold than a itself, matching S2_trivial.cpp's p_c < p_a convention).
// Silently skipped when z doesn't fit an int64.
func logS2Trivial(xw wideint.Int128, y, a int64, threads int) {
	if y < 2 {
		return
	}
	zWide := xw.Div(wideint.FromInt64(y))
	if !zWide.FitsInt64() {
		return
	}
	z := zWide.Int64()
	if z < 1 {
		return
	}
	c := a / 2
	if c < 0 {
		c = 0
	}
	log := resumelog.Open(resumelog.DefaultPath)
	s2 := s2trivial.Compute(wideint.Narrow(xw), y, z, c, threads, log)
	logx.Params("S2_trivial", wideint.ToInt128(s2).String())
}
