// Package formula implements the classical high-level π(x) wrappers that
// sequence the core components (P2/B, P3, A, S2_trivial) the way
// primecount.cpp's pi_legendre/pi_meissel/pi_lehmer/pi_lmo/
// pi_deleglise_rivat/pi_gourdon/pi_primesieve/nth_prime free functions do.
//
// Grounded on original_source/src/primecount.cpp's thin wrapper style
// (each wrapper resolves threads once, then calls into the shared core)
// and on the classical Legendre/Meissel/Lehmer/LMO/Deleglise-Rivat/Gourdon
// decompositions of π(x) that primecount.cpp's comments name but whose
// bodies live in files outside the retrieved corpus.
package formula

import (
	"primecount/imath"
	"primecount/pitable"
	"primecount/primearray"
	"primecount/wideint"
)

// phiCutoffTableCap bounds the size of the PiTable Phi builds to serve its
// a >= pi(sqrt(x)) shortcut below: sizing that table to the worst-case need
// (the largest prime primes covers, squared) can run into the tens of
// gigabytes for the x this module's largest named scenarios target, which
// would just move the cost phiRec's recursion otherwise pays somewhere
// else. Capping it means deep recursion nodes - the ones whose x has
// shrunk enough to matter - still get the shortcut; the rare shallow node
// whose x exceeds the built table's coverage just falls back to plain
// recursion, which is always correct, only slower.
const phiCutoffTableCap = 1 << 32

// isqrtMaxInt64 is floor(sqrt(math.MaxInt64)), the largest n for which n*n
// doesn't overflow an int64.
const isqrtMaxInt64 = 3037000499

// Phi counts the integers in [1,x] not divisible by any of the first a
// primes (Legendre's partial sieve function), the public export of the
// recursion pi_legendre/pi_meissel/pi_lehmer all build on.
//
// Grounded on primecount.cpp's phi(x, a) doc comment ("counts the numbers
// <= x that are not divisible by any of the first a primes") and on the
// textbook recursive identity phi(x,a) = phi(x,a-1) - phi(x/p_a,a-1), with
// the standard base case phi(x,a) = 1 once x <= primes[a] (every survivor
// in [2,x] would then have to be one of the first a primes themselves).
// A second base case prunes the common "a already covers every prime up
// to sqrt(x)" tail: once p_{a+1}^2 > x, every surviving integer above 1 is
// itself prime, so phi(x,a) = pi(x) - a + 1. Without it, node count grows
// like the number of p_a-smooth squarefree integers <= x, which is
// exponential in a for the x this module's larger scenarios use.
func Phi(x wideint.Signed, a int64, threads int, primes *primearray.Array) wideint.Signed {
	if a == 0 {
		return x
	}
	xi := wideint.ToInt128(x)
	depth := parallelDepth(threads)
	pi := phiCutoffTable(primes, threads)
	return phiRec(xi, a, primes, pi, depth, 0)
}

// phiCutoffTable builds the shared prime-count table phiRec's shortcut
// looks values up in. Any node where the shortcut legitimately applies has
// x <= p_{a+1}^2 <= y^2, y the largest prime primes covers, since the
// shortcut's own trigger p_{a+1} is always a member of primes; sizing the
// table to that bound (capped at phiCutoffTableCap) is therefore always
// sufficient for every lookup the shortcut will ever perform.
func phiCutoffTable(primes *primearray.Array, threads int) *pitable.Table {
	if primes == nil || primes.Len() == 0 {
		return nil
	}
	bound := int64(phiCutoffTableCap)
	if top := primes.At(primes.Len() - 1); top > 0 && top <= isqrtMaxInt64 {
		if sq := top * top; sq < bound {
			bound = sq
		}
	}
	return pitable.NewParallel(bound, threads)
}

func phiRec(x wideint.Int128, a int64, primes *primearray.Array, pi *pitable.Table, maxDepth, depth int64) wideint.Int128 {
	if a == 0 {
		return x
	}
	p := primes.At(int(a - 1))
	if x.CmpInt64(p) <= 0 {
		return wideint.FromInt64(1)
	}

	if pi != nil && int(a) < primes.Len() && x.FitsInt64() {
		if xi := x.Int64(); xi <= pi.Max() {
			if pNext := primes.At(int(a)); pNext <= isqrtMaxInt64 && pNext*pNext > xi {
				return wideint.FromInt64(pi.Get(xi) - a + 1)
			}
		}
	}

	quotient, _ := x.DivFast64(p)
	xp := quotient.(wideint.Int128)

	if depth < maxDepth {
		leftCh := make(chan wideint.Int128, 1)
		go func() { leftCh <- phiRec(x, a-1, primes, pi, maxDepth, depth+1) }()
		right := phiRec(xp, a-1, primes, pi, maxDepth, depth+1)
		left := <-leftCh
		return wideint.ToInt128(left.Sub(right))
	}

	left := phiRec(x, a-1, primes, pi, maxDepth, depth+1)
	right := phiRec(xp, a-1, primes, pi, maxDepth, depth+1)
	return wideint.ToInt128(left.Sub(right))
}

// parallelDepth returns how many top levels of the phi recursion tree to
// fan out across goroutines: enough levels to produce at least `threads`
// leaves (2^depth >= threads), matching spec.md's "parallel over the
// top-level recursion fan-out" guidance for pi_legendre.
func parallelDepth(threads int) int64 {
	if threads <= 1 {
		return 0
	}
	depth := int64(0)
	leaves := int64(1)
	for leaves < int64(threads) {
		leaves *= 2
		depth++
	}
	return depth
}

// primeA returns pi(n) via a freshly built compressed table; the formula
// wrappers each need this exactly once at entry to resolve `a`.
func primeA(n int64) int64 {
	pi := pitable.New(n)
	return pi.Get(n)
}

// legendreA returns pi(floor(sqrt(x))): PiLegendre's a, and the b of the
// P2 correction in the Meissel, Lehmer and LMO wrappers.
func legendreA(x int64) int64 {
	return primeA(imath.Isqrt(x))
}
