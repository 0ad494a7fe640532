package formula

import "primecount/primearray"

// NthPrime returns the n-th prime (1-indexed: NthPrime(1) == 2). Delegates
// to primearray.NthPrime's density-estimate-then-verify sieve rather than
// binary-searching on Pi, sidestepping the pi(x)<->nth_prime(n) circularity
// spec.md §9 warns reimplementers about (nth_prime must not recurse into
// a formula that itself might call nth_prime).
func NthPrime(n int64, threads int) int64 {
	return primearray.NthPrime(n)
}
