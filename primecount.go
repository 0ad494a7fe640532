// Package primecount is the public API surface named in spec.md §6: Pi
// (and its arithmetic-expression-string overload), the thread/print-status
// setters, Max, and GetWTime. It dispatches to the formula wrappers in
// package formula and reads its configuration from a single package-level
// Settings instance, matching primecount.cpp's own module-level
// threads_/print_status_ globals forwarding into the same functions.
//
// Grounded on original_source/src/primecount.cpp's pi/pi_deleglise_rivat/
// set_num_threads/get_num_threads/max/get_wtime free functions.
package primecount

import (
	"strings"
	"time"

	"primecount/calculator"
	"primecount/formula"
	"primecount/logx"
	"primecount/primearray"
	"primecount/settings"
	"primecount/wideint"
)

// MaxThreads is the sentinel meaning "use every hardware thread", exported
// for callers of SetNumThreads who don't want to query runtime.NumCPU()
// themselves.
const MaxThreads = settings.MaxThreads

// directSieveThreshold is the x below which Pi dispatches to PiPrimesieve
// instead of PiDeleglisRivat, mirroring primecount.cpp's own guard against
// running the full combinatorial machinery on inputs small enough to just
// sieve directly.
const directSieveThreshold = 1 << 20

var (
	globalSettings = settings.New()
	startTime      = time.Now()
)

// Pi returns the number of primes <= x, using the thread count from
// SetNumThreads unless threads is given explicitly (at most one value is
// read; extras are ignored, matching the variadic-override convention
// primecount.cpp's overloaded pi(x) / pi(x, threads) pair expresses in C++
// by overloading instead of a variadic parameter).
func Pi(x wideint.Signed, threads ...int) wideint.Signed {
	n := resolveThreads(threads)
	xw := wideint.ToInt128(x)
	if xw.FitsInt64() && xw.Int64() < directSieveThreshold {
		return wideint.Narrow(wideint.FromInt64(formula.PiPrimesieve(xw.Int64(), n)))
	}
	return formula.PiDeleglisRivat(x, n)
}

// PiString parses expr (e.g. "10^20", "2^64 + 1") via the calculator and
// returns pi(x) stringified, the Go analogue of primecount.cpp's
// std::string pi(const std::string&, int threads) overload.
func PiString(expr string, threads ...int) (string, error) {
	v, err := calculator.Eval(expr)
	if err != nil {
		return "", err
	}
	return Pi(v, threads...).String(), nil
}

// Phi is the public export of Legendre's partial sieve function, counting
// integers in [1,x] not divisible by any of the first a primes.
func Phi(x wideint.Signed, a int64, threads ...int) wideint.Signed {
	n := resolveThreads(threads)
	if a < 1 {
		return x
	}
	primes := primearray.New(primearray.NthPrime(a))
	return formula.Phi(x, a, n, primes)
}

// NthPrime returns the n-th prime (1-indexed).
func NthPrime(n int64, threads ...int) int64 {
	return formula.NthPrime(n, resolveThreads(threads))
}

// SetNumThreads sets the process-wide default thread count used by Pi and
// the formula wrappers when they aren't given an explicit override.
func SetNumThreads(threads int) {
	globalSettings.SetThreads(threads)
}

// GetNumThreads returns the process-wide default thread count.
func GetNumThreads() int {
	return globalSettings.Threads()
}

// SetPrintStatus toggles verbose progress logging (see package logx), the
// Go analogue of primecount.cpp's set_print_status flipping its own global
// print_status_ flag that every formula's print() calls check.
func SetPrintStatus(on bool) {
	globalSettings.SetPrintStatus(on)
	logx.Enabled = on
}

// PrintStatus reports whether verbose progress logging is enabled.
func PrintStatus() bool {
	return globalSettings.PrintStatus()
}

// Max returns the largest x string Pi(string) accepts: 10^27, matching
// primecount.cpp's max() under HAVE_INT128_T.
func Max() string {
	return "1" + strings.Repeat("0", 27)
}

// GetWTime returns seconds elapsed since this package was initialized,
// matching omp_get_wtime's "seconds since an arbitrary but fixed point"
// contract (primecount.cpp falls back to std::clock()/CLOCKS_PER_SEC
// without OpenMP; time.Since against a process-start epoch is this
// module's equivalent of that fallback path).
func GetWTime() float64 {
	return time.Since(startTime).Seconds()
}

func resolveThreads(threads []int) int {
	requested := globalSettings.Threads()
	if len(threads) > 0 {
		requested = threads[0]
	}
	return settings.IdealNumThreads(requested, 1, 0)
}
