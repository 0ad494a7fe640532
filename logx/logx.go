// Package logx prints the section banners and parameter/result lines
// every formula entry point writes when verbose logging is enabled,
// gated by a single boolean so a caller that wants a quiet library
// doesn't pay for string formatting on the hot path.
//
// Grounded on the teacher's own debug.go: a minimal, direct wrapper
// around the standard library's "log" package rather than a
// structured-logging dependency — the teacher never reaches for one,
// even in its own cold-path diagnostics, so neither does this package.
package logx

import (
	"log"
	"strings"
)

// Enabled gates every function in this package; callers flip it via
// Settings.PrintStatus rather than mutating it directly, so the package
// itself carries no other global state.
var Enabled bool

// Section prints a blank line followed by a "=== name ===" banner,
// matching primecount.cpp's print("") / print("=== B(x, y) ===") pairs
// at the top of every formula.
func Section(name string) {
	if !Enabled {
		return
	}
	log.Print("")
	log.Print("=== " + name + " ===")
}

// Params prints a single-line space-joined dump of a formula's input
// parameters, matching primecount.cpp's print(x, y, threads) overloads.
func Params(values ...string) {
	if !Enabled {
		return
	}
	log.Print(strings.Join(values, " "))
}

// Result prints a formula's name, final value, and elapsed seconds,
// matching primecount.cpp's print(name, value, time) call at the end of
// every formula function.
func Result(name, value string, seconds float64) {
	if !Enabled {
		return
	}
	log.Printf("%s = %s, seconds = %.3f", name, value, seconds)
}

// Resume prints the percent-complete line a resumed checkpoint reports
// before a formula falls through to returning its cached sum, matching
// primecount.cpp's print_resume.
func Resume(percent float64, x string) {
	if !Enabled {
		return
	}
	log.Printf("resuming from backup, %.1f%% done (x = %s)", percent, x)
}
