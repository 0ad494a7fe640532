// Command primecount is a thin manual-testing convenience wrapping the
// primecount library's Pi(string) entry point; it is not a specified
// component (see SPEC_FULL.md's Non-goals) and intentionally does no
// argument validation beyond what the library itself reports.
package main

import (
	"flag"
	"fmt"
	"os"

	"primecount"
)

func main() {
	threads := flag.Int("threads", primecount.MaxThreads, "number of threads to use (0 = all hardware threads)")
	verbose := flag.Bool("verbose", false, "print progress status while computing")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: primecount [-threads=N] [-verbose] <x>")
		os.Exit(2)
	}

	primecount.SetPrintStatus(*verbose)

	result, err := primecount.PiString(flag.Arg(0), *threads)
	if err != nil {
		fmt.Fprintln(os.Stderr, "primecount:", err)
		os.Exit(1)
	}

	fmt.Println(result)
}
