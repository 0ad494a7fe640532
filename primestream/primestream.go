// Package primestream implements bounded forward/backward prime iteration
// over a Sieve, the "PrimeStream" collaborator the B-formula's per-thread
// cursors are built on.
//
// Grounded on original_source/src/gourdon/B.cpp's B_thread, which keeps one
// forward primesieve::iterator and one reverse primesieve::iterator per
// worker and repeatedly re-seeds them as the thread's work window slides;
// here both directions live on a single Stream value re-sieving through the
// shared sieve.Sieve.
package primestream

import "primecount/sieve"

// defaultWindow is the width of each re-sieved window; arbitrary, but a
// multiple of 2*sieve.WordBits and well above sieve.MinSegmentSize, so a
// Stream never allocates a buffer smaller than Run is comfortable with.
const defaultWindow = 1 << 14

// Stream produces primes forward from (and including) its start value via
// NextPrime, and backward from (and excluding) its start value via
// PrevPrime. Both directions are monotone and return 0 once exhausted.
// Not safe for concurrent use by more than one goroutine.
type Stream struct {
	s    *sieve.Sieve
	stop int64 // NextPrime never returns a value > stop

	fWinLow  int64
	fWinSize int64
	fBlock   []uint64
	fCur     int64

	bWinLow  int64
	bWinSize int64
	bBlock   []uint64
	bCur     int64
}

// New returns a Stream whose NextPrime calls begin at start (inclusive) and
// never exceed stopHint, and whose PrevPrime calls begin just below start.
func New(s *sieve.Sieve, start, stopHint int64) *Stream {
	return &Stream{s: s, stop: stopHint, fCur: start, bCur: start}
}

// NextPrime returns the smallest prime >= the current forward position and
// <= the stop hint, advancing the cursor past it. Returns 0 once exhausted.
func (c *Stream) NextPrime() int64 {
	if c.fCur > c.stop {
		return 0
	}
	if c.fCur <= 2 {
		c.fCur = 3
		if c.stop >= 2 {
			return 2
		}
		return 0
	}

	v := c.fCur
	if v%2 == 0 {
		v++
	}
	for v <= c.stop {
		c.ensureForwardWindow(v)
		idx := (v - c.fWinLow) / 2
		if sieve.TestBit(c.fBlock, idx) {
			c.fCur = v + 2
			return v
		}
		v += 2
	}
	c.fCur = v
	return 0
}

// PrevPrime returns the largest prime strictly below the current backward
// position, retreating the cursor to it. Returns 0 once exhausted.
func (c *Stream) PrevPrime() int64 {
	if c.bCur <= 2 {
		c.bCur = 0
		return 0
	}
	if c.bCur == 3 {
		c.bCur = 2
		return 2
	}

	v := c.bCur - 1
	if v%2 == 0 {
		v--
	}
	for v >= 3 {
		c.ensureBackwardWindow(v)
		idx := (v - c.bWinLow) / 2
		if sieve.TestBit(c.bBlock, idx) {
			c.bCur = v
			return v
		}
		v -= 2
	}
	c.bCur = 2
	return 2
}

func (c *Stream) ensureForwardWindow(v int64) {
	if c.fBlock != nil && v >= c.fWinLow && v < c.fWinLow+c.fWinSize {
		return
	}
	size := sieve.GetSegmentSize(defaultWindow)
	low := v
	if low%2 == 0 {
		low++
	}
	if bound := c.s.Bound(); low+size > bound {
		size = sieve.GetSegmentSize(bound - low)
		if low+size > bound {
			size -= 2 * sieve.WordBits
		}
	}
	c.fBlock = make([]uint64, sieve.WordsFor(size))
	c.s.Run(low, size, c.fBlock)
	c.fWinLow, c.fWinSize = low, size
}

func (c *Stream) ensureBackwardWindow(v int64) {
	if c.bBlock != nil && v >= c.bWinLow && v < c.bWinLow+c.bWinSize {
		return
	}
	size := sieve.GetSegmentSize(defaultWindow)
	low := v - size + 2
	if low < 1 {
		low = 1
	}
	if low%2 == 0 {
		low++
	}
	size = sieve.GetSegmentSize(v - low + 2)
	if bound := c.s.Bound(); low+size > bound {
		size = bound - low
	}
	c.bBlock = make([]uint64, sieve.WordsFor(size))
	c.s.Run(low, size, c.bBlock)
	c.bWinLow, c.bWinSize = low, size
}
