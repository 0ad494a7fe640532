// Package status reports the two progress metrics the hard special-leaves
// dispatch prints while running: a monotone, skewed percent-done estimate
// and the relative standard deviation of per-thread runtimes ("load
// balance %").
//
// Grounded on original_source/src/primecount.cpp's print_percent (the
// pow-based skew curve) and on LoadBalancer.cpp's skewed_percent call site;
// the monotone clamp and RSD-to-load-balance mapping follow the same file.
package status

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// Status tracks wall-clock elapsed time and the last percent reported, so
// successive Percent calls never move backward even if a later sample's
// raw ratio happens to dip (a real possibility since sum/approx is only an
// estimate of the final total).
type Status struct {
	mu          sync.Mutex
	start       time.Time
	lastPercent float64
	printOn     bool
}

// New returns a Status whose elapsed-time clock starts now.
func New(printOn bool) *Status {
	return &Status{start: time.Now(), printOn: printOn}
}

// Elapsed returns seconds since the Status was created.
func (s *Status) Elapsed() float64 {
	return time.Since(s.start).Seconds()
}

// Percent returns the monotone, skewed percent-done figure for the given
// raw progress (current out of an estimated approx).
func (s *Status) Percent(current, approx int64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := skewedPercent(current, approx)
	if p < s.lastPercent {
		p = s.lastPercent
	}
	s.lastPercent = p
	return p
}

// Print writes the "Status: N%, Load balance: N%" line primecount.cpp's
// print_percent writes, if printing was enabled at construction.
func (s *Status) Print(current, approx int64, rsd float64) {
	if !s.printOn {
		return
	}
	percent := s.Percent(current, approx)
	lb := LoadBalance(rsd)
	fmt.Printf("\r%40s\rStatus: %d%%, Load balance: %d%%", "", int(percent), lb)
}

// BlendedPercent is the combined progress metric LoadBalancer.update_segments
// drives its timing threshold from: the average of the sieve-range
// completion ratio (low/limit) and the approximate-sum completion ratio
// (sum/approx), pushed through the same skew curve as Percent and clamped
// to never move backward.
func (s *Status) BlendedPercent(low, limit, sum, approx int64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw := (rawPercent(low, limit) + rawPercent(sum, approx)) / 2
	p := skewFromRaw(raw)
	if p < s.lastPercent {
		p = s.lastPercent
	}
	s.lastPercent = p
	return p
}

// skewedPercent implements print_percent's base^percent remap: the raw
// ratio current/approx is pushed through a curve chosen so the displayed
// percentage grows roughly linearly with elapsed time even though special
// leaves are heavily front-loaded in the sieve range.
func skewedPercent(current, approx int64) float64 {
	return skewFromRaw(rawPercent(current, approx))
}

func skewFromRaw(raw float64) float64 {
	base := 0.95 + raw/2100
	min := math.Pow(base, 100.0)
	max := math.Pow(base, 0.0)
	skewed := 100 * (math.Pow(base, raw) - min) / (max - min)
	return 100 - clamp(0, skewed, 100)
}

// rawPercent is the unskewed completion ratio, clamped to [0,100].
func rawPercent(current, approx int64) float64 {
	if approx <= 0 {
		return 100
	}
	p := 100 * float64(current) / float64(approx)
	return clamp(0, p, 100)
}

// RSD returns the relative standard deviation, as a percentage, of the
// given per-thread elapsed-time samples.
func RSD(samples []float64) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}
	var mean float64
	for _, v := range samples {
		mean += v
	}
	mean /= float64(n)
	if mean == 0 {
		return 0
	}
	var variance float64
	for _, v := range samples {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)
	return 100 * math.Sqrt(variance) / mean
}

// LoadBalance converts an RSD percentage into the "100 - rsd" figure
// print_percent reports, clamped to [0,100].
func LoadBalance(rsd float64) int {
	return int(clamp(0, 100-rsd+0.5, 100))
}

func clamp(lo, x, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
