// Package loadbalancer implements the adaptive work dispatcher for the
// special-leaves sieve: disjoint segments of [1, sieve_limit] are handed
// out one critical-section-gated batch at a time, with the batch size
// tuned so no single thread ends up holding a large fraction of the
// remaining work.
//
// Grounded on original_source/src/LoadBalancer.cpp for the overall shape
// (a single critical section, a monotonically advancing low cursor,
// doubling segment_size during warm-up) and on the teacher's
// syncharvester.go adaptive batch-size tuning (double on success, shrink
// on slow progress) for the general posture of "start conservative, widen
// once the steady state is reached."
package loadbalancer

import (
	"math"
	"sync"
	"time"

	"primecount/imath"
	"primecount/sieve"
	"primecount/status"
)

// Runtime describes one worker's just-completed batch, used to tune the
// next batch's size.
type Runtime struct {
	Init float64 // first-ever batch's elapsed seconds, the calibration reference
	Secs float64 // this batch's elapsed seconds
}

// LoadBalancer dispatches segments of [1, sieveLimit] to callers via
// GetWork, all mutation serialized under one mutex (mirroring the single
// OpenMP critical section the original dispatcher used).
type LoadBalancer struct {
	mu sync.Mutex

	low         int64
	maxLow      int64
	limit       int64 // sieveLimit + 1
	segmentSize int64
	segments    int64
	maxSize     int64
	sum         int64
	sumApprox   int64

	st    *status.Status
	start time.Time
}

// New returns a LoadBalancer covering [1, sieveLimit], with sumApprox the
// caller's estimate of the final reduction total (used only for the
// percent-done heuristic, never for correctness).
func New(sieveLimit, sumApprox int64, printStatus bool) *LoadBalancer {
	sqrtLimit := imath.Isqrt(sieveLimit)
	divisor := imath.Ilog(sqrtLimit)
	if divisor < 1 {
		divisor = 1
	}
	size := int64(1) << 9
	if alt := sqrtLimit / divisor; alt > size {
		size = alt
	}
	size = sieve.GetSegmentSize(size)

	maxSize := sqrtLimit
	if alt := int64(30 * (1 << 15)); alt > maxSize {
		maxSize = alt
	}

	return &LoadBalancer{
		low:         1,
		maxLow:      1,
		limit:       sieveLimit + 1,
		segmentSize: size,
		segments:    1,
		maxSize:     maxSize,
		sumApprox:   sumApprox,
		st:          status.New(printStatus),
		start:       time.Now(),
	}
}

// GetWork reports sumDelta accumulated since the caller's previous batch
// (prevLow, the low that batch started at; pass 0 on a worker's first
// call), then returns the next (low, segments, segmentSize) assignment and
// whether the sieve range is now fully dispatched.
func (lb *LoadBalancer) GetWork(prevLow, sumDelta int64, runtime Runtime) (low, segments, segmentSize int64, done bool) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	lb.sum += sumDelta

	if prevLow >= lb.maxLow {
		lb.maxLow = prevLow
		if lb.sum != 0 {
			if lb.segmentSize < lb.maxSize {
				lb.segmentSize = sieve.GetSegmentSize(lb.segmentSize * 2)
				if lb.segmentSize > lb.maxSize {
					lb.segmentSize = lb.maxSize
				}
			} else {
				lb.updateSegments(runtime)
			}
		}
	}

	low = lb.low
	segments = lb.segments
	segmentSize = lb.segmentSize

	lb.low += lb.segments * lb.segmentSize
	if lb.low > lb.limit {
		lb.low = lb.limit
	}

	if lb.st != nil {
		lb.st.Print(lb.sum, lb.sumApprox, 0)
	}

	return low, segments, segmentSize, low >= lb.limit
}

// updateSegments implements the proportional-control resize: estimate the
// remaining wall-clock time from the current blended percent-done figure,
// derive a threshold batch duration, and scale segments toward the ratio
// of that threshold to the last observed batch duration, clamped to
// [0.5x, 2x] per call so no single resize can overcorrect.
func (lb *LoadBalancer) updateSegments(runtime Runtime) {
	percent := lb.st.BlendedPercent(lb.low, lb.limit, lb.sum, lb.sumApprox)
	percent = clamp(10, percent, 100)

	totalElapsed := time.Since(lb.start).Seconds()
	remaining := totalElapsed * (100/percent - 1)
	threshold := math.Max(remaining/4, math.Max(runtime.Init*10, 0.01))

	secs := runtime.Secs
	if secs < 0.001 {
		secs = 0.001
	}
	factor := threshold / secs

	if runtime.Secs > runtime.Init*1000 && runtime.Secs > 0 {
		if cap := runtime.Init * 1000 / runtime.Secs; cap < factor {
			factor = cap
		}
	}
	factor = clamp(0.5, factor, 2.0)

	newSegments := int64(math.Round(float64(lb.segments) * factor))
	if newSegments < 1 {
		newSegments = 1
	}
	lb.segments = newSegments
}

// Result returns the accumulated reduction total reported so far.
func (lb *LoadBalancer) Result() int64 {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.sum
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
