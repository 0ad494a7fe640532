// ════════════════════════════════════════════════════════════════════════════════════════════════
// Cache-Line-Padded Per-Thread Scalar Cells
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: False-Sharing-Free Scratch Storage For Parallel Reductions
//
// Description:
//   Each slot lives on its own padded cell so concurrent writers touching adjacent thread
//   indices never invalidate each other's cache line. Used for the per-worker prime counts
//   that formula.PiPrimesieve's parallel sieve pass writes from every worker.
//
// Grounded on original_source/include/aligned_vector.hpp (T val[CACHE_LINE_SIZE/sizeof(T)],
// 1024-byte conservative padding) and on the teacher's compactqueue128 cache-alignment style
// (//go:notinheap, //go:align, explicit byte-count padding fields).
// ════════════════════════════════════════════════════════════════════════════════════════════════

package alignedslots

// CacheLineBytes is the conservative cache line size padding targets, wide
// enough to survive machines with unusually large lines (IBM z13 uses 256).
const CacheLineBytes = 1024

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// INT64 SLOTS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// int64Cell holds one int64 value padded out to a full cache line.
//
//go:notinheap
//go:align 64
type int64Cell struct {
	val int64
	_   [CacheLineBytes - 8]byte // padding - cache isolation
}

// Int64Slots is a fixed-length array of cache-line-isolated int64 cells.
type Int64Slots struct {
	cells []int64Cell
}

// NewInt64Slots allocates n independently-padded int64 slots, zero-initialized.
func NewInt64Slots(n int) *Int64Slots {
	return &Int64Slots{cells: make([]int64Cell, n)}
}

//go:nosplit
//go:inline
func (s *Int64Slots) Get(i int) int64 { return s.cells[i].val }

//go:nosplit
//go:inline
func (s *Int64Slots) Set(i int, v int64) { s.cells[i].val = v }

//go:nosplit
//go:inline
func (s *Int64Slots) Add(i int, delta int64) { s.cells[i].val += delta }

func (s *Int64Slots) Len() int { return len(s.cells) }

// Sum returns the sum of all slots, in ascending index order. Callers that
// need cross-thread carry order (B-formula's pix_total accumulation) should
// not use this and should instead read slots individually in order.
func (s *Int64Slots) Sum() int64 {
	var total int64
	for i := range s.cells {
		total += s.cells[i].val
	}
	return total
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// FLOAT64 SLOTS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// float64Cell holds one float64 value padded out to a full cache line.
//
//go:notinheap
//go:align 64
type float64Cell struct {
	val float64
	_   [CacheLineBytes - 8]byte
}

// Float64Slots is a fixed-length array of cache-line-isolated float64
// cells.
type Float64Slots struct {
	cells []float64Cell
}

func NewFloat64Slots(n int) *Float64Slots {
	return &Float64Slots{cells: make([]float64Cell, n)}
}

//go:nosplit
//go:inline
func (s *Float64Slots) Get(i int) float64 { return s.cells[i].val }

//go:nosplit
//go:inline
func (s *Float64Slots) Set(i int, v float64) { s.cells[i].val = v }

func (s *Float64Slots) Len() int { return len(s.cells) }
