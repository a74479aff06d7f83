// Package budget computes how many bytes of records a sorter may hold in
// memory at once. Two policies are available: Fixed, a caller-supplied
// byte count validated against a minimum floor, and Automatic, a
// best-effort estimate derived from the memory metrics a Prober exposes.
package budget

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MinBufferBytes is the smallest buffer a sorter can make useful
	// progress with. Fixed budgets below it are rejected.
	MinBufferBytes = 512 * 1024

	// autoFloorBytes is the recommended floor for automatically sized
	// buffers. Below this, spill files multiply fast enough that merge
	// overhead dominates.
	autoFloorBytes = 32 << 20

	// maxBufferBytes caps any budget at the largest representable
	// buffer size.
	maxBufferBytes = math.MaxInt64
)

// ErrBudgetTooSmall is returned when a fixed budget is below
// MinBufferBytes.
var ErrBudgetTooSmall = errors.New("budget: buffer size below minimum")

// MemoryInfo is the triple of process memory metrics the automatic
// policy works from.
type MemoryInfo struct {
	// Peak is the largest amount of memory observed committed, in bytes.
	Peak uint64
	// Committed is the memory currently committed, in bytes.
	Committed uint64
	// Free is the memory currently available, in bytes.
	Free uint64
}

// Prober reports memory metrics for the host platform. Implementations
// are best-effort; the automatic policy only needs the numbers to be the
// right order of magnitude.
type Prober interface {
	MemoryInfo() (MemoryInfo, error)
}

// Fixed validates a caller-supplied budget. Values below MinBufferBytes
// are rejected; values above the platform maximum are clamped.
func Fixed(n int64) (int64, error) {
	if n < MinBufferBytes {
		return 0, fmt.Errorf("%w: %d bytes (minimum %d)", ErrBudgetTooSmall, n, MinBufferBytes)
	}
	if n > maxBufferBytes {
		return maxBufferBytes, nil
	}
	return n, nil
}

// Automatic derives a budget from the prober's current memory metrics.
//
// The estimate starts from half of currently-free memory. When that is
// below the recommended floor, or when total headroom (peak - committed
// + free) is more than ten times the floor, the policy prefers half of
// the headroom if that still clears the floor, and otherwise falls back
// to the larger of the absolute minimum and half of free memory. The
// result is clamped to the platform maximum.
func Automatic(p Prober) (int64, error) {
	info, err := p.MemoryInfo()
	if err != nil {
		return 0, fmt.Errorf("budget: probing memory: %w", err)
	}

	half := info.Free / 2
	headroom := info.Free
	if info.Peak > info.Committed {
		headroom += info.Peak - info.Committed
	}

	size := half
	if half < autoFloorBytes || headroom > 10*autoFloorBytes {
		if headroom/2 > autoFloorBytes {
			size = headroom / 2
		} else {
			size = max(MinBufferBytes, half)
		}
	}

	if size > maxBufferBytes {
		size = maxBufferBytes
	}
	if size < MinBufferBytes {
		size = MinBufferBytes
	}

	return int64(size), nil
}
