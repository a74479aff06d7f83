//go:build linux

package budget

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SystemProber returns the platform memory prober.
func SystemProber() Prober {
	return sysinfoProber{}
}

// sysinfoProber reads host memory metrics via sysinfo(2).
type sysinfoProber struct{}

func (sysinfoProber) MemoryInfo() (MemoryInfo, error) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return MemoryInfo{}, fmt.Errorf("budget: sysinfo: %w", err)
	}

	unit := uint64(si.Unit)
	total := uint64(si.Totalram) * unit
	// Buffer cache is reclaimable, so count it as free.
	free := (uint64(si.Freeram) + uint64(si.Bufferram)) * unit

	return MemoryInfo{
		Peak:      total,
		Committed: total - free,
		Free:      free,
	}, nil
}
