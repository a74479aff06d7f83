//go:build !linux

package budget

import "runtime"

// SystemProber returns the platform memory prober.
//
// Without a host-level memory API the prober only sees memory the Go
// runtime has already obtained, so automatic budgets on this platform
// degrade toward the minimum rather than guessing at host capacity.
func SystemProber() Prober {
	return runtimeProber{}
}

type runtimeProber struct{}

func (runtimeProber) MemoryInfo() (MemoryInfo, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	committed := ms.HeapInuse + ms.StackInuse + ms.MSpanInuse + ms.MCacheInuse
	free := uint64(0)
	if ms.Sys > committed {
		free = ms.Sys - committed
	}

	return MemoryInfo{
		Peak:      ms.Sys,
		Committed: committed,
		Free:      free,
	}, nil
}
