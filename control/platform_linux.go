//go:build linux
// +build linux

// control/platform_linux.go
// Author: ain1084
//
// Linux-specific debug probe integrations.

package control

import (
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

// RegisterPlatformProbes sets Linux-specific debug probes.
func RegisterPlatformProbes(r *Registry) {
	r.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	r.RegisterProbe("platform.gomaxprocs", func() any {
		return runtime.GOMAXPROCS(0)
	})
	r.RegisterProbe("platform.pagesize", func() any {
		return os.Getpagesize()
	})
	r.RegisterProbe("platform.affinity_cpus", func() any {
		var set unix.CPUSet
		if err := unix.SchedGetaffinity(0, &set); err != nil {
			return -1
		}
		return set.Count()
	})
}
