//go:build !linux
// +build !linux

// control/platform_other.go
// Author: ain1084
//
// Debug probe integrations for platforms without affinity support.

package control

import (
	"os"
	"runtime"
)

// RegisterPlatformProbes sets the portable debug probes.
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
}
