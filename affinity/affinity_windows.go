//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: ain1084
//
// Windows implementation via SetThreadAffinityMask.

package affinity

import (
	"fmt"
	"runtime"
	"syscall"
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procSetThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread      = kernel32.NewProc("GetCurrentThread")
)

func setThreadMask(mask uintptr) error {
	hThread, _, _ := procGetCurrentThread.Call()
	ret, _, err := procSetThreadAffinityMask.Call(hThread, mask)
	if ret == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask: %w", err)
	}
	return nil
}

// setAffinityPlatform binds the calling thread to a single CPU.
func setAffinityPlatform(cpuID int) error {
	if cpuID < 0 || cpuID >= 64 {
		return fmt.Errorf("affinity: cpu %d outside the mask range", cpuID)
	}
	return setThreadMask(uintptr(1) << cpuID)
}

// clearAffinityPlatform restores a mask covering every visible CPU.
func clearAffinityPlatform() error {
	n := runtime.NumCPU()
	if n > 64 {
		n = 64
	}
	var mask uintptr
	for i := 0; i < n; i++ {
		mask |= uintptr(1) << i
	}
	return setThreadMask(mask)
}
