// File: affinity/affinity.go
// Author: ain1084
//
// Platform-neutral API for CPU affinity. Platform-specific
// implementations live in separate files (affinity_linux.go,
// affinity_windows.go, affinity_stub.go) guarded by build tags.
//
// Pinning the producer and consumer goroutines to dedicated cores keeps
// each side's counter in a warm cache and removes scheduler migration
// from the latency profile. Entirely optional: the buffer is correct
// without it.

package affinity

import "runtime"

// SetAffinity binds the current OS thread to a given logical CPU on
// supported platforms. On unsupported platforms it returns an error.
// Callers that have not locked their goroutine to the thread should use
// Pin instead.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// Pin locks the calling goroutine to its OS thread and binds that
// thread to cpuID. Call from the producer or consumer goroutine before
// entering its transfer loop.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Unpin restores the thread's default CPU mask and unlocks the
// goroutine from it. Only meaningful after a successful Pin.
func Unpin() error {
	err := clearAffinityPlatform()
	runtime.UnlockOSThread()
	return err
}
