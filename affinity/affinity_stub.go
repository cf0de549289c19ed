//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: ain1084
//
// Stub implementation for platforms without thread affinity support.

package affinity

import "errors"

var errUnsupported = errors.New("affinity: not supported on this platform")

func setAffinityPlatform(int) error {
	return errUnsupported
}

func clearAffinityPlatform() error {
	return errUnsupported
}
