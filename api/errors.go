// Package api
// Author: ain1084
//
// Common error values shared by the control and adapter packages.

package api

import "fmt"

// Errors returned by registries and configuration plumbing. Buffer
// operations themselves never return errors: unavailability is reported
// through counts and booleans, contract violations panic.
var (
	ErrAlreadyRegistered = fmt.Errorf("ring already registered")
	ErrNotRegistered     = fmt.Errorf("ring not registered")
	ErrInvalidConfig     = fmt.Errorf("invalid configuration")
)
