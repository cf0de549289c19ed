// File: api/doc.go
// Author: ain1084
// License: MIT

// Package api defines the public contracts of the direct ring buffer:
// the producer and consumer handle interfaces, the slice transform
// callback types, and the statistics snapshot consumed by monitoring
// adapters.
//
// The buffer itself lives in package ringbuf; implementations here are
// deliberately absent so that adapters, registries and examples can
// depend on the contracts without importing the engine.
package api
