// Package control
// Author: ain1084
//
// Configuration, registry, and hot-reload layer around the ring buffer
// core. Nothing here sits on the data path; the package exists so that
// services embedding buffers can configure them uniformly and observe
// them at runtime.
//
// Provides concurrent-safe state handling primitives including:
//   - Typed configuration loading with environment and file sources
//   - A store with atomic snapshot reads and reload listeners
//   - A registry mapping names to live buffer statistics
//   - Debug probe registration and state export
package control
