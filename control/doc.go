// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics and debug introspection for the ring
// benchmark harness.
//
// Provides:
//   - Benchmark configuration with defaults, flag binding and validation
//   - Prometheus-backed metrics with flat snapshots for logging
//   - Probe registration and state export, including ring cursors
package control
