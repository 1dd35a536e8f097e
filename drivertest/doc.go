// Package drivertest provides in-memory fake binding drivers for testing
// qtkit resolution and facade construction.
//
// Fakes are configured by struct literal: which namespaces they export,
// which save-dialog primitive they carry, whether they have native float
// color accessors, and whether activation should fail. A fresh registry
// fixture keeps tests isolated from the process-wide default registry.
package drivertest
