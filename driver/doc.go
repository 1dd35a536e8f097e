// Package driver defines the contract between qtkit and concrete Qt
// binding implementations.
//
// A driver wraps one mutually-incompatible toolkit binding. Drivers
// register themselves in a process-wide registry, typically from an init
// function, the way database/sql drivers do:
//
//	import _ "example.com/qtkit-pyside2"
//
// The registry answers two questions during resolution: which drivers are
// installed (registered), and which binding's native core has already been
// initialized in this process (marked loaded). A process must never
// initialize two incompatible bindings of the same toolkit, so a loaded
// binding always wins resolution.
//
// Concrete cgo-backed drivers live in separate modules to avoid dependency
// coupling; this package carries only the contract and the registry. The
// drivertest package provides in-memory fakes.
package driver
