package driver

import "context"

// Namespace is an opaque symbol table exported by a binding, standing in
// for one of the toolkit's core module namespaces.
type Namespace interface {
	// Name returns the namespace name, e.g. "QtCore".
	Name() string
	// Lookup resolves a symbol exported by the namespace.
	Lookup(symbol string) (any, bool)
}

// SaveFileFunc is the canonical "save file with selected filter"
// primitive: it returns the chosen path and the name filter the user
// selected.
type SaveFileFunc func(parent any, caption, dir, filter string) (path, selectedFilter string, err error)

// SaveFileBasicFunc is the reduced save-file primitive offered by bindings
// that cannot report the selected filter.
type SaveFileBasicFunc func(parent any, caption, dir, filter string) (path string, err error)

// Color is the integer-channel color handle every binding can produce.
// Channel values are 0..255; hue is 0..359.
type Color interface {
	RGBA() (r, g, b, a int)
	HSLA() (h, s, l, a int)
	HSVA() (h, s, v, a int)
}

// ColorAccessors holds a binding's native floating-point color channel
// accessors. Bindings without native float accessors leave the struct out
// of their Handles; the facade derives equivalents from the integer
// channels.
type ColorAccessors struct {
	RGBAF func(Color) (r, g, b, a float64)
	HSLAF func(Color) (h, s, l, a float64)
	HSVAF func(Color) (h, s, v, a float64)
}

// Handles is everything a driver exposes on successful activation.
type Handles struct {
	// Core, GUI and Widgets are the binding's module namespaces. Widgets
	// may be nil for dialects without a separate widgets namespace; the
	// facade collapses it onto GUI.
	Core    Namespace
	GUI     Namespace
	Widgets Namespace

	// Version is the binding-reported version string.
	Version string

	// SaveFileName is the native filter-aware save dialog primitive, or
	// nil when the binding only has the basic variant.
	SaveFileName SaveFileFunc
	// SaveFileNameBasic is the reduced primitive used to synthesize a
	// SaveFileFunc when SaveFileName is nil.
	SaveFileNameBasic SaveFileBasicFunc

	// Colors holds native float color accessors, or nil.
	Colors *ColorAccessors
}

// Driver is one concrete binding implementation.
type Driver interface {
	// Name returns the driver's canonical lowercase token, e.g. "pyqt5".
	Name() string
	// Activate initializes the binding's native core and returns its
	// handles. Activation is attempted at most once per process per
	// driver; failures are not retried.
	Activate(ctx context.Context) (*Handles, error)
}
