package drivertest

import (
	"context"

	"github.com/kbukum/qtkit/driver"
)

// Namespace is a map-backed driver.Namespace.
type Namespace struct {
	NamespaceName string
	Symbols       map[string]any
}

// NewNamespace creates a namespace exporting the given symbols.
func NewNamespace(name string, symbols map[string]any) *Namespace {
	return &Namespace{NamespaceName: name, Symbols: symbols}
}

func (n *Namespace) Name() string { return n.NamespaceName }

func (n *Namespace) Lookup(symbol string) (any, bool) {
	v, ok := n.Symbols[symbol]
	return v, ok
}

// Color is a fixed-channel driver.Color.
type Color struct {
	R, G, B int
	Hue     int // 0..359
	Sat     int
	Light   int
	Val     int
	Alpha   int
}

func (c Color) RGBA() (int, int, int, int) { return c.R, c.G, c.B, c.Alpha }
func (c Color) HSLA() (int, int, int, int) { return c.Hue, c.Sat, c.Light, c.Alpha }
func (c Color) HSVA() (int, int, int, int) { return c.Hue, c.Sat, c.Val, c.Alpha }

// Driver is a configurable fake binding driver.
type Driver struct {
	// DriverName is the registry name, e.g. "pyqt5".
	DriverName string
	// Version is the binding-reported version string.
	Version string
	// ActivateErr, when set, is returned by Activate.
	ActivateErr error

	// CoreSymbols populates the core namespace. Use native vocabulary
	// (e.g. "pyqtSignal") to exercise canonical-name aliasing.
	CoreSymbols map[string]any
	// NoWidgets omits the separate widgets namespace, as dialects that
	// fold widgets into gui do.
	NoWidgets bool
	// BasicSaveOnly exposes only the filter-less save primitive.
	BasicSaveOnly bool
	// ColorF, when set, is exposed as the binding's native float color
	// accessors.
	ColorF *driver.ColorAccessors

	// SavePath and SaveFilter are what the fake save dialog reports.
	SavePath   string
	SaveFilter string

	// Activations counts Activate calls.
	Activations int
}

func (d *Driver) Name() string { return d.DriverName }

func (d *Driver) Activate(ctx context.Context) (*driver.Handles, error) {
	d.Activations++
	if d.ActivateErr != nil {
		return nil, d.ActivateErr
	}

	symbols := d.CoreSymbols
	if symbols == nil {
		symbols = map[string]any{"Signal": "signal", "Slot": "slot", "Property": "property"}
	}

	h := &driver.Handles{
		Core:    NewNamespace("QtCore", symbols),
		GUI:     NewNamespace("QtGui", map[string]any{"QColor": "qcolor"}),
		Version: d.Version,
		Colors:  d.ColorF,
	}
	if !d.NoWidgets {
		h.Widgets = NewNamespace("QtWidgets", map[string]any{"QFileDialog": "dialog"})
	}
	if d.BasicSaveOnly {
		h.SaveFileNameBasic = func(parent any, caption, dir, filter string) (string, error) {
			return d.SavePath, nil
		}
	} else {
		h.SaveFileName = func(parent any, caption, dir, filter string) (string, string, error) {
			return d.SavePath, d.SaveFilter, nil
		}
	}
	return h, nil
}

// NewRegistry builds an isolated registry with the given drivers
// registered.
func NewRegistry(drivers ...*Driver) *driver.Registry {
	reg := driver.NewRegistry()
	for _, d := range drivers {
		reg.Register(d)
	}
	return reg
}
