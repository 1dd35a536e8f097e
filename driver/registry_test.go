package driver

import (
	"context"
	"testing"
)

type stubDriver struct {
	name    string
	handles *Handles
	err     error
	calls   int
}

func (d *stubDriver) Name() string { return d.name }

func (d *stubDriver) Activate(ctx context.Context) (*Handles, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	return d.handles, nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	d := &stubDriver{name: "pyqt5"}
	reg.Register(d)

	got, ok := reg.Lookup("pyqt5")
	if !ok {
		t.Fatal("Lookup returned false for registered driver")
	}
	if got.Name() != "pyqt5" {
		t.Errorf("Name = %q, want pyqt5", got.Name())
	}
	if !reg.Installed("pyqt5") {
		t.Error("Installed = false for registered driver")
	}
	if reg.Installed("pyside2") {
		t.Error("Installed = true for unregistered driver")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubDriver{name: "pyqt5"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	reg.Register(&stubDriver{name: "pyqt5"})
}

func TestRegistryNilDriverPanics(t *testing.T) {
	reg := NewRegistry()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil driver")
		}
	}()
	reg.Register(nil)
}

func TestRegistryDriversSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubDriver{name: "pyside2"})
	reg.Register(&stubDriver{name: "pyqt5"})

	names := reg.Drivers()
	if len(names) != 2 || names[0] != "pyqt5" || names[1] != "pyside2" {
		t.Errorf("Drivers() = %v, want [pyqt5 pyside2]", names)
	}
}

func TestRegistryLoadedTracking(t *testing.T) {
	reg := NewRegistry()
	if reg.Loaded("pyqt5") {
		t.Error("Loaded = true before MarkLoaded")
	}
	reg.MarkLoaded("pyqt5")
	if !reg.Loaded("pyqt5") {
		t.Error("Loaded = false after MarkLoaded")
	}
	// Loaded does not require the driver to be installed: a host app may
	// have initialized the binding without registering a qtkit driver.
	if reg.Installed("pyqt5") {
		t.Error("MarkLoaded must not register a driver")
	}
}

func TestChainOrdersMiddlewares(t *testing.T) {
	var order []string
	mark := func(label string) Middleware {
		return func(inner Driver) Driver {
			return driverFunc{name: inner.Name(), fn: func(ctx context.Context) (*Handles, error) {
				order = append(order, label)
				return inner.Activate(ctx)
			}}
		}
	}

	d := &stubDriver{name: "pyqt5", handles: &Handles{Version: "5.9.0"}}
	wrapped := Chain(mark("outer"), mark("inner"))(d)
	if _, err := wrapped.Activate(context.Background()); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
	if d.calls != 1 {
		t.Errorf("inner driver called %d times, want 1", d.calls)
	}
}

type driverFunc struct {
	name string
	fn   func(ctx context.Context) (*Handles, error)
}

func (d driverFunc) Name() string                                { return d.name }
func (d driverFunc) Activate(ctx context.Context) (*Handles, error) { return d.fn(ctx) }
