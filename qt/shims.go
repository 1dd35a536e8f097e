package qt

import (
	"github.com/kbukum/qtkit/driver"
	"github.com/kbukum/qtkit/errors"
)

// SaveFileName invokes the save dialog under the canonical contract:
// chosen path plus selected name filter. Bindings without a filter-aware
// primitive report an empty filter.
func (f *Facade) SaveFileName(parent any, caption, dir, filter string) (path, selectedFilter string, err error) {
	return f.saveFile(parent, caption, dir, filter)
}

// RGBAF returns the color's red, green, blue and alpha channels as
// floats in [0, 1].
func (f *Facade) RGBAF(c driver.Color) (r, g, b, a float64) { return f.colors.RGBAF(c) }

// HSLAF returns the color's hue, saturation, lightness and alpha channels
// as floats in [0, 1].
func (f *Facade) HSLAF(c driver.Color) (h, s, l, a float64) { return f.colors.HSLAF(c) }

// HSVAF returns the color's hue, saturation, value and alpha channels as
// floats in [0, 1].
func (f *Facade) HSVAF(c driver.Color) (h, s, v, a float64) { return f.colors.HSVAF(c) }

// aliasedNamespace resolves canonical symbol names through a dialect's
// native vocabulary before consulting the underlying namespace.
type aliasedNamespace struct {
	inner   driver.Namespace
	aliases map[string]string
}

func (n *aliasedNamespace) Name() string { return n.inner.Name() }

func (n *aliasedNamespace) Lookup(symbol string) (any, bool) {
	if native, ok := n.aliases[symbol]; ok {
		symbol = native
	}
	return n.inner.Lookup(symbol)
}

// aliasNamespace wraps ns so the canonical vocabulary resolves against
// native names. A nil or empty alias table returns ns unchanged.
func aliasNamespace(ns driver.Namespace, aliases map[string]string) driver.Namespace {
	if len(aliases) == 0 {
		return ns
	}
	return &aliasedNamespace{inner: ns, aliases: aliases}
}

// normalizeSaveFile picks the binding's filter-aware save primitive, or
// synthesizes one from the basic variant. The synthesized version always
// reports that no filter was selected.
func normalizeSaveFile(h *driver.Handles) driver.SaveFileFunc {
	if h.SaveFileName != nil {
		return h.SaveFileName
	}
	if h.SaveFileNameBasic != nil {
		basic := h.SaveFileNameBasic
		return func(parent any, caption, dir, filter string) (string, string, error) {
			path, err := basic(parent, caption, dir, filter)
			return path, "", err
		}
	}
	return func(any, string, string, string) (string, string, error) {
		return "", "", errors.Internal("binding exposes no save dialog primitive")
	}
}

// normalizeColors fills in float color accessors the binding lacks with
// equivalents derived from the integer channel APIs. Hue is normalized
// over 360 degrees, all other channels over 255.
func normalizeColors(native *driver.ColorAccessors) driver.ColorAccessors {
	out := driver.ColorAccessors{}
	if native != nil {
		out = *native
	}
	if out.RGBAF == nil {
		out.RGBAF = func(c driver.Color) (float64, float64, float64, float64) {
			r, g, b, a := c.RGBA()
			return channelF(r), channelF(g), channelF(b), channelF(a)
		}
	}
	if out.HSLAF == nil {
		out.HSLAF = func(c driver.Color) (float64, float64, float64, float64) {
			h, s, l, a := c.HSLA()
			return hueF(h), channelF(s), channelF(l), channelF(a)
		}
	}
	if out.HSVAF == nil {
		out.HSVAF = func(c driver.Color) (float64, float64, float64, float64) {
			h, s, v, a := c.HSVA()
			return hueF(h), channelF(s), channelF(v), channelF(a)
		}
	}
	return out
}

func channelF(v int) float64 { return float64(v) / 255.0 }

func hueF(h int) float64 { return float64(h) / 360.0 }
