package qt

import "strings"

// API identifies one binding implementation and its API dialect. Exactly
// one API is active per process lifetime.
type API string

// Known binding APIs, in no particular order. PyQt4 exists in two
// dialects: the modern one (sip v2 analog) selected by configuration, and
// the legacy one reachable only through candidate fallback.
const (
	APIPyQt5    API = "pyqt5"
	APIPySide2  API = "pyside2"
	APIPythonQt API = "pythonqt"
	APIPyQt4    API = "pyqt4"
	APIPySide   API = "pyside"
	APIPyQt4v1  API = "pyqt4v1"
)

// loadedPriority is the fixed order in which already-loaded bindings are
// detected. The first binding found loaded wins resolution outright: a
// process must never initialize two incompatible bindings, so an active
// one is always respected.
var loadedPriority = []API{APIPyQt5, APIPySide2, APIPythonQt, APIPyQt4, APIPySide}

// overrideTokens maps accepted QT_API values to binding APIs. The legacy
// PyQt4 dialect has no token on purpose; it is only ever reached by
// candidate fallback.
var overrideTokens = map[string]API{
	"pyqt5":    APIPyQt5,
	"pyside2":  APIPySide2,
	"pythonqt": APIPythonQt,
	"pyqt":     APIPyQt4,
	"pyside":   APIPySide,
}

// AcceptedTokens returns the valid QT_API values in documentation order.
func AcceptedTokens() []string {
	return []string{"pyqt5", "pyside2", "pythonqt", "pyqt", "pyside"}
}

// ParseToken parses a QT_API override token, case-insensitively. An empty
// token is valid and means no preference (zero API). ok is false for any
// other unrecognized value.
func ParseToken(token string) (api API, ok bool) {
	if token == "" {
		return "", true
	}
	api, ok = overrideTokens[strings.ToLower(token)]
	return api, ok
}

// Generation returns the toolkit generation the API binds: 5 or 4.
func (a API) Generation() int {
	switch a {
	case APIPyQt5, APIPySide2, APIPythonQt:
		return 5
	case APIPyQt4, APIPySide, APIPyQt4v1:
		return 4
	default:
		return 0
	}
}

// DriverName returns the registry name of the driver that implements the
// API. The two PyQt4 dialects share one installed binding but register as
// distinct drivers because their activation differs.
func (a API) DriverName() string { return string(a) }

// minimumVersion returns the hard-coded minimum supported version for the
// API, or "" when any version is accepted. The gen-4 gates come from the
// upstream selector: PyQt4 grew the filter-aware save dialog in 4.6, and
// PySide fixed its dialog contract in 1.0.3.
func (a API) minimumVersion() string {
	switch a {
	case APIPyQt4, APIPyQt4v1:
		return "4.6"
	case APIPySide:
		return "1.0.3"
	default:
		return ""
	}
}

// symbolAliases returns the dialect's native names for the canonical
// signal/slot/property vocabulary. A nil map means the dialect already
// uses the canonical names.
func (a API) symbolAliases() map[string]string {
	switch a {
	case APIPyQt5, APIPyQt4, APIPyQt4v1:
		return map[string]string{
			"Signal":   "pyqtSignal",
			"Slot":     "pyqtSlot",
			"Property": "pyqtProperty",
		}
	default:
		return nil
	}
}
