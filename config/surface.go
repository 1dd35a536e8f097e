package config

// Surface identifies the rendering surface target the application
// configured. Unrecognized values are legal: they indicate a non-Qt
// surface, which puts binding resolution into the ambiguous
// manual-embedding context.
type Surface string

// Known Qt surface targets.
const (
	SurfaceQt5Agg   Surface = "Qt5Agg"
	SurfaceQt5Cairo Surface = "Qt5Cairo"
	SurfaceQt4Agg   Surface = "Qt4Agg"
	SurfaceQt4Cairo Surface = "Qt4Cairo"
)

// Generation returns the Qt toolkit generation the surface targets:
// 5 or 4 for known Qt surfaces, 0 for non-Qt (ambiguous) surfaces.
func (s Surface) Generation() int {
	switch s {
	case SurfaceQt5Agg, SurfaceQt5Cairo:
		return 5
	case SurfaceQt4Agg, SurfaceQt4Cairo:
		return 4
	default:
		return 0
	}
}

// IsQt reports whether the surface targets a Qt toolkit at all.
func (s Surface) IsQt() bool { return s.Generation() != 0 }
