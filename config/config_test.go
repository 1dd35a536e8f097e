package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/qtkit/logger"
)

func defaultLogging() logger.Config {
	var l logger.Config
	l.ApplyDefaults()
	return l
}

func TestSurfaceGeneration(t *testing.T) {
	cases := []struct {
		surface Surface
		want    int
	}{
		{SurfaceQt5Agg, 5},
		{SurfaceQt5Cairo, 5},
		{SurfaceQt4Agg, 4},
		{SurfaceQt4Cairo, 4},
		{"TkAgg", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := tc.surface.Generation(); got != tc.want {
			t.Errorf("%q.Generation() = %d, want %d", tc.surface, got, tc.want)
		}
	}
	if !SurfaceQt4Agg.IsQt() {
		t.Error("Qt4Agg.IsQt() = false")
	}
	if Surface("TkAgg").IsQt() {
		t.Error("TkAgg.IsQt() = true")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Surface != SurfaceQt5Agg {
		t.Errorf("default surface = %q, want Qt5Agg", cfg.Surface)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default logging level = %q, want info", cfg.Logging.Level)
	}
}

func TestValidateRequiresSurface(t *testing.T) {
	cfg := &Config{Logging: defaultLogging()}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty surface")
	}
}

func TestValidateRejectsBadLoggingLevel(t *testing.T) {
	cfg := &Config{Surface: SurfaceQt5Agg, Logging: defaultLogging()}
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for bad logging level")
	}
	if !strings.Contains(err.Error(), "logging") {
		t.Errorf("error should mention logging: %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("QT_API", "PyQt5")
	t.Setenv("QTKIT_SURFACE", "Qt4Agg")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.API != "PyQt5" {
		t.Errorf("API = %q, want PyQt5 (raw token preserved)", cfg.API)
	}
	if cfg.Surface != SurfaceQt4Agg {
		t.Errorf("Surface = %q, want Qt4Agg", cfg.Surface)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("QT_API", "")
	t.Setenv("QTKIT_SURFACE", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Surface != SurfaceQt5Agg {
		t.Errorf("Surface = %q, want default Qt5Agg", cfg.Surface)
	}
	if cfg.API != "" {
		t.Errorf("API = %q, want unset", cfg.API)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qtkit.yml")
	content := "surface: Qt4Cairo\nlogging:\n  level: debug\n  format: json\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Surface != SurfaceQt4Cairo {
		t.Errorf("Surface = %q, want Qt4Cairo", cfg.Surface)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v, want debug/json", cfg.Logging)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
