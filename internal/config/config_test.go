package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewAppConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewAppConfig(zap.NewNop(), Options{InstallDir: dir})
	if err != nil {
		t.Fatalf("NewAppConfig returned error: %v", err)
	}

	if cfg.GetWindowTitle() != defaultTitle {
		t.Errorf("title = %q, want %q", cfg.GetWindowTitle(), defaultTitle)
	}
	if w, h := cfg.GetWindowSize(); w != defaultWidth || h != defaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", w, h, defaultWidth, defaultHeight)
	}
	if !cfg.IsResizable() {
		t.Error("expected resizable main window by default")
	}
	if cfg.GetSplashDuration() != defaultSplashDuration {
		t.Errorf("splash = %v, want %v", cfg.GetSplashDuration(), defaultSplashDuration)
	}
	if cfg.GetTeardownGrace() != defaultTeardownGrace {
		t.Errorf("grace = %v, want %v", cfg.GetTeardownGrace(), defaultTeardownGrace)
	}

	want := []string{
		filepath.Join(dir, "resources", "splash.png"),
		filepath.Join(dir, "assets", "splash.png"),
	}
	got := cfg.GetSplashPaths()
	if len(got) != len(want) {
		t.Fatalf("splash paths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splash path[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewAppConfig_ParsesLauncherToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, defaultConfigFile)
	abs := filepath.Join(t.TempDir(), "splash.png")
	if err := os.WriteFile(path, []byte(fmt.Sprintf(`
title = "  Yuujin Dev  "
width = 900
height = 600
resizable = false
entry = "app/index.html"
splash_seconds = 1.5
splash_paths = ["custom.png", "  ", '%s']
teardown_grace_ms = 50
`, abs)), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := NewAppConfig(zap.NewNop(), Options{InstallDir: dir})
	if err != nil {
		t.Fatalf("NewAppConfig returned error: %v", err)
	}

	if cfg.GetWindowTitle() != "Yuujin Dev" {
		t.Errorf("title = %q, want trimmed value", cfg.GetWindowTitle())
	}
	if w, h := cfg.GetWindowSize(); w != 900 || h != 600 {
		t.Errorf("size = %dx%d, want 900x600", w, h)
	}
	if cfg.IsResizable() {
		t.Error("expected resizable = false")
	}
	if cfg.GetEntry() != "app/index.html" {
		t.Errorf("entry = %q", cfg.GetEntry())
	}
	if cfg.GetSplashDuration() != 1500*time.Millisecond {
		t.Errorf("splash = %v, want 1.5s", cfg.GetSplashDuration())
	}
	if cfg.GetTeardownGrace() != 50*time.Millisecond {
		t.Errorf("grace = %v, want 50ms", cfg.GetTeardownGrace())
	}

	paths := cfg.GetSplashPaths()
	if len(paths) != 2 {
		t.Fatalf("expected blank entries to be dropped, got %v", paths)
	}
	if paths[0] != filepath.Join(dir, "custom.png") {
		t.Errorf("relative path not anchored to install dir: %q", paths[0])
	}
	if paths[1] != abs {
		t.Errorf("absolute path should be kept as-is: %q", paths[1])
	}
}

func TestNewAppConfig_FlagOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, defaultConfigFile), []byte("splash_seconds = 9\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name string
		opts Options
		want time.Duration
	}{
		{name: "File value", opts: Options{}, want: 9 * time.Second},
		{name: "Flag wins over file", opts: Options{SplashDuration: ptr(2 * time.Second)}, want: 2 * time.Second},
		{name: "No splash wins over everything", opts: Options{SplashDuration: ptr(2 * time.Second), NoSplash: true}, want: 0},
		{name: "Negative clamps to zero", opts: Options{SplashDuration: ptr(-time.Second)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.InstallDir = dir
			cfg, err := NewAppConfig(zap.NewNop(), tt.opts)
			if err != nil {
				t.Fatalf("NewAppConfig returned error: %v", err)
			}
			if cfg.GetSplashDuration() != tt.want {
				t.Errorf("splash = %v, want %v", cfg.GetSplashDuration(), tt.want)
			}
		})
	}
}

func TestNewAppConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("width = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name          string
		configPath    string
		expectedError string
		notExist      bool
	}{
		{name: "Explicit path missing", configPath: filepath.Join(dir, "missing.toml"), notExist: true},
		{name: "Malformed toml", configPath: bad, expectedError: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAppConfig(zap.NewNop(), Options{InstallDir: dir, ConfigPath: tt.configPath})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.notExist && !errors.Is(err, os.ErrNotExist) {
				t.Errorf("expected os.ErrNotExist, got %v", err)
			}
			if tt.expectedError != "" && !strings.Contains(err.Error(), tt.expectedError) {
				t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
			}
		})
	}
}

func TestIsBuildCache(t *testing.T) {
	tests := []struct {
		dir  string
		want bool
	}{
		{filepath.Join(os.TempDir(), "go-build123", "b001", "exe"), true},
		{filepath.Join(os.TempDir(), "anything"), true},
		{filepath.Join(string(filepath.Separator), "opt", "yuujin"), false},
	}

	for _, tt := range tests {
		if got := isBuildCache(tt.dir); got != tt.want {
			t.Errorf("isBuildCache(%s) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
