package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

const (
	defaultConfigFile     = "launcher.toml"
	defaultTitle          = "Yuujin Player"
	defaultWidth          = 1280
	defaultHeight         = 720
	defaultEntry          = "index.html"
	defaultSplashDuration = 5 * time.Second
	defaultTeardownGrace  = 500 * time.Millisecond
)

// defaultSplashPaths are tried in order, relative to the install directory
var defaultSplashPaths = []string{
	filepath.Join("resources", "splash.png"),
	filepath.Join("assets", "splash.png"),
}

// Options carries command-line overrides; zero values mean "not set"
type Options struct {
	ConfigPath     string
	InstallDir     string
	SplashDuration *time.Duration
	NoSplash       bool
}

// AppConfig holds application configuration
type AppConfig struct {
	logger         *zap.Logger
	installDir     string
	title          string
	width          int
	height         int
	resizable      bool
	entry          string
	splashPaths    []string
	splashDuration time.Duration
	teardownGrace  time.Duration
}

// fileConfig mirrors launcher.toml; pointers distinguish "absent" from zero
type fileConfig struct {
	Title           string   `toml:"title"`
	Width           int      `toml:"width"`
	Height          int      `toml:"height"`
	Resizable       *bool    `toml:"resizable"`
	Entry           string   `toml:"entry"`
	SplashSeconds   *float64 `toml:"splash_seconds"`
	SplashPaths     []string `toml:"splash_paths"`
	TeardownGraceMs *int     `toml:"teardown_grace_ms"`
}

// NewAppConfig creates a new application configuration instance.
// Precedence: built-in defaults, then launcher.toml, then opts.
func NewAppConfig(logger *zap.Logger, opts Options) (*AppConfig, error) {
	installDir := strings.TrimSpace(opts.InstallDir)
	if installDir == "" {
		installDir = DetectInstallDir()
	}
	installDir, err := filepath.Abs(installDir)
	if err != nil {
		return nil, fmt.Errorf("resolve install dir: %w", err)
	}

	cfg := &AppConfig{
		logger:         logger,
		installDir:     installDir,
		title:          defaultTitle,
		width:          defaultWidth,
		height:         defaultHeight,
		resizable:      true,
		entry:          defaultEntry,
		splashPaths:    defaultSplashPaths,
		splashDuration: defaultSplashDuration,
		teardownGrace:  defaultTeardownGrace,
	}

	path := strings.TrimSpace(opts.ConfigPath)
	explicit := path != ""
	if !explicit {
		path = filepath.Join(installDir, defaultConfigFile)
	}

	raw, err := readFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
		logger.Debug("No launcher config found, using defaults", zap.String("path", path))
	case err != nil:
		return nil, err
	default:
		cfg.apply(raw)
	}

	if opts.SplashDuration != nil {
		cfg.splashDuration = *opts.SplashDuration
	}
	if opts.NoSplash {
		cfg.splashDuration = 0
	}
	if cfg.splashDuration < 0 {
		cfg.splashDuration = 0
	}

	logger.Info("Configuration loaded",
		zap.String("installDir", cfg.installDir),
		zap.String("title", cfg.title),
		zap.Duration("splash", cfg.splashDuration))

	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var raw fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return raw, fmt.Errorf("config %s: %w", path, os.ErrNotExist)
		}
		return raw, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("parse config: %w", err)
	}
	return raw, nil
}

func (c *AppConfig) apply(raw fileConfig) {
	if title := strings.TrimSpace(raw.Title); title != "" {
		c.title = title
	}
	if raw.Width > 0 {
		c.width = raw.Width
	}
	if raw.Height > 0 {
		c.height = raw.Height
	}
	if raw.Resizable != nil {
		c.resizable = *raw.Resizable
	}
	if entry := strings.TrimSpace(raw.Entry); entry != "" {
		c.entry = entry
	}
	if raw.SplashSeconds != nil {
		c.splashDuration = time.Duration(*raw.SplashSeconds * float64(time.Second))
	}
	var paths []string
	for _, p := range raw.SplashPaths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) > 0 {
		c.splashPaths = paths
	}
	if raw.TeardownGraceMs != nil && *raw.TeardownGraceMs >= 0 {
		c.teardownGrace = time.Duration(*raw.TeardownGraceMs) * time.Millisecond
	}
}

// DetectInstallDir returns the directory of the running executable, or the
// working directory when running from a go build cache (source tree).
func DetectInstallDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir := filepath.Dir(exe)
		if !isBuildCache(dir) {
			return dir
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func isBuildCache(dir string) bool {
	if strings.Contains(dir, "go-build") {
		return true
	}
	tmp := filepath.Clean(os.TempDir())
	return dir == tmp || strings.HasPrefix(dir, tmp+string(filepath.Separator))
}

// GetInstallDir returns the directory assets and the web front-end live in
func (c *AppConfig) GetInstallDir() string {
	return c.installDir
}

// GetSplashPaths returns absolute splash candidates, primary first
func (c *AppConfig) GetSplashPaths() []string {
	out := make([]string, 0, len(c.splashPaths))
	for _, p := range c.splashPaths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(c.installDir, p)
		}
		out = append(out, p)
	}
	return out
}

// GetSplashDuration returns how long the splash stays on screen
func (c *AppConfig) GetSplashDuration() time.Duration {
	return c.splashDuration
}

// GetTeardownGrace returns the pause after overlay teardown
func (c *AppConfig) GetTeardownGrace() time.Duration {
	return c.teardownGrace
}

// GetWindowTitle returns the main window title
func (c *AppConfig) GetWindowTitle() string {
	return c.title
}

// GetWindowSize returns the main window width and height
func (c *AppConfig) GetWindowSize() (int, int) {
	return c.width, c.height
}

// IsResizable reports whether the main window can be resized
func (c *AppConfig) IsResizable() bool {
	return c.resizable
}

// GetEntry returns the front-end entry document relative to the install dir
func (c *AppConfig) GetEntry() string {
	return c.entry
}
