package domain

import (
	"context"
	"image"
	"time"
)

// Window is a single native overlay window.
// Implementations own the OS handle and the thread running its message loop.
type Window interface {
	// SetContent replaces the displayed frame in place, without recreating the window.
	// Returns ErrWindowClosed if the native window has been destroyed.
	SetContent(content Content) error

	// Close requests destruction on the owning thread.
	// Closing an already closed window is a no-op.
	Close() error

	// Done is closed once the window's message loop has ended
	Done() <-chan struct{}
}

// Backend creates native overlay windows
//
//go:generate mockgen -destination=mocks/overlay_mock.go -package=mocks github.com/genricoloni/yuujin/internal/domain Backend,Window,AssetLoader,TextRenderer,Overlays,MainWindow
type Backend interface {
	// Open creates and shows a window, returning once it is visible
	Open(spec WindowSpec) (Window, error)
}

// AssetLoader reads splash assets from the install directory
type AssetLoader interface {
	// Resolve returns the bytes of the first readable candidate and its path
	Resolve(ctx context.Context, candidates []string) ([]byte, string, error)
}

// TextRenderer rasterizes a lyrics line into a frame of the given size
type TextRenderer interface {
	Render(text string, size image.Point) (image.Image, error)
}

// Overlays is the lifecycle manager surface used by the bridge and the launcher
type Overlays interface {
	// ShowImage displays the splash and blocks until it is gone
	ShowImage(ctx context.Context, candidates []string, duration time.Duration) Result

	// SetLyricsText shows, updates or hides the lyrics overlay
	SetLyricsText(text string) Result

	// TeardownAll destroys every live overlay
	TeardownAll() error
}

// MainWindow runs the web-rendered main application window
type MainWindow interface {
	// Run blocks until the user closes the window.
	// bindings are exposed to the content layer as native-call targets.
	Run(ctx context.Context, bindings ...any) error
}

// Config defines the interface for application configuration
type Config interface {
	// GetInstallDir returns the directory assets and the web front-end live in
	GetInstallDir() string

	// GetSplashPaths returns absolute splash candidates, primary first
	GetSplashPaths() []string

	// GetSplashDuration returns how long the splash stays on screen (0 disables it)
	GetSplashDuration() time.Duration

	// GetTeardownGrace returns the pause after overlay teardown before exit
	GetTeardownGrace() time.Duration

	// GetWindowTitle returns the main window title
	GetWindowTitle() string

	// GetWindowSize returns the main window width and height
	GetWindowSize() (int, int)

	// IsResizable reports whether the main window can be resized
	IsResizable() bool

	// GetEntry returns the front-end entry document relative to the install dir
	GetEntry() string
}
