package overlay

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"sync"
	"time"

	"github.com/genricoloni/yuujin/internal/domain"
	"github.com/genricoloni/yuujin/internal/render"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	lyricsWidth        = 800
	lyricsHeight       = 100
	lyricsBottomMargin = 100 // gap between the bar and the screen bottom edge
	lyricsOpacity      = 0.8

	splashTitle = "Yuujin"
	lyricsTitle = "Yuujin Lyrics"
)

// Manager owns at most one splash and one lyrics overlay window.
// All state changes are serialized by mu; native work happens on each window's own thread.
type Manager struct {
	logger  *zap.Logger
	backend domain.Backend
	screen  *domain.ScreenResolution
	assets  domain.AssetLoader
	text    domain.TextRenderer

	mu         sync.Mutex
	splash     domain.Window
	lyrics     domain.Window
	lyricsText string
}

// NewManager creates the overlay lifecycle manager
func NewManager(
	logger *zap.Logger,
	backend domain.Backend,
	screen *domain.ScreenResolution,
	assets domain.AssetLoader,
	text domain.TextRenderer,
) *Manager {
	return &Manager{
		logger:  logger,
		backend: backend,
		screen:  screen,
		assets:  assets,
		text:    text,
	}
}

// ShowImage shows the splash centered on the primary screen and blocks until it is gone.
// The window is closed after duration, or earlier when ctx is cancelled.
// A missing or broken asset is replaced by a black placeholder.
func (m *Manager) ShowImage(ctx context.Context, candidates []string, duration time.Duration) (res domain.Result) {
	defer m.recoverInto(&res, "show image")

	if duration <= 0 {
		m.logger.Debug("Splash disabled")
		return domain.Success(domain.ActionHidden)
	}

	content := m.loadSplash(ctx, candidates)
	size := content.Image.Bounds().Size()

	w, err := m.openSplash(domain.WindowSpec{
		Kind:    domain.KindSplash,
		Title:   splashTitle,
		Bounds:  m.centered(size),
		Opacity: 1.0,
		TopMost: true,
		Content: content,
	})
	if err != nil {
		m.logger.Error("Failed to show splash", zap.Error(err))
		return domain.Failure(err)
	}

	m.logger.Info("Splash shown",
		zap.String("source", content.Source),
		zap.Int("width", size.X),
		zap.Int("height", size.Y),
		zap.Duration("duration", duration))

	// The timer only posts a close; the window's own thread destroys it
	timer := time.AfterFunc(duration, func() {
		if err := w.Close(); err != nil {
			m.logger.Warn("Failed to close splash", zap.Error(err))
		}
	})
	defer timer.Stop()

	select {
	case <-w.Done():
	case <-ctx.Done():
		m.logger.Info("Splash interrupted", zap.Error(ctx.Err()))
		if err := w.Close(); err != nil {
			m.logger.Warn("Failed to close splash", zap.Error(err))
		}
		<-w.Done()
	}

	m.mu.Lock()
	if m.splash == w {
		m.splash = nil
	}
	m.mu.Unlock()

	m.logger.Debug("Splash closed")
	return domain.Success(domain.ActionShown)
}

func (m *Manager) loadSplash(ctx context.Context, candidates []string) domain.Content {
	data, path, err := m.assets.Resolve(ctx, candidates)
	if err != nil {
		m.logger.Warn("Splash image not found, using placeholder",
			zap.Strings("candidates", candidates),
			zap.Error(err))
		return domain.Content{Image: render.Placeholder()}
	}

	img, err := render.Splash(data, render.SplashScale*m.dpiScale())
	if err != nil {
		m.logger.Warn("Splash image unusable, using placeholder",
			zap.String("path", path),
			zap.Error(err))
		return domain.Content{Image: render.Placeholder()}
	}

	return domain.Content{Image: img, Source: path}
}

func (m *Manager) openSplash(spec domain.WindowSpec) (domain.Window, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.splash != nil {
		if err := m.splash.Close(); err != nil {
			m.logger.Warn("Failed to close previous splash", zap.Error(err))
		}
		m.splash = nil
	}

	w, err := m.backend.Open(spec)
	if err != nil {
		return nil, fmt.Errorf("open splash window: %w", err)
	}
	m.splash = w
	return w, nil
}

// SetLyricsText shows, updates or hides the desktop lyrics bar.
// Blank text hides it; otherwise the existing window is updated in place.
func (m *Manager) SetLyricsText(text string) (res domain.Result) {
	defer m.recoverInto(&res, "set lyrics")

	m.mu.Lock()
	defer m.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		m.closeLyrics()
		return domain.Success(domain.ActionHidden)
	}

	frame, err := m.text.Render(text, image.Pt(lyricsWidth, lyricsHeight))
	if err != nil {
		m.logger.Error("Failed to render lyrics", zap.Error(err))
		return domain.Failure(fmt.Errorf("render lyrics: %w", err))
	}
	content := domain.Content{Image: frame, Text: text}

	if m.lyrics != nil {
		err := m.lyrics.SetContent(content)
		switch {
		case err == nil:
			m.lyricsText = text
			return domain.Success(domain.ActionShown)
		case errors.Is(err, domain.ErrWindowClosed):
			m.logger.Debug("Lyrics window was destroyed, recreating")
			m.lyrics = nil
		default:
			m.logger.Error("Failed to update lyrics", zap.Error(err))
			return domain.Failure(fmt.Errorf("update lyrics: %w", err))
		}
	}

	w, err := m.backend.Open(domain.WindowSpec{
		Kind:    domain.KindLyrics,
		Title:   lyricsTitle,
		Bounds:  m.lyricsBounds(),
		Opacity: lyricsOpacity,
		TopMost: true,
		Content: content,
	})
	if err != nil {
		m.logger.Error("Failed to show lyrics", zap.Error(err))
		return domain.Failure(fmt.Errorf("open lyrics window: %w", err))
	}

	m.lyrics = w
	m.lyricsText = text
	m.logger.Debug("Lyrics window created")
	return domain.Success(domain.ActionShown)
}

// closeLyrics must be called with mu held
func (m *Manager) closeLyrics() {
	if m.lyrics == nil {
		return
	}
	if err := m.lyrics.Close(); err != nil {
		m.logger.Warn("Failed to close lyrics window", zap.Error(err))
	}
	m.lyrics = nil
	m.lyricsText = ""
	m.logger.Debug("Lyrics window closed")
}

// TeardownAll closes every live overlay. Calling it with nothing open is a no-op.
func (m *Manager) TeardownAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs error
	if m.splash != nil {
		errs = multierr.Append(errs, m.splash.Close())
		m.splash = nil
	}
	if m.lyrics != nil {
		errs = multierr.Append(errs, m.lyrics.Close())
		m.lyrics = nil
		m.lyricsText = ""
	}

	if errs != nil {
		m.logger.Warn("Overlay teardown finished with errors", zap.Error(errs))
	}
	return errs
}

// LyricsText returns the text currently displayed by the lyrics bar
func (m *Manager) LyricsText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lyricsText
}

// LyricsVisible reports whether a lyrics window exists
func (m *Manager) LyricsVisible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lyrics != nil
}

func (m *Manager) dpiScale() float64 {
	if m.screen == nil || m.screen.DPIScale <= 0 {
		return 1.0
	}
	return m.screen.DPIScale
}

func (m *Manager) centered(size image.Point) image.Rectangle {
	x := (m.screen.Width - size.X) / 2
	y := (m.screen.Height - size.Y) / 2
	return image.Rect(x, y, x+size.X, y+size.Y)
}

func (m *Manager) lyricsBounds() image.Rectangle {
	x := (m.screen.Width - lyricsWidth) / 2
	y := m.screen.Height - lyricsHeight - lyricsBottomMargin
	return image.Rect(x, y, x+lyricsWidth, y+lyricsHeight)
}

func (m *Manager) recoverInto(res *domain.Result, op string) {
	if r := recover(); r != nil {
		m.logger.Error("Overlay operation panicked",
			zap.String("op", op),
			zap.Any("panic", r),
			zap.Stack("stack"))
		*res = domain.Failure(fmt.Errorf("%s: %v", op, r))
	}
}
