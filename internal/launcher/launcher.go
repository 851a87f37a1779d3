package launcher

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/genricoloni/yuujin/internal/bridge"
	"github.com/genricoloni/yuujin/internal/domain"
	"go.uber.org/zap"
)

// Launcher orchestrates startup and shutdown.
// It shows the splash, runs the main window with a fresh bridge bound, then tears overlays down.
type Launcher struct {
	logger   *zap.Logger
	cfg      domain.Config
	overlays domain.Overlays
	window   domain.MainWindow
}

// New creates a new launcher
func New(
	logger *zap.Logger,
	cfg domain.Config,
	overlays domain.Overlays,
	window domain.MainWindow,
) *Launcher {
	return &Launcher{
		logger:   logger,
		cfg:      cfg,
		overlays: overlays,
		window:   window,
	}
}

// Run blocks until the main window is closed or ctx is cancelled.
// Overlays are torn down on every exit path, including panics.
func (l *Launcher) Run(ctx context.Context) (err error) {
	l.logger.Info("Launcher starting...")

	defer l.shutdown()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("launcher panic: %v\n%s", r, debug.Stack())
		}
	}()

	// 1. Splash, blocks for its whole duration
	if d := l.cfg.GetSplashDuration(); d > 0 {
		res := l.overlays.ShowImage(ctx, l.cfg.GetSplashPaths(), d)
		if !res.OK() {
			l.logger.Warn("Splash failed, continuing startup", zap.String("message", res.Message))
		}
	} else {
		l.logger.Info("Splash disabled")
	}

	if ctx.Err() != nil {
		l.logger.Info("Startup interrupted before main window")
		return nil
	}

	// 2. Fresh media state for this window
	session := bridge.New(l.logger.Named("bridge"), l.overlays)

	// 3. Main window, blocks until closed
	if err := l.window.Run(ctx, session); err != nil {
		return fmt.Errorf("main window: %w", err)
	}

	l.logger.Info("Main window exited")
	return nil
}

// shutdown destroys remaining overlays and gives native destruction time to finish
func (l *Launcher) shutdown() {
	l.logger.Info("Launcher stopping...")

	if err := l.overlays.TeardownAll(); err != nil {
		l.logger.Error("Failed to tear down overlays", zap.Error(err))
	}

	if grace := l.cfg.GetTeardownGrace(); grace > 0 {
		time.Sleep(grace)
	}
	l.logger.Info("Launcher stopped")
}
