package mainwindow

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/genricoloni/yuujin/internal/domain"
	"github.com/wailsapp/wails/v2"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"
)

// indexDocument is the document the asset server serves at "/"
const indexDocument = "index.html"

// Runner hosts the web front-end in a native webview window
type Runner struct {
	logger *zap.Logger
	cfg    domain.Config
}

// NewRunner creates the main window runner
func NewRunner(logger *zap.Logger, cfg domain.Config) *Runner {
	return &Runner{logger: logger, cfg: cfg}
}

// Run opens the main window with bindings exposed to the front-end and blocks
// until the user closes it. Cancelling ctx asks the window to quit.
func (r *Runner) Run(ctx context.Context, bindings ...any) error {
	assets, err := r.frontend()
	if err != nil {
		return err
	}

	width, height := r.cfg.GetWindowSize()
	stopped := make(chan struct{})
	defer close(stopped)

	app := &options.App{
		Title:            r.cfg.GetWindowTitle(),
		Width:            width,
		Height:           height,
		DisableResize:    !r.cfg.IsResizable(),
		BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 1},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Logger:             newZapLogger(r.logger),
		LogLevel:           wailslogger.DEBUG,
		LogLevelProduction: wailslogger.INFO,
		OnStartup: func(appCtx context.Context) {
			r.logger.Info("Main window started")
			go func() {
				select {
				case <-ctx.Done():
					r.logger.Info("Shutdown requested, closing main window")
					wailsruntime.Quit(appCtx)
				case <-stopped:
				}
			}()
		},
		OnShutdown: func(context.Context) {
			r.logger.Info("Main window closed")
		},
		Bind: bindings,
		Windows: &windows.Options{
			Theme: windows.SystemDefault,
		},
	}

	r.logger.Info("Starting main window",
		zap.String("title", app.Title),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("bindings", len(bindings)))

	if err := wails.Run(app); err != nil {
		return fmt.Errorf("run main window: %w", err)
	}
	return nil
}

// frontend returns the directory holding the entry document as the served root
func (r *Runner) frontend() (fs.FS, error) {
	entry := filepath.ToSlash(r.cfg.GetEntry())
	if path.Base(entry) != indexDocument {
		return nil, fmt.Errorf("main window entry %q: must be named %s", entry, indexDocument)
	}

	full := filepath.Join(r.cfg.GetInstallDir(), filepath.FromSlash(entry))
	info, err := os.Stat(full)
	if err != nil {
		return nil, fmt.Errorf("main window entry: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("main window entry %s is a directory", full)
	}

	root := os.DirFS(r.cfg.GetInstallDir())
	if dir := path.Dir(entry); dir != "." {
		return fs.Sub(root, dir)
	}
	return root, nil
}
