package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/genricoloni/yuujin/internal/assets"
	"github.com/genricoloni/yuujin/internal/config"
	"github.com/genricoloni/yuujin/internal/display"
	"github.com/genricoloni/yuujin/internal/domain"
	"github.com/genricoloni/yuujin/internal/launcher"
	"github.com/genricoloni/yuujin/internal/mainwindow"
	"github.com/genricoloni/yuujin/internal/native"
	"github.com/genricoloni/yuujin/internal/overlay"
	"github.com/genricoloni/yuujin/internal/render"
)

var (
	verbose        bool
	configPath     string
	installDir     string
	splashDuration time.Duration
	noSplash       bool
)

// Console used for the exit acknowledgment; replaced in tests
var (
	stdin  io.Reader = os.Stdin
	stderr io.Writer = os.Stderr
)

var buildLogger = newLogger

var rootCmd = &cobra.Command{
	Use:   "yuujin",
	Short: "Yuujin media player",
	Long: `Yuujin shows a splash screen, then opens the player window.
Desktop lyrics requested by the player are drawn in a floating overlay.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	// Allow double-click launch from Explorer
	cobra.MousetrapHelpText = ""

	flags := rootCmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.StringVar(&configPath, "config", "", "Path to launcher.toml (default: <install dir>/launcher.toml)")
	flags.StringVar(&installDir, "install-dir", "", "Directory holding the front-end and splash assets (default: auto-detected)")
	flags.DurationVar(&splashDuration, "splash-duration", 5*time.Second, "How long the splash stays on screen")
	flags.BoolVar(&noSplash, "no-splash", false, "Skip the splash screen")
}

func run(cmd *cobra.Command, _ []string) error {
	logger, err := buildLogger(verbose)
	if err != nil {
		err = fmt.Errorf("failed to initialize logger: %w", err)
		fmt.Fprintln(stderr, err)
		acknowledge()
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := config.Options{
		ConfigPath: configPath,
		InstallDir: installDir,
		NoSplash:   noSplash,
	}
	if cmd.Flags().Changed("splash-duration") {
		opts.SplashDuration = &splashDuration
	}

	var l *launcher.Launcher
	app := fx.New(
		appOptions(logger, opts),
		fx.Populate(&l),
	)
	if err := app.Err(); err != nil {
		return fatal(logger, fmt.Errorf("build application: %w", err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fatal(logger, fmt.Errorf("start application: %w", err))
	}

	// The main window must run on the main goroutine
	runErr := l.Run(ctx)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Warn("Application did not stop cleanly", zap.Error(err))
	}

	if runErr != nil {
		return fatal(logger, runErr)
	}
	return nil
}

// appOptions is the dependency graph shared by main and the graph validation test
func appOptions(logger *zap.Logger, opts config.Options) fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: log.Named("fx")}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),

		fx.Supply(logger, opts),

		fx.Provide(
			fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
			display.NewScreenResolution,
			fx.Annotate(native.NewBackend, fx.As(new(domain.Backend))),
			fx.Annotate(assets.NewLoader, fx.As(new(domain.AssetLoader))),
			fx.Annotate(render.NewTextRenderer, fx.As(new(domain.TextRenderer))),
			fx.Annotate(overlay.NewManager, fx.As(new(domain.Overlays))),
			fx.Annotate(mainwindow.NewRunner, fx.As(new(domain.MainWindow))),
			launcher.New,
		),

		fx.Invoke(registerHooks),
	)
}

// newLogger builds a readable console logger; verbose switches to development settings
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}

	cfg := zap.NewProductionConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg.Build()
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, overlays domain.Overlays) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Yuujin started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			// Safety net; the launcher has normally torn everything down already
			return overlays.TeardownAll()
		},
	})
}

// fatal logs err with its trace and keeps the console open until the user acknowledges it
func fatal(logger *zap.Logger, err error) error {
	logger.Error("Fatal error", zap.Error(err), zap.Stack("stack"))
	acknowledge()
	return err
}

// acknowledge keeps a double-clicked console open until Enter is pressed
func acknowledge() {
	fmt.Fprintln(stderr, "Press Enter to exit...")
	_, _ = bufio.NewReader(stdin).ReadBytes('\n')
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
