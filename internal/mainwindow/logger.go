package mainwindow

import (
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"go.uber.org/zap"
)

// zapLogger routes the webview runtime's log lines into zap
type zapLogger struct {
	logger *zap.Logger
}

var _ wailslogger.Logger = (*zapLogger)(nil)

func newZapLogger(logger *zap.Logger) *zapLogger {
	return &zapLogger{logger: logger.Named("webview").WithOptions(zap.AddCallerSkip(1))}
}

func (l *zapLogger) Print(message string)   { l.logger.Info(message) }
func (l *zapLogger) Trace(message string)   { l.logger.Debug(message) }
func (l *zapLogger) Debug(message string)   { l.logger.Debug(message) }
func (l *zapLogger) Info(message string)    { l.logger.Info(message) }
func (l *zapLogger) Warning(message string) { l.logger.Warn(message) }
func (l *zapLogger) Error(message string)   { l.logger.Error(message) }

// Fatal is logged without exiting so overlay teardown still runs
func (l *zapLogger) Fatal(message string) {
	l.logger.Error(message, zap.Bool("fatal", true))
}
