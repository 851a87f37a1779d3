package mainwindow

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/genricoloni/yuujin/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunner_Frontend(t *testing.T) {
	tests := []struct {
		name          string
		files         map[string]string
		toml          string
		expectedError string
		notExist      bool
		served        string
	}{
		{
			name:   "Success - Entry at install root",
			files:  map[string]string{"index.html": "<html>root</html>"},
			served: "<html>root</html>",
		},
		{
			name:   "Success - Entry in subdirectory",
			files:  map[string]string{"web/index.html": "<html>web</html>"},
			toml:   `entry = "web/index.html"`,
			served: "<html>web</html>",
		},
		{
			name:     "Error - Missing entry",
			files:    map[string]string{},
			notExist: true,
		},
		{
			name:          "Error - Entry is a directory",
			files:         map[string]string{"index.html/readme.txt": "oops"},
			expectedError: "is a directory",
		},
		{
			name:          "Error - Entry not named index.html",
			files:         map[string]string{"main.html": "<html></html>"},
			toml:          `entry = "main.html"`,
			expectedError: "must be named index.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				p := filepath.Join(dir, filepath.FromSlash(name))
				if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
					t.Fatalf("MkdirAll: %v", err)
				}
				if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
					t.Fatalf("WriteFile: %v", err)
				}
			}
			if tt.toml != "" {
				if err := os.WriteFile(filepath.Join(dir, "launcher.toml"), []byte(tt.toml), 0o600); err != nil {
					t.Fatalf("WriteFile: %v", err)
				}
			}

			cfg, err := config.NewAppConfig(zap.NewNop(), config.Options{InstallDir: dir})
			if err != nil {
				t.Fatalf("NewAppConfig: %v", err)
			}

			assets, err := NewRunner(zap.NewNop(), cfg).frontend()

			if tt.expectedError != "" || tt.notExist {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.notExist && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("expected os.ErrNotExist, got %v", err)
				}
				if tt.expectedError != "" && !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			data, err := fs.ReadFile(assets, "index.html")
			if err != nil {
				t.Fatalf("index.html not served at root: %v", err)
			}
			if string(data) != tt.served {
				t.Errorf("served %q, want %q", data, tt.served)
			}
		})
	}
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newZapLogger(zap.New(core))

	l.Print("print")
	l.Trace("trace")
	l.Debug("debug")
	l.Info("info")
	l.Warning("warning")
	l.Error("error")
	l.Fatal("fatal")

	want := []zapcore.Level{
		zapcore.InfoLevel,
		zapcore.DebugLevel,
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
		zapcore.ErrorLevel,
	}

	entries := logs.AllUntimed()
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Errorf("entry %q logged at %s, want %s", e.Message, e.Level, want[i])
		}
		if e.LoggerName != "webview" {
			t.Errorf("entry %q logger name = %q", e.Message, e.LoggerName)
		}
	}

	if fatal := entries[len(entries)-1].ContextMap(); fatal["fatal"] != true {
		t.Errorf("expected fatal marker, got %v", fatal)
	}
}
