//go:build !windows
// +build !windows

package native

import (
	"sync"

	"github.com/genricoloni/yuujin/internal/domain"
	"go.uber.org/zap"
)

// Backend keeps overlay windows in memory on platforms without a native overlay implementation.
// Windows behave like real ones (content updates, idempotent close) but nothing is drawn.
type Backend struct {
	logger *zap.Logger
	once   sync.Once
}

// NewBackend creates the headless overlay backend
func NewBackend(logger *zap.Logger) *Backend {
	return &Backend{logger: logger}
}

// Open creates a headless window holding spec.Content
func (b *Backend) Open(spec domain.WindowSpec) (domain.Window, error) {
	b.once.Do(func() {
		b.logger.Warn("Native overlays are only drawn on Windows, running headless")
	})

	b.logger.Debug("Headless overlay opened",
		zap.String("kind", string(spec.Kind)),
		zap.Stringer("bounds", spec.Bounds))

	return &headlessWindow{
		spec:    spec,
		content: spec.Content,
		done:    make(chan struct{}),
	}, nil
}

type headlessWindow struct {
	mu      sync.Mutex
	spec    domain.WindowSpec
	content domain.Content
	closed  bool
	done    chan struct{}
}

func (w *headlessWindow) SetContent(content domain.Content) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return domain.ErrWindowClosed
	}
	w.content = content
	return nil
}

func (w *headlessWindow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.closed {
		w.closed = true
		close(w.done)
	}
	return nil
}

func (w *headlessWindow) Done() <-chan struct{} {
	return w.done
}

// Content returns what the window currently holds
func (w *headlessWindow) Content() domain.Content {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.content
}
