//go:build !windows
// +build !windows

package native

import (
	"errors"
	"image"
	"testing"

	"github.com/genricoloni/yuujin/internal/domain"
	"go.uber.org/zap"
)

func TestHeadlessWindow_Lifecycle(t *testing.T) {
	backend := NewBackend(zap.NewNop())

	win, err := backend.Open(domain.WindowSpec{
		Kind:    domain.KindLyrics,
		Bounds:  image.Rect(560, 780, 1360, 880),
		Content: domain.Content{Text: "first"},
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	hw := win.(*headlessWindow)
	if got := hw.Content().Text; got != "first" {
		t.Errorf("initial content = %q, want first", got)
	}

	if err := win.SetContent(domain.Content{Text: "second"}); err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	if got := hw.Content().Text; got != "second" {
		t.Errorf("content = %q, want second", got)
	}

	select {
	case <-win.Done():
		t.Fatal("window reported done before Close")
	default:
	}

	if err := win.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := win.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	select {
	case <-win.Done():
	default:
		t.Fatal("expected Done to be closed after Close")
	}

	if err := win.SetContent(domain.Content{Text: "third"}); !errors.Is(err, domain.ErrWindowClosed) {
		t.Errorf("expected ErrWindowClosed, got %v", err)
	}
}
