package domain

import (
	"errors"
	"image"
)

// OverlayKind identifies which overlay a window belongs to
type OverlayKind string

const (
	// KindSplash is the startup image shown before the main window
	KindSplash OverlayKind = "splash"
	// KindLyrics is the floating desktop lyrics bar
	KindLyrics OverlayKind = "lyrics"
)

// Result statuses and actions reported across the content-layer boundary
const (
	StatusSuccess = "success"
	StatusError   = "error"

	ActionShown  = "shown"
	ActionHidden = "hidden"
)

// ErrWindowClosed is returned when mutating a window whose native handle is gone
var ErrWindowClosed = errors.New("overlay window already closed")

// Result is the structured reply of every public overlay and bridge operation
type Result struct {
	Status  string `json:"status"`
	Action  string `json:"action,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success builds a successful result with an optional action
func Success(action string) Result {
	return Result{Status: StatusSuccess, Action: action}
}

// Failure builds an error result from err
func Failure(err error) Result {
	return Result{Status: StatusError, Message: err.Error()}
}

// OK reports whether the result carries a success status
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Content is what an overlay window displays
type Content struct {
	// Image is the fully rendered frame, sized to the window bounds
	Image image.Image
	// Text is the lyrics line the frame was rendered from (empty for splash)
	Text string
	// Source is the asset path the frame was loaded from (empty for placeholders)
	Source string
}

// WindowSpec describes a borderless overlay window to be created
type WindowSpec struct {
	Kind    OverlayKind
	Title   string
	Bounds  image.Rectangle // screen coordinates
	Opacity float64         // 0.0 (invisible) to 1.0 (opaque)
	TopMost bool
	Content Content
}

// ScreenResolution holds the primary display dimensions and its DPI scale
type ScreenResolution struct {
	Width  int
	Height int
	// DPIScale is the logical pixel density relative to the 96 DPI reference
	DPIScale float64
}

// Track is the arbitrary metadata record pushed by the content layer
// (title, artist, album, artwork, ...)
type Track map[string]any

// Title returns the track title, or "" when absent or not a string
func (t Track) Title() string {
	return t.stringField("title")
}

// Artist returns the track artist, or "" when absent or not a string
func (t Track) Artist() string {
	return t.stringField("artist")
}

func (t Track) stringField(key string) string {
	if v, ok := t[key].(string); ok {
		return v
	}
	return ""
}

// Clone returns a shallow copy that is never nil
func (t Track) Clone() Track {
	out := make(Track, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// MediaInfo is the snapshot returned to the content layer
type MediaInfo struct {
	Track     Track `json:"track"`
	IsPlaying bool  `json:"isPlaying"`
}
