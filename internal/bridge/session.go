package bridge

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/genricoloni/yuujin/internal/domain"
	"go.uber.org/zap"
)

const unknown = "Unknown"

// InvalidInputError describes a track payload that is not a key/value record
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid track info: " + e.Reason
}

// MediaSession is the native-call target bound into the web content layer.
// It caches now-playing state and forwards lyrics requests to the overlay manager.
// Calls made before the main window is ready are served from the same cache.
type MediaSession struct {
	logger   *zap.Logger
	overlays domain.Overlays

	mu        sync.RWMutex
	track     domain.Track
	isPlaying bool
}

// New creates a session with an empty track and playback stopped
func New(logger *zap.Logger, overlays domain.Overlays) *MediaSession {
	return &MediaSession{
		logger:   logger,
		overlays: overlays,
		track:    domain.Track{},
	}
}

// UpdateMediaInfo replaces the cached track wholesale.
// A payload that is not a record is stored as an empty track; the call still succeeds.
func (s *MediaSession) UpdateMediaInfo(trackInfo any) (res domain.Result) {
	defer s.recoverInto(&res, "UpdateMediaInfo")

	track, err := parseTrack(trackInfo)
	if err != nil {
		s.logger.Warn("Malformed track info, storing empty track", zap.Error(err))
		track = domain.Track{}
	}

	s.mu.Lock()
	s.track = track
	s.mu.Unlock()

	s.logger.Info("Media info updated", zap.String("track", describe(track)))
	return domain.Success("")
}

// SetPlaybackState overwrites the cached playing flag
func (s *MediaSession) SetPlaybackState(isPlaying bool) (res domain.Result) {
	defer s.recoverInto(&res, "SetPlaybackState")

	s.mu.Lock()
	s.isPlaying = isPlaying
	s.mu.Unlock()

	state := "Paused"
	if isPlaying {
		state = "Playing"
	}
	s.logger.Info("Playback state changed", zap.String("state", state))
	return domain.Success("")
}

// GetMediaInfo returns a copy of the current snapshot
func (s *MediaSession) GetMediaInfo() domain.MediaInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.MediaInfo{
		Track:     s.track.Clone(),
		IsPlaying: s.isPlaying,
	}
}

// SetLyricsText shows, updates or hides the desktop lyrics overlay
func (s *MediaSession) SetLyricsText(text string) (res domain.Result) {
	defer s.recoverInto(&res, "SetLyricsText")

	if s.overlays == nil {
		return domain.Failure(fmt.Errorf("lyrics overlay unavailable"))
	}
	return s.overlays.SetLyricsText(text)
}

// parseTrack validates a content-layer payload before it touches the cache.
// Objects arrive as map[string]any; JSON text is accepted when it holds an object.
func parseTrack(v any) (domain.Track, error) {
	switch t := v.(type) {
	case nil:
		return domain.Track{}, nil
	case domain.Track:
		return t.Clone(), nil
	case map[string]any:
		return domain.Track(t).Clone(), nil
	case string:
		return decodeTrack([]byte(t))
	case []byte:
		return decodeTrack(t)
	case json.RawMessage:
		return decodeTrack(t)
	default:
		return nil, &InvalidInputError{Reason: fmt.Sprintf("unsupported type %T", v)}
	}
}

func decodeTrack(data []byte) (domain.Track, error) {
	if strings.TrimSpace(string(data)) == "" {
		return domain.Track{}, nil
	}

	var track domain.Track
	if err := json.Unmarshal(data, &track); err != nil {
		return nil, &InvalidInputError{Reason: err.Error()}
	}
	if track == nil {
		// literal null
		return domain.Track{}, nil
	}
	return track, nil
}

func describe(track domain.Track) string {
	title, artist := track.Title(), track.Artist()
	if title == "" {
		title = unknown
	}
	if artist == "" {
		artist = unknown
	}
	return title + " - " + artist
}

func (s *MediaSession) recoverInto(res *domain.Result, method string) {
	if r := recover(); r != nil {
		s.logger.Error("Bridge call panicked",
			zap.String("method", method),
			zap.Any("panic", r),
			zap.Stack("stack"))
		*res = domain.Failure(fmt.Errorf("%s: %v", method, r))
	}
}
