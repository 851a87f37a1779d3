package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"
	"unicode"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	lyricsFontSize = 16
	lyricsFontDPI  = 96
	// WrapWidth is the maximum rendered line width in pixels
	WrapWidth = 750
)

// TextRenderer draws lyrics lines as white bold text centered on black
type TextRenderer struct {
	mu   sync.Mutex // font.Face is not safe for concurrent use
	face font.Face
}

// NewTextRenderer uses the embedded bold face for Latin text and the
// installed system CJK fonts for everything it cannot draw
func NewTextRenderer(logger *zap.Logger) (*TextRenderer, error) {
	return NewTextRendererWithFonts(logger, SystemFontPaths()...)
}

// NewTextRendererWithFonts chains the given font files after the embedded face.
// Files that are missing or unparsable are skipped.
func NewTextRendererWithFonts(logger *zap.Logger, paths ...string) (*TextRenderer, error) {
	primary, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := &fallbackFace{}
	if err := face.add(primary); err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	for _, path := range paths {
		sf, err := loadFontFile(path)
		if err == nil {
			err = face.add(sf)
		}
		if err != nil {
			logger.Debug("Skipping lyrics font", zap.String("path", path), zap.Error(err))
			continue
		}
		logger.Info("Lyrics fallback font loaded", zap.String("path", path))
	}

	if len(face.faces) == 1 {
		logger.Warn("No CJK font found, lyrics limited to Latin glyphs",
			zap.Strings("searched", paths))
	}

	return &TextRenderer{face: face}, nil
}

// Render produces a size.X by size.Y frame with text wrapped at WrapWidth
// and the block centered both ways. Lines that do not fit vertically are clipped.
func (r *TextRenderer) Render(text string, size image.Point) (image.Image, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("invalid frame size: %dx%d", size.X, size.Y)
	}

	frame := imaging.New(size.X, size.Y, color.Black)

	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.wrap(text, min(WrapWidth, size.X))
	if len(lines) == 0 {
		return frame, nil
	}

	metrics := r.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	blockHeight := lineHeight * len(lines)
	top := (size.Y - blockHeight) / 2

	d := &font.Drawer{
		Dst:  frame,
		Src:  image.NewUniform(color.White),
		Face: r.face,
	}

	for i, line := range lines {
		width := d.MeasureString(line).Ceil()
		x := (size.X - width) / 2
		baseline := top + i*lineHeight + metrics.Ascent.Ceil()
		d.Dot = fixed.P(x, baseline)
		d.DrawString(line)
	}

	return frame, nil
}

// wrap splits text into lines no wider than limit pixels.
// Explicit newlines are kept; words longer than limit are broken between runes.
func (r *TextRenderer) wrap(text string, limit int) []string {
	var lines []string
	for _, paragraph := range strings.Split(strings.TrimSpace(text), "\n") {
		words := strings.FieldsFunc(paragraph, unicode.IsSpace)
		if len(words) == 0 {
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if r.width(candidate) <= limit {
				current = candidate
				continue
			}

			if current != "" {
				lines = append(lines, current)
				current = ""
			}

			if r.width(word) <= limit {
				current = word
				continue
			}

			pieces := r.breakWord(word, limit)
			lines = append(lines, pieces[:len(pieces)-1]...)
			current = pieces[len(pieces)-1]
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}

func (r *TextRenderer) breakWord(word string, limit int) []string {
	var pieces []string
	var b strings.Builder
	for _, ch := range word {
		if b.Len() > 0 && r.width(b.String()+string(ch)) > limit {
			pieces = append(pieces, b.String())
			b.Reset()
		}
		b.WriteRune(ch)
	}
	return append(pieces, b.String())
}

func (r *TextRenderer) width(s string) int {
	return font.MeasureString(r.face, s).Ceil()
}
