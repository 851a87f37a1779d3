package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/multierr"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SystemFontPaths lists the CJK faces tried after the embedded Latin face, in order
func SystemFontPaths() []string {
	switch runtime.GOOS {
	case "windows":
		dir := os.Getenv("WINDIR")
		if dir == "" {
			dir = `C:\Windows`
		}
		fonts := filepath.Join(dir, "Fonts")
		return []string{
			filepath.Join(fonts, "msyhbd.ttc"),
			filepath.Join(fonts, "msyh.ttc"),
			filepath.Join(fonts, "simhei.ttf"),
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts/PingFang.ttc",
			"/System/Library/Fonts/STHeiti Medium.ttc",
		}
	default:
		return []string{
			"/usr/share/fonts/opentype/noto/NotoSansCJK-Bold.ttc",
			"/usr/share/fonts/noto-cjk/NotoSansCJK-Bold.ttc",
			"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
			"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
			"/usr/share/fonts/truetype/wqy/wqy-zenhei.ttc",
		}
	}
}

// fallbackFace draws each rune with the first face whose font maps it to a real glyph.
// Runes no face knows are drawn by the primary face as .notdef.
// Not safe for concurrent use.
type fallbackFace struct {
	fonts []*sfnt.Font
	faces []font.Face
	buf   sfnt.Buffer
}

func newFace(f *sfnt.Font) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    lyricsFontSize,
		DPI:     lyricsFontDPI,
		Hinting: font.HintingFull,
	})
}

func (f *fallbackFace) add(sf *sfnt.Font) error {
	face, err := newFace(sf)
	if err != nil {
		return err
	}
	f.fonts = append(f.fonts, sf)
	f.faces = append(f.faces, face)
	return nil
}

// loadFontFile parses the first font of a TTF, OTF or TTC file
func loadFontFile(path string) (*sfnt.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.NumFonts() == 0 {
		return nil, fmt.Errorf("parse %s: empty collection", path)
	}
	return c.Font(0)
}

func (f *fallbackFace) pick(r rune) font.Face {
	return f.faces[f.index(r)]
}

func (f *fallbackFace) index(r rune) int {
	for i, sf := range f.fonts {
		if gi, err := sf.GlyphIndex(&f.buf, r); err == nil && gi != 0 {
			return i
		}
	}
	return 0
}

func (f *fallbackFace) Close() error {
	var errs error
	for _, face := range f.faces {
		errs = multierr.Append(errs, face.Close())
	}
	return errs
}

func (f *fallbackFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return f.pick(r).Glyph(dot, r)
}

func (f *fallbackFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return f.pick(r).GlyphBounds(r)
}

func (f *fallbackFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return f.pick(r).GlyphAdvance(r)
}

// Kern only applies between runes drawn by the same face
func (f *fallbackFace) Kern(r0, r1 rune) fixed.Int26_6 {
	i := f.index(r0)
	if i != f.index(r1) {
		return 0
	}
	return f.faces[i].Kern(r0, r1)
}

// Metrics reports the tallest line any face can produce
func (f *fallbackFace) Metrics() font.Metrics {
	m := f.faces[0].Metrics()
	for _, face := range f.faces[1:] {
		o := face.Metrics()
		m.Height = max(m.Height, o.Height)
		m.Ascent = max(m.Ascent, o.Ascent)
		m.Descent = max(m.Descent, o.Descent)
	}
	return m
}
