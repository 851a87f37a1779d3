package render

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
)

func TestTextRenderer_Render(t *testing.T) {
	r, err := NewTextRendererWithFonts(zap.NewNop())
	if err != nil {
		t.Fatalf("NewTextRenderer: %v", err)
	}

	frame, err := r.Render("Never gonna give you up", image.Pt(800, 100))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := frame.Bounds().Size(); got != image.Pt(800, 100) {
		t.Fatalf("expected 800x100, got %v", got)
	}

	// Corners stay black, some pixel in the middle band is lit
	if r, g, b, _ := frame.At(0, 0).RGBA(); r|g|b != 0 {
		t.Error("expected black background at the corner")
	}
	if !hasLitPixel(frame, image.Rect(0, 30, 800, 70)) {
		t.Error("expected rendered text in the middle band")
	}
	if hasLitPixel(frame, image.Rect(0, 0, 200, 100)) {
		t.Error("short line should be centered, left edge should be empty")
	}
}

func TestTextRenderer_RenderErrors(t *testing.T) {
	r, err := NewTextRendererWithFonts(zap.NewNop())
	if err != nil {
		t.Fatalf("NewTextRenderer: %v", err)
	}

	if _, err := r.Render("hello", image.Pt(0, 100)); err == nil {
		t.Error("expected error for empty frame")
	}

	frame, err := r.Render("   ", image.Pt(100, 50))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if hasLitPixel(frame, frame.Bounds()) {
		t.Error("blank text should render an empty frame")
	}
}

func TestTextRenderer_Wrap(t *testing.T) {
	r, err := NewTextRendererWithFonts(zap.NewNop())
	if err != nil {
		t.Fatalf("NewTextRenderer: %v", err)
	}

	tests := []struct {
		name      string
		text      string
		limit     int
		wantLines int
	}{
		{name: "Short line", text: "hello world", limit: WrapWidth, wantLines: 1},
		{name: "Explicit newline", text: "first\nsecond", limit: WrapWidth, wantLines: 2},
		{name: "Blank paragraphs dropped", text: "first\n\n  \nsecond", limit: WrapWidth, wantLines: 2},
		{name: "Empty", text: "", limit: WrapWidth, wantLines: 0},
		{name: "Long sentence wraps", text: strings.Repeat("lyrics ", 60), limit: WrapWidth, wantLines: -1},
		{name: "Long word broken", text: strings.Repeat("a", 400), limit: WrapWidth, wantLines: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := r.wrap(tt.text, tt.limit)

			if tt.wantLines >= 0 && len(lines) != tt.wantLines {
				t.Fatalf("expected %d lines, got %d: %q", tt.wantLines, len(lines), lines)
			}
			if tt.wantLines < 0 && len(lines) < 2 {
				t.Fatalf("expected wrapping into several lines, got %q", lines)
			}
			for _, line := range lines {
				if w := r.width(line); w > tt.limit {
					t.Errorf("line %q is %dpx, wider than %d", line, w, tt.limit)
				}
			}
		})
	}
}

func TestNewTextRendererWithFonts(t *testing.T) {
	dir := t.TempDir()
	goodFont := filepath.Join(dir, "bold.ttf")
	if err := os.WriteFile(goodFont, gobold.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	junkFont := filepath.Join(dir, "junk.ttc")
	if err := os.WriteFile(junkFont, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		paths     []string
		wantFaces int
	}{
		{name: "Embedded only", paths: nil, wantFaces: 1},
		{name: "Missing file skipped", paths: []string{filepath.Join(dir, "absent.ttc")}, wantFaces: 1},
		{name: "Unparsable file skipped", paths: []string{junkFont}, wantFaces: 1},
		{name: "Single font file accepted", paths: []string{junkFont, goodFont}, wantFaces: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewTextRendererWithFonts(zap.NewNop(), tt.paths...)
			if err != nil {
				t.Fatalf("NewTextRendererWithFonts: %v", err)
			}
			face := r.face.(*fallbackFace)
			if len(face.faces) != tt.wantFaces {
				t.Errorf("expected %d faces, got %d", tt.wantFaces, len(face.faces))
			}
			if got := face.index('A'); got != 0 {
				t.Errorf("Latin runes should use the embedded face, got face %d", got)
			}
		})
	}
}

func TestTextRenderer_CJKLinesDiffer(t *testing.T) {
	var available []string
	for _, path := range SystemFontPaths() {
		if _, err := os.Stat(path); err == nil {
			available = append(available, path)
		}
	}
	if len(available) == 0 {
		t.Skip("no CJK system font installed")
	}

	r, err := NewTextRendererWithFonts(zap.NewNop(), available...)
	if err != nil {
		t.Fatalf("NewTextRendererWithFonts: %v", err)
	}
	if got := r.face.(*fallbackFace).index('你'); got == 0 {
		t.Fatal("expected Han runes to resolve to a CJK face")
	}

	first, err := r.Render("你好世界", image.Pt(800, 100))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := r.Render("一二三四", image.Pt(800, 100))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !hasLitPixel(first, first.Bounds()) {
		t.Fatal("expected CJK text to be drawn")
	}
	if sameImage(first, second) {
		t.Error("different CJK lines rendered identical frames")
	}
}

func sameImage(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	for y := a.Bounds().Min.Y; y < a.Bounds().Max.Y; y++ {
		for x := a.Bounds().Min.X; x < a.Bounds().Max.X; x++ {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}

func hasLitPixel(img image.Image, rect image.Rectangle) bool {
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0x8000 {
				return true
			}
		}
	}
	return false
}
