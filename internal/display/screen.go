package display

import (
	"github.com/genricoloni/yuujin/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

const (
	fallbackWidth  = 1920
	fallbackHeight = 1080

	// ReferenceDPI is the density at which DPIScale is 1.0
	ReferenceDPI = 96.0
)

// NewScreenResolution detects the primary screen resolution and DPI scale at startup
func NewScreenResolution(logger *zap.Logger) *domain.ScreenResolution {
	res := &domain.ScreenResolution{
		Width:    fallbackWidth,
		Height:   fallbackHeight,
		DPIScale: scaleFromDPI(logicalDPI()),
	}

	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		logger.Warn("No active displays detected, falling back to 1920x1080")
		return res
	}

	// Use primary monitor (index 0)
	bounds := screenshot.GetDisplayBounds(0)
	if bounds.Dx() > 0 && bounds.Dy() > 0 {
		res.Width = bounds.Dx()
		res.Height = bounds.Dy()
	}

	logger.Info("Screen resolution detected",
		zap.Int("width", res.Width),
		zap.Int("height", res.Height),
		zap.Float64("dpiScale", res.DPIScale))

	return res
}

// scaleFromDPI converts a logical DPI into a scale relative to 96 DPI.
// Unknown or nonsensical values map to 1.0.
func scaleFromDPI(dpi float64) float64 {
	if dpi <= 0 {
		return 1.0
	}
	return dpi / ReferenceDPI
}
