package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _maxImageSize = 64 * 1024 * 1024 // 64 MB

// ErrNoAsset is returned when none of the candidates could be read
var ErrNoAsset = errors.New("no usable splash asset")

// Loader reads splash images from the local install directory
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new file-based asset loader
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// Resolve returns the bytes of the first candidate that exists and looks like an image.
// Candidates are tried in order; the error wraps ErrNoAsset and every per-candidate failure.
func (l *Loader) Resolve(ctx context.Context, candidates []string) ([]byte, string, error) {
	var errs error
	for _, path := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		data, err := l.read(path)
		if err != nil {
			l.logger.Debug("Splash candidate rejected", zap.String("path", path), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}

		l.logger.Debug("Splash asset loaded", zap.Int("bytes", len(data)), zap.String("path", path))
		return data, path, nil
	}

	if errs == nil {
		return nil, "", ErrNoAsset
	}
	return nil, "", fmt.Errorf("%w: %w", ErrNoAsset, errs)
}

func (l *Loader) read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > _maxImageSize {
		return nil, fmt.Errorf("%s exceeds the %d byte size limit (%d bytes)", path, _maxImageSize, info.Size())
	}

	// One byte past the limit catches files that grew after Stat
	data, err := io.ReadAll(io.LimitReader(f, _maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) > _maxImageSize {
		return nil, fmt.Errorf("%s exceeds the %d byte size limit", path, _maxImageSize)
	}

	// Content sniffing, the extension is not trusted
	if ct := http.DetectContentType(data); !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("%s is not an image: %s", path, ct)
	}

	return data, nil
}
