// Package screenshot decodes the base64 images carried by automation results.
package screenshot

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/ports"
)

// ErrEmptyImage is returned for blank image payloads.
var ErrEmptyImage = errors.New("empty image payload")

// Inspector decodes screenshots for description and export.
type Inspector struct {
	maxWidth int
}

// NewInspector builds an inspector. Exports wider than maxWidth are resized;
// maxWidth <= 0 disables resizing.
func NewInspector(maxWidth int) *Inspector {
	return &Inspector{maxWidth: maxWidth}
}

// Inspect implements ports.ImageInspector.
func (i *Inspector) Inspect(encoded string) (domain.ImageInfo, error) {
	raw, err := decodeBase64(encoded)
	if err != nil {
		return domain.ImageInfo{}, err
	}
	info := domain.ImageInfo{Bytes: len(raw)}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return info, fmt.Errorf("decode image header: %w", err)
	}
	info.Format = format
	info.Width = cfg.Width
	info.Height = cfg.Height
	return info, nil
}

// Export implements ports.ImageExporter. The image is written as PNG to
// dir/name.png.
func (i *Inspector) Export(encoded, dir, name string) (string, error) {
	raw, err := decodeBase64(encoded)
	if err != nil {
		return "", err
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	if i.maxWidth > 0 && img.Bounds().Dx() > i.maxWidth {
		img = imaging.Resize(img, i.maxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name+".png")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.ExportFilePermissions)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// decodeBase64 accepts standard or raw encodings, with or without a
// data: URI prefix.
func decodeBase64(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if strings.HasPrefix(encoded, "data:") {
		if comma := strings.IndexByte(encoded, ','); comma >= 0 {
			encoded = encoded[comma+1:]
		}
	}
	if encoded == "" {
		return nil, ErrEmptyImage
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
	}
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return raw, nil
}

var (
	_ ports.ImageInspector = (*Inspector)(nil)
	_ ports.ImageExporter  = (*Inspector)(nil)
)
