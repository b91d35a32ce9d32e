package screenshot

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func encodedPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestInspectReportsDimensions(t *testing.T) {
	encoded := encodedPNG(t, 32, 16)

	info, err := NewInspector(0).Inspect("data:image/png;base64," + encoded)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if info.Format != "png" || info.Width != 32 || info.Height != 16 || info.Bytes == 0 {
		t.Fatalf("unexpected info %+v", info)
	}
}

func TestInspectRejectsGarbage(t *testing.T) {
	if _, err := NewInspector(0).Inspect("   "); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
	if _, err := NewInspector(0).Inspect("!!!not-base64"); err == nil {
		t.Fatal("expected base64 error")
	}
	info, err := NewInspector(0).Inspect(base64.StdEncoding.EncodeToString([]byte("plain text")))
	if err == nil {
		t.Fatal("expected image header error")
	}
	if info.Bytes != len("plain text") {
		t.Fatalf("byte count should survive decode failure, got %d", info.Bytes)
	}
}

func TestExportResizesWideImages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")

	path, err := NewInspector(20).Export(encodedPNG(t, 40, 10), dir, "step-01")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if path != filepath.Join(dir, "step-01.png") {
		t.Fatalf("path = %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open exported image: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 5 {
		t.Fatalf("exported size = %v", img.Bounds())
	}
}
