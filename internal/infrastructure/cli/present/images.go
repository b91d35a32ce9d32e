package present

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/autopilot-go/internal/application/render"
	"github.com/doeshing/autopilot-go/internal/ports"
)

// ImageOptions controls how image blocks are described and exported.
type ImageOptions struct {
	Inspector ports.ImageInspector
	Exporter  ports.ImageExporter
	// ExportDir enables export when non-empty.
	ExportDir string
}

// DescribeImage returns a one-line description of img. name is the file
// stem used when exporting.
func (o ImageOptions) DescribeImage(img *render.Image, name string) string {
	if img == nil {
		return ""
	}
	if o.Inspector == nil {
		return fmt.Sprintf("%s: image (%s base64)", img.Alt, humanize.Bytes(uint64(len(img.Base64))))
	}

	info, err := o.Inspector.Inspect(img.Base64)
	if err != nil {
		return fmt.Sprintf("%s: image (undecodable, %s)", img.Alt, humanize.Bytes(uint64(info.Bytes)))
	}
	desc := fmt.Sprintf("%s: %s %dx%d, %s", img.Alt, strings.ToUpper(info.Format), info.Width, info.Height,
		humanize.Bytes(uint64(info.Bytes)))

	if o.Exporter == nil || o.ExportDir == "" {
		return desc
	}
	path, err := o.Exporter.Export(img.Base64, o.ExportDir, name)
	if err != nil {
		return desc + " (export failed: " + err.Error() + ")"
	}
	return desc + ", saved to " + path
}

// SectionImageName is the export stem for a summary image.
func SectionImageName(kind render.SectionKind) string {
	return "summary-" + string(kind)
}

// StepImageName is the export stem for a step image.
func StepImageName(index int) string {
	return fmt.Sprintf("step-%02d", index)
}
