package domain

// ImageInfo describes a decoded screenshot.
type ImageInfo struct {
	Format string
	Width  int
	Height int
	Bytes  int
}
