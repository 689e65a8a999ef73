package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ImageInfo is what the processor learned about an image.
type ImageInfo struct {
	Width  int
	Height int
	Format string // jpeg, png, gif; empty when the decoder does not know it
}

// ImageProcessor downsizes oversized raster images before they are stored.
type ImageProcessor struct {
	MaxWidth int
}

func NewImageProcessor(maxWidth int) *ImageProcessor {
	return &ImageProcessor{MaxWidth: maxWidth}
}

// Process returns the bytes to store and the final dimensions.
// Images the stdlib cannot decode (webp, svg...) are returned untouched
// with zero dimensions.
func (p *ImageProcessor) Process(data []byte) ([]byte, ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return data, ImageInfo{}, nil
	}

	info := ImageInfo{Width: cfg.Width, Height: cfg.Height, Format: format}
	if p.MaxWidth <= 0 || cfg.Width <= p.MaxWidth || format == "gif" {
		return data, info, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, ImageInfo{}, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Resize(img, p.MaxWidth, 0, imaging.Lanczos)

	encFormat := imaging.JPEG
	if format == "png" {
		encFormat = imaging.PNG
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, encFormat, imaging.JPEGQuality(90)); err != nil {
		return nil, ImageInfo{}, fmt.Errorf("cannot encode %s: %w", format, err)
	}

	bounds := resized.Bounds()
	info.Width = bounds.Dx()
	info.Height = bounds.Dy()
	return buf.Bytes(), info, nil
}
