package storage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// ImageProcessor normalizes uploaded pictures before they are stored.
type ImageProcessor struct {
	MaxWidth  int
	MaxHeight int
}

func NewImageProcessor(maxWidth, maxHeight int) *ImageProcessor {
	return &ImageProcessor{MaxWidth: maxWidth, MaxHeight: maxHeight}
}

// FitPNG decodes a JPEG, PNG, GIF, BMP or TIFF image, honours its EXIF
// orientation, shrinks it to fit the bounding box and re-encodes it as PNG.
// Smaller images keep their size.
func (p *ImageProcessor) FitPNG(content io.Reader) (*bytes.Buffer, error) {
	img, err := imaging.Decode(content, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	fitted := imaging.Fit(img, p.MaxWidth, p.MaxHeight, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, fitted, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf, nil
}
