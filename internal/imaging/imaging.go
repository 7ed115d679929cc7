// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging turns uploaded product photos into small JPEG previews.
// Only the preview is kept; the original bytes are discarded after decoding.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// PreviewWidth is the maximum preview width in pixels.
	PreviewWidth = 320

	// previewQuality is the JPEG quality for generated previews.
	previewQuality = 75

	// maxImagePixels caps the number of pixels to prevent memory bombs.
	maxImagePixels = 40_000_000

	// MaxUploadSize is the largest accepted upload (10 MB).
	MaxUploadSize = 10 << 20
)

// ErrUnsupported is returned for files that are not a decodable image.
var ErrUnsupported = errors.New("imaging: unsupported image")

// Preview is a downscaled JPEG rendition of an upload.
type Preview struct {
	Width  int
	Height int
	Data   []byte // JPEG-encoded
}

// DataURL returns the preview as a data: URL for an <img> tag.
func (p Preview) DataURL() string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// GeneratePreview decodes src and returns a JPEG no wider than maxWidth,
// preserving aspect ratio. Smaller images are re-encoded at their size.
func GeneratePreview(src io.ReadSeeker, maxWidth int) (Preview, error) {
	if maxWidth <= 0 {
		maxWidth = PreviewWidth
	}

	// Decode config first to check dimensions without full decode.
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return Preview{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return Preview{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrUnsupported, cfg.Width, cfg.Height, maxImagePixels)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return Preview{}, fmt.Errorf("seek: %w", err)
	}
	img, _, err := image.Decode(src)
	if err != nil {
		return Preview{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxWidth {
		height = max(1, int(float64(height)*float64(maxWidth)/float64(width)))
		width = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: previewQuality}); err != nil {
		return Preview{}, fmt.Errorf("encode preview: %w", err)
	}

	return Preview{Width: width, Height: height, Data: buf.Bytes()}, nil
}
