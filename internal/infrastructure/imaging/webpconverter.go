// Package imaging implements image normalization for article assets.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	// Register the accepted upload decoders.
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
)

const defaultQuality = 80

// WebPConverter re-encodes uploaded images as lossy WebP. Transparency is
// flattened onto a white background because the output is always opaque RGB.
type WebPConverter struct {
	quality float32
}

func NewWebPConverter() *WebPConverter {
	return &WebPConverter{quality: defaultQuality}
}

// Convert decodes the source image and returns it encoded as WebP.
func (c *WebPConverter) Convert(r io.Reader) (io.Reader, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	flat := flatten(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, flat, &webp.Options{Quality: c.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode %s image as webp: %w", format, err)
	}

	return &buf, nil
}

func flatten(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Over)
	return dst
}
