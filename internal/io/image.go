package ioutils

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
)

// ErrEmptyBitmap is returned when a bitmap has no modules to draw.
var ErrEmptyBitmap = errors.New("bitmap is empty")

// ImageService turns module bitmaps (QR codes) into PNG images.
//
// Bitmaps are first drawn at one pixel per module and then scaled up with
// nearest-neighbour interpolation, which keeps module edges sharp at any
// target resolution.
//
// Example usage:
//
//	svc := NewImageService()
//	pngData, err := svc.RenderBitmap(ctx, qr.Bitmap(), 413)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// RenderBitmap draws a square bitmap (true = dark module) and scales it to
// size x size pixels, returning PNG-encoded bytes.
//
// If size is smaller than the bitmap, the bitmap is rendered at its
// native size instead.
func (s *ImageService) RenderBitmap(ctx context.Context, bitmap [][]bool, size int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(bitmap) == 0 {
		return nil, ErrEmptyBitmap
	}

	modules := len(bitmap)
	src := image.NewGray(image.Rect(0, 0, modules, modules))
	for y, row := range bitmap {
		for x := 0; x < modules; x++ {
			c := color.Gray{Y: 0xFF}
			if x < len(row) && row[x] {
				c = color.Gray{Y: 0x00}
			}
			src.SetGray(x, y, c)
		}
	}

	if size < modules {
		size = modules
	}

	dst := image.NewGray(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
