// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Atomic file writing (no partial output on failure)
//   - Directory creation
//   - Rendering QR module bitmaps to PNG
//
// # File Operations
//
//	// Write the finished PDF; path is untouched on failure
//	err := ioutils.WriteFileAtomic(ctx, "/labels/out.pdf", pdfData)
//
//	// Write a debug artifact
//	err := ioutils.WriteFile(ctx, "/labels/out.html", []byte(html))
//
// # Image Processing
//
// The ImageService rasterises QR code bitmaps:
//
//	svc := ioutils.NewImageService()
//	pngData, _ := svc.RenderBitmap(ctx, bitmap, 413)
package ioutils
