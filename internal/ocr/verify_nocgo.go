//go:build !cgo

package ocr

import "image"

// Available reports whether an OCR engine is compiled into this binary.
func Available() bool { return false }

// Verify is a stub for builds without cgo. It always returns ErrUnavailable.
func Verify(img image.Image, expected string) (*Report, error) {
	return nil, ErrUnavailable
}
