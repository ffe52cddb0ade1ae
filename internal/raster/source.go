package raster

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// DefaultInkLevel is the luminance cutoff used when LoadOptions.InkLevel
// is zero: pixels at or below mid-gray count as ink.
const DefaultInkLevel = 127

// LoadOptions controls how a picture file is turned into an ink mask.
type LoadOptions struct {
	// HeightPx resizes the source to this height (preserving aspect ratio)
	// before binarization. Zero keeps the source dimensions.
	HeightPx int

	// InkLevel is the maximum luminance still considered ink.
	// Zero means DefaultInkLevel.
	InkLevel uint8

	// Trim crops the mask to its ink bounding box after binarization.
	Trim bool

	// TrimMargin is the empty border kept around the ink when Trim is set.
	TrimMargin int
}

// FromImage binarizes a picture into an ink mask.
//
// Parameters:
//   - img: Source image. Any color model is accepted.
//   - inkLevel: Maximum luminance treated as ink. Dark pixels (luminance at
//     or below inkLevel) become filled, light pixels become empty.
//
// Returns a mask of the image's dimensions whose Pix holds 0 or 255.
//
// # Pipeline
//
//  1. Grayscale: collapse color to luminance
//  2. Invert: ink becomes bright so the threshold test reads "at or above"
//  3. Threshold: binarize at 255-inkLevel
//
// The inversion means the mask follows the glyph convention (ink is the
// high value) regardless of the source being dark-on-light.
func FromImage(img image.Image, inkLevel uint8) *Mask {
	gray := imaging.Grayscale(img)
	inverted := imaging.Invert(gray)
	bin := segment.Threshold(inverted, 255-inkLevel)

	b := bin.Bounds()
	return &Mask{
		Pix:    bin.Pix,
		Stride: bin.Stride,
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}

// Load reads a picture file and converts it to an ink mask.
//
// Parameters:
//   - path: Path to the image file. PNG, JPEG, GIF, TIFF, and BMP are
//     supported; JPEG orientation metadata is honored.
//   - opts: Resize, ink level, and trim settings. The zero value keeps the
//     source size, uses DefaultInkLevel, and does not trim.
//
// Returns:
//   - *Mask: The binarized ink mask.
//   - error: Non-nil if the file cannot be opened or decoded, or if Trim is
//     requested and the picture contains no ink at all.
func Load(path string, opts LoadOptions) (*Mask, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	if opts.HeightPx > 0 {
		img = imaging.Resize(img, 0, opts.HeightPx, imaging.Lanczos)
	}

	level := opts.InkLevel
	if level == 0 {
		level = DefaultInkLevel
	}
	m := FromImage(img, level)

	if opts.Trim {
		trimmed, err := m.Trim(opts.TrimMargin)
		if err != nil {
			return nil, fmt.Errorf("failed to trim %s: %w", path, err)
		}
		m = trimmed
	}

	return m, nil
}

// SavePNG writes the mask as a PNG file, black ink on white.
//
// Intended for debugging: dumping the mask before and after extraction
// shows exactly which ink the emitted circles consumed.
func (m *Mask) SavePNG(path string) error {
	if err := imgio.Save(path, m.Image(), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save mask: %w", err)
	}
	return nil
}
