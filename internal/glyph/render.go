package glyph

import (
	"fmt"
	"image"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Cell geometry as fractions of the font point size. A mask of height h
// uses a face of h/FontHeightRatio points, which makes the nominal glyph
// cell h*FontWidthRatio/FontHeightRatio pixels wide (256 -> 225).
const (
	FontWidthRatio  = 0.6
	FontHeightRatio = 0.68
)

// Renderer rasterizes text into alpha masks for one (font, height) pair.
//
// A Renderer owns a font.Face sized for its pixel height. Faces buffer
// glyph rasterizations internally, so a Renderer is NOT safe for
// concurrent use; create one per goroutine or serialize Render calls.
type Renderer struct {
	face     font.Face
	heightPx int
	cellW    int
}

// NewRenderer creates a renderer for the given font and mask height.
//
// Parameters:
//   - f: The parsed font. Must not be nil.
//   - heightPx: Mask height in pixels. Must be positive. The face is sized
//     heightPx/FontHeightRatio points at 72 DPI, i.e. one point per pixel.
//
// Returns:
//   - *Renderer: Ready for Render calls. Close it to release face
//     resources when done.
//   - error: Non-nil for a nil font, a non-positive height, or a face
//     construction failure.
func NewRenderer(f *sfnt.Font, heightPx int) (*Renderer, error) {
	if f == nil {
		return nil, fmt.Errorf("font is nil")
	}
	if heightPx <= 0 {
		return nil, fmt.Errorf("height must be positive, got %d", heightPx)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(heightPx) / FontHeightRatio,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}

	return &Renderer{
		face:     face,
		heightPx: heightPx,
		cellW:    int(float64(heightPx) * FontWidthRatio / FontHeightRatio),
	}, nil
}

// Height returns the mask height in pixels.
func (r *Renderer) Height() int { return r.heightPx }

// CellWidth returns the nominal per-rune cell width in pixels.
func (r *Renderer) CellWidth() int { return r.cellW }

// Render rasterizes text into a fresh alpha mask.
//
// The mask is one cell wide per rune, expanded to the measured advance when
// the text is wider than its cells, and heightPx tall. The pen starts at
// the left edge with the baseline on the bottom row, so descenders fall
// outside the mask.
//
// Returns an error for empty text; there is nothing to rasterize and the
// zero-width mask would be invalid for extraction.
func (r *Renderer) Render(text string) (*image.Alpha, error) {
	if text == "" {
		return nil, fmt.Errorf("nothing to render: text is empty")
	}

	width := r.cellW * utf8.RuneCountInString(text)
	if adv := font.MeasureString(r.face, text); adv.Ceil() > width {
		width = adv.Ceil()
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, r.heightPx))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P(0, r.heightPx),
	}
	d.DrawString(text)

	return mask, nil
}

// Close releases the face's internal buffers. The Renderer must not be
// used afterwards.
func (r *Renderer) Close() error {
	return r.face.Close()
}
