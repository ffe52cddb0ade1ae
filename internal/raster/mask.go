package raster

import (
	"fmt"
	"image"
	"math"
)

// Mask is a row-major 8-bit pixel grid with a fill threshold.
//
// A pixel is "filled" (ink) when its intensity is at or above the threshold.
// The zero value of Threshold behaves as 1, so any nonzero byte counts as
// ink; this matches the convention of glyph alpha channels where 0 is empty
// and anything else is coverage.
//
// Pix may be shared with an *image.Alpha (see FromAlpha), in which case
// mutations made through the mask are visible to the image and vice versa.
type Mask struct {
	// Pix holds the intensity bytes. Pixel (x, y) lives at Pix[y*Stride+x].
	Pix []uint8

	// Stride is the distance in bytes between vertically adjacent pixels.
	// It equals Width for compact masks and may exceed it for masks that
	// alias a window of a larger buffer.
	Stride int

	// Width is the number of columns.
	Width int

	// Height is the number of rows.
	Height int

	// Threshold is the minimum intensity considered filled.
	// Zero behaves as 1 (any nonzero byte is ink).
	Threshold uint8
}

// New creates a zeroed mask of the given dimensions with Stride == Width.
func New(width, height int) *Mask {
	return &Mask{
		Pix:    make([]uint8, width*height),
		Stride: width,
		Width:  width,
		Height: height,
	}
}

// FromAlpha wraps the alpha channel of a rendered image as a mask.
//
// The mask ALIASES the image's pixel buffer: no copy is made, and erasures
// performed during extraction are visible through the original image. This
// mirrors how the extraction loop owns the rendering surface it consumes.
// Sub-images are handled correctly and produce a mask whose Stride exceeds
// its Width.
func FromAlpha(img *image.Alpha) *Mask {
	b := img.Bounds()
	return &Mask{
		Pix:    img.Pix[img.PixOffset(b.Min.X, b.Min.Y):],
		Stride: img.Stride,
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}

// threshold returns the effective fill threshold (zero value means 1).
func (m *Mask) threshold() uint8 {
	if m.Threshold == 0 {
		return 1
	}
	return m.Threshold
}

// Filled reports whether the pixel at (x, y) is ink.
//
// Out-of-bounds coordinates report false; callers may probe freely around
// the edges without clamping.
func (m *Mask) Filled(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Stride+x] >= m.threshold()
}

// Set writes an intensity value at (x, y). Out-of-bounds writes are no-ops.
func (m *Mask) Set(x, y int, v uint8) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Pix[y*m.Stride+x] = v
}

// ClearDisk zeroes every pixel strictly inside the circle of radius r
// centered at (cx, cy), i.e. all pixels with (x-cx)² + (y-cy)² < r².
//
// The boundary is excluded: pixels at distance exactly r survive, so
// adjacent extracted circles can share tangent pixels. Portions of the
// disk outside the grid are ignored, and r <= 0 clears nothing.
//
// This is the only mutation the extraction loop performs.
func (m *Mask) ClearDisk(cx, cy, r int) {
	if r <= 0 {
		return
	}
	rr := r * r
	for dy := -(r - 1); dy <= r-1; dy++ {
		y := cy + dy
		if y < 0 || y >= m.Height {
			continue
		}
		// Widest dx with dy²+dx² < r².
		half := isqrt(rr - dy*dy - 1)
		x0 := cx - half
		x1 := cx + half
		if x0 < 0 {
			x0 = 0
		}
		if x1 > m.Width-1 {
			x1 = m.Width - 1
		}
		row := m.Pix[y*m.Stride : y*m.Stride+m.Width]
		for x := x0; x <= x1; x++ {
			row[x] = 0
		}
	}
}

// CountFilled returns the number of ink pixels in the mask.
func (m *Mask) CountFilled() int {
	n := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Filled(x, y) {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent compact copy of the mask.
//
// The copy has Stride == Width and its own pixel buffer, so it is safe to
// extract from the copy while keeping the original for rendering overlays.
func (m *Mask) Clone() *Mask {
	out := New(m.Width, m.Height)
	out.Threshold = m.Threshold
	for y := 0; y < m.Height; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+m.Width], m.Pix[y*m.Stride:y*m.Stride+m.Width])
	}
	return out
}

// Trim crops the mask to the bounding box of its ink plus a uniform margin.
//
// Parameters:
//   - margin: Number of empty pixels to keep on every side. The margin is
//     clamped to the original grid, so a trim never grows the mask beyond
//     its source dimensions.
//
// Returns:
//   - *Mask: A compact copy covering only the inked region.
//   - error: Non-nil if the mask contains no ink at all.
//
// Trimming before extraction shrinks the search window for every pass and
// removes empty borders that would otherwise cap radii near the edges.
func (m *Mask) Trim(margin int) (*Mask, error) {
	minX, minY := m.Width, m.Height
	maxX, maxY := -1, -1
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.Filled(x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return nil, fmt.Errorf("cannot trim: mask has no filled pixels")
	}

	if margin < 0 {
		margin = 0
	}
	minX -= margin
	minY -= margin
	maxX += margin
	maxY += margin
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > m.Width-1 {
		maxX = m.Width - 1
	}
	if maxY > m.Height-1 {
		maxY = m.Height - 1
	}

	out := New(maxX-minX+1, maxY-minY+1)
	out.Threshold = m.Threshold
	for y := minY; y <= maxY; y++ {
		copy(out.Pix[(y-minY)*out.Stride:(y-minY)*out.Stride+out.Width], m.Pix[y*m.Stride+minX:y*m.Stride+minX+out.Width])
	}
	return out, nil
}

// Image converts the mask to a grayscale picture with black ink on white.
//
// The conversion is binary through the mask's threshold, not a copy of the
// raw intensities, so the output shows exactly what the extractor sees.
func (m *Mask) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := uint8(255)
			if m.Filled(x, y) {
				v = 0
			}
			img.Pix[y*img.Stride+x] = v
		}
	}
	return img
}

// isqrt returns the integer square root floor(sqrt(n)); n <= 0 yields 0.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
