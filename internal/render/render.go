package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ruuzia/fractabubbler/internal/packing"
	"github.com/ruuzia/fractabubbler/internal/raster"
)

// edgeWidth is the width in pixels of the anti-aliasing ramp at a circle
// boundary. Coverage falls from 1 to 0 across this band centered on the
// exact radius.
const edgeWidth = 0.7

var (
	inkGray = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	markRed = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// Draw rasterizes circles onto a white canvas.
//
// Circles are painted in slice order, so later circles cover earlier ones
// exactly as they do in the SVG document. The fill callback receives the
// circle index and the circle itself and must return a hex color such as
// "#800080"; passing the same callback used for the SVG output keeps both
// renderings consistent.
//
// Parameters:
//   - width: canvas width in pixels, at least 1
//   - height: canvas height in pixels, at least 1
//   - circles: circles to paint, in paint order
//   - fill: per-circle fill color callback
//
// Returns the rasterized image, or an error for an invalid canvas size or
// an unparseable fill color.
func Draw(width, height int, circles []packing.Circle, fill func(i int, c packing.Circle) string) (*image.NRGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i, c := range circles {
		hex := fill(i, c)
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fill color %q for circle %d: %w", hex, i, err)
		}
		r, g, b := col.RGB255()
		paintCircle(img, c, r, g, b)
	}
	return img, nil
}

// paintCircle blends one filled circle onto img using a signed-distance
// coverage ramp. Only pixels inside the circle's bounding box are touched.
func paintCircle(img *image.NRGBA, c packing.Circle, cr, cg, cb uint8) {
	b := img.Bounds()
	x0 := max(b.Min.X, c.Cx-c.R-1)
	x1 := min(b.Max.X-1, c.Cx+c.R+1)
	y0 := max(b.Min.Y, c.Cy-c.R-1)
	y1 := min(b.Max.Y-1, c.Cy+c.R+1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x - c.Cx)
			dy := float64(y - c.Cy)
			sd := math.Sqrt(dx*dx+dy*dy) - float64(c.R)
			cov := 0.5 - sd/edgeWidth
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			o := img.PixOffset(x, y)
			img.Pix[o+0] = mix(img.Pix[o+0], cr, cov)
			img.Pix[o+1] = mix(img.Pix[o+1], cg, cov)
			img.Pix[o+2] = mix(img.Pix[o+2], cb, cov)
			img.Pix[o+3] = 0xff
		}
	}
}

// mix blends src over dst at the given coverage, rounding to nearest.
func mix(dst, src uint8, cov float64) uint8 {
	return uint8(float64(src)*cov + float64(dst)*(1-cov) + 0.5)
}

// Overlay renders a mask with circle outlines drawn on top.
//
// Filled mask pixels are painted light gray on a white background and each
// circle is traced in red, which makes it easy to inspect what an
// extraction run consumed and where it placed circles.
func Overlay(m *raster.Mask, circles []packing.Circle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			o := img.PixOffset(x, y)
			px := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			if m.Filled(x, y) {
				px = inkGray
			}
			img.Pix[o+0] = px.R
			img.Pix[o+1] = px.G
			img.Pix[o+2] = px.B
			img.Pix[o+3] = px.A
		}
	}
	for _, c := range circles {
		outlineCircle(img, c, markRed)
	}
	return img
}

// outlineCircle traces a one-pixel circle outline with the midpoint circle
// algorithm. A radius below 1 degenerates to a single dot at the center.
func outlineCircle(img *image.NRGBA, c packing.Circle, col color.NRGBA) {
	if c.R < 1 {
		setPixel(img, c.Cx, c.Cy, col)
		return
	}

	x, y := c.R, 0
	err := 1 - c.R
	for x >= y {
		setPixel(img, c.Cx+x, c.Cy+y, col)
		setPixel(img, c.Cx+y, c.Cy+x, col)
		setPixel(img, c.Cx-y, c.Cy+x, col)
		setPixel(img, c.Cx-x, c.Cy+y, col)
		setPixel(img, c.Cx-x, c.Cy-y, col)
		setPixel(img, c.Cx-y, c.Cy-x, col)
		setPixel(img, c.Cx+y, c.Cy-x, col)
		setPixel(img, c.Cx+x, c.Cy-y, col)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// setPixel writes one pixel, ignoring coordinates outside the image.
func setPixel(img *image.NRGBA, x, y int, col color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	o := img.PixOffset(x, y)
	img.Pix[o+0] = col.R
	img.Pix[o+1] = col.G
	img.Pix[o+2] = col.B
	img.Pix[o+3] = col.A
}

// SavePNG writes img to path in PNG format.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save image to %s: %w", path, err)
	}
	return nil
}
