package raster

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// createInkImage creates a white image with a dark rectangle of the given color.
func createInkImage(width, height int, x1, y1, x2, y2 int, ink color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			img.Set(x, y, ink)
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	img := createInkImage(8, 8, 2, 3, 5, 5, color.Black)

	m := FromImage(img, DefaultInkLevel)
	if m.Width != 8 || m.Height != 8 {
		t.Fatalf("dimensions: got %dx%d, want 8x8", m.Width, m.Height)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inRect := x >= 2 && x <= 5 && y >= 3 && y <= 5
			if m.Filled(x, y) != inRect {
				t.Errorf("Filled(%d,%d): got %v, want %v", x, y, m.Filled(x, y), inRect)
			}
		}
	}
}

func TestFromImage_InkLevel(t *testing.T) {
	// Mid-dark gray: ink at the default level, background at a strict one.
	gray := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	img := createInkImage(4, 4, 1, 1, 2, 2, gray)

	loose := FromImage(img, DefaultInkLevel)
	if !loose.Filled(1, 1) {
		t.Error("luminance 100 should be ink at level 127")
	}

	strict := FromImage(img, 50)
	if strict.Filled(1, 1) {
		t.Error("luminance 100 should not be ink at level 50")
	}
}

func TestMaskImage(t *testing.T) {
	m := New(3, 3)
	m.Set(1, 1, 255)

	img := m.Image()
	if img.GrayAt(1, 1).Y != 0 {
		t.Errorf("ink pixel should render black, got %d", img.GrayAt(1, 1).Y)
	}
	if img.GrayAt(0, 0).Y != 255 {
		t.Errorf("empty pixel should render white, got %d", img.GrayAt(0, 0).Y)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ink.png")

	src := createInkImage(8, 8, 2, 2, 5, 5, color.Black)
	if err := imgio.Save(path, src, imgio.PNGEncoder()); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	m, err := Load(path, LoadOptions{HeightPx: 16})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Width != 16 || m.Height != 16 {
		t.Errorf("resized dimensions: got %dx%d, want 16x16", m.Width, m.Height)
	}
	if m.CountFilled() == 0 {
		t.Error("resized mask should still contain ink")
	}
}

func TestLoad_Trim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.png")

	src := createInkImage(8, 8, 2, 2, 3, 3, color.Black)
	if err := imgio.Save(path, src, imgio.PNGEncoder()); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	m, err := Load(path, LoadOptions{Trim: true, TrimMargin: 1})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Width != 4 || m.Height != 4 {
		t.Errorf("trimmed dimensions: got %dx%d, want 4x4", m.Width, m.Height)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png"), LoadOptions{}); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mask.png")

	m := New(6, 4)
	m.Set(2, 2, 255)
	if err := m.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("failed to reopen mask dump: %v", err)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
		t.Errorf("dump dimensions: got %dx%d, want 6x4", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
