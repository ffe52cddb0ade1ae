package raster

import (
	"image"
	"image/color"
	"testing"
)

// newFilled creates a mask of the given size with every pixel set to 255.
func newFilled(width, height int) *Mask {
	m := New(width, height)
	for i := range m.Pix {
		m.Pix[i] = 255
	}
	return m
}

func TestNew(t *testing.T) {
	m := New(7, 3)
	if m.Width != 7 || m.Height != 3 {
		t.Fatalf("dimensions: got %dx%d, want 7x3", m.Width, m.Height)
	}
	if m.Stride != 7 {
		t.Errorf("Stride: got %d, want 7", m.Stride)
	}
	if len(m.Pix) != 21 {
		t.Errorf("len(Pix): got %d, want 21", len(m.Pix))
	}
	if m.CountFilled() != 0 {
		t.Errorf("new mask should be empty, got %d filled", m.CountFilled())
	}
}

func TestFilled_DefaultThreshold(t *testing.T) {
	m := New(3, 3)
	m.Set(1, 1, 1) // any nonzero byte is ink by default

	if !m.Filled(1, 1) {
		t.Error("intensity 1 should be filled with zero-value threshold")
	}
	if m.Filled(0, 0) {
		t.Error("intensity 0 should not be filled")
	}
}

func TestFilled_CustomThreshold(t *testing.T) {
	m := New(3, 1)
	m.Threshold = 128
	m.Set(0, 0, 127)
	m.Set(1, 0, 128)
	m.Set(2, 0, 255)

	if m.Filled(0, 0) {
		t.Error("127 should be below threshold 128")
	}
	if !m.Filled(1, 0) {
		t.Error("128 should meet threshold 128")
	}
	if !m.Filled(2, 0) {
		t.Error("255 should meet threshold 128")
	}
}

func TestFilled_OutOfBounds(t *testing.T) {
	m := newFilled(4, 4)

	outside := [][2]int{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {-1, -1}, {4, 4}, {100, 2}, {2, 100},
	}
	for _, p := range outside {
		if m.Filled(p[0], p[1]) {
			t.Errorf("Filled(%d,%d) outside a 4x4 mask should be false", p[0], p[1])
		}
	}
}

func TestSet_OutOfBounds(t *testing.T) {
	m := New(2, 2)
	// Must not panic or corrupt neighboring rows.
	m.Set(-1, 0, 255)
	m.Set(0, -1, 255)
	m.Set(2, 0, 255)
	m.Set(0, 2, 255)

	if m.CountFilled() != 0 {
		t.Errorf("out-of-bounds Set should be a no-op, got %d filled", m.CountFilled())
	}
}

func TestClearDisk(t *testing.T) {
	m := newFilled(5, 5)
	m.ClearDisk(2, 2, 2)

	// Strictly inside r=2 means squared distance < 4: the 3x3 block.
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if m.Filled(x, y) {
				t.Errorf("pixel (%d,%d) at distance < 2 should be cleared", x, y)
			}
		}
	}

	// Pixels at distance exactly 2 survive.
	boundary := [][2]int{{0, 2}, {4, 2}, {2, 0}, {2, 4}}
	for _, p := range boundary {
		if !m.Filled(p[0], p[1]) {
			t.Errorf("pixel (%d,%d) at distance exactly 2 should survive", p[0], p[1])
		}
	}

	// 25 pixels minus the 3x3 block.
	if got := m.CountFilled(); got != 16 {
		t.Errorf("CountFilled after ClearDisk: got %d, want 16", got)
	}
}

func TestClearDisk_Clipping(t *testing.T) {
	m := newFilled(4, 4)
	m.ClearDisk(0, 0, 3) // most of the disk is off-grid

	if m.Filled(1, 1) {
		t.Error("(1,1) at squared distance 2 should be cleared")
	}
	if m.Filled(2, 0) {
		t.Error("(2,0) at squared distance 4 should be cleared")
	}
	if !m.Filled(3, 0) {
		t.Error("(3,0) at squared distance 9 should survive (boundary excluded)")
	}
	if !m.Filled(3, 3) {
		t.Error("(3,3) at squared distance 18 should survive")
	}
}

func TestClearDisk_NonPositiveRadius(t *testing.T) {
	m := newFilled(3, 3)
	m.ClearDisk(1, 1, 0)
	m.ClearDisk(1, 1, -2)

	if got := m.CountFilled(); got != 9 {
		t.Errorf("r<=0 should clear nothing, got %d filled of 9", got)
	}
}

func TestClearDisk_RadiusOne(t *testing.T) {
	m := newFilled(3, 3)
	m.ClearDisk(1, 1, 1)

	// Only squared distance 0 is < 1: the center pixel alone.
	if m.Filled(1, 1) {
		t.Error("center should be cleared")
	}
	if got := m.CountFilled(); got != 8 {
		t.Errorf("r=1 should clear exactly the center, got %d filled of 9", got)
	}
}

func TestFromAlpha_Aliasing(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 4, 3))
	img.SetAlpha(1, 1, color.Alpha{A: 255})

	m := FromAlpha(img)
	if m.Width != 4 || m.Height != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", m.Width, m.Height)
	}
	if !m.Filled(1, 1) {
		t.Fatal("mask should see the alpha pixel")
	}

	// Erasing through the mask must be visible in the source image.
	m.ClearDisk(1, 1, 1)
	if img.AlphaAt(1, 1).A != 0 {
		t.Error("ClearDisk should write through to the aliased alpha buffer")
	}
}

func TestFromAlpha_SubImage(t *testing.T) {
	base := image.NewAlpha(image.Rect(0, 0, 10, 8))
	base.SetAlpha(4, 3, color.Alpha{A: 255})

	sub := base.SubImage(image.Rect(2, 1, 9, 6)).(*image.Alpha)
	m := FromAlpha(sub)

	if m.Width != 7 || m.Height != 5 {
		t.Fatalf("dimensions: got %dx%d, want 7x5", m.Width, m.Height)
	}
	if m.Stride <= m.Width {
		t.Errorf("sub-image mask should have Stride > Width, got Stride=%d Width=%d", m.Stride, m.Width)
	}
	// Base (4,3) is (2,2) in the sub-image's local coordinates.
	if !m.Filled(2, 2) {
		t.Error("mask should address sub-image pixels correctly through the stride")
	}
	if got := m.CountFilled(); got != 1 {
		t.Errorf("CountFilled: got %d, want 1", got)
	}
}

func TestClone_Independent(t *testing.T) {
	m := newFilled(4, 4)
	m.Threshold = 200

	c := m.Clone()
	c.ClearDisk(2, 2, 2)

	if m.CountFilled() != 16 {
		t.Error("mutating the clone should not affect the original")
	}
	if c.Threshold != 200 {
		t.Errorf("clone Threshold: got %d, want 200", c.Threshold)
	}
	if c.Stride != c.Width {
		t.Errorf("clone should be compact, got Stride=%d Width=%d", c.Stride, c.Width)
	}
}

func TestClone_CompactsSubImage(t *testing.T) {
	base := image.NewAlpha(image.Rect(0, 0, 10, 8))
	base.SetAlpha(4, 3, color.Alpha{A: 255})
	m := FromAlpha(base.SubImage(image.Rect(2, 1, 9, 6)).(*image.Alpha))

	c := m.Clone()
	if c.Stride != c.Width {
		t.Errorf("clone should compact the stride, got Stride=%d Width=%d", c.Stride, c.Width)
	}
	if !c.Filled(2, 2) {
		t.Error("clone should preserve pixel content across the stride change")
	}
}

func TestTrim(t *testing.T) {
	m := New(10, 10)
	for y := 4; y <= 6; y++ {
		for x := 3; x <= 5; x++ {
			m.Set(x, y, 255)
		}
	}

	tight, err := m.Trim(0)
	if err != nil {
		t.Fatalf("Trim failed: %v", err)
	}
	if tight.Width != 3 || tight.Height != 3 {
		t.Errorf("tight trim: got %dx%d, want 3x3", tight.Width, tight.Height)
	}
	if tight.CountFilled() != 9 {
		t.Errorf("tight trim should be fully inked, got %d of 9", tight.CountFilled())
	}

	padded, err := m.Trim(1)
	if err != nil {
		t.Fatalf("Trim failed: %v", err)
	}
	if padded.Width != 5 || padded.Height != 5 {
		t.Errorf("padded trim: got %dx%d, want 5x5", padded.Width, padded.Height)
	}
	if padded.Filled(0, 0) {
		t.Error("margin pixels should be empty")
	}
	if !padded.Filled(1, 1) {
		t.Error("ink should start after the margin")
	}
}

func TestTrim_ClampsAtEdges(t *testing.T) {
	m := New(5, 5)
	m.Set(0, 0, 255)

	out, err := m.Trim(2)
	if err != nil {
		t.Fatalf("Trim failed: %v", err)
	}
	// Margin cannot extend past the top-left corner.
	if out.Width != 3 || out.Height != 3 {
		t.Errorf("clamped trim: got %dx%d, want 3x3", out.Width, out.Height)
	}
	if !out.Filled(0, 0) {
		t.Error("ink pixel should remain at the clamped corner")
	}
}

func TestTrim_Empty(t *testing.T) {
	m := New(6, 6)
	if _, err := m.Trim(0); err == nil {
		t.Error("Trim of an empty mask should fail")
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{-5, 0}, {0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 2},
		{8, 2}, {9, 3}, {15, 3}, {16, 4}, {24, 4}, {25, 5},
		{99, 9}, {100, 10}, {1 << 40, 1 << 20},
	}
	for _, tt := range tests {
		if got := isqrt(tt.n); got != tt.want {
			t.Errorf("isqrt(%d): got %d, want %d", tt.n, got, tt.want)
		}
	}
}
