package packing

import "fmt"

// Circle is one extracted disk in mask coordinates.
//
// Cx and Cy are the center pixel; R is the integer radius. The disk covers
// the pixels with squared distance strictly less than R², matching the
// erasure the extractor performs when the circle is emitted. Circles are
// immutable once emitted and arrive in non-increasing radius order.
type Circle struct {
	// Cx is the center's horizontal pixel coordinate.
	Cx int `json:"cx"`

	// Cy is the center's vertical pixel coordinate.
	Cy int `json:"cy"`

	// R is the radius in pixels.
	R int `json:"r"`
}

// Contains reports whether the pixel (x, y) lies strictly inside the
// circle, i.e. within the region ClearDisk erases for it.
func (c Circle) Contains(x, y int) bool {
	dx := x - c.Cx
	dy := y - c.Cy
	return dx*dx+dy*dy < c.R*c.R
}

// String formats the circle as "(cx,cy) r=R" for logs and test failures.
func (c Circle) String() string {
	return fmt.Sprintf("(%d,%d) r=%d", c.Cx, c.Cy, c.R)
}
