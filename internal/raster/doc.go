// Package raster provides the binary pixel mask that circle extraction
// operates on.
//
// A Mask is a row-major 8-bit intensity grid with a fill threshold. It is
// the single mutable surface shared between the rasterizer (which produces
// it), the extractor (which reads and erases it), and the debug renderer
// (which snapshots it). Masks can be built three ways:
//
//   - New: a zeroed grid for synthetic content
//   - FromAlpha: wrap a rendered glyph's alpha channel without copying
//   - FromImage / Load: binarize an arbitrary picture into an ink mask
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Pixels are addressed as Pix[y*Stride+x]. Stride is the row pitch and may
// exceed Width when the mask aliases a sub-region of a larger buffer.
//
// # Bounds Behavior
//
// Queries outside the grid are well-defined rather than errors: Filled
// reports false, Set is a no-op, and ClearDisk silently clips the disk to
// the grid. Callers never need to pre-clamp coordinates.
//
// # Thread Safety
//
// Masks are plain buffers with no internal locking. Concurrent readers are
// fine; anything that mutates (Set, ClearDisk) needs external
// synchronization or exclusive ownership.
package raster
