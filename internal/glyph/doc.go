// Package glyph rasterizes text into alpha masks using OpenType fonts.
//
// The package wraps golang.org/x/image/font/opentype: font files are
// parsed into *sfnt.Font values, and a Renderer turns one (font, height)
// pair into fixed-cell alpha masks suitable for circle extraction. Font
// format parsing is entirely the library's concern; this package only
// decides geometry.
//
// # Cell Geometry
//
// Rendering follows a fixed-cell layout: each rune nominally occupies a
// cell whose width and height are tied to the font point size by
// FontWidthRatio and FontHeightRatio. Requesting a 256-pixel-tall mask
// yields a 225-pixel-wide cell and a face sized 256/0.68 points at 72 DPI
// (one point per pixel). The baseline sits on the cell's bottom row, so
// descenders fall outside the mask.
//
// Text wider than its cells (proportional fonts, wide glyphs) expands the
// mask to the measured advance instead of clipping.
//
// # Fonts
//
// LoadFont reads a TTF/OTF file; DefaultFont returns the embedded Go
// Regular face, parsed once, so the tool works with no font file
// installed. FontCache deduplicates parsing across repeated jobs and is
// safe for concurrent use.
//
// # Thread Safety
//
// *sfnt.Font values and FontCache are safe to share. Renderer is NOT: the
// underlying face buffers glyph rasterizations, so concurrent renders need
// one Renderer per goroutine.
package glyph
