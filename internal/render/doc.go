// Package render rasterizes extracted circles back into images.
//
// Draw paints anti-aliased filled circles on a white canvas in the same
// painter's order the SVG output uses, so a PNG export matches the vector
// document. Overlay combines a binary mask with circle outlines and exists
// for debugging extraction runs.
package render
