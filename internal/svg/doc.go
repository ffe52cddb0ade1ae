// Package svg serializes extracted circles into SVG documents.
//
// The document shape is deliberately minimal: an XML declaration, an svg
// element sized to the mask, and one circle element per extracted circle,
// written in emission order (largest first). Fills come from a FillFunc,
// which is either a fixed color or a generated palette; see PaletteFill.
//
// Writer streams elements to an io.Writer as they are produced, which
// pairs naturally with the extractor's lazy sequence. WriteDocument wraps
// the common collect-then-write case.
package svg
