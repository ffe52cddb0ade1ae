package svg

import (
	"fmt"
	"io"

	"github.com/ruuzia/fractabubbler/internal/packing"
)

// DefaultFill is the circle color used when neither an explicit fill nor a
// palette is configured.
const DefaultFill = "#800080"

// FillFunc chooses the fill color for the i'th emitted circle.
// The returned string is written verbatim into the fill attribute.
type FillFunc func(i int, c packing.Circle) string

// Writer emits an SVG document incrementally: Start, any number of Circle
// calls, then End. Streaming pairs with the extractor's lazy sequence, so
// circles hit the file as they are found.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Start writes the XML declaration and the opening svg element.
func (sw *Writer) Start(width, height int) error {
	if _, err := fmt.Fprintf(sw.w, "<?xml version=\"1.0\"?>\n"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(sw.w, "<svg width=\"%d\" height=\"%d\">\n", width, height)
	return err
}

// Circle writes one circle element, indented under the svg element.
func (sw *Writer) Circle(c packing.Circle, fill string) error {
	_, err := fmt.Fprintf(sw.w, "  <circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=\"%s\" />\n", c.Cx, c.Cy, c.R, fill)
	return err
}

// End closes the svg element.
func (sw *Writer) End() error {
	_, err := fmt.Fprintf(sw.w, "</svg>\n")
	return err
}

// WriteDocument writes a complete SVG document for an already collected
// circle list.
//
// Parameters:
//   - w: Destination stream.
//   - width, height: Dimensions of the mask the circles were extracted
//     from, used as the svg element's size.
//   - circles: Circles in emission order.
//   - fill: Color chooser; use FixedFill or PaletteFill to construct one.
//
// Returns the first write error encountered, wrapped with the failing
// element's position.
func WriteDocument(w io.Writer, width, height int, circles []packing.Circle, fill FillFunc) error {
	sw := NewWriter(w)
	if err := sw.Start(width, height); err != nil {
		return fmt.Errorf("failed to write SVG header: %w", err)
	}
	for i, c := range circles {
		if err := sw.Circle(c, fill(i, c)); err != nil {
			return fmt.Errorf("failed to write circle %d: %w", i, err)
		}
	}
	if err := sw.End(); err != nil {
		return fmt.Errorf("failed to close SVG document: %w", err)
	}
	return nil
}
