package svg

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ruuzia/fractabubbler/internal/packing"
)

// FixedFill returns a FillFunc painting every circle the same color.
//
// The hex string must be "#rgb" or "#rrggbb". It is validated (and
// canonicalized to lowercase #rrggbb) through go-colorful, so typos
// surface before any file is written.
func FixedFill(hex string) (FillFunc, error) {
	// colorful.Hex scans loosely: "#80008" would parse as "#800008".
	if len(hex) != 7 && len(hex) != 4 {
		return nil, fmt.Errorf("invalid fill color %q: want #rgb or #rrggbb", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid fill color %q: %w", hex, err)
	}
	fill := c.Hex()
	return func(int, packing.Circle) string { return fill }, nil
}

// PaletteFill returns a FillFunc cycling through a generated palette.
//
// Parameters:
//   - name: Palette generator. "happy" and "warm" use go-colorful's fast
//     generators; "soft" uses the constraint-based SoftPalette.
//   - n: Number of distinct colors to generate, normally the circle count.
//     Values below 1 are treated as 1. When the document holds more
//     circles than colors, fills repeat in palette order.
//
// Returns:
//   - FillFunc: Color chooser for WriteDocument.
//   - error: Non-nil for an unknown palette name or a generator failure.
func PaletteFill(name string, n int) (FillFunc, error) {
	if n < 1 {
		n = 1
	}

	var colors []colorful.Color
	switch name {
	case "happy":
		colors = colorful.FastHappyPalette(n)
	case "warm":
		colors = colorful.FastWarmPalette(n)
	case "soft":
		var err error
		colors, err = colorful.SoftPalette(n)
		if err != nil {
			return nil, fmt.Errorf("failed to generate soft palette: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown palette %q (want \"happy\", \"warm\", or \"soft\")", name)
	}

	return func(i int, _ packing.Circle) string {
		return colors[i%len(colors)].Hex()
	}, nil
}
