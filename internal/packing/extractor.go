package packing

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/ruuzia/fractabubbler/internal/raster"
)

// Extractor configures greedy maximal-circle extraction.
//
// An Extractor holds configuration only. All per-run state (the shrinking
// radius bound, the mask being consumed) lives inside the sequence a call
// creates, so one Extractor value is safe for concurrent use across
// different masks. A single mask must not be shared between simultaneous
// extractions: the run owns it exclusively.
type Extractor struct {
	// MinRadius stops extraction once the best remaining circle would be
	// smaller. Must be at least 1.
	MinRadius int

	// MaxRadiusHint seeds the radius bound for the first pass. Zero derives
	// min(W, H)/2 from the mask, which no circle's edge cap can exceed.
	// A positive hint below the true largest radius silently clips the
	// output to the hint; it is a tuning knob, not a validated input.
	MaxRadiusHint int

	// Strategy selects the local-radius probe. The zero value is
	// StrategyDistance.
	Strategy Strategy

	// Logger receives one debug line per extracted circle. Nil is silent.
	Logger *slog.Logger
}

// Circles starts an extraction over the mask and returns the circles as a
// lazy sequence, largest first.
//
// Parameters:
//   - m: The ink mask to consume. The extraction erases each emitted
//     circle's disk from it, so pass m.Clone() to keep the original.
//
// Returns:
//   - iter.Seq[Circle]: A finite, single-use sequence. Each circle's disk
//     is erased before the circle is delivered, so a consumer that stops
//     draining early stops the extraction with the mask reflecting exactly
//     the circles it received. Ranging a second time resumes from the
//     mask's current state rather than restarting.
//   - error: Non-nil if the mask is nil or has no area, MinRadius is below
//     1, MaxRadiusHint is negative, or the strategy is unknown. Validation
//     happens here, before any scanning work.
//
// # Sequence Behavior
//
// Every step finds the globally largest remaining circle (row-major first
// on ties), erases its open disk, and tightens the radius bound to its
// radius. Extraction ends when the best remaining radius falls below
// MinRadius; the mask is left untouched by that final, rejected probe.
func (e *Extractor) Circles(m *raster.Mask) (iter.Seq[Circle], error) {
	if err := e.validate(m); err != nil {
		return nil, err
	}

	probe := e.Strategy.probe()
	log := e.Logger
	if log == nil {
		log = nopLogger
	}

	bound := e.MaxRadiusHint
	if bound == 0 {
		bound = min(m.Width, m.Height) / 2
	}

	return func(yield func(Circle) bool) {
		for {
			c, ok := findLargest(m, bound, probe)
			if !ok || c.R < e.MinRadius {
				return
			}
			m.ClearDisk(c.Cx, c.Cy, c.R)
			bound = c.R
			log.Debug("extracted circle", "cx", c.Cx, "cy", c.Cy, "r", c.R)
			if !yield(c) {
				return
			}
		}
	}, nil
}

// Extract runs the extraction to exhaustion and collects the circles.
//
// The mask is consumed the same way as with Circles. The returned slice is
// never nil, so an inkless mask serializes as an empty JSON array.
func (e *Extractor) Extract(m *raster.Mask) ([]Circle, error) {
	seq, err := e.Circles(m)
	if err != nil {
		return nil, err
	}

	circles := make([]Circle, 0)
	for c := range seq {
		circles = append(circles, c)
	}
	return circles, nil
}

// validate checks preconditions eagerly so failures surface before any
// scanning work happens.
func (e *Extractor) validate(m *raster.Mask) error {
	if m == nil {
		return fmt.Errorf("mask is nil")
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("mask has no area: %dx%d", m.Width, m.Height)
	}
	if e.MinRadius < 1 {
		return fmt.Errorf("min radius must be at least 1, got %d", e.MinRadius)
	}
	if e.MaxRadiusHint < 0 {
		return fmt.Errorf("max radius hint must not be negative, got %d", e.MaxRadiusHint)
	}
	switch e.Strategy {
	case StrategyDistance, StrategyRing:
		return nil
	default:
		return fmt.Errorf("unknown strategy %d", int(e.Strategy))
	}
}

// findLargest scans the whole mask for the pixel with the greatest local
// radius, capped by bound.
//
// A candidate replaces the best only on a strictly larger radius, so ties
// keep the first pixel in row-major order. Pixels whose cap cannot beat
// the current best are skipped without probing, and the scan returns as
// soon as a probe reaches the bound: later pixels could at most tie, and
// ties lose. ok is false when no pixel has a positive radius.
func findLargest(m *raster.Mask, bound int, probe probeFunc) (c Circle, ok bool) {
	var best Circle
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			room := edgeRoom(m, x, y)
			if room > bound {
				room = bound
			}
			if room <= best.R {
				continue
			}
			if r := probe(m, x, y, room); r > best.R {
				best = Circle{Cx: x, Cy: y, R: r}
				if best.R == bound {
					return best, true
				}
			}
		}
	}
	return best, best.R > 0
}
