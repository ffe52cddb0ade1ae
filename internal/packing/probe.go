package packing

import (
	"fmt"
	"math"

	"github.com/ruuzia/fractabubbler/internal/raster"
)

// Strategy selects how the extractor computes a pixel's local radius.
// Both strategies are exact and produce identical output; they differ only
// in how the work is spent.
type Strategy int

const (
	// StrategyDistance probes by scanning the bounded window around the
	// pixel for the nearest empty pixel. The default.
	StrategyDistance Strategy = iota

	// StrategyRing probes by growing candidate radii one at a time and
	// testing only the annulus of pixels each step adds.
	StrategyRing
)

// ParseStrategy maps the names "distance" and "ring" to their strategies.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "distance":
		return StrategyDistance, nil
	case "ring":
		return StrategyRing, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want \"distance\" or \"ring\")", name)
	}
}

// String returns the flag-compatible name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyDistance:
		return "distance"
	case StrategyRing:
		return "ring"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// probeFunc computes the local radius of (x, y), capped at bound.
type probeFunc func(m *raster.Mask, x, y, bound int) int

// probe returns the strategy's probe implementation.
func (s Strategy) probe() probeFunc {
	if s == StrategyRing {
		return localRadiusRing
	}
	return localRadiusDistance
}

// edgeRoom is the largest radius whose emitted disk stays on the grid when
// centered at (x, y): min(x, y, W-x, H-y). Pixels outside the grid never
// count against a radius; this cap alone confines circles to the mask.
func edgeRoom(m *raster.Mask, x, y int) int {
	r := x
	if y < r {
		r = y
	}
	if w := m.Width - x; w < r {
		r = w
	}
	if h := m.Height - y; h < r {
		r = h
	}
	return r
}

// localRadiusDistance computes the local radius of (x, y) by locating the
// nearest empty in-bounds pixel within the bound window.
//
// Rows are visited center-out and each row's extent is tightened as the
// minimum squared distance improves, so the scan touches only pixels that
// could still lower it. The radius is the largest r with r² strictly below
// the minimum, or bound when no empty pixel lies within it.
func localRadiusDistance(m *raster.Mask, x, y, bound int) int {
	if !m.Filled(x, y) {
		return 0
	}
	if bound <= 0 {
		return 0
	}

	// One past the largest squared distance that can matter: left intact,
	// it resolves to the bound itself.
	bestSq := bound*bound + 1

	for dy := 0; dy <= bound; dy++ {
		rowSq := dy * dy
		if rowSq >= bestSq {
			break
		}
		rows := [2]int{y - dy, y + dy}
		n := 2
		if dy == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			yy := rows[i]
			if yy < 0 || yy >= m.Height {
				continue
			}
			lim := isqrt(bestSq - rowSq - 1)
			for dx := 0; dx <= lim; dx++ {
				left := x - dx
				right := x + dx
				if (left >= 0 && !m.Filled(left, yy)) || (right < m.Width && !m.Filled(right, yy)) {
					bestSq = rowSq + dx*dx
					if bestSq <= 1 {
						// An empty pixel is adjacent; nothing can be closer.
						return 0
					}
					break
				}
			}
		}
	}

	r := isqrt(bestSq - 1)
	if r > bound {
		r = bound
	}
	return r
}

// localRadiusRing computes the local radius of (x, y) by growing candidate
// radii and testing only the annulus each candidate adds.
//
// The first annulus containing an empty in-bounds pixel ends the walk with
// the previous radius; if every annulus up to bound passes, the radius is
// the bound.
func localRadiusRing(m *raster.Mask, x, y, bound int) int {
	if !m.Filled(x, y) {
		return 0
	}
	for r := 1; r <= bound; r++ {
		if !annulusFilled(m, x, y, r) {
			return r - 1
		}
	}
	return bound
}

// annulusFilled reports whether every in-bounds pixel with squared distance
// in ((r-1)², r²] from (x, y) is inked.
//
// Row spans are derived from integer square roots rather than a midpoint
// boundary walk, so the enumeration is gap-free: diagonal pixels that fall
// between plotted boundary points (the first of which appears at r=3,
// squared distance 5) are still tested.
func annulusFilled(m *raster.Mask, x, y, r int) bool {
	innerSq := (r - 1) * (r - 1)
	outerSq := r * r
	for dy := -r; dy <= r; dy++ {
		yy := y + dy
		if yy < 0 || yy >= m.Height {
			continue
		}
		rowSq := dy * dy
		lo := 0
		if rowSq <= innerSq {
			lo = isqrt(innerSq-rowSq) + 1
		}
		hi := isqrt(outerSq - rowSq)
		for dx := lo; dx <= hi; dx++ {
			if left := x - dx; left >= 0 && !m.Filled(left, yy) {
				return false
			}
			if right := x + dx; right < m.Width && !m.Filled(right, yy) {
				return false
			}
		}
	}
	return true
}

// isqrt returns the integer square root floor(sqrt(n)); n <= 0 yields 0.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
