// Package packing implements greedy maximal-circle extraction over an ink
// mask: repeatedly find the largest circle of fully inked pixels anywhere
// in the mask, emit it, erase it, and continue until no circle of at least
// the minimum radius remains.
//
// The emitted list approximates the ink with as few large circles as a
// greedy strategy allows, largest first. Rendering the circles back (as an
// SVG document or a raster preview) reproduces the shape of the ink.
//
// # Local Radius
//
// The local radius of a pixel is the largest integer r such that every
// in-bounds pixel within squared distance r² is inked, additionally capped
// by the pixel's distance to the grid edges. Positions outside the grid do
// not count against the radius; only the edge cap keeps circles inside the
// mask. A pixel that is itself empty has local radius 0.
//
// Two interchangeable probes compute this quantity:
//
//   - StrategyDistance: scan the bounded window around the pixel for the
//     nearest empty pixel; the radius follows from that squared distance.
//   - StrategyRing: grow candidate radii one at a time, testing only the
//     annulus of pixels each step adds; the first annulus containing an
//     empty pixel ends the walk.
//
// Both are exact, so they produce byte-identical output. StrategyDistance
// does more work per probe but benefits from early termination near holes;
// StrategyRing is cheap for small radii, which dominate late passes.
//
// # Pruning
//
// Extraction is monotone: erasing ink can only shrink local radii, so each
// pass's best radius bounds the next pass's. The extractor carries that
// bound from pass to pass, capping every probe and letting the scan stop
// early once a probe reaches it. The bound is per-extraction state, never
// shared between runs, so one Extractor value can serve concurrent
// extractions over different masks.
//
// # Tie Break
//
// The scan visits pixels row-major (top to bottom, left to right) and a
// later pixel replaces the best candidate only on a strictly larger
// radius. Equal maxima therefore resolve to the smallest y, then the
// smallest x. This is a documented artifact of the scan order, not a
// geometric property of the ink.
//
// # Performance
//
// Each pass scans the full grid and probes a window around each inked
// pixel, so a pass costs O(W×H×r²) in the worst case. The shrinking bound
// makes later passes substantially cheaper than earlier ones. Every
// emission erases at least the center pixel, so extraction always
// terminates within O(ink area) passes.
package packing
