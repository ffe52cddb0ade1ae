package pipeline

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ruuzia/fractabubbler/internal/glyph"
	"github.com/ruuzia/fractabubbler/internal/packing"
	"github.com/ruuzia/fractabubbler/internal/raster"
)

// Fallbacks for job fields that are unset both in the job and in the
// runner's defaults.
const (
	DefaultHeight    = 256
	DefaultMinRadius = 5
)

// Job is one batch request: text to render and optional overrides for the
// runner's defaults. Zero-valued fields fall back to the defaults.
type Job struct {
	// Text is the string to bubble. Required.
	Text string `json:"text"`

	// Font is a path to a TrueType or OpenType file. Empty selects the
	// built-in font.
	Font string `json:"font,omitempty"`

	// Height is the rendered glyph height in pixels.
	Height int `json:"height,omitempty"`

	// MinRadius stops extraction once the best circle is smaller.
	MinRadius int `json:"minRadius,omitempty"`

	// MaxRadius caps the first circle's search radius. Zero derives the
	// cap from the rendered size.
	MaxRadius int `json:"maxRadius,omitempty"`

	// Strategy names the probe: "distance" or "ring".
	Strategy string `json:"strategy,omitempty"`
}

// Result is the outcome of one job, written as a single JSON line.
type Result struct {
	Text    string           `json:"text"`
	Width   int              `json:"width"`
	Height  int              `json:"height"`
	Circles []packing.Circle `json:"circles"`
	Error   string           `json:"error,omitempty"`
}

// Defaults supplies the values used for job fields left unset.
type Defaults struct {
	Font      string
	Height    int
	MinRadius int
	MaxRadius int
	Strategy  packing.Strategy
}

// Runner executes extraction jobs. Fonts are parsed once and cached across
// jobs, so batches that reuse a font only pay the parse cost once.
type Runner struct {
	defaults Defaults
	log      *slog.Logger
	fonts    *glyph.FontCache
}

// NewRunner creates a Runner with the given defaults. Unset default height
// and minimum radius fall back to DefaultHeight and DefaultMinRadius. A nil
// logger disables logging.
func NewRunner(defaults Defaults, logger *slog.Logger) *Runner {
	if defaults.Height < 1 {
		defaults.Height = DefaultHeight
	}
	if defaults.MinRadius < 1 {
		defaults.MinRadius = DefaultMinRadius
	}
	if logger == nil {
		logger = nopLogger
	}
	return &Runner{
		defaults: defaults,
		log:      logger,
		fonts:    glyph.NewFontCache(),
	}
}

// Run reads line-delimited JSON jobs from in until EOF and writes one JSON
// result line per job to out, in input order. Empty lines are ignored and
// unparseable lines are logged and skipped.
func (r *Runner) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	// Increase buffer size for large jobs
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var job Job
		if err := json.Unmarshal(line, &job); err != nil {
			r.log.Warn("skipping malformed job line", "error", err)
			continue
		}

		result := r.runJob(&job)
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read job stream: %w", err)
	}

	return nil
}

// runJob executes one job, folding any failure into the result so the
// batch keeps going.
func (r *Runner) runJob(job *Job) *Result {
	result, err := r.process(job)
	if err != nil {
		r.log.Warn("job failed", "text", job.Text, "error", err)
		return &Result{Text: job.Text, Circles: []packing.Circle{}, Error: err.Error()}
	}
	r.log.Info("job complete", "text", result.Text, "circles", len(result.Circles))
	return result
}

func (r *Runner) process(job *Job) (*Result, error) {
	text := job.Text
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("job has no text")
	}

	fontPath := job.Font
	if fontPath == "" {
		fontPath = r.defaults.Font
	}
	height := job.Height
	if height < 1 {
		height = r.defaults.Height
	}
	minRadius := job.MinRadius
	if minRadius < 1 {
		minRadius = r.defaults.MinRadius
	}
	maxRadius := job.MaxRadius
	if maxRadius < 1 {
		maxRadius = r.defaults.MaxRadius
	}
	strategy := r.defaults.Strategy
	if job.Strategy != "" {
		var err error
		if strategy, err = packing.ParseStrategy(job.Strategy); err != nil {
			return nil, err
		}
	}

	fnt, err := r.fonts.Load(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	renderer, err := glyph.NewRenderer(fnt, height)
	if err != nil {
		return nil, err
	}
	defer renderer.Close()

	alpha, err := renderer.Render(text)
	if err != nil {
		return nil, err
	}
	mask := raster.FromAlpha(alpha)

	extractor := packing.Extractor{
		MinRadius:     minRadius,
		MaxRadiusHint: maxRadius,
		Strategy:      strategy,
		Logger:        r.log,
	}
	circles, err := extractor.Extract(mask)
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:    text,
		Width:   mask.Width,
		Height:  mask.Height,
		Circles: circles,
	}, nil
}
