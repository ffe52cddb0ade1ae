// Command fractabubbler approximates text and images with filled circles.
//
// Each glyph of -text (or the picture named by -image) is rasterized,
// greedily covered with maximal circles, and written out as an SVG document.
// With -pipe the tool instead processes JSON jobs from stdin, one per line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/image/font/sfnt"

	"github.com/ruuzia/fractabubbler/internal/glyph"
	"github.com/ruuzia/fractabubbler/internal/ocr"
	"github.com/ruuzia/fractabubbler/internal/packing"
	"github.com/ruuzia/fractabubbler/internal/pipeline"
	"github.com/ruuzia/fractabubbler/internal/raster"
	"github.com/ruuzia/fractabubbler/internal/render"
	"github.com/ruuzia/fractabubbler/internal/svg"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type config struct {
	text      string
	imagePath string
	pipe      bool

	font      string
	height    int
	minRadius int
	maxRadius int
	strategy  string

	outDir  string
	fill    string
	palette string
	png     bool
	debug   bool
	verify  bool

	threshold int
	trim      bool
}

func main() {
	var (
		cfg     config
		verbose bool
		version bool
	)

	flag.StringVar(&cfg.text, "text", "", "text to bubble, one SVG per rune")
	flag.StringVar(&cfg.imagePath, "image", "", "image file to bubble instead of text")
	flag.BoolVar(&cfg.pipe, "pipe", false, "read JSON jobs from stdin and write JSON results to stdout")
	flag.StringVar(&cfg.font, "font", "", "TTF/OTF font file (default: embedded Go Regular)")
	flag.IntVar(&cfg.height, "height", pipeline.DefaultHeight, "rendered height in pixels")
	flag.IntVar(&cfg.minRadius, "min-radius", pipeline.DefaultMinRadius, "stop once the best remaining circle is smaller than this")
	flag.IntVar(&cfg.maxRadius, "max-radius", 0, "cap on the first circle's radius (0 = derive from size)")
	flag.StringVar(&cfg.strategy, "strategy", "distance", `radius probe: "distance" or "ring"`)
	flag.StringVar(&cfg.outDir, "out", ".", "output directory")
	flag.StringVar(&cfg.fill, "fill", svg.DefaultFill, "SVG fill color")
	flag.StringVar(&cfg.palette, "palette", "none", `per-circle colors: "none", "happy", "warm" or "soft"`)
	flag.BoolVar(&cfg.png, "png", false, "also write a PNG rendering of the circles")
	flag.BoolVar(&cfg.debug, "debug", false, "write before/after masks and a circle overlay")
	flag.BoolVar(&cfg.verify, "verify", false, "OCR the rendering and report legibility")
	flag.IntVar(&cfg.threshold, "threshold", int(raster.DefaultInkLevel), "ink level for -image input (0-255)")
	flag.BoolVar(&cfg.trim, "trim", false, "crop -image input to its ink bounding box")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.BoolVar(&version, "version", false, "print version information")
	flag.Parse()

	if version {
		fmt.Printf("fractabubbler %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Log to stderr; stdout is reserved for pipe-mode results
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(&cfg, logger); err != nil {
		logger.Error("fractabubbler failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config, logger *slog.Logger) error {
	strategy, err := packing.ParseStrategy(cfg.strategy)
	if err != nil {
		return err
	}

	modes := 0
	if cfg.pipe {
		modes++
	}
	if cfg.imagePath != "" {
		modes++
	}
	if cfg.text != "" {
		modes++
	}
	if modes == 0 {
		return fmt.Errorf("nothing to do: pass -text, -image or -pipe")
	}
	if modes > 1 {
		return fmt.Errorf("pass only one of -text, -image or -pipe")
	}

	switch {
	case cfg.pipe:
		return runPipe(cfg, strategy, logger)
	case cfg.imagePath != "":
		return runImage(cfg, strategy, logger)
	default:
		return runText(cfg, strategy, logger)
	}
}

// runPipe hands stdin/stdout to the batch runner; the CLI flags become the
// per-job defaults.
func runPipe(cfg *config, strategy packing.Strategy, logger *slog.Logger) error {
	runner := pipeline.NewRunner(pipeline.Defaults{
		Font:      cfg.font,
		Height:    cfg.height,
		MinRadius: cfg.minRadius,
		MaxRadius: cfg.maxRadius,
		Strategy:  strategy,
	}, logger)
	return runner.Run(os.Stdin, os.Stdout)
}

// runText bubbles each rune of -text into its own SVG document.
func runText(cfg *config, strategy packing.Strategy, logger *slog.Logger) error {
	fnt, err := loadFont(cfg.font)
	if err != nil {
		return err
	}
	renderer, err := glyph.NewRenderer(fnt, cfg.height)
	if err != nil {
		return err
	}
	defer renderer.Close()

	if err := os.MkdirAll(cfg.outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, r := range cfg.text {
		if unicode.IsSpace(r) {
			logger.Debug("skipping whitespace rune")
			continue
		}

		alpha, err := renderer.Render(string(r))
		if err != nil {
			return fmt.Errorf("failed to render %q: %w", r, err)
		}

		base := filepath.Join(cfg.outDir, runeBaseName(r))
		if err := bubbleMask(cfg, raster.FromAlpha(alpha), base, string(r), strategy, logger); err != nil {
			return fmt.Errorf("failed to bubble %q: %w", r, err)
		}
	}
	return nil
}

// runImage bubbles a picture instead of rendered text.
func runImage(cfg *config, strategy packing.Strategy, logger *slog.Logger) error {
	if cfg.threshold < 0 || cfg.threshold > 255 {
		return fmt.Errorf("threshold %d out of range 0-255", cfg.threshold)
	}
	if cfg.verify {
		logger.Warn("verification needs rendered text to compare against; skipping for -image")
	}

	mask, err := raster.Load(cfg.imagePath, raster.LoadOptions{
		HeightPx: cfg.height,
		InkLevel: uint8(cfg.threshold),
		Trim:     cfg.trim,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	name := filepath.Base(cfg.imagePath)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		stem = "image"
	}
	base := filepath.Join(cfg.outDir, stem)

	if cfg.png && filepath.Clean(base+".png") == filepath.Clean(cfg.imagePath) {
		return fmt.Errorf("-png would overwrite input %s; pass a different -out", cfg.imagePath)
	}

	return bubbleMask(cfg, mask, base, "", strategy, logger)
}

// bubbleMask runs extraction on mask and writes every requested artifact
// under the path stem base. An empty expected skips verification.
func bubbleMask(cfg *config, mask *raster.Mask, base, expected string, strategy packing.Strategy, logger *slog.Logger) error {
	var before *raster.Mask
	if cfg.debug {
		before = mask.Clone()
	}

	extractor := packing.Extractor{
		MinRadius:     cfg.minRadius,
		MaxRadiusHint: cfg.maxRadius,
		Strategy:      strategy,
		Logger:        logger,
	}
	circles, err := extractor.Extract(mask)
	if err != nil {
		return err
	}
	logger.Info("extracted circles", "output", base+".svg", "count", len(circles))

	fill, err := fillFunc(cfg, len(circles))
	if err != nil {
		return err
	}

	if err := writeSVG(base+".svg", mask.Width, mask.Height, circles, fill); err != nil {
		return err
	}

	if cfg.debug {
		if err := before.SavePNG(base + ".before.png"); err != nil {
			return err
		}
		if err := mask.SavePNG(base + ".after.png"); err != nil {
			return err
		}
		if err := render.SavePNG(base+".overlay.png", render.Overlay(before, circles)); err != nil {
			return err
		}
	}

	if cfg.png || (cfg.verify && expected != "") {
		img, err := render.Draw(mask.Width, mask.Height, circles, fill)
		if err != nil {
			return err
		}
		if cfg.png {
			if err := render.SavePNG(base+".png", img); err != nil {
				return err
			}
		}
		if cfg.verify && expected != "" {
			verifyRendering(logger, img, expected)
		}
	}

	return nil
}

// loadFont resolves the -font flag, falling back to the embedded face.
func loadFont(path string) (*sfnt.Font, error) {
	if path == "" {
		return glyph.DefaultFont()
	}
	return glyph.LoadFont(path)
}

// fillFunc builds the per-circle color callback from -fill and -palette.
func fillFunc(cfg *config, n int) (svg.FillFunc, error) {
	if cfg.palette == "" || cfg.palette == "none" {
		return svg.FixedFill(cfg.fill)
	}
	return svg.PaletteFill(cfg.palette, n)
}

// runeBaseName returns the output file stem for r. Letters and digits name
// the file directly; everything else is spelled as its code point so shells
// and filesystems stay happy.
func runeBaseName(r rune) string {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return string(r)
	}
	return fmt.Sprintf("U+%04X", r)
}

func writeSVG(path string, width, height int, circles []packing.Circle, fill svg.FillFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := svg.WriteDocument(f, width, height, circles, fill); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// verifyRendering OCRs the rendering and logs the outcome. Verification is
// advisory, so engine problems and illegible results warn instead of
// failing the run.
func verifyRendering(logger *slog.Logger, img image.Image, expected string) {
	report, err := ocr.Verify(img, expected)
	if errors.Is(err, ocr.ErrUnavailable) {
		logger.Warn("skipping verification", "error", err)
		return
	}
	if err != nil {
		logger.Warn("verification could not run", "error", err)
		return
	}
	if report.Legible {
		logger.Info("verified rendering", "report", report)
	} else {
		logger.Warn("rendering may not be legible", "report", report)
	}
}
