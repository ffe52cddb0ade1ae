package ocr

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnavailable reports that no OCR engine was compiled into this binary.
// See the package documentation for build requirements.
var ErrUnavailable = errors.New("tesseract support not compiled in (rebuild with CGO_ENABLED=1)")

// Report is the outcome of verifying one rendered image.
type Report struct {
	// Expected is the text the image was rendered from.
	Expected string `json:"expected"`

	// Recognized is what Tesseract read back, with whitespace collapsed.
	Recognized string `json:"recognized"`

	// Legible is true when Recognized matches Expected ignoring case.
	Legible bool `json:"legible"`

	// Confidence is the mean symbol confidence (0.0 to 1.0). It stays 0
	// when the engine reports no symbol boxes.
	Confidence float64 `json:"confidence"`
}

// String formats the report for log output.
func (r *Report) String() string {
	return fmt.Sprintf("expected %q, recognized %q (legible=%t, confidence=%.2f)",
		r.Expected, r.Recognized, r.Legible, r.Confidence)
}

// Whitelist returns the recognition whitelist for expected: each rune in
// both letter cases, deduplicated, in first-seen order. Whitespace runes
// are dropped. An empty result means no whitelist should be applied.
func Whitelist(expected string) string {
	seen := make(map[rune]bool)
	var b strings.Builder
	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			b.WriteRune(r)
		}
	}
	for _, r := range expected {
		if unicode.IsSpace(r) {
			continue
		}
		add(unicode.ToLower(r))
		add(unicode.ToUpper(r))
	}
	return b.String()
}

// normalize collapses runs of whitespace to single spaces and trims the
// ends. Tesseract output routinely carries trailing newlines.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// matches reports whether recognized text means the same as expected,
// ignoring case and whitespace differences.
func matches(recognized, expected string) bool {
	return strings.EqualFold(normalize(recognized), normalize(expected))
}
