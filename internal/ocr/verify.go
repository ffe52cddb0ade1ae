//go:build cgo

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"unicode/utf8"

	"github.com/otiai10/gosseract/v2"
)

// Available reports whether an OCR engine is compiled into this binary.
func Available() bool { return true }

// Verify runs img through Tesseract and compares the result to expected.
//
// The engine is configured for the job at hand: single-character page
// segmentation when expected is one rune, single-word segmentation
// otherwise, and a character whitelist built from expected so the engine
// cannot wander off into the rest of the alphabet.
//
// Parameters:
//   - img: the rendered image, dark ink on a light background
//   - expected: the text the image was rendered from
//
// Returns a Report even when the text does not match; the error is non-nil
// only when the engine itself could not run.
func Verify(img image.Image, expected string) (*Report, error) {
	expected = normalize(expected)
	if expected == "" {
		return nil, fmt.Errorf("nothing to verify: expected text is empty")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	mode := gosseract.PSM_SINGLE_WORD
	if utf8.RuneCountInString(expected) == 1 {
		mode = gosseract.PSM_SINGLE_CHAR
	}
	if err := client.SetPageSegMode(mode); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if wl := Whitelist(expected); wl != "" {
		if err := client.SetWhitelist(wl); err != nil {
			return nil, fmt.Errorf("failed to set whitelist: %w", err)
		}
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	report := &Report{
		Expected:   expected,
		Recognized: normalize(text),
		Legible:    matches(text, expected),
	}

	// Symbol confidences are best effort; some Tesseract builds cannot
	// produce iterator boxes and the report is still useful without them.
	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_SYMBOL); err == nil && len(boxes) > 0 {
		var sum float64
		for _, box := range boxes {
			sum += box.Confidence
		}
		report.Confidence = sum / float64(len(boxes)) / 100.0
	}

	return report, nil
}
