// Package ocr verifies rendered output with the Tesseract OCR engine.
//
// Circle extraction is intentionally lossy, and this package answers the
// practical question that leaves open: is the bubbled rendering still
// readable as the text it came from? Verify runs an image through Tesseract
// constrained to the characters it should contain and reports what the
// engine recognized.
//
// # Prerequisites
//
// Tesseract and its English training data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// # Build Modes
//
// gosseract binds to the native Tesseract libraries and requires cgo. When
// the binary is built with CGO_ENABLED=0 this package compiles to a stub:
// Available reports false and Verify returns ErrUnavailable. Callers that
// treat verification as optional should check Available first or test the
// returned error with errors.Is.
//
// # Recognition Setup
//
// Verify biases the engine toward the expected answer: page segmentation is
// set to single-character or single-word mode depending on the input length,
// and the character whitelist is restricted to the expected runes in both
// letter cases. A clean rendering that still fails under these conditions is
// a strong signal that too much ink was lost.
package ocr
