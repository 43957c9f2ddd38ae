// Package builders couples OCR engine invocation parameters to the parser
// needed to interpret the engine's output. Each builder is a strategy for
// one output shape: raw text, word boxes, line boxes or character boxes.
package builders

import (
	"errors"
	"fmt"

	"github.com/MeKo-Tech/hocrkit/internal/hocr"
)

// Capability names an optional feature of an OCR engine collaborator.
// Builders advertise the capabilities their configuration depends on;
// callers check them against the engine before invoking it. The builders
// themselves never perform the check.
type Capability string

const (
	// CapabilityDigits marks engines able to restrict recognition to
	// digit-like characters (Tesseract's "digits" config).
	CapabilityDigits Capability = "digits"

	// CapabilityCharBoxes marks engines able to emit per-character box
	// files (Tesseract's makebox mode).
	CapabilityCharBoxes Capability = "char-boxes"
)

// ErrUnsupported reports a builder configuration the selected engine cannot
// express, e.g. digits-only mode on an engine without that notion.
var ErrUnsupported = errors.New("unsupported builder configuration")

// ErrNoOutput is how an engine collaborator's failure reaches this layer:
// the process failed or left no valid output document behind. The cause
// (exit status, timeout, missing binary) is the collaborator's concern.
var ErrNoOutput = errors.New("no valid OCR output document found")

// Builder is the shared surface of every output-format strategy. The
// output shape is fixed per concrete builder and never depends on input
// content; the typed Read/Write and incremental methods live on the
// concrete types.
type Builder interface {
	// Name identifies the builder in logs and CLI output.
	Name() string

	// Extensions lists the output file extensions to probe when locating
	// engine output on disk, in order of preference. The first existing
	// file wins.
	Extensions() []string

	// TesseractFlags returns command-line flags passed verbatim to
	// tesseract; this layer does not interpret them.
	TesseractFlags() []string

	// TesseractConfigs returns configuration tokens appended to the
	// tesseract invocation (e.g. "hocr", "digits").
	TesseractConfigs() []string

	// CuneiformArgs returns arguments passed verbatim to cuneiform. Empty
	// when the builder's output shape has no cuneiform equivalent.
	CuneiformArgs() []string

	// RequiredCapabilities lists the engine capabilities this builder's
	// configuration depends on.
	RequiredCapabilities() []Capability
}

// EnsureSupported verifies that the engine capabilities cover everything
// the builder requires and returns a wrapped ErrUnsupported naming the
// first missing capability otherwise.
func EnsureSupported(b Builder, engine ...Capability) error {
	have := make(map[Capability]struct{}, len(engine))
	for _, c := range engine {
		have[c] = struct{}{}
	}
	for _, c := range b.RequiredCapabilities() {
		if _, ok := have[c]; !ok {
			return fmt.Errorf("%s requires engine capability %q: %w", b.Name(), c, ErrUnsupported)
		}
	}
	return nil
}

// trimTrailingEmpty drops the zero-content box some engines leave at the
// end of a document.
func trimTrailingEmpty(boxes []hocr.Box) []hocr.Box {
	if n := len(boxes); n > 0 && boxes[n-1].Content == "" {
		return boxes[:n-1]
	}
	return boxes
}
