package builders

import (
	"io"

	"github.com/MeKo-Tech/hocrkit/internal/hocr"
)

// CharBoxBuilder produces one raw box per recognized character from
// tesseract's makebox output. Character boxes never carry a confidence.
type CharBoxBuilder struct {
	opts  options
	chars []hocr.Box
}

// NewCharBoxBuilder returns a character-box builder.
func NewCharBoxBuilder(opts ...Option) *CharBoxBuilder {
	return &CharBoxBuilder{opts: newOptions(1, opts...)}
}

func (b *CharBoxBuilder) Name() string         { return "character boxes" }
func (b *CharBoxBuilder) String() string       { return b.Name() }
func (b *CharBoxBuilder) Extensions() []string { return []string{"box"} }

func (b *CharBoxBuilder) TesseractFlags() []string { return b.opts.tesseractFlags() }

func (b *CharBoxBuilder) TesseractConfigs() []string {
	return b.opts.tesseractConfigs("batch.nochop", "makebox")
}

// CuneiformArgs is empty: cuneiform has no makebox equivalent.
func (b *CharBoxBuilder) CuneiformArgs() []string { return nil }

func (b *CharBoxBuilder) RequiredCapabilities() []Capability {
	return append(b.opts.capabilities(), CapabilityCharBoxes)
}

// Read parses makebox output into character boxes.
func (b *CharBoxBuilder) Read(r io.Reader) ([]hocr.Box, error) {
	return hocr.ParseBoxFile(r)
}

// Write renders character boxes back into makebox form.
func (b *CharBoxBuilder) Write(w io.Writer, boxes []hocr.Box) error {
	return hocr.WriteBoxFile(w, boxes)
}

// StartLine is a no-op; character boxes have no line grouping.
func (b *CharBoxBuilder) StartLine(_ hocr.Rect) {}

// AddWord appends one box covering the whole token; engines reporting
// token-level results do not split them further here.
func (b *CharBoxBuilder) AddWord(word string, pos hocr.Rect, _ int) {
	b.chars = append(b.chars, hocr.Box{Content: word, Position: pos})
}

// EndLine is a no-op; character boxes have no line grouping.
func (b *CharBoxBuilder) EndLine() {}

// Output returns the boxes built incrementally so far.
func (b *CharBoxBuilder) Output() []hocr.Box { return b.chars }
