package builders

import (
	"io"
	"log/slog"
	"strings"

	"github.com/MeKo-Tech/hocrkit/internal/hocr"
)

// WordBoxBuilder produces one box per recognized word, in document order.
type WordBoxBuilder struct {
	opts  options
	words []hocr.Box
}

// NewWordBoxBuilder returns a word-box builder. The default page
// segmentation layout is 1 (automatic with orientation detection).
func NewWordBoxBuilder(opts ...Option) *WordBoxBuilder {
	return &WordBoxBuilder{opts: newOptions(1, opts...)}
}

func (b *WordBoxBuilder) Name() string         { return "word boxes" }
func (b *WordBoxBuilder) String() string       { return b.Name() }
func (b *WordBoxBuilder) Extensions() []string { return []string{"html", "hocr"} }

func (b *WordBoxBuilder) TesseractFlags() []string   { return b.opts.tesseractFlags() }
func (b *WordBoxBuilder) TesseractConfigs() []string { return b.opts.tesseractConfigs("hocr") }
func (b *WordBoxBuilder) CuneiformArgs() []string    { return b.opts.cuneiformArgs("hocr") }

func (b *WordBoxBuilder) RequiredCapabilities() []Capability { return b.opts.capabilities() }

// Read parses a complete output document into word boxes. The
// Tesseract-style dialect is authoritative whenever it yields at least one
// box; otherwise the character-position dialect is tried, and its result,
// possibly empty, is final. Zero boxes from both is an empty result, not
// an error: the page may contain no recognizable text.
func (b *WordBoxBuilder) Read(r io.Reader) ([]hocr.Box, error) {
	content, err := hocr.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	words, _, err := hocr.ParseWords(strings.NewReader(content))
	if err != nil {
		slog.Debug("tesseract-dialect parse failed, falling back to character positions",
			"error", err)
	}
	if len(words) > 0 {
		return trimTrailingEmpty(words), nil
	}
	words, _, err = hocr.ParseCharBoxes(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	return trimTrailingEmpty(words), nil
}

// Write serializes word boxes into a minimal hOCR document.
func (b *WordBoxBuilder) Write(w io.Writer, boxes []hocr.Box) error {
	return hocr.WriteWords(w, boxes)
}

// StartLine is a no-op; word-box output has no line grouping.
func (b *WordBoxBuilder) StartLine(_ hocr.Rect) {}

// AddWord appends a word box to the output.
func (b *WordBoxBuilder) AddWord(word string, pos hocr.Rect, confidence int) {
	b.words = append(b.words, hocr.Box{Content: word, Position: pos, Confidence: confidence})
}

// EndLine is a no-op; word-box output has no line grouping.
func (b *WordBoxBuilder) EndLine() {}

// Output returns the word boxes built incrementally so far.
func (b *WordBoxBuilder) Output() []hocr.Box { return b.words }
