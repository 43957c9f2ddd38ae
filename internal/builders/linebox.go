package builders

import (
	"io"
	"log/slog"
	"strings"

	"github.com/MeKo-Tech/hocrkit/internal/hocr"
)

// LineBoxBuilder produces line boxes, each grouping the word boxes of one
// text line.
type LineBoxBuilder struct {
	opts  options
	name  string
	lines []hocr.LineBox
}

// NewLineBoxBuilder returns a line-box builder. The default page
// segmentation layout is 1 (automatic with orientation detection).
func NewLineBoxBuilder(opts ...Option) *LineBoxBuilder {
	o := newOptions(1, opts...)
	name := "line boxes"
	if o.digits {
		name = "digit line boxes"
	}
	return &LineBoxBuilder{opts: o, name: name}
}

// NewDigitLineBoxBuilder returns a line-box builder configured for
// digit-only recognition, layering only the "digits" configuration token;
// parsing is unchanged.
func NewDigitLineBoxBuilder(opts ...Option) *LineBoxBuilder {
	return NewLineBoxBuilder(append([]Option{WithDigits()}, opts...)...)
}

func (b *LineBoxBuilder) Name() string         { return b.name }
func (b *LineBoxBuilder) String() string       { return b.name }
func (b *LineBoxBuilder) Extensions() []string { return []string{"html", "hocr"} }

func (b *LineBoxBuilder) TesseractFlags() []string   { return b.opts.tesseractFlags() }
func (b *LineBoxBuilder) TesseractConfigs() []string { return b.opts.tesseractConfigs("hocr") }
func (b *LineBoxBuilder) CuneiformArgs() []string    { return b.opts.cuneiformArgs("hocr") }

func (b *LineBoxBuilder) RequiredCapabilities() []Capability { return b.opts.capabilities() }

// Read parses a complete output document into line boxes. When the
// Tesseract-style dialect yields nothing, each word box reconstructed from
// the character-position dialect is wrapped as a singleton line whose
// position is the box's own; that dialect reports no true line extents, so
// this approximation is the best available.
func (b *LineBoxBuilder) Read(r io.Reader) ([]hocr.LineBox, error) {
	content, err := hocr.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	words, lines, err := hocr.ParseWords(strings.NewReader(content))
	if err != nil {
		slog.Debug("tesseract-dialect parse failed, falling back to character positions",
			"error", err)
	}
	if len(words) > 0 {
		return lines, nil
	}
	words, _, err = hocr.ParseCharBoxes(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	words = trimTrailingEmpty(words)
	wrapped := make([]hocr.LineBox, 0, len(words))
	for _, w := range words {
		wrapped = append(wrapped, hocr.LineBox{Words: []hocr.Box{w}, Position: w.Position})
	}
	return wrapped, nil
}

// Write serializes line boxes into a minimal hOCR document.
func (b *LineBoxBuilder) Write(w io.Writer, lines []hocr.LineBox) error {
	return hocr.WriteLines(w, lines)
}

// StartLine opens a new line at the given position, unless the previous
// line is still empty; repeated StartLine calls never pile up empty lines.
func (b *LineBoxBuilder) StartLine(pos hocr.Rect) {
	if n := len(b.lines); n > 0 && b.lines[n-1].Content() == "" {
		return
	}
	b.lines = append(b.lines, hocr.LineBox{Position: pos})
}

// AddWord appends a word box to the open line, opening one at the word's
// position if StartLine was never called.
func (b *LineBoxBuilder) AddWord(word string, pos hocr.Rect, confidence int) {
	if len(b.lines) == 0 {
		b.lines = append(b.lines, hocr.LineBox{Position: pos})
	}
	n := len(b.lines) - 1
	b.lines[n].Words = append(b.lines[n].Words, hocr.Box{
		Content:    word,
		Position:   pos,
		Confidence: confidence,
	})
}

// EndLine completes the current line.
func (b *LineBoxBuilder) EndLine() {}

// Output returns the lines built incrementally so far. A line that was
// opened but never received a word is not part of the output.
func (b *LineBoxBuilder) Output() []hocr.LineBox {
	out := make([]hocr.LineBox, 0, len(b.lines))
	for _, l := range b.lines {
		if len(l.Words) == 0 {
			continue
		}
		out = append(out, l)
	}
	return out
}
