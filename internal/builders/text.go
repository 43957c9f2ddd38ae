package builders

import (
	"io"
	"strings"

	"github.com/MeKo-Tech/hocrkit/internal/hocr"
)

// TextBuilder produces the engine's raw text output as a single string.
type TextBuilder struct {
	opts  options
	name  string
	built []string
}

// NewTextBuilder returns a text builder. The default page segmentation
// layout is 3 (fully automatic, no orientation detection).
func NewTextBuilder(opts ...Option) *TextBuilder {
	o := newOptions(3, opts...)
	name := "raw text"
	if o.digits {
		name = "digits raw text"
	}
	return &TextBuilder{opts: o, name: name}
}

// NewDigitBuilder returns a text builder configured for digit-only
// recognition. It only layers the "digits" configuration token on top of
// NewTextBuilder; parsing is unchanged. Pairing it with an engine lacking
// CapabilityDigits must be rejected via EnsureSupported.
func NewDigitBuilder(opts ...Option) *TextBuilder {
	return NewTextBuilder(append([]Option{WithDigits()}, opts...)...)
}

func (b *TextBuilder) Name() string         { return b.name }
func (b *TextBuilder) String() string       { return b.name }
func (b *TextBuilder) Extensions() []string { return []string{"txt"} }

func (b *TextBuilder) TesseractFlags() []string   { return b.opts.tesseractFlags() }
func (b *TextBuilder) TesseractConfigs() []string { return b.opts.tesseractConfigs() }
func (b *TextBuilder) CuneiformArgs() []string    { return b.opts.cuneiformArgs("text") }

func (b *TextBuilder) RequiredCapabilities() []Capability { return b.opts.capabilities() }

// Read returns the complete output document as a single string, trimmed of
// surrounding whitespace. Invalid UTF-8 is replaced, never rejected.
func (b *TextBuilder) Read(r io.Reader) (string, error) {
	content, err := hocr.DecodeAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// Write stores previously read text.
func (b *TextBuilder) Write(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}

// StartLine opens a new output line. For text output an empty line is a
// meaningful paragraph break, so this is unconditional.
func (b *TextBuilder) StartLine(_ hocr.Rect) {
	b.built = append(b.built, "")
}

// AddWord appends a word to the current line, separated by a single space.
// The box and confidence are irrelevant for text output.
func (b *TextBuilder) AddWord(word string, _ hocr.Rect, _ int) {
	if len(b.built) == 0 {
		b.built = append(b.built, "")
	}
	last := len(b.built) - 1
	if b.built[last] != "" {
		b.built[last] += " "
	}
	b.built[last] += word
}

// EndLine completes the current line.
func (b *TextBuilder) EndLine() {}

// Output returns the text built incrementally so far.
func (b *TextBuilder) Output() string {
	return strings.Join(b.built, "\n")
}
