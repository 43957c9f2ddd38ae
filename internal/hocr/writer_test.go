package hocr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWordsDocumentShape(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWords(&buf, []Box{
		{Content: "Hello", Position: Rect{36, 92, 96, 116}, Confidence: 91},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html PUBLIC"))
	assert.Contains(t, out, "<body>")
	assert.Contains(t, out,
		`<span class="ocrx_word" title="bbox 36 92 96 116; x_wconf 91">Hello</span>`)
	assert.True(t, strings.HasSuffix(out, "</body>\n</html>\n"))
}

func TestWriteWordsEscapesContent(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWords(&buf, []Box{
		{Content: "a<b&c", Position: Rect{0, 0, 10, 10}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "a&lt;b&amp;c")
}

func TestWriteLinesNestsWordSpans(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLines(&buf, []LineBox{lineFixture()})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<span class="ocr_line" title="bbox 0 0 90 10">`)
	assert.Contains(t, out,
		`>Hello</span> <span class="ocrx_word" title="bbox 50 0 90 10; x_wconf 85">World<`)
}

func TestWriteWordsRoundTrip(t *testing.T) {
	in := []Box{
		{Content: "Hello", Position: Rect{36, 92, 96, 116}, Confidence: 91},
		{Content: "World", Position: Rect{109, 92, 174, 116}, Confidence: 87},
		{Content: "12.5", Position: Rect{36, 160, 80, 184}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWords(&buf, in))

	words, _, err := ParseWords(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, words)
}

func TestWriteLinesRoundTrip(t *testing.T) {
	in := []LineBox{
		lineFixture(),
		{
			Words:    []Box{{Content: "again", Position: Rect{0, 20, 40, 30}, Confidence: 60}},
			Position: Rect{0, 20, 40, 30},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, in))

	words, lines, err := ParseWords(&buf)
	require.NoError(t, err)
	assert.Len(t, words, 3)
	assert.Equal(t, in, lines)
}

func TestWrittenDocumentNotReadableByCharParser(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWords(&buf, []Box{
		{Content: "word", Position: Rect{0, 0, 10, 10}},
	}))

	words, _, err := ParseCharBoxes(&buf)
	require.NoError(t, err)
	assert.Empty(t, words, "the character-position dialect is read-only input")
}
