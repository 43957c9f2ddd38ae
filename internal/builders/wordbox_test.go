package builders

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/hocrkit/internal/hocr"
)

const tesseractDoc = `<body>
 <span class="ocr_line" title="bbox 36 92 619 116">
  <span class="ocrx_word" title="bbox 36 92 96 116; x_wconf 91">Hello</span>
  <span class="ocrx_word" title="bbox 109 92 174 116; x_wconf 87">World</span>
 </span>
 <span class="ocr_line" title="bbox 36 160 619 184">
  <span class="ocrx_word" title="bbox 36 160 120 184">again</span>
 </span>
</body>`

const cuneiformDoc = `<body>
<p><span class=ocr_line>Hello World</span><span class=ocr_cinfo title="x_bboxes 0 0 10 10 10 0 20 10 20 0 30 10 30 0 40 10 40 0 50 10 -1 -1 -1 -1 60 0 70 10 70 0 80 10 80 0 90 10 90 0 100 10 100 0 110 10"></span></p>
</body>`

func TestWordBoxBuilderParams(t *testing.T) {
	b := NewWordBoxBuilder()

	assert.Equal(t, "word boxes", b.Name())
	assert.Equal(t, []string{"html", "hocr"}, b.Extensions())
	assert.Equal(t, []string{"--psm", "1"}, b.TesseractFlags())
	assert.Equal(t, []string{"hocr"}, b.TesseractConfigs())
	assert.Equal(t, []string{"-f", "hocr"}, b.CuneiformArgs())
	assert.Empty(t, b.RequiredCapabilities())
}

func TestWordBoxBuilderDigitsConfig(t *testing.T) {
	b := NewWordBoxBuilder(WithDigits())
	assert.Equal(t, []string{"hocr", "digits"}, b.TesseractConfigs())
	assert.Equal(t, []Capability{CapabilityDigits}, b.RequiredCapabilities())
}

func TestWordBoxBuilderReadTesseractDialect(t *testing.T) {
	b := NewWordBoxBuilder()
	words, err := b.Read(strings.NewReader(tesseractDoc))
	require.NoError(t, err)

	require.Len(t, words, 3)
	assert.Equal(t, "Hello", words[0].Content)
	assert.Equal(t, 91, words[0].Confidence)
	assert.Equal(t, "again", words[2].Content)
}

func TestWordBoxBuilderReadFallsBackToCharPositions(t *testing.T) {
	b := NewWordBoxBuilder()
	words, err := b.Read(strings.NewReader(cuneiformDoc))
	require.NoError(t, err)

	require.Len(t, words, 2)
	assert.Equal(t, "Hello", words[0].Content)
	assert.Equal(t, hocr.Rect{MinX: 0, MinY: 0, MaxX: 50, MaxY: 10}, words[0].Position)
	assert.Equal(t, "World", words[1].Content)
}

func TestWordBoxBuilderReadBadLineBBoxFallsBack(t *testing.T) {
	doc := `<span class="ocr_line" title="no bbox here">
	 <span class="ocrx_word" title="bbox 0 0 40 10">lost</span>
	</span>` + cuneiformDoc

	b := NewWordBoxBuilder()
	words, err := b.Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, words, 2, "a broken line bbox discards the whole dialect")
	assert.Equal(t, "Hello", words[0].Content)
}

func TestWordBoxBuilderReadPlainTextIsEmpty(t *testing.T) {
	b := NewWordBoxBuilder()
	words, err := b.Read(strings.NewReader("no markup at all"))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestWordBoxBuilderReadTrimsTrailingEmptyBox(t *testing.T) {
	doc := `<span class="ocr_line" title="bbox 0 0 100 10">
	 <span class="ocrx_word" title="bbox 0 0 40 10">word</span>
	 <span class="ocrx_word" title="bbox 90 0 100 10"></span>
	</span>`

	b := NewWordBoxBuilder()
	words, err := b.Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "word", words[0].Content)
}

func TestWordBoxBuilderWriteReadRoundTrip(t *testing.T) {
	in := []hocr.Box{
		{Content: "Hello", Position: hocr.Rect{MinX: 36, MinY: 92, MaxX: 96, MaxY: 116}, Confidence: 91},
		{Content: "World", Position: hocr.Rect{MinX: 109, MinY: 92, MaxX: 174, MaxY: 116}, Confidence: 87},
	}

	b := NewWordBoxBuilder()
	var buf bytes.Buffer
	require.NoError(t, b.Write(&buf, in))

	out, err := b.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWordBoxBuilderIncremental(t *testing.T) {
	b := NewWordBoxBuilder()
	b.StartLine(hocr.Rect{})
	b.AddWord("one", hocr.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, 80)
	b.AddWord("two", hocr.Rect{MinX: 20, MinY: 0, MaxX: 30, MaxY: 10}, 70)
	b.EndLine()

	out := b.Output()
	require.Len(t, out, 2)
	assert.Equal(t, "one", out[0].Content)
	assert.Equal(t, 70, out[1].Confidence)
}
