package hocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tesseractSample = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN"
 "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="en" lang="en">
 <head><title></title></head>
 <body>
  <div class='ocr_page' id='page_1' title='image "page.png"; bbox 0 0 640 480; ppageno 0'>
   <div class='ocr_carea' id='block_1_1' title="bbox 36 92 619 184">
    <p class='ocr_par' dir='ltr' id='par_1_1' title="bbox 36 92 619 184">
     <span class='ocr_line' id='line_1_1' title="bbox 36 92 619 116; baseline 0 -3">
      <span class='ocrx_word' id='word_1_1' title='bbox 36 92 96 116; x_wconf 91'>Hello</span>
      <span class='ocrx_word' id='word_1_2' title='bbox 109 92 174 116; x_wconf 87'>World</span>
     </span>
     <span class='ocr_line' id='line_1_2' title="bbox 36 160 619 184">
      <span class='ocrx_word' id='word_2_1' title='bbox 36 160 120 184'>again</span>
     </span>
    </p>
   </div>
  </div>
 </body>
</html>
`

func TestParseWordsSample(t *testing.T) {
	words, lines, err := ParseWords(strings.NewReader(tesseractSample))
	require.NoError(t, err)

	require.Len(t, words, 3)
	assert.Equal(t, "Hello", words[0].Content)
	assert.Equal(t, Rect{MinX: 36, MinY: 92, MaxX: 96, MaxY: 116}, words[0].Position)
	assert.Equal(t, 91, words[0].Confidence)
	assert.Equal(t, "World", words[1].Content)
	assert.Equal(t, 87, words[1].Confidence)
	assert.Equal(t, "again", words[2].Content)
	assert.Equal(t, 0, words[2].Confidence, "missing x_wconf defaults to 0")

	require.Len(t, lines, 2)
	assert.Equal(t, "Hello World", lines[0].Content())
	assert.Equal(t, Rect{MinX: 36, MinY: 92, MaxX: 619, MaxY: 116}, lines[0].Position)
	require.Len(t, lines[0].Words, 2)
	assert.Equal(t, "again", lines[1].Content())
	require.Len(t, lines[1].Words, 1)
}

func TestParseWordsFlatAndGroupedAgree(t *testing.T) {
	words, lines, err := ParseWords(strings.NewReader(tesseractSample))
	require.NoError(t, err)

	var flattened []Box
	for _, l := range lines {
		flattened = append(flattened, l.Words...)
	}
	assert.Equal(t, words, flattened,
		"flat word list and line-grouped words must match in content and order")
}

func TestParseWordsHeaderAndFooterActAsLines(t *testing.T) {
	doc := `<body>
	 <span class="ocr_header" title="bbox 0 0 100 10">
	  <span class="ocrx_word" title="bbox 0 0 40 10; x_wconf 80">Title</span>
	 </span>
	 <span class="ocr_footer" title="bbox 0 90 100 100">
	  <span class="ocrx_word" title="bbox 0 90 20 100; x_wconf 70">1</span>
	 </span>
	</body>`

	words, lines, err := ParseWords(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Len(t, words, 2)
	require.Len(t, lines, 2)
	assert.Equal(t, "Title", lines[0].Content())
	assert.Equal(t, "1", lines[1].Content())
}

func TestParseWordsSkipsMalformedWordTag(t *testing.T) {
	doc := `<span class="ocr_line" title="bbox 0 0 100 10">
	 <span class="ocrx_word" title="old format, no bbox here">broken</span>
	 <span class="ocrx_word" title="bbox 0 0 40 10; x_wconf 77">good</span>
	</span>`

	words, lines, err := ParseWords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "good", words[0].Content)
	require.Len(t, lines, 1)
	assert.Equal(t, "good", lines[0].Content())
}

func TestParseWordsMalformedLineBBoxIsFatal(t *testing.T) {
	doc := `<span class="ocr_line" title="not a bbox">
	 <span class="ocrx_word" title="bbox 0 0 40 10">word</span>
	</span>`

	_, _, err := ParseWords(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestParseWordsUnescapesEntities(t *testing.T) {
	doc := `<span class="ocr_line" title="bbox 0 0 100 10">
	 <span class="ocrx_word" title="bbox 0 0 40 10">AT&amp;T</span>
	</span>`

	words, _, err := ParseWords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "AT&T", words[0].Content)
}

func TestParseWordsIgnoresNonSpanTags(t *testing.T) {
	doc := `<div class="ocrx_word" title="bbox 0 0 40 10">not a word</div>
	<p class="ocr_line" title="bbox 0 0 100 10">not a line</p>`

	words, lines, err := ParseWords(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, words)
	assert.Empty(t, lines)
}

func TestParseWordsSpanWithoutTitleIsIgnored(t *testing.T) {
	doc := `<span class="ocr_line" title="bbox 0 0 100 10">
	 <span class="ocrx_word">no title</span>
	 <span class="ocrx_word" title="bbox 0 0 40 10">yes</span>
	</span>`

	words, _, err := ParseWords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "yes", words[0].Content)
}

func TestParseWordsEmptyDocument(t *testing.T) {
	words, lines, err := ParseWords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
	assert.Empty(t, lines)
}

func TestParseWordsPlainTextYieldsNothing(t *testing.T) {
	words, lines, err := ParseWords(strings.NewReader("just some plain text\non two lines\n"))
	require.NoError(t, err)
	assert.Empty(t, words)
	assert.Empty(t, lines)
}

func TestParseWordsLineWithNestedWordsNeverEmpty(t *testing.T) {
	words, lines, err := ParseWords(strings.NewReader(tesseractSample))
	require.NoError(t, err)
	require.NotEmpty(t, words)
	for _, l := range lines {
		assert.NotEmpty(t, l.Words)
	}
}
