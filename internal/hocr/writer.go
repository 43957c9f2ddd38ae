package hocr

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// xhtmlHeader matches the header emitted by common OCR wrappers so the
// output stays diffable against theirs.
const xhtmlHeader = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN"
 "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
	<meta http-equiv="content-type" content="text/html; charset=utf-8" />
	<title>OCR output</title>
</head>
`

// WriteWords serializes word boxes into a very simplified hOCR document,
// one ocrx_word span per box carrying its bounding box and confidence. The
// output is readable by ParseWords; the character-position dialect is
// read-only and cannot round-trip it.
func WriteWords(w io.Writer, boxes []Box) error {
	var b strings.Builder
	b.WriteString(xhtmlHeader)
	b.WriteString("<body>\n")
	for _, box := range boxes {
		b.WriteString("<p>")
		writeWordSpan(&b, box)
		b.WriteString("</p>\n")
	}
	b.WriteString("</body>\n</html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteLines serializes line boxes into the same simplified hOCR form,
// nesting each line's word spans separated by single-space text nodes.
func WriteLines(w io.Writer, lines []LineBox) error {
	var b strings.Builder
	b.WriteString(xhtmlHeader)
	b.WriteString("<body>\n")
	for _, line := range lines {
		b.WriteString("<p>")
		fmt.Fprintf(&b, `<span class="ocr_line" title="bbox %d %d %d %d">`,
			line.Position.MinX, line.Position.MinY, line.Position.MaxX, line.Position.MaxY)
		for i, word := range line.Words {
			if i > 0 {
				b.WriteString(" ")
			}
			writeWordSpan(&b, word)
		}
		b.WriteString("</span></p>\n")
	}
	b.WriteString("</body>\n</html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeWordSpan(b *strings.Builder, box Box) {
	fmt.Fprintf(b, `<span class="ocrx_word" title="bbox %d %d %d %d; x_wconf %d">%s</span>`,
		box.Position.MinX, box.Position.MinY, box.Position.MaxX, box.Position.MaxY,
		box.Confidence, html.EscapeString(box.Content))
}
