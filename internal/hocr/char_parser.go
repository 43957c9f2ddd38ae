package hocr

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// charParser is a streaming state machine over Cuneiform-style markup.
// Cuneiform reports the OCR output line by line: an ocr_line span carries
// the line's text, and a sibling ocr_cinfo span carries the position of
// every character of that line as four integers per character in its title
// attribute. Spaces are reported with the sentinel "-1 -1 -1 -1".
type charParser struct {
	lineOpen  bool
	lineText  strings.Builder
	positions []string

	words []Box
	chars []Box
}

// ParseCharBoxes scans Cuneiform-style markup and reconstructs one box per
// word by splitting each line's text on spaces and aggregating the
// character coordinates belonging to the word. It also returns the raw
// per-character boxes. This dialect carries no confidence values, so every
// box is left at 0.
func ParseCharBoxes(r io.Reader) (words, chars []Box, err error) {
	p := &charParser{}
	z := html.NewTokenizer(DecodeReader(r))
	for {
		switch z.Next() {
		case html.ErrorToken:
			tokErr := z.Err()
			if errors.Is(tokErr, io.EOF) {
				return p.words, p.chars, nil
			}
			return nil, nil, tokErr
		case html.StartTagToken:
			p.startTag(z.Token())
		case html.SelfClosingTagToken:
			p.startTag(z.Token())
			p.endTag()
		case html.EndTagToken:
			p.endTag()
		case html.TextToken:
			p.text(z.Token().Data)
		}
	}
}

func (p *charParser) startTag(tok html.Token) {
	if tok.Data != "span" {
		return
	}
	var class, title string
	for _, attr := range tok.Attr {
		switch attr.Key {
		case "class":
			class = attr.Val
		case "title":
			title = attr.Val
		}
	}
	switch class {
	case "ocr_line":
		p.lineOpen = true
		p.lineText.Reset()
		p.positions = nil
	case "ocr_cinfo":
		tokens := strings.Fields(title)
		if len(tokens) > 0 {
			// The leading token is the property name ("x_bboxes").
			tokens = tokens[1:]
		}
		kept := tokens[:0]
		for _, t := range tokens {
			if t == "-1" {
				continue // space sentinel
			}
			kept = append(kept, t)
		}
		p.positions = kept
	}
}

func (p *charParser) text(data string) {
	if !p.lineOpen {
		return
	}
	p.lineText.WriteString(data)
}

// endTag fires on every closing tag: reconstruction happens on the first
// close after the character positions arrived, which is the ocr_cinfo span
// itself.
func (p *charParser) endTag() {
	if !p.lineOpen || len(p.positions) == 0 {
		return
	}
	remaining := p.positions
	for _, word := range strings.Split(p.lineText.String(), " ") {
		if word == "" {
			continue
		}
		if len(remaining) == 0 {
			break
		}
		runes := []rune(word)
		need := 4 * len(runes)
		if need > len(remaining) {
			// Truncated coordinate list; take what is left.
			need = len(remaining)
		}
		quads := remaining[:need]
		remaining = remaining[need:]
		pos, charBoxes, ok := wordBounds(runes, quads)
		if !ok {
			continue
		}
		p.words = append(p.words, Box{Content: word, Position: pos})
		p.chars = append(p.chars, charBoxes...)
	}
	p.lineOpen = false
	p.positions = nil
}

// wordBounds aggregates the character quadruples (left, top, right, bottom)
// of one word into the word's bounding box and materializes the
// per-character boxes. Quadruples with non-integer values are skipped.
func wordBounds(runes []rune, quads []string) (Rect, []Box, bool) {
	var bounds Rect
	var chars []Box
	first := true
	for i := 0; i+3 < len(quads); i += 4 {
		left, errL := strconv.Atoi(quads[i])
		top, errT := strconv.Atoi(quads[i+1])
		right, errR := strconv.Atoi(quads[i+2])
		bottom, errB := strconv.Atoi(quads[i+3])
		if errL != nil || errT != nil || errR != nil || errB != nil {
			continue
		}
		charPos := Rect{MinX: left, MinY: top, MaxX: right, MaxY: bottom}
		var content string
		if idx := i / 4; idx < len(runes) {
			content = string(runes[idx])
		}
		chars = append(chars, Box{Content: content, Position: charPos})
		if first {
			bounds = charPos
			first = false
			continue
		}
		bounds.MinX = min(bounds.MinX, left)
		bounds.MinY = min(bounds.MinY, top)
		bounds.MaxX = max(bounds.MaxX, right)
		bounds.MaxY = max(bounds.MaxY, bottom)
	}
	return bounds, chars, !first
}
