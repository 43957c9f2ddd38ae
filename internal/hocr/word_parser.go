package hocr

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Span classes recognized by the Tesseract-style parser. Header and footer
// spans behave exactly like lines.
var (
	wordTagClasses = map[string]struct{}{
		"ocr_word":  {},
		"ocrx_word": {},
	}
	lineTagClasses = map[string]struct{}{
		"ocr_line":   {},
		"ocr_header": {},
		"ocr_footer": {},
	}
)

// ignoreTagClass marks an open span whose title could not be parsed; its
// closing tag must still be matched without emitting anything.
const ignoreTagClass = "ignore"

// wordParser is a streaming state machine over Tesseract-style hOCR markup.
// Tesseract tags words with the non-standard ocrx_word class. Spans nest,
// so a stack of open span classes keeps closing tags matched to the right
// category.
type wordParser struct {
	openClasses []string

	wordOpen bool
	wordText strings.Builder
	wordPos  Rect
	wordConf int

	linePos   Rect
	lineWords []Box

	words []Box
	lines []LineBox
}

// ParseWords scans Tesseract-style hOCR markup in a single forward pass and
// returns every recognized word box plus the line boxes grouping them, in
// document order. Word boxes appear both in the flat list and inside their
// line.
//
// A word span with an unparsable title is skipped and the rest of the
// document is still processed. A line span with a missing or malformed
// bounding box aborts the parse, since the remaining words cannot be
// grouped reliably; callers fall back to the character-position dialect.
func ParseWords(r io.Reader) ([]Box, []LineBox, error) {
	p := &wordParser{}
	z := html.NewTokenizer(DecodeReader(r))
	for {
		switch z.Next() {
		case html.ErrorToken:
			err := z.Err()
			if errors.Is(err, io.EOF) {
				return p.words, p.lines, nil
			}
			return nil, nil, err
		case html.StartTagToken:
			if err := p.startTag(z.Token()); err != nil {
				return nil, nil, err
			}
		case html.SelfClosingTagToken:
			// An empty span still opens and closes a scope.
			tok := z.Token()
			if err := p.startTag(tok); err != nil {
				return nil, nil, err
			}
			p.endTag(tok)
		case html.EndTagToken:
			p.endTag(z.Token())
		case html.TextToken:
			p.text(z.Token().Data)
		}
	}
}

func spanAttrs(tok html.Token) (class, title string, ok bool) {
	var hasClass, hasTitle bool
	for _, attr := range tok.Attr {
		switch attr.Key {
		case "class":
			class = attr.Val
			hasClass = true
		case "title":
			title = attr.Val
			hasTitle = true
		}
	}
	return class, title, hasClass && hasTitle
}

func (p *wordParser) startTag(tok html.Token) error {
	if tok.Data != "span" {
		return nil
	}
	class, title, ok := spanAttrs(tok)
	if !ok {
		return nil
	}
	if _, isWord := wordTagClasses[class]; isWord {
		conf, err := parseConfidence(title)
		var pos Rect
		if err == nil {
			pos, err = parsePosition(title)
		}
		if err != nil {
			// Invalid position, typically the old hOCR format. Skip this
			// single tag rather than losing the whole page.
			p.openClasses = append(p.openClasses, ignoreTagClass)
			return nil
		}
		p.wordConf = conf
		p.wordPos = pos
		p.wordOpen = true
		p.wordText.Reset()
	} else if _, isLine := lineTagClasses[class]; isLine {
		pos, err := parsePosition(title)
		if err != nil {
			return err
		}
		p.linePos = pos
		p.lineWords = nil
	}
	p.openClasses = append(p.openClasses, class)
	return nil
}

func (p *wordParser) text(data string) {
	if !p.wordOpen {
		return
	}
	// Text may arrive in several fragments (entities split text nodes).
	p.wordText.WriteString(data)
}

func (p *wordParser) endTag(tok html.Token) {
	if tok.Data != "span" || len(p.openClasses) == 0 {
		return
	}
	class := p.openClasses[len(p.openClasses)-1]
	p.openClasses = p.openClasses[:len(p.openClasses)-1]
	if _, isWord := wordTagClasses[class]; isWord {
		if !p.wordOpen {
			return
		}
		box := Box{Content: p.wordText.String(), Position: p.wordPos, Confidence: p.wordConf}
		p.words = append(p.words, box)
		p.lineWords = append(p.lineWords, box)
		p.wordOpen = false
		return
	}
	if _, isLine := lineTagClasses[class]; isLine {
		p.lines = append(p.lines, LineBox{Words: p.lineWords, Position: p.linePos})
		p.lineWords = nil
	}
}
