package hocr

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
)

// BoxJSON is a serializable mirror of Box with a stable field layout.
type BoxJSON struct {
	Content    string `json:"content"`
	X0         int    `json:"x0"`
	Y0         int    `json:"y0"`
	X1         int    `json:"x1"`
	Y1         int    `json:"y1"`
	Confidence int    `json:"confidence,omitempty"`
}

// LineJSON is a serializable mirror of LineBox.
type LineJSON struct {
	Content string    `json:"content"`
	X0      int       `json:"x0"`
	Y0      int       `json:"y0"`
	X1      int       `json:"x1"`
	Y1      int       `json:"y1"`
	Words   []BoxJSON `json:"words"`
}

// DocumentJSON wraps either flat word boxes or grouped line boxes.
type DocumentJSON struct {
	Words []BoxJSON  `json:"words,omitempty"`
	Lines []LineJSON `json:"lines,omitempty"`
}

func boxToJSON(b Box) BoxJSON {
	return BoxJSON{
		Content:    b.Content,
		X0:         b.Position.MinX,
		Y0:         b.Position.MinY,
		X1:         b.Position.MaxX,
		Y1:         b.Position.MaxY,
		Confidence: b.Confidence,
	}
}

func boxFromJSON(b BoxJSON) Box {
	return Box{
		Content:    b.Content,
		Position:   Rect{MinX: b.X0, MinY: b.Y0, MaxX: b.X1, MaxY: b.Y1},
		Confidence: b.Confidence,
	}
}

// WordsToJSON serializes word boxes to pretty JSON.
func WordsToJSON(boxes []Box) ([]byte, error) {
	doc := DocumentJSON{Words: make([]BoxJSON, 0, len(boxes))}
	for _, b := range boxes {
		doc.Words = append(doc.Words, boxToJSON(b))
	}
	return json.MarshalIndent(doc, "", "  ")
}

// LinesToJSON serializes line boxes to pretty JSON.
func LinesToJSON(lines []LineBox) ([]byte, error) {
	doc := DocumentJSON{Lines: make([]LineJSON, 0, len(lines))}
	for _, l := range lines {
		lj := LineJSON{
			Content: l.Content(),
			X0:      l.Position.MinX,
			Y0:      l.Position.MinY,
			X1:      l.Position.MaxX,
			Y1:      l.Position.MaxY,
			Words:   make([]BoxJSON, 0, len(l.Words)),
		}
		for _, w := range l.Words {
			lj.Words = append(lj.Words, boxToJSON(w))
		}
		doc.Lines = append(doc.Lines, lj)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// WordsFromJSON parses a document produced by WordsToJSON or LinesToJSON
// back into flat word boxes; grouped lines are flattened in order.
func WordsFromJSON(data []byte) ([]Box, error) {
	var doc DocumentJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	boxes := make([]Box, 0, len(doc.Words))
	for _, b := range doc.Words {
		boxes = append(boxes, boxFromJSON(b))
	}
	for _, l := range doc.Lines {
		for _, b := range l.Words {
			boxes = append(boxes, boxFromJSON(b))
		}
	}
	return boxes, nil
}

// LinesFromJSON parses a document produced by LinesToJSON back into line
// boxes.
func LinesFromJSON(data []byte) ([]LineBox, error) {
	var doc DocumentJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	lines := make([]LineBox, 0, len(doc.Lines))
	for _, lj := range doc.Lines {
		l := LineBox{
			Position: Rect{MinX: lj.X0, MinY: lj.Y0, MaxX: lj.X1, MaxY: lj.Y1},
			Words:    make([]Box, 0, len(lj.Words)),
		}
		for _, b := range lj.Words {
			l.Words = append(l.Words, boxFromJSON(b))
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// WordsToCSV exports word boxes as CSV with a header row.
func WordsToCSV(boxes []Box) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"content", "x0", "y0", "x1", "y1", "confidence"})
	for _, b := range boxes {
		_ = w.Write(boxRecord(b))
	}
	w.Flush()
	return buf.String(), w.Error()
}

// LinesToCSV exports line boxes as CSV, one row per word with a leading
// line index column.
func LinesToCSV(lines []LineBox) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"line", "content", "x0", "y0", "x1", "y1", "confidence"})
	for i, l := range lines {
		for _, b := range l.Words {
			_ = w.Write(append([]string{strconv.Itoa(i)}, boxRecord(b)...))
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

func boxRecord(b Box) []string {
	return []string{
		b.Content,
		strconv.Itoa(b.Position.MinX),
		strconv.Itoa(b.Position.MinY),
		strconv.Itoa(b.Position.MaxX),
		strconv.Itoa(b.Position.MaxY),
		strconv.Itoa(b.Confidence),
	}
}
