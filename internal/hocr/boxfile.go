package hocr

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseBoxFile reads Tesseract "makebox" output: one record per recognized
// character of the form "<glyph> <x0> <y0> <x1> <y1> [page]". Records that
// do not carry a glyph and four integer coordinates are skipped. The
// coordinates are passed through untouched; the box file does not carry the
// page height needed to flip its bottom-left origin.
func ParseBoxFile(r io.Reader) ([]Box, error) {
	var boxes []Box
	sc := bufio.NewScanner(DecodeReader(r))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 5 {
			continue
		}
		var coords [4]int
		valid := true
		for i := range coords {
			v, err := strconv.Atoi(fields[i+1])
			if err != nil {
				valid = false
				break
			}
			coords[i] = v
		}
		if !valid {
			continue
		}
		boxes = append(boxes, Box{
			Content:  fields[0],
			Position: Rect{MinX: coords[0], MinY: coords[1], MaxX: coords[2], MaxY: coords[3]},
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return boxes, nil
}

// WriteBoxFile renders character boxes in makebox form, the inverse of
// ParseBoxFile. The page column is always 0.
func WriteBoxFile(w io.Writer, boxes []Box) error {
	for _, b := range boxes {
		if _, err := fmt.Fprintf(w, "%s %d %d %d %d 0\n", b.Content,
			b.Position.MinX, b.Position.MinY, b.Position.MaxX, b.Position.MaxY); err != nil {
			return err
		}
	}
	return nil
}
