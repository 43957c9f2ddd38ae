package hocr

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// parsePosition extracts the bounding box from an hOCR title attribute of
// the form "bbox x0 y0 x1 y1; ...". The bbox property is mandatory; a title
// without one, or with non-integer coordinates, is an error.
func parsePosition(title string) (Rect, error) {
	for _, piece := range strings.Split(title, ";") {
		fields := strings.Fields(piece)
		if len(fields) == 0 || fields[0] != "bbox" {
			continue
		}
		if len(fields) < 5 {
			return Rect{}, fmt.Errorf("invalid hocr position: %q", title)
		}
		var coords [4]int
		for i := range coords {
			v, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return Rect{}, fmt.Errorf("invalid hocr position: %q", title)
			}
			coords[i] = v
		}
		return Rect{MinX: coords[0], MinY: coords[1], MaxX: coords[2], MaxY: coords[3]}, nil
	}
	return Rect{}, fmt.Errorf("invalid hocr position: %q", title)
}

// parseConfidence extracts the x_wconf property from an hOCR title
// attribute. A missing property is not an error and yields 0; a present but
// malformed one is.
func parseConfidence(title string) (int, error) {
	for _, piece := range strings.Split(title, ";") {
		fields := strings.Fields(piece)
		if len(fields) == 0 || fields[0] != "x_wconf" {
			continue
		}
		if len(fields) < 2 {
			return 0, fmt.Errorf("invalid x_wconf property: %q", title)
		}
		return strconv.Atoi(fields[1])
	}
	slog.Debug("OCR confidence measure not found, assuming 0")
	return 0, nil
}
