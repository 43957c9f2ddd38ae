// Package hocr models OCR output as words and lines with bounding boxes
// and parses the two markup dialects engines produce: Tesseract-style hOCR
// spans and Cuneiform-style per-character positions. It also serializes
// the model back into a minimal hOCR document.
package hocr
