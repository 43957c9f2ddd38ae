package hocr

import (
	"io"

	"golang.org/x/text/encoding/unicode"
)

// DecodeReader wraps r so that invalid UTF-8 byte sequences are replaced
// with U+FFFD instead of surfacing as errors. OCR engines occasionally emit
// stray bytes in otherwise valid output.
func DecodeReader(r io.Reader) io.Reader {
	return unicode.UTF8.NewDecoder().Reader(r)
}

// DecodeAll reads the whole stream through DecodeReader.
func DecodeAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(DecodeReader(r))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
