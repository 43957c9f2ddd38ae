package hocr

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// LineBox groups the word boxes that share a text line together with the
// line's own bounding box. A LineBox owns its word boxes exclusively; they
// are never shared between lines.
type LineBox struct {
	Words    []Box
	Position Rect
}

// Content returns the contents of the contained word boxes joined by
// single spaces, trimmed. It is derived on demand and never stored.
func (l LineBox) Content() string {
	parts := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		parts = append(parts, w.Content)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Contains reports whether the line's derived content contains substr.
func (l LineBox) Contains(substr string) bool {
	return strings.Contains(l.Content(), substr)
}

// Compare orders lines by their own position, with the same semantics as
// Box.Compare.
func (l LineBox) Compare(other LineBox) int { return l.Position.Compare(other.Position) }

// Equal reports whether both lines cover the same position with the same
// derived content.
func (l LineBox) Equal(other LineBox) bool {
	return l.Position == other.Position && l.Content() == other.Content()
}

// Hash returns a stable hash over derived content and position, consistent
// with Equal.
func (l LineBox) Hash() uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d %d %d %d %s",
		l.Position.MinX, l.Position.MinY, l.Position.MaxX, l.Position.MaxY, l.Content())
	return h.Sum64()
}

func (l LineBox) String() string {
	return fmt.Sprintf("[%s] %d %d %d %d", l.Content(),
		l.Position.MinX, l.Position.MinY, l.Position.MaxX, l.Position.MaxY)
}

// SortLineBoxes sorts lines into reading order, stable like SortBoxes.
func SortLineBoxes(lines []LineBox) {
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Compare(lines[j]) < 0 })
}
