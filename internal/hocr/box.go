package hocr

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// Rect is an axis-aligned bounding box in image pixel coordinates with the
// origin in the upper-left corner. (MinX, MinY) is the top-left corner and
// (MaxX, MaxY) the bottom-right one. Construction does not enforce
// MinX <= MaxX or MinY <= MaxY; the parsers emit coordinates exactly as
// found in the document.
type Rect struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// Width returns MaxX - MinX.
func (r Rect) Width() int { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() int { return r.MaxY - r.MinY }

// Compare orders rectangles geometrically: by top y, then bottom y, then
// left x, then right x, all ascending. It returns a negative value if r
// sorts before other, a positive value if it sorts after, and 0 when both
// occupy the same position. Sorting by Compare yields reading order for
// typical left-to-right pages.
func (r Rect) Compare(other Rect) int {
	pairs := [4][2]int{
		{r.MinY, other.MinY},
		{r.MaxY, other.MaxY},
		{r.MinX, other.MinX},
		{r.MaxX, other.MaxX},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// Box is a rectangle around a single element recognized in the image. The
// element is a word or a character depending on the builder that produced
// it.
type Box struct {
	Content  string
	Position Rect
	// Confidence is the engine's word confidence in the 0-100 range. Only
	// the Tesseract-style dialect reports one; everything else leaves 0.
	Confidence int
}

// Compare orders boxes by position alone, using Rect.Compare. Content and
// confidence do not participate, so two different words at the same
// position compare equal.
func (b Box) Compare(other Box) int { return b.Position.Compare(other.Position) }

// Equal reports whether both boxes cover the same position with the same
// content. Confidence is excluded so that output re-read from a dialect
// without confidence still matches the original.
func (b Box) Equal(other Box) bool {
	return b.Content == other.Content && b.Position == other.Position
}

// Hash returns a stable hash over content and position, consistent with
// Equal. It allows boxes to be used as members of hash-based sets.
func (b Box) Hash() uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d %d %d %d %s",
		b.Position.MinX, b.Position.MinY, b.Position.MaxX, b.Position.MaxY, b.Content)
	return h.Sum64()
}

func (b Box) String() string {
	return fmt.Sprintf("%s %d %d %d %d", b.Content,
		b.Position.MinX, b.Position.MinY, b.Position.MaxX, b.Position.MaxY)
}

// SortBoxes sorts boxes into reading order (top to bottom, then left to
// right). The sort is stable, so boxes comparing equal keep the order the
// parser emitted them in.
func SortBoxes(boxes []Box) {
	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].Compare(boxes[j]) < 0 })
}
