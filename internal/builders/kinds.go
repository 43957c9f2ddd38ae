package builders

import "fmt"

// Builder kinds selectable from configuration and CLI flags.
const (
	KindText = "text"
	KindWord = "word"
	KindLine = "line"
	KindChar = "char"
)

// Kinds lists the selectable builder kinds in display order.
func Kinds() []string {
	return []string{KindText, KindWord, KindLine, KindChar}
}

// New returns the builder named by kind, configured with opts.
func New(kind string, opts ...Option) (Builder, error) {
	switch kind {
	case KindText:
		return NewTextBuilder(opts...), nil
	case KindWord:
		return NewWordBoxBuilder(opts...), nil
	case KindLine:
		return NewLineBoxBuilder(opts...), nil
	case KindChar:
		return NewCharBoxBuilder(opts...), nil
	default:
		return nil, fmt.Errorf("unknown builder kind: %q", kind)
	}
}
