package unireader

// CodePoint is one decoded Unicode scalar value and the number of bytes it
// occupied in the input.
type CodePoint struct {
	Rune rune
	Size int // 1-4
}

// String returns the code point as UTF-8 text.
func (c CodePoint) String() string {
	return string(c.Rune)
}

// CodePointSource uses a pull-based iterator pattern. Next returns io.EOF
// once the input is exhausted and keeps returning it afterwards. A
// *BadUTF8Error does not end the sequence; the next call continues after the
// offending bytes. Any other error comes from the byte source and is returned
// unchanged.
type CodePointSource interface {
	Next() (CodePoint, error)
}

// TextSource is the text counterpart of CodePointSource. Graphemes returns
// one grapheme cluster per call.
type TextSource interface {
	Next() (string, error)
}

// Segmenter locates grapheme cluster boundaries. Boundaries returns the
// ascending byte offsets at which clusters start. For non-empty text the
// first offset is 0.
type Segmenter interface {
	Boundaries(text string) []int
}

// BoundedSegmenter is implemented by segmenters that can stop early.
// FirstBoundaries returns at most n offsets, in the same form as Boundaries;
// n <= 0 means no limit.
type BoundedSegmenter interface {
	Segmenter
	FirstBoundaries(text string, n int) []int
}

// SegmenterFunc adapts an ordinary function to the Segmenter interface.
type SegmenterFunc func(text string) []int

// Boundaries calls f(text).
func (f SegmenterFunc) Boundaries(text string) []int {
	return f(text)
}

// Interface compliance checks.
var (
	_ CodePointSource = (*Decoder)(nil)
	_ TextSource      = (*Graphemes)(nil)
	_ Segmenter       = SegmenterFunc(nil)
)
