package unireader

import (
	"io"
	"unicode/utf8"
)

// Graphemes groups code points from a CodePointSource into grapheme
// clusters.
//
// A cluster is only known to be complete once the next one has started, so
// Graphemes reads one code point past every cluster it returns. When the
// source fails while a partial cluster is buffered, the buffered text is
// returned first and the error on the following call.
type Graphemes struct {
	src     CodePointSource
	seg     Segmenter
	buf     []byte
	pending error
}

// NewGraphemes creates a Graphemes reading from src and splitting with seg.
func NewGraphemes(src CodePointSource, seg Segmenter) *Graphemes {
	return &Graphemes{src: src, seg: seg}
}

// Next returns the next grapheme cluster, or io.EOF when the source is
// exhausted. Errors from the source are relayed exactly once, in order.
func (g *Graphemes) Next() (string, error) {
	if err := g.pending; err != nil {
		g.pending = nil
		return "", err
	}
	for {
		cp, err := g.src.Next()
		if err == io.EOF {
			if len(g.buf) == 0 {
				return "", io.EOF
			}
			return g.flush(len(g.buf)), nil
		}
		if err != nil {
			if len(g.buf) == 0 {
				return "", err
			}
			g.pending = err
			return g.flush(len(g.buf)), nil
		}

		g.buf = utf8.AppendRune(g.buf, cp.Rune)
		if bounds := g.boundaries(); len(bounds) >= 2 {
			return g.flush(bounds[1]), nil
		}
	}
}

// boundaries re-segments the whole buffer on every pull, so a cluster of n
// code points costs O(n^2).
func (g *Graphemes) boundaries() []int {
	if s, ok := g.seg.(BoundedSegmenter); ok {
		return s.FirstBoundaries(string(g.buf), 2)
	}
	return g.seg.Boundaries(string(g.buf))
}

// flush returns the first n buffered bytes and keeps the rest.
func (g *Graphemes) flush(n int) string {
	s := string(g.buf[:n])
	m := copy(g.buf, g.buf[n:])
	g.buf = g.buf[:m]
	return s
}
