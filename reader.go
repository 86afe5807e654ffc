package unireader

import (
	"bufio"
	"io"
)

// NewCodePointReader creates a Decoder over r. Readers that already
// implement io.ByteReader are used directly; others are buffered.
func NewCodePointReader(r io.Reader) *Decoder {
	return NewDecoder(byteReader(r))
}

// NewGraphemeReader creates a Graphemes over r, decoding it as UTF-8 and
// splitting with seg.
func NewGraphemeReader(r io.Reader, seg Segmenter) *Graphemes {
	return NewGraphemes(NewCodePointReader(r), seg)
}

func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}
