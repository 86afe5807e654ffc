package unireader

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// Decoder reads UTF-8 from a byte source one code point at a time.
//
// At most utf8.UTFMax bytes are held between calls. Every byte read from the
// source ends up either in a returned CodePoint or in the Bytes of a returned
// *BadUTF8Error.
type Decoder struct {
	src io.ByteReader
	buf []byte
}

// NewDecoder creates a Decoder that pulls bytes from src.
func NewDecoder(src io.ByteReader) *Decoder {
	return &Decoder{src: src, buf: make([]byte, 0, utf8.UTFMax)}
}

// Next returns the next code point. Invalid input is reported as a
// *BadUTF8Error, after which decoding resumes with the following bytes.
// Source errors are returned as is and leave the buffered bytes in place, so
// calling Next again retries the read.
func (d *Decoder) Next() (CodePoint, error) {
	for {
		if len(d.buf) > 0 {
			if r, size := utf8.DecodeRune(d.buf); r != utf8.RuneError || size > 1 {
				d.consume(size)
				return CodePoint{Rune: r, Size: size}, nil
			}
			if !isPrefix(d.buf) && len(d.buf) == utf8.UTFMax {
				return CodePoint{}, d.evict()
			}
		}

		b, err := d.src.ReadByte()
		if err == io.EOF {
			if len(d.buf) == 0 {
				return CodePoint{}, io.EOF
			}
			// Leftover bytes are reported together, complete prefix or not.
			bad := &BadUTF8Error{Kind: KindTruncated, Bytes: bytes.Clone(d.buf)}
			d.buf = d.buf[:0]
			return CodePoint{}, bad
		}
		if err != nil {
			return CodePoint{}, err
		}
		d.buf = append(d.buf, b)
	}
}

// evict drops the shortest leading run after which the buffer is empty or
// still decodable, and reports the dropped bytes.
func (d *Decoder) evict() error {
	n := 1
	for n < len(d.buf) && !validUTF8(d.buf[n:]) {
		n++
	}
	bad := &BadUTF8Error{Kind: KindInvalidEncoding, Bytes: bytes.Clone(d.buf[:n])}
	d.consume(n)
	return bad
}

func (d *Decoder) consume(n int) {
	m := copy(d.buf, d.buf[n:])
	d.buf = d.buf[:m]
}

// isPrefix reports whether p is the start of a valid encoding that needs more
// bytes.
func isPrefix(p []byte) bool {
	return len(p) > 0 && !utf8.FullRune(p)
}

// validUTF8 reports whether p is valid UTF-8, allowing the last code point to
// be incomplete.
func validUTF8(p []byte) bool {
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		if r == utf8.RuneError && size == 1 {
			return isPrefix(p)
		}
		p = p[size:]
	}
	return true
}
