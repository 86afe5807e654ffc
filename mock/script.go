package mock

import (
	"io"

	"github.com/fwojciec/unireader"
)

// Step is one scripted result of a pull.
type Step[T any] struct {
	Value T
	Err   error
}

// Bytes returns a ByteReader that replays steps in order and then returns
// io.EOF forever.
func Bytes(steps ...Step[byte]) *ByteReader {
	return &ByteReader{ReadByteFn: replay(steps)}
}

// CodePoints returns a CodePointSource that replays steps in order and then
// returns io.EOF forever.
func CodePoints(steps ...Step[unireader.CodePoint]) *CodePointSource {
	return &CodePointSource{NextFn: replay(steps)}
}

// Texts returns a TextSource that replays steps in order and then returns
// io.EOF forever.
func Texts(steps ...Step[string]) *TextSource {
	return &TextSource{NextFn: replay(steps)}
}

func replay[T any](steps []Step[T]) func() (T, error) {
	i := 0
	return func() (T, error) {
		if i >= len(steps) {
			var zero T
			return zero, io.EOF
		}
		s := steps[i]
		i++
		return s.Value, s.Err
	}
}
