package unireader

import (
	"io"
	"iter"
)

// CodePoints returns a range-over-func view of src. The sequence stops at
// io.EOF; every other error is yielded in place and the caller decides
// whether to keep going.
func CodePoints(src CodePointSource) iter.Seq2[CodePoint, error] {
	return all(src.Next)
}

// Texts is CodePoints for a TextSource.
func Texts(src TextSource) iter.Seq2[string, error] {
	return all(src.Next)
}

func all[T any](next func() (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := next()
			if err == io.EOF {
				return
			}
			if !yield(v, err) {
				return
			}
		}
	}
}
