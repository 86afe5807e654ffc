// Package mock provides test doubles for unireader interfaces using function fields.
package mock

import (
	"io"

	"github.com/fwojciec/unireader"
)

// Interface compliance checks.
var (
	_ io.ByteReader             = (*ByteReader)(nil)
	_ unireader.CodePointSource = (*CodePointSource)(nil)
	_ unireader.TextSource      = (*TextSource)(nil)
	_ unireader.Segmenter       = (*Segmenter)(nil)
	_ unireader.RecordWriter    = (*RecordWriter)(nil)
)

// ByteReader is a test double for io.ByteReader.
// Set ReadByteFn before calling ReadByte.
type ByteReader struct {
	ReadByteFn func() (byte, error)
}

// ReadByte delegates to ReadByteFn.
func (r *ByteReader) ReadByte() (byte, error) {
	return r.ReadByteFn()
}

// CodePointSource is a test double for unireader.CodePointSource.
type CodePointSource struct {
	NextFn func() (unireader.CodePoint, error)
}

// Next delegates to NextFn.
func (s *CodePointSource) Next() (unireader.CodePoint, error) {
	return s.NextFn()
}

// TextSource is a test double for unireader.TextSource.
type TextSource struct {
	NextFn func() (string, error)
}

// Next delegates to NextFn.
func (s *TextSource) Next() (string, error) {
	return s.NextFn()
}

// Segmenter is a test double for unireader.Segmenter.
type Segmenter struct {
	BoundariesFn func(text string) []int
}

// Boundaries delegates to BoundariesFn.
func (s *Segmenter) Boundaries(text string) []int {
	return s.BoundariesFn(text)
}

// RecordWriter is a test double for unireader.RecordWriter.
// WriteRecordFn is nil-safe: records are collected into Records and nil
// is returned.
type RecordWriter struct {
	WriteRecordFn func(unireader.Record) error
	Records       []unireader.Record
}

// WriteRecord delegates to WriteRecordFn, or appends to Records when it is
// not set.
func (w *RecordWriter) WriteRecord(rec unireader.Record) error {
	if w.WriteRecordFn == nil {
		w.Records = append(w.Records, rec)
		return nil
	}
	return w.WriteRecordFn(rec)
}
