package unireader

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Record is one reported item of a scanned stream: either a piece of text
// (a grapheme cluster or a code point) or a decode error.
type Record struct {
	Index int
	Text  string
	Runes int // code points in Text
	Bytes int // bytes in Text, or in Err.Bytes for error records
	Err   *BadUTF8Error
}

// RecordWriter receives records in stream order.
type RecordWriter interface {
	WriteRecord(Record) error
}

// Summary totals the records produced by one or more scans.
type Summary struct {
	Records int
	Errors  int
	Bytes   int
}

// Add returns the field-wise sum of s and o.
func (s Summary) Add(o Summary) Summary {
	return Summary{
		Records: s.Records + o.Records,
		Errors:  s.Errors + o.Errors,
		Bytes:   s.Bytes + o.Bytes,
	}
}

// Scan drains src into w. Decode errors become error records and scanning
// continues past them. Any other error from src stops the scan, as does an
// error from w. The returned Summary covers the records written so far.
func Scan(src TextSource, w RecordWriter) (Summary, error) {
	var sum Summary
	for {
		text, err := src.Next()
		if err == io.EOF {
			return sum, nil
		}

		rec := Record{Index: sum.Records}
		var bad *BadUTF8Error
		switch {
		case errors.As(err, &bad):
			rec.Err = bad
			rec.Bytes = len(bad.Bytes)
			sum.Errors++
		case err != nil:
			return sum, fmt.Errorf("read: %w", err)
		default:
			rec.Text = text
			rec.Runes = utf8.RuneCountInString(text)
			rec.Bytes = len(text)
		}

		if err := w.WriteRecord(rec); err != nil {
			return sum, fmt.Errorf("write record %d: %w", rec.Index, err)
		}
		sum.Records++
		sum.Bytes += rec.Bytes
	}
}

// CodePointText views a CodePointSource as a TextSource yielding one code
// point per item.
func CodePointText(src CodePointSource) TextSource {
	return codePointText{src: src}
}

type codePointText struct {
	src CodePointSource
}

func (c codePointText) Next() (string, error) {
	cp, err := c.src.Next()
	if err != nil {
		return "", err
	}
	return cp.String(), nil
}
