package unireader

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for decode failures. A *BadUTF8Error matches exactly one of
// them with errors.Is.
var (
	// ErrInvalidEncoding indicates bytes that can never form a code point.
	ErrInvalidEncoding = errors.New("invalid utf-8 encoding")

	// ErrTruncated indicates undecoded bytes left over at the end of
	// the input.
	ErrTruncated = errors.New("incomplete utf-8 code point at end of stream")
)

// ErrorKind classifies a BadUTF8Error.
type ErrorKind int

const (
	KindInvalidEncoding ErrorKind = iota // Bytes can never form a code point.
	KindTruncated                        // Input ended inside a code point.
)

// String returns the snake_case name used in reports.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidEncoding:
		return "invalid_encoding"
	case KindTruncated:
		return "truncated"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// BadUTF8Error is returned when a run of bytes cannot be decoded. Bytes holds
// the exact offending input and is owned by the caller.
type BadUTF8Error struct {
	Kind  ErrorKind
	Bytes []byte
}

func (e *BadUTF8Error) Error() string {
	switch e.Kind {
	case KindTruncated:
		return fmt.Sprintf("%s: % x", ErrTruncated, e.Bytes)
	default:
		return fmt.Sprintf("%s: % x", ErrInvalidEncoding, e.Bytes)
	}
}

// Unwrap lets errors.Is match the kind's sentinel. Truncated input also
// matches io.ErrUnexpectedEOF.
func (e *BadUTF8Error) Unwrap() []error {
	if e.Kind == KindTruncated {
		return []error{ErrTruncated, io.ErrUnexpectedEOF}
	}
	return []error{ErrInvalidEncoding}
}
