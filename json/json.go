// Package json encodes scan records as JSON lines.
package json

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/unireader"
)

// recordDTO is the v1 wire format for a single record. Text records carry
// text, runes and bytes; error records carry error, raw and bytes.
type recordDTO struct {
	Index int     `json:"index"`
	Text  *string `json:"text,omitempty"`
	Runes *int    `json:"runes,omitempty"`
	Bytes int     `json:"bytes"`
	Error *string `json:"error,omitempty"`
	Raw   *string `json:"raw,omitempty"`
}

type summaryDTO struct {
	Records int `json:"records"`
	Errors  int `json:"errors"`
	Bytes   int `json:"bytes"`
}

// MarshalRecord serializes a Record to a single JSON object.
func MarshalRecord(rec unireader.Record) ([]byte, error) {
	return json.Marshal(marshalRecord(rec))
}

func marshalRecord(rec unireader.Record) recordDTO {
	dto := recordDTO{Index: rec.Index, Bytes: rec.Bytes}
	if rec.Err != nil {
		kind := rec.Err.Kind.String()
		raw := hex.EncodeToString(rec.Err.Bytes)
		dto.Error = &kind
		dto.Raw = &raw
		return dto
	}
	text, runes := rec.Text, rec.Runes
	dto.Text = &text
	dto.Runes = &runes
	return dto
}

// UnmarshalRecord deserializes a Record produced by MarshalRecord.
func UnmarshalRecord(data []byte) (unireader.Record, error) {
	var dto recordDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return unireader.Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	rec := unireader.Record{Index: dto.Index, Bytes: dto.Bytes}
	if dto.Error != nil {
		kind, err := unmarshalKind(*dto.Error)
		if err != nil {
			return unireader.Record{}, err
		}
		var raw []byte
		if dto.Raw != nil {
			raw, err = hex.DecodeString(*dto.Raw)
			if err != nil {
				return unireader.Record{}, fmt.Errorf("decode raw bytes: %w", err)
			}
		}
		rec.Err = &unireader.BadUTF8Error{Kind: kind, Bytes: raw}
		return rec, nil
	}
	if dto.Text != nil {
		rec.Text = *dto.Text
	}
	if dto.Runes != nil {
		rec.Runes = *dto.Runes
	}
	return rec, nil
}

func unmarshalKind(s string) (unireader.ErrorKind, error) {
	switch s {
	case unireader.KindInvalidEncoding.String():
		return unireader.KindInvalidEncoding, nil
	case unireader.KindTruncated.String():
		return unireader.KindTruncated, nil
	default:
		return 0, fmt.Errorf("unknown error kind: %q", s)
	}
}

// Interface compliance check.
var _ unireader.RecordWriter = (*Encoder)(nil)

// Encoder writes one JSON object per line.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Encoder{enc: enc}
}

// WriteRecord writes rec as one JSON line.
func (e *Encoder) WriteRecord(rec unireader.Record) error {
	return e.enc.Encode(marshalRecord(rec))
}

// WriteHeader writes {"input": name}, marking where the next input's records
// begin.
func (e *Encoder) WriteHeader(name string) error {
	return e.enc.Encode(struct {
		Input string `json:"input"`
	}{name})
}

// WriteSummary writes the totals as a final JSON line under a "summary" key.
func (e *Encoder) WriteSummary(s unireader.Summary) error {
	return e.enc.Encode(struct {
		Summary summaryDTO `json:"summary"`
	}{summaryDTO(s)})
}
