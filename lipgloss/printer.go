package lipgloss

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/fwojciec/unireader"
)

// Interface compliance check.
var _ unireader.RecordWriter = (*Printer)(nil)

// Printer writes one line per record:
//
//	0: H (1 code points, 1 bytes)
//	1: invalid_encoding e2 28 a1 (3 bytes)
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, styles Styles) *Printer {
	return &Printer{w: w, styles: styles}
}

// WriteRecord writes rec as a single line.
func (p *Printer) WriteRecord(rec unireader.Record) error {
	index := p.styles.Index.Render(strconv.Itoa(rec.Index) + ":")
	var line string
	if rec.Err != nil {
		line = fmt.Sprintf("%s %s %s",
			index,
			p.styles.Error.Render(fmt.Sprintf("%s % x", rec.Err.Kind, rec.Err.Bytes)),
			p.styles.Muted.Render(fmt.Sprintf("(%d bytes)", rec.Bytes)),
		)
	} else {
		line = fmt.Sprintf("%s %s %s",
			index,
			p.styles.Text.Render(displayText(rec.Text)),
			p.styles.Muted.Render(fmt.Sprintf("(%d code points, %d bytes)", rec.Runes, rec.Bytes)),
		)
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

// WriteHeader writes a "==> name <==" line introducing the next input.
func (p *Printer) WriteHeader(name string) error {
	_, err := fmt.Fprintln(p.w, p.styles.Muted.Render("==> "+name+" <=="))
	return err
}

// WriteSummary writes the totals line.
func (p *Printer) WriteSummary(s unireader.Summary) error {
	_, err := fmt.Fprintln(p.w, p.styles.Muted.Render(
		fmt.Sprintf("%d records, %d errors, %d bytes", s.Records, s.Errors, s.Bytes)))
	return err
}

// displayText quotes text containing control or other non-graphic runes so
// that newlines and tabs stay on one line.
func displayText(s string) string {
	if strings.IndexFunc(s, func(r rune) bool { return !unicode.IsGraphic(r) }) >= 0 {
		return strconv.Quote(s)
	}
	return s
}
