package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/unireader"
	"github.com/fwojciec/unireader/json"
	"github.com/fwojciec/unireader/lipgloss"
	"github.com/fwojciec/unireader/uax29"
	"github.com/fwojciec/unireader/uniseg"
)

const (
	modeGraphemes  = "graphemes"
	modeCodePoints = "codepoints"

	formatText = "text"
	formatJSON = "json"
)

// report is the output side of a scan: records plus optional per-input
// headers and a final summary.
type report interface {
	unireader.RecordWriter
	WriteHeader(name string) error
	WriteSummary(unireader.Summary) error
}

func resolveMode(mode string) (string, error) {
	switch mode {
	case modeGraphemes, modeCodePoints:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown mode %q: must be %q or %q", mode, modeGraphemes, modeCodePoints)
	}
}

// resolveSegmenter selects the boundary rules. The flag overrides the env
// var; both empty selects uniseg.
func resolveSegmenter(segmenterFlag, envSegmenter string) (unireader.Segmenter, error) {
	name := segmenterFlag
	if name == "" {
		name = envSegmenter
	}
	switch name {
	case "", "uniseg":
		return uniseg.Segmenter{}, nil
	case "uax29":
		return uax29.Segmenter{}, nil
	default:
		return nil, fmt.Errorf("unknown segmenter %q: must be \"uniseg\" or \"uax29\"", name)
	}
}

func newReport(format string, w io.Writer, color bool) (report, error) {
	switch format {
	case formatText:
		styles := lipgloss.PlainStyles()
		if color {
			styles = lipgloss.NewStyles(unireader.DefaultTheme())
		}
		return lipgloss.NewPrinter(w, styles), nil
	case formatJSON:
		return json.NewEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q: must be %q or %q", format, formatText, formatJSON)
	}
}

func newSource(r io.Reader, mode string, seg unireader.Segmenter) unireader.TextSource {
	if mode == modeCodePoints {
		return unireader.CodePointText(unireader.NewCodePointReader(r))
	}
	return unireader.NewGraphemeReader(r, seg)
}
