// Package uax29 implements [unireader.Segmenter] with the grapheme
// tokenizer of github.com/clipperhouse/uax29.
package uax29

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/fwojciec/unireader"
)

// Interface compliance check.
var _ unireader.BoundedSegmenter = Segmenter{}

// Segmenter locates grapheme boundaries by tokenizing the text.
type Segmenter struct{}

// Boundaries returns the start offset of every grapheme cluster in text.
func (s Segmenter) Boundaries(text string) []int {
	return s.FirstBoundaries(text, 0)
}

// FirstBoundaries returns the start offsets of the first n grapheme clusters
// in text, or of all of them when n <= 0.
func (Segmenter) FirstBoundaries(text string, n int) []int {
	var bounds []int
	offset := 0
	tokens := graphemes.FromString(text)
	for (n <= 0 || len(bounds) < n) && tokens.Next() {
		bounds = append(bounds, offset)
		offset += len(tokens.Value())
	}
	return bounds
}
