// Package uniseg implements [unireader.Segmenter] with the UAX #29 grapheme
// cluster rules of github.com/rivo/uniseg.
package uniseg

import (
	"github.com/fwojciec/unireader"
	rivo "github.com/rivo/uniseg"
)

// Interface compliance check.
var _ unireader.BoundedSegmenter = Segmenter{}

// Segmenter is the default grapheme boundary locator.
type Segmenter struct{}

// Boundaries returns the start offset of every grapheme cluster in text.
func (s Segmenter) Boundaries(text string) []int {
	return s.FirstBoundaries(text, 0)
}

// FirstBoundaries returns the start offsets of the first n grapheme clusters
// in text, or of all of them when n <= 0.
func (Segmenter) FirstBoundaries(text string, n int) []int {
	var (
		bounds  []int
		cluster string
		offset  int
	)
	state := -1
	for len(text) > 0 && (n <= 0 || len(bounds) < n) {
		bounds = append(bounds, offset)
		cluster, text, _, state = rivo.FirstGraphemeClusterInString(text, state)
		offset += len(cluster)
	}
	return bounds
}
