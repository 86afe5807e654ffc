package unireader_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fwojciec/unireader"
	"github.com/fwojciec/unireader/mock"
	"github.com/fwojciec/unireader/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains src, rendering decode errors as "<kind % x>".
func collect(t *testing.T, src unireader.TextSource) []string {
	t.Helper()
	var got []string
	for {
		s, err := src.Next()
		if err == io.EOF {
			return got
		}
		var bad *unireader.BadUTF8Error
		if errors.As(err, &bad) {
			got = append(got, "<"+bad.Error()+">")
			continue
		}
		require.NoError(t, err)
		got = append(got, s)
	}
}

func codePoints(s string) []mock.Step[unireader.CodePoint] {
	var steps []mock.Step[unireader.CodePoint]
	for _, r := range s {
		steps = append(steps, mock.Step[unireader.CodePoint]{Value: unireader.CodePoint{Rune: r, Size: len(string(r))}})
	}
	return steps
}

func TestGraphemes_Next(t *testing.T) {
	t.Parallel()

	t.Run("combining marks join their base", func(t *testing.T) {
		t.Parallel()
		g := unireader.NewGraphemeReader(strings.NewReader("He\u0302\u0320llo"), uniseg.Segmenter{})
		assert.Equal(t, []string{"H", "e\u0302\u0320", "l", "l", "o"}, collect(t, g))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		g := unireader.NewGraphemeReader(strings.NewReader(""), uniseg.Segmenter{})
		_, err := g.Next()
		assert.Equal(t, io.EOF, err)
		_, err = g.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("decode error follows buffered text", func(t *testing.T) {
		t.Parallel()
		g := unireader.NewGraphemeReader(strings.NewReader("ab\xe2\x28\xa1cd"), uniseg.Segmenter{})

		s, err := g.Next()
		require.NoError(t, err)
		assert.Equal(t, "a", s)

		s, err = g.Next()
		require.NoError(t, err)
		assert.Equal(t, "b", s)

		_, err = g.Next()
		var bad *unireader.BadUTF8Error
		require.ErrorAs(t, err, &bad)
		assert.Equal(t, unireader.KindInvalidEncoding, bad.Kind)
		assert.Equal(t, []byte{0xe2, 0x28, 0xa1}, bad.Bytes)

		s, err = g.Next()
		require.NoError(t, err)
		assert.Equal(t, "c", s)

		s, err = g.Next()
		require.NoError(t, err)
		assert.Equal(t, "d", s)

		_, err = g.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("truncated input ends with error", func(t *testing.T) {
		t.Parallel()
		g := unireader.NewGraphemeReader(strings.NewReader("ok\xf0\x9f"), uniseg.Segmenter{})
		assert.Equal(t, []string{
			"o",
			"k",
			"<incomplete utf-8 code point at end of stream: f0 9f>",
		}, collect(t, g))
	})

	t.Run("many combining marks", func(t *testing.T) {
		t.Parallel()
		marks := strings.Repeat("\u0300\u0301\u0302\u0303\u0304\u0305\u0306\u0307\u0308\u0309", 5)
		var sb strings.Builder
		for _, base := range "Zalgo" {
			sb.WriteRune(base)
			sb.WriteString(marks)
		}

		g := unireader.NewGraphemeReader(strings.NewReader(sb.String()), uniseg.Segmenter{})
		got := collect(t, g)
		require.Len(t, got, 5)
		for i, base := range "Zalgo" {
			assert.Equal(t, string(base)+marks, got[i])
			assert.Len(t, got[i], 1+len(marks))
		}
	})

	t.Run("concatenated clusters reproduce the input", func(t *testing.T) {
		t.Parallel()
		inputs := []string{
			"hello, world",
			"a\r\nb\n",
			"👨\u200d👩\u200d👧\u200d👦 family",
			"🇵🇱🇺🇦🇯🇵",
			"한국어 ᄀᄀᄀ각ᆨᆨ",
			"नमस\u094dत\u0947",
			"e\u0301\u0301\u0301x",
		}
		for _, input := range inputs {
			g := unireader.NewGraphemeReader(strings.NewReader(input), uniseg.Segmenter{})
			assert.Equal(t, input, strings.Join(collect(t, g), ""))
		}
	})
}

func TestGraphemes_SourceErrors(t *testing.T) {
	t.Parallel()

	t.Run("forwards error at once when nothing is buffered", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		src := mock.CodePoints(mock.Step[unireader.CodePoint]{Err: boom})
		g := unireader.NewGraphemes(src, uniseg.Segmenter{})

		_, err := g.Next()
		assert.Same(t, boom, err)
		_, err = g.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("defers error behind buffered cluster exactly once", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		steps := codePoints("xe\u0301")
		steps = append(steps, mock.Step[unireader.CodePoint]{Err: boom})
		steps = append(steps, codePoints("y")...)
		g := unireader.NewGraphemes(mock.CodePoints(steps...), uniseg.Segmenter{})

		s, err := g.Next()
		require.NoError(t, err)
		assert.Equal(t, "x", s)

		s, err = g.Next()
		require.NoError(t, err)
		assert.Equal(t, "e\u0301", s)

		_, err = g.Next()
		assert.Same(t, boom, err)

		s, err = g.Next()
		require.NoError(t, err)
		assert.Equal(t, "y", s)

		_, err = g.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("consecutive errors keep their order", func(t *testing.T) {
		t.Parallel()
		first := errors.New("first")
		second := errors.New("second")
		steps := codePoints("a")
		steps = append(steps,
			mock.Step[unireader.CodePoint]{Err: first},
			mock.Step[unireader.CodePoint]{Err: second},
		)
		g := unireader.NewGraphemes(mock.CodePoints(steps...), uniseg.Segmenter{})

		s, err := g.Next()
		require.NoError(t, err)
		assert.Equal(t, "a", s)
		_, err = g.Next()
		assert.Same(t, first, err)
		_, err = g.Next()
		assert.Same(t, second, err)
		_, err = g.Next()
		assert.Equal(t, io.EOF, err)
	})
}

func TestGraphemes_ReadsOneCodePointAhead(t *testing.T) {
	t.Parallel()
	steps := codePoints("abc")
	pulls := 0
	src := &mock.CodePointSource{NextFn: func() (unireader.CodePoint, error) {
		if pulls >= len(steps) {
			return unireader.CodePoint{}, io.EOF
		}
		s := steps[pulls]
		pulls++
		return s.Value, s.Err
	}}
	g := unireader.NewGraphemes(src, uniseg.Segmenter{})

	s, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", s)
	assert.Equal(t, 2, pulls)

	s, err = g.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", s)
	assert.Equal(t, 3, pulls)
}

func TestGraphemes_InjectedSegmenter(t *testing.T) {
	t.Parallel()

	// Splits after every code point except before "+".
	seg := unireader.SegmenterFunc(func(text string) []int {
		var bounds []int
		for i, r := range text {
			if r != '+' {
				bounds = append(bounds, i)
			}
		}
		return bounds
	})

	var calls []string
	spy := &mock.Segmenter{BoundariesFn: func(text string) []int {
		calls = append(calls, text)
		return seg.Boundaries(text)
	}}

	g := unireader.NewGraphemeReader(strings.NewReader("a++bc+"), spy)
	assert.Equal(t, []string{"a++", "b", "c+"}, collect(t, g))
	assert.Equal(t, []string{"a", "a+", "a++", "a++b", "bc", "c+"}, calls)
}

type boundedSpy struct {
	uniseg.Segmenter
	limits []int
}

func (s *boundedSpy) Boundaries(string) []int {
	panic("Boundaries called on a bounded segmenter")
}

func (s *boundedSpy) FirstBoundaries(text string, n int) []int {
	s.limits = append(s.limits, n)
	return s.Segmenter.FirstBoundaries(text, n)
}

func TestGraphemes_PrefersBoundedSegmenter(t *testing.T) {
	t.Parallel()

	spy := &boundedSpy{}
	g := unireader.NewGraphemeReader(strings.NewReader("abc"), spy)
	assert.Equal(t, []string{"a", "b", "c"}, collect(t, g))
	assert.Equal(t, []int{2, 2, 2}, spy.limits)
}
