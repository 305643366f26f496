package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestGoTextShaper(t *testing.T) {
	s := NewGoTextShaper()
	require.NoError(t, s.Register("Go", StyleRegular, goregular.TTF))

	glyphs, err := s.Shape("Hello", goFont, 96)
	require.NoError(t, err)
	require.Len(t, glyphs, 5)
	for i, r := range "Hello" {
		assert.Equal(t, r, glyphs[i].Codepoint)
		if i > 0 {
			assert.Greater(t, glyphs[i].X, glyphs[i-1].X)
		}
	}
	assert.Zero(t, glyphs[0].X)
}

func TestGoTextShaperKeepsOneGlyphPerRune(t *testing.T) {
	s := NewGoTextShaper()
	require.NoError(t, s.Register("Go", StyleRegular, goregular.TTF))

	const str = "office fjord"
	glyphs, err := s.Shape(str, goFont, 96)
	require.NoError(t, err)
	require.Len(t, glyphs, len([]rune(str)))
	for i, r := range []rune(str) {
		assert.Equal(t, r, glyphs[i].Codepoint, "glyph %d", i)
	}

	tags := make(map[string]uint32)
	for _, f := range disabledFeatures {
		tags[f.Tag.String()] = f.Value
	}
	for _, tag := range []string{"liga", "clig"} {
		v, ok := tags[tag]
		assert.True(t, ok, "feature %s not set", tag)
		assert.Zero(t, v, "feature %s enabled", tag)
	}
}

func TestGoTextShaperLines(t *testing.T) {
	s := NewGoTextShaper()
	s.LineSpacing = 2
	require.NoError(t, s.Register("Go", StyleRegular, goregular.TTF))

	glyphs, err := s.Shape("ab\ncd", goFont, 72)
	require.NoError(t, err)
	require.Len(t, glyphs, 4)
	assert.Zero(t, glyphs[2].X)
	assert.InDelta(t, 32, glyphs[2].Y-glyphs[0].Y, 1e-3)
}

func TestGoTextShaperErrors(t *testing.T) {
	s := NewGoTextShaper()
	assert.ErrorIs(t, s.Register("Go", StyleRegular, nil), ErrEmptyFontData)

	_, err := s.Shape("x", goFont, 96)
	var notFound *FontNotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = s.Shape("x", FontIdentity{Family: "Go"}, 96)
	assert.ErrorIs(t, err, ErrInvalidFont)
}

func TestGoTextShaperMatchesOpenType(t *testing.T) {
	s := NewGoTextShaper()
	require.NoError(t, s.Register("Go", StyleRegular, goregular.TTF))
	fonts := newGoFonts(t)

	const str = "Batch"
	a, err := s.Shape(str, goFont, 96)
	require.NoError(t, err)
	b, err := fonts.Shape(str, goFont, 96)
	require.NoError(t, err)
	require.Len(t, a, len(b))
	for i := range a {
		assert.Equal(t, b[i].Codepoint, a[i].Codepoint)
		assert.InDelta(t, b[i].X, a[i].X, 3, "pen x of %q", b[i].Codepoint)
	}
}
