package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/batch/geom"
)

var testFont = FontIdentity{Family: "Test", Size: 12}

// makeGlyphMap builds a map whose glyph for cp sits at (cp, 0) in the atlas.
func makeGlyphMap(t *testing.T, ranges ...CharacterRange) *GlyphMap {
	t.Helper()
	merged := MergeRanges(ranges...)
	var glyphs []GlyphData
	for _, r := range merged {
		for cp := r.Start; cp <= r.End; cp++ {
			glyphs = append(glyphs, GlyphData{
				Codepoint: cp,
				Bounds:    geom.Rect(int(cp), 0, 4, 6),
				Offset:    geom.Pt(0, -6),
			})
		}
	}
	m, err := NewGlyphMap(testFont, merged, glyphs)
	require.NoError(t, err)
	return m
}

func TestGlyphMapLookup(t *testing.T) {
	m := makeGlyphMap(t, NewRange('A', 'Z'), NewRange('0', '9'), NewRange(0x416, 0x416), RangeGreek)

	for _, r := range m.Ranges() {
		for cp := r.Start; cp <= r.End; cp++ {
			g, ok := m.GlyphData(cp)
			require.True(t, ok, "codepoint %U", cp)
			assert.Equal(t, cp, g.Codepoint)
			assert.Equal(t, geom.Rect(int(cp), 0, 4, 6), g.Bounds)
		}
	}

	for _, cp := range []rune{0, '/', ':', '@', '[', 'a', 0x415, 0x417, 0x10FFFF} {
		_, ok := m.GlyphData(cp)
		assert.False(t, ok, "codepoint %U should be missing", cp)
		assert.False(t, m.Contains(cp))
	}
	assert.Equal(t, 26+10+1+0x90, m.Len())
}

func TestGlyphMapFallback(t *testing.T) {
	m := makeGlyphMap(t, NewRange('A', 'Z'), NewRange('?', '?'))

	fallback, ok := m.GlyphData('?')
	require.True(t, ok)

	got := m.GlyphDataOr('a', fallback)
	assert.Equal(t, fallback, got)
	assert.Equal(t, rune('?'), got.Codepoint)

	// A present glyph ignores the fallback.
	assert.Equal(t, rune('B'), m.GlyphDataOr('B', fallback).Codepoint)
}

func TestGlyphMapLookupError(t *testing.T) {
	m := makeGlyphMap(t, NewRange('A', 'Z'))

	g, err := m.Lookup('Q')
	require.NoError(t, err)
	assert.Equal(t, rune('Q'), g.Codepoint)

	_, err = m.Lookup('a')
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGlyphNotFound))

	var missing *MissingGlyphError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, rune('a'), missing.Codepoint)
	assert.Equal(t, testFont, missing.Font)
}

func TestGlyphMapEmpty(t *testing.T) {
	m, err := NewGlyphMap(testFont, nil, nil)
	require.NoError(t, err)
	_, ok := m.GlyphData('A')
	assert.False(t, ok)
	assert.Zero(t, m.Len())
}

func TestNewGlyphMapValidation(t *testing.T) {
	glyphs := make([]GlyphData, 10)
	tests := []struct {
		name   string
		ranges []CharacterRange
	}{
		{"reversed", []CharacterRange{{Start: 'b', End: 'a'}}},
		{"overlapping", []CharacterRange{{Start: 'a', End: 'c'}, {Start: 'c', End: 'd', GlyphStart: 3}}},
		{"unsorted", []CharacterRange{{Start: 'x', End: 'x'}, {Start: 'a', End: 'a', GlyphStart: 1}}},
		{"glyphs out of range", []CharacterRange{{Start: 'a', End: 'k'}}},
		{"negative glyph start", []CharacterRange{{Start: 'a', End: 'a', GlyphStart: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGlyphMap(testFont, tt.ranges, glyphs)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestGlyphMapIsImmutable(t *testing.T) {
	ranges := []CharacterRange{{Start: 'a', End: 'a'}}
	glyphs := []GlyphData{{Codepoint: 'a'}}
	m, err := NewGlyphMap(testFont, ranges, glyphs)
	require.NoError(t, err)

	glyphs[0].Codepoint = 'z'
	ranges[0].End = 'c'
	m.Glyphs()[0].Codepoint = 'y'

	g, ok := m.GlyphData('a')
	require.True(t, ok)
	assert.Equal(t, rune('a'), g.Codepoint)
	assert.False(t, m.Contains('b'))
}
