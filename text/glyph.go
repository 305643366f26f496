package text

import (
	"fmt"
	"slices"

	"github.com/gogpu/batch/geom"
)

// GlyphData describes one glyph inside an atlas.
type GlyphData struct {
	// Codepoint is the character the glyph renders.
	Codepoint rune

	// Bounds is the glyph bitmap rectangle in atlas pixels. It is empty for
	// glyphs without ink, such as spaces.
	Bounds geom.Rectangle

	// Offset is the bitmap's top-left corner relative to the pen position
	// on the baseline, in pixels (Y grows down).
	Offset geom.Point2
}

// GlyphMap maps codepoints of one font to their glyphs.
// Lookups are O(log n) in the number of ranges. A GlyphMap is immutable.
type GlyphMap struct {
	font   FontIdentity
	ranges []CharacterRange
	glyphs []GlyphData
}

// NewGlyphMap creates a glyph map. Ranges must be sorted by Start and
// disjoint, and every range's glyphs must lie inside glyphs starting at its
// GlyphStart. The slices are copied.
func NewGlyphMap(font FontIdentity, ranges []CharacterRange, glyphs []GlyphData) (*GlyphMap, error) {
	for i, r := range ranges {
		if r.End < r.Start {
			return nil, fmt.Errorf("%w: %U-%U is reversed", ErrInvalidRange, r.Start, r.End)
		}
		if i > 0 && r.Start <= ranges[i-1].End {
			return nil, fmt.Errorf("%w: %U-%U overlaps or precedes %U-%U",
				ErrInvalidRange, r.Start, r.End, ranges[i-1].Start, ranges[i-1].End)
		}
		if r.GlyphStart < 0 || r.GlyphStart+r.Len() > len(glyphs) {
			return nil, fmt.Errorf("%w: %U-%U glyphs [%d,%d) outside %d glyphs",
				ErrInvalidRange, r.Start, r.End, r.GlyphStart, r.GlyphStart+r.Len(), len(glyphs))
		}
	}
	return &GlyphMap{
		font:   font,
		ranges: slices.Clone(ranges),
		glyphs: slices.Clone(glyphs),
	}, nil
}

// Font returns the font the map belongs to.
func (m *GlyphMap) Font() FontIdentity { return m.font }

// Ranges returns a copy of the character ranges.
func (m *GlyphMap) Ranges() []CharacterRange { return slices.Clone(m.ranges) }

// Glyphs returns a copy of the flat glyph slice.
func (m *GlyphMap) Glyphs() []GlyphData { return slices.Clone(m.glyphs) }

// Len returns the number of codepoints covered by the map.
func (m *GlyphMap) Len() int { return countGlyphs(m.ranges) }

// Contains reports whether cp has a glyph.
func (m *GlyphMap) Contains(cp rune) bool {
	_, ok := m.GlyphData(cp)
	return ok
}

// GlyphData returns the glyph for cp, or false if no range contains it.
func (m *GlyphMap) GlyphData(cp rune) (GlyphData, bool) {
	lo, hi := 0, len(m.ranges)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		r := m.ranges[mid]
		switch {
		case cp < r.Start:
			hi = mid - 1
		case cp > r.End:
			lo = mid + 1
		default:
			return m.glyphs[r.GlyphStart+int(cp-r.Start)], true
		}
	}
	return GlyphData{}, false
}

// GlyphDataOr returns the glyph for cp, or fallback if there is none.
func (m *GlyphMap) GlyphDataOr(cp rune, fallback GlyphData) GlyphData {
	if g, ok := m.GlyphData(cp); ok {
		return g
	}
	return fallback
}

// Lookup returns the glyph for cp or a *MissingGlyphError.
func (m *GlyphMap) Lookup(cp rune) (GlyphData, error) {
	if g, ok := m.GlyphData(cp); ok {
		return g, nil
	}
	return GlyphData{}, &MissingGlyphError{Font: m.font, Codepoint: cp}
}
