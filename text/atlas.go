package text

import (
	"slices"

	"github.com/gogpu/batch/geom"
)

// DefaultDPI is the resolution used when none is configured.
const DefaultDPI = 96

// FontAtlas is one packed texture layout shared by several fonts.
// It carries no pixels: use Rasterize to render the bitmap.
// A FontAtlas is immutable and safe for concurrent use.
type FontAtlas struct {
	width  int
	height int
	dpi    float32
	maps   []*GlyphMap
	index  map[FontIdentity]int
}

// NewFontAtlas assembles an atlas from already placed glyph maps.
// AtlasBuilder is the usual way to obtain one.
func NewFontAtlas(width, height int, dpi float32, maps []*GlyphMap) *FontAtlas {
	a := &FontAtlas{
		width:  width,
		height: height,
		dpi:    dpi,
		maps:   slices.Clone(maps),
		index:  make(map[FontIdentity]int, len(maps)),
	}
	for i, m := range a.maps {
		if _, dup := a.index[m.font]; !dup {
			a.index[m.font] = i
		}
	}
	return a
}

// Width returns the atlas width in pixels.
func (a *FontAtlas) Width() int { return a.width }

// Height returns the atlas height in pixels.
func (a *FontAtlas) Height() int { return a.height }

// DPI returns the resolution the glyphs were measured at.
func (a *FontAtlas) DPI() float32 { return a.dpi }

// Len returns the number of glyph maps.
func (a *FontAtlas) Len() int { return len(a.maps) }

// GlyphMap returns the i-th glyph map in registration order.
func (a *FontAtlas) GlyphMap(i int) *GlyphMap { return a.maps[i] }

// GlyphMaps returns a copy of the glyph map list.
func (a *FontAtlas) GlyphMaps() []*GlyphMap { return slices.Clone(a.maps) }

// Lookup returns the glyph map for font.
func (a *FontAtlas) Lookup(font FontIdentity) (*GlyphMap, bool) {
	i, ok := a.index[font]
	if !ok {
		return nil, false
	}
	return a.maps[i], true
}

// UV converts a rectangle in atlas pixels to normalized texture coordinates.
func (a *FontAtlas) UV(bounds geom.Rectangle) geom.RectangleF {
	if a.width == 0 || a.height == 0 {
		return geom.RectangleF{}
	}
	w, h := float32(a.width), float32(a.height)
	return geom.RectF(float32(bounds.X)/w, float32(bounds.Y)/h, float32(bounds.Width)/w, float32(bounds.Height)/h)
}
