package text

import (
	"strings"

	"golang.org/x/image/draw"

	"github.com/gogpu/batch/geom"
)

// FontMetrics measures glyphs. It is consumed by AtlasBuilder.
type FontMetrics interface {
	// GlyphBounds returns the ink bounds of cp in pixels relative to the pen
	// position on the baseline (Y grows down). Codepoints the font has no
	// glyph for measure as an empty rectangle.
	GlyphBounds(font FontIdentity, dpi float32, cp rune) (geom.RectangleF, error)
}

// GlyphRasterizer draws glyph bitmaps.
type GlyphRasterizer interface {
	// DrawGlyph draws glyph into dst so that its bitmap covers glyph.Bounds.
	// Coverage is written as alpha; nothing outside glyph.Bounds is touched.
	DrawGlyph(dst draw.Image, font FontIdentity, dpi float32, glyph GlyphData) error
}

// GlyphPosition is a shaped glyph: a codepoint and the pen position it is
// drawn at, in pixels relative to the text origin.
type GlyphPosition struct {
	Codepoint rune
	X, Y      float32
}

// Shaper lays out a string into positioned glyphs.
type Shaper interface {
	Shape(s string, font FontIdentity, dpi float32) ([]GlyphPosition, error)
}

// shapeLines splits s on newlines, shapes each line with shapeLine and
// offsets line i by i*lineHeight.
func shapeLines(s string, lineHeight float32, shapeLine func(line string) ([]GlyphPosition, error)) ([]GlyphPosition, error) {
	var out []GlyphPosition
	for i, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		glyphs, err := shapeLine(line)
		if err != nil {
			return nil, err
		}
		dy := float32(i) * lineHeight
		for _, g := range glyphs {
			g.Y += dy
			out = append(out, g)
		}
	}
	return out, nil
}
