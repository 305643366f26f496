package text

import (
	"image"

	"github.com/pkg/errors"
)

// Rasterize renders every glyph of atlas into a new alpha bitmap of the
// atlas size using r.
func Rasterize(atlas *FontAtlas, r GlyphRasterizer) (*image.Alpha, error) {
	img := image.NewAlpha(image.Rect(0, 0, atlas.Width(), atlas.Height()))
	for _, m := range atlas.maps {
		for _, g := range m.glyphs {
			if err := r.DrawGlyph(img, m.font, atlas.dpi, g); err != nil {
				return nil, errors.Wrapf(err, "text: rasterize %U in %s", g.Codepoint, m.font)
			}
		}
	}
	return img, nil
}
