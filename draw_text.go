package batch

import (
	"log/slog"

	"github.com/gogpu/batch/geom"
	"github.com/gogpu/batch/text"
)

type fontState struct {
	atlas   *text.FontAtlas
	glyphs  *text.GlyphMap
	font    text.FontIdentity
	texture TextureID

	fallback    rune
	hasFallback bool

	placed []placedGlyph
}

type placedGlyph struct {
	pos   geom.Point2
	glyph text.GlyphData
}

// SetFont selects font from atlas for DrawText. texture must hold the
// atlas bitmap, typically uploaded with UploadAtlas.
func (b *Batcher) SetFont(atlas *text.FontAtlas, font text.FontIdentity, texture TextureID) error {
	if atlas == nil {
		return invalidArg("nil atlas")
	}
	glyphs, ok := atlas.Lookup(font)
	if !ok {
		return invalidArg("font %s not in atlas", font)
	}
	b.font.atlas = atlas
	b.font.glyphs = glyphs
	b.font.font = font
	b.font.texture = texture
	return nil
}

// Font returns the active font and whether one is set.
func (b *Batcher) Font() (text.FontIdentity, bool) {
	return b.font.font, b.font.glyphs != nil
}

// ClearFont removes the active font.
func (b *Batcher) ClearFont() {
	placed := b.font.placed
	b.font = fontState{placed: placed[:0]}
}

// SetFallbackGlyph makes DrawText draw r for codepoints the active font
// has no glyph for.
func (b *Batcher) SetFallbackGlyph(r rune) {
	b.font.fallback = r
	b.font.hasFallback = true
}

// ClearFallbackGlyph makes DrawText fail on missing glyphs again.
func (b *Batcher) ClearFallbackGlyph() {
	b.font.fallback = 0
	b.font.hasFallback = false
}

// DrawText draws s with the active font. origin is the pen position of the
// first glyph on the baseline; glyph positions come from the configured
// shaper.
//
// Every glyph is resolved before anything is emitted, so a missing glyph
// leaves the buffers unchanged. Glyphs are drawn as sprites of the font
// texture and share one batch; the previous sprite is restored afterwards.
func (b *Batcher) DrawText(s string, origin geom.Point2, c Color) error {
	if !b.started {
		return ErrNotStarted
	}
	f := &b.font
	if f.glyphs == nil {
		return ErrNoFont
	}
	if b.opts.shaper == nil {
		return ErrNoShaper
	}

	positions, err := b.opts.shaper.Shape(s, f.font, f.atlas.DPI())
	if err != nil {
		return err
	}

	f.placed = f.placed[:0]
	for _, p := range positions {
		g, err := b.resolveGlyph(p.Codepoint)
		if err != nil {
			return err
		}
		if g.Bounds.Empty() {
			continue
		}
		f.placed = append(f.placed, placedGlyph{pos: geom.Pt(p.X, p.Y), glyph: g})
	}
	if len(f.placed) == 0 {
		return nil
	}

	prevTexture, prevRect := b.state.Texture, b.uvRect
	b.state.Texture = f.texture
	defer func() {
		b.state.Texture = prevTexture
		b.setUVRect(prevRect)
	}()

	if err := b.begin(4*len(f.placed), 6*len(f.placed)); err != nil {
		return err
	}
	for _, pg := range f.placed {
		g := pg.glyph
		b.setUVRect(f.atlas.UV(g.Bounds))
		x := origin.X + pg.pos.X + g.Offset.X
		y := origin.Y + pg.pos.Y + g.Offset.Y
		w, h := float32(g.Bounds.Width), float32(g.Bounds.Height)
		base := b.vertex(x, y, c, 0, 0)
		b.vertex(x+w, y, c, 1, 0)
		b.vertex(x+w, y+h, c, 1, 1)
		b.vertex(x, y+h, c, 0, 1)
		b.quad(base)
	}
	return nil
}

func (b *Batcher) resolveGlyph(cp rune) (text.GlyphData, error) {
	g, err := b.font.glyphs.Lookup(cp)
	if err == nil || !b.font.hasFallback {
		return g, err
	}
	if fb, ok := b.font.glyphs.GlyphData(b.font.fallback); ok {
		return fb, nil
	}
	Logger().Warn("batch: fallback glyph missing",
		slog.String("font", b.font.font.String()),
		slog.String("fallback", string(b.font.fallback)))
	return g, err
}
