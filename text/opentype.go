package text

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/batch/geom"
	"github.com/gogpu/batch/internal/cache"
)

// maxCachedFaces bounds the number of (font, size, dpi) faces kept alive.
const maxCachedFaces = 64

type fontKey struct {
	family string
	style  FontStyle
}

type faceKey struct {
	fontKey
	size float32
	dpi  float32
}

// OpenTypeFonts is a font provider backed by golang.org/x/image/font/opentype.
// It implements FontMetrics, GlyphRasterizer and a kerning-aware Shaper.
//
// Fonts are registered once per family and style; faces for each size and
// DPI are created on demand and cached. OpenTypeFonts is safe for
// concurrent use.
type OpenTypeFonts struct {
	// mu guards fonts and serializes face use; x/image faces keep
	// internal buffers and are not safe for concurrent use.
	mu    sync.Mutex
	fonts map[fontKey]*opentype.Font
	faces *cache.Cache[faceKey, xfont.Face]

	hinting xfont.Hinting
}

// NewOpenTypeFonts creates an empty provider.
func NewOpenTypeFonts() *OpenTypeFonts {
	return &OpenTypeFonts{
		fonts:   make(map[fontKey]*opentype.Font),
		faces:   cache.New[faceKey, xfont.Face](maxCachedFaces),
		hinting: xfont.HintingNone,
	}
}

// Register parses TTF/OTF data and registers it under family and style.
// Registering the same family and style again replaces the font.
func (p *OpenTypeFonts) Register(family string, style FontStyle, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("text: failed to parse font %q: %w", family, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	key := fontKey{family: family, style: style}
	if _, replaced := p.fonts[key]; replaced {
		p.faces.Clear()
	}
	p.fonts[key] = f

	Logger().Debug("text: font registered", "family", family, "style", style.String(), "glyphs", f.NumGlyphs())
	return nil
}

// FamilyName returns the family name stored in the font's name table, or ""
// when the font is unknown or has no family name.
func (p *OpenTypeFonts) FamilyName(family string, style FontStyle) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	f, ok := p.fonts[fontKey{family: family, style: style}]
	if !ok {
		return ""
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// face returns the cached face for font at dpi. Caller must hold p.mu.
func (p *OpenTypeFonts) face(font FontIdentity, dpi float32) (xfont.Face, error) {
	if err := font.Validate(); err != nil {
		return nil, err
	}
	fk := fontKey{family: font.Family, style: font.Style}
	f, ok := p.fonts[fk]
	if !ok {
		return nil, &FontNotFoundError{Family: font.Family, Style: font.Style}
	}
	return p.faces.GetOrLoad(faceKey{fontKey: fk, size: font.Size, dpi: dpi}, func() (xfont.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    float64(font.Size),
			DPI:     float64(dpi),
			Hinting: p.hinting,
		})
	})
}

// GlyphBounds implements FontMetrics.
func (p *OpenTypeFonts) GlyphBounds(font FontIdentity, dpi float32, cp rune) (geom.RectangleF, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	face, err := p.face(font, dpi)
	if err != nil {
		return geom.RectangleF{}, err
	}
	b, _, ok := face.GlyphBounds(cp)
	if !ok {
		return geom.RectangleF{}, nil
	}
	return geom.RectF(
		fixedToFloat(b.Min.X),
		fixedToFloat(b.Min.Y),
		fixedToFloat(b.Max.X-b.Min.X),
		fixedToFloat(b.Max.Y-b.Min.Y),
	), nil
}

// DrawGlyph implements GlyphRasterizer.
func (p *OpenTypeFonts) DrawGlyph(dst draw.Image, font FontIdentity, dpi float32, glyph GlyphData) error {
	if glyph.Bounds.Empty() {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	face, err := p.face(font, dpi)
	if err != nil {
		return err
	}

	// Put the pen where the glyph's top-left lands on Bounds.
	dot := fixed.Point26_6{
		X: fixed.I(glyph.Bounds.X - int(glyph.Offset.X)),
		Y: fixed.I(glyph.Bounds.Y - int(glyph.Offset.Y)),
	}
	dr, mask, maskp, _, ok := face.Glyph(dot, glyph.Codepoint)
	if !ok {
		return nil
	}
	clip := image.Rect(glyph.Bounds.X, glyph.Bounds.Y, glyph.Bounds.Right(), glyph.Bounds.Bottom())
	r := dr.Intersect(clip)
	if r.Empty() {
		return nil
	}
	draw.DrawMask(dst, r, image.White, image.Point{}, mask, maskp.Add(r.Min.Sub(dr.Min)), draw.Over)
	return nil
}

// Shape implements Shaper. Glyphs advance along the baseline with pair
// kerning applied; newlines start a new line one font height lower.
func (p *OpenTypeFonts) Shape(s string, font FontIdentity, dpi float32) ([]GlyphPosition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	face, err := p.face(font, dpi)
	if err != nil {
		return nil, err
	}
	lineHeight := fixedToFloat(face.Metrics().Height)
	return shapeLines(s, lineHeight, func(line string) ([]GlyphPosition, error) {
		out := make([]GlyphPosition, 0, len(line))
		var pen fixed.Int26_6
		prev := rune(-1)
		for _, r := range line {
			if prev >= 0 {
				pen += face.Kern(prev, r)
			}
			out = append(out, GlyphPosition{Codepoint: r, X: fixedToFloat(pen)})
			adv, _ := face.GlyphAdvance(r)
			pen += adv
			prev = r
		}
		return out, nil
	})
}

// fixedToFloat converts a fixed.Int26_6 value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
