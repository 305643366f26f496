package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// disabledFeatures lists the OpenType features that merge several
// codepoints into one glyph.
var disabledFeatures = []shaping.FontFeature{
	{Tag: ot.MustNewTag("liga"), Value: 0},
	{Tag: ot.MustNewTag("clig"), Value: 0},
	{Tag: ot.MustNewTag("dlig"), Value: 0},
}

// DefaultLineSpacing is the line height of GoTextShaper as a multiple of
// the pixel font size.
const DefaultLineSpacing = 1.2

// GoTextShaper shapes text with HarfBuzz via go-text/typesetting. Unlike
// the OpenTypeFonts shaper it applies contextual alternates and mark
// positioning. Every output glyph maps back to the single codepoint that
// produced it so it can be looked up in a GlyphMap; an atlas holds one glyph
// per codepoint, so the standard and contextual ligature features are
// turned off.
//
// GoTextShaper is safe for concurrent use. Parsed font.Font values are
// shared; a lightweight font.Face is created per Shape call and the
// HarfbuzzShaper instances are pooled.
type GoTextShaper struct {
	// LineSpacing multiplies the pixel size to get the distance between
	// lines. Zero means DefaultLineSpacing.
	LineSpacing float32

	shaperPool sync.Pool

	mu    sync.RWMutex
	fonts map[fontKey]*font.Font
}

// NewGoTextShaper creates an empty shaper. Fonts must be registered before
// shaping.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: make(map[fontKey]*font.Font),
	}
}

// Register parses TTF/OTF data and registers it under family and style.
func (s *GoTextShaper) Register(family string, style FontStyle, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("text: failed to parse font %q: %w", family, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fonts[fontKey{family: family, style: style}] = face.Font
	return nil
}

// Shape implements Shaper.
func (s *GoTextShaper) Shape(str string, id FontIdentity, dpi float32) ([]GlyphPosition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	f, ok := s.fonts[fontKey{family: id.Family, style: id.Style}]
	s.mu.RUnlock()
	if !ok {
		return nil, &FontNotFoundError{Family: id.Family, Style: id.Style}
	}

	size := id.PixelSize(dpi)
	spacing := s.LineSpacing
	if spacing <= 0 {
		spacing = DefaultLineSpacing
	}

	return shapeLines(str, size*spacing, func(line string) ([]GlyphPosition, error) {
		runes := []rune(line)
		input := shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: di.DirectionLTR,
			Face:      font.NewFace(f),
			Size:      fixed.Int26_6(size * 64),
			Script:    detectScript(runes),
			Language:  language.NewLanguage("en"),

			FontFeatures: disabledFeatures,
		}

		hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
		output := hb.Shape(input)
		s.shaperPool.Put(hb)

		return convertGlyphs(output.Glyphs, runes), nil
	})
}

// detectScript returns the script of the first non-space rune.
// Mixed-script text should be split by the caller before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs turns shaped glyphs into pen positions, mapping each glyph
// back to the rune that starts its cluster.
func convertGlyphs(glyphs []shaping.Glyph, runes []rune) []GlyphPosition {
	out := make([]GlyphPosition, 0, len(glyphs))
	var pen fixed.Int26_6
	for _, g := range glyphs {
		idx := g.TextIndex()
		if idx >= 0 && idx < len(runes) {
			out = append(out, GlyphPosition{
				Codepoint: runes[idx],
				X:         fixedToFloat(pen + g.XOffset),
				Y:         fixedToFloat(g.YOffset),
			})
		}
		pen += g.Advance
	}
	return out
}
