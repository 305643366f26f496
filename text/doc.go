// Package text builds font atlases: packed textures holding every glyph of a
// set of fonts, plus per-font glyph maps that resolve a codepoint to its
// rectangle inside the atlas.
//
// The pipeline is split into small pieces:
//
//   - CharacterRange: an inclusive interval of codepoints, coalesced by MergeRanges
//   - GlyphMap: O(log n) codepoint lookup over sparse ranges
//   - AtlasBuilder: measures glyphs and packs them with rectpack into one FontAtlas
//   - FontMetrics, GlyphRasterizer, Shaper: pluggable font capabilities
//
// OpenTypeFonts implements all three capabilities on top of
// golang.org/x/image/font/opentype. GoTextShaper provides HarfBuzz shaping
// via github.com/go-text/typesetting.
//
// # Example usage
//
//	fonts := text.NewOpenTypeFonts()
//	if err := fonts.Register("Go", text.StyleRegular, goregular.TTF); err != nil {
//	    log.Fatal(err)
//	}
//
//	font := text.FontIdentity{Family: "Go", Size: 16}
//	b := text.NewAtlasBuilder(text.WithDPI(96))
//	if err := b.AddFont(font, text.RangeBasicLatin); err != nil {
//	    log.Fatal(err)
//	}
//	atlas, err := b.CreateAtlas(fonts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Render the atlas bitmap for upload.
//	img, err := text.Rasterize(atlas, fonts)
//
// Atlases and glyph maps are immutable once built and safe to share between
// goroutines. The builder is not safe for concurrent use.
package text
