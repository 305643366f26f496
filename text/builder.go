package text

import (
	"log/slog"
	"slices"
	"unicode"

	"github.com/pkg/errors"

	"github.com/gogpu/batch/geom"
	"github.com/gogpu/batch/rectpack"
)

// FontEntry is one font registered with an AtlasBuilder.
type FontEntry struct {
	Font   FontIdentity
	Ranges []CharacterRange
	// System is set for fonts resolved by the platform rather than loaded
	// by the application.
	System bool
}

// BuilderOption configures an AtlasBuilder.
type BuilderOption func(*AtlasBuilder)

// WithDPI sets the resolution glyphs are measured at.
// Non-positive values are ignored.
func WithDPI(dpi float32) BuilderOption {
	return func(b *AtlasBuilder) {
		if dpi > 0 {
			b.dpi = dpi
		}
	}
}

// WithPacking sets the packer configuration. Zero values inside cfg keep
// their rectpack meaning.
func WithPacking(cfg rectpack.Config) BuilderOption {
	return func(b *AtlasBuilder) {
		b.packing = cfg
	}
}

// AtlasBuilder collects fonts and character ranges and packs all their
// glyphs into one FontAtlas.
//
// AtlasBuilder is not safe for concurrent use.
type AtlasBuilder struct {
	dpi     float32
	packing rectpack.Config
	entries []FontEntry
	index   map[FontIdentity]int
}

// NewAtlasBuilder creates a builder with DefaultDPI and
// rectpack.DefaultConfig packing.
func NewAtlasBuilder(opts ...BuilderOption) *AtlasBuilder {
	b := &AtlasBuilder{
		dpi:     DefaultDPI,
		packing: rectpack.DefaultConfig(),
		index:   make(map[FontIdentity]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddFont registers ranges for an application font. Registering the same
// identity again merges the ranges into the existing entry.
func (b *AtlasBuilder) AddFont(font FontIdentity, ranges ...CharacterRange) error {
	return b.add(font, false, ranges)
}

// AddSystemFont is like AddFont for fonts provided by the platform.
// The system flag of an entry is fixed by its first registration.
func (b *AtlasBuilder) AddSystemFont(font FontIdentity, ranges ...CharacterRange) error {
	return b.add(font, true, ranges)
}

func (b *AtlasBuilder) add(font FontIdentity, system bool, ranges []CharacterRange) error {
	if err := font.Validate(); err != nil {
		return err
	}
	for _, r := range ranges {
		if r.Start < 0 || r.End > unicode.MaxRune {
			return errors.Wrapf(ErrInvalidRange, "%U-%U outside Unicode", r.Start, r.End)
		}
	}
	if i, ok := b.index[font]; ok {
		e := &b.entries[i]
		e.Ranges = MergeRanges(append(slices.Clone(e.Ranges), ranges...)...)
		return nil
	}
	b.index[font] = len(b.entries)
	b.entries = append(b.entries, FontEntry{
		Font:   font,
		Ranges: MergeRanges(ranges...),
		System: system,
	})
	return nil
}

// Entries returns a copy of the registered fonts in registration order.
func (b *AtlasBuilder) Entries() []FontEntry {
	out := make([]FontEntry, len(b.entries))
	for i, e := range b.entries {
		out[i] = e
		out[i].Ranges = slices.Clone(e.Ranges)
	}
	return out
}

// DPI returns the configured resolution.
func (b *AtlasBuilder) DPI() float32 { return b.dpi }

// CreateAtlas measures every glyph of every entry with metrics and packs
// them into one shared bin. Any measurement or packing failure aborts the
// build; no partial atlas is returned.
func (b *AtlasBuilder) CreateAtlas(metrics FontMetrics) (*FontAtlas, error) {
	packer, err := rectpack.New(b.packing)
	if err != nil {
		return nil, errors.Wrap(err, "text: atlas packer")
	}

	log := Logger()
	maps := make([]*GlyphMap, 0, len(b.entries))
	for _, e := range b.entries {
		glyphs, sizes, err := b.measure(metrics, e)
		if err != nil {
			return nil, err
		}

		rects, err := packer.Insert(sizes)
		if err != nil {
			return nil, errors.Wrapf(err, "text: pack %s", e.Font)
		}
		for i := range glyphs {
			glyphs[i].Bounds = rects[i]
		}

		m, err := NewGlyphMap(e.Font, e.Ranges, glyphs)
		if err != nil {
			return nil, errors.Wrapf(err, "text: glyph map for %s", e.Font)
		}
		maps = append(maps, m)

		log.Debug("text: font packed",
			slog.String("font", e.Font.String()),
			slog.Int("glyphs", len(glyphs)),
			slog.Int("binWidth", packer.Width()),
			slog.Int("binHeight", packer.Height()))
	}

	atlas := NewFontAtlas(packer.UsedWidth(), packer.UsedHeight(), b.dpi, maps)
	log.Info("text: atlas built",
		slog.Int("fonts", len(maps)),
		slog.Int("width", atlas.Width()),
		slog.Int("height", atlas.Height()),
		slog.Float64("occupancy", packer.Occupancy()))
	return atlas, nil
}

// measure returns one unplaced glyph and one pixel size per codepoint of e,
// in range order. Sizes are rounded outward so no ink is clipped.
func (b *AtlasBuilder) measure(metrics FontMetrics, e FontEntry) ([]GlyphData, []rectpack.Size, error) {
	n := countGlyphs(e.Ranges)
	glyphs := make([]GlyphData, 0, n)
	sizes := make([]rectpack.Size, 0, n)
	for _, r := range e.Ranges {
		for cp := r.Start; cp <= r.End; cp++ {
			bounds, err := metrics.GlyphBounds(e.Font, b.dpi, cp)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "text: measure %U in %s", cp, e.Font)
			}
			g := GlyphData{Codepoint: cp}
			var size rectpack.Size
			if !bounds.Empty() {
				px := bounds.ToInt()
				g.Offset = geom.Pt(float32(px.X), float32(px.Y))
				size = rectpack.Size{Width: px.Width, Height: px.Height}
			}
			glyphs = append(glyphs, g)
			sizes = append(sizes, size)
		}
	}
	return glyphs, sizes, nil
}
