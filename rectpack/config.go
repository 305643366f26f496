package rectpack

import "fmt"

// Heuristic selects the free rectangle a new rectangle is placed into.
type Heuristic int

const (
	// BestShortSideFit minimizes the shorter leftover side of the free rectangle.
	BestShortSideFit Heuristic = iota
	// BestLongSideFit minimizes the longer leftover side.
	BestLongSideFit
	// BestAreaFit picks the smallest free rectangle that fits.
	BestAreaFit
	// BottomLeft minimizes the resulting top edge (Tetris style).
	BottomLeft
	// ContactPoint maximizes the perimeter touching placed rectangles and bin edges.
	ContactPoint
)

// String returns the short name of the heuristic.
func (h Heuristic) String() string {
	switch h {
	case BestShortSideFit:
		return "Bssf"
	case BestLongSideFit:
		return "Blsf"
	case BestAreaFit:
		return "Baf"
	case BottomLeft:
		return "BottomLeft"
	case ContactPoint:
		return "ContactPoint"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// GrowRule controls how the bin grows when nothing fits.
type GrowRule int

const (
	// GrowNone never grows the bin; a rectangle that does not fit fails.
	GrowNone GrowRule = iota
	// GrowWidth doubles the bin width.
	GrowWidth
	// GrowHeight doubles the bin height.
	GrowHeight
	// GrowBoth alternates between width and height.
	GrowBoth
)

// String returns the name of the grow rule.
func (g GrowRule) String() string {
	switch g {
	case GrowNone:
		return "None"
	case GrowWidth:
		return "Width"
	case GrowHeight:
		return "Height"
	case GrowBoth:
		return "Both"
	default:
		return fmt.Sprintf("GrowRule(%d)", int(g))
	}
}

// Default packer settings.
const (
	// DefaultSize is the initial bin width and height.
	DefaultSize = 256

	// DefaultMaxSize is the largest bin dimension, matching the texture
	// limit of most GPUs.
	DefaultMaxSize = 8192

	// DefaultPadding keeps one empty texel between neighbours so that
	// linear sampling does not bleed.
	DefaultPadding = 1
)

// Config holds packer configuration.
type Config struct {
	// Width and Height are the initial bin extents.
	// Default: 256
	Width, Height int

	// MaxWidth and MaxHeight cap bin growth. Zero selects DefaultMaxSize
	// (or the initial extent if that is larger).
	// Default: 8192
	MaxWidth, MaxHeight int

	// Padding is reserved on every side of each rectangle.
	// Default: 1
	Padding int

	// Heuristic selects the placement rule.
	// Default: BestShortSideFit
	Heuristic Heuristic

	// Grow controls growth when nothing fits.
	// Default: GrowBoth
	Grow GrowRule
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultSize,
		Height:    DefaultSize,
		MaxWidth:  DefaultMaxSize,
		MaxHeight: DefaultMaxSize,
		Padding:   DefaultPadding,
		Heuristic: BestShortSideFit,
		Grow:      GrowBoth,
	}
}

// withDefaults fills zero ceilings.
func (c Config) withDefaults() Config {
	if c.MaxWidth == 0 {
		c.MaxWidth = max(DefaultMaxSize, c.Width)
	}
	if c.MaxHeight == 0 {
		c.MaxHeight = max(DefaultMaxSize, c.Height)
	}
	return c
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width < 1 {
		return &ConfigError{Field: "Width", Reason: "must be at least 1"}
	}
	if c.Height < 1 {
		return &ConfigError{Field: "Height", Reason: "must be at least 1"}
	}
	if c.MaxWidth < c.Width {
		return &ConfigError{Field: "MaxWidth", Reason: "must be at least Width"}
	}
	if c.MaxHeight < c.Height {
		return &ConfigError{Field: "MaxHeight", Reason: "must be at least Height"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.Heuristic < BestShortSideFit || c.Heuristic > ContactPoint {
		return &ConfigError{Field: "Heuristic", Reason: "unknown heuristic"}
	}
	if c.Grow < GrowNone || c.Grow > GrowBoth {
		return &ConfigError{Field: "Grow", Reason: "unknown grow rule"}
	}
	return nil
}
