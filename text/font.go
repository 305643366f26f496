package text

import (
	"fmt"
	"strings"
)

// FontStyle is a set of style flags.
type FontStyle uint8

// Font style flags. StyleRegular is the empty set.
const (
	StyleRegular FontStyle = 0
	StyleBold    FontStyle = 1 << 0
	StyleItalic  FontStyle = 1 << 1
)

// String returns a human-readable style name.
func (s FontStyle) String() string {
	switch s {
	case StyleRegular:
		return "regular"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBold | StyleItalic:
		return "bold italic"
	default:
		return fmt.Sprintf("FontStyle(%d)", uint8(s))
	}
}

// FontIdentity names one font at one size and style. It is comparable and
// used as a map key by atlases and font providers.
type FontIdentity struct {
	// Family is the font family name as registered with the font provider.
	Family string
	// Size is the font size in points.
	Size float32
	// Style selects the face within the family.
	Style FontStyle
}

// Validate reports ErrInvalidFont for an empty family or non-positive size.
func (f FontIdentity) Validate() error {
	if strings.TrimSpace(f.Family) == "" || !(f.Size > 0) {
		return fmt.Errorf("%w: %s", ErrInvalidFont, f)
	}
	return nil
}

// PixelSize returns the em size in pixels at the given DPI.
func (f FontIdentity) PixelSize(dpi float32) float32 {
	return f.Size * dpi / 72
}

// String returns e.g. "Go 12pt bold".
func (f FontIdentity) String() string {
	if f.Style == StyleRegular {
		return fmt.Sprintf("%s %gpt", f.Family, f.Size)
	}
	return fmt.Sprintf("%s %gpt %s", f.Family, f.Size, f.Style)
}
