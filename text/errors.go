package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrGlyphNotFound is returned when a codepoint has no glyph in a map.
	ErrGlyphNotFound = errors.New("text: glyph not found")

	// ErrInvalidFont is returned for font identities without a family or
	// with a non-positive size.
	ErrInvalidFont = errors.New("text: invalid font identity")

	// ErrInvalidRange is returned for character ranges that are reversed,
	// unsorted, overlapping or point outside the glyph slice.
	ErrInvalidRange = errors.New("text: invalid character range")
)

// MissingGlyphError reports a codepoint absent from a glyph map.
type MissingGlyphError struct {
	Font      FontIdentity
	Codepoint rune
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("text: no glyph for %U in %s", e.Codepoint, e.Font)
}

func (e *MissingGlyphError) Unwrap() error {
	return ErrGlyphNotFound
}

// FontNotFoundError is returned when a font identity was never registered.
type FontNotFoundError struct {
	Family string
	Style  FontStyle
}

func (e *FontNotFoundError) Error() string {
	return fmt.Sprintf("text: font %q (%s) not registered", e.Family, e.Style)
}
