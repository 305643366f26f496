package batch

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/gogpu/batch/geom"
)

// Color is a packed 8-bit-per-channel color, byte order A-B-G-R from the
// most to the least significant byte. In little-endian memory the bytes read
// R, G, B, A, matching an Unorm8x4 vertex attribute.
//
// Channels are straight (not premultiplied) unless produced by Premultiply.
type Color uint32

// NewColor packs the four channels.
func NewColor(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGB returns an opaque color from float components in [0, 1].
func RGB(r, g, b float32) Color {
	return RGBAf(r, g, b, 1)
}

// RGBAf returns a color from float components in [0, 1].
// Out-of-range values are clamped.
func RGBAf(r, g, b, a float32) Color {
	return NewColor(unit8(r), unit8(g), unit8(b), unit8(a))
}

// ColorFromStd converts any color.Color to a straight-alpha Color.
func ColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColor(n.R, n.G, n.B, n.A)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
// Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint32
	v[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			if !parseHex(hex[i:i+1], &v[i]) {
				return Black
			}
			v[i] *= 17
		}
	case 6, 8:
		for i := range len(hex) / 2 {
			if !parseHex(hex[2*i:2*i+2], &v[i]) {
				return Black
			}
		}
	default:
		return Black
	}
	return NewColor(uint8(v[0]), uint8(v[1]), uint8(v[2]), uint8(v[3]))
}

// parseHex parses hexadecimal digits into val.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// Premultiply returns c with the color channels multiplied by alpha.
func (c Color) Premultiply() Color {
	a := uint32(c.A())
	mul := func(v uint8) uint8 { return uint8((uint32(v)*a + 127) / 255) }
	return NewColor(mul(c.R()), mul(c.G()), mul(c.B()), c.A())
}

// Lerp performs linear interpolation between two colors per channel.
func (c Color) Lerp(other Color, t float32) Color {
	ch := func(a, b uint8) uint8 {
		return uint8(math32.Round(geom.Lerp(float32(a), float32(b), t)))
	}
	return NewColor(ch(c.R(), other.R()), ch(c.G(), other.G()), ch(c.B(), other.B()), ch(c.A(), other.A()))
}

// String returns the color as #RRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R(), c.G(), c.B(), c.A())
}

// unit8 maps [0, 1] to [0, 255] with clamping.
func unit8(x float32) uint8 {
	return uint8(math32.Round(min(max(x, 0), 1) * 255))
}

// Common colors
var (
	Black       = NewColor(0, 0, 0, 255)
	White       = NewColor(255, 255, 255, 255)
	Red         = NewColor(255, 0, 0, 255)
	Green       = NewColor(0, 255, 0, 255)
	Blue        = NewColor(0, 0, 255, 255)
	Yellow      = NewColor(255, 255, 0, 255)
	Cyan        = NewColor(0, 255, 255, 255)
	Magenta     = NewColor(255, 0, 255, 255)
	Transparent = NewColor(0, 0, 0, 0)
)
