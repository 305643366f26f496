package batch

import (
	"image/color"
	"testing"
	"unsafe"
)

func TestColorPacking(t *testing.T) {
	c := NewColor(0x11, 0x22, 0x33, 0x44)
	if uint32(c) != 0x44332211 {
		t.Errorf("packed = %#x, want 0x44332211", uint32(c))
	}
	if c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 || c.A() != 0x44 {
		t.Errorf("channels = %d %d %d %d", c.R(), c.G(), c.B(), c.A())
	}
	if got := c.String(); got != "#11223344" {
		t.Errorf("String() = %q", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", Red},
		{"00ff00", Green},
		{"#00F", Blue},
		{"#fff8", NewColor(255, 255, 255, 0x88)},
		{"11223344", NewColor(0x11, 0x22, 0x33, 0x44)},
		{"", Black},
		{"#12345", Black},
		{"#GG0000", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorConversions(t *testing.T) {
	if got := RGB(1, 0.5, 0); got != NewColor(255, 128, 0, 255) {
		t.Errorf("RGB() = %v", got)
	}
	if got := RGBAf(2, -1, 0, 0.5); got != NewColor(255, 0, 0, 128) {
		t.Errorf("RGBAf() clamped = %v", got)
	}
	if got := ColorFromStd(color.RGBA{R: 64, A: 128}); got != NewColor(127, 0, 0, 128) {
		t.Errorf("ColorFromStd() = %v", got)
	}

	var _ color.Color = Red
	r, g, b, a := NewColor(255, 0, 0, 128).RGBA()
	if r != 0x8080 || g != 0 || b != 0 || a != 0x8080 {
		t.Errorf("RGBA() = %#x %#x %#x %#x", r, g, b, a)
	}
}

func TestColorOps(t *testing.T) {
	if got := Red.WithAlpha(10); got != NewColor(255, 0, 0, 10) {
		t.Errorf("WithAlpha() = %v", got)
	}
	if got := NewColor(255, 100, 0, 128).Premultiply(); got != NewColor(128, 50, 0, 128) {
		t.Errorf("Premultiply() = %v", got)
	}
	if got := Black.Lerp(White, 0.5); got != NewColor(128, 128, 128, 255) {
		t.Errorf("Lerp() = %v", got)
	}
	if got := Red.Lerp(Blue, 0); got != Red {
		t.Errorf("Lerp(0) = %v", got)
	}
}

func TestVertexLayout(t *testing.T) {
	if s := unsafe.Sizeof(Vertex{}); s != VertexSize {
		t.Errorf("sizeof(Vertex) = %d, want %d", s, VertexSize)
	}
	if o := unsafe.Offsetof(Vertex{}.Color); o != 12 {
		t.Errorf("Color offset = %d, want 12", o)
	}
	if o := unsafe.Offsetof(Vertex{}.U); o != 16 {
		t.Errorf("U offset = %d, want 16", o)
	}
	l := VertexLayout()
	if l.ArrayStride != VertexSize || len(l.Attributes) != 3 {
		t.Errorf("VertexLayout() = %+v", l)
	}
}
