package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Rectangle is an axis-aligned rectangle with integer coordinates.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Rect is a convenience function to create a Rectangle.
func Rect(x, y, width, height int) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Left returns the X coordinate of the left edge.
func (r Rectangle) Left() int { return r.X }

// Top returns the Y coordinate of the top edge.
func (r Rectangle) Top() int { return r.Y }

// Right returns the X coordinate of the right edge (exclusive).
func (r Rectangle) Right() int { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge (exclusive).
func (r Rectangle) Bottom() int { return r.Y + r.Height }

// TopLeft returns the top-left corner.
func (r Rectangle) TopLeft() Point2 { return Pt(float32(r.X), float32(r.Y)) }

// TopRight returns the top-right corner.
func (r Rectangle) TopRight() Point2 { return Pt(float32(r.Right()), float32(r.Y)) }

// BottomLeft returns the bottom-left corner.
func (r Rectangle) BottomLeft() Point2 { return Pt(float32(r.X), float32(r.Bottom())) }

// BottomRight returns the bottom-right corner.
func (r Rectangle) BottomRight() Point2 { return Pt(float32(r.Right()), float32(r.Bottom())) }

// Center returns the center point. It may lie between pixels.
func (r Rectangle) Center() Point2 { return r.ToF().Center() }

// HalfExtents returns half the width and half the height as a vector.
func (r Rectangle) HalfExtents() Point2 { return r.ToF().HalfExtents() }

// Area returns Width*Height.
func (r Rectangle) Area() int { return r.Width * r.Height }

// Empty reports whether the rectangle has no area.
func (r Rectangle) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ContainsPoint reports whether (x, y) lies inside the rectangle.
func (r Rectangle) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Contains reports whether p lies inside the rectangle. The right and
// bottom edges are exclusive.
func (r Rectangle) Contains(p Point2) bool {
	return p.X >= float32(r.X) && p.X < float32(r.Right()) && p.Y >= float32(r.Y) && p.Y < float32(r.Bottom())
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rectangle) ContainsRect(o Rectangle) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether the interiors of r and o overlap.
// Rectangles that only share an edge do not intersect.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersect returns the overlapping area of r and o, or the zero
// rectangle if they do not overlap.
func (r Rectangle) Intersect(o Rectangle) Rectangle {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rectangle{}
	}
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rectangle containing both r and o.
// Empty rectangles are ignored.
func (r Rectangle) Union(o Rectangle) Rectangle {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Inflate grows the rectangle by n on every side.
func (r Rectangle) Inflate(n int) Rectangle {
	return Rectangle{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// ToF converts the rectangle to float32 coordinates.
func (r Rectangle) ToF() RectangleF {
	return RectangleF{X: float32(r.X), Y: float32(r.Y), Width: float32(r.Width), Height: float32(r.Height)}
}

// String returns a string representation of the rectangle.
func (r Rectangle) String() string {
	return fmt.Sprintf("Rect(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// RectangleF is an axis-aligned rectangle with float32 coordinates.
type RectangleF struct {
	X, Y          float32
	Width, Height float32
}

// RectF is a convenience function to create a RectangleF.
func RectF(x, y, width, height float32) RectangleF {
	return RectangleF{X: x, Y: y, Width: width, Height: height}
}

// Left returns the X coordinate of the left edge.
func (r RectangleF) Left() float32 { return r.X }

// Top returns the Y coordinate of the top edge.
func (r RectangleF) Top() float32 { return r.Y }

// Right returns the X coordinate of the right edge.
func (r RectangleF) Right() float32 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r RectangleF) Bottom() float32 { return r.Y + r.Height }

// TopLeft returns the top-left corner.
func (r RectangleF) TopLeft() Point2 { return Point2{X: r.X, Y: r.Y} }

// TopRight returns the top-right corner.
func (r RectangleF) TopRight() Point2 { return Point2{X: r.Right(), Y: r.Y} }

// BottomLeft returns the bottom-left corner.
func (r RectangleF) BottomLeft() Point2 { return Point2{X: r.X, Y: r.Bottom()} }

// BottomRight returns the bottom-right corner.
func (r RectangleF) BottomRight() Point2 { return Point2{X: r.Right(), Y: r.Bottom()} }

// Center returns the center point.
func (r RectangleF) Center() Point2 {
	return Point2{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// HalfExtents returns half the width and half the height as a vector.
func (r RectangleF) HalfExtents() Point2 {
	return Point2{X: r.Width * 0.5, Y: r.Height * 0.5}
}

// Empty reports whether the rectangle has no area.
func (r RectangleF) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle (edges included).
func (r RectangleF) Contains(p Point2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r RectangleF) ContainsRect(o RectangleF) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether the interiors of r and o overlap.
func (r RectangleF) Intersects(o RectangleF) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersect returns the overlapping area of r and o, or the zero
// rectangle if they do not overlap.
func (r RectangleF) Intersect(o RectangleF) RectangleF {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return RectangleF{}
	}
	return RectangleF{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rectangle containing both r and o.
// Empty rectangles are ignored.
func (r RectangleF) Union(o RectangleF) RectangleF {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return RectangleF{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Inflate grows the rectangle by n on every side.
func (r RectangleF) Inflate(n float32) RectangleF {
	return RectangleF{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// ToInt converts to integer coordinates, rounding outwards so the result
// always covers r.
func (r RectangleF) ToInt() Rectangle {
	x0 := int(math32.Floor(r.X))
	y0 := int(math32.Floor(r.Y))
	x1 := int(math32.Ceil(r.Right()))
	y1 := int(math32.Ceil(r.Bottom()))
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// String returns a string representation of the rectangle.
func (r RectangleF) String() string {
	return fmt.Sprintf("RectF(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}
