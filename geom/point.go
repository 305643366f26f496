package geom

import "github.com/chewxy/math32"

// Point2 represents a 2D point or vector in float32 precision.
type Point2 struct {
	X, Y float32
}

// Pt is a convenience function to create a Point2.
func Pt(x, y float32) Point2 {
	return Point2{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point2) Add(q Point2) Point2 {
	return Point2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point2) Sub(q Point2) Point2 {
	return Point2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point2) Mul(s float32) Point2 {
	return Point2{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point2) Dot(q Point2) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
// With Y pointing down, a positive value is a clockwise (right-hand) turn
// from p to q on screen.
func (p Point2) Cross(q Point2) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point2) Length() float32 {
	return math32.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point2) Distance(q Point2) float32 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (p Point2) Normalize() Point2 {
	length := p.Length()
	if length == 0 {
		return Point2{}
	}
	return Point2{X: p.X / length, Y: p.Y / length}
}

// Perp returns the vector rotated by 90 degrees: (-Y, X).
func (p Point2) Perp() Point2 {
	return Point2{X: -p.Y, Y: p.X}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point2) Lerp(q Point2, t float32) Point2 {
	return LerpVec(p, q, t)
}
