package batch

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/batch/geom"
)

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 geom.Point2
}

// Eval evaluates the curve at parameter t (0 to 1) using de Casteljau's algorithm.
func (q QuadBez) Eval(t float32) geom.Point2 {
	a := geom.LerpVec(q.P0, q.P1, t)
	b := geom.LerpVec(q.P1, q.P2, t)
	return geom.LerpVec(a, b, t)
}

// ControlLength returns the length of the control polygon, an upper bound
// of the arc length.
func (q QuadBez) ControlLength() float32 {
	return q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
}

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 geom.Point2
}

// Eval evaluates the curve at parameter t (0 to 1) using de Casteljau's algorithm.
func (c CubicBez) Eval(t float32) geom.Point2 {
	a := geom.LerpVec(c.P0, c.P1, t)
	b := geom.LerpVec(c.P1, c.P2, t)
	d := geom.LerpVec(c.P2, c.P3, t)
	return QuadBez{P0: a, P1: b, P2: d}.Eval(t)
}

// ControlLength returns the length of the control polygon, an upper bound
// of the arc length.
func (c CubicBez) ControlLength() float32 {
	return c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
}

// curveSegments returns ceil(length / segmentLength), at least 1.
func curveSegments(length, segmentLength float32) int {
	n := int(math32.Ceil(length / segmentLength))
	return max(n, 1)
}

// flatten appends n+1 points of eval sampled uniformly in t. The last
// point is the exact curve end.
func flatten(dst []geom.Point2, n int, eval func(t float32) geom.Point2) []geom.Point2 {
	for i := range n {
		dst = append(dst, eval(float32(i)/float32(n)))
	}
	return append(dst, eval(1))
}
