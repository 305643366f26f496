package batch

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/batch/geom"
)

const (
	fullTurn = 2 * math.Pi

	// maxCircleSegments bounds the tessellation of one arc.
	maxCircleSegments = 1024
)

// circleSegments returns how many chords approximate an arc of the given
// radius and angular range with at most tolerance distance between chord
// and arc.
func circleSegments(radius, angle, tolerance float32) int {
	step := float32(math.Pi)
	if tolerance < radius {
		k := 1 - tolerance/radius
		step = math32.Acos(min(max(2*k*k-1, -1), 1))
	}
	n := maxCircleSegments
	if step > 0 {
		n = int(math32.Ceil(angle / step))
	}
	if angle >= fullTurn {
		n = max(n, 3)
	}
	return min(max(n, 1), maxCircleSegments)
}

// arcPoints appends segments+1 points of the arc from start to end.
// The last point is computed from end itself.
func arcPoints(dst []geom.Point2, center geom.Point2, radius, start, end float32, segments int) []geom.Point2 {
	step := (end - start) / float32(segments)
	for i := 0; i < segments; i++ {
		sin, cos := math32.Sincos(start + float32(i)*step)
		dst = append(dst, geom.Pt(center.X+cos*radius, center.Y+sin*radius))
	}
	sin, cos := math32.Sincos(end)
	return append(dst, geom.Pt(center.X+cos*radius, center.Y+sin*radius))
}

func validateArc(radius, start, end float32) (float32, error) {
	if !(radius > 0) {
		return 0, invalidArg("radius %g", radius)
	}
	if !(end > start) {
		return 0, invalidArg("arc end %g not after start %g", end, start)
	}
	return min(end-start, fullTurn), nil
}

// Circle draws the outline of a circle as a closed line loop.
func (b *Batcher) Circle(center geom.Point2, radius float32, c Color, width float32) error {
	if !(radius > 0) {
		return invalidArg("radius %g", radius)
	}
	if !(width > 0) {
		return invalidArg("line width %g", width)
	}
	n := circleSegments(radius, fullTurn, b.opts.circleTolerance)
	if err := b.begin(lineLoopSize(n)); err != nil {
		return err
	}
	// The loop closes itself, so the point at the end angle is dropped.
	b.scratch = arcPoints(b.scratch[:0], center, radius, 0, fullTurn, n)[:n]
	b.lineLoop(b.scratch, c, width/2)
	return nil
}

// FillCircle draws a filled circle as a triangle fan around center.
// Texture coordinates span the circle's bounding square.
func (b *Batcher) FillCircle(center geom.Point2, radius float32, c Color) error {
	return b.FillCircleSegment(center, radius, 0, fullTurn, c)
}

// CircleSegment draws the arc from start to end (radians, clockwise on
// screen) as an open line strip. Ranges longer than a full turn are
// clamped.
func (b *Batcher) CircleSegment(center geom.Point2, radius, start, end float32, c Color, width float32) error {
	angle, err := validateArc(radius, start, end)
	if err != nil {
		return err
	}
	if !(width > 0) {
		return invalidArg("line width %g", width)
	}
	n := circleSegments(radius, angle, b.opts.circleTolerance)
	if err := b.begin(lineStripSize(n + 1)); err != nil {
		return err
	}
	b.scratch = arcPoints(b.scratch[:0], center, radius, start, start+angle, n)
	b.lineStrip(b.scratch, c, width/2)
	return nil
}

// FillCircleSegment draws the pie slice from start to end as a triangle
// fan around center.
func (b *Batcher) FillCircleSegment(center geom.Point2, radius, start, end float32, c Color) error {
	angle, err := validateArc(radius, start, end)
	if err != nil {
		return err
	}
	n := circleSegments(radius, angle, b.opts.circleTolerance)
	if err := b.begin(n+2, 3*n); err != nil {
		return err
	}
	b.scratch = arcPoints(b.scratch[:0], center, radius, start, start+angle, n)
	box := geom.RectF(center.X-radius, center.Y-radius, 2*radius, 2*radius)
	b.fan(center, b.scratch, c, box)
	return nil
}
