package batch

import "github.com/gogpu/batch/geom"

// jointEpsilon is the smallest |cross| of two unit directions that gets a
// joint triangle; smaller turns are treated as colinear.
const jointEpsilon = 1e-6

// Line draws a segment of the given stroke width as one quad.
func (b *Batcher) Line(p0, p1 geom.Point2, c Color, width float32) error {
	if !(width > 0) {
		return invalidArg("line width %g", width)
	}
	if err := b.begin(4, 6); err != nil {
		return err
	}
	b.lineQuad(p0, p1, p1.Sub(p0).Normalize(), c, width/2)
	return nil
}

// LineStrip draws connected segments through points. Each interior joint
// gets a triangle closing the gap on the outer side of the turn.
func (b *Batcher) LineStrip(points []geom.Point2, c Color, width float32) error {
	if len(points) < 2 {
		return invalidArg("line strip needs 2 points, got %d", len(points))
	}
	if !(width > 0) {
		return invalidArg("line width %g", width)
	}
	if err := b.begin(lineStripSize(len(points))); err != nil {
		return err
	}
	b.lineStrip(points, c, width/2)
	return nil
}

// QuadraticBezier draws a quadratic curve as a line strip with
// ceil(controlLength/segmentLength) segments.
func (b *Batcher) QuadraticBezier(p0, p1, p2 geom.Point2, c Color, width, segmentLength float32) error {
	q := QuadBez{P0: p0, P1: p1, P2: p2}
	return b.curve(q.ControlLength(), q.Eval, c, width, segmentLength)
}

// CubicBezier draws a cubic curve as a line strip with
// ceil(controlLength/segmentLength) segments.
func (b *Batcher) CubicBezier(p0, p1, p2, p3 geom.Point2, c Color, width, segmentLength float32) error {
	cb := CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
	return b.curve(cb.ControlLength(), cb.Eval, c, width, segmentLength)
}

func (b *Batcher) curve(length float32, eval func(float32) geom.Point2, c Color, width, segmentLength float32) error {
	if !(segmentLength > 0) {
		return invalidArg("segment length %g", segmentLength)
	}
	b.scratch = flatten(b.scratch[:0], curveSegments(length, segmentLength), eval)
	return b.LineStrip(b.scratch, c, width)
}

// lineStripSize returns the vertex and worst-case index count of a strip.
func lineStripSize(points int) (vertices, indices int) {
	segs := points - 1
	return 4 * segs, 6*segs + 3*max(segs-1, 0)
}

// lineStrip emits a strip; space must be reserved.
func (b *Batcher) lineStrip(points []geom.Point2, c Color, hw float32) {
	var prevBase uint32
	var prevDir geom.Point2
	for i := 0; i < len(points)-1; i++ {
		dir := points[i+1].Sub(points[i]).Normalize()
		base := b.lineQuad(points[i], points[i+1], dir, c, hw)
		if i > 0 {
			b.joint(prevBase, base, prevDir, dir)
		}
		prevBase, prevDir = base, dir
	}
}

// lineLoopSize returns the vertex and worst-case index count of a closed
// loop through points.
func lineLoopSize(points int) (vertices, indices int) {
	return 4 * points, 9 * points
}

// lineLoop emits a strip through points that returns to the first point,
// with a joint at every point; space must be reserved.
func (b *Batcher) lineLoop(points []geom.Point2, c Color, hw float32) {
	n := len(points)
	var firstBase, prevBase uint32
	var firstDir, prevDir geom.Point2
	for i := range n {
		p0, p1 := points[i], points[(i+1)%n]
		dir := p1.Sub(p0).Normalize()
		base := b.lineQuad(p0, p1, dir, c, hw)
		if i == 0 {
			firstBase, firstDir = base, dir
		} else {
			b.joint(prevBase, base, prevDir, dir)
		}
		prevBase, prevDir = base, dir
	}
	b.joint(prevBase, firstBase, prevDir, firstDir)
}

// lineQuad emits the quad p0-n, p1-n, p1+n, p0+n with n the half-width
// normal of dir, wound clockwise like every other primitive, and returns
// the index of its first vertex.
func (b *Batcher) lineQuad(p0, p1, dir geom.Point2, c Color, hw float32) uint32 {
	n := dir.Perp().Mul(hw)
	a, bb, cc, d := p0.Sub(n), p1.Sub(n), p1.Add(n), p0.Add(n)
	base := b.vertex(a.X, a.Y, c, 0, 0)
	b.vertex(bb.X, bb.Y, c, 1, 0)
	b.vertex(cc.X, cc.Y, c, 1, 1)
	b.vertex(d.X, d.Y, c, 0, 1)
	b.quad(base)
	return base
}

// joint fills the wedge between two quads sharing their middle point P.
// For a positive turn the gap lies on the -n side and the triangle is
// (P-n0, P-n1, P+n0); for a negative turn it is (P+n0, P-n0, P+n1). Both
// are wound clockwise.
func (b *Batcher) joint(prev, next uint32, d0, d1 geom.Point2) {
	switch cross := d0.Cross(d1); {
	case cross > jointEpsilon:
		b.triangle(prev+1, next, prev+2)
	case cross < -jointEpsilon:
		b.triangle(prev+2, prev+1, next+3)
	}
}
