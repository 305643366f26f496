package batch

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/batch/geom"
)

// Triangle draws a filled triangle. Texture coordinates span the
// triangle's bounding box.
func (b *Batcher) Triangle(p0, p1, p2 geom.Point2, c Color) error {
	if err := b.begin(3, 3); err != nil {
		return err
	}
	bounds := boundsOf(p0, p1, p2)
	i0 := b.vertexIn(p0, c, bounds)
	i1 := b.vertexIn(p1, c, bounds)
	i2 := b.vertexIn(p2, c, bounds)
	b.triangle(i0, i1, i2)
	return nil
}

// TriangleStrip draws a strip where every three consecutive points form a
// triangle. Winding is kept consistent across the strip.
func (b *Batcher) TriangleStrip(points []geom.Point2, c Color) error {
	if len(points) < 3 {
		return invalidArg("triangle strip needs 3 points, got %d", len(points))
	}
	if err := b.begin(len(points), 3*(len(points)-2)); err != nil {
		return err
	}
	bounds := boundsOf(points...)
	base := b.vertexIn(points[0], c, bounds)
	for _, p := range points[1:] {
		b.vertexIn(p, c, bounds)
	}
	for i := uint32(0); i < uint32(len(points)-2); i++ {
		if i%2 == 0 {
			b.triangle(base+i, base+i+1, base+i+2)
		} else {
			b.triangle(base+i+1, base+i, base+i+2)
		}
	}
	return nil
}

// TriangleFan draws triangles from center to each pair of consecutive rim
// points.
func (b *Batcher) TriangleFan(center geom.Point2, rim []geom.Point2, c Color) error {
	if len(rim) < 2 {
		return invalidArg("triangle fan needs 2 rim points, got %d", len(rim))
	}
	if err := b.begin(len(rim)+1, 3*(len(rim)-1)); err != nil {
		return err
	}
	bounds := includePoint(boundsOf(rim...), center)
	b.fan(center, rim, c, bounds)
	return nil
}

// Quad draws the quadrilateral p0, p1, p2, p3 with texture coordinates
// (0,0), (1,0), (1,1), (0,1).
func (b *Batcher) Quad(p0, p1, p2, p3 geom.Point2, c Color) error {
	if err := b.begin(4, 6); err != nil {
		return err
	}
	base := b.vertex(p0.X, p0.Y, c, 0, 0)
	b.vertex(p1.X, p1.Y, c, 1, 0)
	b.vertex(p2.X, p2.Y, c, 1, 1)
	b.vertex(p3.X, p3.Y, c, 0, 1)
	b.quad(base)
	return nil
}

// FillRectangle draws r as one quad.
func (b *Batcher) FillRectangle(r geom.RectangleF, c Color) error {
	return b.FillRectangleGradient(r, c, c, c, c)
}

// FillRectangleGradient draws r as one quad with a color per corner.
func (b *Batcher) FillRectangleGradient(r geom.RectangleF, topLeft, topRight, bottomRight, bottomLeft Color) error {
	if r.Width < 0 || r.Height < 0 {
		return invalidArg("rectangle %v", r)
	}
	if err := b.begin(4, 6); err != nil {
		return err
	}
	base := b.vertex(r.X, r.Y, topLeft, 0, 0)
	b.vertex(r.Right(), r.Y, topRight, 1, 0)
	b.vertex(r.Right(), r.Bottom(), bottomRight, 1, 1)
	b.vertex(r.X, r.Bottom(), bottomLeft, 0, 1)
	b.quad(base)
	return nil
}

// Rectangle draws the outline of r as four lines centered on its edges.
// The horizontal edges are extended to cover the corners.
func (b *Batcher) Rectangle(r geom.RectangleF, c Color, width float32) error {
	if r.Width < 0 || r.Height < 0 {
		return invalidArg("rectangle %v", r)
	}
	if !(width > 0) {
		return invalidArg("line width %g", width)
	}
	if err := b.begin(16, 24); err != nil {
		return err
	}
	hw := width / 2
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()
	right, down := geom.Pt(1, 0), geom.Pt(0, 1)
	b.lineQuad(geom.Pt(x0-hw, y0), geom.Pt(x1+hw, y0), right, c, hw)
	b.lineQuad(geom.Pt(x1, y0+hw), geom.Pt(x1, y1-hw), down, c, hw)
	b.lineQuad(geom.Pt(x1+hw, y1), geom.Pt(x0-hw, y1), right.Mul(-1), c, hw)
	b.lineQuad(geom.Pt(x0, y1-hw), geom.Pt(x0, y0+hw), down.Mul(-1), c, hw)
	return nil
}

// CornerRadii holds one radius per rectangle corner.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// UniformRadii returns radii all equal to r.
func UniformRadii(r float32) CornerRadii {
	return CornerRadii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

func (cr CornerRadii) validate(r geom.RectangleF) error {
	limit := min(r.Width, r.Height) / 2
	for _, v := range [...]float32{cr.TopLeft, cr.TopRight, cr.BottomRight, cr.BottomLeft} {
		if !(v >= 0) || v > limit {
			return invalidArg("corner radius %g outside [0, %g] for %v", v, limit, r)
		}
	}
	return nil
}

// corner describes one rounded corner as an arc.
type corner struct {
	center     geom.Point2
	radius     float32
	start, end float32
	segments   int
}

// corners returns the four arcs clockwise from the top-left, in screen
// coordinates (Y down).
func (b *Batcher) corners(r geom.RectangleF, cr CornerRadii) [4]corner {
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()
	cs := [4]corner{
		{center: geom.Pt(x0+cr.TopLeft, y0+cr.TopLeft), radius: cr.TopLeft, start: math.Pi, end: 1.5 * math.Pi},
		{center: geom.Pt(x1-cr.TopRight, y0+cr.TopRight), radius: cr.TopRight, start: 1.5 * math.Pi, end: 2 * math.Pi},
		{center: geom.Pt(x1-cr.BottomRight, y1-cr.BottomRight), radius: cr.BottomRight, start: 0, end: 0.5 * math.Pi},
		{center: geom.Pt(x0+cr.BottomLeft, y1-cr.BottomLeft), radius: cr.BottomLeft, start: 0.5 * math.Pi, end: math.Pi},
	}
	for i := range cs {
		if cs[i].radius > 0 {
			cs[i].segments = circleSegments(cs[i].radius, cs[i].end-cs[i].start, b.opts.circleTolerance)
		}
	}
	return cs
}

// FillRoundedRectangle fills r with rounded corners. The shape is split
// into an inner rectangle, four edge rectangles, fillers where adjacent
// radii differ and a triangle fan per corner. Texture coordinates are
// proportional to the position inside r.
func (b *Batcher) FillRoundedRectangle(r geom.RectangleF, radii CornerRadii, c Color) error {
	if r.Width < 0 || r.Height < 0 {
		return invalidArg("rectangle %v", r)
	}
	if err := radii.validate(r); err != nil {
		return err
	}

	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()
	tl, tr, br, bl := radii.TopLeft, radii.TopRight, radii.BottomRight, radii.BottomLeft
	left, right := max(tl, bl), max(tr, br)
	top, bottom := max(tl, tr), max(bl, br)

	pieces := [...]geom.RectangleF{
		rectFromEdges(x0+left, y0+top, x1-right, y1-bottom), // inner
		rectFromEdges(x0+tl, y0, x1-tr, y0+top),             // top edge
		rectFromEdges(x0+bl, y1-bottom, x1-br, y1),          // bottom edge
		rectFromEdges(x0, y0+top, x0+left, y1-bottom),       // left edge
		rectFromEdges(x1-right, y0+top, x1, y1-bottom),      // right edge
		rectFromEdges(x0, y0+tl, x0+tl, y0+top),             // fillers
		rectFromEdges(x1-tr, y0+tr, x1, y0+top),
		rectFromEdges(x0, y1-bottom, x0+bl, y1-bl),
		rectFromEdges(x1-br, y1-bottom, x1, y1-br),
	}
	corners := b.corners(r, radii)

	vertices, indices := 0, 0
	for _, p := range pieces {
		if !p.Empty() {
			vertices += 4
			indices += 6
		}
	}
	for _, k := range corners {
		if k.segments > 0 {
			vertices += k.segments + 2
			indices += 3 * k.segments
		}
	}
	if err := b.begin(vertices, indices); err != nil {
		return err
	}

	for _, p := range pieces {
		if p.Empty() {
			continue
		}
		base := b.vertexIn(p.TopLeft(), c, r)
		b.vertexIn(p.TopRight(), c, r)
		b.vertexIn(p.BottomRight(), c, r)
		b.vertexIn(p.BottomLeft(), c, r)
		b.quad(base)
	}
	for _, k := range corners {
		if k.segments == 0 {
			continue
		}
		b.scratch = arcPoints(b.scratch[:0], k.center, k.radius, k.start, k.end, k.segments)
		b.fan(k.center, b.scratch, c, r)
	}
	return nil
}

// RoundedRectangle draws the outline of r with rounded corners as one
// closed line loop.
func (b *Batcher) RoundedRectangle(r geom.RectangleF, radii CornerRadii, c Color, width float32) error {
	if r.Width < 0 || r.Height < 0 {
		return invalidArg("rectangle %v", r)
	}
	if err := radii.validate(r); err != nil {
		return err
	}
	if !(width > 0) {
		return invalidArg("line width %g", width)
	}

	var pts []geom.Point2
	for _, k := range b.corners(r, radii) {
		if k.segments == 0 {
			pts = appendDistinct(pts, k.center)
			continue
		}
		b.scratch = arcPoints(b.scratch[:0], k.center, k.radius, k.start, k.end, k.segments)
		for _, p := range b.scratch {
			pts = appendDistinct(pts, p)
		}
	}
	for len(pts) > 1 && nearlyEqual(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		if !b.started {
			return ErrNotStarted
		}
		return nil
	}
	if err := b.begin(lineLoopSize(len(pts))); err != nil {
		return err
	}
	b.lineLoop(pts, c, width/2)
	return nil
}

// fan emits a triangle fan; space must be reserved.
func (b *Batcher) fan(center geom.Point2, rim []geom.Point2, c Color, uvBounds geom.RectangleF) {
	ci := b.vertexIn(center, c, uvBounds)
	first := b.vertexIn(rim[0], c, uvBounds)
	for i, p := range rim[1:] {
		b.vertexIn(p, c, uvBounds)
		b.triangle(ci, first+uint32(i), first+uint32(i)+1)
	}
}

// vertexIn emits p with texture coordinates proportional to its position
// in bounds.
func (b *Batcher) vertexIn(p geom.Point2, c Color, bounds geom.RectangleF) uint32 {
	var u, v float32
	if bounds.Width > 0 {
		u = (p.X - bounds.X) / bounds.Width
	}
	if bounds.Height > 0 {
		v = (p.Y - bounds.Y) / bounds.Height
	}
	return b.vertex(p.X, p.Y, c, u, v)
}

func rectFromEdges(x0, y0, x1, y1 float32) geom.RectangleF {
	return geom.RectF(x0, y0, x1-x0, y1-y0)
}

func boundsOf(points ...geom.Point2) geom.RectangleF {
	x0, y0 := points[0].X, points[0].Y
	x1, y1 := x0, y0
	for _, p := range points[1:] {
		x0, y0 = min(x0, p.X), min(y0, p.Y)
		x1, y1 = max(x1, p.X), max(y1, p.Y)
	}
	return rectFromEdges(x0, y0, x1, y1)
}

func includePoint(r geom.RectangleF, p geom.Point2) geom.RectangleF {
	return rectFromEdges(min(r.X, p.X), min(r.Y, p.Y), max(r.Right(), p.X), max(r.Bottom(), p.Y))
}

// pointEpsilon is the distance below which outline points are merged.
const pointEpsilon = 1e-3

func nearlyEqual(p, q geom.Point2) bool {
	return math32.Abs(p.X-q.X) < pointEpsilon && math32.Abs(p.Y-q.Y) < pointEpsilon
}

func appendDistinct(pts []geom.Point2, p geom.Point2) []geom.Point2 {
	if n := len(pts); n > 0 && nearlyEqual(pts[n-1], p) {
		return pts
	}
	return append(pts, p)
}
