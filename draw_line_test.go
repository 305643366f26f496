package batch

import (
	"testing"

	"github.com/gogpu/batch/geom"
)

func TestLineQuad(t *testing.T) {
	b, _ := newTestBatcher(t)
	if err := b.Line(geom.Pt(0, 0), geom.Pt(10, 0), Red, 2); err != nil {
		t.Fatal(err)
	}

	verts, idx := emitted(b)
	want := []struct{ x, y, u, v float32 }{
		{0, -1, 0, 0},
		{10, -1, 1, 0},
		{10, 1, 1, 1},
		{0, 1, 0, 1},
	}
	if len(verts) != 4 {
		t.Fatalf("vertices = %d, want 4", len(verts))
	}
	for i, w := range want {
		v := verts[i]
		if !near(v.X, w.x) || !near(v.Y, w.y) || v.U != w.u || v.V != w.v {
			t.Errorf("vertex %d = (%g,%g uv %g,%g), want (%g,%g uv %g,%g)", i, v.X, v.Y, v.U, v.V, w.x, w.y, w.u, w.v)
		}
	}
	wantIdx := []uint32{0, 1, 2, 0, 2, 3}
	for i := range wantIdx {
		if idx[i] != wantIdx[i] {
			t.Errorf("indices = %v, want %v", idx, wantIdx)
			break
		}
	}
}

func TestLineStripJoint(t *testing.T) {
	tests := []struct {
		name   string
		points []geom.Point2
	}{
		{"positive turn", []geom.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}},
		{"negative turn", []geom.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: -10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBatcher(t)
			if err := b.LineStrip(tt.points, White, 2); err != nil {
				t.Fatal(err)
			}
			verts, idx := emitted(b)
			if len(verts) != 8 || len(idx) != 15 {
				t.Fatalf("got %d vertices %d indices, want 8 15", len(verts), len(idx))
			}
			j := idx[12:15]
			area := signedArea(pos(verts[j[0]]), pos(verts[j[1]]), pos(verts[j[2]]))
			if area <= 0 {
				t.Errorf("joint signed area %g, want clockwise", area)
			}
			// The joint touches the outer corner of both quads.
			for _, i := range j {
				if p := pos(verts[i]); p.Distance(tt.points[1]) > 1.0001 {
					t.Errorf("joint vertex %v is %g from the shared point", p, p.Distance(tt.points[1]))
				}
			}
		})
	}
}

func TestLineStripColinearHasNoJoint(t *testing.T) {
	b, _ := newTestBatcher(t)
	pts := []geom.Point2{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 10}, {X: 20, Y: 20}}
	if err := b.LineStrip(pts, White, 1); err != nil {
		t.Fatal(err)
	}
	if b.VertexCount() != 12 || b.IndexCount() != 18 {
		t.Errorf("counts = %d/%d, want 12/18", b.VertexCount(), b.IndexCount())
	}
}

func TestBezierSegments(t *testing.T) {
	b, _ := newTestBatcher(t)

	// Control polygon length 20 at 5 units per segment: 4 segments.
	if err := b.QuadraticBezier(geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), Red, 1, 5); err != nil {
		t.Fatal(err)
	}
	if b.VertexCount() != 16 {
		t.Errorf("quadratic vertices = %d, want 16", b.VertexCount())
	}

	verts, _ := emitted(b)
	// The last quad ends at the curve end.
	last := verts[len(verts)-3 : len(verts)-1]
	mid := pos(last[0]).Lerp(pos(last[1]), 0.5)
	if !nearPt(mid, geom.Pt(10, 10)) {
		t.Errorf("curve ends at %v, want (10,10)", mid)
	}

	// A curve shorter than one segment still gets one.
	start := b.VertexCount()
	if err := b.CubicBezier(geom.Pt(0, 0), geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 0), Red, 1, 100); err != nil {
		t.Fatal(err)
	}
	if got := b.VertexCount() - start; got != 4 {
		t.Errorf("cubic vertices = %d, want 4", got)
	}
}
