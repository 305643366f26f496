package batch

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/batch/geom"
)

// fakeRenderer records submissions for inspection.
type fakeRenderer struct {
	viewport geom.Rectangle
	textures map[TextureID][2]int

	calls    []string
	vertices []Vertex
	indices  []uint32
	batches  []BatchInfo
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		viewport: geom.Rect(0, 0, 800, 600),
		textures: map[TextureID][2]int{
			1: {256, 128},
			2: {64, 64},
		},
	}
}

func (r *fakeRenderer) TextureSize(id TextureID) (int, int) {
	s := r.textures[id]
	return s[0], s[1]
}

func (r *fakeRenderer) Viewport() geom.Rectangle { return r.viewport }

func (r *fakeRenderer) BeginRender(vertices []Vertex, indices []uint32, vertexCount, indexCount int) {
	r.calls = append(r.calls, fmt.Sprintf("begin %d/%d", vertexCount, indexCount))
	r.vertices = slices.Clone(vertices[:vertexCount])
	r.indices = slices.Clone(indices[:indexCount])
	r.batches = r.batches[:0]
}

func (r *fakeRenderer) DrawBatch(state GraphicsState, startIndex, indexCount int, userData any) {
	r.calls = append(r.calls, fmt.Sprintf("draw %d+%d", startIndex, indexCount))
	r.batches = append(r.batches, BatchInfo{State: state, StartIndex: startIndex, IndexCount: indexCount, UserData: userData})
}

func (r *fakeRenderer) EndRender() {
	r.calls = append(r.calls, "end")
}

func newTestBatcher(t *testing.T, opts ...Option) (*Batcher, *fakeRenderer) {
	t.Helper()
	r := newFakeRenderer()
	b, err := New(r, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return b, r
}

// emitted returns the vertices and indices written so far.
func emitted(b *Batcher) ([]Vertex, []uint32) {
	return b.vertices.filled(), b.indices.filled()
}

func pos(v Vertex) geom.Point2 { return geom.Pt(v.X, v.Y) }

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func nearPt(a, b geom.Point2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

// signedArea returns twice the signed area of a triangle.
func signedArea(a, b, c geom.Point2) float32 {
	return b.Sub(a).Cross(c.Sub(a))
}
