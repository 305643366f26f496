package batch

import (
	"errors"
	"testing"

	"github.com/gogpu/batch/geom"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("New(nil) error = %v, want ErrInvalidArgument", err)
	}

	tests := []struct {
		name string
		opt  Option
	}{
		{"negative capacity", WithInitialCapacity(-1, 6)},
		{"zero growth", WithMinGrowth(0)},
		{"initial above limit", WithMaxVertices(10)},
		{"zero tolerance", WithCircleTolerance(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(newFakeRenderer(), tt.opt); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("New() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestStartFinishOrder(t *testing.T) {
	r := newFakeRenderer()
	b, err := New(r)
	if err != nil {
		t.Fatal(err)
	}

	if err := b.FillRectangle(geom.RectF(0, 0, 1, 1), Red); !errors.Is(err, ErrNotStarted) {
		t.Errorf("draw before Start error = %v, want ErrNotStarted", err)
	}
	if err := b.Finish(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Finish before Start error = %v, want ErrNotStarted", err)
	}
	if err := b.Flush(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Flush before Start error = %v, want ErrNotStarted", err)
	}

	if err := b.Start(); err != nil {
		t.Fatal(err)
	}
	if !b.Started() {
		t.Error("Started() = false after Start")
	}
	if err := b.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start error = %v, want ErrAlreadyStarted", err)
	}
	if err := b.Finish(); err != nil {
		t.Fatal(err)
	}

	// An empty cycle still brackets the submission.
	want := []string{"begin 0/0", "end"}
	if len(r.calls) != len(want) || r.calls[0] != want[0] || r.calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}

func TestCoalescing(t *testing.T) {
	b, r := newTestBatcher(t)

	for i := range 3 {
		if err := b.FillRectangle(geom.RectF(float32(i)*10, 0, 5, 5), Red); err != nil {
			t.Fatal(err)
		}
	}
	b.SetBlendState(BlendAdditive)
	if err := b.FillRectangle(geom.RectF(0, 20, 5, 5), Blue); err != nil {
		t.Fatal(err)
	}
	b.SetBlendState(BlendPremultiplied)
	if err := b.FillRectangle(geom.RectF(0, 40, 5, 5), Blue); err != nil {
		t.Fatal(err)
	}
	if err := b.Finish(); err != nil {
		t.Fatal(err)
	}

	want := []string{"begin 20/30", "draw 0+18", "draw 18+6", "draw 24+6", "end"}
	if len(r.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, r.calls[i], want[i])
		}
	}
	if r.batches[1].State.Blend != BlendAdditive {
		t.Errorf("batch 1 blend = %+v, want additive", r.batches[1].State.Blend)
	}
	if got := b.Batches(); len(got) != 3 {
		t.Errorf("Batches() after Finish = %d, want 3", len(got))
	}
}

func TestStateChangeWithoutDrawIsFree(t *testing.T) {
	b, _ := newTestBatcher(t)

	b.SetTexture(1)
	b.SetTexture(2)
	b.SetBlendState(BlendOpaque)
	b.SetBlendState(BlendPremultiplied)
	b.SetTexture(NoTexture)
	if err := b.FillRectangle(geom.RectF(0, 0, 1, 1), Red); err != nil {
		t.Fatal(err)
	}
	if err := b.Finish(); err != nil {
		t.Fatal(err)
	}
	if got := len(b.Batches()); got != 1 {
		t.Errorf("batches = %d, want 1 (empty runs are never recorded)", got)
	}
}

func TestFlushAndUserDataSplit(t *testing.T) {
	b, r := newTestBatcher(t)

	rect := geom.RectF(0, 0, 1, 1)
	_ = b.FillRectangle(rect, Red)
	if err := b.Flush(); err != nil {
		t.Fatal(err)
	}
	_ = b.FillRectangle(rect, Red)
	b.SetUserData("a")
	_ = b.FillRectangle(rect, Red)
	b.SetUserData("a")
	_ = b.FillRectangle(rect, Red)
	if err := b.Finish(); err != nil {
		t.Fatal(err)
	}

	if len(r.batches) != 4 {
		t.Fatalf("batches = %d, want 4", len(r.batches))
	}
	if r.batches[1].UserData != nil || r.batches[2].UserData != "a" || r.batches[3].UserData != "a" {
		t.Errorf("user data = %v %v %v", r.batches[1].UserData, r.batches[2].UserData, r.batches[3].UserData)
	}

	// User data does not survive into the next cycle.
	if err := b.Start(); err != nil {
		t.Fatal(err)
	}
	_ = b.FillRectangle(rect, Red)
	_ = b.Finish()
	if r.batches[0].UserData != nil {
		t.Errorf("user data after Start = %v, want nil", r.batches[0].UserData)
	}
}

func TestIndexConservation(t *testing.T) {
	b, r := newTestBatcher(t, WithInitialCapacity(8, 12), WithMinGrowth(4))

	const n = 500
	for i := range n {
		if i%7 == 0 {
			b.SetTexture(TextureID(1 + i%2))
		}
		if err := b.FillRectangle(geom.RectF(float32(i), 0, 2, 2), White); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.Finish(); err != nil {
		t.Fatal(err)
	}

	if len(r.vertices) != 4*n || len(r.indices) != 6*n {
		t.Fatalf("got %d vertices %d indices, want %d %d", len(r.vertices), len(r.indices), 4*n, 6*n)
	}
	next := 0
	total := 0
	for i, bi := range r.batches {
		if bi.StartIndex != next {
			t.Errorf("batch %d starts at %d, want %d", i, bi.StartIndex, next)
		}
		if bi.IndexCount <= 0 {
			t.Errorf("batch %d is empty", i)
		}
		next = bi.StartIndex + bi.IndexCount
		total += bi.IndexCount
	}
	if total != 6*n {
		t.Errorf("batched indices = %d, want %d", total, 6*n)
	}
	for i, idx := range r.indices {
		if int(idx) >= len(r.vertices) {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}
}

func TestBufferGrowth(t *testing.T) {
	b, _ := newTestBatcher(t, WithInitialCapacity(4, 6), WithMinGrowth(2))

	_ = b.FillRectangle(geom.RectF(0, 0, 1, 1), Red)
	if v, i := b.Capacity(); v != 4 || i != 6 {
		t.Fatalf("Capacity() = %d, %d, want 4, 6", v, i)
	}
	_ = b.FillRectangle(geom.RectF(1, 0, 1, 1), Green)
	v, i := b.Capacity()
	if v != 8 || i != 12 {
		t.Errorf("Capacity() after growth = %d, %d, want 8, 12 (doubled)", v, i)
	}

	// Existing contents survive growth.
	verts, _ := emitted(b)
	if verts[0].Color != Red || verts[4].Color != Green {
		t.Errorf("colors after growth = %v %v", verts[0].Color, verts[4].Color)
	}

	if err := b.EnsureFree(100, 0); err != nil {
		t.Fatal(err)
	}
	if v, _ := b.Capacity(); v < 108 {
		t.Errorf("vertex capacity = %d, want at least 108", v)
	}
	if err := b.EnsureFree(-1, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("EnsureFree(-1) error = %v", err)
	}
}

func TestCapacityLimit(t *testing.T) {
	b, _ := newTestBatcher(t, WithInitialCapacity(4, 6), WithMaxVertices(6))

	if err := b.FillRectangle(geom.RectF(0, 0, 1, 1), Red); err != nil {
		t.Fatal(err)
	}
	err := b.FillRectangle(geom.RectF(0, 0, 1, 1), Red)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("error = %v, want ErrCapacityExceeded", err)
	}
	var ce *CapacityError
	if !errors.As(err, &ce) || ce.Buffer != "vertex" || ce.Required != 8 || ce.Limit != 6 {
		t.Errorf("CapacityError = %+v", ce)
	}
	if b.VertexCount() != 4 || b.IndexCount() != 6 {
		t.Errorf("counts after failure = %d/%d, want 4/6", b.VertexCount(), b.IndexCount())
	}
	if v, _ := b.Capacity(); v != 4 {
		t.Errorf("vertex capacity after failure = %d, want 4", v)
	}
}

func TestInvalidDrawLeavesBuffersUnchanged(t *testing.T) {
	b, _ := newTestBatcher(t)
	_ = b.FillRectangle(geom.RectF(0, 0, 1, 1), Red)

	p := geom.Pt(0, 0)
	draws := map[string]func() error{
		"line width":      func() error { return b.Line(p, geom.Pt(1, 1), Red, 0) },
		"short strip":     func() error { return b.LineStrip([]geom.Point2{p}, Red, 1) },
		"segment length":  func() error { return b.QuadraticBezier(p, p, p, Red, 1, 0) },
		"triangle strip":  func() error { return b.TriangleStrip([]geom.Point2{p, p}, Red) },
		"triangle fan":    func() error { return b.TriangleFan(p, []geom.Point2{p}, Red) },
		"negative rect":   func() error { return b.FillRectangle(geom.RectF(0, 0, -1, 1), Red) },
		"corner radius":   func() error { return b.FillRoundedRectangle(geom.RectF(0, 0, 10, 4), UniformRadii(3), Red) },
		"outline radius":  func() error { return b.RoundedRectangle(geom.RectF(0, 0, 10, 4), UniformRadii(-1), Red, 1) },
		"circle radius":   func() error { return b.FillCircle(p, 0, Red) },
		"reversed arc":    func() error { return b.CircleSegment(p, 5, 1, 1, Red, 1) },
		"outline width":   func() error { return b.Rectangle(geom.RectF(0, 0, 1, 1), Red, -2) },
		"circle width":    func() error { return b.Circle(p, 4, Red, 0) },
		"fill arc radius": func() error { return b.FillCircleSegment(p, -1, 0, 1, Red) },
	}
	for name, draw := range draws {
		t.Run(name, func(t *testing.T) {
			if err := draw(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
			if b.VertexCount() != 4 || b.IndexCount() != 6 {
				t.Errorf("counts = %d/%d, want 4/6", b.VertexCount(), b.IndexCount())
			}
		})
	}
}

func TestScissorClippedToViewport(t *testing.T) {
	b, r := newTestBatcher(t)

	b.SetScissor(geom.Rect(700, 500, 200, 200))
	_ = b.FillRectangle(geom.RectF(0, 0, 1, 1), Red)
	b.ClearScissor()
	_ = b.FillRectangle(geom.RectF(0, 0, 1, 1), Red)
	_ = b.Finish()

	if len(r.batches) != 2 {
		t.Fatalf("batches = %d, want 2", len(r.batches))
	}
	s := r.batches[0].State
	if !s.Scissored || s.Scissor != geom.Rect(700, 500, 100, 100) {
		t.Errorf("scissor = %v (%v), want clipped to viewport", s.Scissor, s.Scissored)
	}
	if r.batches[1].State.Scissored {
		t.Error("ClearScissor did not clear")
	}
}

func TestTransformAndDepth(t *testing.T) {
	b, r := newTestBatcher(t)

	b.SetTransform(Translate(10, 20).Multiply(Scale(2, 2)))
	b.SetDepth(0.5)
	_ = b.FillRectangle(geom.RectF(1, 1, 1, 1), Red)
	b.SetTransform(nil)
	_ = b.FillRectangle(geom.RectF(1, 1, 1, 1), Red)
	_ = b.Finish()

	if len(r.batches) != 1 {
		t.Errorf("transform change split the batch: %d batches", len(r.batches))
	}
	v := r.vertices[0]
	if v.X != 12 || v.Y != 22 || v.Z != 0.5 {
		t.Errorf("transformed vertex = (%g,%g,%g), want (12,22,0.5)", v.X, v.Y, v.Z)
	}
	if v := r.vertices[4]; v.X != 1 || v.Y != 1 {
		t.Errorf("untransformed vertex = (%g,%g), want (1,1)", v.X, v.Y)
	}
}

func TestMatrix4Transform(t *testing.T) {
	b, r := newTestBatcher(t)

	b.SetTransform(Affine4(Translate(5, 5)))
	_ = b.FillRectangle(geom.RectF(0, 0, 2, 2), Red)
	b.SetTransform(Ortho2D(0, 800, 600, 0))
	_ = b.FillRectangle(geom.RectF(0, 0, 800, 600), Red)
	_ = b.Finish()

	if v := r.vertices[2]; v.X != 7 || v.Y != 7 {
		t.Errorf("Affine4 vertex = (%g,%g), want (7,7)", v.X, v.Y)
	}
	if v := r.vertices[4]; !near(v.X, -1) || !near(v.Y, 1) {
		t.Errorf("ortho top-left = (%g,%g), want (-1,1)", v.X, v.Y)
	}
	if v := r.vertices[6]; !near(v.X, 1) || !near(v.Y, -1) {
		t.Errorf("ortho bottom-right = (%g,%g), want (1,-1)", v.X, v.Y)
	}
}

func TestSpriteRemap(t *testing.T) {
	b, r := newTestBatcher(t)

	if err := b.SetSprite(Sprite{Texture: 1, Source: geom.Rect(64, 32, 64, 32)}); err != nil {
		t.Fatal(err)
	}
	_ = b.FillRectangle(geom.RectF(0, 0, 1, 1), White)
	if err := b.SetSprite(Sprite{Texture: 1, Source: geom.Rect(0, 0, 128, 64)}); err != nil {
		t.Fatal(err)
	}
	_ = b.FillRectangle(geom.RectF(0, 0, 1, 1), White)
	_ = b.Finish()

	if len(r.batches) != 1 {
		t.Errorf("sprite switch on one texture split the batch: %d batches", len(r.batches))
	}
	tests := []struct {
		i    int
		u, v float32
	}{
		{0, 0.25, 0.25},
		{2, 0.5, 0.5},
		{4, 0, 0},
		{6, 0.5, 0.5},
	}
	for _, tt := range tests {
		if v := r.vertices[tt.i]; !near(v.U, tt.u) || !near(v.V, tt.v) {
			t.Errorf("vertex %d uv = (%g,%g), want (%g,%g)", tt.i, v.U, v.V, tt.u, tt.v)
		}
	}
}

func TestSpriteValidation(t *testing.T) {
	b, _ := newTestBatcher(t)

	if err := b.SetSprite(Sprite{Texture: 9}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown texture error = %v", err)
	}
	if err := b.SetSprite(Sprite{Texture: 2, Source: geom.Rect(60, 0, 8, 8)}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("source outside texture error = %v", err)
	}
	if err := b.SetSprite(Sprite{Texture: 2}); err != nil {
		t.Fatal(err)
	}
	if id, uv := b.Sprite(); id != 2 || uv != unitRect {
		t.Errorf("Sprite() = %d %v, want whole texture 2", id, uv)
	}
}

func TestUVTransformBeforeRemap(t *testing.T) {
	b, r := newTestBatcher(t)

	_ = b.SetSprite(Sprite{Texture: 2, Source: geom.Rect(32, 0, 32, 32)})
	// Mirror horizontally in sprite space.
	b.SetUVTransform(Matrix{A: -1, C: 1, E: 1})
	_ = b.FillRectangle(geom.RectF(0, 0, 1, 1), White)
	_ = b.Finish()

	if v := r.vertices[0]; !near(v.U, 1) || !near(v.V, 0) {
		t.Errorf("top-left uv = (%g,%g), want (1,0)", v.U, v.V)
	}
	if v := r.vertices[1]; !near(v.U, 0.5) {
		t.Errorf("top-right u = %g, want 0.5", v.U)
	}
}

func TestResetState(t *testing.T) {
	b, _ := newTestBatcher(t, WithBlendState(BlendAlpha), WithSamplerState(SamplerPointClamp))

	b.SetBlendState(BlendAdditive)
	b.SetScissor(geom.Rect(0, 0, 10, 10))
	_ = b.SetSprite(Sprite{Texture: 1, Source: geom.Rect(0, 0, 8, 8)})
	b.SetTransform(Scale(2, 2))
	b.SetDepth(3)

	b.ResetState()
	want := GraphicsState{Blend: BlendAlpha, Sampler: SamplerPointClamp}
	if b.State() != want {
		t.Errorf("State() = %+v, want %+v", b.State(), want)
	}
	if b.Transform() != nil || b.depth != 0 || b.remap {
		t.Error("ResetState kept transform, depth or sprite")
	}
}
