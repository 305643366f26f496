package batch

import (
	"log/slog"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/batch/geom"
)

// Batcher converts drawing calls into vertex and index data and groups the
// indices into batches of constant GraphicsState.
//
// A render cycle is Start, any number of draws and state changes, then
// Finish. Graphics state, transforms, sprite and font persist across
// cycles; ResetState restores the defaults.
//
// Draw methods validate their arguments and reserve buffer space before
// writing anything, so a failed draw leaves the buffers unchanged.
//
// Batcher is not safe for concurrent use.
type Batcher struct {
	renderer Renderer
	opts     options

	vertices growBuffer[Vertex]
	indices  growBuffer[uint32]
	batches  []BatchInfo
	started  bool

	// Requested state for the next draw.
	state    GraphicsState
	userData any
	userGen  uint64

	// Open run: indices [runStart, indices.n) drawn with runState.
	runStart int
	runState GraphicsState
	runData  any
	runGen   uint64

	transform   Transform
	uvTransform Transform
	depth       float32

	// uvRect is the active sprite's sub-rectangle in normalized texture
	// coordinates; remap is false when it covers the whole texture.
	uvRect geom.RectangleF
	remap  bool

	font    fontState
	scratch []geom.Point2
}

// New creates a Batcher submitting to r.
func New(r Renderer, opts ...Option) (*Batcher, error) {
	if r == nil {
		return nil, invalidArg("nil renderer")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	b := &Batcher{
		renderer: r,
		opts:     o,
		vertices: newGrowBuffer[Vertex](o.initialVertices),
		indices:  newGrowBuffer[uint32](o.initialIndices),
	}
	b.ResetState()
	return b, nil
}

// Start begins a render cycle, discarding the previous cycle's buffers and
// batches. User data is cleared.
func (b *Batcher) Start() error {
	if b.started {
		return ErrAlreadyStarted
	}
	b.vertices.reset()
	b.indices.reset()
	b.batches = b.batches[:0]
	b.runStart = 0
	b.userData = nil
	b.userGen++
	b.started = true
	return nil
}

// Started reports whether a render cycle is in progress.
func (b *Batcher) Started() bool { return b.started }

// Flush closes the open batch so that the next draw starts a new one, even
// if the state is unchanged. Use it to interleave externally managed state.
func (b *Batcher) Flush() error {
	if !b.started {
		return ErrNotStarted
	}
	b.closeRun()
	return nil
}

// Finish closes the open batch and submits everything to the renderer:
// BeginRender once, DrawBatch once per batch in recording order, then
// EndRender.
func (b *Batcher) Finish() error {
	if !b.started {
		return ErrNotStarted
	}
	b.closeRun()
	b.started = false

	Logger().Debug("batch: submit",
		slog.Int("vertices", b.vertices.n),
		slog.Int("indices", b.indices.n),
		slog.Int("batches", len(b.batches)))

	b.renderer.BeginRender(b.vertices.filled(), b.indices.filled(), b.vertices.n, b.indices.n)
	for _, bi := range b.batches {
		b.renderer.DrawBatch(bi.State, bi.StartIndex, bi.IndexCount, bi.UserData)
	}
	b.renderer.EndRender()
	return nil
}

// Batches returns a copy of the batches recorded so far, excluding the open
// one. After Finish it holds the submitted list until the next Start.
func (b *Batcher) Batches() []BatchInfo { return slices.Clone(b.batches) }

// VertexCount returns the number of vertices emitted in this cycle.
func (b *Batcher) VertexCount() int { return b.vertices.n }

// IndexCount returns the number of indices emitted in this cycle.
func (b *Batcher) IndexCount() int { return b.indices.n }

// Capacity returns the current vertex and index buffer capacities.
func (b *Batcher) Capacity() (vertices, indices int) {
	return len(b.vertices.data), len(b.indices.data)
}

// EnsureFree makes room for vertexCount more vertices and indexCount more
// indices. Existing contents are preserved. It fails with a *CapacityError
// if a configured maximum would be exceeded; in that case neither buffer
// is touched.
func (b *Batcher) EnsureFree(vertexCount, indexCount int) error {
	if vertexCount < 0 || indexCount < 0 {
		return invalidArg("negative reservation %d/%d", vertexCount, indexCount)
	}
	if lim := b.opts.maxVertices; lim > 0 && b.vertices.n+vertexCount > lim {
		return &CapacityError{Buffer: "vertex", Required: b.vertices.n + vertexCount, Limit: lim}
	}
	if lim := b.opts.maxIndices; lim > 0 && b.indices.n+indexCount > lim {
		return &CapacityError{Buffer: "index", Required: b.indices.n + indexCount, Limit: lim}
	}

	if c := b.vertices.newCapacity(vertexCount, b.opts.minGrowth, b.opts.maxVertices); c > len(b.vertices.data) {
		Logger().Debug("batch: grow vertex buffer", slog.Int("from", len(b.vertices.data)), slog.Int("to", c))
		b.vertices.grow(c)
	}
	if c := b.indices.newCapacity(indexCount, b.opts.minGrowth, b.opts.maxIndices); c > len(b.indices.data) {
		Logger().Debug("batch: grow index buffer", slog.Int("from", len(b.indices.data)), slog.Int("to", c))
		b.indices.grow(c)
	}
	return nil
}

// begin prepares a draw of the given size: it checks the cycle, reserves
// space and closes the open batch if the state changed since it opened.
func (b *Batcher) begin(vertexCount, indexCount int) error {
	if !b.started {
		return ErrNotStarted
	}
	if err := b.EnsureFree(vertexCount, indexCount); err != nil {
		return err
	}
	b.syncRun()
	return nil
}

// syncRun makes the open run match the requested state.
func (b *Batcher) syncRun() {
	if b.indices.n > b.runStart && b.state == b.runState && b.userGen == b.runGen {
		return
	}
	b.closeRun()
	b.runState = b.state
	b.runData = b.userData
	b.runGen = b.userGen
}

// closeRun records the open run if it holds any indices.
func (b *Batcher) closeRun() {
	count := b.indices.n - b.runStart
	if count == 0 {
		return
	}
	b.batches = append(b.batches, BatchInfo{
		State:      b.runState,
		StartIndex: b.runStart,
		IndexCount: count,
		UserData:   b.runData,
	})
	b.runStart = b.indices.n
}

// ResetState restores the default graphics state, clears transforms, the
// sprite, scissor and depth. The font is kept.
func (b *Batcher) ResetState() {
	b.state = GraphicsState{
		Blend:   b.opts.blend,
		Sampler: b.opts.sampler,
	}
	b.transform = nil
	b.uvTransform = nil
	b.depth = 0
	b.clearSprite()
}

// State returns the graphics state the next draw will use.
func (b *Batcher) State() GraphicsState { return b.state }

// SetBlendState sets the blend state for subsequent draws.
func (b *Batcher) SetBlendState(s gputypes.BlendState) { b.state.Blend = s }

// SetSamplerState sets the sampler state for subsequent draws.
func (b *Batcher) SetSamplerState(s SamplerState) { b.state.Sampler = s }

// SetScissor restricts subsequent draws to r, clipped to the viewport.
func (b *Batcher) SetScissor(r geom.Rectangle) {
	if vp := b.renderer.Viewport(); !vp.Empty() {
		r = r.Intersect(vp)
	}
	b.state.Scissor = r
	b.state.Scissored = true
}

// ClearScissor removes the scissor rectangle.
func (b *Batcher) ClearScissor() {
	b.state.Scissor = geom.Rectangle{}
	b.state.Scissored = false
}

// SetUserData attaches data to subsequent draws. Every call starts a new
// batch for the draws that follow, since arbitrary values cannot be
// compared.
func (b *Batcher) SetUserData(data any) {
	b.userData = data
	b.userGen++
}

// SetTransform sets the position transform. Nil means identity.
func (b *Batcher) SetTransform(t Transform) { b.transform = t }

// Transform returns the position transform, or nil.
func (b *Batcher) Transform() Transform { return b.transform }

// SetUVTransform sets the texture coordinate transform, applied in unit
// space before the sprite remap. Nil means identity.
func (b *Batcher) SetUVTransform(t Transform) { b.uvTransform = t }

// SetDepth sets the Z coordinate of subsequent vertices.
func (b *Batcher) SetDepth(z float32) { b.depth = z }

// Viewport returns the renderer's viewport.
func (b *Batcher) Viewport() geom.Rectangle { return b.renderer.Viewport() }

// vertex appends one vertex, applying transforms and the UV remap.
func (b *Batcher) vertex(x, y float32, c Color, u, v float32) uint32 {
	z := b.depth
	if b.transform != nil {
		x, y, z = b.transform.TransformPoint(x, y, z)
	}
	if b.uvTransform != nil {
		u, v, _ = b.uvTransform.TransformPoint(u, v, 0)
	}
	if b.remap {
		u = b.uvRect.X + u*b.uvRect.Width
		v = b.uvRect.Y + v*b.uvRect.Height
	}
	i := b.vertices.n
	b.vertices.data[i] = Vertex{X: x, Y: y, Z: z, Color: c, U: u, V: v}
	b.vertices.n++
	return uint32(i)
}

// triangle appends one triangle's indices.
func (b *Batcher) triangle(i0, i1, i2 uint32) {
	n := b.indices.n
	b.indices.data[n] = i0
	b.indices.data[n+1] = i1
	b.indices.data[n+2] = i2
	b.indices.n += 3
}

// quad appends the two triangles (0,1,2) and (0,2,3) of four consecutive
// vertices starting at base.
func (b *Batcher) quad(base uint32) {
	b.triangle(base, base+1, base+2)
	b.triangle(base, base+2, base+3)
}
