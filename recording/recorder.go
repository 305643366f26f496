package recording

import (
	"slices"

	"github.com/gogpu/batch"
	"github.com/gogpu/batch/geom"
)

// Recording is one submitted frame. It owns copies of the buffers, so it
// stays valid after the batcher reuses its own.
type Recording struct {
	Vertices []batch.Vertex
	Indices  []uint32
	Commands []Command
}

// Batches returns the batches drawn in this frame, in submission order.
func (r *Recording) Batches() []batch.BatchInfo {
	var out []batch.BatchInfo
	for _, c := range r.Commands {
		if c.Type == CmdDrawBatch {
			out = append(out, c.Batch)
		}
	}
	return out
}

// BatchIndices returns the index slice of one batch.
func (r *Recording) BatchIndices(bi batch.BatchInfo) []uint32 {
	return r.Indices[bi.StartIndex : bi.StartIndex+bi.IndexCount]
}

// Playback replays the frame into dst.
func (r *Recording) Playback(dst batch.Renderer) {
	for _, c := range r.Commands {
		switch c.Type {
		case CmdBeginRender:
			dst.BeginRender(r.Vertices, r.Indices, c.VertexCount, c.IndexCount)
		case CmdDrawBatch:
			dst.DrawBatch(c.Batch.State, c.Batch.StartIndex, c.Batch.IndexCount, c.Batch.UserData)
		case CmdEndRender:
			dst.EndRender()
		}
	}
}

// TextureSizer reports texture sizes. *Storage implements it.
type TextureSizer interface {
	TextureSize(id batch.TextureID) (width, height int)
}

// Renderer records every frame it receives.
type Renderer struct {
	viewport geom.Rectangle
	textures TextureSizer

	frames  []*Recording
	current *Recording
}

// NewRenderer creates a Renderer with the given viewport. textures answers
// TextureSize queries and may be nil, in which case every texture has size
// zero.
func NewRenderer(viewport geom.Rectangle, textures TextureSizer) *Renderer {
	return &Renderer{viewport: viewport, textures: textures}
}

// TextureSize implements batch.Renderer.
func (r *Renderer) TextureSize(id batch.TextureID) (width, height int) {
	if r.textures == nil {
		return 0, 0
	}
	return r.textures.TextureSize(id)
}

// Viewport implements batch.Renderer.
func (r *Renderer) Viewport() geom.Rectangle { return r.viewport }

// SetViewport changes the viewport reported to the batcher.
func (r *Renderer) SetViewport(v geom.Rectangle) { r.viewport = v }

// BeginRender implements batch.Renderer. The used parts of the buffers are
// copied.
func (r *Renderer) BeginRender(vertices []batch.Vertex, indices []uint32, vertexCount, indexCount int) {
	r.current = &Recording{
		Vertices: slices.Clone(vertices[:vertexCount]),
		Indices:  slices.Clone(indices[:indexCount]),
		Commands: make([]Command, 0, 8),
	}
	r.record(Command{Type: CmdBeginRender, VertexCount: vertexCount, IndexCount: indexCount})
}

// DrawBatch implements batch.Renderer.
func (r *Renderer) DrawBatch(state batch.GraphicsState, startIndex, indexCount int, userData any) {
	r.record(Command{Type: CmdDrawBatch, Batch: batch.BatchInfo{
		State:      state,
		StartIndex: startIndex,
		IndexCount: indexCount,
		UserData:   userData,
	}})
}

// EndRender implements batch.Renderer.
func (r *Renderer) EndRender() {
	r.record(Command{Type: CmdEndRender})
	r.frames = append(r.frames, r.current)
	r.current = nil
}

func (r *Renderer) record(c Command) {
	if r.current == nil {
		// Calls outside BeginRender/EndRender still get recorded.
		r.current = &Recording{}
	}
	r.current.Commands = append(r.current.Commands, c)
}

// Frames returns the completed frames, oldest first.
func (r *Renderer) Frames() []*Recording { return slices.Clone(r.frames) }

// Last returns the most recent completed frame, or nil.
func (r *Renderer) Last() *Recording {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

// Reset drops all recorded frames.
func (r *Renderer) Reset() {
	r.frames = nil
	r.current = nil
}
