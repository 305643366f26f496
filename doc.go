// Package batch is a 2D rendering middle layer: it turns immediate-mode
// drawing calls into vertex and index buffers plus a minimal list of
// state-homogeneous batches for a backend renderer.
//
// # Quick Start
//
//	import "github.com/gogpu/batch"
//
//	b, err := batch.New(renderer, batch.WithShaper(fonts))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = b.Start()
//	b.SetTexture(whiteTexture)
//	_ = b.FillRectangle(geom.RectF(10, 10, 100, 50), batch.Red)
//	_ = b.Line(geom.Pt(0, 0), geom.Pt(100, 100), batch.White, 2)
//	_ = b.Finish() // BeginRender, one DrawBatch per batch, EndRender
//
// # Batching
//
// Every draw is tagged with the current GraphicsState (texture, blend,
// sampler, scissor). Consecutive draws with equal state and user data share
// one BatchInfo. A state change closes the open batch lazily: only when the
// next draw arrives with a different state, so setting and resetting a state
// without drawing costs nothing. Transforms and sprite sub-rectangles of the
// same texture never split a batch.
//
// # Architecture
//
// The module is organized into:
//   - batch: Batcher, buffers, graphics state, Renderer and TextureStorage capabilities
//   - geom: Point2, Rectangle and RectangleF value types
//   - rectpack: MaxRects bin packer
//   - text: character ranges, glyph maps, font atlas builder and font providers
//   - recording: in-memory Renderer and TextureStorage
//
// # Thread Safety
//
// A Batcher is owned by a single goroutine. Font atlases and glyph maps are
// immutable and may be shared.
package batch
