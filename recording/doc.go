// Package recording provides in-memory implementations of the batch
// backend interfaces.
//
// Renderer implements batch.Renderer by copying every submitted frame into
// a Recording: the vertex and index data plus the ordered list of
// BeginRender, DrawBatch and EndRender commands. A Recording can be
// inspected in tests or replayed to another renderer with Playback.
//
// Storage implements batch.TextureStorage with *image.RGBA textures.
//
// # Example
//
//	storage := recording.NewStorage()
//	r := recording.NewRenderer(geom.Rect(0, 0, 800, 600), storage)
//	b, _ := batch.New(r)
//	b.Start()
//	b.FillRectangle(geom.RectF(10, 10, 100, 50), batch.Red)
//	b.Finish()
//	frame := r.Last()
//	fmt.Println(len(frame.Batches()))
//
// Neither type is safe for concurrent use.
package recording
