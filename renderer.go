package batch

import "github.com/gogpu/batch/geom"

// Renderer is the backend the Batcher submits to. All submission calls
// happen inside Finish, in the order BeginRender, DrawBatch once per
// BatchInfo, EndRender.
//
// The vertex and index slices passed to BeginRender belong to the Batcher.
// They are valid until EndRender returns and must not be retained.
type Renderer interface {
	// TextureSize returns the size of a texture in pixels.
	TextureSize(id TextureID) (width, height int)

	// Viewport returns the render target rectangle.
	Viewport() geom.Rectangle

	BeginRender(vertices []Vertex, indices []uint32, vertexCount, indexCount int)
	DrawBatch(state GraphicsState, startIndex, indexCount int, userData any)
	EndRender()
}

// TextureStorage creates and fills textures. Pixels are tightly packed
// premultiplied RGBA8 rows.
type TextureStorage interface {
	CreateTexture(width, height int) (TextureID, error)
	SetData(id TextureID, pixels []byte) error
	SetRegionData(id TextureID, region geom.Rectangle, pixels []byte) error
	TextureSize(id TextureID) (width, height int)
}
