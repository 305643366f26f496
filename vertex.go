package batch

import "github.com/gogpu/gputypes"

// Vertex is the interleaved vertex format produced by the Batcher.
//
// Memory layout (24 bytes):
//
//	offset  0: X, Y, Z  float32x3  position
//	offset 12: Color    unorm8x4   RGBA
//	offset 16: U, V     float32x2  texture coordinates
type Vertex struct {
	X, Y, Z float32
	Color   Color
	U, V    float32
}

// VertexSize is the size of Vertex in bytes.
const VertexSize = 24

// Shader locations of the vertex attributes.
const (
	LocationPosition = 0
	LocationColor    = 1
	LocationTexCoord = 2
)

// VertexLayout describes Vertex for pipeline creation.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexSize,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationPosition},
			{Format: gputypes.VertexFormatUnorm8x4, Offset: 12, ShaderLocation: LocationColor},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: LocationTexCoord},
		},
	}
}
