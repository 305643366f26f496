package batch

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/batch/geom"
)

// TextureID identifies a texture owned by the renderer or texture storage.
// Zero means "no texture".
type TextureID uint32

// NoTexture is the zero TextureID.
const NoTexture TextureID = 0

// SamplerState selects texture filtering and addressing.
type SamplerState struct {
	MinFilter    gputypes.FilterMode
	MagFilter    gputypes.FilterMode
	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
}

// Sampler presets.
var (
	SamplerLinearClamp = SamplerState{
		MinFilter:    gputypes.FilterModeLinear,
		MagFilter:    gputypes.FilterModeLinear,
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
	}
	SamplerPointClamp = SamplerState{
		MinFilter:    gputypes.FilterModeNearest,
		MagFilter:    gputypes.FilterModeNearest,
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
	}
	SamplerLinearRepeat = SamplerState{
		MinFilter:    gputypes.FilterModeLinear,
		MagFilter:    gputypes.FilterModeLinear,
		AddressModeU: gputypes.AddressModeRepeat,
		AddressModeV: gputypes.AddressModeRepeat,
	}
)

// Blend presets.
var (
	// BlendPremultiplied composites premultiplied colors (the default).
	BlendPremultiplied = gputypes.BlendStatePremultiplied()

	// BlendAlpha composites straight-alpha colors.
	BlendAlpha = gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}

	// BlendAdditive adds source to destination.
	BlendAdditive = gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationAdd,
		},
	}

	// BlendOpaque replaces the destination.
	BlendOpaque = gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorZero,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorZero,
			Operation: gputypes.BlendOperationAdd,
		},
	}
)

// GraphicsState is the renderer state shared by every index of a batch.
// Two draws can share a batch only if their states are equal.
type GraphicsState struct {
	Texture TextureID
	Blend   gputypes.BlendState
	Sampler SamplerState
	// Scissor is only meaningful when Scissored is set.
	Scissor   geom.Rectangle
	Scissored bool
}

// BatchInfo is a contiguous index range drawn with one state.
type BatchInfo struct {
	State      GraphicsState
	StartIndex int
	IndexCount int
	UserData   any
}
