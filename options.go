package batch

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/batch/text"
)

// Default buffer settings.
const (
	// DefaultInitialVertices is the initial vertex capacity.
	DefaultInitialVertices = 4096

	// DefaultInitialIndices is the initial index capacity.
	DefaultInitialIndices = 6144

	// DefaultMinGrowth is the smallest number of elements a buffer grows by.
	DefaultMinGrowth = 1024

	// DefaultCircleTolerance is the maximum distance in pixels between an
	// arc and its polygonal approximation.
	DefaultCircleTolerance = 0.25
)

// Option configures a Batcher during creation.
//
// Example:
//
//	b, err := batch.New(renderer,
//	    batch.WithInitialCapacity(1<<16, 3<<15),
//	    batch.WithMaxVertices(1<<20),
//	    batch.WithShaper(fonts),
//	)
type Option func(*options)

// options holds optional configuration for Batcher creation.
type options struct {
	initialVertices int
	initialIndices  int
	minGrowth       int
	maxVertices     int
	maxIndices      int
	circleTolerance float32
	shaper          text.Shaper
	blend           gputypes.BlendState
	sampler         SamplerState
}

// defaultOptions returns the default batcher options.
func defaultOptions() options {
	return options{
		initialVertices: DefaultInitialVertices,
		initialIndices:  DefaultInitialIndices,
		minGrowth:       DefaultMinGrowth,
		circleTolerance: DefaultCircleTolerance,
		blend:           BlendPremultiplied,
		sampler:         SamplerLinearClamp,
	}
}

func (o *options) validate() error {
	switch {
	case o.initialVertices < 0 || o.initialIndices < 0:
		return invalidArg("negative initial capacity")
	case o.minGrowth < 1:
		return invalidArg("minimum growth must be at least 1, got %d", o.minGrowth)
	case o.maxVertices < 0 || o.maxIndices < 0:
		return invalidArg("negative buffer limit")
	case o.maxVertices > 0 && o.initialVertices > o.maxVertices:
		return invalidArg("initial vertex capacity %d exceeds limit %d", o.initialVertices, o.maxVertices)
	case o.maxIndices > 0 && o.initialIndices > o.maxIndices:
		return invalidArg("initial index capacity %d exceeds limit %d", o.initialIndices, o.maxIndices)
	case !(o.circleTolerance > 0):
		return invalidArg("circle tolerance must be positive")
	}
	return nil
}

// WithInitialCapacity sets the initial vertex and index capacity.
func WithInitialCapacity(vertices, indices int) Option {
	return func(o *options) {
		o.initialVertices = vertices
		o.initialIndices = indices
	}
}

// WithMinGrowth sets the smallest number of elements a buffer grows by.
// Buffers otherwise grow geometrically.
func WithMinGrowth(n int) Option {
	return func(o *options) {
		o.minGrowth = n
	}
}

// WithMaxVertices caps the vertex buffer. Draws that would exceed it fail
// with a *CapacityError. Zero means unlimited.
func WithMaxVertices(n int) Option {
	return func(o *options) {
		o.maxVertices = n
	}
}

// WithMaxIndices caps the index buffer. Zero means unlimited.
func WithMaxIndices(n int) Option {
	return func(o *options) {
		o.maxIndices = n
	}
}

// WithCircleTolerance sets the maximum chordal error of arcs in pixels.
func WithCircleTolerance(e float32) Option {
	return func(o *options) {
		o.circleTolerance = e
	}
}

// WithShaper sets the text shaper used by DrawText.
func WithShaper(s text.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithBlendState sets the initial blend state.
func WithBlendState(b gputypes.BlendState) Option {
	return func(o *options) {
		o.blend = b
	}
}

// WithSamplerState sets the initial sampler state.
func WithSamplerState(s SamplerState) Option {
	return func(o *options) {
		o.sampler = s
	}
}
