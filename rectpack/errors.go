package rectpack

import (
	"errors"
	"fmt"
)

// Sentinel errors for rectpack package.
var (
	// ErrInvalidSize is returned for rectangles with a negative dimension.
	ErrInvalidSize = errors.New("rectpack: invalid rectangle size")

	// ErrOutOfSpace is returned when a rectangle does not fit and the bin
	// cannot grow any further.
	ErrOutOfSpace = errors.New("rectpack: no space left in bin")

	// ErrTooLarge is returned when a padded rectangle exceeds the maximum
	// bin extents.
	ErrTooLarge = errors.New("rectpack: rectangle exceeds maximum bin size")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "rectpack: invalid config." + e.Field + ": " + e.Reason
}

// CapacityError reports the request that could not be placed.
type CapacityError struct {
	// Index is the position of the size in the Insert batch.
	Index int
	// Size is the requested size without padding.
	Size Size
	// Err is one of ErrInvalidSize, ErrOutOfSpace or ErrTooLarge.
	Err error
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("rectpack: cannot place rectangle %d (%dx%d): %v", e.Index, e.Size.Width, e.Size.Height, e.Err)
}

func (e *CapacityError) Unwrap() error {
	return e.Err
}
