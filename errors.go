package batch

import (
	"errors"
	"fmt"

	"github.com/gogpu/batch/text"
)

// Sentinel errors for batch package.
var (
	// ErrNotStarted is returned when drawing outside Start/Finish.
	ErrNotStarted = errors.New("batch: Start has not been called")

	// ErrAlreadyStarted is returned by Start while a cycle is in progress.
	ErrAlreadyStarted = errors.New("batch: already started")

	// ErrInvalidArgument is returned for malformed draw arguments.
	// Nothing is emitted when it is returned.
	ErrInvalidArgument = errors.New("batch: invalid argument")

	// ErrNoFont is returned by DrawText when no font is set.
	ErrNoFont = errors.New("batch: no font set")

	// ErrNoShaper is returned by DrawText when the batcher has no shaper.
	ErrNoShaper = errors.New("batch: no text shaper configured")

	// ErrCapacityExceeded is returned when a buffer would grow past its
	// configured maximum.
	ErrCapacityExceeded = errors.New("batch: buffer capacity exceeded")

	// ErrMissingGlyph matches the *text.MissingGlyphError DrawText returns
	// when a codepoint has no glyph and no fallback is set.
	ErrMissingGlyph = text.ErrGlyphNotFound
)

// CapacityError reports a buffer that cannot grow enough.
type CapacityError struct {
	// Buffer is "vertex" or "index".
	Buffer string
	// Required is the element count the draw needed in total.
	Required int
	// Limit is the configured maximum.
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("batch: %s buffer needs %d elements, limit is %d", e.Buffer, e.Required, e.Limit)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// invalidArg wraps ErrInvalidArgument with a formatted reason.
func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
