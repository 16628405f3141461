package apng

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidColorError is returned at construction when Meta.Color is not one of
// the legal color/bit-depth combinations.
type InvalidColorError struct {
	Color Color
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("apng: invalid color %v with bit depth %d", e.Color.Type, e.Color.BitDepth)
}

// TooManyFramesError is returned when WriteFrame is called past Meta.Frames.
type TooManyFramesError struct {
	Declared, Attempted uint32
}

func (e *TooManyFramesError) Error() string {
	return fmt.Sprintf("apng: too many frames: declared %d, attempted %d", e.Declared, e.Attempted)
}

// NotEnoughFramesError is returned when Finish is called before all declared
// frames have been written.
type NotEnoughFramesError struct {
	Declared, Written uint32
}

func (e *NotEnoughFramesError) Error() string {
	return fmt.Sprintf("apng: not enough frames: declared %d, written %d", e.Declared, e.Written)
}

// TooLargeImageError is returned when a frame rectangle exceeds the canvas,
// or the supplied buffer implies more rows than the rectangle bottom.
type TooLargeImageError struct {
	Width, Height uint32
}

func (e *TooLargeImageError) Error() string {
	return fmt.Sprintf("apng: image too large for %dx%d canvas", e.Width, e.Height)
}

// TooSmallImageError is returned when the supplied buffer implies fewer rows
// than the frame height requires.
type TooSmallImageError struct {
	Width, Height uint32
}

func (e *TooSmallImageError) Error() string {
	return fmt.Sprintf("apng: image buffer too small for %dx%d frame", e.Width, e.Height)
}

// InvalidDefaultImageRectangleError is returned when the first WriteFrame call
// (serving as the default image) has a non-full-canvas rectangle.
type InvalidDefaultImageRectangleError struct{}

func (e *InvalidDefaultImageRectangleError) Error() string {
	return "apng: first frame must cover the full canvas when no separate default image is written"
}

// MultipleDefaultImageError is returned on a second WriteDefaultImage call.
type MultipleDefaultImageError struct{}

func (e *MultipleDefaultImageError) Error() string {
	return "apng: default image already written"
}

// DefaultImageNotAtFirstError is returned when WriteDefaultImage is called
// after any fcTL chunk has been emitted.
type DefaultImageNotAtFirstError struct{}

func (e *DefaultImageNotAtFirstError) Error() string {
	return "apng: default image must be written before any animation frame"
}

// wrapIoError wraps a sink write failure into the closed Io error kind,
// preserving a stack trace at the point of failure.
func wrapIoError(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "apng: %s", op)
}
