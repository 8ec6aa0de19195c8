package mandel

import "errors"

var (
	// ErrInvalidViewport is returned for a region with non-positive width or height.
	ErrInvalidViewport = errors.New("invalid viewport")
	// ErrInvalidResolution is returned for a non-positive resolution or one that
	// yields zero columns or rows (or an unreasonably large grid).
	ErrInvalidResolution = errors.New("invalid resolution")
	// ErrInvalidDepth is returned for a depth bound below 1.
	ErrInvalidDepth = errors.New("invalid depth")
	// ErrInvalidBounds is returned when a display bounding box is not positive.
	ErrInvalidBounds = errors.New("invalid bounds")
	// ErrInvalidArguments is returned by the command-line parsers.
	ErrInvalidArguments = errors.New("invalid arguments")
)
