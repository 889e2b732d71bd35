package asciify

import "github.com/pkg/errors"

// Error classes reported by the conversion pipeline. Callers should test
// against them with errors.Is, since every returned error is wrapped with
// the failing path or value.
var (
	// ErrArgument is returned for unusable command line input.
	ErrArgument = errors.New("invalid argument")
	// ErrInvalidDimension is returned for a scale request with a non-positive dimension.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrDecode is returned when the source cannot be read or is not a supported image.
	ErrDecode = errors.New("failed to decode image")
	// ErrOutput is returned when the destination cannot be created or written.
	ErrOutput = errors.New("failed to write output")
	// ErrBufferSize signals that a pixel buffer does not match its dimensions.
	// It is an internal defect, never a user error.
	ErrBufferSize = errors.New("failed to build image buffer")
)
