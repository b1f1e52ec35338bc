package imageaccess

import "errors"

// Errors returned by imageaccess operations. Returned errors wrap one of
// these with call-specific detail; match them with errors.Is.
var (
	// ErrInvalidArgument is returned for non-integer or non-positive sizes,
	// unknown padding modes, padding modes a write cannot honor, and
	// malformed constructor input.
	ErrInvalidArgument = errors.New("imageaccess: invalid argument")

	// ErrDimensionMismatch is returned when a row, column, mask or array
	// does not have the length or rank the operation requires.
	ErrDimensionMismatch = errors.New("imageaccess: dimension mismatch")

	// ErrOutOfBounds is returned when a sub-image rectangle does not fit
	// inside the image, or a neighborhood is indexed outside its extent.
	ErrOutOfBounds = errors.New("imageaccess: out of bounds")

	// ErrDegenerateRange is returned by Normalize and ToUint8 when every
	// sample of the image has the same value.
	ErrDegenerateRange = errors.New("imageaccess: degenerate value range")
)
