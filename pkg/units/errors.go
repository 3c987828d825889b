package units

import "errors"

// Dimensional-safety errors. ErrDimensionMismatch is the single condition
// raised by every operator that demands identical Dimensions.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Construction and numeric errors.
var (
	ErrZeroDenominator = errors.New("denominator must not be zero")
	ErrInvalidTag      = errors.New("tag must not be empty")
	ErrInvalidFactor   = errors.New("conversion factor must be finite and positive")
	ErrInexact         = errors.New("result is not exactly representable")
	ErrExponentRange   = errors.New("exponent is not representable as a rational")
	ErrZeroStep        = errors.New("range step must not be zero")
	ErrLengthMismatch  = errors.New("slices must have equal length")
)
