package common

import (
	"errors"
	"fmt"
)

var (
	ErrorInvalidValue = errors.New("invalid value")
	ErrorKeyNotFound  = errors.New("key not found")

	// ErrorUnknownLabel is returned by the closed label tables. It matches
	// ErrorKeyNotFound too, so callers may check either.
	ErrorUnknownLabel = fmt.Errorf("%w: unknown label", ErrorKeyNotFound)

	ErrorTooFewPoints          = errors.New("too few points for interpolation")
	ErrorNotStrictlyIncreasing = errors.New("timestamps not strictly increasing")
	ErrorShapeMismatch         = errors.New("shape mismatch")
	ErrorInterpolation         = errors.New("interpolation failed")
	ErrorOutOfGrid             = errors.New("coordinate outside display grid")
)
