package curve

import "errors"

var (
	// ErrNotOnCurve is returned when coordinates do not satisfy the
	// curve equation.
	ErrNotOnCurve = errors.New("curve: point is not on the curve")

	// ErrCurveMismatch is returned when points on different curves are
	// combined.
	ErrCurveMismatch = errors.New("curve: points are not on the same curve")
)
