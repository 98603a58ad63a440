package aggregator

import "pulse/pkg/serrors"

// Percent returns n/d as a whole percentage, rounding halves up. The
// arithmetic is exact integer math, so 1/8 is 13 and 1/3 is 33. It fails with
// serrors.ErrEmptyDenominator when d is not positive.
func Percent(n, d int) (int, error) {
	if d <= 0 {
		return 0, serrors.With(serrors.ErrEmptyDenominator, "percentage of %d over %d", n, d)
	}
	if n < 0 || n > d {
		return 0, serrors.With(serrors.ErrInternal, "count %d out of range for total %d", n, d)
	}

	return (200*n + d) / (2 * d), nil
}
