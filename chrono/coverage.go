package chrono

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// COVERAGE - Exact day-coverage ratios
// =============================================================================
// Ratios are decimal.Decimal, not float64, so day counts stay exact and
// ratios carry decimal precision rather than binary rounding error.

// Coverage returns the fraction of other's dates that this range covers,
// as a decimal in [0, 1]. Disjoint ranges yield zero. It fails with
// ErrOverflow when other is unbounded (the denominator would be infinite)
// and with ErrInvalidRange when other is empty (nothing to cover).
func (r DateRange) Coverage(other DateRange) (decimal.Decimal, error) {
	if other.IsUnboundedStart() || other.IsUnboundedEnd() {
		return decimal.Zero, fmt.Errorf("coverage of unbounded range: %w", ErrOverflow)
	}
	if other.IsEmpty() {
		return decimal.Zero, fmt.Errorf("coverage of empty range: %w", ErrInvalidRange)
	}
	overlapStart := maxDate(r.start, other.start)
	overlapEnd := minDate(r.endExclusive, other.endExclusive)
	if overlapStart.Compare(overlapEnd) >= 0 {
		return decimal.Zero, nil
	}
	covered := decimal.NewFromInt(overlapStart.DaysUntil(overlapEnd))
	total := decimal.NewFromInt(other.start.DaysUntil(other.endExclusive))
	return covered.Div(total), nil
}
