/*
range.go - Half-open, possibly-unbounded date interval

PURPOSE:
  DateRange is an immutable interval [start, endExclusive) over calendar
  dates. "Unbounded" ends are modeled with the calendar's own extremes:
  a start of MinDate means "no lower bound", an end of MaxDate means "no
  upper bound". This keeps every comparison a plain date comparison at the
  cost of sentinel-adjacent special cases, which are documented per method.

INVARIANTS:
  - start <= endExclusive (equal means an empty range)
  - start is never MaxDate, endExclusive is never MinDate
    (those combinations could not distinguish a bound from a sentinel)

CONSTRUCTION:
  Values are built only through the validating constructors below; the
  zero value of DateRange is the empty range at the zero Date and is not
  produced by any constructor.

SEE ALSO:
  - date.go:     Date comparison and epoch-day arithmetic
  - period.go:   Elapsed-day amounts for length and construction
  - coverage.go: Exact day-coverage ratios between ranges
*/
package chrono

import (
	"encoding/json"
	"fmt"
	"iter"
	"math"
	"strings"
)

// =============================================================================
// DATE RANGE - Immutable half-open interval of dates
// =============================================================================

// DateRange is a half-open interval [start, endExclusive) of calendar dates.
// It is a comparable value: two ranges are equal iff their bounds are equal.
type DateRange struct {
	start        Date
	endExclusive Date
}

// AllDates is the unbounded range covering every representable date.
var AllDates = DateRange{start: MinDate, endExclusive: MaxDate}

// =============================================================================
// CONSTRUCTION
// =============================================================================

// NewDateRange creates [start, endExclusive). Equal bounds denote an empty
// range anchored at that date. It fails when start is after endExclusive,
// when start is MaxDate, or when endExclusive is MinDate - the sentinels
// are reserved for "unbounded" and an inclusive end would be undefined.
func NewDateRange(start, endExclusive Date) (DateRange, error) {
	switch {
	case start.After(endExclusive):
		return DateRange{}, &InvalidRangeError{Start: start, End: endExclusive, Reason: "start after end"}
	case start == MaxDate:
		return DateRange{}, &InvalidRangeError{Start: start, End: endExclusive, Reason: "start at maximum date"}
	case endExclusive == MinDate:
		return DateRange{}, &InvalidRangeError{Start: start, End: endExclusive, Reason: "end at minimum date"}
	}
	return DateRange{start: start, endExclusive: endExclusive}, nil
}

// NewDateRangeClosed creates [start, endInclusive]. It fails when
// endInclusive is MaxDate: one more day cannot be represented, and this
// constructor cannot express an unbounded end - use NewUnboundedEnd or
// NewDateRange with MaxDate for that.
func NewDateRangeClosed(start, endInclusive Date) (DateRange, error) {
	if endInclusive == MaxDate {
		return DateRange{}, &InvalidRangeError{Start: start, End: endInclusive, Reason: "inclusive end at maximum date"}
	}
	return NewDateRange(start, endInclusive.addDays(1))
}

// EmptyDateRange creates the empty range anchored at date. Sentinel anchors
// are rejected: they are reserved for "unbounded".
func EmptyDateRange(date Date) (DateRange, error) {
	return NewDateRange(date, date)
}

// UnboundedDateRange returns the range of all representable dates.
func UnboundedDateRange() DateRange { return AllDates }

// NewUnboundedStart creates (unbounded, endExclusive).
func NewUnboundedStart(endExclusive Date) (DateRange, error) {
	return NewDateRange(MinDate, endExclusive)
}

// NewUnboundedEnd creates [start, unbounded).
func NewUnboundedEnd(start Date) (DateRange, error) {
	return NewDateRange(start, MaxDate)
}

// NewDateRangePeriod creates [start, start+period). The period must not be
// negative; arithmetic past MaxDate fails with ErrOverflow.
func NewDateRangePeriod(start Date, period Period) (DateRange, error) {
	if period.IsNegative() {
		return DateRange{}, &InvalidRangeError{Start: start, End: start, Reason: "negative period"}
	}
	end, err := start.PlusDays(int64(period.Days))
	if err != nil {
		return DateRange{}, fmt.Errorf("range end: %w", err)
	}
	return NewDateRange(start, end)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Start returns the inclusive start; MinDate means the start is unbounded.
func (r DateRange) Start() Date { return r.start }

// EndExclusive returns the exclusive end; MaxDate means the end is unbounded.
func (r DateRange) EndExclusive() Date { return r.endExclusive }

// EndInclusive returns the last date of the range. An unbounded end yields
// MaxDate itself. For an empty range this is the day before the anchor -
// the inclusive end of zero dates points just behind the position.
func (r DateRange) EndInclusive() Date {
	if r.IsUnboundedEnd() {
		return MaxDate
	}
	return r.endExclusive.addDays(-1)
}

func (r DateRange) IsEmpty() bool { return r.start == r.endExclusive }
func (r DateRange) IsUnboundedStart() bool { return r.start == MinDate }
func (r DateRange) IsUnboundedEnd() bool { return r.endExclusive == MaxDate }

// LengthInDays returns the number of dates in the range, saturating at
// math.MaxInt32 when either end is unbounded or the true count would not
// fit a 32-bit signed count. Use ToPeriod for the strict variant.
func (r DateRange) LengthInDays() int {
	if r.IsUnboundedStart() || r.IsUnboundedEnd() {
		return math.MaxInt32
	}
	days := r.start.DaysUntil(r.endExclusive)
	if days > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(days)
}

// ToPeriod returns the exact length as an elapsed-days amount. Unlike
// LengthInDays it never saturates: unbounded ends and counts beyond 32 bits
// fail with ErrOverflow.
func (r DateRange) ToPeriod() (Period, error) {
	if r.IsUnboundedStart() || r.IsUnboundedEnd() {
		return Period{}, fmt.Errorf("unbounded range has no finite period: %w", ErrOverflow)
	}
	days := r.start.DaysUntil(r.endExclusive)
	if days > math.MaxInt32 {
		return Period{}, fmt.Errorf("range length %d days: %w", days, ErrOverflow)
	}
	return Period{Days: int(days)}, nil
}

// =============================================================================
// DERIVED COPIES
// =============================================================================

// WithStart returns a copy with the start replaced, re-validated.
func (r DateRange) WithStart(start Date) (DateRange, error) {
	return NewDateRange(start, r.endExclusive)
}

// WithEnd returns a copy with the exclusive end replaced, re-validated.
func (r DateRange) WithEnd(endExclusive Date) (DateRange, error) {
	return NewDateRange(r.start, endExclusive)
}

// WithStartFunc applies a pure adjustment to the start.
func (r DateRange) WithStartFunc(adjuster func(Date) Date) (DateRange, error) {
	if adjuster == nil {
		return DateRange{}, fmt.Errorf("start adjuster: %w", ErrNilAdjuster)
	}
	return NewDateRange(adjuster(r.start), r.endExclusive)
}

// WithEndFunc applies a pure adjustment to the exclusive end.
func (r DateRange) WithEndFunc(adjuster func(Date) Date) (DateRange, error) {
	if adjuster == nil {
		return DateRange{}, fmt.Errorf("end adjuster: %w", ErrNilAdjuster)
	}
	return NewDateRange(r.start, adjuster(r.endExclusive))
}

// =============================================================================
// INTERVAL ALGEBRA - Pure queries
// =============================================================================
// Every range, even an empty one, occupies [start, endExclusive): an empty
// range holds zero dates but still has a definite position on the date line
// for ordering, while holding no dates for Contains/Overlaps.

// Contains reports whether the date lies within the range. Always false for
// an empty range.
func (r DateRange) Contains(date Date) bool {
	return r.start.Compare(date) <= 0 && date.Compare(r.endExclusive) < 0
}

// Encloses reports whether other is entirely within this range. An empty
// other anchored at the start is enclosed; one anchored exactly at the
// exclusive end is not - it sits just past the last date. When this range
// is itself empty, only the equal empty range is enclosed.
func (r DateRange) Encloses(other DateRange) bool {
	if other.IsEmpty() && other.start == r.endExclusive && !r.IsEmpty() {
		return false
	}
	return r.start.Compare(other.start) <= 0 && other.endExclusive.Compare(r.endExclusive) <= 0
}

// Abuts reports whether the ranges touch at exactly one boundary without
// sharing a date. Two empty ranges at the same anchor do not abut - they
// coincide.
func (r DateRange) Abuts(other DateRange) bool {
	return (r.endExclusive == other.start) != (r.start == other.endExclusive)
}

// IsConnected reports whether the ranges overlap or abut, i.e. union would
// leave no gap.
func (r DateRange) IsConnected(other DateRange) bool {
	return r.start.Compare(other.endExclusive) <= 0 && other.start.Compare(r.endExclusive) <= 0
}

// Overlaps reports whether the ranges share at least one date, or are the
// same empty anchor point.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.IsConnected(other) && !r.Abuts(other)
}

// IsBefore reports whether this range is entirely before the other. An
// empty range's position is its anchor; a range is never before itself.
func (r DateRange) IsBefore(other DateRange) bool {
	return r.endExclusive.Compare(other.start) <= 0 && r != other
}

// IsAfter reports whether this range is entirely after the other.
func (r DateRange) IsAfter(other DateRange) bool {
	return r.start.Compare(other.endExclusive) >= 0 && r != other
}

// IsBeforeDate reports whether every date in the range is before the given
// date. The second clause handles empty ranges, whose position is the
// anchor itself.
func (r DateRange) IsBeforeDate(date Date) bool {
	return r.endExclusive.Compare(date) <= 0 && r.start.Compare(date) < 0
}

// IsAfterDate reports whether every date in the range is after the given
// date.
func (r DateRange) IsAfterDate(date Date) bool {
	return r.start.Compare(date) > 0
}

// =============================================================================
// COMBINATORS
// =============================================================================

// Intersection returns the overlap of two connected ranges; it fails with
// NotConnectedError otherwise.
func (r DateRange) Intersection(other DateRange) (DateRange, error) {
	if !r.IsConnected(other) {
		return DateRange{}, &NotConnectedError{A: r, B: other}
	}
	return DateRange{start: maxDate(r.start, other.start), endExclusive: minDate(r.endExclusive, other.endExclusive)}, nil
}

// Union returns the combined extent of two connected ranges; it fails with
// NotConnectedError otherwise.
func (r DateRange) Union(other DateRange) (DateRange, error) {
	if !r.IsConnected(other) {
		return DateRange{}, &NotConnectedError{A: r, B: other}
	}
	return r.Span(other), nil
}

// Span returns the smallest range enclosing both ranges, connected or not.
// Span always encloses both of its inputs.
func (r DateRange) Span(other DateRange) DateRange {
	return DateRange{start: minDate(r.start, other.start), endExclusive: maxDate(r.endExclusive, other.endExclusive)}
}

func minDate(a, b Date) Date {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}

func maxDate(a, b Date) Date {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

// =============================================================================
// ITERATION
// =============================================================================

// Dates returns a lazy, restartable sequence of every date in the range.
// A range with an unbounded end yields dates effectively forever, so
// consume it lazily; an empty range yields nothing.
func (r DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.start; d.Before(r.endExclusive); d = d.addDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// =============================================================================
// TEXT
// =============================================================================

// String formats the range as "start/endExclusive" in ISO-8601, with the
// sentinels rendered as their proleptic extreme dates.
func (r DateRange) String() string {
	return r.start.String() + "/" + r.endExclusive.String()
}

// ParseDateRange parses "start/end" where each side is an ISO-8601 date or,
// on at most one side, an ISO-8601 day period such as P7D. A period side is
// resolved against the date side: "P7D/2026-02-01" starts seven days before
// the end, "2026-02-01/P7D" ends seven days after the start.
func ParseDateRange(text string) (DateRange, error) {
	if text == "" {
		return DateRange{}, fmt.Errorf("range: %w", ErrEmptyInput)
	}
	sides := strings.Split(text, "/")
	if len(sides) != 2 {
		return DateRange{}, &ParseError{Text: text, Reason: "expected start/end"}
	}
	left, right := sides[0], sides[1]
	leftIsPeriod, rightIsPeriod := isPeriodText(left), isPeriodText(right)
	switch {
	case leftIsPeriod && rightIsPeriod:
		return DateRange{}, &ParseError{Text: text, Reason: "at most one side may be a period"}
	case leftIsPeriod:
		period, err := ParsePeriod(left)
		if err != nil {
			return DateRange{}, err
		}
		end, err := ParseDate(right)
		if err != nil {
			return DateRange{}, err
		}
		start, err := end.PlusDays(-int64(period.Days))
		if err != nil {
			return DateRange{}, err
		}
		return NewDateRange(start, end)
	case rightIsPeriod:
		start, err := ParseDate(left)
		if err != nil {
			return DateRange{}, err
		}
		period, err := ParsePeriod(right)
		if err != nil {
			return DateRange{}, err
		}
		end, err := start.PlusDays(int64(period.Days))
		if err != nil {
			return DateRange{}, err
		}
		return NewDateRange(start, end)
	default:
		start, err := ParseDate(left)
		if err != nil {
			return DateRange{}, err
		}
		end, err := ParseDate(right)
		if err != nil {
			return DateRange{}, err
		}
		return NewDateRange(start, end)
	}
}

// MustParseDateRange is ParseDateRange that panics on error.
func MustParseDateRange(text string) DateRange {
	r, err := ParseDateRange(text)
	if err != nil {
		panic(err)
	}
	return r
}

// MarshalJSON encodes the range as its canonical "start/end" string, the
// same stable form the snapshot store persists.
func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *DateRange) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParseDateRange(text)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
