/*
errors.go - Centralized error types for the chrono package

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers match on the sentinel errors with errors.Is and extract
  context from the structured types with errors.As.

ERROR CATEGORIES:
  1. Construction errors - Range/date invariant violations
  2. Algebra errors      - Operations on disconnected ranges
  3. Arithmetic errors   - Overflow past the representable calendar
  4. Text errors         - Malformed or missing input

USAGE:
  r, err := chrono.ParseDateRange(text)
  if errors.Is(err, chrono.ErrParse) {
      // bad input, not a bug
  }

SEE ALSO:
  - range.go: Raises construction and algebra errors
  - date.go:  Raises date and overflow errors
*/
package chrono

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRange is returned when a range constructor's ordering or
	// sentinel-adjacency invariants are violated (start after end, start at
	// MaxDate, end at MinDate, empty range anchored at a sentinel).
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidDate is returned when a date component is out of range.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNotConnected is returned by Intersection and Union when the two
	// ranges neither overlap nor abut.
	ErrNotConnected = errors.New("ranges do not connect")

	// ErrOverflow is returned when an exact day-count cannot be represented:
	// date arithmetic past MinDate/MaxDate, or ToPeriod on an unbounded range.
	ErrOverflow = errors.New("calendar arithmetic overflow")

	// ErrParse is returned for malformed textual input.
	ErrParse = errors.New("invalid text")

	// ErrEmptyInput is returned when required textual input is absent.
	ErrEmptyInput = errors.New("empty input")

	// ErrNilAdjuster is returned when a bound-adjusting function is nil.
	ErrNilAdjuster = errors.New("nil adjuster function")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidRangeError reports the offending bounds of a failed construction.
type InvalidRangeError struct {
	Start  Date
	End    Date
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range %s/%s: %s", e.Start, e.End, e.Reason)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

// NotConnectedError reports the two ranges that failed to connect.
type NotConnectedError struct {
	A DateRange
	B DateRange
}

func (e *NotConnectedError) Error() string {
	return fmt.Sprintf("ranges %s and %s do not connect", e.A, e.B)
}

func (e *NotConnectedError) Unwrap() error {
	return ErrNotConnected
}

// ParseError reports the text that failed to parse.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Text, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than an internal failure. Every chrono error qualifies: all
// operations are pure and deterministic, so nothing here is retryable.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrNotConnected) ||
		errors.Is(err, ErrOverflow) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrNilAdjuster)
}
