/*
Package chrono provides supplementary calendar value types: a proleptic
Gregorian date with sentinel bounds, a half-open date range with full
interval algebra, elapsed-day periods, quarters, and packed integer codecs.

PURPOSE:
  The standard library's time.Time tops out around year 219250468 and mixes
  wall-clock concerns into every value. This package carries pure calendar
  dates across the full proleptic range [-999999999, +999999999] so that the
  extreme years can serve as "unbounded" sentinels for DateRange.

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: a calendar date (year, month, day), compared field-wise
  - Epoch-day arithmetic: days relative to 1970-01-01 for exact math
  - MinDate/MaxDate: the sentinel extremes reserved by DateRange

DESIGN PRINCIPLES:
  1. Immutability: Date is a plain comparable value, never mutated
  2. Exactness: all arithmetic is integer epoch-day math, no durations
  3. Validation: NewDate and ParseDate reject impossible dates

SEE ALSO:
  - range.go:  DateRange built on Date comparison and PlusDays
  - period.go: Elapsed-day amounts produced by exact date subtraction
*/
package chrono

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// DATE - Proleptic Gregorian calendar date
// =============================================================================

// Date is a calendar date in the proleptic Gregorian calendar. The zero
// value is the (invalid) all-zero date; build values with NewDate, ParseDate
// or DateOf.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const (
	// MinYear and MaxYear bound the representable calendar.
	MinYear = -999999999
	MaxYear = 999999999
)

var (
	// MinDate is the earliest representable date. DateRange reserves it as
	// the "unbounded start" sentinel.
	MinDate = Date{Year: MinYear, Month: time.January, Day: 1}

	// MaxDate is the latest representable date. DateRange reserves it as
	// the "unbounded end" sentinel.
	MaxDate = Date{Year: MaxYear, Month: time.December, Day: 31}
)

// NewDate validates the components and returns the date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("year %d out of range: %w", year, ErrInvalidDate)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("month %d out of range: %w", month, ErrInvalidDate)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d out of range for %d-%02d: %w", day, year, month, ErrInvalidDate)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is NewDate that panics on invalid components. For fixed dates in
// tests and package setup.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf extracts the calendar date from a time.Time in its own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Comparison
func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		return cmpInt(d.Year, other.Year)
	}
	if d.Month != other.Month {
		return cmpInt(int(d.Month), int(other.Month))
	}
	return cmpInt(d.Day, other.Day)
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d == other }
func (d Date) IsZero() bool           { return d == Date{} }
func (d Date) Weekday() time.Weekday  { return time.Weekday(floorMod(d.EpochDay()+4, 7)) }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// =============================================================================
// EPOCH-DAY ARITHMETIC
// =============================================================================

const daysFrom0000To1970 = 719528

// EpochDay returns the number of days since 1970-01-01 (may be negative).
func (d Date) EpochDay() int64 {
	y, m := int64(d.Year), int64(d.Month)
	total := 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += (367*m - 362) / 12
	total += int64(d.Day) - 1
	if m > 2 {
		total--
		if !IsLeapYear(d.Year) {
			total--
		}
	}
	return total - daysFrom0000To1970
}

// DateOfEpochDay is the inverse of EpochDay.
func DateOfEpochDay(epochDay int64) (Date, error) {
	if epochDay < minEpochDay || epochDay > maxEpochDay {
		return Date{}, fmt.Errorf("epoch day %d out of range: %w", epochDay, ErrOverflow)
	}
	return dateOfEpochDay(epochDay), nil
}

func dateOfEpochDay(epochDay int64) Date {
	zeroDay := epochDay + daysFrom0000To1970
	// Shift to a March-based year starting 0000-03-01 so leap days land at
	// the end of the cycle.
	zeroDay -= 60
	var adjust int64
	if zeroDay < 0 {
		adjustCycles := (zeroDay+1)/146097 - 1
		adjust = adjustCycles * 400
		zeroDay += -adjustCycles * 146097
	}
	yearEst := (400*zeroDay + 591) / 146097
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust
	marchMonth0 := (doyEst*5 + 2) / 153
	month := (marchMonth0+2)%12 + 1
	day := doyEst - (marchMonth0*306+5)/10 + 1
	yearEst += marchMonth0 / 10
	return Date{Year: int(yearEst), Month: time.Month(month), Day: int(day)}
}

var (
	minEpochDay = MinDate.EpochDay()
	maxEpochDay = MaxDate.EpochDay()
)

// PlusDays returns the date n days later (earlier for negative n), failing
// with ErrOverflow past MinDate/MaxDate.
func (d Date) PlusDays(n int64) (Date, error) {
	return DateOfEpochDay(d.EpochDay() + n)
}

// addDays is PlusDays for internal callers that have already proven the
// result representable.
func (d Date) addDays(n int64) Date {
	return dateOfEpochDay(d.EpochDay() + n)
}

// DaysUntil returns the exact number of days from d to other; negative when
// other is earlier.
func (d Date) DaysUntil(other Date) int64 {
	return other.EpochDay() - d.EpochDay()
}

// IsLeapYear reports proleptic Gregorian leap years.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of the month in the given year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func floorMod(a, b int64) int64 {
	return ((a % b) + b) % b
}

// =============================================================================
// TEXT - ISO-8601 with extended years
// =============================================================================

// String formats the date as ISO-8601. Years outside 0000-9999 carry an
// explicit sign, so the sentinels render as -999999999-01-01 and
// +999999999-12-31.
func (d Date) String() string {
	year, sign := d.Year, ""
	if year < 0 {
		year, sign = -year, "-"
	} else if year > 9999 {
		sign = "+"
	}
	return fmt.Sprintf("%s%04d-%02d-%02d", sign, year, d.Month, d.Day)
}

// ParseDate parses ISO-8601 dates, including the extended signed-year form.
func ParseDate(text string) (Date, error) {
	if text == "" {
		return Date{}, fmt.Errorf("date: %w", ErrEmptyInput)
	}
	rest, negative := text, false
	switch text[0] {
	case '+':
		rest = text[1:]
	case '-':
		rest = text[1:]
		negative = true
	}
	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return Date{}, &ParseError{Text: text, Reason: "expected YYYY-MM-DD"}
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) < 4 {
		return Date{}, &ParseError{Text: text, Reason: "invalid year"}
	}
	if negative {
		year = -year
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return Date{}, &ParseError{Text: text, Reason: "invalid month"}
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || len(parts[2]) != 2 {
		return Date{}, &ParseError{Text: text, Reason: "invalid day"}
	}
	d, err := NewDate(year, time.Month(month), day)
	if err != nil {
		return Date{}, &ParseError{Text: text, Reason: err.Error()}
	}
	return d, nil
}

// MustParseDate is ParseDate that panics on error.
func MustParseDate(text string) Date {
	d, err := ParseDate(text)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParseDate(text)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
