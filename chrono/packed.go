/*
packed.go - Decimal-packed integer codecs for dates and times

PURPOSE:
  Bidirectional mapping between calendar values and single human-readable
  integers: 2026-08-25 packs to 20260825. The packed forms sort in calendar
  order and survive systems that only carry integers (CSV columns, legacy
  wire formats, spreadsheet keys).

LIMITS:
  The decimal layout reserves four year digits, so only years 0-9999 pack.
  The range sentinels are deliberately unrepresentable here.
*/
package chrono

import (
	"fmt"
	"time"
)

// =============================================================================
// PACKED DATE - YYYYMMDD
// =============================================================================

// PackedDate is a date packed as the decimal integer YYYYMMDD.
type PackedDate int32

// PackDate packs a date; years outside 0-9999 do not fit the four-digit
// field and fail with ErrOverflow.
func PackDate(d Date) (PackedDate, error) {
	if d.Year < 0 || d.Year > 9999 {
		return 0, fmt.Errorf("year %d does not fit YYYYMMDD: %w", d.Year, ErrOverflow)
	}
	return PackedDate(int32(d.Year)*10000 + int32(d.Month)*100 + int32(d.Day)), nil
}

// Unpack decodes and validates the packed date.
func (p PackedDate) Unpack() (Date, error) {
	d, err := NewDate(int(p/10000), time.Month(p/100%100), int(p%100))
	if err != nil {
		return Date{}, fmt.Errorf("packed date %d: %w", int32(p), err)
	}
	return d, nil
}

// =============================================================================
// PACKED TIME - HHMMSS
// =============================================================================

// PackedTime is a time of day packed as the decimal integer HHMMSS.
type PackedTime int32

// PackTime packs an hour/minute/second time of day.
func PackTime(hour, minute, second int) (PackedTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, fmt.Errorf("time %02d:%02d:%02d out of range: %w", hour, minute, second, ErrInvalidDate)
	}
	return PackedTime(int32(hour)*10000 + int32(minute)*100 + int32(second)), nil
}

// Unpack decodes and validates the packed time.
func (p PackedTime) Unpack() (hour, minute, second int, err error) {
	hour, minute, second = int(p/10000), int(p/100%100), int(p%100)
	if p < 0 || hour > 23 || minute > 59 || second > 59 {
		return 0, 0, 0, fmt.Errorf("packed time %d out of range: %w", int32(p), ErrInvalidDate)
	}
	return hour, minute, second, nil
}

// =============================================================================
// PACKED DATE-TIME - YYYYMMDDHHMMSS
// =============================================================================

// PackedDateTime is a date and time of day packed as the decimal integer
// YYYYMMDDHHMMSS.
type PackedDateTime int64

// PackDateTime combines PackDate and PackTime into one integer.
func PackDateTime(d Date, hour, minute, second int) (PackedDateTime, error) {
	pd, err := PackDate(d)
	if err != nil {
		return 0, err
	}
	pt, err := PackTime(hour, minute, second)
	if err != nil {
		return 0, err
	}
	return PackedDateTime(int64(pd)*1000000 + int64(pt)), nil
}

// Unpack splits the packed value back into its date and time-of-day parts.
func (p PackedDateTime) Unpack() (Date, int, int, int, error) {
	d, err := PackedDate(p / 1000000).Unpack()
	if err != nil {
		return Date{}, 0, 0, 0, err
	}
	hour, minute, second, err := PackedTime(p % 1000000).Unpack()
	if err != nil {
		return Date{}, 0, 0, 0, err
	}
	return d, hour, minute, second, nil
}
