package chrono

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// WEEKDAY TIME - Day-of-week + time-of-day composite
// =============================================================================

// minutesPerWeek is the modulus for wrapping weekday-time arithmetic.
const minutesPerWeek = 7 * 24 * 60

// WeekdayTime is a recurring weekly instant: a day of the week combined
// with a minute-resolution time of day, e.g. "every Monday 09:30".
// Arithmetic wraps around the week.
type WeekdayTime struct {
	Day    time.Weekday
	Hour   int
	Minute int
}

// NewWeekdayTime validates the components and returns the composite.
func NewWeekdayTime(day time.Weekday, hour, minute int) (WeekdayTime, error) {
	if day < time.Sunday || day > time.Saturday {
		return WeekdayTime{}, fmt.Errorf("weekday %d out of range: %w", int(day), ErrInvalidDate)
	}
	if hour < 0 || hour > 23 {
		return WeekdayTime{}, fmt.Errorf("hour %d out of range: %w", hour, ErrInvalidDate)
	}
	if minute < 0 || minute > 59 {
		return WeekdayTime{}, fmt.Errorf("minute %d out of range: %w", minute, ErrInvalidDate)
	}
	return WeekdayTime{Day: day, Hour: hour, Minute: minute}, nil
}

// MinuteOfWeek returns the offset in minutes from Sunday 00:00.
func (wt WeekdayTime) MinuteOfWeek() int {
	return int(wt.Day)*24*60 + wt.Hour*60 + wt.Minute
}

// PlusMinutes returns the weekday-time n minutes later, wrapping across the
// week in either direction.
func (wt WeekdayTime) PlusMinutes(n int) WeekdayTime {
	minute := int(floorMod(int64(wt.MinuteOfWeek())+int64(n), minutesPerWeek))
	return WeekdayTime{
		Day:    time.Weekday(minute / (24 * 60)),
		Hour:   minute % (24 * 60) / 60,
		Minute: minute % 60,
	}
}

// MinusMinutes returns the weekday-time n minutes earlier, wrapping.
func (wt WeekdayTime) MinusMinutes(n int) WeekdayTime {
	return wt.PlusMinutes(-n)
}

// Compare orders by position within the Sunday-started week.
func (wt WeekdayTime) Compare(other WeekdayTime) int {
	return cmpInt(wt.MinuteOfWeek(), other.MinuteOfWeek())
}

// String formats as "Mon 09:30".
func (wt WeekdayTime) String() string {
	return fmt.Sprintf("%s %02d:%02d", wt.Day.String()[:3], wt.Hour, wt.Minute)
}

// ParseWeekdayTime parses "Mon 09:30"; the weekday may be the full or
// three-letter English name, case-insensitive.
func ParseWeekdayTime(text string) (WeekdayTime, error) {
	if text == "" {
		return WeekdayTime{}, fmt.Errorf("weekday-time: %w", ErrEmptyInput)
	}
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return WeekdayTime{}, &ParseError{Text: text, Reason: "expected weekday and HH:MM"}
	}
	day, ok := parseWeekday(fields[0])
	if !ok {
		return WeekdayTime{}, &ParseError{Text: text, Reason: "invalid weekday"}
	}
	hh, mm, found := strings.Cut(fields[1], ":")
	hour, err1 := strconv.Atoi(hh)
	minute, err2 := strconv.Atoi(mm)
	if !found || err1 != nil || err2 != nil {
		return WeekdayTime{}, &ParseError{Text: text, Reason: "invalid time"}
	}
	wt, err := NewWeekdayTime(day, hour, minute)
	if err != nil {
		return WeekdayTime{}, &ParseError{Text: text, Reason: err.Error()}
	}
	return wt, nil
}

func parseWeekday(name string) (time.Weekday, bool) {
	lower := strings.ToLower(name)
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if lower == full || lower == full[:3] {
			return d, true
		}
	}
	return 0, false
}
