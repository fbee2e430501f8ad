package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// YEAR QUARTER - Year + quarter composite
// =============================================================================

// YearQuarter is a specific quarter of a specific year, e.g. 2026-Q3.
// Quarter arithmetic carries into the year component with overflow checks
// against the representable calendar.
type YearQuarter struct {
	Year    int
	Quarter Quarter
}

// NewYearQuarter validates the components and returns the composite.
func NewYearQuarter(year int, quarter Quarter) (YearQuarter, error) {
	if year < MinYear || year > MaxYear {
		return YearQuarter{}, fmt.Errorf("year %d out of range: %w", year, ErrInvalidDate)
	}
	if !quarter.IsValid() {
		return YearQuarter{}, fmt.Errorf("quarter %d out of range: %w", int(quarter), ErrInvalidDate)
	}
	return YearQuarter{Year: year, Quarter: quarter}, nil
}

// YearQuarterOf returns the year-quarter containing the date.
func YearQuarterOf(date Date) YearQuarter {
	return YearQuarter{Year: date.Year, Quarter: QuarterOf(date)}
}

// PlusQuarters returns the year-quarter n quarters later, failing with
// ErrOverflow when the year leaves the representable calendar.
func (yq YearQuarter) PlusQuarters(n int) (YearQuarter, error) {
	total := int64(yq.Year)*4 + int64(yq.Quarter-1) + int64(n)
	year := total / 4
	quarter := total % 4
	if quarter < 0 {
		year--
		quarter += 4
	}
	if year < MinYear || year > MaxYear {
		return YearQuarter{}, fmt.Errorf("year %d out of range: %w", year, ErrOverflow)
	}
	return YearQuarter{Year: int(year), Quarter: Quarter(quarter + 1)}, nil
}

// MinusQuarters returns the year-quarter n quarters earlier.
func (yq YearQuarter) MinusQuarters(n int) (YearQuarter, error) {
	return yq.PlusQuarters(-n)
}

func (yq YearQuarter) Compare(other YearQuarter) int {
	if yq.Year != other.Year {
		return cmpInt(yq.Year, other.Year)
	}
	return cmpInt(int(yq.Quarter), int(other.Quarter))
}

func (yq YearQuarter) Before(other YearQuarter) bool { return yq.Compare(other) < 0 }
func (yq YearQuarter) After(other YearQuarter) bool  { return yq.Compare(other) > 0 }

// StartDate returns the first date of the quarter.
func (yq YearQuarter) StartDate() Date {
	return Date{Year: yq.Year, Month: yq.Quarter.FirstMonth(), Day: 1}
}

// EndDate returns the last date of the quarter.
func (yq YearQuarter) EndDate() Date {
	month := yq.Quarter.LastMonth()
	return Date{Year: yq.Year, Month: month, Day: DaysInMonth(yq.Year, month)}
}

// ContainsDate reports whether the date falls inside the quarter.
func (yq YearQuarter) ContainsDate(date Date) bool {
	return date.Year == yq.Year && QuarterOf(date) == yq.Quarter
}

// String formats as "YYYY-Qn" with the same extended-year convention as
// Date, e.g. "2026-Q3" or "-0044-Q1".
func (yq YearQuarter) String() string {
	year, sign := yq.Year, ""
	if year < 0 {
		year, sign = -year, "-"
	} else if year > 9999 {
		sign = "+"
	}
	return fmt.Sprintf("%s%04d-%s", sign, year, yq.Quarter)
}

// ParseYearQuarter parses "YYYY-Qn", case-insensitive on the designator.
func ParseYearQuarter(text string) (YearQuarter, error) {
	if text == "" {
		return YearQuarter{}, fmt.Errorf("year-quarter: %w", ErrEmptyInput)
	}
	rest, negative := text, false
	switch text[0] {
	case '+':
		rest = text[1:]
	case '-':
		rest = text[1:]
		negative = true
	}
	idx := strings.LastIndex(rest, "-")
	if idx <= 0 {
		return YearQuarter{}, &ParseError{Text: text, Reason: "expected YYYY-Qn"}
	}
	year, err := strconv.Atoi(rest[:idx])
	if err != nil || idx < 4 {
		return YearQuarter{}, &ParseError{Text: text, Reason: "invalid year"}
	}
	if negative {
		year = -year
	}
	quarter, err := ParseQuarter(rest[idx+1:])
	if err != nil {
		return YearQuarter{}, &ParseError{Text: text, Reason: "invalid quarter"}
	}
	yq, err := NewYearQuarter(year, quarter)
	if err != nil {
		return YearQuarter{}, &ParseError{Text: text, Reason: err.Error()}
	}
	return yq, nil
}
