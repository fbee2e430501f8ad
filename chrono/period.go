package chrono

import (
	"fmt"
	"strconv"
)

// =============================================================================
// PERIOD - Calendar-agnostic elapsed-days amount
// =============================================================================

// Period is an exact number of elapsed calendar days. It carries no anchor
// date: P3D starting Monday and P3D starting Friday are the same amount.
type Period struct {
	Days int
}

// ZeroPeriod is the empty amount.
var ZeroPeriod = Period{}

func NewPeriod(days int) Period { return Period{Days: days} }

func (p Period) IsZero() bool     { return p.Days == 0 }
func (p Period) IsNegative() bool { return p.Days < 0 }

func (p Period) Plus(other Period) Period { return Period{Days: p.Days + other.Days} }
func (p Period) Negated() Period          { return Period{Days: -p.Days} }

// String formats the amount as an ISO-8601 day period, e.g. "P3D".
func (p Period) String() string {
	return fmt.Sprintf("P%dD", p.Days)
}

// ParsePeriod parses ISO-8601 day periods such as "P3D", "p3d", "-P2D" and
// "P-2D". Only the day designator is supported.
func ParsePeriod(text string) (Period, error) {
	if text == "" {
		return Period{}, fmt.Errorf("period: %w", ErrEmptyInput)
	}
	rest, sign := text, 1
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		rest = rest[1:]
		sign = -1
	}
	if len(rest) < 3 || (rest[0] != 'P' && rest[0] != 'p') {
		return Period{}, &ParseError{Text: text, Reason: "expected PnD"}
	}
	last := rest[len(rest)-1]
	if last != 'D' && last != 'd' {
		return Period{}, &ParseError{Text: text, Reason: "expected day designator"}
	}
	days, err := strconv.Atoi(rest[1 : len(rest)-1])
	if err != nil {
		return Period{}, &ParseError{Text: text, Reason: "invalid day count"}
	}
	return Period{Days: sign * days}, nil
}

// isPeriodText reports whether a range-literal side denotes a period rather
// than a date: an optional sign followed by the period designator.
func isPeriodText(text string) bool {
	rest := text
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		rest = rest[1:]
	}
	return rest != "" && (rest[0] == 'P' || rest[0] == 'p')
}
