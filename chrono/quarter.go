package chrono

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// QUARTER - Calendar quarter enum with modular arithmetic
// =============================================================================

// Quarter is a quarter of the calendar year: Q1 covers January-March and so
// on. Arithmetic wraps across the four quarters.
type Quarter int

const (
	Q1 Quarter = 1 + iota
	Q2
	Q3
	Q4
)

// QuarterOfMonth returns the quarter containing the month.
func QuarterOfMonth(month time.Month) Quarter {
	return Quarter((int(month)-1)/3 + 1)
}

// QuarterOf returns the quarter containing the date.
func QuarterOf(date Date) Quarter {
	return QuarterOfMonth(date.Month)
}

func (q Quarter) IsValid() bool { return q >= Q1 && q <= Q4 }

// Plus returns the quarter n quarters later, wrapping across year ends.
// Plus(-1) on Q1 yields Q4.
func (q Quarter) Plus(n int) Quarter {
	return Quarter(floorMod(int64(q)-1+int64(n), 4) + 1)
}

// Minus returns the quarter n quarters earlier, wrapping.
func (q Quarter) Minus(n int) Quarter {
	return q.Plus(-n)
}

// FirstMonth returns the first month of the quarter.
func (q Quarter) FirstMonth() time.Month {
	return time.Month((int(q)-1)*3 + 1)
}

// LastMonth returns the last month of the quarter.
func (q Quarter) LastMonth() time.Month {
	return q.FirstMonth() + 2
}

func (q Quarter) String() string {
	if !q.IsValid() {
		return fmt.Sprintf("Quarter(%d)", int(q))
	}
	return fmt.Sprintf("Q%d", int(q))
}

// ParseQuarter parses "Q1".."Q4", case-insensitive.
func ParseQuarter(text string) (Quarter, error) {
	if text == "" {
		return 0, fmt.Errorf("quarter: %w", ErrEmptyInput)
	}
	upper := strings.ToUpper(text)
	if len(upper) != 2 || upper[0] != 'Q' || upper[1] < '1' || upper[1] > '4' {
		return 0, &ParseError{Text: text, Reason: "expected Q1..Q4"}
	}
	return Quarter(upper[1] - '0'), nil
}
