/*
range_test.go - Specification tests for the DateRange interval algebra

PURPOSE:
  These tests serve as EXECUTABLE SPECIFICATIONS of the range type. The
  first half pins concrete scenarios; the second half cross-checks the
  algebraic consistency laws over a fixture matrix of bounded, unbounded
  and empty ranges.

READING THESE TESTS:
  Each test has:
  - A descriptive name that states the behavior
  - GIVEN/WHEN/THEN comments explaining the scenario
  - Clear assertions with explanatory messages
*/
package chrono_test

import (
	"errors"
	"math"
	"testing"

	"github.com/warp/chrono-extra/chrono"
)

// =============================================================================
// TEST INFRASTRUCTURE
// =============================================================================

func d(text string) chrono.Date {
	return chrono.MustParseDate(text)
}

func r(text string) chrono.DateRange {
	return chrono.MustParseDateRange(text)
}

func mustRange(t *testing.T, start, end chrono.Date) chrono.DateRange {
	t.Helper()
	dr, err := chrono.NewDateRange(start, end)
	if err != nil {
		t.Fatalf("NewDateRange(%s, %s): %v", start, end, err)
	}
	return dr
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

func TestNewDateRange_RoundTripsBounds(t *testing.T) {
	// GIVEN: Valid bounds
	// THEN: The stored bounds are exactly the inputs
	dr := mustRange(t, d("2012-07-28"), d("2012-07-31"))

	if dr.Start() != d("2012-07-28") {
		t.Errorf("Start = %s, want 2012-07-28", dr.Start())
	}
	if dr.EndExclusive() != d("2012-07-31") {
		t.Errorf("EndExclusive = %s, want 2012-07-31", dr.EndExclusive())
	}
	if dr.EndInclusive() != d("2012-07-30") {
		t.Errorf("EndInclusive = %s, want 2012-07-30", dr.EndInclusive())
	}
	if dr.LengthInDays() != 3 {
		t.Errorf("LengthInDays = %d, want 3", dr.LengthInDays())
	}
	if dr.String() != "2012-07-28/2012-07-31" {
		t.Errorf("String = %q", dr.String())
	}
}

func TestNewDateRange_StartAfterEnd_Rejected(t *testing.T) {
	// GIVEN: start after endExclusive
	// THEN: Construction fails with ErrInvalidRange
	_, err := chrono.NewDateRange(d("2012-07-31"), d("2012-07-30"))

	if !errors.Is(err, chrono.ErrInvalidRange) {
		t.Fatalf("want ErrInvalidRange, got %v", err)
	}
	var ire *chrono.InvalidRangeError
	if !errors.As(err, &ire) {
		t.Fatalf("want *InvalidRangeError, got %T", err)
	}
}

func TestNewDateRange_SentinelAdjacency_Rejected(t *testing.T) {
	// The sentinels are reserved for "unbounded": a range may not start at
	// MaxDate or end at MinDate, and no empty range may anchor at either.
	if _, err := chrono.NewDateRange(chrono.MaxDate, chrono.MaxDate); !errors.Is(err, chrono.ErrInvalidRange) {
		t.Errorf("start at MaxDate: want ErrInvalidRange, got %v", err)
	}
	if _, err := chrono.NewDateRange(chrono.MinDate, chrono.MinDate); !errors.Is(err, chrono.ErrInvalidRange) {
		t.Errorf("end at MinDate: want ErrInvalidRange, got %v", err)
	}
	if _, err := chrono.EmptyDateRange(chrono.MinDate); !errors.Is(err, chrono.ErrInvalidRange) {
		t.Errorf("empty at MinDate: want ErrInvalidRange, got %v", err)
	}
	if _, err := chrono.EmptyDateRange(chrono.MaxDate); !errors.Is(err, chrono.ErrInvalidRange) {
		t.Errorf("empty at MaxDate: want ErrInvalidRange, got %v", err)
	}
}

func TestEmptyDateRange_HoldsNoDates(t *testing.T) {
	// GIVEN: An empty range anchored at 2012-07-30
	dr, err := chrono.EmptyDateRange(d("2012-07-30"))
	if err != nil {
		t.Fatal(err)
	}

	if !dr.IsEmpty() {
		t.Error("IsEmpty = false, want true")
	}
	if dr.LengthInDays() != 0 {
		t.Errorf("LengthInDays = %d, want 0", dr.LengthInDays())
	}
	if dr.Contains(d("2012-07-30")) {
		t.Error("empty range must not contain its anchor")
	}
	// The inclusive end of an empty range points to the day before the anchor.
	if dr.EndInclusive() != d("2012-07-29") {
		t.Errorf("EndInclusive = %s, want 2012-07-29", dr.EndInclusive())
	}
}

func TestNewDateRangeClosed(t *testing.T) {
	// GIVEN: An inclusive end
	// THEN: The exclusive end is one day later
	dr, err := chrono.NewDateRangeClosed(d("2012-07-28"), d("2012-07-30"))
	if err != nil {
		t.Fatal(err)
	}
	if dr != mustRange(t, d("2012-07-28"), d("2012-07-31")) {
		t.Errorf("got %s", dr)
	}

	// An inclusive end of MaxDate cannot be represented: there is no day
	// after it, and this constructor cannot express an unbounded end.
	if _, err := chrono.NewDateRangeClosed(d("2012-07-28"), chrono.MaxDate); !errors.Is(err, chrono.ErrInvalidRange) {
		t.Errorf("closed at MaxDate: want ErrInvalidRange, got %v", err)
	}
}

func TestNewDateRangePeriod(t *testing.T) {
	// GIVEN: A start date and a three-day period
	dr, err := chrono.NewDateRangePeriod(d("2012-07-28"), chrono.NewPeriod(3))
	if err != nil {
		t.Fatal(err)
	}
	if dr != mustRange(t, d("2012-07-28"), d("2012-07-31")) {
		t.Errorf("got %s", dr)
	}

	// Negative periods are rejected.
	if _, err := chrono.NewDateRangePeriod(d("2012-07-28"), chrono.NewPeriod(-1)); !errors.Is(err, chrono.ErrInvalidRange) {
		t.Errorf("negative period: want ErrInvalidRange, got %v", err)
	}

	// Arithmetic past MaxDate overflows.
	nearMax := chrono.MustDate(chrono.MaxYear, 12, 30)
	if _, err := chrono.NewDateRangePeriod(nearMax, chrono.NewPeriod(5)); !errors.Is(err, chrono.ErrOverflow) {
		t.Errorf("past MaxDate: want ErrOverflow, got %v", err)
	}
}

func TestUnboundedConstructors(t *testing.T) {
	all := chrono.UnboundedDateRange()
	if all != chrono.AllDates {
		t.Error("UnboundedDateRange must return AllDates")
	}
	if !all.IsUnboundedStart() || !all.IsUnboundedEnd() {
		t.Error("AllDates must be unbounded on both ends")
	}

	// GIVEN: An unbounded start up to 2012-07-31
	us, err := chrono.NewUnboundedStart(d("2012-07-31"))
	if err != nil {
		t.Fatal(err)
	}
	if !us.IsUnboundedStart() || us.IsUnboundedEnd() {
		t.Error("unbounded-start flags wrong")
	}
	// THEN: The length saturates instead of failing
	if us.LengthInDays() != math.MaxInt32 {
		t.Errorf("LengthInDays = %d, want MaxInt32", us.LengthInDays())
	}

	ue, err := chrono.NewUnboundedEnd(d("2012-07-28"))
	if err != nil {
		t.Fatal(err)
	}
	if ue.IsUnboundedStart() || !ue.IsUnboundedEnd() {
		t.Error("unbounded-end flags wrong")
	}
	if ue.EndInclusive() != chrono.MaxDate {
		t.Errorf("EndInclusive of unbounded end = %s, want MaxDate", ue.EndInclusive())
	}
}

// =============================================================================
// LENGTH: SATURATING VS STRICT
// =============================================================================

func TestLengthInDays_SaturatesBeyond32Bits(t *testing.T) {
	// GIVEN: A bounded range wider than 2^31-1 days (but not sentinel-bounded)
	wide := mustRange(t,
		chrono.MustDate(chrono.MinYear+1, 1, 1),
		chrono.MustDate(chrono.MaxYear-1, 1, 1))

	// THEN: LengthInDays saturates while ToPeriod fails - the lossy and the
	// strict accessor deliberately differ.
	if wide.LengthInDays() != math.MaxInt32 {
		t.Errorf("LengthInDays = %d, want MaxInt32", wide.LengthInDays())
	}
	if _, err := wide.ToPeriod(); !errors.Is(err, chrono.ErrOverflow) {
		t.Errorf("ToPeriod: want ErrOverflow, got %v", err)
	}
}

func TestToPeriod(t *testing.T) {
	p, err := r("2012-07-28/2012-07-31").ToPeriod()
	if err != nil {
		t.Fatal(err)
	}
	if p.Days != 3 {
		t.Errorf("Days = %d, want 3", p.Days)
	}

	// Unbounded ends have no finite period.
	ue, _ := chrono.NewUnboundedEnd(d("2012-07-28"))
	if _, err := ue.ToPeriod(); !errors.Is(err, chrono.ErrOverflow) {
		t.Errorf("unbounded: want ErrOverflow, got %v", err)
	}
}

// =============================================================================
// DERIVED COPIES
// =============================================================================

func TestWithStartAndEnd(t *testing.T) {
	base := r("2012-07-28/2012-07-31")

	moved, err := base.WithStart(d("2012-07-29"))
	if err != nil {
		t.Fatal(err)
	}
	if moved != r("2012-07-29/2012-07-31") {
		t.Errorf("WithStart = %s", moved)
	}

	// Re-validation applies: the new start may not pass the end.
	if _, err := base.WithStart(d("2012-08-01")); !errors.Is(err, chrono.ErrInvalidRange) {
		t.Errorf("want ErrInvalidRange, got %v", err)
	}

	shrunk, err := base.WithEndFunc(func(end chrono.Date) chrono.Date {
		prev, _ := end.PlusDays(-1)
		return prev
	})
	if err != nil {
		t.Fatal(err)
	}
	if shrunk != r("2012-07-28/2012-07-30") {
		t.Errorf("WithEndFunc = %s", shrunk)
	}

	// Nil adjusters are rejected outright.
	if _, err := base.WithStartFunc(nil); !errors.Is(err, chrono.ErrNilAdjuster) {
		t.Errorf("want ErrNilAdjuster, got %v", err)
	}
}

// =============================================================================
// INTERVAL ALGEBRA: CONCRETE SCENARIOS
// =============================================================================

func TestContains(t *testing.T) {
	dr := r("2012-07-28/2012-07-31")

	cases := []struct {
		date string
		want bool
	}{
		{"2012-07-27", false},
		{"2012-07-28", true}, // inclusive start
		{"2012-07-30", true},
		{"2012-07-31", false}, // exclusive end
	}
	for _, tc := range cases {
		if got := dr.Contains(d(tc.date)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestEncloses_EmptyBoundaryAsymmetry(t *testing.T) {
	// The boundary rule for empty sub-ranges is asymmetric and is a fixed
	// contract: an empty range at the start IS enclosed, an empty range at
	// the exclusive end is NOT - it sits just past the last date.
	a := r("2012-07-28/2012-07-31")
	emptyAtStart, _ := chrono.EmptyDateRange(d("2012-07-28"))
	emptyInside, _ := chrono.EmptyDateRange(d("2012-07-29"))
	emptyAtEnd, _ := chrono.EmptyDateRange(d("2012-07-31"))

	if !a.Encloses(emptyAtStart) {
		t.Error("empty range at start must be enclosed")
	}
	if !a.Encloses(emptyInside) {
		t.Error("empty range inside must be enclosed")
	}
	if a.Encloses(emptyAtEnd) {
		t.Error("empty range at exclusive end must NOT be enclosed")
	}

	// An empty range encloses only the equal empty range.
	if !emptyInside.Encloses(emptyInside) {
		t.Error("empty range must enclose itself")
	}
	if emptyInside.Encloses(emptyAtStart) {
		t.Error("empty range must not enclose a differently-anchored empty range")
	}
	if emptyInside.Encloses(a) {
		t.Error("empty range must not enclose a non-empty range")
	}
}

func TestAbuts(t *testing.T) {
	a := r("2012-07-01/2012-07-15")

	if !a.Abuts(r("2012-07-15/2012-07-20")) {
		t.Error("ranges sharing one boundary must abut")
	}
	if !a.Abuts(r("2012-06-20/2012-07-01")) {
		t.Error("abutting is symmetric across either boundary")
	}
	if a.Abuts(r("2012-07-10/2012-07-20")) {
		t.Error("overlapping ranges do not abut")
	}
	if a.Abuts(r("2012-07-16/2012-07-20")) {
		t.Error("gapped ranges do not abut")
	}

	// Two empty ranges at the same anchor coincide rather than abut.
	e1, _ := chrono.EmptyDateRange(d("2012-07-15"))
	e2, _ := chrono.EmptyDateRange(d("2012-07-15"))
	if e1.Abuts(e2) {
		t.Error("coincident empty ranges must not abut")
	}
	// An empty range at a non-empty range's boundary abuts it.
	if !a.Abuts(e1) {
		t.Error("empty range at the exclusive end must abut")
	}
}

func TestIntersection(t *testing.T) {
	// GIVEN: Two overlapping ranges
	a := r("2012-07-28/2012-07-31")
	b := r("2012-07-29/2012-08-01")

	// WHEN: Intersecting
	got, err := a.Intersection(b)
	if err != nil {
		t.Fatal(err)
	}

	// THEN: The overlap is the later start to the earlier end
	if got != r("2012-07-29/2012-07-31") {
		t.Errorf("Intersection = %s, want 2012-07-29/2012-07-31", got)
	}
}

func TestIntersection_Disconnected_Fails(t *testing.T) {
	// GIVEN: Ranges with a one-day gap (2012-07-28 belongs to neither)
	a := r("2012-07-01/2012-07-28")
	b := r("2012-07-29/2012-07-30")

	_, err := a.Intersection(b)
	if !errors.Is(err, chrono.ErrNotConnected) {
		t.Fatalf("want ErrNotConnected, got %v", err)
	}
	var nce *chrono.NotConnectedError
	if !errors.As(err, &nce) {
		t.Fatalf("want *NotConnectedError, got %T", err)
	}
	if _, err := a.Union(b); !errors.Is(err, chrono.ErrNotConnected) {
		t.Errorf("union of gapped ranges: want ErrNotConnected, got %v", err)
	}
}

func TestUnion_Abutting_Succeeds(t *testing.T) {
	// GIVEN: Abutting ranges (shared boundary, no shared date)
	a := r("2012-07-01/2012-07-29")
	b := r("2012-07-29/2012-07-30")

	got, err := a.Union(b)
	if err != nil {
		t.Fatal(err)
	}
	if got != r("2012-07-01/2012-07-30") {
		t.Errorf("Union = %s, want 2012-07-01/2012-07-30", got)
	}

	// Intersecting the same abutting pair yields the shared boundary as an
	// empty range - connected, but holding no dates.
	inter, err := a.Intersection(b)
	if err != nil {
		t.Fatal(err)
	}
	if !inter.IsEmpty() || inter.Start() != d("2012-07-29") {
		t.Errorf("Intersection = %s, want empty at 2012-07-29", inter)
	}
}

func TestSpan_IgnoresGaps(t *testing.T) {
	// GIVEN: Disconnected ranges
	a := r("2012-07-01/2012-07-10")
	b := r("2012-07-20/2012-07-30")

	// THEN: Span bridges the gap unconditionally
	got := a.Span(b)
	if got != r("2012-07-01/2012-07-30") {
		t.Errorf("Span = %s, want 2012-07-01/2012-07-30", got)
	}
	if !got.Encloses(a) || !got.Encloses(b) {
		t.Error("span must enclose both inputs")
	}
}

func TestIsBeforeAndIsAfter(t *testing.T) {
	a := r("2012-07-01/2012-07-10")
	b := r("2012-07-10/2012-07-20")

	if !a.IsBefore(b) {
		t.Error("a must be before an abutting later range")
	}
	if !b.IsAfter(a) {
		t.Error("b must be after an abutting earlier range")
	}
	if a.IsBefore(a) || a.IsAfter(a) {
		t.Error("a range is never before or after itself")
	}

	// Date comparisons: the range is before a date only when every date in
	// it is earlier.
	if !a.IsBeforeDate(d("2012-07-10")) {
		t.Error("range must be before its exclusive end")
	}
	if a.IsBeforeDate(d("2012-07-09")) {
		t.Error("range containing the date is not before it")
	}
	if !b.IsAfterDate(d("2012-07-09")) {
		t.Error("range must be after a date preceding its start")
	}
	if b.IsAfterDate(d("2012-07-10")) {
		t.Error("range containing the date is not after it")
	}

	// An empty range has a position: its anchor.
	empty, _ := chrono.EmptyDateRange(d("2012-07-10"))
	if empty.IsBeforeDate(d("2012-07-10")) {
		t.Error("empty range is not before its own anchor")
	}
	if !empty.IsBeforeDate(d("2012-07-11")) {
		t.Error("empty range is before any later date")
	}
	if empty.IsAfterDate(d("2012-07-10")) {
		t.Error("empty range is not after its own anchor")
	}
	if !empty.IsAfterDate(d("2012-07-09")) {
		t.Error("empty range is after any earlier date")
	}
}

// =============================================================================
// ALGEBRAIC CONSISTENCY LAWS
// =============================================================================
// Cross-checks over a fixture matrix: every pair of ranges must satisfy the
// relations tying isConnected, overlaps and abuts together, and span must
// enclose its inputs.

func fixtureRanges(t *testing.T) []chrono.DateRange {
	t.Helper()
	empty10, err := chrono.EmptyDateRange(d("2012-07-10"))
	if err != nil {
		t.Fatal(err)
	}
	empty20, err := chrono.EmptyDateRange(d("2012-07-20"))
	if err != nil {
		t.Fatal(err)
	}
	unboundedStart, err := chrono.NewUnboundedStart(d("2012-07-15"))
	if err != nil {
		t.Fatal(err)
	}
	unboundedEnd, err := chrono.NewUnboundedEnd(d("2012-07-15"))
	if err != nil {
		t.Fatal(err)
	}
	return []chrono.DateRange{
		r("2012-07-01/2012-07-10"),
		r("2012-07-01/2012-07-15"),
		r("2012-07-10/2012-07-20"),
		r("2012-07-15/2012-07-20"),
		r("2012-07-16/2012-07-31"),
		r("2012-07-20/2012-07-21"),
		empty10,
		empty20,
		unboundedStart,
		unboundedEnd,
		chrono.AllDates,
	}
}

func TestLaw_ConnectivityConsistency(t *testing.T) {
	ranges := fixtureRanges(t)
	for _, a := range ranges {
		for _, b := range ranges {
			connected := a.IsConnected(b)
			overlaps := a.Overlaps(b)
			abuts := a.Abuts(b)

			if connected != (overlaps || abuts) {
				t.Errorf("%s vs %s: isConnected=%v but overlaps=%v abuts=%v",
					a, b, connected, overlaps, abuts)
			}
			if overlaps != (connected && !abuts) {
				t.Errorf("%s vs %s: overlaps=%v but connected=%v abuts=%v",
					a, b, overlaps, connected, abuts)
			}
			// Symmetry of the three relations.
			if connected != b.IsConnected(a) || overlaps != b.Overlaps(a) || abuts != b.Abuts(a) {
				t.Errorf("%s vs %s: relation not symmetric", a, b)
			}
		}
	}
}

func TestLaw_SpanEnclosesInputs(t *testing.T) {
	// One documented exception: an empty input anchored exactly at the
	// span's exclusive end is, by the fixed Encloses boundary contract,
	// just past the span's last date and therefore not enclosed.
	ranges := fixtureRanges(t)
	for _, a := range ranges {
		for _, b := range ranges {
			span := a.Span(b)
			for _, in := range []chrono.DateRange{a, b} {
				if in.IsEmpty() && in.Start() == span.EndExclusive() && !span.IsEmpty() {
					continue
				}
				if !span.Encloses(in) {
					t.Errorf("span(%s, %s) = %s does not enclose %s", a, b, span, in)
				}
			}
			if span != b.Span(a) {
				t.Errorf("span(%s, %s) not symmetric", a, b)
			}
		}
	}
}

func TestLaw_IntersectionUnionSymmetryAndIdempotence(t *testing.T) {
	ranges := fixtureRanges(t)
	for _, a := range ranges {
		for _, b := range ranges {
			if !a.IsConnected(b) {
				continue
			}
			ab, err1 := a.Intersection(b)
			ba, err2 := b.Intersection(a)
			if err1 != nil || err2 != nil {
				t.Fatalf("connected ranges must intersect: %v %v", err1, err2)
			}
			if ab != ba {
				t.Errorf("intersection(%s, %s) not symmetric: %s vs %s", a, b, ab, ba)
			}
			uab, err1 := a.Union(b)
			uba, err2 := b.Union(a)
			if err1 != nil || err2 != nil {
				t.Fatalf("connected ranges must union: %v %v", err1, err2)
			}
			if uab != uba {
				t.Errorf("union(%s, %s) not symmetric: %s vs %s", a, b, uab, uba)
			}
		}

		self, err := a.Intersection(a)
		if err != nil || self != a {
			t.Errorf("intersection(%s, self) = %s, %v; want identity", a, self, err)
		}
		selfU, err := a.Union(a)
		if err != nil || selfU != a {
			t.Errorf("union(%s, self) = %s, %v; want identity", a, selfU, err)
		}
		if a.Span(a) != a {
			t.Errorf("span(%s, self) not identity", a)
		}
	}
}

// =============================================================================
// ITERATION
// =============================================================================

func TestDates_LazyIteration(t *testing.T) {
	// GIVEN: A three-day range
	dr := r("2012-07-28/2012-07-31")

	var got []chrono.Date
	for date := range dr.Dates() {
		got = append(got, date)
	}
	want := []chrono.Date{d("2012-07-28"), d("2012-07-29"), d("2012-07-30")}
	if len(got) != len(want) {
		t.Fatalf("yielded %d dates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("date[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	// The sequence is restartable: a second pass yields the same dates.
	count := 0
	for range dr.Dates() {
		count++
	}
	if count != 3 {
		t.Errorf("second pass yielded %d dates, want 3", count)
	}

	// An empty range yields nothing.
	empty, _ := chrono.EmptyDateRange(d("2012-07-28"))
	for range empty.Dates() {
		t.Fatal("empty range must yield no dates")
	}
}

func TestDates_UnboundedEndConsumedLazily(t *testing.T) {
	// GIVEN: A range with an unbounded end
	dr, _ := chrono.NewUnboundedEnd(d("2012-07-28"))

	// WHEN: Taking only the first five dates
	// THEN: Iteration stops immediately without materializing the rest
	var got []chrono.Date
	for date := range dr.Dates() {
		got = append(got, date)
		if len(got) == 5 {
			break
		}
	}
	if len(got) != 5 || got[4] != d("2012-08-01") {
		t.Errorf("got %v", got)
	}
}

// =============================================================================
// TEXT
// =============================================================================

func TestParseDateRange(t *testing.T) {
	cases := []struct {
		text string
		want chrono.DateRange
	}{
		{"2012-07-28/2012-07-31", r("2012-07-28/2012-07-31")},
		// A period side resolves against the date side.
		{"2012-07-28/P3D", r("2012-07-28/2012-07-31")},
		{"2012-07-28/p3d", r("2012-07-28/2012-07-31")},
		{"P3D/2012-07-31", r("2012-07-28/2012-07-31")},
		// Sentinel bounds parse back from their extreme text forms.
		{"-999999999-01-01/2012-07-31", mustUnboundedStart(d("2012-07-31"))},
		{"2012-07-28/+999999999-12-31", mustUnboundedEnd(d("2012-07-28"))},
	}
	for _, tc := range cases {
		got, err := chrono.ParseDateRange(tc.text)
		if err != nil {
			t.Errorf("ParseDateRange(%q): %v", tc.text, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDateRange(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func mustUnboundedStart(end chrono.Date) chrono.DateRange {
	dr, err := chrono.NewUnboundedStart(end)
	if err != nil {
		panic(err)
	}
	return dr
}

func mustUnboundedEnd(start chrono.Date) chrono.DateRange {
	dr, err := chrono.NewUnboundedEnd(start)
	if err != nil {
		panic(err)
	}
	return dr
}

func TestParseDateRange_Errors(t *testing.T) {
	cases := []struct {
		text string
		want error
	}{
		{"", chrono.ErrEmptyInput},
		{"2012-07-28", chrono.ErrParse},
		{"P3D/P4D", chrono.ErrParse},
		{"2012-07-28/garbage", chrono.ErrParse},
		{"2012-07-31/2012-07-30", chrono.ErrInvalidRange},
	}
	for _, tc := range cases {
		_, err := chrono.ParseDateRange(tc.text)
		if !errors.Is(err, tc.want) {
			t.Errorf("ParseDateRange(%q): got %v, want %v", tc.text, err, tc.want)
		}
	}
}

func TestString_ParseRoundTrip(t *testing.T) {
	// Parse is the inverse of String for every range, sentinels included.
	for _, dr := range fixtureRanges(t) {
		back, err := chrono.ParseDateRange(dr.String())
		if err != nil {
			t.Errorf("ParseDateRange(%q): %v", dr.String(), err)
			continue
		}
		if back != dr {
			t.Errorf("round trip %s -> %s", dr, back)
		}
	}
}

func TestDateRange_JSONRoundTrip(t *testing.T) {
	dr := r("2012-07-28/2012-07-31")
	data, err := dr.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2012-07-28/2012-07-31"` {
		t.Errorf("MarshalJSON = %s", data)
	}

	var back chrono.DateRange
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if back != dr {
		t.Errorf("round trip %s -> %s", dr, back)
	}
}
