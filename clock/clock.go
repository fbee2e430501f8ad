/*
Package clock provides an injectable time source: the system clock for
production and a settable Mutable clock for tests.

PURPOSE:
  Code that asks "what day is it" should take a Clock, not call time.Now,
  so tests can pin or advance time deterministically. Mutable serializes
  every state change behind one mutex: concurrent Advance calls each apply
  atomically with no lost updates.

USAGE:
  c := clock.NewMutable(time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC), time.UTC)
  c.Advance(48 * time.Hour)
  today := chrono.DateOf(c.Now())
*/
package clock

import (
	"sync"
	"time"
)

// Clock is the read surface shared by the system and mutable clocks.
type Clock interface {
	Now() time.Time
}

// =============================================================================
// SYSTEM CLOCK
// =============================================================================

// System is the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// =============================================================================
// MUTABLE CLOCK - Settable instant for tests
// =============================================================================

// Mutable is a settable clock wrapping an instant and a location. All reads
// and mutations go through a single mutex, so interleaved Set/Advance calls
// from concurrent goroutines compose without lost updates.
type Mutable struct {
	mu      sync.Mutex
	instant time.Time
	loc     *time.Location
}

// NewMutable creates a mutable clock fixed at the given instant. A nil
// location defaults to UTC.
func NewMutable(instant time.Time, loc *time.Location) *Mutable {
	if loc == nil {
		loc = time.UTC
	}
	return &Mutable{instant: instant, loc: loc}
}

// NewMutableEpoch creates a mutable clock at the Unix epoch in UTC.
func NewMutableEpoch() *Mutable {
	return NewMutable(time.Unix(0, 0), time.UTC)
}

// Now returns the clock's current instant in its location.
func (m *Mutable) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.instant.In(m.loc)
}

// Set replaces the instant.
func (m *Mutable) Set(instant time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.instant = instant
}

// Advance moves the instant forward by d (backward for negative d). Each
// call is an atomic read-modify-write.
func (m *Mutable) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.instant = m.instant.Add(d)
}

// AdvanceDays moves the instant by whole days.
func (m *Mutable) AdvanceDays(days int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.instant = m.instant.AddDate(0, 0, days)
}

// SetLocation replaces the location used to render Now.
func (m *Mutable) SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loc = loc
}
