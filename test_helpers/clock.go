// Helpers for testing adjustments with deterministic clocks.
//
// Package introduces fake Clock implementations so tests can pin "now" to a
// known instant instead of monkey-patching global time.
package test_helpers

import (
	"testing"
	"time"

	"github.com/timetravel/go-timetravel"
)

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.T
}

// CountingClock reports a fixed instant and counts the reads. Use it to
// verify that an operation consults the ambient clock the expected number of
// times.
type CountingClock struct {
	T     time.Time
	Calls int
}

// Now returns the fixed instant and increments the read counter.
func (c *CountingClock) Now() time.Time {
	c.Calls++
	return c.T
}

// AssertDateTime fails the test if the date-time does not have exactly the
// given fields.
func AssertDateTime(t testing.TB, dt timetravel.DateTime,
	year int, month time.Month, day, hour, min, sec int) {
	t.Helper()

	want := timetravel.DateTime{
		Date: timetravel.Date{Year: year, Month: month, Day: day},
		Time: timetravel.TimeOfDay{Hour: hour, Minute: min, Second: sec},
	}
	if dt != want {
		t.Fatalf("Unexpected %+v, expected %+v", dt, want)
	}
}
