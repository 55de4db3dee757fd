package timetravel

import "time"

// Clock supplies the ambient current date-time. An Adjuster created without
// an explicit reference asks its Clock exactly once per adjustment. Inject a
// fake implementation to make tests deterministic, see the test_helpers
// package.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
