// Package timetravel computes target dates and date-times by applying a
// duration, expressed as seconds or months, to a reference point, so that
// calling code can say "10 minutes ago" or "2 months from that date".
//
// Durations are built with the unit helpers (Seconds, Minutes, Hours, Days,
// Weeks, Months, Years) and applied with an Adjuster, or with the package
// level shortcuts below which use the system clock and the local zone:
//
//	last, err := timetravel.Ago(timetravel.Minutes(10))
//	due, err := timetravel.From(timetravel.Months(2), invoiced)
//
// Seconds-kind durations follow linear time arithmetic and roll over minute,
// hour, day, month and year boundaries. Months-kind durations follow
// calendar arithmetic: the time-of-day is kept and the day-of-month is
// clamped to the target month, so February clamps the 29th, 30th and 31st
// and a 30-day month clamps the 31st. The clamp is deliberately lossy:
// shifting 2012-02-29 a year back gives 2011-02-28, and shifting back again
// a year forward does not return to the 29th.
package timetravel

import "time"

var std = NewAdjuster(RealClock{}, time.Local)

// Ago returns the date-time the duration before the current local date-time.
func Ago(d Duration) (DateTime, error) {
	return std.Ago(d)
}

// FromNow returns the date-time the duration after the current local
// date-time.
func FromNow(d Duration) (DateTime, error) {
	return std.FromNow(d)
}

// Before returns the date-time the duration before the reference.
func Before(d Duration, ref DateTime) (DateTime, error) {
	return std.Before(d, ref)
}

// From returns the date-time the duration after the reference.
func From(d Duration, ref DateTime) (DateTime, error) {
	return std.From(d, ref)
}

// BeforeDate is Before with a date-only reference; the current local
// time-of-day is attached.
func BeforeDate(d Duration, date Date) (DateTime, error) {
	return std.BeforeDate(d, date)
}

// FromDate is From with a date-only reference; the current local time-of-day
// is attached.
func FromDate(d Duration, date Date) (DateTime, error) {
	return std.FromDate(d, date)
}

// Now returns the current local date-time.
func Now() DateTime {
	return std.Now()
}

// Today returns the current local date.
func Today() Date {
	return std.Today()
}

// Yesterday is Ago(Days(1)).
func Yesterday() (DateTime, error) {
	return std.Yesterday()
}

// Tomorrow is FromNow(Days(1)).
func Tomorrow() (DateTime, error) {
	return std.Tomorrow()
}

// LastWeek is Ago(Weeks(1)).
func LastWeek() (DateTime, error) {
	return std.LastWeek()
}

// NextWeek is FromNow(Weeks(1)).
func NextWeek() (DateTime, error) {
	return std.NextWeek()
}

// LastMonth is Ago(Months(1)).
func LastMonth() (DateTime, error) {
	return std.LastMonth()
}

// NextMonth is FromNow(Months(1)).
func NextMonth() (DateTime, error) {
	return std.NextMonth()
}

// LastYear is Ago(Years(1)).
func LastYear() (DateTime, error) {
	return std.LastYear()
}

// NextYear is FromNow(Years(1)).
func NextYear() (DateTime, error) {
	return std.NextYear()
}
