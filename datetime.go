package timetravel

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Date is a calendar date. Month is 1-12, Day is 1-31 and must be valid for
// the month and year.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// TimeOfDay is a wall-clock time with second precision.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// DateTime is a zone-less calendar date paired with a wall-clock time.
// Values are immutable: every operation returns a new DateTime.
type DateTime struct {
	Date Date
	Time TimeOfDay
}

// NewDate returns a validated Date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// NewDateTime returns a validated DateTime.
func NewDateTime(year int, month time.Month, day, hour, min, sec int) (DateTime, error) {
	dt := DateTime{
		Date: Date{Year: year, Month: month, Day: day},
		Time: TimeOfDay{Hour: hour, Minute: min, Second: sec},
	}
	if err := dt.Validate(); err != nil {
		return DateTime{}, err
	}
	return dt, nil
}

// At attaches a time-of-day to the date.
func (d Date) At(t TimeOfDay) DateTime {
	return DateTime{Date: d, Time: t}
}

// Validate reports every field of the date that is out of range.
func (d Date) Validate() error {
	var errs *multierror.Error
	if d.Month < time.January || d.Month > time.December {
		errs = multierror.Append(errs, ValueError{
			Field: "month",
			Value: int64(d.Month),
			Msg:   "must be within 1..12",
		})
		// The day range depends on the month, no point checking it here.
		return errs.ErrorOrNil()
	}
	if days := daysIn(d.Year, d.Month); d.Day < 1 || d.Day > days {
		errs = multierror.Append(errs, ValueError{
			Field: "day",
			Value: int64(d.Day),
			Msg:   fmt.Sprintf("must be within 1..%d for %s %d", days, d.Month, d.Year),
		})
	}
	return errs.ErrorOrNil()
}

// Validate reports every field of the time-of-day that is out of range.
func (t TimeOfDay) Validate() error {
	var errs *multierror.Error
	if t.Hour < 0 || t.Hour > 23 {
		errs = multierror.Append(errs, ValueError{
			Field: "hour",
			Value: int64(t.Hour),
			Msg:   "must be within 0..23",
		})
	}
	if t.Minute < 0 || t.Minute > 59 {
		errs = multierror.Append(errs, ValueError{
			Field: "minute",
			Value: int64(t.Minute),
			Msg:   "must be within 0..59",
		})
	}
	if t.Second < 0 || t.Second > 59 {
		errs = multierror.Append(errs, ValueError{
			Field: "second",
			Value: int64(t.Second),
			Msg:   "must be within 0..59",
		})
	}
	return errs.ErrorOrNil()
}

// Validate reports every field of the date-time that is out of range.
func (dt DateTime) Validate() error {
	return multierror.Append(nil, dt.Date.Validate(), dt.Time.Validate()).ErrorOrNil()
}

// DateTimeOf decomposes a time.Time into a DateTime, dropping sub-second
// precision and the location.
func DateTimeOf(t time.Time) DateTime {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return DateTime{
		Date: Date{Year: year, Month: month, Day: day},
		Time: TimeOfDay{Hour: hour, Minute: min, Second: sec},
	}
}

// ToTime interprets the DateTime in the given location. A nil location means
// UTC.
func (dt DateTime) ToTime(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(dt.Date.Year, dt.Date.Month, dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, 0, loc)
}

// IsLeap reports whether the year is a Gregorian leap year: divisible by 400
// is leap, else divisible by 100 is not, else divisible by 4 is.
func IsLeap(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

func daysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// DateTime MessagePack ext payload is a container of 8 or 16 bytes:
//
//	+---------+--------+===============+-------------------------------+
//	|0xd7/0xd8|type (4)| seconds (8b)  | nsec; tzoffset; tzindex; (8b) |
//	+---------+--------+===============+-------------------------------+
//
// Seconds are the full, unencoded, signed 64-bit UTC epoch offset in
// little-endian order. DateTime has second precision and no zone, so the
// trailing fields are written as zero and ignored (except nanoseconds, which
// are truncated) on read.
const datetime_extId = 4

const (
	secondsSize  = 8
	nsecSize     = 4
	tzIndexSize  = 2
	tzOffsetSize = 2
)

const maxSize = secondsSize + nsecSize + tzIndexSize + tzOffsetSize

// MarshalMsgpack implements the Marshaler interface of both msgpack
// backends.
func (dt *DateTime) MarshalMsgpack() ([]byte, error) {
	buf := make([]byte, secondsSize)
	binary.LittleEndian.PutUint64(buf, uint64(dt.ToTime(time.UTC).Unix()))
	return buf, nil
}

// UnmarshalMsgpack implements the Unmarshaler interface of both msgpack
// backends.
func (dt *DateTime) UnmarshalMsgpack(b []byte) error {
	l := len(b)
	if l != maxSize && l != secondsSize {
		return fmt.Errorf("invalid data length: got %d, wanted %d or %d",
			l, secondsSize, maxSize)
	}

	seconds := int64(binary.LittleEndian.Uint64(b))
	var nsec int64
	if l == maxSize {
		nsec = int64(binary.LittleEndian.Uint32(b[secondsSize:]))
	}
	*dt = DateTimeOf(time.Unix(seconds, nsec).UTC())

	return nil
}
