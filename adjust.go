package timetravel

import "time"

// A Direction selects whether a duration is subtracted from or added to the
// reference.
type Direction int

const (
	Past   Direction = 0
	Future Direction = 1
)

// String converts a Direction to a string.
func (dir Direction) String() string {
	switch dir {
	case Past:
		return "past"
	case Future:
		return "future"
	default:
		return "Direction(?)"
	}
}

// An Adjuster applies durations to reference date-times. Its collaborators
// are injected on construction: the Clock supplies the reference when the
// caller gives none, the location supplies the zone rules for the linear
// seconds arithmetic.
type Adjuster struct {
	clock Clock
	loc   *time.Location
}

// NewAdjuster returns an Adjuster over the given clock and location. A nil
// clock falls back to RealClock, a nil location to time.Local.
func NewAdjuster(clock Clock, loc *time.Location) *Adjuster {
	if clock == nil {
		clock = RealClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Adjuster{clock: clock, loc: loc}
}

// Adjust applies the duration to the reference in the given direction and
// returns the resulting date-time. A nil reference means the clock's current
// date-time; the clock is read at most once per call. Seconds-kind durations
// go through linear time arithmetic and may roll any boundary up to the
// year; months-kind durations go through calendar month arithmetic, keep the
// time-of-day untouched and clamp the day-of-month to the target month (a
// lossy step: adding and then subtracting the same months-kind duration does
// not always restore the original day).
func (a *Adjuster) Adjust(d Duration, dir Direction, ref *DateTime) (DateTime, error) {
	if err := d.validate(); err != nil {
		return DateTime{}, err
	}
	if dir != Past && dir != Future {
		return DateTime{}, ValueError{
			Field: "direction",
			Value: int64(dir),
			Msg:   "must be Past or Future",
		}
	}

	var r DateTime
	if ref == nil {
		r = DateTimeOf(a.clock.Now().In(a.loc))
	} else {
		if err := ref.Validate(); err != nil {
			return DateTime{}, err
		}
		r = *ref
	}

	if d.Kind == KindMonths {
		return adjustMonths(r, dir, d.Amount), nil
	}
	return a.adjustSeconds(r, dir, d.Amount), nil
}

// adjustSeconds shifts the reference by whole seconds on the absolute time
// line. The reference is pinned to an instant using the adjuster's location
// and the result is read back field-wise, so the zone rules of the result
// instant apply.
func (a *Adjuster) adjustSeconds(ref DateTime, dir Direction, amount int64) DateTime {
	delta := time.Duration(amount) * time.Second
	if dir == Past {
		delta = -delta
	}
	return DateTimeOf(ref.ToTime(a.loc).Add(delta))
}

// adjustMonths shifts the reference by whole calendar months. The year and
// month are folded into a single 1-based month index, shifted, and unfolded;
// a zero remainder lands on December of the previous year.
func adjustMonths(ref DateTime, dir Direction, amount int64) DateTime {
	total := int64(ref.Date.Year)*monthsPerYear + int64(ref.Date.Month)
	if dir == Past {
		total -= amount
	} else {
		total += amount
	}

	year := int(total / monthsPerYear)
	month := time.Month(total % monthsPerYear)
	if month == 0 {
		month = time.December
		year--
	}

	return DateTime{
		Date: Date{
			Year:  year,
			Month: month,
			Day:   clampDay(ref.Date.Day, year, month),
		},
		Time: ref.Time,
	}
}

// clampDay maps the original day-of-month onto the nearest valid day of the
// target month. Days up to 28 always fit. February takes 29 in leap years
// and 28 otherwise. The 31st of a long month lands on the 30th of a short
// one.
func clampDay(day, year int, month time.Month) int {
	if day <= 28 {
		return day
	}
	if month == time.February {
		if IsLeap(year) {
			return 29
		}
		return 28
	}
	if day == 31 && daysIn(year, month) == 30 {
		return 30
	}
	return day
}

// Ago returns the date-time the duration before the clock's current
// date-time.
func (a *Adjuster) Ago(d Duration) (DateTime, error) {
	return a.Adjust(d, Past, nil)
}

// FromNow returns the date-time the duration after the clock's current
// date-time.
func (a *Adjuster) FromNow(d Duration) (DateTime, error) {
	return a.Adjust(d, Future, nil)
}

// Before returns the date-time the duration before the reference.
func (a *Adjuster) Before(d Duration, ref DateTime) (DateTime, error) {
	return a.Adjust(d, Past, &ref)
}

// From returns the date-time the duration after the reference.
func (a *Adjuster) From(d Duration, ref DateTime) (DateTime, error) {
	return a.Adjust(d, Future, &ref)
}

// BeforeDate is Before with a date-only reference; the clock's current
// time-of-day is attached to the date.
func (a *Adjuster) BeforeDate(d Duration, date Date) (DateTime, error) {
	ref := date.At(DateTimeOf(a.clock.Now().In(a.loc)).Time)
	return a.Adjust(d, Past, &ref)
}

// FromDate is From with a date-only reference; the clock's current
// time-of-day is attached to the date.
func (a *Adjuster) FromDate(d Duration, date Date) (DateTime, error) {
	ref := date.At(DateTimeOf(a.clock.Now().In(a.loc)).Time)
	return a.Adjust(d, Future, &ref)
}

// Now returns the clock's current date-time.
func (a *Adjuster) Now() DateTime {
	return DateTimeOf(a.clock.Now().In(a.loc))
}

// Today returns the clock's current date.
func (a *Adjuster) Today() Date {
	return a.Now().Date
}

// Yesterday is Ago(Days(1)).
func (a *Adjuster) Yesterday() (DateTime, error) {
	return a.Ago(Days(1))
}

// Tomorrow is FromNow(Days(1)).
func (a *Adjuster) Tomorrow() (DateTime, error) {
	return a.FromNow(Days(1))
}

// LastWeek is Ago(Weeks(1)).
func (a *Adjuster) LastWeek() (DateTime, error) {
	return a.Ago(Weeks(1))
}

// NextWeek is FromNow(Weeks(1)).
func (a *Adjuster) NextWeek() (DateTime, error) {
	return a.FromNow(Weeks(1))
}

// LastMonth is Ago(Months(1)).
func (a *Adjuster) LastMonth() (DateTime, error) {
	return a.Ago(Months(1))
}

// NextMonth is FromNow(Months(1)).
func (a *Adjuster) NextMonth() (DateTime, error) {
	return a.FromNow(Months(1))
}

// LastYear is Ago(Years(1)).
func (a *Adjuster) LastYear() (DateTime, error) {
	return a.Ago(Years(1))
}

// NextYear is FromNow(Years(1)).
func (a *Adjuster) NextYear() (DateTime, error) {
	return a.FromNow(Years(1))
}
