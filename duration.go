package timetravel

import (
	"fmt"
	"reflect"
)

// A Kind selects the arithmetic path used to apply a Duration: linear
// seconds arithmetic or calendar month arithmetic.
type Kind int

const (
	KindSeconds Kind = 0
	KindMonths  Kind = 1
)

// String converts a Kind to a string.
func (k Kind) String() string {
	switch k {
	case KindSeconds:
		return "seconds"
	case KindMonths:
		return "months"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerWeek   = 604800
	monthsPerYear    = 12
)

// Duration is a normalized magnitude tagged as seconds or months. It is
// built with the unit helpers and consumed by an Adjuster. Amounts are
// contractually non-negative; a negative amount is rejected by Adjust.
type Duration struct {
	Kind   Kind
	Amount int64
}

// We use int64 for the amount so that week and year magnitudes survive the
// normalization multiplications without overflow in any realistic range.

// Seconds returns a seconds-kind Duration of n seconds.
func Seconds(n int64) Duration {
	return Duration{Kind: KindSeconds, Amount: n}
}

// Minutes returns a seconds-kind Duration of n minutes.
func Minutes(n int64) Duration {
	return Seconds(n * secondsPerMinute)
}

// Hours returns a seconds-kind Duration of n hours.
func Hours(n int64) Duration {
	return Seconds(n * secondsPerHour)
}

// Days returns a seconds-kind Duration of n days of 86400 seconds.
func Days(n int64) Duration {
	return Seconds(n * secondsPerDay)
}

// Weeks returns a seconds-kind Duration of n weeks of 604800 seconds.
func Weeks(n int64) Duration {
	return Seconds(n * secondsPerWeek)
}

// Months returns a months-kind Duration of n calendar months.
func Months(n int64) Duration {
	return Duration{Kind: KindMonths, Amount: n}
}

// Years returns a months-kind Duration of n calendar years.
func Years(n int64) Duration {
	return Months(n * monthsPerYear)
}

// Add creates a new Duration as the sum of two durations of the same kind.
func (d Duration) Add(add Duration) (Duration, error) {
	if d.Kind != add.Kind {
		return Duration{}, KindMismatchError{Left: d.Kind, Right: add.Kind}
	}
	d.Amount += add.Amount

	return d, nil
}

// Sub creates a new Duration as the difference of two durations of the same
// kind. The result must stay non-negative.
func (d Duration) Sub(sub Duration) (Duration, error) {
	if d.Kind != sub.Kind {
		return Duration{}, KindMismatchError{Left: d.Kind, Right: sub.Kind}
	}
	if sub.Amount > d.Amount {
		return Duration{}, ValueError{
			Field: "amount",
			Value: d.Amount - sub.Amount,
			Msg:   "duration amount must be non-negative",
		}
	}
	d.Amount -= sub.Amount

	return d, nil
}

func (d Duration) validate() error {
	if d.Kind != KindSeconds && d.Kind != KindMonths {
		return ValueError{
			Field: "kind",
			Value: int64(d.Kind),
			Msg:   "must be seconds or months",
		}
	}
	if d.Amount < 0 {
		return ValueError{
			Field: "amount",
			Value: d.Amount,
			Msg:   "duration amount must be non-negative",
		}
	}
	return nil
}

// Duration MessagePack ext payload is a field map in the Interval manner:
// a field count followed by (field id, value) pairs, zero values omitted.
const duration_extId = 6

const (
	fieldKind   = 0
	fieldAmount = 1
)

func encodeDurationValue(e *encoder, typ uint64, value int64) (err error) {
	if value == 0 {
		return
	}
	err = encodeUint(e, typ)
	if err == nil {
		if value > 0 {
			err = encodeUint(e, uint64(value))
		} else {
			err = encodeInt(e, value)
		}
	}
	return
}

func encodeDuration(e *encoder, v reflect.Value) (err error) {
	val := v.Interface().(Duration)

	var fieldNum uint64
	for _, f := range []int64{int64(val.Kind), val.Amount} {
		if f != 0 {
			fieldNum++
		}
	}
	if err = encodeUint(e, fieldNum); err != nil {
		return
	}

	if err = encodeDurationValue(e, fieldKind, int64(val.Kind)); err != nil {
		return
	}
	if err = encodeDurationValue(e, fieldAmount, val.Amount); err != nil {
		return
	}
	return nil
}

func decodeDuration(d *decoder, v reflect.Value) (err error) {
	var fieldNum uint
	if fieldNum, err = d.DecodeUint(); err != nil {
		return
	}

	var val Duration

	for i := 0; i < int(fieldNum); i++ {
		var fieldType uint
		if fieldType, err = d.DecodeUint(); err != nil {
			return
		}
		var fieldVal int64
		if fieldVal, err = d.DecodeInt64(); err != nil {
			return
		}
		switch fieldType {
		case fieldKind:
			if fieldVal != int64(KindSeconds) && fieldVal != int64(KindMonths) {
				return fmt.Errorf("unsupported Kind: %d", fieldVal)
			}
			val.Kind = Kind(fieldVal)
		case fieldAmount:
			val.Amount = fieldVal
		default:
			return fmt.Errorf("unsupported duration field type: %d", fieldType)
		}
	}

	v.Set(reflect.ValueOf(val))
	return nil
}
