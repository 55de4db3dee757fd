package timetravel

import "fmt"

// ValueError is returned when an argument field is outside its contract,
// for example a negative duration amount or day 31 of a 30-day month.
type ValueError struct {
	Field string
	Value int64
	Msg   string
}

// Error converts a ValueError to a string.
func (verr ValueError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", verr.Field, verr.Value, verr.Msg)
}

// KindMismatchError is returned when two durations of different kinds are
// combined. Seconds and months are not interconvertible.
type KindMismatchError struct {
	Left  Kind
	Right Kind
}

// Error converts a KindMismatchError to a string.
func (kerr KindMismatchError) Error() string {
	return fmt.Sprintf("cannot combine %s duration with %s duration",
		kerr.Left, kerr.Right)
}
