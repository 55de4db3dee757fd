package timetravel_test

import (
	"fmt"
	"time"

	"github.com/timetravel/go-timetravel"
	"github.com/timetravel/go-timetravel/test_helpers"
)

func printDateTime(dt timetravel.DateTime) {
	fmt.Printf("%04d-%02d-%02d %02d:%02d:%02d\n",
		dt.Date.Year, dt.Date.Month, dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second)
}

// Example demonstrates shifting an explicit reference with the two duration
// kinds. The clock is never consulted when a reference is given.
func Example() {
	ref, err := timetravel.NewDateTime(2013, time.September, 4, 10, 37, 45)
	if err != nil {
		fmt.Printf("Error in NewDateTime is %v", err)
		return
	}
	adj := timetravel.NewAdjuster(nil, time.UTC)

	got, err := adj.From(timetravel.Minutes(25), ref)
	if err != nil {
		fmt.Printf("Error in From is %v", err)
		return
	}
	printDateTime(got)

	got, err = adj.Before(timetravel.Months(9), ref)
	if err != nil {
		fmt.Printf("Error in Before is %v", err)
		return
	}
	printDateTime(got)

	// Output:
	// 2013-09-04 11:02:45
	// 2012-12-04 10:37:45
}

// ExampleAdjuster_Ago demonstrates an ambient-clock adjustment with an
// injected clock.
func ExampleAdjuster_Ago() {
	clock := test_helpers.FixedClock{
		T: time.Date(2013, time.September, 4, 10, 37, 45, 0, time.UTC),
	}
	adj := timetravel.NewAdjuster(clock, time.UTC)

	got, err := adj.Ago(timetravel.Weeks(1))
	if err != nil {
		fmt.Printf("Error in Ago is %v", err)
		return
	}
	printDateTime(got)

	// Output:
	// 2013-08-28 10:37:45
}

// ExampleAdjuster_Before_clamping demonstrates the day-of-month clamp of the
// calendar month path: a year before a leap day is the 28th.
func ExampleAdjuster_Before_clamping() {
	ref, err := timetravel.NewDateTime(2012, time.February, 29, 10, 37, 45)
	if err != nil {
		fmt.Printf("Error in NewDateTime is %v", err)
		return
	}
	adj := timetravel.NewAdjuster(nil, time.UTC)

	got, err := adj.Before(timetravel.Years(1), ref)
	if err != nil {
		fmt.Printf("Error in Before is %v", err)
		return
	}
	printDateTime(got)

	// Output:
	// 2011-02-28 10:37:45
}
