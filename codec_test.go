package timetravel_test

import (
	"bytes"
	"encoding/hex"
	"reflect"
	"testing"
	"time"

	. "github.com/timetravel/go-timetravel"
)

// Fixed samples of the DateTime ext encoding: fixext8, type 4, little-endian
// UTC epoch seconds.
var datetimeSample = []struct {
	dt    string
	mpBuf string
}{
	{"2013-10-28T17:51:56Z", "d7043ca46e5200000000"},
	{"1984-03-24T18:04:05Z", "d7041530c31a00000000"},
	{"2010-08-12T11:39:14Z", "d70462dd634c00000000"},
	{"1970-01-01T00:00:00Z", "d7040000000000000000"},
}

func TestDateTimeEncode(t *testing.T) {
	for _, testcase := range datetimeSample {
		t.Run(testcase.dt, func(t *testing.T) {
			tm, err := time.Parse(time.RFC3339, testcase.dt)
			if err != nil {
				t.Fatalf("Time (%s) parse failed: %s", testcase.dt, err)
			}
			dt := DateTimeOf(tm.UTC())

			buf, err := marshal(&dt)
			if err != nil {
				t.Fatalf("Marshal failed: %s", err)
			}
			expected, err := hex.DecodeString(testcase.mpBuf)
			if err != nil {
				t.Fatalf("Invalid hex in testcase: %s", err)
			}
			if !bytes.Equal(buf, expected) {
				t.Fatalf("Unexpected %x, expected %s", buf, testcase.mpBuf)
			}
		})
	}
}

func TestDateTimeDecode(t *testing.T) {
	for _, testcase := range datetimeSample {
		t.Run(testcase.dt, func(t *testing.T) {
			tm, err := time.Parse(time.RFC3339, testcase.dt)
			if err != nil {
				t.Fatalf("Time (%s) parse failed: %s", testcase.dt, err)
			}
			buf, err := hex.DecodeString(testcase.mpBuf)
			if err != nil {
				t.Fatalf("Invalid hex in testcase: %s", err)
			}

			var dt DateTime
			if err = unmarshal(buf, &dt); err != nil {
				t.Fatalf("Unmarshal failed: %s", err)
			}
			if expected := DateTimeOf(tm.UTC()); dt != expected {
				t.Fatalf("Unexpected %+v, expected %+v", dt, expected)
			}
		})
	}
}

func TestDurationCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		d    Duration
	}{
		{"months", Months(9)},
		{"seconds", Seconds(90)},
		{"years", Years(3)},
		{"zero", Seconds(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := marshal(tt.d)
			if err != nil {
				t.Fatalf("Marshal failed: %s", err)
			}
			var back Duration
			if err = unmarshal(buf, &back); err != nil {
				t.Fatalf("Unmarshal failed: %s", err)
			}
			if !reflect.DeepEqual(tt.d, back) {
				t.Fatalf("Unexpected %v, expected %v", back, tt.d)
			}
		})
	}
}
