// File: arithmetic_test.go
// Title: Field Arithmetic Tests
// Description: Test suite for delta and span arithmetic: combined single-pass
//              adjustment, additive identity and inverse, rollover across
//              calendar boundaries, and the mutating form.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-19 v0.1.0: Initial test implementation
// - 2026-08-20 v0.1.1: Added span-based arithmetic tests

package datetime

import (
	"testing"
	"time"

	"github.com/tchason/RBDateTime/timespan"
)

func TestPlus(t *testing.T) {
	testCases := []struct {
		name  string
		start [3]int // year, month, day
		delta Delta
		want  [3]int
	}{
		{"Days across month boundary", [3]int{2024, 1, 30}, Delta{Days: 3}, [3]int{2024, 2, 2}},
		{"Days across leap day", [3]int{2024, 2, 28}, Delta{Days: 2}, [3]int{2024, 3, 1}},
		{"Days across Feb in non-leap year", [3]int{2023, 2, 27}, Delta{Days: 2}, [3]int{2023, 3, 1}},
		{"Months across year boundary", [3]int{2024, 11, 15}, Delta{Months: 3}, [3]int{2025, 2, 15}},
		{"Month onto short month rolls over", [3]int{2024, 1, 31}, Delta{Months: 1}, [3]int{2024, 3, 2}},
		{"Negative days", [3]int{2024, 3, 1}, Delta{Days: -1}, [3]int{2024, 2, 29}},
		{"Negative months across year", [3]int{2024, 1, 15}, Delta{Months: -2}, [3]int{2023, 11, 15}},
		{"Years onto leap day", [3]int{2024, 2, 29}, Delta{Years: 1}, [3]int{2025, 3, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dt := mustNew(t, tc.start[0], tc.start[1], tc.start[2], 0, 0, 0, 0, WithLocation(time.UTC))
			got, err := dt.Plus(tc.delta)
			if err != nil {
				t.Fatalf("Plus(%+v): %v", tc.delta, err)
			}
			if got.Year() != tc.want[0] || got.Month() != tc.want[1] || got.Day() != tc.want[2] {
				t.Errorf("Plus(%+v) = %d-%02d-%02d, want %d-%02d-%02d",
					tc.delta, got.Year(), got.Month(), got.Day(), tc.want[0], tc.want[1], tc.want[2])
			}
		})
	}
}

// All deltas are applied to the raw fields before one normalization pass, so
// a combined delta is not a sequence of independent rollovers.
func TestPlusCombinedSinglePass(t *testing.T) {
	dt := mustNew(t, 2024, 1, 31, 0, 0, 0, 0, WithLocation(time.UTC))

	// Raw fields become month=2, day=32: February 32nd is March 3rd in 2024.
	got, err := dt.Plus(Delta{Months: 1, Days: 1})
	if err != nil {
		t.Fatalf("Plus: %v", err)
	}
	if got.Year() != 2024 || got.Month() != 3 || got.Day() != 3 {
		t.Errorf("got %d-%02d-%02d, want 2024-03-03", got.Year(), got.Month(), got.Day())
	}
}

func TestPlusTimeUnits(t *testing.T) {
	dt := mustNew(t, 2024, 6, 15, 23, 59, 59, 900_000_000, WithLocation(time.UTC))

	got, err := dt.Plus(Delta{Milliseconds: 150})
	if err != nil {
		t.Fatalf("Plus: %v", err)
	}
	if got.Day() != 16 || got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("millisecond carry = %02d %02d:%02d:%02d, want day 16 00:00:00",
			got.Day(), got.Hour(), got.Minute(), got.Second())
	}
	if got.Millisecond() != 50 {
		t.Errorf("Millisecond() = %d, want 50", got.Millisecond())
	}
}

func TestAdditiveIdentity(t *testing.T) {
	dt := mustNew(t, 2024, 2, 29, 13, 37, 0, 0, WithLocation(time.UTC))

	same, err := dt.Plus(Delta{})
	if err != nil {
		t.Fatalf("Plus(zero): %v", err)
	}
	if !same.Equal(dt) {
		t.Errorf("Plus(zero delta) = %v, want a value equal to %v", same, dt)
	}
}

func TestAdditiveInverse(t *testing.T) {
	dt := mustNew(t, 2024, 3, 31, 6, 30, 0, 0, WithLocation(time.UTC))

	spans := []timespan.Span{
		timespan.New(40, 0, 0, 0, 0),
		timespan.New(1, 25, 61, 61, 1001),
		timespan.New(-3, 0, -90, 0, 0),
	}
	for _, s := range spans {
		forward, err := dt.PlusSpan(s)
		if err != nil {
			t.Fatalf("PlusSpan(%v): %v", s, err)
		}
		back, err := forward.MinusSpan(s)
		if err != nil {
			t.Fatalf("MinusSpan(%v): %v", s, err)
		}
		if !back.Equal(dt) {
			t.Errorf("PlusSpan(%v).MinusSpan(%v) = %v, want %v", s, s, back, dt)
		}
	}
}

func TestMinusIsNegatedPlus(t *testing.T) {
	dt := mustNew(t, 2024, 6, 15, 12, 0, 0, 0, WithLocation(time.UTC))
	d := Delta{Days: 10, Hours: 5}

	minus, err := dt.Minus(d)
	if err != nil {
		t.Fatalf("Minus: %v", err)
	}
	plusNeg, err := dt.Plus(d.Negated())
	if err != nil {
		t.Fatalf("Plus(negated): %v", err)
	}
	if !minus.Equal(plusNeg) {
		t.Errorf("Minus(%+v) = %v, Plus(negated) = %v", d, minus, plusNeg)
	}
}

func TestAddMutates(t *testing.T) {
	dt := mustNew(t, 2024, 1, 31, 0, 0, 0, 0, WithLocation(time.UTC))
	want, err := dt.Plus(Delta{Months: 1})
	if err != nil {
		t.Fatalf("Plus: %v", err)
	}

	if err := dt.Add(Delta{Months: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !dt.Equal(want) {
		t.Errorf("Add result %v differs from Plus result %v", dt, want)
	}

	// The instant cache must have been replaced along with the fields.
	if dt.Instant() != want.Instant() {
		t.Errorf("Instant() = %v, want %v", dt.Instant(), want.Instant())
	}
}

func TestPlusDoesNotMutateReceiver(t *testing.T) {
	dt := mustNew(t, 2024, 6, 15, 0, 0, 0, 0, WithLocation(time.UTC))
	orig := dt

	if _, err := dt.Plus(Delta{Days: 100}); err != nil {
		t.Fatalf("Plus: %v", err)
	}
	if dt != orig {
		t.Errorf("Plus mutated its receiver: %+v != %+v", dt, orig)
	}
}

func TestAddSpan(t *testing.T) {
	dt := mustNew(t, 2024, 6, 15, 12, 0, 0, 0, WithLocation(time.UTC))

	if err := dt.AddSpan(timespan.New(1, 2, 30, 0, 0)); err != nil {
		t.Fatalf("AddSpan: %v", err)
	}
	if dt.Day() != 16 || dt.Hour() != 14 || dt.Minute() != 30 {
		t.Errorf("AddSpan = day %d %02d:%02d, want day 16 14:30", dt.Day(), dt.Hour(), dt.Minute())
	}
}

func TestPerFieldHelpers(t *testing.T) {
	dt := mustNew(t, 2024, 6, 15, 12, 0, 0, 0, WithLocation(time.UTC))

	testCases := []struct {
		name string
		call func() (DateTime, error)
		want string
	}{
		{"PlusYears", func() (DateTime, error) { return dt.PlusYears(1) }, "2025-06-15T12:00:00Z"},
		{"PlusMonths", func() (DateTime, error) { return dt.PlusMonths(7) }, "2025-01-15T12:00:00Z"},
		{"PlusDays", func() (DateTime, error) { return dt.PlusDays(-15) }, "2024-05-31T12:00:00Z"},
		{"PlusHours", func() (DateTime, error) { return dt.PlusHours(12) }, "2024-06-16T00:00:00Z"},
		{"PlusMinutes", func() (DateTime, error) { return dt.PlusMinutes(90) }, "2024-06-15T13:30:00Z"},
		{"PlusSeconds", func() (DateTime, error) { return dt.PlusSeconds(-1) }, "2024-06-15T11:59:59Z"},
		{"PlusMilliseconds", func() (DateTime, error) { return dt.PlusMilliseconds(2500) }, "2024-06-15T12:00:02.5Z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.call()
			if err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			if got.String() != tc.want {
				t.Errorf("%s = %q, want %q", tc.name, got.String(), tc.want)
			}
		})
	}
}

func TestDeltaHelpers(t *testing.T) {
	if !(Delta{}).IsZero() {
		t.Error("zero delta reported non-zero")
	}
	if (Delta{Seconds: 1}).IsZero() {
		t.Error("non-zero delta reported zero")
	}

	d := Delta{Years: 1, Days: -2, Milliseconds: 3}
	want := Delta{Years: -1, Days: 2, Milliseconds: -3}
	if got := d.Negated(); got != want {
		t.Errorf("Negated() = %+v, want %+v", got, want)
	}
}
