// File: arithmetic.go
// Title: Field Arithmetic
// Description: Implements signed field deltas over DateTime values in a
//              value-returning form (Plus/Minus) and a mutating form (Add),
//              plus span-based variants. All deltas are applied to the raw
//              calendar fields before a single normalization pass, so the
//              order of units within one call cannot matter.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with Delta arithmetic
// - 2026-08-20 v0.1.1: Added span-based variants and per-field helpers

package datetime

import "github.com/tchason/RBDateTime/timespan"

// Delta is a set of signed calendar-field adjustments. Omitted fields default
// to zero. Deltas carry year and month granularity, which spans cannot.
type Delta struct {
	Years        int
	Months       int
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// IsZero reports whether every field of the delta is zero.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Negated returns the delta with every field's sign inverted.
func (d Delta) Negated() Delta {
	return Delta{
		Years:        -d.Years,
		Months:       -d.Months,
		Days:         -d.Days,
		Hours:        -d.Hours,
		Minutes:      -d.Minutes,
		Seconds:      -d.Seconds,
		Milliseconds: -d.Milliseconds,
	}
}

// spanDelta maps a span onto the day-and-smaller delta fields.
func spanDelta(s timespan.Span) Delta {
	return Delta{
		Days:         s.Days,
		Hours:        s.Hours,
		Minutes:      s.Minutes,
		Seconds:      s.Seconds,
		Milliseconds: s.Milliseconds,
	}
}

// applyDelta adds the delta to the raw fields and marks the instant cache
// dirty. Callers must renormalize before the value escapes.
func (dt *DateTime) applyDelta(d Delta) {
	dt.fields.Year += d.Years
	dt.fields.Month += d.Months
	dt.fields.Day += d.Days
	dt.fields.Hour += d.Hours
	dt.fields.Minute += d.Minutes
	dt.fields.Second += d.Seconds
	dt.fields.Nanosecond += d.Milliseconds * 1_000_000
	dt.cached = false
}

// Plus returns a new value with the delta added to the calendar fields and
// the result normalized. A delta that lands on a calendar-invalid date (such
// as February 30) is resolved by the calendar's rollover rules, never
// rejected. Adding the zero delta yields a value equal to the receiver.
func (dt DateTime) Plus(d Delta) (DateTime, error) {
	out := dt
	out.applyDelta(d)
	if err := out.normalize(); err != nil {
		return DateTime{}, err
	}
	return out, nil
}

// Minus returns a new value with the delta subtracted; it is Plus with every
// field's sign inverted.
func (dt DateTime) Minus(d Delta) (DateTime, error) {
	return dt.Plus(d.Negated())
}

// Add applies the delta to the receiver in place, renormalizing immediately
// so the fields and instant cache update as one unit. On error the receiver
// is left with its fields adjusted but unresolved; callers treating errors as
// fatal need no recovery, others should discard the receiver.
func (dt *DateTime) Add(d Delta) error {
	dt.applyDelta(d)
	return dt.normalize()
}

// PlusSpan returns a new value advanced by the span's day, hour, minute,
// second, and millisecond fields.
func (dt DateTime) PlusSpan(s timespan.Span) (DateTime, error) {
	return dt.Plus(spanDelta(s))
}

// MinusSpan returns a new value moved back by the span.
func (dt DateTime) MinusSpan(s timespan.Span) (DateTime, error) {
	return dt.Plus(spanDelta(s).Negated())
}

// AddSpan applies the span to the receiver in place.
func (dt *DateTime) AddSpan(s timespan.Span) error {
	return dt.Add(spanDelta(s))
}

// ===============================
// Per-field helpers
// ===============================

// PlusYears returns a new value n years later (earlier for negative n).
func (dt DateTime) PlusYears(n int) (DateTime, error) {
	return dt.Plus(Delta{Years: n})
}

// PlusMonths returns a new value n months later.
func (dt DateTime) PlusMonths(n int) (DateTime, error) {
	return dt.Plus(Delta{Months: n})
}

// PlusDays returns a new value n days later.
func (dt DateTime) PlusDays(n int) (DateTime, error) {
	return dt.Plus(Delta{Days: n})
}

// PlusHours returns a new value n hours later.
func (dt DateTime) PlusHours(n int) (DateTime, error) {
	return dt.Plus(Delta{Hours: n})
}

// PlusMinutes returns a new value n minutes later.
func (dt DateTime) PlusMinutes(n int) (DateTime, error) {
	return dt.Plus(Delta{Minutes: n})
}

// PlusSeconds returns a new value n seconds later.
func (dt DateTime) PlusSeconds(n int) (DateTime, error) {
	return dt.Plus(Delta{Seconds: n})
}

// PlusMilliseconds returns a new value n milliseconds later.
func (dt DateTime) PlusMilliseconds(n int) (DateTime, error) {
	return dt.Plus(Delta{Milliseconds: n})
}
