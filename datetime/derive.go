// File: derive.go
// Title: Zone Projection and Derived Accessors
// Description: Implements time-zone projection (same instant, different field
//              presentation) and the derived views of a DateTime: date-only,
//              time-of-day, weekday, day of year, and the leap-year queries.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with zone projection
// - 2026-08-20 v0.1.1: Added date-only, time-of-day, and calendar queries

package datetime

import (
	"time"

	"github.com/tchason/RBDateTime/calendar"
	"github.com/tchason/RBDateTime/timespan"
)

// ===============================
// Time zone projection
// ===============================

// In returns the same instant with fields re-derived under the given zone.
// The instant never changes under projection, only the field presentation. A
// nil location means the local zone.
func (dt DateTime) In(loc *time.Location) DateTime {
	if loc == nil {
		loc = time.Local
	}
	inst := dt.Instant()
	out := DateTime{cal: dt.Calendar(), loc: loc, inst: inst, cached: true}
	out.fields = out.cal.InstantToFields(inst, loc)
	return out
}

// InZone projects the value into the zone with the given name.
func (dt DateTime) InZone(name string) (DateTime, error) {
	loc, err := calendar.Zone(name)
	if err != nil {
		return DateTime{}, err
	}
	return dt.In(loc), nil
}

// UTC projects the value into UTC.
func (dt DateTime) UTC() DateTime {
	return dt.In(time.UTC)
}

// Local projects the value into the local zone.
func (dt DateTime) Local() DateTime {
	return dt.In(time.Local)
}

// ===============================
// Derived views
// ===============================

// DateOnly returns the value with the time-of-day fields zeroed, keeping the
// calendar and zone. The result is renormalized from the zeroed fields rather
// than derived by subtracting the elapsed time of day from the instant; across
// a DST transition those two differ, and the calendar's resolution of
// midnight is the correct one.
func (dt DateTime) DateOnly() (DateTime, error) {
	out := dt
	out.fields.Hour = 0
	out.fields.Minute = 0
	out.fields.Second = 0
	out.fields.Nanosecond = 0
	out.cached = false
	if err := out.normalize(); err != nil {
		return DateTime{}, err
	}
	return out, nil
}

// TimeOfDay returns the elapsed time between the start of the value's day and
// the value itself.
func (dt DateTime) TimeOfDay() (timespan.Span, error) {
	day, err := dt.DateOnly()
	if err != nil {
		return timespan.Span{}, err
	}
	return timespan.Between(day.Instant(), dt.Instant()), nil
}

// Weekday returns the day of the week, queried from the calendar system
// against the instant so the bound calendar and zone are honored.
func (dt DateTime) Weekday() time.Weekday {
	return time.Weekday(dt.Calendar().Component(calendar.UnitWeekday, dt.Instant(), dt.Location()))
}

// DayOfYear returns the 1-based ordinal of the day within its year.
func (dt DateTime) DayOfYear() int {
	return dt.Calendar().Ordinality(calendar.UnitDay, calendar.UnitYear, dt.Instant(), dt.Location())
}

// IsLeapYear reports whether the given year is a leap year under the
// proleptic Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsLeapMonth reports whether the value falls in February of a leap year.
// This mirrors the historical accessor of the same name: it flags the
// Gregorian month that gains a day, not a leap month in the sense of
// lunisolar calendars.
func (dt DateTime) IsLeapMonth() bool {
	return IsLeapYear(dt.Year()) && dt.Month() == 2
}
