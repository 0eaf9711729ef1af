// File: datetime.go
// Title: DateTime Value Type
// Description: Implements the DateTime type: the dual calendar-fields/instant
//              representation, the normalization engine keeping the two in
//              step, construction paths, field accessors, and instant-based
//              equality.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
// - 2026-08-21 v0.1.1: Constructors route calendar/zone defaults through the
//                      process-wide configuration
// - 2026-08-29 v0.1.2: Today/TodayUTC surface calendar resolution errors

package datetime

import (
	"time"

	"github.com/tchason/RBDateTime/calendar"
	"github.com/tchason/RBDateTime/core/calerr"
)

// DateTime represents one moment in time as normalized calendar fields bound
// to a calendar system and time zone, together with a cached absolute
// instant. The calendar fields are the source of truth; the instant cache is
// rebuilt by normalization whenever the fields change, so both
// representations of a value obtained from this package always agree.
//
// The zero DateTime is not meaningful; use the constructors.
type DateTime struct {
	fields calendar.Fields
	cal    calendar.Calendar
	loc    *time.Location

	// Instant cache. cached=false marks the instant dirty; the dirty state
	// only exists transiently inside an arithmetic call, never on a value
	// returned to a caller.
	inst   calendar.Instant
	cached bool
}

// ===============================
// Construction
// ===============================

// New returns the DateTime for the given calendar fields. Out-of-range fields
// are not an error: they are carried into adjacent fields by the calendar's
// rollover rules, so month 13 of 2024 is January 2025 and February 30 of 2023
// is March 2. The calendar and zone come from the options, falling back to
// the process defaults.
func New(year, month, day, hour, minute, second, nanosecond int, opts ...Option) (DateTime, error) {
	cal, loc, err := resolveOptions(opts)
	if err != nil {
		return DateTime{}, err
	}

	dt := DateTime{
		fields: calendar.Fields{
			Year:       year,
			Month:      month,
			Day:        day,
			Hour:       hour,
			Minute:     minute,
			Second:     second,
			Nanosecond: nanosecond,
		},
		cal: cal,
		loc: loc,
	}
	if err := dt.normalize(); err != nil {
		return DateTime{}, err
	}
	return dt, nil
}

// Date returns the DateTime for the given calendar date at midnight.
func Date(year, month, day int, opts ...Option) (DateTime, error) {
	return New(year, month, day, 0, 0, 0, 0, opts...)
}

// FromInstant returns the DateTime at the given absolute instant, with fields
// derived under the optional calendar and zone.
func FromInstant(inst calendar.Instant, opts ...Option) (DateTime, error) {
	cal, loc, err := resolveOptions(opts)
	if err != nil {
		return DateTime{}, err
	}

	dt := DateTime{cal: cal, loc: loc, inst: inst, cached: true}
	dt.fields = cal.InstantToFields(inst, loc)
	return dt, nil
}

// FromUnix returns the DateTime sec seconds and nsec nanoseconds after the
// Unix epoch.
func FromUnix(sec, nsec int64, opts ...Option) (DateTime, error) {
	return FromInstant(calendar.NewInstant(sec, nsec), opts...)
}

// FromTime returns the DateTime at the moment t, keeping t's location and
// using the process default calendar.
func FromTime(t time.Time) DateTime {
	inst := calendar.InstantOf(t)
	dt := DateTime{cal: DefaultCalendar(), loc: t.Location(), inst: inst, cached: true}
	dt.fields = dt.cal.InstantToFields(inst, dt.loc)
	return dt
}

// Now returns the current moment in the process default calendar and zone.
func Now() DateTime {
	return FromTime(time.Now().In(DefaultLocation()))
}

// NowUTC returns the current moment in UTC.
func NowUTC() DateTime {
	return FromTime(time.Now().UTC())
}

// Today returns the current date at midnight in the process default calendar
// and zone. The error is non-nil only when a process default calendar
// installed via SetDefaultCalendar rejects the fields; with the shipped
// Gregorian default it never fails.
func Today() (DateTime, error) {
	now := time.Now().In(DefaultLocation())
	return Date(now.Year(), int(now.Month()), now.Day())
}

// TodayUTC returns the current UTC date at midnight, with the same error
// contract as Today.
func TodayUTC() (DateTime, error) {
	now := time.Now().UTC()
	return Date(now.Year(), int(now.Month()), now.Day(), WithLocation(time.UTC))
}

// ===============================
// Normalization engine
// ===============================

// normalize resolves the current fields forward to an instant and decomposes
// that instant back into canonical fields, refreshing the cache. This is the
// only path that rewrites fields after construction.
func (dt *DateTime) normalize() error {
	inst, err := dt.Calendar().FieldsToInstant(dt.fields, dt.Location())
	if err != nil {
		return calerr.Wrap(err, "calendar cannot resolve fields").
			WithCode(calerr.CodeInvalidCalendarFields).
			WithOperation("datetime.normalize").
			WithDetail("calendar", dt.Calendar().Identifier())
	}
	dt.fields = dt.Calendar().InstantToFields(inst, dt.Location())
	dt.inst = inst
	dt.cached = true
	return nil
}

// ===============================
// Accessors
// ===============================

// Year returns the calendar year.
func (dt DateTime) Year() int { return dt.fields.Year }

// Month returns the month of the year, 1 through 12 under the Gregorian
// calendar.
func (dt DateTime) Month() int { return dt.fields.Month }

// Day returns the day of the month.
func (dt DateTime) Day() int { return dt.fields.Day }

// Hour returns the hour within the day, 0 through 23.
func (dt DateTime) Hour() int { return dt.fields.Hour }

// Minute returns the minute within the hour, 0 through 59.
func (dt DateTime) Minute() int { return dt.fields.Minute }

// Second returns the second within the minute, 0 through 59.
func (dt DateTime) Second() int { return dt.fields.Second }

// Nanosecond returns the sub-second offset in nanoseconds, 0 through 1e9-1.
func (dt DateTime) Nanosecond() int { return dt.fields.Nanosecond }

// Millisecond returns the sub-second offset in whole milliseconds.
func (dt DateTime) Millisecond() int { return dt.fields.Nanosecond / 1_000_000 }

// Fields returns a copy of the normalized calendar fields.
func (dt DateTime) Fields() calendar.Fields { return dt.fields }

// Calendar returns the bound calendar system, or the process default if the
// value was never bound to one.
func (dt DateTime) Calendar() calendar.Calendar {
	if dt.cal == nil {
		return DefaultCalendar()
	}
	return dt.cal
}

// Location returns the bound time zone, or the process default if the value
// was never bound to one.
func (dt DateTime) Location() *time.Location {
	if dt.loc == nil {
		return DefaultLocation()
	}
	return dt.loc
}

// Instant returns the absolute instant of the value. Values produced by this
// package carry a populated cache; should the cache ever be dirty, the
// instant is derived from the fields on the spot.
func (dt DateTime) Instant() calendar.Instant {
	if dt.cached {
		return dt.inst
	}
	inst, _ := dt.Calendar().FieldsToInstant(dt.fields, dt.Location()) // normalized fields always resolve
	return inst
}

// Time returns the value as a time.Time in its bound location.
func (dt DateTime) Time() time.Time {
	return dt.Instant().Time(dt.Location())
}

// Unix returns the whole seconds since the Unix epoch.
func (dt DateTime) Unix() int64 {
	return dt.Instant().Unix()
}

// UnixNano returns the nanoseconds since the Unix epoch. The result
// overflows for instants more than roughly 292 years away from 1970,
// matching the stdlib contract.
func (dt DateTime) UnixNano() int64 {
	inst := dt.Instant()
	return inst.Unix()*int64(time.Second) + int64(inst.Nanosecond())
}

// ===============================
// Equality and ordering
// ===============================

// Equal reports whether two values denote the same instant. Calendar, zone,
// and field presentation do not participate: the same moment viewed in two
// zones is equal.
func (dt DateTime) Equal(other DateTime) bool {
	return dt.Instant().Equal(other.Instant())
}

// Compare returns -1, 0, or +1 ordering the two values by instant.
func (dt DateTime) Compare(other DateTime) int {
	return dt.Instant().Compare(other.Instant())
}

// Before reports whether dt's instant is strictly before other's.
func (dt DateTime) Before(other DateTime) bool {
	return dt.Compare(other) < 0
}

// After reports whether dt's instant is strictly after other's.
func (dt DateTime) After(other DateTime) bool {
	return dt.Compare(other) > 0
}

// String returns the value in RFC 3339 form for debugging.
func (dt DateTime) String() string {
	return dt.Time().Format(time.RFC3339Nano)
}
