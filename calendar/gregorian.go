// File: gregorian.go
// Title: Proleptic Gregorian Calendar
// Description: Implements the Calendar interface for the proleptic Gregorian
//              calendar by delegating to the standard library time package,
//              which supplies the rollover, leap-year, and DST resolution
//              rules.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
// - 2026-08-19 v0.1.1: Added ordinality and component queries

package calendar

import "time"

// GregorianID is the registry identifier of the Gregorian calendar.
const GregorianID = "gregorian"

// Gregorian is the proleptic Gregorian calendar. It is registered under
// GregorianID at package initialization and is the library default.
var Gregorian Calendar = gregorian{}

type gregorian struct{}

// Identifier returns "gregorian".
func (gregorian) Identifier() string {
	return GregorianID
}

// FieldsToInstant resolves the fields through time.Date, which normalizes
// out-of-range values by carrying them into adjacent fields (October 32
// becomes November 1, month 13 becomes January of the next year) and resolves
// DST gaps and overlaps itself. It never fails.
func (gregorian) FieldsToInstant(f Fields, loc *time.Location) (Instant, error) {
	if loc == nil {
		loc = time.Local
	}
	t := time.Date(f.Year, time.Month(f.Month), f.Day,
		f.Hour, f.Minute, f.Second, f.Nanosecond, loc)
	return InstantOf(t), nil
}

// InstantToFields decomposes the instant under the given zone. The result is
// always canonical.
func (gregorian) InstantToFields(i Instant, loc *time.Location) Fields {
	t := i.Time(loc)
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return Fields{
		Year:       year,
		Month:      int(month),
		Day:        day,
		Hour:       hour,
		Minute:     minute,
		Second:     second,
		Nanosecond: t.Nanosecond(),
	}
}

// Ordinality answers 1-based containment queries: day within year, day within
// month, and month within year. Unsupported pairings return 0.
func (gregorian) Ordinality(unit, within Unit, i Instant, loc *time.Location) int {
	t := i.Time(loc)
	switch {
	case unit == UnitDay && within == UnitYear:
		return t.YearDay()
	case unit == UnitDay && within == UnitMonth:
		return t.Day()
	case unit == UnitMonth && within == UnitYear:
		return int(t.Month())
	case unit == UnitHour && within == UnitDay:
		return t.Hour() + 1
	default:
		return 0
	}
}

// Component returns the value of a single unit at the instant. The weekday is
// reported as 0=Sunday through 6=Saturday, matching time.Weekday.
func (gregorian) Component(unit Unit, i Instant, loc *time.Location) int {
	t := i.Time(loc)
	switch unit {
	case UnitYear:
		return t.Year()
	case UnitMonth:
		return int(t.Month())
	case UnitDay:
		return t.Day()
	case UnitHour:
		return t.Hour()
	case UnitMinute:
		return t.Minute()
	case UnitSecond:
		return t.Second()
	case UnitWeekday:
		return int(t.Weekday())
	default:
		return 0
	}
}
