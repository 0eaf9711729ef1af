// File: calendar.go
// Title: Calendar Interface and Registry
// Description: Defines the Fields record, the measurement units, the Calendar
//              interface mapping fields to instants and back, and the process
//              registry resolving calendar identifiers to implementations.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with identifier registry
// - 2026-08-19 v0.1.1: Added ordinality and component queries to the interface

package calendar

import (
	"sync"
	"time"

	"github.com/tchason/RBDateTime/core/calerr"
)

// Fields is the calendar-field decomposition of an instant under a specific
// calendar and time zone. Before normalization the values are semantically
// unbounded signed integers; after normalization they sit in their canonical
// ranges (Month 1..12, Day valid for the month, Hour 0..23, Minute and Second
// 0..59, Nanosecond 0..1e9-1).
type Fields struct {
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Unit identifies a calendar field for ordinality and component queries
type Unit int

// Calendar units
const (
	UnitYear Unit = iota
	UnitMonth
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
	UnitWeekday
)

// String returns the unit name
func (u Unit) String() string {
	switch u {
	case UnitYear:
		return "year"
	case UnitMonth:
		return "month"
	case UnitDay:
		return "day"
	case UnitHour:
		return "hour"
	case UnitMinute:
		return "minute"
	case UnitSecond:
		return "second"
	case UnitWeekday:
		return "weekday"
	default:
		return "unknown"
	}
}

// Calendar maps field tuples to instants and back under a given time zone.
// All calendar intelligence (month lengths, leap rules, DST transitions) is
// delegated to implementations of this interface.
type Calendar interface {
	// Identifier returns the registry identifier, e.g. "gregorian".
	Identifier() string

	// FieldsToInstant resolves fields to an absolute instant. Overflowed
	// fields are accepted and carried per the calendar's rollover rules. An
	// error means the calendar cannot produce any instant from the fields,
	// which for well-behaved calendars never happens; a civil time inside a
	// DST gap or overlap resolves to an implementation-chosen instant.
	FieldsToInstant(f Fields, loc *time.Location) (Instant, error)

	// InstantToFields decomposes an instant into canonical fields under the
	// given time zone.
	InstantToFields(i Instant, loc *time.Location) Fields

	// Ordinality returns the 1-based position of unit within the enclosing
	// unit at the given instant (e.g. day within year), or 0 if the pairing
	// is not supported.
	Ordinality(unit, within Unit, i Instant, loc *time.Location) int

	// Component returns the value of the given unit at the instant (e.g. the
	// weekday as 0=Sunday..6=Saturday), or 0 if the unit is not supported.
	Component(unit Unit, i Instant, loc *time.Location) int
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Calendar{}
)

// Register makes a calendar resolvable by its identifier, replacing any
// previous registration under the same identifier.
func Register(c Calendar) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[c.Identifier()] = c
}

// Resolve returns the calendar registered under the given identifier.
func Resolve(identifier string) (Calendar, error) {
	registryMu.RLock()
	c, ok := registry[identifier]
	registryMu.RUnlock()

	if !ok {
		return nil, calerr.New("unknown calendar identifier").
			WithCode(calerr.CodeUnknownCalendar).
			WithOperation("calendar.Resolve").
			WithDetail("identifier", identifier)
	}
	return c, nil
}

func init() {
	Register(Gregorian)
}
