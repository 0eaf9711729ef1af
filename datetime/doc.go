// Package datetime implements the RBDateTime calendar-aware date/time value.
//
// Package: datetime
// Title: Calendar-Aware Date/Time Value Type
// Description: This package provides the DateTime type, which represents one
//              moment in time as two mutually consistent representations: a
//              set of normalized calendar fields (year through nanosecond,
//              interpreted under a calendar system and time zone) and an
//              absolute instant on a continuous time axis. Field arithmetic,
//              overflow handling, and time-zone projection all funnel through
//              one normalization engine that keeps both representations in
//              step.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with construction, arithmetic,
//                      and zone projection
// - 2026-08-20 v0.1.1: Added span-based arithmetic and derived accessors
// - 2026-08-21 v0.1.2: Added process-wide default calendar/zone configuration
//
// # Dual representation
//
// The calendar fields are the source of truth. The absolute instant is a
// cache, rebuilt by the normalization engine whenever fields change: the
// fields are resolved forward through the calendar system to an instant, then
// that instant is decomposed back into canonical fields. The double pass is
// what makes overflow handling correct - adding 45 days or constructing
// February 30 is resolved by the calendar's own rollover rules, honoring
// variable month lengths, leap years, and DST transitions, not by modular
// arithmetic on the raw fields.
//
// Every value obtained from this package has already been normalized: the
// observable fields are always canonical and the cached instant always
// matches them. Field overflow is never an error; only an unresolvable
// calendar identifier or time zone fails construction.
//
// # Equality
//
// Two DateTime values are equal when their instants are equal. The same
// moment viewed in Tokyo and New York compares equal while presenting
// different fields.
//
// # Mutation and concurrency
//
// All operations except Add and AddSpan return new values and are safe for
// concurrent use on a shared DateTime. Add and AddSpan mutate the receiver
// in place (fields and instant cache as one unit) and require external
// serialization when an instance is shared.
//
// # Defaults
//
// A value constructed without an explicit calendar uses the process default
// (initially Gregorian); without an explicit zone it uses the process default
// location (initially time.Local). The defaults are process-wide
// configuration, set explicitly at startup via SetDefaultCalendar and
// SetDefaultLocation or loaded from a file through the core/config package.
package datetime
