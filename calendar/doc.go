// Package calendar defines the calendar-system and time-zone collaborators of
// the RBDateTime library.
//
// Package: calendar
// Title: Calendar System Abstraction
// Description: This package provides the Instant value (an absolute point on a
//              continuous time axis), the Fields record (a calendar-field
//              decomposition of an instant), and the Calendar interface that
//              maps between the two under a given time zone. The mapping is
//              where all calendar intelligence lives: variable month lengths,
//              leap years, and DST transitions are resolved by the calendar
//              implementation, never by field arithmetic in callers.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with Gregorian calendar and
//                      time-zone resolution
// - 2026-08-19 v0.1.1: Added ordinality and component queries
//
// The forward mapping (FieldsToInstant) accepts overflowed fields and carries
// them arithmetically: month 13 is January of the following year, day 0 is the
// last day of the previous month, hour 25 is 01:00 of the next day. The
// reverse mapping (InstantToFields) always produces canonical fields. A civil
// time inside a DST gap or overlap resolves to whatever instant the calendar
// implementation picks; it is never an error.
//
// Only the proleptic Gregorian calendar ships with the library, implemented on
// the standard library time package. Additional calendars can be registered by
// identifier via Register.
package calendar
