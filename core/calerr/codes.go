// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the RBDateTime library for
//              classifying calendar, time-zone, and configuration failures.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with the core code set

package calerr

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the RBDateTime library
const (
	// CodeUnknown is the default code for uncategorized errors
	CodeUnknown Code = "UNKNOWN"

	// CodeUnknownCalendar reports a calendar identifier with no registered
	// implementation
	CodeUnknownCalendar Code = "UNKNOWN_CALENDAR"

	// CodeInvalidCalendarFields reports fields the bound calendar system
	// cannot resolve to any instant; ordinary overflow never carries this code
	CodeInvalidCalendarFields Code = "INVALID_CALENDAR_FIELDS"

	// CodeInvalidTimeZone reports a time-zone name that cannot be resolved
	CodeInvalidTimeZone Code = "INVALID_TIME_ZONE"

	// CodeAmbiguousLocalTime reports a civil time inside a DST gap or overlap.
	// The library itself never fails with this code - disambiguation is
	// delegated to the calendar system - but pluggable calendars may use it
	// to annotate the resolution they picked.
	CodeAmbiguousLocalTime Code = "AMBIGUOUS_LOCAL_TIME"

	// CodeInvalidConfig reports an unreadable or malformed defaults file
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeUnknownCalendar, CodeInvalidCalendarFields,
		CodeInvalidTimeZone, CodeAmbiguousLocalTime, CodeInvalidConfig:
		return true
	default:
		return false
	}
}
