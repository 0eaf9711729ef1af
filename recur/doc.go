// File: doc.go
// Title: Package Documentation for Recurrence Schedules
// Description: Provides documentation for the recur package including
//              usage examples and expansion semantics.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-21 v0.1.0: Initial documentation

// Package recur expands recurrence rules into concrete date/time
// occurrences.
//
// A Schedule is built from a Rule anchored at a datetime.DateTime. The
// rule names the repetition frequency along with an optional interval,
// occurrence count, and end bound:
//
//	start, _ := datetime.Date(2026, 1, 5, datetime.WithZone("UTC"))
//	sched, err := recur.NewSchedule(start, recur.Rule{
//		Freq:     recur.Weekly,
//		Interval: 2,
//		Count:    10,
//	})
//	if err != nil {
//		return err
//	}
//	occurrences, err := sched.Between(from, to)
//
// Between returns every occurrence inside the inclusive window, each
// converted back into a datetime.DateTime presented in the anchor's time
// zone. Individual occurrences can be removed with Exclude before
// expansion.
//
// Expansion is capped at a fixed occurrence count per window so that an
// unbounded rule over a huge window cannot exhaust memory; hitting the
// cap is reported as an error rather than silently truncating.
//
// The package is built on github.com/teambition/rrule-go and therefore
// follows RFC 5545 recurrence semantics.
package recur
