// File: recur.go
// Title: Recurrence Schedule Implementation
// Description: Implements recurrence rules and schedule expansion over
//              RFC 5545 semantics, converting occurrences back into
//              calendar-aware date/time values.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-21 v0.1.0: Initial implementation
// - 2026-08-29 v0.1.1: Enforce the occurrence cap during iteration

package recur

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/tchason/RBDateTime/core/calerr"
	"github.com/tchason/RBDateTime/datetime"
)

// maxOccurrencesPerWindow caps a single Between expansion so that an
// unbounded rule over a huge window cannot exhaust memory.
const maxOccurrencesPerWindow = 5000

// ===============================
// Rule definition
// ===============================

// Freq represents the repetition frequency of a rule
type Freq int

const (
	// Yearly repeats once per year
	Yearly Freq = iota

	// Monthly repeats once per month
	Monthly

	// Weekly repeats once per week
	Weekly

	// Daily repeats once per day
	Daily
)

// String returns the string representation of the frequency
func (f Freq) String() string {
	switch f {
	case Yearly:
		return "yearly"
	case Monthly:
		return "monthly"
	case Weekly:
		return "weekly"
	case Daily:
		return "daily"
	default:
		return "unknown"
	}
}

// frequency maps a Freq onto the underlying RFC 5545 frequency.
func (f Freq) frequency() (rrule.Frequency, bool) {
	switch f {
	case Yearly:
		return rrule.YEARLY, true
	case Monthly:
		return rrule.MONTHLY, true
	case Weekly:
		return rrule.WEEKLY, true
	case Daily:
		return rrule.DAILY, true
	default:
		return 0, false
	}
}

// Rule describes a repetition pattern. Zero-valued optional fields are
// unlimited: Interval defaults to 1, Count and Until to unbounded.
type Rule struct {
	// Freq is the repetition frequency.
	Freq Freq

	// Interval stretches the frequency, e.g. Weekly with Interval 2
	// repeats every other week.
	Interval int

	// Count limits the total number of occurrences.
	Count int

	// Until bounds the last occurrence (inclusive).
	Until *datetime.DateTime
}

// ===============================
// Schedule
// ===============================

// Schedule is a recurrence rule anchored at a concrete start value,
// ready for expansion. A Schedule is not safe for concurrent mutation;
// build and exclude first, then expand.
type Schedule struct {
	start datetime.DateTime
	set   *rrule.Set
}

// NewSchedule anchors rule at start. The start value itself is the first
// occurrence, as RFC 5545 prescribes.
func NewSchedule(start datetime.DateTime, rule Rule) (*Schedule, error) {
	freq, ok := rule.Freq.frequency()
	if !ok {
		return nil, calerr.New("unknown recurrence frequency").
			WithCode(calerr.CodeInvalidCalendarFields).
			WithOperation("recur.NewSchedule").
			WithDetail("freq", int(rule.Freq))
	}

	opt := rrule.ROption{
		Freq:     freq,
		Interval: rule.Interval,
		Count:    rule.Count,
		Dtstart:  start.Time(),
	}
	if rule.Until != nil {
		opt.Until = rule.Until.Time()
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, calerr.Wrap(err, "invalid recurrence rule").
			WithCode(calerr.CodeInvalidCalendarFields).
			WithOperation("recur.NewSchedule").
			WithDetail("freq", rule.Freq.String())
	}

	set := &rrule.Set{}
	set.RRule(r)

	return &Schedule{start: start, set: set}, nil
}

// Start returns the anchor of the schedule.
func (s *Schedule) Start() datetime.DateTime {
	return s.start
}

// Exclude removes a single occurrence from the schedule. The excluded
// value must match an occurrence instant exactly to have any effect.
func (s *Schedule) Exclude(dt datetime.DateTime) {
	// Align with the anchor's zone so instant comparison inside the
	// rule set works on equal footing.
	s.set.ExDate(dt.Time().In(s.start.Location()))
}

// Between expands the schedule inside the inclusive window [from, to].
// Each occurrence is presented in the anchor's time zone.
func (s *Schedule) Between(from, to datetime.DateTime) ([]datetime.DateTime, error) {
	if to.Before(from) {
		return nil, calerr.New("window end precedes window start").
			WithCode(calerr.CodeInvalidCalendarFields).
			WithOperation("recur.Between").
			WithDetail("from", from.String()).
			WithDetail("to", to.String())
	}

	loc := s.start.Location()
	lo := from.Time().In(loc)
	hi := to.Time().In(loc)

	// Walk the rule set occurrence by occurrence so the cap bounds the
	// allocation itself, not just the returned slice.
	times := make([]time.Time, 0)
	next := s.set.Iterator()
	for {
		t, ok := next()
		if !ok {
			break
		}
		if t.Before(lo) {
			continue
		}
		if t.After(hi) {
			break
		}
		if len(times) == maxOccurrencesPerWindow {
			return nil, calerr.New("occurrence cap exceeded").
				WithCode(calerr.CodeInvalidCalendarFields).
				WithOperation("recur.Between").
				WithDetail("cap", maxOccurrencesPerWindow)
		}
		times = append(times, t)
	}

	return s.convert(times), nil
}

// Next returns the first occurrence strictly after dt, or false when the
// schedule is exhausted.
func (s *Schedule) Next(dt datetime.DateTime) (datetime.DateTime, bool) {
	t := s.set.After(dt.Time().In(s.start.Location()), false)
	if t.IsZero() {
		return datetime.DateTime{}, false
	}
	return datetime.FromTime(t.In(s.start.Location())), true
}

func (s *Schedule) convert(times []time.Time) []datetime.DateTime {
	loc := s.start.Location()
	out := make([]datetime.DateTime, 0, len(times))
	for _, t := range times {
		out = append(out, datetime.FromTime(t.In(loc)))
	}
	return out
}
