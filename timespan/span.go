// File: span.go
// Title: Span Implementation
// Description: Implements the Span value type: construction from explicit
//              fields or from the difference between two instants, negation,
//              and conversion to time.Duration.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
// - 2026-08-29 v0.1.1: Truncate negative sub-millisecond remainders toward zero

package timespan

import (
	"fmt"
	"strings"
	"time"

	"github.com/tchason/RBDateTime/calendar"
)

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// Span is an amount of elapsed time split into days, hours, minutes, seconds,
// and milliseconds. In a canonical Span produced by Between all fields carry
// the same sign and the sub-day fields sit in their natural ranges; a Span
// built with New may hold arbitrary values, which consumers normalize through
// calendar arithmetic.
type Span struct {
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// New returns a Span with the given field values.
func New(days, hours, minutes, seconds, milliseconds int) Span {
	return Span{
		Days:         days,
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Milliseconds: milliseconds,
	}
}

// Between returns the elapsed time from one instant to another, decomposed
// greedily into days, hours, minutes, seconds, and milliseconds. If to is
// before from, every field of the result is negative or zero. Sub-millisecond
// remainders are truncated.
func Between(from, to calendar.Instant) Span {
	sec, nsec := to.Sub(from)
	// Sub yields a floored pair (negative seconds, non-negative
	// nanoseconds). Rebuild it sign-consistent so the millisecond
	// division truncates toward zero instead of flooring.
	if sec < 0 && nsec > 0 {
		sec++
		nsec -= 1_000_000_000
	}
	total := sec*millisPerSecond + nsec/1_000_000

	neg := total < 0
	if neg {
		total = -total
	}

	s := Span{
		Days:         int(total / millisPerDay),
		Hours:        int(total % millisPerDay / millisPerHour),
		Minutes:      int(total % millisPerHour / millisPerMinute),
		Seconds:      int(total % millisPerMinute / millisPerSecond),
		Milliseconds: int(total % millisPerSecond),
	}
	if neg {
		s = s.Negated()
	}
	return s
}

// IsZero reports whether every field of the span is zero.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Negated returns the span with every field's sign inverted.
func (s Span) Negated() Span {
	return Span{
		Days:         -s.Days,
		Hours:        -s.Hours,
		Minutes:      -s.Minutes,
		Seconds:      -s.Seconds,
		Milliseconds: -s.Milliseconds,
	}
}

// Duration returns the span as a time.Duration, treating every day as exactly
// 24 hours. Calendar effects (DST transitions) are not represented; use the
// datetime package's span arithmetic for calendar-aware addition.
func (s Span) Duration() time.Duration {
	return time.Duration(s.Days)*24*time.Hour +
		time.Duration(s.Hours)*time.Hour +
		time.Duration(s.Minutes)*time.Minute +
		time.Duration(s.Seconds)*time.Second +
		time.Duration(s.Milliseconds)*time.Millisecond
}

// String returns a compact rendering such as "1d 2h 30m 45s 500ms". Zero
// fields are omitted; the zero span renders as "0s".
func (s Span) String() string {
	if s.IsZero() {
		return "0s"
	}

	var parts []string
	if s.Days != 0 {
		parts = append(parts, fmt.Sprintf("%dd", s.Days))
	}
	if s.Hours != 0 {
		parts = append(parts, fmt.Sprintf("%dh", s.Hours))
	}
	if s.Minutes != 0 {
		parts = append(parts, fmt.Sprintf("%dm", s.Minutes))
	}
	if s.Seconds != 0 {
		parts = append(parts, fmt.Sprintf("%ds", s.Seconds))
	}
	if s.Milliseconds != 0 {
		parts = append(parts, fmt.Sprintf("%dms", s.Milliseconds))
	}
	return strings.Join(parts, " ")
}
