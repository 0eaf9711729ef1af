// File: options.go
// Title: Construction Options
// Description: Implements the functional options accepted by the DateTime
//              constructors for binding an explicit calendar system or time
//              zone, with unresolvable names deferred to the constructor's
//              error return.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package datetime

import (
	"time"

	"github.com/tchason/RBDateTime/calendar"
)

// Option customizes the calendar system or time zone a constructor binds to
// the new value.
type Option func(*options)

type options struct {
	cal calendar.Calendar
	loc *time.Location
	err error
}

// WithCalendar binds the given calendar system.
func WithCalendar(c calendar.Calendar) Option {
	return func(o *options) {
		o.cal = c
	}
}

// WithCalendarName binds the calendar registered under the given identifier.
// An unknown identifier fails the constructor with an unknown-calendar error.
func WithCalendarName(identifier string) Option {
	return func(o *options) {
		c, err := calendar.Resolve(identifier)
		if err != nil {
			o.err = err
			return
		}
		o.cal = c
	}
}

// WithLocation binds the given time zone.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.loc = loc
	}
}

// WithZone binds the time zone with the given name ("UTC", "Local", or an
// IANA identifier). An unknown name fails the constructor.
func WithZone(name string) Option {
	return func(o *options) {
		loc, err := calendar.Zone(name)
		if err != nil {
			o.err = err
			return
		}
		o.loc = loc
	}
}

// resolveOptions applies the options and fills unbound slots from the process
// defaults.
func resolveOptions(opts []Option) (calendar.Calendar, *time.Location, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	if o.cal == nil {
		o.cal = DefaultCalendar()
	}
	if o.loc == nil {
		o.loc = DefaultLocation()
	}
	return o.cal, o.loc, nil
}
