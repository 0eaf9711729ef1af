// File: defaults.go
// Title: Process-Wide Defaults
// Description: Holds the process-wide default calendar system and time zone
//              used by constructors that omit them. The defaults replace
//              hidden global singletons: they are set explicitly at startup,
//              either directly or through the core/config package.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-21 v0.1.0: Initial implementation

package datetime

import (
	"sync"
	"time"

	"github.com/tchason/RBDateTime/calendar"
)

var (
	defaultsMu sync.RWMutex
	defaultCal calendar.Calendar = calendar.Gregorian
	defaultLoc *time.Location    // nil means time.Local
)

// DefaultCalendar returns the process default calendar system, initially the
// Gregorian calendar.
func DefaultCalendar() calendar.Calendar {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultCal
}

// SetDefaultCalendar replaces the process default calendar system. A nil
// calendar is ignored.
func SetDefaultCalendar(c calendar.Calendar) {
	if c == nil {
		return
	}
	defaultsMu.Lock()
	defaultCal = c
	defaultsMu.Unlock()
}

// DefaultLocation returns the process default time zone, initially the local
// zone.
func DefaultLocation() *time.Location {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	if defaultLoc == nil {
		return time.Local
	}
	return defaultLoc
}

// SetDefaultLocation replaces the process default time zone. A nil location
// restores the local zone.
func SetDefaultLocation(loc *time.Location) {
	defaultsMu.Lock()
	defaultLoc = loc
	defaultsMu.Unlock()
}
