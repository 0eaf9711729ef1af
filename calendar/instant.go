// File: instant.go
// Title: Absolute Instant Value
// Description: Implements the Instant type, an absolute point on a continuous
//              time axis measured in seconds and nanoseconds since the Unix
//              epoch, independent of any calendar or time zone.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package calendar

import "time"

const nanosPerSecond = 1_000_000_000

// Instant is an absolute point in time: whole seconds since the Unix epoch
// plus a nanosecond remainder in [0, 1e9). Instants compare and subtract
// without reference to a calendar or zone.
//
// The zero Instant is the Unix epoch, 1970-01-01T00:00:00Z.
type Instant struct {
	sec  int64
	nsec int32
}

// NewInstant returns the Instant sec seconds and nsec nanoseconds after the
// Unix epoch. nsec may be outside [0, 1e9) and is normalized into range,
// borrowing from or carrying into sec.
func NewInstant(sec, nsec int64) Instant {
	sec += nsec / nanosPerSecond
	nsec %= nanosPerSecond
	if nsec < 0 {
		sec--
		nsec += nanosPerSecond
	}
	return Instant{sec: sec, nsec: int32(nsec)}
}

// InstantOf returns the Instant at which t occurs.
func InstantOf(t time.Time) Instant {
	return Instant{sec: t.Unix(), nsec: int32(t.Nanosecond())}
}

// Unix returns the whole seconds since the Unix epoch.
func (i Instant) Unix() int64 {
	return i.sec
}

// Nanosecond returns the nanosecond remainder in [0, 1e9).
func (i Instant) Nanosecond() int {
	return int(i.nsec)
}

// Time returns the instant as a time.Time in the given location. A nil
// location means the local time zone.
func (i Instant) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(i.sec, int64(i.nsec)).In(loc)
}

// Equal reports whether two instants denote the same point in time.
func (i Instant) Equal(other Instant) bool {
	return i.sec == other.sec && i.nsec == other.nsec
}

// Compare returns -1 if i is before other, 0 if equal, and +1 if after.
func (i Instant) Compare(other Instant) int {
	switch {
	case i.sec < other.sec:
		return -1
	case i.sec > other.sec:
		return 1
	case i.nsec < other.nsec:
		return -1
	case i.nsec > other.nsec:
		return 1
	default:
		return 0
	}
}

// Before reports whether i is strictly before other.
func (i Instant) Before(other Instant) bool {
	return i.Compare(other) < 0
}

// After reports whether i is strictly after other.
func (i Instant) After(other Instant) bool {
	return i.Compare(other) > 0
}

// Sub returns the difference i - other as whole seconds and a nanosecond
// remainder. The remainder is kept in [0, 1e9), so a negative difference has
// a negative second count (for example -0.5s is sec=-1, nsec=5e8).
func (i Instant) Sub(other Instant) (sec int64, nsec int64) {
	sec = i.sec - other.sec
	nsec = int64(i.nsec) - int64(other.nsec)
	if nsec < 0 {
		sec--
		nsec += nanosPerSecond
	}
	return sec, nsec
}
