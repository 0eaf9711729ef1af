// File: zones.go
// Title: Time Zone Resolution
// Description: Resolves time-zone names (IANA identifiers plus the "UTC" and
//              "Local" shorthands) to time.Location values, caching lookups
//              behind an RWMutex since zone database loads touch the file
//              system.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with cached lookups

package calendar

import (
	"strings"
	"sync"
	"time"

	"github.com/tchason/RBDateTime/core/calerr"
)

var (
	zoneCache = make(map[string]*time.Location)
	zoneMu    sync.RWMutex
)

// Zone resolves a time-zone name to a location. "UTC" and "Local" (case
// insensitive) are recognized shorthands; any other name is looked up in the
// IANA time-zone database. Successful lookups are cached for the lifetime of
// the process.
func Zone(name string) (*time.Location, error) {
	switch strings.ToLower(name) {
	case "utc":
		return time.UTC, nil
	case "local", "":
		return time.Local, nil
	}

	zoneMu.RLock()
	if loc, ok := zoneCache[name]; ok {
		zoneMu.RUnlock()
		return loc, nil
	}
	zoneMu.RUnlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, calerr.Wrap(err, "unknown time zone").
			WithCode(calerr.CodeInvalidTimeZone).
			WithOperation("calendar.Zone").
			WithDetail("name", name)
	}

	zoneMu.Lock()
	zoneCache[name] = loc
	zoneMu.Unlock()

	return loc, nil
}
