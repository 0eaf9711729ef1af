// Package calerr provides structured error handling for the RBDateTime library.
//
// Package: calerr
// Title: RBDateTime Error Handling
// Description: This package implements a small structured error type with error
//              codes and contextual details for calendar and time-zone failures.
//              The taxonomy is deliberately narrow: ordinary calendar field
//              overflow is never an error (it is resolved by normalization), so
//              only genuinely unresolvable inputs - unknown calendar
//              identifiers, unknown time zones, unloadable configuration -
//              surface through this package.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with codes and contextual details
//
// Usage:
//
//	import "github.com/tchason/RBDateTime/core/calerr"
//
//	err := calerr.New("unknown calendar identifier").
//		WithCode(calerr.CodeUnknownCalendar).
//		WithOperation("calendar.Resolve").
//		WithDetail("identifier", id)
//
//	if calerr.HasCode(err, calerr.CodeUnknownCalendar) {
//		// fall back to the default calendar
//	}
package calerr
