// Package timespan implements the elapsed-time companion value of the
// RBDateTime library.
//
// Package: timespan
// Title: Day/Hour/Minute/Second/Millisecond Spans
// Description: This package provides the Span type, an amount of elapsed time
//              split into day, hour, minute, second, and millisecond fields.
//              The fields stay discrete instead of collapsing into a single
//              nanosecond count because the datetime package feeds them into
//              calendar-aware field arithmetic, where each unit is applied to
//              its own calendar field before a single normalization pass.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
//
// Spans do not carry year or month granularity: those units have no fixed
// length, so elapsed time between two instants can only be stated in days and
// smaller units.
package timespan
