// File: doc.go
// Title: Package Documentation for Date/Time Configuration
// Description: Provides comprehensive documentation for the config package
//              including usage examples and design decisions.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial documentation

// Package config loads process-wide date/time defaults from TOML or YAML
// files and installs them into the datetime package.
//
// The configuration surface is deliberately small. A defaults file names
// the calendar system and time zone that new date/time values fall back to
// when the caller does not choose explicitly:
//
//	calendar = "gregorian"
//	timezone = "Europe/Berlin"
//
// or, in YAML:
//
//	calendar: gregorian
//	timezone: Europe/Berlin
//
// # File Formats
//
// The file format is detected from the extension: .toml files are parsed
// as TOML, .yaml and .yml files as YAML. Unknown extensions default to
// TOML. LoadFromString accepts an explicit Format for callers that carry
// configuration in memory.
//
// # Usage
//
//	defaults, err := config.Load("rbdt.toml")
//	if err != nil {
//		return err
//	}
//	if err := defaults.Apply(); err != nil {
//		return err
//	}
//
// Apply resolves the named calendar and time zone eagerly, so a typo in
// the file surfaces at startup rather than on first use. Both fields are
// optional; an empty field leaves the corresponding process default
// untouched.
//
// # Error Handling
//
// All errors carry calerr codes. Unreadable or unparseable files report
// CodeInvalidConfig; an unknown calendar or zone name reports the code of
// the underlying resolution failure.
package config
