// File: config.go
// Title: Date/Time Defaults Configuration Implementation
// Description: Implements loading of process-wide calendar and time-zone
//              defaults from TOML and YAML files, with format auto-detection
//              and eager validation on apply.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tchason/RBDateTime/calendar"
	"github.com/tchason/RBDateTime/core/calerr"
	"github.com/tchason/RBDateTime/datetime"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Defaults holds the process-wide date/time defaults read from a
// configuration file. Empty fields leave the corresponding process
// default unchanged when applied.
type Defaults struct {
	// Calendar names the calendar system new values fall back to,
	// e.g. "gregorian".
	Calendar string `toml:"calendar" yaml:"calendar"`

	// TimeZone names the time zone new values fall back to. Accepts
	// IANA names plus the shorthands "UTC" and "Local".
	TimeZone string `toml:"timezone" yaml:"timezone"`
}

// Load reads date/time defaults from a file, detecting the format from
// the file extension.
func Load(filePath string) (*Defaults, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, calerr.New("config file path cannot be empty").
			WithCode(calerr.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, calerr.Wrap(err, "failed to read config file").
			WithCode(calerr.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	defaults, err := parseContent(content, detectFormat(filePath))
	if err != nil {
		return nil, calerr.Wrap(err, "failed to parse config file").
			WithCode(calerr.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	return defaults, nil
}

// LoadFromString parses date/time defaults from a string with the given
// format. FormatAuto falls back to TOML.
func LoadFromString(content string, format Format) (*Defaults, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	defaults, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, calerr.Wrap(err, "failed to parse config from string").
			WithCode(calerr.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return defaults, nil
}

// detectFormat determines the configuration format from the file extension
func detectFormat(filePath string) Format {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (*Defaults, error) {
	var defaults Defaults

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &defaults); err != nil {
			return nil, calerr.Wrap(err, "TOML parse error").
				WithCode(calerr.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &defaults); err != nil {
			return nil, calerr.Wrap(err, "YAML parse error").
				WithCode(calerr.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, calerr.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(calerr.CodeInvalidConfig).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return &defaults, nil
}

// Apply resolves the configured names and installs them as the process
// defaults. Resolution is eager, so an unknown calendar or time zone is
// reported here instead of on first use. Empty fields are skipped.
func (d *Defaults) Apply() error {
	if d.Calendar != "" {
		cal, err := calendar.Resolve(d.Calendar)
		if err != nil {
			return calerr.Wrap(err, "cannot apply calendar default").
				WithOperation("config.Apply").
				WithDetail("calendar", d.Calendar)
		}
		datetime.SetDefaultCalendar(cal)
	}

	if d.TimeZone != "" {
		loc, err := calendar.Zone(d.TimeZone)
		if err != nil {
			return calerr.Wrap(err, "cannot apply time zone default").
				WithOperation("config.Apply").
				WithDetail("timezone", d.TimeZone)
		}
		datetime.SetDefaultLocation(loc)
	}

	return nil
}

// String provides a readable representation of the defaults
func (d *Defaults) String() string {
	parts := make([]string, 0, 2)
	if d.Calendar != "" {
		parts = append(parts, fmt.Sprintf("calendar: %s", d.Calendar))
	}
	if d.TimeZone != "" {
		parts = append(parts, fmt.Sprintf("timezone: %s", d.TimeZone))
	}
	if len(parts) == 0 {
		return "Defaults{}"
	}
	return "Defaults{" + strings.Join(parts, ", ") + "}"
}
