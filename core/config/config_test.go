// File: config_test.go
// Title: Date/Time Defaults Configuration Tests
// Description: Test suite for loading defaults from TOML and YAML files,
//              format detection, and applying defaults to the process.
// Author: tchason
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tchason/RBDateTime/calendar"
	"github.com/tchason/RBDateTime/core/calerr"
	"github.com/tchason/RBDateTime/datetime"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "defaults.toml", `
calendar = "gregorian"
timezone = "UTC"
`)

	defaults, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if defaults.Calendar != "gregorian" {
		t.Errorf("Calendar = %q, want %q", defaults.Calendar, "gregorian")
	}
	if defaults.TimeZone != "UTC" {
		t.Errorf("TimeZone = %q, want %q", defaults.TimeZone, "UTC")
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"defaults.yaml", "defaults.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "calendar: gregorian\ntimezone: Europe/Berlin\n")

			defaults, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			if defaults.Calendar != "gregorian" {
				t.Errorf("Calendar = %q, want %q", defaults.Calendar, "gregorian")
			}
			if defaults.TimeZone != "Europe/Berlin" {
				t.Errorf("TimeZone = %q, want %q", defaults.TimeZone, "Europe/Berlin")
			}
		})
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := writeFile(t, "defaults.toml", `timezone = "UTC"`)

	defaults, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if defaults.Calendar != "" {
		t.Errorf("Calendar = %q, want empty", defaults.Calendar)
	}
	if defaults.TimeZone != "UTC" {
		t.Errorf("TimeZone = %q, want %q", defaults.TimeZone, "UTC")
	}
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing file", filepath.Join(t.TempDir(), "nope.toml")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !calerr.HasCode(err, calerr.CodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", calerr.GetCode(err), calerr.CodeInvalidConfig)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "defaults.toml", "calendar = [broken")

	if _, err := Load(path); err == nil {
		t.Fatal("Load of malformed TOML should fail")
	}
}

func TestLoadFromString(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		format  Format
	}{
		{"toml", `timezone = "UTC"`, FormatTOML},
		{"yaml", "timezone: UTC", FormatYAML},
		{"auto defaults to toml", `timezone = "UTC"`, FormatAuto},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defaults, err := LoadFromString(tc.content, tc.format)
			if err != nil {
				t.Fatalf("LoadFromString: %v", err)
			}
			if defaults.TimeZone != "UTC" {
				t.Errorf("TimeZone = %q, want %q", defaults.TimeZone, "UTC")
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	testCases := []struct {
		path string
		want Format
	}{
		{"app.toml", FormatTOML},
		{"app.yaml", FormatYAML},
		{"app.yml", FormatYAML},
		{"app.YAML", FormatYAML},
		{"app.conf", FormatTOML},
		{"app", FormatTOML},
	}

	for _, tc := range testCases {
		if got := detectFormat(tc.path); got != tc.want {
			t.Errorf("detectFormat(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestApply(t *testing.T) {
	origCal := datetime.DefaultCalendar()
	origLoc := datetime.DefaultLocation()
	defer func() {
		datetime.SetDefaultCalendar(origCal)
		datetime.SetDefaultLocation(origLoc)
	}()

	defaults := &Defaults{Calendar: "gregorian", TimeZone: "UTC"}
	if err := defaults.Apply(); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if datetime.DefaultCalendar() != calendar.Gregorian {
		t.Error("default calendar was not installed")
	}
	if datetime.DefaultLocation() != time.UTC {
		t.Errorf("default location = %v, want UTC", datetime.DefaultLocation())
	}
}

func TestApplyEmptySkipsFields(t *testing.T) {
	origCal := datetime.DefaultCalendar()
	origLoc := datetime.DefaultLocation()
	defer func() {
		datetime.SetDefaultCalendar(origCal)
		datetime.SetDefaultLocation(origLoc)
	}()

	if err := (&Defaults{}).Apply(); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if datetime.DefaultCalendar() != origCal {
		t.Error("empty defaults changed the calendar")
	}
	if datetime.DefaultLocation() != origLoc {
		t.Error("empty defaults changed the location")
	}
}

func TestApplyErrors(t *testing.T) {
	testCases := []struct {
		name     string
		defaults Defaults
		code     calerr.Code
	}{
		{"unknown calendar", Defaults{Calendar: "julian"}, calerr.CodeUnknownCalendar},
		{"unknown zone", Defaults{TimeZone: "Narnia/Lantern"}, calerr.CodeInvalidTimeZone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.defaults.Apply()
			if err == nil {
				t.Fatal("Apply should fail")
			}
			if !calerr.HasCode(err, tc.code) {
				t.Errorf("error code = %v, want %v", calerr.GetCode(err), tc.code)
			}
		})
	}
}

func TestDefaultsString(t *testing.T) {
	testCases := []struct {
		defaults Defaults
		want     string
	}{
		{Defaults{}, "Defaults{}"},
		{Defaults{Calendar: "gregorian"}, "Defaults{calendar: gregorian}"},
		{Defaults{Calendar: "gregorian", TimeZone: "UTC"}, "Defaults{calendar: gregorian, timezone: UTC}"},
	}

	for _, tc := range testCases {
		if got := tc.defaults.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
