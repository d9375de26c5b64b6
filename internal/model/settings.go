package model

import "github.com/google/uuid"

// DisplayMode controls what the compact display shows for the primary entry.
type DisplayMode string

const (
	DisplayModeFlagOnly     DisplayMode = "flag_only"
	DisplayModeLocationOnly DisplayMode = "location_only"
	DisplayModeBoth         DisplayMode = "both"
)

// Valid reports whether the mode is one of the known values.
func (m DisplayMode) Valid() bool {
	switch m {
	case DisplayModeFlagOnly, DisplayModeLocationOnly, DisplayModeBoth:
		return true
	}
	return false
}

// AppSettings holds the user's display and startup preferences.
// Equality is structural.
type AppSettings struct {
	Use24HourFormat    bool        `json:"use_24_hour_format"`
	ShowSeconds        bool        `json:"show_seconds"`
	ShowTimezoneOffset bool        `json:"show_timezone_offset"`
	LaunchAtLogin      bool        `json:"launch_at_login"`
	PrimaryTimezoneID  *uuid.UUID  `json:"primary_timezone_id,omitempty"`
	DisplayMode        DisplayMode `json:"display_mode"`
}

// DefaultSettings returns the canonical default settings.
func DefaultSettings() AppSettings {
	return AppSettings{
		Use24HourFormat:    true,
		ShowSeconds:        false,
		ShowTimezoneOffset: true,
		LaunchAtLogin:      false,
		PrimaryTimezoneID:  nil,
		DisplayMode:        DisplayModeBoth,
	}
}
