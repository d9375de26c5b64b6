package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajshahuk/macos-menubar-worldclock/internal/catalog"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/model"
)

func newService(t *testing.T, local string) *Service {
	t.Helper()
	loc, err := time.LoadLocation(local)
	require.NoError(t, err)
	return New(catalog.New(), loc)
}

func entry(identifier string) model.TimezoneEntry {
	return model.NewTimezoneEntry(identifier, identifier, "UN")
}

func TestService_FormattedTime(t *testing.T) {
	svc := newService(t, "America/New_York")
	// 12:00:05 UTC on a January day (no DST anywhere relevant).
	at := time.Date(2024, 1, 15, 12, 0, 5, 0, time.UTC)
	tokyo := entry("Asia/Tokyo")

	tests := []struct {
		name        string
		use24Hour   bool
		showSeconds bool
		expected    string
	}{
		{name: "24h with seconds", use24Hour: true, showSeconds: true, expected: "21:00:05"},
		{name: "24h without seconds", use24Hour: true, showSeconds: false, expected: "21:00"},
		{name: "12h with seconds", use24Hour: false, showSeconds: true, expected: "9:00:05 PM"},
		{name: "12h without seconds", use24Hour: false, showSeconds: false, expected: "9:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.FormattedTime(tokyo, tt.use24Hour, tt.showSeconds, at))
		})
	}
}

func TestService_FormattedTime_Patterns(t *testing.T) {
	svc := newService(t, "America/New_York")
	at := time.Date(2024, 6, 1, 3, 7, 9, 0, time.UTC)

	for _, ident := range []string{"Europe/London", "Asia/Kolkata", "Pacific/Auckland"} {
		e := entry(ident)
		assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`), svc.FormattedTime(e, true, true, at))
		assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}$`), svc.FormattedTime(e, true, false, at))
	}
}

func TestService_FormattedTime_Unresolvable(t *testing.T) {
	svc := newService(t, "America/New_York")
	at := time.Now()
	bogus := entry("Nowhere/Atlantis")

	for _, use24 := range []bool{true, false} {
		for _, seconds := range []bool{true, false} {
			assert.Equal(t, "--:--", svc.FormattedTime(bogus, use24, seconds, at))
		}
	}
}

func TestService_DayOffset(t *testing.T) {
	newYork := newService(t, "America/New_York")
	tokyo := newService(t, "Asia/Tokyo")

	tests := []struct {
		name     string
		svc      *Service
		target   string
		at       time.Time
		expected int
	}{
		{
			name:     "same day",
			svc:      newYork,
			target:   "Europe/London",
			at:       time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "next day within month",
			svc:      newYork,
			target:   "Asia/Tokyo",
			at:       time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "previous day within month",
			svc:      tokyo,
			target:   "America/New_York",
			at:       time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC),
			expected: -1,
		},
		{
			name:     "december to january wraparound",
			svc:      newYork,
			target:   "Asia/Tokyo",
			at:       time.Date(2023, 12, 31, 20, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "january back to december",
			svc:      tokyo,
			target:   "America/New_York",
			at:       time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC),
			expected: -1,
		},
		{
			name:     "month boundary forward",
			svc:      newYork,
			target:   "Asia/Tokyo",
			at:       time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.svc.DayOffset(entry(tt.target), tt.at))
		})
	}
}

func TestService_DayOffset_Unresolvable(t *testing.T) {
	svc := newService(t, "America/New_York")
	assert.Equal(t, 0, svc.DayOffset(entry("Nowhere/Atlantis"), time.Now()))
}

func TestService_HourOffset(t *testing.T) {
	// London in January is GMT, so targets read out as their raw UTC offsets.
	svc := newService(t, "Europe/London")
	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{name: "whole positive", target: "Asia/Tokyo", expected: "+9"},
		{name: "whole negative", target: "America/New_York", expected: "-5"},
		{name: "half hour", target: "Asia/Kolkata", expected: "+5.5"},
		{name: "three quarters", target: "Asia/Kathmandu", expected: "+5.8"},
		{name: "zero", target: "Europe/London", expected: "0"},
		{name: "unresolvable", target: "Nowhere/Atlantis", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.HourOffset(entry(tt.target), at))
		})
	}
}

func TestService_HourOffset_RelativeToLocal(t *testing.T) {
	svc := newService(t, "America/New_York")
	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "+14", svc.HourOffset(entry("Asia/Tokyo"), at))
	assert.Equal(t, "+10.5", svc.HourOffset(entry("Asia/Kolkata"), at))
	assert.Equal(t, "-5", svc.HourOffset(entry("Pacific/Honolulu"), at))
	assert.Equal(t, "0", svc.HourOffset(entry("America/New_York"), at))
}
