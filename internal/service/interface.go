package service

import (
	"time"

	"github.com/rajshahuk/macos-menubar-worldclock/internal/model"
)

// Interface defines the timezone service surface for testing
type Interface interface {
	FormattedTime(entry model.TimezoneEntry, use24Hour, showSeconds bool, at time.Time) string
	DayOffset(entry model.TimezoneEntry, at time.Time) int
	HourOffset(entry model.TimezoneEntry, at time.Time) string
	Search(query string) []model.TimezoneSearchResult
}
