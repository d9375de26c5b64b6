package service

import (
	"fmt"
	"time"

	"github.com/rajshahuk/macos-menubar-worldclock/internal/catalog"
	"github.com/rajshahuk/macos-menubar-worldclock/internal/model"
)

// unresolvableTime is returned whenever an entry's identifier cannot be
// resolved against the host timezone registry.
const unresolvableTime = "--:--"

// Service computes formatted times and offsets for timezone entries and
// searches the catalog. Offsets are computed relative to the local zone
// the service was constructed with.
type Service struct {
	catalog *catalog.Catalog
	local   *time.Location
}

// New creates a service instance. Production callers pass time.Local;
// tests inject a fixed zone for determinism.
func New(cat *catalog.Catalog, local *time.Location) *Service {
	if local == nil {
		local = time.Local
	}
	return &Service{catalog: cat, local: local}
}

// FormattedTime renders the instant in the entry's zone using one of
// four layouts selected by the two flags. The 12-hour layouts leave the
// hour unpadded. Unresolvable identifiers yield "--:--".
func (s *Service) FormattedTime(entry model.TimezoneEntry, use24Hour, showSeconds bool, at time.Time) string {
	loc := entry.Location()
	if loc == nil {
		return unresolvableTime
	}

	var layout string
	switch {
	case use24Hour && showSeconds:
		layout = "15:04:05"
	case use24Hour:
		layout = "15:04"
	case showSeconds:
		layout = "3:04:05 PM"
	default:
		layout = "3:04 PM"
	}
	return at.In(loc).Format(layout)
}

// DayOffset returns a coarse -1/0/+1 signal for whether the entry's
// calendar day is behind, level with, or ahead of the local day at the
// given instant. It is only meaningful for real-world zone offsets
// within about 24 hours; larger gaps are unspecified and not handled.
func (s *Service) DayOffset(entry model.TimezoneEntry, at time.Time) int {
	loc := entry.Location()
	if loc == nil {
		return 0
	}

	local := at.In(s.local)
	target := at.In(loc)

	if local.Month() == target.Month() {
		return target.Day() - local.Day()
	}
	// Months differ only at a boundary: target is one day ahead when its
	// month is the chronological successor, December to January included.
	if target.Month() == local.Month()%12+1 {
		return 1
	}
	return -1
}

// HourOffset returns the signed difference between the entry's UTC
// offset and the local UTC offset, in hours: "0" when equal, "+9" or
// "-5" for whole hours, "+5.5" for fractional ones. Unresolvable
// identifiers yield "".
func (s *Service) HourOffset(entry model.TimezoneEntry, at time.Time) string {
	loc := entry.Location()
	if loc == nil {
		return ""
	}

	_, targetOffset := at.In(loc).Zone()
	_, localOffset := at.In(s.local).Zone()

	diff := float64(targetOffset-localOffset) / 3600
	if diff == 0 {
		return "0"
	}
	if diff == float64(int(diff)) {
		return fmt.Sprintf("%+d", int(diff))
	}
	return fmt.Sprintf("%+.1f", diff)
}
