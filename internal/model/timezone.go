package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimezoneEntry represents a single clock in the user's list.
// Identity is the ID alone: two entries with identical fields but
// different IDs are distinct entries.
type TimezoneEntry struct {
	ID                 uuid.UUID `json:"id"`
	TimezoneIdentifier string    `json:"timezone_identifier"`
	CityName           string    `json:"city_name"`
	CountryCode        string    `json:"country_code"`
}

// NewTimezoneEntry creates an entry with a fresh ID.
func NewTimezoneEntry(identifier, cityName, countryCode string) TimezoneEntry {
	return TimezoneEntry{
		ID:                 uuid.New(),
		TimezoneIdentifier: identifier,
		CityName:           cityName,
		CountryCode:        countryCode,
	}
}

// Location resolves the entry's IANA identifier against the host
// zoneinfo registry. Returns nil when the identifier is unknown.
// Computed on demand, never cached.
func (e TimezoneEntry) Location() *time.Location {
	loc, err := time.LoadLocation(e.TimezoneIdentifier)
	if err != nil {
		return nil
	}
	return loc
}

// regionalIndicatorBase is U+1F1E6 REGIONAL INDICATOR SYMBOL LETTER A.
const regionalIndicatorBase = 0x1F1E6

// FlagEmoji derives the flag glyph from the two-letter country code by
// mapping each letter to its Unicode regional indicator. Invalid codes
// silently produce a malformed or empty glyph.
func (e TimezoneEntry) FlagEmoji() string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(e.CountryCode) {
		if r < 'A' || r > 'Z' {
			continue
		}
		sb.WriteRune(regionalIndicatorBase + r - 'A')
	}
	return sb.String()
}

// TimezoneSearchResult is a transient catalog match. Its ID is fresh
// per construction and is never persisted.
type TimezoneSearchResult struct {
	ID                 uuid.UUID
	TimezoneIdentifier string
	CityName           string
	CountryCode        string
	CountryName        string
}

// NewTimezoneSearchResult creates a search result with an ephemeral ID.
func NewTimezoneSearchResult(identifier, cityName, countryCode, countryName string) TimezoneSearchResult {
	return TimezoneSearchResult{
		ID:                 uuid.New(),
		TimezoneIdentifier: identifier,
		CityName:           cityName,
		CountryCode:        countryCode,
		CountryName:        countryName,
	}
}

// ToEntry converts the search result into a list entry with a brand-new ID.
func (r TimezoneSearchResult) ToEntry() TimezoneEntry {
	return NewTimezoneEntry(r.TimezoneIdentifier, r.CityName, r.CountryCode)
}
