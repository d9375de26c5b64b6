package service

import (
	"sort"
	"strings"

	"github.com/rajshahuk/macos-menubar-worldclock/internal/model"
)

// Search performs case-insensitive substring matching of the query
// against each catalog entry's city name, country name, and raw
// identifier. Results carry one entry per catalog identifier and are
// sorted ascending by city name. An empty query returns nothing.
func (s *Service) Search(query string) []model.TimezoneSearchResult {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var results []model.TimezoneSearchResult
	for _, ident := range s.catalog.Identifiers() {
		place, ok := s.catalog.Lookup(ident)
		if !ok {
			continue
		}
		if !strings.Contains(strings.ToLower(place.CityName), needle) &&
			!strings.Contains(strings.ToLower(place.CountryName), needle) &&
			!strings.Contains(strings.ToLower(ident), needle) {
			continue
		}
		results = append(results, model.NewTimezoneSearchResult(ident, place.CityName, place.CountryCode, place.CountryName))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CityName < results[j].CityName
	})
	return results
}
