package catalog

import "strings"

// Place describes the city and country behind an IANA timezone identifier.
type Place struct {
	CityName    string
	CountryName string
	CountryCode string
}

// Catalog is an immutable identifier -> Place mapping, built once.
type Catalog struct {
	places map[string]Place
}

// New builds the catalog by merging the curated entries with a
// synthesized fallback for every other identifier known to the host
// zoneinfo registry. Curated entries always win.
func New() *Catalog {
	places := make(map[string]Place, len(curated)+512)

	for _, ident := range platformIdentifiers() {
		places[ident] = FallbackPlace(ident)
	}
	for ident, place := range curated {
		places[ident] = place
	}

	return &Catalog{places: places}
}

// Lookup returns the place for an identifier.
func (c *Catalog) Lookup(identifier string) (Place, bool) {
	p, ok := c.places[identifier]
	return p, ok
}

// Identifiers returns every identifier in the catalog, in map order.
func (c *Catalog) Identifiers() []string {
	idents := make([]string, 0, len(c.places))
	for ident := range c.places {
		idents = append(idents, ident)
	}
	return idents
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.places)
}

// FallbackPlace synthesizes a coarse place from the identifier alone:
// city is the last path segment with underscores replaced by spaces,
// country is the leading region segment verbatim. It is a display aid,
// not authoritative geopolitical data.
func FallbackPlace(identifier string) Place {
	segments := strings.Split(identifier, "/")
	city := strings.ReplaceAll(segments[len(segments)-1], "_", " ")
	region := segments[0]
	return Place{
		CityName:    city,
		CountryName: region,
		CountryCode: RegionCode(region),
	}
}

// regionCodes maps a leading identifier region to a representative
// country code used for the fallback flag glyph.
var regionCodes = map[string]string{
	"America":    "US",
	"Europe":     "EU",
	"Asia":       "CN",
	"Australia":  "AU",
	"Africa":     "ZA",
	"Pacific":    "NZ",
	"Atlantic":   "PT",
	"Indian":     "IN",
	"Antarctica": "AQ",
}

// RegionCode returns the fallback country code for a region segment,
// or "UN" for unknown regions.
func RegionCode(region string) string {
	if code, ok := regionCodes[region]; ok {
		return code
	}
	return "UN"
}
