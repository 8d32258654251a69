package ingestion

import (
	"net/url"
	"strings"

	"github.com/fractionalquest/fractional-quest/internal/types"
)

// ukCities is the allow-list of cities with their own landing pages.
var ukCities = []string{
	"London",
	"Manchester",
	"Birmingham",
	"Leeds",
	"Glasgow",
	"Edinburgh",
	"Bristol",
	"Liverpool",
	"Sheffield",
	"Newcastle",
	"Nottingham",
	"Cardiff",
	"Belfast",
	"Cambridge",
	"Oxford",
	"Reading",
	"Leicester",
	"Southampton",
	"Brighton",
	"Milton Keynes",
}

var countryNames = map[string]string{
	"united kingdom":           types.CountryUK,
	"uk":                       types.CountryUK,
	"u.k.":                     types.CountryUK,
	"great britain":            types.CountryUK,
	"gb":                       types.CountryUK,
	"england":                  types.CountryUK,
	"scotland":                 types.CountryUK,
	"wales":                    types.CountryUK,
	"northern ireland":         types.CountryUK,
	"united states":            "United States",
	"united states of america": "United States",
	"usa":                      "United States",
	"us":                       "United States",
	"ireland":                  "Ireland",
	"republic of ireland":      "Ireland",
	"germany":                  "Germany",
	"deutschland":              "Germany",
	"netherlands":              "Netherlands",
	"the netherlands":          "Netherlands",
}

// UKCities returns the city allow-list.
func UKCities() []string {
	return append([]string(nil), ukCities...)
}

// NormalizeCountry maps a country name through the lookup table; unknown names
// pass through verbatim. Empty input yields nil.
func NormalizeCountry(country string) *string {
	c := strings.TrimSpace(country)
	if c == "" {
		return nil
	}
	if canonical, ok := countryNames[strings.ToLower(c)]; ok {
		return &canonical
	}
	return &c
}

// NormalizeCity picks the landing-page city for a posting. Remote postings are
// always "Remote". Postings in the UK, or with no derived country, take the
// first allow-listed city; UK postings without one are "Other UK". Everything
// else is "International", even when its city shares a UK city's name.
func NormalizeCity(remote bool, cities []string, country *string) string {
	if remote {
		return types.CityRemote
	}
	inUK := country != nil && *country == types.CountryUK
	if country == nil || inUK {
		for _, candidate := range cities {
			if city, ok := matchUKCity(candidate); ok {
				return city
			}
		}
	}
	if inUK {
		return types.CityOtherUK
	}
	return types.CityInternational
}

// matchUKCity matches exact names and common longer forms such as
// "City of London" or "Newcastle upon Tyne".
func matchUKCity(candidate string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(candidate))
	if c == "" {
		return "", false
	}
	for _, city := range ukCities {
		lc := strings.ToLower(city)
		if c == lc || strings.HasPrefix(c, lc+" ") || strings.HasSuffix(c, " "+lc) {
			return city, true
		}
	}
	return "", false
}

// CompanyDomain extracts the bare host from an organization URL, dropping a
// leading "www.". It returns nil when the URL cannot be parsed or has no host.
func CompanyDomain(rawURL string) *string {
	s := strings.TrimSpace(rawURL)
	if s == "" {
		return nil
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return nil
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if !strings.Contains(host, ".") {
		return nil
	}
	return &host
}
