// Package region classifies coordinates into a country and a sub-national
// region using ordered, inclusive bounding boxes. The first matching box wins;
// overlaps are resolved purely by declaration order.
//
// All functions are pure and safe for concurrent use.
package region

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
)

// Unknown is returned by ClassifyRegion when no country is known at all.
const Unknown = "Unknown"

var supported = func() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range countryRules {
		if !seen[r.Label] {
			seen[r.Label] = true
			names = append(names, r.Label)
		}
	}
	return names
}()

// ValidCoordinate reports whether lat/lng are finite and within [-90,90] / [-180,180].
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ClassifyCountry returns the country of the first box containing the
// coordinate, or "" when no box matches or the coordinate is invalid.
func ClassifyCountry(lat, lng float64) string {
	if !ValidCoordinate(lat, lng) {
		return ""
	}
	return firstMatch(countryRules, orb.Point{lng, lat})
}

// ClassifyRegion returns the sub-national region of a coordinate inside country.
// It never returns "": countries without a matching rule get their fallback label,
// countries without rules are returned as is, and a blank country yields Unknown.
func ClassifyRegion(lat, lng float64, country string) string {
	country = strings.TrimSpace(country)
	if country == "" {
		return Unknown
	}

	set, ok := regionRules[country]
	if !ok {
		return country
	}

	if ValidCoordinate(lat, lng) {
		if label := firstMatch(set.Rules, orb.Point{lng, lat}); label != "" {
			return label
		}
	}
	return set.Fallback
}

// Classify resolves the effective country and region of a record. Stored values
// are authoritative; blank ones are derived from the coordinate. The region is
// left empty when the country cannot be resolved.
func Classify(lat, lng float64, storedCountry, storedRegion string) (country, region string) {
	country = strings.TrimSpace(storedCountry)
	if country == "" {
		country = ClassifyCountry(lat, lng)
	}
	if country == "" {
		return "", ""
	}

	region = strings.TrimSpace(storedRegion)
	if region == "" {
		region = ClassifyRegion(lat, lng, country)
	}
	return country, region
}

// SupportedCountries lists the country labels ClassifyCountry can produce, in rule order.
func SupportedCountries() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether country is one of SupportedCountries.
func IsSupported(country string) bool {
	for _, c := range supported {
		if c == country {
			return true
		}
	}
	return false
}

func firstMatch(rules []Rule, p orb.Point) string {
	for _, r := range rules {
		if r.Bound.Contains(p) {
			return r.Label
		}
	}
	return ""
}
