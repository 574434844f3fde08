package geo

import (
	"math"
	"strings"
)

// earthRadiusMiles is the radius used by the haversine formula.
const earthRadiusMiles = 3959.0

// Center is a resolved geographic point used as the origin for proximity
// scoring. Region is the two-letter state code the caller may enforce.
type Center struct {
	Lat    float64
	Lng    float64
	Region string
}

// ResolveCenter looks up a location hint in the known-city table after alias
// substitution. Partial containment match is a fallback. Returns nil when the
// hint resolves to nothing; callers treat that as "no location signal".
func ResolveCenter(locationHint string) *Center {
	name := normalizeCityName(locationHint)
	if name == "" {
		return nil
	}

	if canonical, ok := cityAliases[name]; ok {
		name = canonical
	}

	if city, ok := cityTable[name]; ok {
		return &Center{Lat: city.Lat, Lng: city.Lng, Region: city.Region}
	}

	// Containment fallback: "downtown denver" or "denver area" should still
	// resolve. Longest key wins so "new york" beats "york".
	var bestKey string
	for key := range cityTable {
		if strings.Contains(name, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		city := cityTable[bestKey]
		return &Center{Lat: city.Lat, Lng: city.Lng, Region: city.Region}
	}

	return nil
}

// KnownCity reports whether a normalized phrase names a city in the table,
// directly or via alias. Used by the fallback classifier's longest-match scan.
func KnownCity(phrase string) bool {
	name := normalizeCityName(phrase)
	if canonical, ok := cityAliases[name]; ok {
		name = canonical
	}
	_, ok := cityTable[name]
	return ok
}

func normalizeCityName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	// Strip a trailing state suffix like "denver, co" or "denver co"
	if idx := strings.IndexByte(s, ','); idx >= 0 {
		s = strings.TrimSpace(s[:idx])
	}
	return strings.Join(strings.Fields(s), " ")
}

// Distance computes the great-circle distance in miles between two points
// using the haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
