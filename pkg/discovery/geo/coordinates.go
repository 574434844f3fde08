package geo

// Coordinates is the single canonical coordinate shape. Every legacy record
// encoding is normalized here; nothing else in the engine branches on shape.
type Coordinates struct {
	Lat float64
	Lng float64
}

// ExtractCoordinates normalizes the legacy coordinate encodings found in
// source records into one canonical shape. Recognized shapes:
//
//	{"location": {"latitude": .., "longitude": ..}}
//	{"_latitude": .., "_longitude": ..}
//	{"coordinates": [lat, lng]}
//	{"lat": .., "lng": ..}
//	{"primaryLocation": {<any of the above>}}
//
// Unrecognized shapes yield nil rather than an error.
func ExtractCoordinates(fields map[string]interface{}) *Coordinates {
	if fields == nil {
		return nil
	}

	// Nested object with latitude/longitude
	if loc, ok := fields["location"].(map[string]interface{}); ok {
		if c := pairFrom(loc, "latitude", "longitude"); c != nil {
			return c
		}
		if c := pairFrom(loc, "lat", "lng"); c != nil {
			return c
		}
	}

	// Underscore-prefixed flat fields (Firestore GeoPoint leakage)
	if c := pairFrom(fields, "_latitude", "_longitude"); c != nil {
		return c
	}

	// [lat, lng] pair
	if arr, ok := fields["coordinates"].([]interface{}); ok && len(arr) >= 2 {
		lat, okLat := toFloat(arr[0])
		lng, okLng := toFloat(arr[1])
		if okLat && okLng {
			return &Coordinates{Lat: lat, Lng: lng}
		}
	}

	// Flat lat/lng fields
	if c := pairFrom(fields, "lat", "lng"); c != nil {
		return c
	}
	if c := pairFrom(fields, "latitude", "longitude"); c != nil {
		return c
	}

	// One level of nesting under a primary location field
	if primary, ok := fields["primaryLocation"].(map[string]interface{}); ok {
		return ExtractCoordinates(primary)
	}

	return nil
}

func pairFrom(m map[string]interface{}, latKey, lngKey string) *Coordinates {
	lat, okLat := toFloat(m[latKey])
	lng, okLng := toFloat(m[lngKey])
	if !okLat || !okLng {
		return nil
	}
	return &Coordinates{Lat: lat, Lng: lng}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
