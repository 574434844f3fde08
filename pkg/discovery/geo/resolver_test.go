package geo

import (
	"math"
	"testing"
)

func TestResolveCenter(t *testing.T) {
	tests := []struct {
		name       string
		hint       string
		wantRegion string
		wantNil    bool
	}{
		{name: "exact city", hint: "Denver", wantRegion: "CO"},
		{name: "alias", hint: "nyc", wantRegion: "NY"},
		{name: "philly alias", hint: "Philly", wantRegion: "PA"},
		{name: "with state suffix", hint: "Denver, CO", wantRegion: "CO"},
		{name: "containment fallback", hint: "downtown chicago", wantRegion: "IL"},
		{name: "unknown city", hint: "middleofnowhere", wantNil: true},
		{name: "empty", hint: "  ", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center := ResolveCenter(tt.hint)
			if tt.wantNil {
				if center != nil {
					t.Errorf("ResolveCenter(%q) = %+v, want nil", tt.hint, center)
				}
				return
			}
			if center == nil {
				t.Fatalf("ResolveCenter(%q) = nil, want region %s", tt.hint, tt.wantRegion)
			}
			if center.Region != tt.wantRegion {
				t.Errorf("ResolveCenter(%q).Region = %s, want %s", tt.hint, center.Region, tt.wantRegion)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	// Philadelphia to New York is roughly 80 miles great-circle.
	d := Distance(39.9526, -75.1652, 40.7128, -74.0060)
	if math.Abs(d-80) > 5 {
		t.Errorf("Philadelphia-New York distance = %f, want ~80", d)
	}

	// Zero distance for identical points.
	if d := Distance(39.7392, -104.9903, 39.7392, -104.9903); d != 0 {
		t.Errorf("identical points distance = %f, want 0", d)
	}
}

func TestExtractCoordinates(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]interface{}
		want   *Coordinates
	}{
		{
			name: "nested location object",
			fields: map[string]interface{}{
				"location": map[string]interface{}{"latitude": 39.9, "longitude": -75.1},
			},
			want: &Coordinates{39.9, -75.1},
		},
		{
			name:   "underscore prefixed",
			fields: map[string]interface{}{"_latitude": 40.7, "_longitude": -74.0},
			want:   &Coordinates{40.7, -74.0},
		},
		{
			name:   "coordinate pair",
			fields: map[string]interface{}{"coordinates": []interface{}{41.8, -87.6}},
			want:   &Coordinates{41.8, -87.6},
		},
		{
			name:   "flat lat lng",
			fields: map[string]interface{}{"lat": 29.7, "lng": -95.3},
			want:   &Coordinates{29.7, -95.3},
		},
		{
			name: "nested under primary location",
			fields: map[string]interface{}{
				"primaryLocation": map[string]interface{}{"lat": 33.4, "lng": -112.0},
			},
			want: &Coordinates{33.4, -112.0},
		},
		{
			name:   "unrecognized shape",
			fields: map[string]interface{}{"address": "123 Main St"},
			want:   nil,
		},
		{
			name:   "malformed pair",
			fields: map[string]interface{}{"coordinates": []interface{}{"a", "b"}},
			want:   nil,
		},
		{
			name:   "nil fields",
			fields: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCoordinates(tt.fields)
			if tt.want == nil {
				if got != nil {
					t.Errorf("ExtractCoordinates() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ExtractCoordinates() = nil, want %+v", tt.want)
			}
			if got.Lat != tt.want.Lat || got.Lng != tt.want.Lng {
				t.Errorf("ExtractCoordinates() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
