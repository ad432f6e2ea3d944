// Package core contains the domain value types shared across the guiate
// service: countries, players, guesses and the telemetry records derived
// from them. Types here carry no behavior beyond small invariant helpers
// so they can cross package boundaries freely.
package core

import (
	geom "github.com/peterstace/simplefeatures/geom"
)

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate lies within the valid
// latitude/longitude ranges.
func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// IsZero reports whether the coordinate is the zero value. A zero
// coordinate is what unresolved names degrade to, so callers use this to
// distinguish "Null Island" fallbacks from real positions.
func (p LatLng) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}

// Country is one guessable nation. Name is the display (Spanish) name,
// EnglishName the name carried by the boundary dataset. Geometry is only
// populated for countries resolved from the loaded map resource; the
// HasGeometry flag avoids asking simplefeatures whether the zero
// Geometry is empty.
type Country struct {
	Name        string `json:"name"`
	EnglishName string `json:"englishName,omitempty"`
	Code        string `json:"code"`
	Centroid    LatLng `json:"centroid"`

	Geometry    geom.Geometry `json:"-"`
	HasGeometry bool          `json:"-"`
}
