// Package geo provides the distance primitives of the game: great-circle
// distance between coordinates and an approximate minimum border-to-border
// distance between country geometries.
//
// Border distance is a sampling approximation, not an exact polygon
// distance. The game only needs a coarse near/far signal, so each outer
// ring is subsampled to a bounded number of points before the pairwise
// comparison.
package geo

import (
	"math"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/guiate/guiate/pkg/core"
)

const (
	// EarthRadiusKm is the spherical Earth radius used by Haversine.
	EarthRadiusKm = 6371.0

	// MaxRingSamples bounds the number of points taken from each outer
	// ring before the pairwise comparison.
	MaxRingSamples = 50

	// AdjacentCutoffKm stops the pairwise scan early: once two sampled
	// points are closer than this the countries are effectively
	// bordering and no better answer is needed.
	AdjacentCutoffKm = 1
)

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Haversine returns the great-circle distance between two coordinates in
// kilometers, rounded to the nearest integer. It is symmetric and zero
// for identical points.
func Haversine(a, b core.LatLng) int {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return int(math.Round(EarthRadiusKm * c))
}

// OuterRingPoints collects the vertices of every outer ring of a Polygon
// or MultiPolygon geometry as lat/lng pairs. Holes are ignored: border
// proximity, not area, is what the game measures. Any other geometry
// type yields nil.
func OuterRingPoints(g geom.Geometry) []core.LatLng {
	switch g.Type() {
	case geom.TypePolygon:
		return ringPoints(g.MustAsPolygon().ExteriorRing())
	case geom.TypeMultiPolygon:
		mp := g.MustAsMultiPolygon()
		var pts []core.LatLng
		for i := 0; i < mp.NumPolygons(); i++ {
			pts = append(pts, ringPoints(mp.PolygonN(i).ExteriorRing())...)
		}
		return pts
	default:
		return nil
	}
}

func ringPoints(ring geom.LineString) []core.LatLng {
	seq := ring.Coordinates()
	pts := make([]core.LatLng, 0, seq.Length())
	for i := 0; i < seq.Length(); i++ {
		xy := seq.GetXY(i)
		// GeoJSON convention: X is longitude, Y is latitude.
		pts = append(pts, core.LatLng{Lat: xy.Y, Lng: xy.X})
	}
	return pts
}

// SampleRing subsamples points down to at most max entries using a
// uniform stride. A max of zero or less falls back to MaxRingSamples.
func SampleRing(pts []core.LatLng, max int) []core.LatLng {
	if max <= 0 {
		max = MaxRingSamples
	}
	if len(pts) <= max {
		return pts
	}
	stride := len(pts) / max
	if stride < 1 {
		stride = 1
	}
	sampled := make([]core.LatLng, 0, max+1)
	for i := 0; i < len(pts); i += stride {
		sampled = append(sampled, pts[i])
	}
	return sampled
}

// VertexCentroid returns the arithmetic mean of the geometry's outer
// ring vertices, the cheap location proxy used when ranking countries.
// Returns the zero coordinate when the geometry has no usable rings.
func VertexCentroid(g geom.Geometry) core.LatLng {
	pts := OuterRingPoints(g)
	if len(pts) == 0 {
		return core.LatLng{}
	}
	var lat, lng float64
	for _, p := range pts {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(pts))
	return core.LatLng{Lat: lat / n, Lng: lng / n}
}

// BorderDistance approximates the minimum distance in kilometers between
// the outer boundaries of two geometries. Both rings are subsampled to
// MaxRingSamples points and every sampled pair is compared; the scan
// stops early once a pair lands under AdjacentCutoffKm.
//
// Returns math.MaxInt32 when either geometry has no usable outer ring,
// so callers can treat "no geometry" as "infinitely far" in a min().
func BorderDistance(a, b geom.Geometry) int {
	ptsA := SampleRing(OuterRingPoints(a), MaxRingSamples)
	ptsB := SampleRing(OuterRingPoints(b), MaxRingSamples)
	if len(ptsA) == 0 || len(ptsB) == 0 {
		return math.MaxInt32
	}

	min := math.MaxInt32
	for _, pa := range ptsA {
		for _, pb := range ptsB {
			d := Haversine(pa, pb)
			if d < min {
				min = d
			}
			if d < AdjacentCutoffKm {
				return d
			}
		}
	}
	return min
}
