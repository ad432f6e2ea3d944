package geo

import (
	"math"
	"testing"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/guiate/guiate/pkg/core"
)

func mustGeom(t *testing.T, wkt string) geom.Geometry {
	t.Helper()
	g, err := geom.UnmarshalWKT(wkt)
	if err != nil {
		t.Fatalf("bad WKT fixture: %v", err)
	}
	return g
}

func TestHaversine_Identity(t *testing.T) {
	pts := []core.LatLng{
		{Lat: 0, Lng: 0},
		{Lat: -34.6118, Lng: -58.396},
		{Lat: 64.1466, Lng: -21.9426},
	}
	for _, p := range pts {
		if d := Haversine(p, p); d != 0 {
			t.Errorf("Haversine(%v, %v) = %d, want 0", p, p, d)
		}
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	a := core.LatLng{Lat: -34.6118, Lng: -58.396}  // Buenos Aires
	b := core.LatLng{Lat: -33.4489, Lng: -70.6693} // Santiago

	ab := Haversine(a, b)
	ba := Haversine(b, a)
	if ab != ba {
		t.Fatalf("Haversine not symmetric: %d vs %d", ab, ba)
	}
	// Known distance is roughly 1140 km.
	if ab < 1100 || ab > 1200 {
		t.Errorf("Haversine(BA, SCL) = %d, want ~1140", ab)
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	madrid := core.LatLng{Lat: 40.4168, Lng: -3.7038}
	lisbon := core.LatLng{Lat: 38.7223, Lng: -9.1393}

	d := Haversine(madrid, lisbon)
	if d < 480 || d > 530 {
		t.Errorf("Haversine(Madrid, Lisbon) = %d, want ~503", d)
	}
}

func TestSampleRing(t *testing.T) {
	pts := make([]core.LatLng, 500)
	for i := range pts {
		pts[i] = core.LatLng{Lat: float64(i) / 100, Lng: float64(i) / 100}
	}

	sampled := SampleRing(pts, 50)
	if len(sampled) == 0 || len(sampled) > 51 {
		t.Fatalf("SampleRing returned %d points, want 1..51", len(sampled))
	}
	// First point must be preserved so closed rings keep an anchor.
	if sampled[0] != pts[0] {
		t.Errorf("first sampled point = %v, want %v", sampled[0], pts[0])
	}

	short := []core.LatLng{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}}
	if got := SampleRing(short, 50); len(got) != 2 {
		t.Errorf("short ring resampled to %d points, want 2", len(got))
	}
}

func TestOuterRingPoints_IgnoresHoles(t *testing.T) {
	g := mustGeom(t, "POLYGON((0 0, 10 0, 10 10, 0 10, 0 0), (4 4, 6 4, 6 6, 4 6, 4 4))")

	pts := OuterRingPoints(g)
	if len(pts) != 5 {
		t.Fatalf("got %d points, want 5 (outer ring only)", len(pts))
	}
}

func TestOuterRingPoints_MultiPolygon(t *testing.T) {
	g := mustGeom(t, "MULTIPOLYGON(((0 0, 1 0, 1 1, 0 0)), ((5 5, 6 5, 6 6, 5 5)))")

	pts := OuterRingPoints(g)
	if len(pts) != 8 {
		t.Fatalf("got %d points, want 8", len(pts))
	}
}

func TestOuterRingPoints_NonAreal(t *testing.T) {
	g := mustGeom(t, "POINT(1 2)")
	if pts := OuterRingPoints(g); pts != nil {
		t.Fatalf("expected nil for point geometry, got %v", pts)
	}
}

func TestBorderDistance_TouchingSquares(t *testing.T) {
	a := mustGeom(t, "POLYGON((0 0, 1 0, 1 1, 0 1, 0 0))")
	b := mustGeom(t, "POLYGON((1 0, 2 0, 2 1, 1 1, 1 0))")

	if d := BorderDistance(a, b); d >= AdjacentCutoffKm {
		t.Errorf("touching squares border distance = %d, want < %d", d, AdjacentCutoffKm)
	}
}

func TestBorderDistance_SeparatedSquares(t *testing.T) {
	a := mustGeom(t, "POLYGON((0 0, 1 0, 1 1, 0 1, 0 0))")
	// Roughly 9 degrees of longitude away at the equator, ~1000 km.
	b := mustGeom(t, "POLYGON((10 0, 11 0, 11 1, 10 1, 10 0))")

	d := BorderDistance(a, b)
	if d < 900 || d > 1100 {
		t.Errorf("border distance = %d, want ~1000", d)
	}
}

func TestBorderDistance_NoGeometry(t *testing.T) {
	a := mustGeom(t, "POLYGON((0 0, 1 0, 1 1, 0 1, 0 0))")
	p := mustGeom(t, "POINT(0 0)")

	if d := BorderDistance(a, p); d != math.MaxInt32 {
		t.Errorf("border distance without rings = %d, want MaxInt32", d)
	}
}

func TestVertexCentroid(t *testing.T) {
	g := mustGeom(t, "POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))")

	c := VertexCentroid(g)
	// Mean over the five vertices (the closing vertex repeats 0,0).
	if math.Abs(c.Lat-1.6) > 1e-9 || math.Abs(c.Lng-1.6) > 1e-9 {
		t.Errorf("centroid = %v, want {1.6 1.6}", c)
	}
}

func TestWebMercator(t *testing.T) {
	x, y := WebMercator(core.LatLng{Lat: 0, Lng: 0})
	if math.Abs(x) > 1 || math.Abs(y) > 1 {
		t.Errorf("WebMercator(0,0) = (%f, %f), want origin", x, y)
	}

	x, _ = WebMercator(core.LatLng{Lat: 0, Lng: 180})
	// Half the Mercator world width, ~20037508 m.
	if math.Abs(x-20037508.34) > 1000 {
		t.Errorf("WebMercator(0,180).x = %f, want ~20037508", x)
	}
}
