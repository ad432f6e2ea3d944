package geo

import (
	"github.com/wroge/wgs84"

	"github.com/guiate/guiate/pkg/core"
)

// WebMercator projects a WGS84 coordinate to EPSG:3857 meters. The API
// layer attaches the projected position to search and guess responses so
// map pins can be placed without a client-side projection step.
func WebMercator(p core.LatLng) (x, y float64) {
	epsg := wgs84.EPSG()
	f := epsg.Transform(4326, 3857)
	x, y, _ = f(p.Lng, p.Lat, 0)
	return x, y
}
