package server

import (
	"net/http"

	"github.com/guiate/guiate/internal/geo"
	"github.com/guiate/guiate/internal/match"
	"github.com/guiate/guiate/pkg/core"
)

// searchMinChars is the minimum normalized query length. Shorter
// queries return an empty list instead of the whole catalog.
const searchMinChars = 3

// SearchResult is one autocomplete entry. Mercator coordinates place
// the pin on the client's EPSG:3857 map without a client-side
// projection step.
type SearchResult struct {
	Name        string      `json:"name"`
	EnglishName string      `json:"englishName,omitempty"`
	Code        string      `json:"code"`
	Centroid    core.LatLng `json:"centroid"`
	MercatorX   float64     `json:"mercatorX"`
	MercatorY   float64     `json:"mercatorY"`
}

func handleCountrySearch(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if len([]rune(match.Normalize(q))) < searchMinChars {
			writeJSON(w, http.StatusOK, []SearchResult{})
			return
		}

		cat := deps.catalog(r.Context())
		found := cat.Search(q)

		results := make([]SearchResult, 0, len(found))
		for _, c := range found {
			x, y := geo.WebMercator(c.Centroid)
			results = append(results, SearchResult{
				Name:        c.Name,
				EnglishName: c.EnglishName,
				Code:        c.Code,
				Centroid:    c.Centroid,
				MercatorX:   x,
				MercatorY:   y,
			})
		}
		writeJSON(w, http.StatusOK, results)
	}
}
