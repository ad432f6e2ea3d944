package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/guiate/guiate/internal/geo"
	"github.com/guiate/guiate/internal/match"
	"github.com/guiate/guiate/pkg/core"
)

// Loader fetches the boundary dataset and builds the merged catalog.
// Load never fails: any fetch or parse problem degrades to the built-in
// fallback catalog so the game keeps running.
type Loader struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewLoader creates a loader for the given boundary-resource URL.
func NewLoader(url string, timeout time.Duration, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// rawFeature mirrors just enough of a GeoJSON feature to filter and
// parse it per entry; a malformed feature is skipped without poisoning
// the rest of the collection.
type rawFeature struct {
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

type rawCollection struct {
	Type     string       `json:"type"`
	Features []rawFeature `json:"features"`
}

// Load fetches and parses the boundary dataset and merges it with the
// static roster. On any failure it returns the fallback catalog.
func (l *Loader) Load(ctx context.Context) *Catalog {
	body, err := l.fetch(ctx)
	if err != nil {
		l.log.Warn("boundary dataset unavailable, using fallback catalog", "url", l.url, "error", err)
		return Fallback()
	}

	cat, err := l.build(body)
	if err != nil {
		l.log.Warn("boundary dataset malformed, using fallback catalog", "url", l.url, "error", err)
		return Fallback()
	}

	l.log.Info("country catalog loaded",
		"countries", len(cat.countries), "extras", len(cat.extras))
	return cat
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching boundary dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("boundary dataset returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading boundary dataset: %w", err)
	}
	return body, nil
}

func (l *Loader) build(body []byte) (*Catalog, error) {
	var fc rawCollection
	if err := json.Unmarshal(body, &fc); err != nil {
		return nil, fmt.Errorf("decoding feature collection: %w", err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("feature collection has no features")
	}

	countries := rosterCountries()
	byName := make(map[string]int, len(countries))
	for i := range countries {
		byName[match.Normalize(countries[i].Name)] = i
	}

	var extras []core.Country
	extraCodes := make(map[string]bool)
	skipped := 0
	for _, f := range fc.Features {
		name, _ := f.Properties["name"].(string)
		if name == "" || len(f.Geometry) == 0 {
			skipped++
			continue
		}
		g, err := geom.UnmarshalGeoJSON(f.Geometry)
		if err != nil {
			skipped++
			continue
		}
		if g.Type() != geom.TypePolygon && g.Type() != geom.TypeMultiPolygon {
			skipped++
			continue
		}

		display := name
		if es, ok := englishToSpanish[name]; ok {
			display = es
		}

		if i, ok := byName[match.Normalize(display)]; ok {
			countries[i].EnglishName = name
			countries[i].Geometry = g
			countries[i].HasGeometry = true
			continue
		}

		code := deriveCode(name)
		if extraCodes[code] {
			skipped++
			continue
		}
		extraCodes[code] = true
		extras = append(extras, core.Country{
			Name:        display,
			EnglishName: name,
			Code:        code,
			Centroid:    geo.VertexCentroid(g),
			Geometry:    g,
			HasGeometry: true,
		})
	}

	if skipped > 0 {
		l.log.Debug("skipped malformed boundary features", "count", skipped)
	}
	return newCatalog(ModeFull, countries, extras), nil
}

// rosterCountries materializes the static roster as core.Country values.
func rosterCountries() []core.Country {
	out := make([]core.Country, len(roster))
	for i, e := range roster {
		out[i] = core.Country{
			Name:     e.name,
			Code:     e.code,
			Centroid: core.LatLng{Lat: e.lat, Lng: e.lng},
		}
	}
	return out
}

// deriveCode makes a stable placeholder code for features absent from
// the roster. Code equality is country identity throughout the game,
// so placeholder codes live in an "X-" namespace that can never equal
// a two-letter ISO code.
func deriveCode(englishName string) string {
	s := strings.ToUpper(match.Normalize(englishName))
	return "X-" + strings.ReplaceAll(s, " ", "-")
}
