// Package catalog owns the authoritative set of guessable countries. It
// merges a hand-authored static roster (names, ISO codes, centroids)
// with polygon geometry loaded once per process from a GeoJSON boundary
// resource, and resolves free-text names against both the Spanish and
// English spellings.
package catalog

import (
	"errors"
	"strings"

	"github.com/guiate/guiate/internal/match"
	"github.com/guiate/guiate/pkg/core"
)

// ErrNotFound is returned when a name resolves to no catalog entry.
var ErrNotFound = errors.New("catalog: country not found")

// Mode records how the catalog was built. ModeFallback means the
// boundary resource could not be loaded and the catalog runs on the
// static roster with minimal geometry; the game stays playable with
// reduced precision.
type Mode int

const (
	ModeFull Mode = iota
	ModeFallback
)

func (m Mode) String() string {
	if m == ModeFallback {
		return "fallback"
	}
	return "full"
}

// searchLimit caps Search results.
const searchLimit = 10

// Catalog is an immutable snapshot of the merged country set. It is
// built once by a Loader and then read concurrently without locking.
type Catalog struct {
	mode Mode

	// countries holds the static roster in its authored order, each
	// entry augmented with geometry when the boundary dataset had a
	// matching feature. The daily selector indexes into this slice.
	countries []core.Country

	// extras are geometry features with no roster entry (territories
	// the roster does not list). They resolve by name but are never
	// daily answers.
	extras []core.Country

	byName map[string]*core.Country
}

func newCatalog(mode Mode, countries, extras []core.Country) *Catalog {
	c := &Catalog{
		mode:      mode,
		countries: countries,
		extras:    extras,
		byName:    make(map[string]*core.Country, 2*(len(countries)+len(extras))),
	}
	index := func(list []core.Country) {
		for i := range list {
			entry := &list[i]
			for _, n := range []string{entry.Name, entry.EnglishName} {
				if n == "" {
					continue
				}
				key := match.Normalize(n)
				if _, taken := c.byName[key]; !taken {
					c.byName[key] = entry
				}
			}
		}
	}
	index(c.countries)
	index(c.extras)
	return c
}

// Mode reports whether the catalog carries full geometry or runs in the
// degraded fallback mode.
func (c *Catalog) Mode() Mode { return c.mode }

// Roster returns the guessable countries in their fixed authored order.
// The returned slice is shared; callers must not mutate it.
func (c *Catalog) Roster() []core.Country { return c.countries }

// Len returns the roster size.
func (c *Catalog) Len() int { return len(c.countries) }

// FindByName resolves a country by display or English name. Matching is
// exact after normalization, so case and diacritics are ignored.
func (c *Catalog) FindByName(name string) (core.Country, error) {
	key := match.Normalize(name)
	if key == "" {
		return core.Country{}, ErrNotFound
	}
	if entry, ok := c.byName[key]; ok {
		return *entry, nil
	}
	return core.Country{}, ErrNotFound
}

// Search returns up to 10 countries whose Spanish or English name
// contains the normalized query as a substring. Duplicate display names
// are collapsed. An empty query yields an empty result; minimum-length
// policy is the caller's concern.
func (c *Catalog) Search(query string) []core.Country {
	q := match.Normalize(query)
	if q == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var results []core.Country
	scan := func(list []core.Country) {
		for i := range list {
			if len(results) >= searchLimit {
				return
			}
			entry := &list[i]
			display := match.Normalize(entry.Name)
			if _, dup := seen[display]; dup {
				continue
			}
			if containsNormalized(display, q) || containsNormalized(match.Normalize(entry.EnglishName), q) {
				seen[display] = struct{}{}
				results = append(results, *entry)
			}
		}
	}
	scan(c.countries)
	scan(c.extras)
	return results
}

func containsNormalized(haystack, needle string) bool {
	return haystack != "" && strings.Contains(haystack, needle)
}
