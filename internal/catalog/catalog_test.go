package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterSize(t *testing.T) {
	cat := Fallback()
	assert.Equal(t, len(roster), cat.Len())
	assert.Equal(t, ModeFallback, cat.Mode())
}

func TestRosterOrderStable(t *testing.T) {
	cat := Fallback()
	countries := cat.Roster()
	require.NotEmpty(t, countries)
	// The authored order is what the daily selector indexes into.
	for i, e := range roster {
		assert.Equal(t, e.name, countries[i].Name, "roster position %d", i)
	}
}

func TestFindByName(t *testing.T) {
	cat := Fallback()

	tests := []struct {
		query string
		want  string
	}{
		{"Argentina", "Argentina"},
		{"argentina", "Argentina"},
		{"  ARGENTINA  ", "Argentina"},
		{"México", "México"},
		{"mexico", "México"},
		{"españa", "España"},
		{"Costa de Marfil", "Costa de Marfil"},
	}
	for _, tt := range tests {
		c, err := cat.FindByName(tt.query)
		require.NoError(t, err, "query %q", tt.query)
		assert.Equal(t, tt.want, c.Name, "query %q", tt.query)
	}
}

func TestFindByEnglishName(t *testing.T) {
	cat := Fallback()

	// Fallback attaches the English name only for Spain, which is the
	// one entry that keeps geometry in degraded mode.
	c, err := cat.FindByName("Spain")
	require.NoError(t, err)
	assert.Equal(t, "España", c.Name)
	assert.True(t, c.HasGeometry)
}

func TestFindByNameMiss(t *testing.T) {
	cat := Fallback()

	for _, q := range []string{"", "   ", "Atlántida", "xyz"} {
		_, err := cat.FindByName(q)
		assert.ErrorIs(t, err, ErrNotFound, "query %q", q)
	}
}

func TestSearch(t *testing.T) {
	cat := Fallback()

	results := cat.Search("guin")
	require.NotEmpty(t, results)
	names := make(map[string]bool, len(results))
	for _, c := range results {
		names[c.Name] = true
	}
	assert.True(t, names["Guinea"])
	assert.True(t, names["Guinea Ecuatorial"])
	assert.True(t, names["Papúa Nueva Guinea"])
}

func TestSearchIgnoresDiacritics(t *testing.T) {
	cat := Fallback()

	withAccent := cat.Search("perú")
	plain := cat.Search("peru")
	require.NotEmpty(t, withAccent)
	assert.Equal(t, withAccent, plain)
}

func TestSearchLimit(t *testing.T) {
	cat := Fallback()

	// "a" matches most of the roster; the result set must stay capped.
	results := cat.Search("a")
	assert.Len(t, results, searchLimit)
}

func TestSearchEmptyQuery(t *testing.T) {
	cat := Fallback()

	assert.Nil(t, cat.Search(""))
	assert.Nil(t, cat.Search("   "))
}

func TestSearchNoDuplicateDisplayNames(t *testing.T) {
	cat := Fallback()

	results := cat.Search("re")
	seen := make(map[string]bool, len(results))
	for _, c := range results {
		assert.False(t, seen[c.Name], "duplicate display name %q", c.Name)
		seen[c.Name] = true
	}
}

func TestRosterCodesUnique(t *testing.T) {
	seen := make(map[string]string, len(roster))
	for _, e := range roster {
		if prev, ok := seen[e.code]; ok {
			t.Errorf("code %s shared by %s and %s", e.code, prev, e.name)
		}
		seen[e.code] = e.name
	}
}

func TestRosterCentroidsValid(t *testing.T) {
	cat := Fallback()
	for _, c := range cat.Roster() {
		assert.True(t, c.Centroid.Valid(), "centroid of %s", c.Name)
		assert.False(t, c.Centroid.IsZero(), "centroid of %s", c.Name)
	}
}

func TestDeriveCode(t *testing.T) {
	// Placeholder codes live outside the two-letter ISO namespace.
	assert.Equal(t, "X-SOMALILAND", deriveCode("Somaliland"))
	assert.Equal(t, "X-NEW-CALEDONIA", deriveCode("New Caledonia"))
	assert.Equal(t, "X-", deriveCode(""))
}
