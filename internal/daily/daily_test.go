package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guiate/guiate/internal/catalog"
	"github.com/guiate/guiate/pkg/core"
)

func TestIndexDeterministic(t *testing.T) {
	at := time.Date(2024, time.March, 15, 13, 37, 0, 0, time.UTC)
	assert.Equal(t, Index(at, 175), Index(at, 175))
}

func TestIndexIgnoresTimeOfDay(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, Index(day, 175), Index(late, 175))
}

func TestIndexIgnoresLocalZone(t *testing.T) {
	loc := time.FixedZone("west", -5*3600)
	utc := time.Date(2024, time.March, 15, 2, 0, 0, 0, time.UTC)
	local := utc.In(loc)
	assert.Equal(t, Index(utc, 175), Index(local, 175))
}

func TestIndexInRange(t *testing.T) {
	start := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	for d := 0; d < 400; d++ {
		i := Index(start.AddDate(0, 0, d), 175)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 175)
	}
}

func TestIndexNotConstant(t *testing.T) {
	start := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	seen := make(map[int]bool)
	for d := 0; d < 30; d++ {
		seen[Index(start.AddDate(0, 0, d), 175)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestIndexDegenerateSize(t *testing.T) {
	at := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, Index(at, 0))
	assert.Equal(t, 0, Index(at, 1))
}

func TestCountryFor(t *testing.T) {
	cat := catalog.Fallback()
	at := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	a := CountryFor(at, cat)
	b := CountryFor(at.Add(3*time.Hour), cat)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a.Name)
}

func TestPlayerForSkipsIneligible(t *testing.T) {
	roster := []core.Player{
		{ID: "a", Name: "Two Clubs", Surname: "Clubs", Clubs: []string{"x", "y"}},
		{ID: "b", Name: "Three Clubs", Surname: "Clubs", Clubs: []string{"x", "y", "z"}},
	}

	start := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	for d := 0; d < 60; d++ {
		p, ok := PlayerFor(start.AddDate(0, 0, d), roster)
		require.True(t, ok)
		assert.Equal(t, "b", p.ID, "ineligible player selected on day %d", d)
	}
}

func TestPlayerForEmptyRoster(t *testing.T) {
	_, ok := PlayerFor(time.Now(), nil)
	assert.False(t, ok)

	_, ok = PlayerFor(time.Now(), []core.Player{
		{ID: "a", Name: "Two Clubs", Surname: "Clubs", Clubs: []string{"x", "y"}},
	})
	assert.False(t, ok)
}

func TestNextReset(t *testing.T) {
	at := time.Date(2024, time.March, 15, 13, 37, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC), NextReset(at))

	midnight := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC), NextReset(midnight))
}
