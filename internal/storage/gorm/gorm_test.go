package gorm

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormdb "gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/guiate/guiate/pkg/core"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := gormdb.Open(sqlite.Open(":memory:"), &gormdb.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	s := New(db)
	require.NoError(t, s.Init())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDailyCountryUpsert(t *testing.T) {
	s := testStore(t)

	got, err := s.GetDailyCountry("2024-03-15")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.PutDailyCountry(&core.DailyCountry{
		Date: "2024-03-15", Name: "Argentina", Code: "AR",
	}))
	got, err = s.GetDailyCountry("2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Argentina", got.Name)
	assert.False(t, got.Forced)

	// Same date again is an update, not a duplicate row.
	require.NoError(t, s.PutDailyCountry(&core.DailyCountry{
		Date: "2024-03-15", Name: "Chile", Code: "CL", Forced: true,
	}))
	got, err = s.GetDailyCountry("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "Chile", got.Name)
	assert.True(t, got.Forced)
}

func TestRecentCountryCodes(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.PutDailyCountry(&core.DailyCountry{Date: "2024-03-13", Name: "Argentina", Code: "AR"}))
	require.NoError(t, s.PutDailyCountry(&core.DailyCountry{Date: "2024-03-14", Name: "Chile", Code: "CL"}))
	require.NoError(t, s.PutDailyCountry(&core.DailyCountry{Date: "2024-03-15", Name: "Uruguay", Code: "UY"}))

	codes, err := s.RecentCountryCodes(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"UY", "CL"}, codes)
}

func TestDailyPlayerUpsert(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.PutDailyPlayer(&core.DailyPlayer{
		Date: "2024-03-15", ID: "Q615", Name: "Lionel Messi",
	}))
	got, err := s.GetDailyPlayer("2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Q615", got.ID)
}

func TestCountryGameRoundTrip(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.PutDailyCountry(&core.DailyCountry{
		Date: "2024-03-15", Name: "Argentina", Code: "AR",
	}))

	got, err := s.GetCountryGame("ana", "2024-03-15")
	require.NoError(t, err)
	assert.Nil(t, got)

	state := core.GameState{
		Steps: []core.GuessStep{
			{Guess: "Chile", DistanceKm: 0},
			{Guess: "Argentina", Correct: true},
		},
		Won:      true,
		Finished: true,
	}
	require.NoError(t, s.SaveCountryGame("ana", "2024-03-15", state))

	got, err = s.GetCountryGame("ana", "2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Won)
	assert.True(t, got.Finished)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, "Chile", got.Steps[0].Guess)

	// Saving again replaces the row for the same user and date.
	state.Steps = state.Steps[:1]
	state.Won = false
	state.Finished = false
	require.NoError(t, s.SaveCountryGame("ana", "2024-03-15", state))
	got, err = s.GetCountryGame("ana", "2024-03-15")
	require.NoError(t, err)
	assert.False(t, got.Won)
	assert.Len(t, got.Steps, 1)
}

func TestSaveGameRequiresDailyRow(t *testing.T) {
	s := testStore(t)
	err := s.SaveCountryGame("ana", "2024-03-15", core.GameState{})
	assert.Error(t, err)
}

func TestSaveGameRejectsEmptyUsername(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.PutDailyCountry(&core.DailyCountry{
		Date: "2024-03-15", Name: "Argentina", Code: "AR",
	}))
	err := s.SaveCountryGame("   ", "2024-03-15", core.GameState{})
	assert.Error(t, err)
}

func TestPlayerGameRoundTrip(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.PutDailyPlayer(&core.DailyPlayer{
		Date: "2024-03-15", ID: "Q615", Name: "Lionel Messi",
	}))

	state := core.GameState{
		Steps:    []core.GuessStep{{Guess: "Riquelme"}, {Guess: "Messi", Correct: true}},
		Won:      true,
		Finished: true,
	}
	require.NoError(t, s.SavePlayerGame("bob", "2024-03-15", state))

	got, err := s.GetPlayerGame("bob", "2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Won)
	assert.Equal(t, 2, got.Attempts())
}

func TestRanking(t *testing.T) {
	s := testStore(t)

	for _, date := range []string{"2024-03-15", "2024-03-16"} {
		require.NoError(t, s.PutDailyCountry(&core.DailyCountry{
			Date: date, Name: "Argentina", Code: "AR",
		}))
	}

	save := func(user, date string, won bool, attempts int) {
		t.Helper()
		require.NoError(t, s.SaveCountryGame(user, date, core.GameState{
			Won: won, Finished: true, Steps: make([]core.GuessStep, attempts),
		}))
	}
	save("ana", "2024-03-15", true, 2)
	save("ana", "2024-03-16", true, 4)
	save("bob", "2024-03-15", true, 1)
	save("eve", "2024-03-15", false, 6)

	entries, err := s.CountryRanking(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "ana", entries[0].Username)
	assert.Equal(t, 2, entries[0].GamesPlayed)
	assert.InDelta(t, 3.0, entries[0].AvgAttempts, 1e-9)
	assert.Equal(t, "bob", entries[1].Username)
	assert.Equal(t, "eve", entries[2].Username)
}

func TestRankingStreaks(t *testing.T) {
	s := testStore(t)

	for _, date := range []string{"2024-03-13", "2024-03-14", "2024-03-15"} {
		require.NoError(t, s.PutDailyCountry(&core.DailyCountry{
			Date: date, Name: "Argentina", Code: "AR",
		}))
	}

	save := func(user, date string, won bool) {
		t.Helper()
		require.NoError(t, s.SaveCountryGame(user, date, core.GameState{
			Won: won, Finished: true, Steps: []core.GuessStep{{Guess: "x"}},
		}))
	}
	save("ana", "2024-03-13", true)
	save("ana", "2024-03-14", true)
	save("ana", "2024-03-15", true)
	save("bob", "2024-03-13", true)
	save("bob", "2024-03-14", true)
	save("bob", "2024-03-15", false)

	entries, err := s.CountryRanking(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byUser := map[string]core.RankingEntry{}
	for _, e := range entries {
		byUser[e.Username] = e
	}
	assert.Equal(t, 3, byUser["ana"].CurrentStreak)
	assert.Equal(t, 3, byUser["ana"].BestStreak)
	assert.Equal(t, 0, byUser["bob"].CurrentStreak)
	assert.Equal(t, 2, byUser["bob"].BestStreak)
}

func TestRecordGuessEvent(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.RecordGuessEvent(&core.GuessEvent{
		Time: time.Now(), Game: core.GameCountry,
		UserID: "ana", Guess: "Chile", Attempt: 1,
	}))
}
