package core

import (
	"sort"
	"time"
)

// GameKind distinguishes the two daily games in telemetry and storage.
type GameKind string

const (
	GameCountry GameKind = "country"
	GamePlayer  GameKind = "player"
)

// GuessEvent is the telemetry record of one processed guess. Events are
// queued by the request handlers and drained to storage and InfluxDB by
// the worker, so a slow metrics backend never blocks a response.
type GuessEvent struct {
	Time       time.Time
	Game       GameKind
	UserID     string
	Guess      string
	DistanceKm int
	Correct    bool
	Attempt    int
}

// GuessStep is one attempt within a user's daily game, persisted as
// part of the game result so the share-grid can be rebuilt later.
type GuessStep struct {
	Guess      string `json:"guess"`
	DistanceKm int    `json:"distanceKm"`
	Correct    bool   `json:"correct"`
}

// DailyCountry is the pinned country answer for one UTC date. Forced
// marks an admin re-roll that overrode the deterministic pick.
type DailyCountry struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Forced bool   `json:"forced"`
}

// DailyPlayer is the pinned football-player answer for one UTC date.
type DailyPlayer struct {
	Date string `json:"date"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GameState is one user's progress in one daily game. Attempts is the
// length of Steps; Finished marks a game that can take no more guesses,
// either won or out of attempts.
type GameState struct {
	Won      bool        `json:"won"`
	Finished bool        `json:"finished"`
	Steps    []GuessStep `json:"guesses"`
}

// Attempts returns the number of guesses taken so far.
func (s GameState) Attempts() int { return len(s.Steps) }

// RankingEntry is one row of the aggregate leaderboard.
type RankingEntry struct {
	UserID        string  `json:"userId"`
	Username      string  `json:"username"`
	GamesPlayed   int     `json:"gamesPlayed"`
	GamesWon      int     `json:"gamesWon"`
	AvgAttempts   float64 `json:"avgAttempts"`
	CurrentStreak int     `json:"currentStreak"`
	BestStreak    int     `json:"bestStreak"`
}

// DatedResult pairs one game's outcome with its daily date, the input
// to streak derivation.
type DatedResult struct {
	Date string
	Won  bool
}

// WinStreaks derives a user's daily win streaks from their dated
// results. A streak is a run of wins on consecutive UTC dates; the
// current streak is the run ending at the most recent played date, zero
// when that game was lost. Dates use the YYYY-MM-DD layout.
func WinStreaks(results []DatedResult) (current, best int) {
	sorted := append([]DatedResult(nil), results...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	run := 0
	var prevWonDate string
	for _, r := range sorted {
		switch {
		case !r.Won:
			run = 0
		case prevWonDate != "" && r.Date == nextDate(prevWonDate):
			run++
		default:
			run = 1
		}
		if r.Won {
			prevWonDate = r.Date
		}
		if run > best {
			best = run
		}
	}
	return run, best
}

func nextDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02")
}

// DistanceBucket maps a distance to the share-emoji bucket used in guess
// responses. The thresholds mirror the original share-text scale.
func DistanceBucket(km int) string {
	switch {
	case km < 800:
		return "🟥"
	case km < 1500:
		return "🟧"
	case km < 4000:
		return "🟨"
	default:
		return "⬜"
	}
}

// DistanceColor returns the Worldle-style hex color for a distance.
func DistanceColor(km int) string {
	switch {
	case km < 300:
		return "#7f1d1d"
	case km < 800:
		return "#dc2626"
	case km < 1500:
		return "#fb923c"
	case km < 2500:
		return "#fbbf24"
	case km < 4000:
		return "#fde047"
	case km < 6000:
		return "#facc15"
	default:
		return "#fefce8"
	}
}
