// internal/storage/storage.go
package storage

import "github.com/guiate/guiate/pkg/core"

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Daily answers (get-or-create lives in the caller: Get returns
	// nil when no row exists for the date)
	GetDailyCountry(date string) (*core.DailyCountry, error)
	PutDailyCountry(dc *core.DailyCountry) error
	GetDailyPlayer(date string) (*core.DailyPlayer, error)
	PutDailyPlayer(dp *core.DailyPlayer) error

	// RecentCountryCodes lists the codes of the latest daily countries,
	// newest first, so re-rolls can avoid repeating them.
	RecentCountryCodes(limit int) ([]string, error)

	// Per-user game state, keyed by username and date
	GetCountryGame(username, date string) (*core.GameState, error)
	SaveCountryGame(username, date string, state core.GameState) error
	GetPlayerGame(username, date string) (*core.GameState, error)
	SavePlayerGame(username, date string, state core.GameState) error

	// Aggregates
	CountryRanking(limit int) ([]core.RankingEntry, error)
	PlayerRanking(limit int) ([]core.RankingEntry, error)

	// Telemetry
	RecordGuessEvent(e *core.GuessEvent) error
}
